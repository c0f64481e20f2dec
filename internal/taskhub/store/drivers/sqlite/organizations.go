package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type organizationsRepo struct {
	db dbtx
}

// adminGuard matches when the given (user, org) pair holds an active Admin
// membership. Mutating statements append it so authorization happens in
// the same statement as the write.
const adminGuard = `EXISTS (
	SELECT 1 FROM organization_members om
	WHERE om.org_id = ? AND om.user_id = ? AND om.role = 'Admin' AND om.status = 'Active'
)`

// memberGuard is the read-side variant: any active membership qualifies.
const memberGuard = `EXISTS (
	SELECT 1 FROM organization_members om
	WHERE om.org_id = ? AND om.user_id = ? AND om.status = 'Active'
)`

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Description, o.Status, o.CreatedAt, o.UpdatedAt)
	return mapConflict(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id, actorID idx.ID) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, status, created_at, updated_at
		FROM organizations
		WHERE id = ? AND `+memberGuard,
		id, id, actorID)

	var o domain.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return o, nil
}

func (r *organizationsRepo) ListOrganizationsForUser(ctx context.Context, userID idx.ID) ([]domain.OrgSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.name, o.description, o.status, o.created_at, o.updated_at, om.role
		FROM organizations o
		JOIN organization_members om ON om.org_id = o.id
		WHERE om.user_id = ? AND om.status = 'Active' AND o.status = 'Active'
		ORDER BY o.created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrgSummary
	for rows.Next() {
		var s domain.OrgSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt, &s.Role); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *organizationsRepo) UpdateOrganization(ctx context.Context, id, actorID idx.ID, name, description string) error {
	return guardExec(ctx, r.db, `
		UPDATE organizations
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ? AND `+adminGuard,
		name, description, now(), id, id, actorID)
}

func (r *organizationsRepo) ToggleOrganizationStatus(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE organizations
		SET status = CASE WHEN status = 'Active' THEN 'Inactive' ELSE 'Active' END,
		    updated_at = ?
		WHERE id = ? AND `+adminGuard,
		now(), id, id, actorID)
}
