package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type membersRepo struct {
	db dbtx
}

// otherAdminsGuard matches when the org would still have an active Admin
// after the targeted row stops being one.
const otherAdminsGuard = `(
	SELECT COUNT(*) FROM organization_members oa
	WHERE oa.org_id = ? AND oa.role = 'Admin' AND oa.status = 'Active'
) > 1`

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organization_members (id, org_id, user_id, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.OrgID, m.UserID, m.Role, m.Status, m.CreatedAt, m.UpdatedAt)
	return mapConflict(err)
}

func (r *membersRepo) GetMember(ctx context.Context, orgID, userID idx.ID) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, org_id, user_id, role, status, created_at, updated_at
		FROM organization_members
		WHERE org_id = ? AND user_id = ?`,
		orgID, userID)

	var m domain.Member
	err := row.Scan(&m.ID, &m.OrgID, &m.UserID, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) listProfiles(ctx context.Context, query string, args ...any) ([]domain.MemberProfile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MemberProfile
	for rows.Next() {
		var p domain.MemberProfile
		err := rows.Scan(&p.ID, &p.OrgID, &p.UserID, &p.Role, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &p.Email, &p.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *membersRepo) ListMembers(ctx context.Context, orgID, actorID idx.ID) ([]domain.MemberProfile, error) {
	return r.listProfiles(ctx, `
		SELECT m.id, m.org_id, m.user_id, m.role, m.status, m.created_at, m.updated_at,
		       u.email, u.name
		FROM organization_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.org_id = ? AND m.status = 'Active' AND `+adminGuard+`
		ORDER BY m.created_at ASC`,
		orgID, orgID, actorID)
}

func (r *membersRepo) ListAdmins(ctx context.Context, orgID, actorID idx.ID) ([]domain.MemberProfile, error) {
	return r.listProfiles(ctx, `
		SELECT m.id, m.org_id, m.user_id, m.role, m.status, m.created_at, m.updated_at,
		       u.email, u.name
		FROM organization_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.org_id = ? AND m.role = 'Admin' AND m.status = 'Active' AND `+memberGuard+`
		ORDER BY m.created_at ASC`,
		orgID, orgID, actorID)
}

func (r *membersRepo) PromoteMember(ctx context.Context, orgID, userID, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE organization_members
		SET role = 'Admin', updated_at = ?
		WHERE org_id = ? AND user_id = ? AND role = 'Member' AND status = 'Active'
		  AND `+adminGuard,
		now(), orgID, userID, orgID, actorID)
}

func (r *membersRepo) DemoteAdmin(ctx context.Context, orgID, userID, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE organization_members
		SET role = 'Member', updated_at = ?
		WHERE org_id = ? AND user_id = ? AND role = 'Admin' AND status = 'Active'
		  AND `+adminGuard+`
		  AND `+otherAdminsGuard,
		now(), orgID, userID, orgID, actorID, orgID)
}

func (r *membersRepo) RemoveMember(ctx context.Context, orgID, userID, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE organization_members
		SET status = 'Inactive', updated_at = ?
		WHERE org_id = ? AND user_id = ? AND status = 'Active'
		  AND `+adminGuard+`
		  AND (role != 'Admin' OR `+otherAdminsGuard+`)`,
		now(), orgID, userID, orgID, actorID, orgID)
}

func (r *membersRepo) ReviveMember(ctx context.Context, orgID, userID idx.ID, role string) error {
	return guardExec(ctx, r.db, `
		UPDATE organization_members
		SET status = 'Active', role = ?, updated_at = ?
		WHERE org_id = ? AND user_id = ? AND status = 'Inactive'`,
		role, now(), orgID, userID)
}

func (r *membersRepo) IsActiveAdmin(ctx context.Context, orgID, userID idx.ID) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM organization_members
		WHERE org_id = ? AND user_id = ? AND role = 'Admin' AND status = 'Active'`,
		orgID, userID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
