package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type teamsRepo struct {
	db dbtx
}

// teamOrgAdminGuard is the adminGuard keyed off a team row's owning org.
const teamOrgAdminGuard = `EXISTS (
	SELECT 1 FROM organization_members om
	WHERE om.org_id = teams.org_id AND om.user_id = ? AND om.role = 'Admin' AND om.status = 'Active'
)`

const teamOrgMemberGuard = `EXISTS (
	SELECT 1 FROM organization_members om
	WHERE om.org_id = teams.org_id AND om.user_id = ? AND om.status = 'Active'
)`

func (r *teamsRepo) CreateTeam(ctx context.Context, t domain.Team, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO teams (id, org_id, name, description, status, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE `+adminGuard,
		t.ID, t.OrgID, t.Name, t.Description, t.Status, t.CreatedAt, t.UpdatedAt,
		t.OrgID, actorID)
}

func (r *teamsRepo) GetTeamByID(ctx context.Context, id, actorID idx.ID) (domain.Team, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, org_id, name, description, status, created_at, updated_at
		FROM teams
		WHERE id = ? AND `+teamOrgMemberGuard,
		id, actorID)

	var t domain.Team
	err := row.Scan(&t.ID, &t.OrgID, &t.Name, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Team{}, mapNotFound(err)
	}
	return t, nil
}

func (r *teamsRepo) ListTeams(ctx context.Context, orgID, actorID idx.ID) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, org_id, name, description, status, created_at, updated_at
		FROM teams
		WHERE org_id = ? AND status = 'Active' AND `+memberGuard+`
		ORDER BY created_at ASC`,
		orgID, orgID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.OrgID, &t.Name, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *teamsRepo) UpdateTeam(ctx context.Context, id, actorID idx.ID, name, description string) error {
	return guardExec(ctx, r.db, `
		UPDATE teams
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ? AND `+teamOrgAdminGuard,
		name, description, now(), id, actorID)
}

func (r *teamsRepo) ToggleTeamStatus(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE teams
		SET status = CASE WHEN status = 'Active' THEN 'Inactive' ELSE 'Active' END,
		    updated_at = ?
		WHERE id = ? AND `+teamOrgAdminGuard,
		now(), id, actorID)
}
