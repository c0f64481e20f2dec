package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type projectsRepo struct {
	db dbtx
}

// projectManagerGuard matches when the actor may manage a project row:
// either an active Admin of the owning org, or an active project admin
// grant on the project itself.
const projectManagerGuard = `(
	EXISTS (
		SELECT 1 FROM organization_members om
		WHERE om.org_id = projects.org_id AND om.user_id = ?1 AND om.role = 'Admin' AND om.status = 'Active'
	)
	OR EXISTS (
		SELECT 1 FROM project_admins pa
		WHERE pa.project_id = projects.id AND pa.user_id = ?1 AND pa.status = 'Active'
	)
)`

const projectOrgMemberGuard = `EXISTS (
	SELECT 1 FROM organization_members om
	WHERE om.org_id = projects.org_id AND om.user_id = ? AND om.status = 'Active'
)`

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO projects (id, org_id, name, description, status, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE `+adminGuard,
		p.ID, p.OrgID, p.Name, p.Description, p.Status, p.CreatedAt, p.UpdatedAt,
		p.OrgID, actorID)
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id, actorID idx.ID) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, org_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE id = ? AND `+projectOrgMemberGuard,
		id, actorID)

	var p domain.Project
	err := row.Scan(&p.ID, &p.OrgID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context, orgID, actorID idx.ID) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, org_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE org_id = ? AND status = 'Active' AND `+memberGuard+`
		ORDER BY created_at ASC`,
		orgID, orgID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(&p.ID, &p.OrgID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectsRepo) UpdateProject(ctx context.Context, id, actorID idx.ID, name, description string) error {
	return guardExec(ctx, r.db, `
		UPDATE projects
		SET name = ?2, description = ?3, updated_at = ?4
		WHERE id = ?5 AND `+projectManagerGuard,
		actorID, name, description, now(), id)
}

func (r *projectsRepo) ToggleProjectStatus(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE projects
		SET status = CASE WHEN status = 'Active' THEN 'Inactive' ELSE 'Active' END,
		    updated_at = ?2
		WHERE id = ?3 AND `+projectManagerGuard,
		actorID, now(), id)
}
