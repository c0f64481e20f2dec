package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type projectAdminsRepo struct {
	db dbtx
}

func (r *projectAdminsRepo) AddProjectAdmin(ctx context.Context, pa domain.ProjectAdmin, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO project_admins (id, project_id, user_id, status, created_at, updated_at)
		SELECT ?, p.id, ?, 'Active', ?, ?
		FROM projects p
		WHERE p.id = ? AND p.status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM organization_members oa
			WHERE oa.org_id = p.org_id AND oa.user_id = ? AND oa.role = 'Admin' AND oa.status = 'Active'
		  )
		  AND EXISTS (
			SELECT 1 FROM organization_members ot
			WHERE ot.org_id = p.org_id AND ot.user_id = ? AND ot.status = 'Active'
		  )
		ON CONFLICT (project_id, user_id) DO UPDATE SET
			status = 'Active',
			updated_at = excluded.updated_at`,
		pa.ID, pa.UserID, pa.CreatedAt, pa.UpdatedAt,
		pa.ProjectID, actorID, pa.UserID)
}

func (r *projectAdminsRepo) ListProjectAdmins(ctx context.Context, projectID, actorID idx.ID) ([]domain.MemberProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT om.id, om.org_id, om.user_id, om.role, om.status, pa.created_at, pa.updated_at,
		       u.email, u.name
		FROM project_admins pa
		JOIN projects p ON p.id = pa.project_id
		JOIN users u ON u.id = pa.user_id
		JOIN organization_members om ON om.org_id = p.org_id AND om.user_id = pa.user_id
		WHERE pa.project_id = ? AND pa.status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM organization_members ov
			WHERE ov.org_id = p.org_id AND ov.user_id = ? AND ov.status = 'Active'
		  )
		ORDER BY pa.created_at ASC`,
		projectID, actorID)
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

func (r *projectAdminsRepo) RemoveProjectAdmin(ctx context.Context, projectID, userID, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE project_admins
		SET status = 'Inactive', updated_at = ?
		WHERE project_id = ? AND user_id = ? AND status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM projects p
			JOIN organization_members om ON om.org_id = p.org_id
			WHERE p.id = project_admins.project_id
			  AND om.user_id = ? AND om.role = 'Admin' AND om.status = 'Active'
		  )`,
		now(), projectID, userID, actorID)
}
