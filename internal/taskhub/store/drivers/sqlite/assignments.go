package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type assignmentsRepo struct {
	db dbtx
}

// CreateAssignment inserts or revives an assignment. The SELECT source
// verifies the task is live, the actor may manage it, and the assignee is
// a valid target inside the same org: an active org member for 'User', an
// active team of the org for 'Team'.
func (r *assignmentsRepo) CreateAssignment(ctx context.Context, a domain.Assignment, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO task_assignments (id, task_id, assignee_type, assignee_id, status, created_at, updated_at)
		SELECT ?2, t.id, ?3, ?4, 'Active', ?5, ?6
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = ?7 AND t.status != 'Inactive'
		  AND (
			EXISTS (
				SELECT 1 FROM organization_members om
				WHERE om.org_id = p.org_id AND om.user_id = ?1 AND om.role = 'Admin' AND om.status = 'Active'
			)
			OR EXISTS (
				SELECT 1 FROM project_admins pa
				WHERE pa.project_id = p.id AND pa.user_id = ?1 AND pa.status = 'Active'
			)
		  )
		  AND (
			(?3 = 'User' AND EXISTS (
				SELECT 1 FROM organization_members tm
				WHERE tm.org_id = p.org_id AND tm.user_id = ?4 AND tm.status = 'Active'
			))
			OR (?3 = 'Team' AND EXISTS (
				SELECT 1 FROM teams te
				WHERE te.id = ?4 AND te.org_id = p.org_id AND te.status = 'Active'
			))
		  )
		ON CONFLICT (task_id, assignee_type, assignee_id) DO UPDATE SET
			status = 'Active',
			updated_at = excluded.updated_at`,
		actorID, a.ID, a.Type, a.AssigneeID, a.CreatedAt, a.UpdatedAt, a.TaskID)
}

func (r *assignmentsRepo) ListAssignments(ctx context.Context, taskID, actorID idx.ID) ([]domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ta.id, ta.task_id, ta.assignee_type, ta.assignee_id, ta.status, ta.created_at, ta.updated_at
		FROM task_assignments ta
		JOIN tasks t ON t.id = ta.task_id
		JOIN projects p ON p.id = t.project_id
		WHERE ta.task_id = ? AND ta.status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM organization_members om
			WHERE om.org_id = p.org_id AND om.user_id = ? AND om.status = 'Active'
		  )
		ORDER BY ta.created_at ASC`,
		taskID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		err := rows.Scan(&a.ID, &a.TaskID, &a.Type, &a.AssigneeID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *assignmentsRepo) RemoveAssignment(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE task_assignments
		SET status = 'Inactive', updated_at = ?2
		WHERE id = ?3 AND status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM tasks t
			JOIN projects p ON p.id = t.project_id
			WHERE t.id = task_assignments.task_id
			  AND (
				EXISTS (
					SELECT 1 FROM organization_members om
					WHERE om.org_id = p.org_id AND om.user_id = ?1 AND om.role = 'Admin' AND om.status = 'Active'
				)
				OR EXISTS (
					SELECT 1 FROM project_admins pa
					WHERE pa.project_id = p.id AND pa.user_id = ?1 AND pa.status = 'Active'
				)
			  )
		  )`,
		actorID, now(), id)
}
