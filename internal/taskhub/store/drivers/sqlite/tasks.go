package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type tasksRepo struct {
	db dbtx
}

// taskManagerGuard matches when the actor may manage a task row: an
// active Admin of the org two hops up, or a project admin one hop up.
// Uses ?1 for the actor so callers bind it once.
const taskManagerGuard = `(
	EXISTS (
		SELECT 1 FROM projects p
		JOIN organization_members om ON om.org_id = p.org_id
		WHERE p.id = tasks.project_id
		  AND om.user_id = ?1 AND om.role = 'Admin' AND om.status = 'Active'
	)
	OR EXISTS (
		SELECT 1 FROM project_admins pa
		WHERE pa.project_id = tasks.project_id AND pa.user_id = ?1 AND pa.status = 'Active'
	)
)`

// taskAssigneeGuard matches when the actor is an assignee of the task,
// either directly or through an active membership in an assigned team.
const taskAssigneeGuard = `EXISTS (
	SELECT 1 FROM task_assignments ta
	WHERE ta.task_id = tasks.id AND ta.status = 'Active'
	  AND (
		(ta.assignee_type = 'User' AND ta.assignee_id = ?1)
		OR (ta.assignee_type = 'Team' AND EXISTS (
			SELECT 1 FROM team_members tm
			WHERE tm.team_id = ta.assignee_id AND tm.user_id = ?1 AND tm.status = 'Active'
		))
	  )
)`

const taskOrgMemberGuard = `EXISTS (
	SELECT 1 FROM projects p
	JOIN organization_members om ON om.org_id = p.org_id
	WHERE p.id = tasks.project_id AND om.user_id = ? AND om.status = 'Active'
)`

const taskColumns = `id, project_id, parent_task_id, name, description, deadline, status, created_by, updated_by, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (domain.Task, error) {
	var t domain.Task
	var parent sql.NullString
	var deadline sql.NullTime
	err := row.Scan(&t.ID, &t.ProjectID, &parent, &t.Name, &t.Description, &deadline,
		&t.Status, &t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt)
	t.ParentID = mapNullIDPtr(parent)
	t.Deadline = mapNullTimePtr(deadline)
	return t, err
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO tasks (id, project_id, parent_task_id, name, description, deadline, status, created_by, updated_by, created_at, updated_at)
		SELECT ?2, p.id, ?3, ?4, ?5, ?6, ?7, ?1, ?1, ?8, ?9
		FROM projects p
		WHERE p.id = ?10 AND p.status = 'Active'
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
		  AND (?3 IS NULL OR EXISTS (
			SELECT 1 FROM tasks pt
			WHERE pt.id = ?3 AND pt.project_id = p.id AND pt.status != 'Inactive'
		  ))`,
		actorID, t.ID, mapOptionalID(t.ParentID), t.Name, t.Description,
		mapOptionalTime(t.Deadline), t.Status, t.CreatedAt, t.UpdatedAt, t.ProjectID)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id, actorID idx.ID) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = ? AND status != 'Inactive' AND `+taskOrgMemberGuard,
		id, actorID)

	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) listTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tasksRepo) ListTasksByProject(ctx context.Context, projectID, actorID idx.ID) ([]domain.Task, error) {
	return r.listTasks(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE project_id = ? AND status != 'Inactive' AND `+taskOrgMemberGuard+`
		ORDER BY created_at ASC`,
		projectID, actorID)
}

// ListTasksForUser walks both assignment paths: tasks pointed straight at
// the user and tasks pointed at a team the user actively belongs to.
func (r *tasksRepo) ListTasksForUser(ctx context.Context, userID idx.ID) ([]domain.Task, error) {
	return r.listTasks(ctx, `
		SELECT DISTINCT t.id, t.project_id, t.parent_task_id, t.name, t.description, t.deadline, t.status, t.created_by, t.updated_by, t.created_at, t.updated_at
		FROM tasks t
		JOIN task_assignments ta ON ta.task_id = t.id AND ta.status = 'Active'
		LEFT JOIN team_members tm ON ta.assignee_type = 'Team'
			AND tm.team_id = ta.assignee_id AND tm.status = 'Active'
		WHERE t.status != 'Inactive'
		  AND (
			(ta.assignee_type = 'User' AND ta.assignee_id = ?1)
			OR (ta.assignee_type = 'Team' AND tm.user_id = ?1)
		  )
		ORDER BY t.created_at ASC`,
		userID)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id, actorID idx.ID, name, description string, deadline *time.Time) error {
	return guardExec(ctx, r.db, `
		UPDATE tasks
		SET name = ?2, description = ?3, deadline = ?4, updated_by = ?1, updated_at = ?5
		WHERE id = ?6 AND status != 'Inactive' AND `+taskManagerGuard,
		actorID, name, description, mapOptionalTime(deadline), now(), id)
}

func (r *tasksRepo) ToggleTaskDone(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE tasks
		SET status = CASE WHEN status = 'Done' THEN 'Pending' ELSE 'Done' END,
		    updated_by = ?1, updated_at = ?2
		WHERE id = ?3 AND status != 'Inactive'
		  AND (`+taskAssigneeGuard+` OR `+taskManagerGuard+`)`,
		actorID, now(), id)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE tasks
		SET status = 'Inactive', updated_by = ?1, updated_at = ?2
		WHERE id = ?3 AND status != 'Inactive' AND `+taskManagerGuard,
		actorID, now(), id)
}
