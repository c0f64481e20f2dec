package sqlite

import (
	"context"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

type commentsRepo struct {
	db dbtx
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		INSERT INTO comments (id, task_id, author_id, body, status, created_at, updated_at)
		SELECT ?, t.id, ?, ?, 'Active', ?, ?
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = ? AND t.status != 'Inactive'
		  AND EXISTS (
			SELECT 1 FROM organization_members om
			WHERE om.org_id = p.org_id AND om.user_id = ? AND om.status = 'Active'
		  )`,
		c.ID, c.AuthorID, c.Body, c.CreatedAt, c.UpdatedAt,
		c.TaskID, actorID)
}

func (r *commentsRepo) ListComments(ctx context.Context, taskID, actorID idx.ID) ([]domain.CommentProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.task_id, c.author_id, c.body, c.status, c.created_at, c.updated_at, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		JOIN tasks t ON t.id = c.task_id
		JOIN projects p ON p.id = t.project_id
		WHERE c.task_id = ? AND c.status = 'Active'
		  AND EXISTS (
			SELECT 1 FROM organization_members om
			WHERE om.org_id = p.org_id AND om.user_id = ? AND om.status = 'Active'
		  )
		ORDER BY c.created_at ASC`,
		taskID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CommentProfile
	for rows.Next() {
		var c domain.CommentProfile
		err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.Status,
			&c.CreatedAt, &c.UpdatedAt, &c.AuthorName)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Author-only: the guard is the author_id match itself.
func (r *commentsRepo) UpdateComment(ctx context.Context, id, actorID idx.ID, body string) error {
	return guardExec(ctx, r.db, `
		UPDATE comments
		SET body = ?, updated_at = ?
		WHERE id = ? AND author_id = ? AND status = 'Active'`,
		body, now(), id, actorID)
}

func (r *commentsRepo) RemoveComment(ctx context.Context, id, actorID idx.ID) error {
	return guardExec(ctx, r.db, `
		UPDATE comments
		SET status = 'Inactive', updated_at = ?
		WHERE id = ? AND author_id = ? AND status = 'Active'`,
		now(), id, actorID)
}
