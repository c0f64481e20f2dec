package domain

import (
	"time"

	"github.com/opencrew/taskhub/pkg/idx"
)

// Task is a unit of work inside a project. ParentID links a subtask to
// its parent; the chain is not walked for cycles. CreatedBy and UpdatedBy
// record which user last touched the row.
type Task struct {
	ID          idx.ID
	ProjectID   idx.ID
	ParentID    *idx.ID
	Name        string
	Description string
	Deadline    *time.Time
	Status      string
	CreatedBy   idx.ID
	UpdatedBy   idx.ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Assignment points a task at either a single user or a whole team.
// AssigneeID is a user ID when Type is AssignUser and a team ID when Type
// is AssignTeam.
type Assignment struct {
	ID         idx.ID
	TaskID     idx.ID
	Type       string
	AssigneeID idx.ID
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Comment is a note on a task. Only the author may edit or remove it.
type Comment struct {
	ID        idx.ID
	TaskID    idx.ID
	AuthorID  idx.ID
	Body      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentProfile is a comment joined with its author's display name.
type CommentProfile struct {
	Comment
	AuthorName string
}
