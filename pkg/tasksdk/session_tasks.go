package tasksdk

import (
	"context"
	"net/http"
	"time"
)

// CreateTask creates a task in a project. Org admins and project admins
// may call.
func (s *Session) CreateTask(ctx context.Context, projectID, name, description string, deadline *time.Time) (*TaskResponse, error) {
	var out TaskResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/tasks", CreateTaskRequest{
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Deadline:    deadline,
	}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSubtask creates a task under an existing task of the same
// project. Same authorization as CreateTask.
func (s *Session) CreateSubtask(ctx context.Context, projectID, parentTaskID, name, description string, deadline *time.Time) (*TaskResponse, error) {
	var out TaskResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/tasks", CreateTaskRequest{
		ProjectID:    projectID,
		ParentTaskID: parentTaskID,
		Name:         name,
		Description:  description,
		Deadline:     deadline,
	}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MyTasks lists every live task assigned to the caller, directly or
// through a team, across all organizations.
func (s *Session) MyTasks(ctx context.Context) ([]TaskResponse, error) {
	var out []TaskResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/tasks", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjectTasks returns the project's live tasks. Org members only.
func (s *Session) ListProjectTasks(ctx context.Context, projectID string) ([]TaskResponse, error) {
	var out []TaskResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/projects/"+projectID+"/tasks", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTask fetches a single task. Org membership is required.
func (s *Session) GetTask(ctx context.Context, taskID string) (*TaskResponse, error) {
	var out TaskResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/tasks/"+taskID, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask changes a task's name, description and deadline. Org admins
// and project admins may call.
func (s *Session) UpdateTask(ctx context.Context, taskID, name, description string, deadline *time.Time) error {
	return s.authJSON(ctx, http.MethodPatch, "/v1/tasks/"+taskID, UpdateTaskRequest{
		Name:        name,
		Description: description,
		Deadline:    deadline,
	}, nil, http.StatusNoContent)
}

// ToggleTaskDone flips a task between Pending and Done. Assignees and
// managers may call.
func (s *Session) ToggleTaskDone(ctx context.Context, taskID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/tasks/"+taskID+"/toggle", nil, nil, http.StatusNoContent)
}

// DeleteTask soft-deletes a task. Org admins and project admins may call.
func (s *Session) DeleteTask(ctx context.Context, taskID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/tasks/"+taskID, nil, nil, http.StatusNoContent)
}

// Assign points a task at a user or a team. assigneeType is "User" or
// "Team".
func (s *Session) Assign(ctx context.Context, taskID, assigneeType, assigneeID string) (*AssignmentResponse, error) {
	var out AssignmentResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/tasks/"+taskID+"/assignments",
		AssignRequest{Type: assigneeType, AssigneeID: assigneeID}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAssignments returns the task's active assignments.
func (s *Session) ListAssignments(ctx context.Context, taskID string) ([]AssignmentResponse, error) {
	var out []AssignmentResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/tasks/"+taskID+"/assignments", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Unassign removes one assignment from a task.
func (s *Session) Unassign(ctx context.Context, taskID, assignmentID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/tasks/"+taskID+"/assignments/"+assignmentID,
		nil, nil, http.StatusNoContent)
}

// Comment adds a note to a task. Any active org member may call.
func (s *Session) Comment(ctx context.Context, taskID, body string) (*CommentResponse, error) {
	var out CommentResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/tasks/"+taskID+"/comments",
		CreateCommentRequest{Body: body}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListComments returns the task's comments, oldest first.
func (s *Session) ListComments(ctx context.Context, taskID string) ([]CommentResponse, error) {
	var out []CommentResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/tasks/"+taskID+"/comments", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateComment edits one of the caller's own comments.
func (s *Session) UpdateComment(ctx context.Context, commentID, body string) error {
	return s.authJSON(ctx, http.MethodPatch, "/v1/comments/"+commentID,
		UpdateCommentRequest{Body: body}, nil, http.StatusNoContent)
}

// DeleteComment soft-deletes one of the caller's own comments.
func (s *Session) DeleteComment(ctx context.Context, commentID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/comments/"+commentID, nil, nil, http.StatusNoContent)
}
