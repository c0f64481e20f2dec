package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidAssignee    = errors.New("invalid assignee")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

type TaskService struct {
	Store store.Store
}

// CreateTask adds a task to a project. A non-nil parentID makes it a
// subtask; the parent must be a live task of the same project.
func (s *TaskService) CreateTask(ctx context.Context, projectID, actorID idx.ID, name, description string, deadline *time.Time, parentID *idx.ID) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Task{}, ErrInvalidRequest
	}

	task := domain.Task{
		ID:          idx.New(),
		ProjectID:   projectID,
		ParentID:    parentID,
		Name:        name,
		Description: description,
		Deadline:    deadline,
		Status:      domain.TaskPending,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
		CreatedAt:   nowUTC(),
		UpdatedAt:   nowUTC(),
	}

	if err := s.Store.Tasks().CreateTask(ctx, task, actorID); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			return domain.Task{}, ErrNotAllowed
		}
		log.Error("failed to create task", slog.Any("error", err))
		return domain.Task{}, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", projectID.String()),
	)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID, actorID idx.ID) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTaskByID(ctx, taskID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) ListByProject(ctx context.Context, projectID, actorID idx.ID) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksByProject(ctx, projectID, actorID)
}

// ListMine returns every task assigned to the caller, directly or through
// a team.
func (s *TaskService) ListMine(ctx context.Context, actorID idx.ID) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksForUser(ctx, actorID)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID, actorID idx.ID, name, description string, deadline *time.Time) error {
	if name == "" {
		return ErrInvalidRequest
	}
	return mapGuard(ctx, "update task", s.Store.Tasks().UpdateTask(ctx, taskID, actorID, name, description, deadline))
}

// ToggleDone flips a task between Pending and Done. Assignees and project
// managers may toggle; the store statement walks both paths.
func (s *TaskService) ToggleDone(ctx context.Context, taskID, actorID idx.ID) error {
	return mapGuard(ctx, "toggle task", s.Store.Tasks().ToggleTaskDone(ctx, taskID, actorID))
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, actorID idx.ID) error {
	return mapGuard(ctx, "delete task", s.Store.Tasks().DeleteTask(ctx, taskID, actorID))
}

// Assign points a task at a user or a team.
func (s *TaskService) Assign(ctx context.Context, taskID, actorID idx.ID, assigneeType string, assigneeID idx.ID) (domain.Assignment, error) {
	if assigneeType != domain.AssignUser && assigneeType != domain.AssignTeam {
		return domain.Assignment{}, ErrInvalidAssignee
	}

	a := domain.Assignment{
		ID:         idx.New(),
		TaskID:     taskID,
		Type:       assigneeType,
		AssigneeID: assigneeID,
		Status:     domain.StatusActive,
		CreatedAt:  nowUTC(),
		UpdatedAt:  nowUTC(),
	}

	if err := mapGuard(ctx, "assign task", s.Store.Assignments().CreateAssignment(ctx, a, actorID)); err != nil {
		return domain.Assignment{}, err
	}
	return a, nil
}

func (s *TaskService) ListAssignments(ctx context.Context, taskID, actorID idx.ID) ([]domain.Assignment, error) {
	return s.Store.Assignments().ListAssignments(ctx, taskID, actorID)
}

func (s *TaskService) Unassign(ctx context.Context, assignmentID, actorID idx.ID) error {
	return mapGuard(ctx, "unassign task", s.Store.Assignments().RemoveAssignment(ctx, assignmentID, actorID))
}
