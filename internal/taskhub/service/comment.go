package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	Store store.Store
}

// CreateComment adds a note to a task. Any active member of the owning
// organization may comment, not just assignees.
func (s *CommentService) CreateComment(ctx context.Context, taskID, actorID idx.ID, body string) (domain.Comment, error) {
	log := slogx.FromContext(ctx)

	if body == "" {
		return domain.Comment{}, ErrInvalidRequest
	}

	c := domain.Comment{
		ID:        idx.New(),
		TaskID:    taskID,
		AuthorID:  actorID,
		Body:      body,
		Status:    domain.StatusActive,
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
	}

	if err := s.Store.Comments().CreateComment(ctx, c, actorID); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			return domain.Comment{}, ErrNotAllowed
		}
		log.Error("failed to create comment", slog.Any("error", err))
		return domain.Comment{}, err
	}

	return c, nil
}

func (s *CommentService) ListComments(ctx context.Context, taskID, actorID idx.ID) ([]domain.CommentProfile, error) {
	return s.Store.Comments().ListComments(ctx, taskID, actorID)
}

// UpdateComment edits the body. Only the author's id matches the guard.
func (s *CommentService) UpdateComment(ctx context.Context, commentID, actorID idx.ID, body string) error {
	if body == "" {
		return ErrInvalidRequest
	}
	return mapGuard(ctx, "edit comment", s.Store.Comments().UpdateComment(ctx, commentID, actorID, body))
}

func (s *CommentService) RemoveComment(ctx context.Context, commentID, actorID idx.ID) error {
	return mapGuard(ctx, "remove comment", s.Store.Comments().RemoveComment(ctx, commentID, actorID))
}
