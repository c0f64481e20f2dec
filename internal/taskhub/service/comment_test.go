package service

import (
	"context"
	"testing"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentService, taskFixture, domain.Task) {
	t.Helper()

	fx := newTaskFixture(t)
	task, err := fx.tasks.CreateTask(context.Background(), fx.project.ID, fx.owner.ID, "Ship homepage", "", nil, nil)
	require.NoError(t, err)

	return &CommentService{Store: fx.tasks.Store}, fx, task
}

func TestCreateAndListComments(t *testing.T) {
	ctx := context.Background()
	svc, fx, task := newCommentFixture(t)

	// Any active org member may comment, assignment not required.
	c, err := svc.CreateComment(ctx, task.ID, fx.member.ID, "Looks good so far")
	require.NoError(t, err)
	require.Equal(t, fx.member.ID, c.AuthorID)

	_, err = svc.CreateComment(ctx, task.ID, fx.owner.ID, "Agreed, shipping it")
	require.NoError(t, err)

	comments, err := svc.ListComments(ctx, task.ID, fx.member.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "Looks good so far", comments[0].Body)
	require.Equal(t, fx.member.Name, comments[0].AuthorName)
}

func TestCreateCommentRejectsOutsiders(t *testing.T) {
	ctx := context.Background()
	svc, fx, task := newCommentFixture(t)
	outsider := seedUser(t, fx.tasks.Store, "outsider@example.com", "Outsider")

	_, err := svc.CreateComment(ctx, task.ID, outsider.ID, "Let me in")
	require.ErrorIs(t, err, ErrNotAllowed)

	_, err = svc.CreateComment(ctx, task.ID, fx.member.ID, "")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	ctx := context.Background()
	svc, fx, task := newCommentFixture(t)

	c, err := svc.CreateComment(ctx, task.ID, fx.member.ID, "First draft")
	require.NoError(t, err)

	// Even org admins cannot edit someone else's comment.
	require.ErrorIs(t, svc.UpdateComment(ctx, c.ID, fx.owner.ID, "Edited by admin"), ErrNotAllowed)
	require.NoError(t, svc.UpdateComment(ctx, c.ID, fx.member.ID, "Second draft"))

	comments, err := svc.ListComments(ctx, task.ID, fx.member.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "Second draft", comments[0].Body)
}

func TestRemoveCommentAuthorOnly(t *testing.T) {
	ctx := context.Background()
	svc, fx, task := newCommentFixture(t)

	c, err := svc.CreateComment(ctx, task.ID, fx.member.ID, "Delete me")
	require.NoError(t, err)

	require.ErrorIs(t, svc.RemoveComment(ctx, c.ID, fx.owner.ID), ErrNotAllowed)
	require.NoError(t, svc.RemoveComment(ctx, c.ID, fx.member.ID))

	comments, err := svc.ListComments(ctx, task.ID, fx.member.ID)
	require.NoError(t, err)
	require.Empty(t, comments)

	// A removed comment cannot be edited back to life.
	require.ErrorIs(t, svc.UpdateComment(ctx, c.ID, fx.member.ID, "Necromancy"), ErrNotAllowed)
}

func TestCommentsOnDeletedTaskRejected(t *testing.T) {
	ctx := context.Background()
	svc, fx, task := newCommentFixture(t)

	require.NoError(t, fx.tasks.DeleteTask(ctx, task.ID, fx.owner.ID))

	_, err := svc.CreateComment(ctx, task.ID, fx.member.ID, "Too late")
	require.ErrorIs(t, err, ErrNotAllowed)
}
