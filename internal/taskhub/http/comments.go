package http

import (
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type CommentsHandler struct {
	CommentService *service.CommentService
}

// HandleCreate godoc
//
//	@Summary		Create Comment
//	@Description	Add a comment to a task. Any active member of the owning organization.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Task id"
//	@Param			request	body		tasksdk.CreateCommentRequest	true	"Comment body"
//	@Success		201		{object}	tasksdk.CommentResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id}/comments [post].
func (h *CommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	a, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.CreateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.CommentService.CreateComment(r.Context(), taskID, actorID, req.Body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCommentResponse(c, a.Name))
}

// HandleList godoc
//
//	@Summary		List Comments
//	@Description	Return the task's comments, oldest first. Visible to active members of the owning organization.
//	@Tags			Comments
//	@Produce		json
//	@Param			id	path	string	true	"Task id"
//	@Success		200	{array}	tasksdk.CommentResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id}/comments [get].
func (h *CommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), taskID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c.Comment, c.AuthorName))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary		Edit Comment
//	@Description	Edit a comment body. Author only.
//	@Tags			Comments
//	@Accept			json
//	@Param			id		path	string							true	"Comment id"
//	@Param			request	body	tasksdk.UpdateCommentRequest	true	"New body"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/comments/{id} [patch].
func (h *CommentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.UpdateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.CommentService.UpdateComment(r.Context(), commentID, actorID, req.Body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary		Remove Comment
//	@Description	Soft-delete a comment. Author only.
//	@Tags			Comments
//	@Param			id	path	string	true	"Comment id"
//	@Success		204	"No Content"
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/comments/{id} [delete].
func (h *CommentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.CommentService.RemoveComment(r.Context(), commentID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toCommentResponse(c domain.Comment, authorName string) tasksdk.CommentResponse {
	return tasksdk.CommentResponse{
		ID:         c.ID.String(),
		TaskID:     c.TaskID.String(),
		AuthorID:   c.AuthorID.String(),
		AuthorName: authorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
