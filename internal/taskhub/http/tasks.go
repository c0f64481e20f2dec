package http

import (
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleCreate godoc
//
//	@Summary		Create Task
//	@Description	Create a task in a project. Org Admins and project admins.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"Task details"
//	@Success		201		{object}	tasksdk.TaskResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var req tasksdk.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	projectID, err := idx.Parse(req.ProjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid project_id")
		return
	}

	var parentID *idx.ID
	if req.ParentTaskID != "" {
		parent, err := idx.Parse(req.ParentTaskID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid parent_task_id")
			return
		}
		parentID = &parent
	}

	task, err := h.TaskService.CreateTask(r.Context(), projectID, actorID, req.Name, req.Description, req.Deadline, parentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTaskResponse(task))
}

// HandleListMine godoc
//
//	@Summary		List My Tasks
//	@Description	Return every task assigned to the caller, directly or through a team.
//	@Tags			Tasks
//	@Produce		json
//	@Success		200	{array}	tasksdk.TaskResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}

	tasks, err := h.TaskService.ListMine(r.Context(), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// HandleListByProject godoc
//
//	@Summary		List Project Tasks
//	@Description	Return the project's tasks, Pending and Done alike. Visible to active members of the owning organization.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path	string	true	"Project id"
//	@Success		200	{array}	tasksdk.TaskResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id}/tasks [get].
func (h *TasksHandler) HandleListByProject(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tasks, err := h.TaskService.ListByProject(r.Context(), projectID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// HandleGet godoc
//
//	@Summary		Get Task
//	@Description	Return one task. Visible to active members of the owning organization.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string	true	"Task id"
//	@Success		200	{object}	tasksdk.TaskResponse
//	@Failure		404	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.TaskService.GetTask(r.Context(), taskID, actorID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Task not found")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTaskResponse(task))
}

// HandleUpdate godoc
//
//	@Summary		Update Task
//	@Description	Update name, description and deadline. Org Admins and project admins.
//	@Tags			Tasks
//	@Accept			json
//	@Param			id		path	string						true	"Task id"
//	@Param			request	body	tasksdk.UpdateTaskRequest	true	"New details"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.TaskService.UpdateTask(r.Context(), taskID, actorID, req.Name, req.Description, req.Deadline); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle godoc
//
//	@Summary		Toggle Task Done
//	@Description	Flip the task between Pending and Done. Assignees (directly or via a team) and the project's admin set.
//	@Tags			Tasks
//	@Param			id	path	string	true	"Task id"
//	@Success		204	"No Content"
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id}/toggle [post].
func (h *TasksHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.TaskService.ToggleDone(r.Context(), taskID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary		Delete Task
//	@Description	Soft-delete a task. Org Admins and project admins.
//	@Tags			Tasks
//	@Param			id	path	string	true	"Task id"
//	@Success		204	"No Content"
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.TaskService.DeleteTask(r.Context(), taskID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAssign godoc
//
//	@Summary		Assign Task
//	@Description	Point a task at a user or a team in the same organization. Org Admins and project admins.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task id"
//	@Param			request	body		tasksdk.AssignRequest	true	"Assignee"
//	@Success		201		{object}	tasksdk.AssignmentResponse
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id}/assignments [post].
func (h *TasksHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.AssignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	assigneeID, err := idx.Parse(req.AssigneeID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid assignee_id")
		return
	}

	a, err := h.TaskService.Assign(r.Context(), taskID, actorID, req.Type, assigneeID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAssignee) {
			writeError(w, http.StatusBadRequest, "invalid_request", "Type must be User or Team")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.AssignmentResponse{
		ID:         a.ID.String(),
		TaskID:     a.TaskID.String(),
		Type:       a.Type,
		AssigneeID: a.AssigneeID.String(),
		CreatedAt:  a.CreatedAt,
	})
}

// HandleListAssignments godoc
//
//	@Summary		List Assignments
//	@Description	Return the task's active assignments. Visible to active members of the owning organization.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path	string	true	"Task id"
//	@Success		200	{array}	tasksdk.AssignmentResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id}/assignments [get].
func (h *TasksHandler) HandleListAssignments(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	assignments, err := h.TaskService.ListAssignments(r.Context(), taskID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, tasksdk.AssignmentResponse{
			ID:         a.ID.String(),
			TaskID:     a.TaskID.String(),
			Type:       a.Type,
			AssigneeID: a.AssigneeID.String(),
			CreatedAt:  a.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUnassign godoc
//
//	@Summary		Remove Assignment
//	@Description	Soft-delete an assignment. Org Admins and project admins.
//	@Tags			Tasks
//	@Param			id		path	string	true	"Task id"
//	@Param			aid	path	string	true	"Assignment id"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/tasks/{id}/assignments/{aid} [delete].
func (h *TasksHandler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	assignmentID, ok := pathID(w, r, "aid")
	if !ok {
		return
	}

	if err := h.TaskService.Unassign(r.Context(), assignmentID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
