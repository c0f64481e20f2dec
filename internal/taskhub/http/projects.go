package http

import (
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleCreate godoc
//
//	@Summary		Create Project
//	@Description	Create a project in the organization. Org Admin only.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Organization id"
//	@Param			request	body		tasksdk.CreateProjectRequest	true	"Project details"
//	@Success		201		{object}	tasksdk.ProjectResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := h.ProjectService.CreateProject(r.Context(), orgID, actorID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(project))
}

// HandleList godoc
//
//	@Summary		List Projects
//	@Description	Return the organization's active projects. Visible to any active member.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path	string	true	"Organization id"
//	@Success		200	{array}	tasksdk.ProjectResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	projects, err := h.ProjectService.ListProjects(r.Context(), orgID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Project
//	@Description	Return one project. Visible to active members of the owning organization.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string	true	"Project id"
//	@Success		200	{object}	tasksdk.ProjectResponse
//	@Failure		404	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.ProjectService.GetProject(r.Context(), projectID, actorID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Project not found")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleUpdate godoc
//
//	@Summary		Update Project
//	@Description	Update name and description. Org Admins and project admins.
//	@Tags			Projects
//	@Accept			json
//	@Param			id		path	string							true	"Project id"
//	@Param			request	body	tasksdk.UpdateProjectRequest	true	"New details"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id} [patch].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.ProjectService.UpdateProject(r.Context(), projectID, actorID, req.Name, req.Description); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle godoc
//
//	@Summary		Toggle Project Status
//	@Description	Flip the project between Active and Inactive. Org Admins and project admins.
//	@Tags			Projects
//	@Param			id	path	string	true	"Project id"
//	@Success		204	"No Content"
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id}/toggle [post].
func (h *ProjectsHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.ProjectService.ToggleProject(r.Context(), projectID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddAdmin godoc
//
//	@Summary		Grant Project Admin
//	@Description	Grant project-scoped admin rights to an active org member. Org Admin only.
//	@Tags			Projects
//	@Accept			json
//	@Param			id		path	string						true	"Project id"
//	@Param			request	body	tasksdk.ProjectAdminRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id}/admins [post].
func (h *ProjectsHandler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.ProjectAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, err := idx.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid user_id")
		return
	}

	if err := h.ProjectService.AddAdmin(r.Context(), projectID, userID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListAdmins godoc
//
//	@Summary		List Project Admins
//	@Description	Return the project's active admin grants. Visible to active members of the owning organization.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path	string	true	"Project id"
//	@Success		200	{array}	tasksdk.MemberResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id}/admins [get].
func (h *ProjectsHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	admins, err := h.ProjectService.ListAdmins(r.Context(), projectID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponses(admins))
}

// HandleRemoveAdmin godoc
//
//	@Summary		Revoke Project Admin
//	@Description	Soft-delete a project admin grant. Org Admin only.
//	@Tags			Projects
//	@Accept			json
//	@Param			id		path	string						true	"Project id"
//	@Param			request	body	tasksdk.ProjectAdminRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/projects/{id}/admins [delete].
func (h *ProjectsHandler) HandleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.ProjectAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, err := idx.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid user_id")
		return
	}

	if err := h.ProjectService.RemoveAdmin(r.Context(), projectID, userID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
