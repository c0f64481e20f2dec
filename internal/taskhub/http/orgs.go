package http

import (
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type OrgsHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleCreate godoc
//
//	@Summary		Create Organization
//	@Description	Create an organization with the caller as its first Admin.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateOrgRequest	true	"Organization details"
//	@Success		201		{object}	tasksdk.OrgResponse
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs [post].
func (h *OrgsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}

	var req tasksdk.CreateOrgRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	org, err := h.OrganizationService.CreateOrganization(r.Context(), actorID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOrgResponse(org, "Admin"))
}

// HandleListMine godoc
//
//	@Summary		List My Organizations
//	@Description	Return every organization the caller actively belongs to, with their role.
//	@Tags			Organizations
//	@Produce		json
//	@Success		200	{array}	tasksdk.OrgResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/mine [get].
func (h *OrgsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}

	orgs, err := h.OrganizationService.ListMine(r.Context(), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.OrgResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, toOrgResponse(o.Organization, o.Role))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Organization
//	@Description	Return one organization. Visible to active members only.
//	@Tags			Organizations
//	@Produce		json
//	@Param			id	path		string	true	"Organization id"
//	@Success		200	{object}	tasksdk.OrgResponse
//	@Failure		404	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id} [get].
func (h *OrgsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	org, err := h.OrganizationService.GetOrganization(r.Context(), orgID, actorID)
	if err != nil {
		if errors.Is(err, service.ErrOrgNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Organization not found")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrgResponse(org, ""))
}

// HandleUpdate godoc
//
//	@Summary		Update Organization
//	@Description	Update the organization name and description. Admin only.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Organization id"
//	@Param			request	body		tasksdk.UpdateOrgRequest	true	"New name and description"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id} [patch].
func (h *OrgsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.UpdateOrgRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.OrganizationService.UpdateOrganization(r.Context(), orgID, actorID, req.Name, req.Description); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle godoc
//
//	@Summary		Toggle Organization Status
//	@Description	Flip the organization between Active and Inactive. Admin only.
//	@Tags			Organizations
//	@Produce		json
//	@Param			id	path	string	true	"Organization id"
//	@Success		204	"No Content"
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/toggle [post].
func (h *OrgsHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.OrganizationService.ToggleOrganization(r.Context(), orgID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
