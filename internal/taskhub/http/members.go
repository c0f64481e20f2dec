package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// HandleListMembers godoc
//
//	@Summary		List Members
//	@Description	Return the organization's active members. Admin only.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path	string	true	"Organization id"
//	@Success		200	{array}	tasksdk.MemberResponse
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/members [get].
func (h *MembersHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.MembershipService.ListMembers(r.Context(), orgID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponses(members))
}

// HandleListAdmins godoc
//
//	@Summary		List Admins
//	@Description	Return the organization's active admins. Visible to any active member.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path	string	true	"Organization id"
//	@Success		200	{array}	tasksdk.MemberResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/admins [get].
func (h *MembersHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	admins, err := h.MembershipService.ListAdmins(r.Context(), orgID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponses(admins))
}

// HandlePromote godoc
//
//	@Summary		Promote Member
//	@Description	Raise an active Member to Admin. Admin only.
//	@Tags			Members
//	@Accept			json
//	@Param			id		path	string						true	"Organization id"
//	@Param			request	body	tasksdk.RoleChangeRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/admins [post].
func (h *MembersHandler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	h.roleChange(w, r, h.MembershipService.PromoteMember)
}

// HandleDemote godoc
//
//	@Summary		Demote Admin
//	@Description	Lower an Admin to Member. Refused when it would leave the organization without an active Admin.
//	@Tags			Members
//	@Accept			json
//	@Param			id		path	string						true	"Organization id"
//	@Param			request	body	tasksdk.RoleChangeRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Failure		409		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/admins [delete].
func (h *MembersHandler) HandleDemote(w http.ResponseWriter, r *http.Request) {
	h.roleChange(w, r, h.MembershipService.DemoteAdmin)
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Soft-delete a membership, with the same last-admin protection as demotion.
//	@Tags			Members
//	@Accept			json
//	@Param			id		path	string						true	"Organization id"
//	@Param			request	body	tasksdk.RoleChangeRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Failure		409		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/members [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.roleChange(w, r, h.MembershipService.RemoveMember)
}

func (h *MembersHandler) roleChange(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, orgID, userID, actorID idx.ID) error) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.RoleChangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, err := idx.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid user_id")
		return
	}

	if err := fn(r.Context(), orgID, userID, actorID); err != nil {
		if errors.Is(err, service.ErrLastAdmin) {
			writeError(w, http.StatusConflict, "last_admin", "Organization must keep at least one active admin")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
