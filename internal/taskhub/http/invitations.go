package http

import (
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type InvitationsHandler struct {
	MembershipService *service.MembershipService
	AccountService    *service.AccountService
}

// HandleInvite godoc
//
//	@Summary		Invite to Organization
//	@Description	Email an invitation token to an address. Re-inviting the same address refreshes the pending invitation. Admin only. The token expires after 7 days.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Organization id"
//	@Param			request	body		tasksdk.InviteRequest	true	"Invitee and role"
//	@Success		202		"Accepted"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/invitations [post].
func (h *InvitationsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.InviteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.MembershipService.Invite(r.Context(), orgID, actorID, req.Email, req.Role); err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			writeError(w, http.StatusBadRequest, "invalid_request", "Role must be Admin or Member")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// HandleList godoc
//
//	@Summary		List Invitations
//	@Description	Return the organization's invitations, newest first. Admin only.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Organization id"
//	@Success		200	{array}	tasksdk.InviteResponse
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	invs, err := h.MembershipService.ListInvitations(r.Context(), orgID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.InviteResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, tasksdk.InviteResponse{
			Email:     inv.Email,
			Role:      inv.Role,
			Status:    inv.Status,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeem an invitation token for the signed-in account. The account email must match the invited address.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.InvitationActionRequest	true	"Raw invitation token"
//	@Success		200		{object}	tasksdk.AcceptedInvitationResponse
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		404		{object}	tasksdk.ErrorResponse
//	@Failure		409		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/invitations/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	var req tasksdk.InvitationActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.MembershipService.AcceptInvitation(r.Context(), user, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Invitation not found or expired")
		case errors.Is(err, service.ErrAlreadyMember):
			writeError(w, http.StatusConflict, "already_member", "Already a member of this organization")
		default:
			writeServiceError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.AcceptedInvitationResponse{
		OrgID: member.OrgID.String(),
		Role:  member.Role,
	})
}

// HandleDecline godoc
//
//	@Summary		Decline Invitation
//	@Description	Settle a pending invitation without joining.
//	@Tags			Invitations
//	@Accept			json
//	@Success		204	"No Content"
//	@Failure		404	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/invitations/decline [post].
func (h *InvitationsHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	var req tasksdk.InvitationActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.MembershipService.DeclineInvitation(r.Context(), user, req.Token); err != nil {
		if errors.Is(err, service.ErrInvitationNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Invitation not found or expired")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionUser loads the full account for the session actor. Invitation
// matching keys off the account email, and the session claim could lag a
// profile change, so the store copy wins.
func (h *InvitationsHandler) sessionUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	a, _, ok := actor(w, r)
	if !ok {
		return domain.User{}, false
	}
	user, err := h.AccountService.GetUser(r.Context(), a.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return domain.User{}, false
	}
	return user, true
}
