package http

import (
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type TeamsHandler struct {
	TeamService *service.TeamService
}

// HandleCreate godoc
//
//	@Summary		Create Team
//	@Description	Create a team in the organization. Admin only.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Organization id"
//	@Param			request	body		tasksdk.CreateTeamRequest	true	"Team details"
//	@Success		201		{object}	tasksdk.TeamResponse
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/teams [post].
func (h *TeamsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.CreateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	team, err := h.TeamService.CreateTeam(r.Context(), orgID, actorID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTeamResponse(team))
}

// HandleList godoc
//
//	@Summary		List Teams
//	@Description	Return the organization's active teams. Visible to any active member.
//	@Tags			Teams
//	@Produce		json
//	@Param			id	path	string	true	"Organization id"
//	@Success		200	{array}	tasksdk.TeamResponse
//	@Security		SessionCookie
//	@Router			/v1/orgs/{id}/teams [get].
func (h *TeamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	teams, err := h.TeamService.ListTeams(r.Context(), orgID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Team
//	@Description	Return one team. Visible to active members of the owning organization.
//	@Tags			Teams
//	@Produce		json
//	@Param			id	path		string	true	"Team id"
//	@Success		200	{object}	tasksdk.TeamResponse
//	@Failure		404	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/teams/{id} [get].
func (h *TeamsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	team, err := h.TeamService.GetTeam(r.Context(), teamID, actorID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Team not found")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTeamResponse(team))
}

// HandleUpdate godoc
//
//	@Summary		Update Team
//	@Description	Update the team name and description. Org Admin only.
//	@Tags			Teams
//	@Accept			json
//	@Param			id		path	string						true	"Team id"
//	@Param			request	body	tasksdk.UpdateTeamRequest	true	"New name and description"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/teams/{id} [patch].
func (h *TeamsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.UpdateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.TeamService.UpdateTeam(r.Context(), teamID, actorID, req.Name, req.Description); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle godoc
//
//	@Summary		Toggle Team Status
//	@Description	Flip the team between Active and Inactive. Org Admin only.
//	@Tags			Teams
//	@Param			id	path	string	true	"Team id"
//	@Success		204	"No Content"
//	@Failure		403	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/teams/{id}/toggle [post].
func (h *TeamsHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.TeamService.ToggleTeam(r.Context(), teamID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddMember godoc
//
//	@Summary		Add Team Member
//	@Description	Put an active org member on the team. Org Admin only.
//	@Tags			Teams
//	@Accept			json
//	@Param			id		path	string						true	"Team id"
//	@Param			request	body	tasksdk.TeamMemberRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/teams/{id}/members [post].
func (h *TeamsHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.TeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, err := idx.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid user_id")
		return
	}

	if err := h.TeamService.AddMember(r.Context(), teamID, userID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListMembers godoc
//
//	@Summary		List Team Members
//	@Description	Return the team's active members. Visible to active members of the owning organization.
//	@Tags			Teams
//	@Produce		json
//	@Param			id	path	string	true	"Team id"
//	@Success		200	{array}	tasksdk.MemberResponse
//	@Security		SessionCookie
//	@Router			/v1/teams/{id}/members [get].
func (h *TeamsHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.TeamService.ListMembers(r.Context(), teamID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponses(members))
}

// HandleRemoveMember godoc
//
//	@Summary		Remove Team Member
//	@Description	Soft-delete a team membership. Org Admin only.
//	@Tags			Teams
//	@Accept			json
//	@Param			id		path	string						true	"Team id"
//	@Param			request	body	tasksdk.TeamMemberRequest	true	"Target user"
//	@Success		204		"No Content"
//	@Failure		403		{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/teams/{id}/members [delete].
func (h *TeamsHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	_, actorID, ok := actor(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tasksdk.TeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, err := idx.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid user_id")
		return
	}

	if err := h.TeamService.RemoveMember(r.Context(), teamID, userID, actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
