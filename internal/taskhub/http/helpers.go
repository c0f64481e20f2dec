// Package http wires the service layer to the outside world. Handlers
// decode requests, thread the session actor into service calls and map
// service errors onto status codes. Guard failures come back as 403 with
// no hint about whether the resource exists.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/slogx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tasksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, tasksdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

// actor returns the authenticated caller or writes a 401. The session
// middleware normally guarantees presence, so the nil path only fires on
// misrouted registrations.
func actor(w http.ResponseWriter, r *http.Request) (httpx.Actor, idx.ID, bool) {
	a, ok := httpx.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return httpx.Actor{}, idx.Zero, false
	}
	id, err := idx.Parse(a.ID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid session subject")
		return httpx.Actor{}, idx.Zero, false
	}
	return a, id, true
}

// pathID parses the named path segment as an ID or writes a 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (idx.ID, bool) {
	id, err := idx.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid "+name)
		return idx.Zero, false
	}
	return id, true
}

// writeServiceError maps the shared service errors onto status codes.
// Handler-specific errors are handled before falling through to here.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request parameters")
	case errors.Is(err, service.ErrNotAllowed):
		writeError(w, http.StatusForbidden, "forbidden", "Not allowed")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Internal error")
	}
}

func toUserResponse(u domain.User) tasksdk.UserResponse {
	return tasksdk.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toOrgResponse(o domain.Organization, role string) tasksdk.OrgResponse {
	return tasksdk.OrgResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
		Status:      o.Status,
		Role:        role,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toMemberResponses(members []domain.MemberProfile) []tasksdk.MemberResponse {
	out := make([]tasksdk.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, tasksdk.MemberResponse{
			UserID:   m.UserID.String(),
			Email:    m.Email,
			Name:     m.Name,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		})
	}
	return out
}

func toTeamResponse(t domain.Team) tasksdk.TeamResponse {
	return tasksdk.TeamResponse{
		ID:          t.ID.String(),
		OrgID:       t.OrgID.String(),
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toProjectResponse(p domain.Project) tasksdk.ProjectResponse {
	return tasksdk.ProjectResponse{
		ID:          p.ID.String(),
		OrgID:       p.OrgID.String(),
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toTaskResponse(t domain.Task) tasksdk.TaskResponse {
	var parent string
	if t.ParentID != nil {
		parent = t.ParentID.String()
	}
	return tasksdk.TaskResponse{
		ID:           t.ID.String(),
		ProjectID:    t.ProjectID.String(),
		ParentTaskID: parent,
		Name:         t.Name,
		Description:  t.Description,
		Deadline:     t.Deadline,
		Status:       t.Status,
		CreatedBy:    t.CreatedBy.String(),
		UpdatedBy:    t.UpdatedBy.String(),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toTaskResponses(tasks []domain.Task) []tasksdk.TaskResponse {
	out := make([]tasksdk.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
