package tasksdk

import (
	"context"
	"net/http"
)

// CreateTeam creates a team inside an organization. Org admin only.
func (s *Session) CreateTeam(ctx context.Context, orgID, name, description string) (*TeamResponse, error) {
	var out TeamResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/orgs/"+orgID+"/teams",
		CreateTeamRequest{Name: name, Description: description}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTeams returns the organization's active teams. Members only.
func (s *Session) ListTeams(ctx context.Context, orgID string) ([]TeamResponse, error) {
	var out []TeamResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/"+orgID+"/teams", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTeam fetches a single team. Org membership is required.
func (s *Session) GetTeam(ctx context.Context, teamID string) (*TeamResponse, error) {
	var out TeamResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/teams/"+teamID, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeam changes a team's name and description. Org admin only.
func (s *Session) UpdateTeam(ctx context.Context, teamID, name, description string) error {
	return s.authJSON(ctx, http.MethodPatch, "/v1/teams/"+teamID,
		UpdateTeamRequest{Name: name, Description: description}, nil, http.StatusNoContent)
}

// ToggleTeam flips a team between Active and Inactive. Org admin only.
func (s *Session) ToggleTeam(ctx context.Context, teamID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/teams/"+teamID+"/toggle", nil, nil, http.StatusNoContent)
}

// AddTeamMember puts an org member on the team. Org admin only.
func (s *Session) AddTeamMember(ctx context.Context, teamID, userID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/teams/"+teamID+"/members",
		TeamMemberRequest{UserID: userID}, nil, http.StatusNoContent)
}

// ListTeamMembers returns the team's active members. Org members only.
func (s *Session) ListTeamMembers(ctx context.Context, teamID string) ([]MemberResponse, error) {
	var out []MemberResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/teams/"+teamID+"/members", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveTeamMember takes a user off the team. Org admin only.
func (s *Session) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/teams/"+teamID+"/members",
		TeamMemberRequest{UserID: userID}, nil, http.StatusNoContent)
}
