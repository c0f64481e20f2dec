package tasksdk

import (
	"context"
	"net/http"
)

// CreateProject creates a project inside an organization. Org admin only.
func (s *Session) CreateProject(ctx context.Context, orgID, name, description string) (*ProjectResponse, error) {
	var out ProjectResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/orgs/"+orgID+"/projects",
		CreateProjectRequest{Name: name, Description: description}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects returns the organization's active projects. Members only.
func (s *Session) ListProjects(ctx context.Context, orgID string) ([]ProjectResponse, error) {
	var out []ProjectResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/"+orgID+"/projects", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject fetches a single project. Org membership is required.
func (s *Session) GetProject(ctx context.Context, projectID string) (*ProjectResponse, error) {
	var out ProjectResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/projects/"+projectID, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject changes a project's name and description. Org admins and
// project admins may call.
func (s *Session) UpdateProject(ctx context.Context, projectID, name, description string) error {
	return s.authJSON(ctx, http.MethodPatch, "/v1/projects/"+projectID,
		UpdateProjectRequest{Name: name, Description: description}, nil, http.StatusNoContent)
}

// ToggleProject flips a project between Active and Inactive.
func (s *Session) ToggleProject(ctx context.Context, projectID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/projects/"+projectID+"/toggle", nil, nil, http.StatusNoContent)
}

// AddProjectAdmin grants an org member project-scoped admin rights.
// Org admin only.
func (s *Session) AddProjectAdmin(ctx context.Context, projectID, userID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/projects/"+projectID+"/admins",
		ProjectAdminRequest{UserID: userID}, nil, http.StatusNoContent)
}

// ListProjectAdmins returns the project's active admins.
func (s *Session) ListProjectAdmins(ctx context.Context, projectID string) ([]MemberResponse, error) {
	var out []MemberResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/projects/"+projectID+"/admins", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveProjectAdmin revokes project-scoped admin rights. Org admin only.
func (s *Session) RemoveProjectAdmin(ctx context.Context, projectID, userID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/projects/"+projectID+"/admins",
		ProjectAdminRequest{UserID: userID}, nil, http.StatusNoContent)
}
