package tasksdk

import (
	"context"
	"net/http"
)

// CreateOrg creates an organization with the caller as its first Admin.
func (s *Session) CreateOrg(ctx context.Context, name, description string) (*OrgResponse, error) {
	var out OrgResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/orgs", CreateOrgRequest{Name: name, Description: description}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MyOrgs lists the organizations the caller is an active member of,
// each annotated with the caller's role.
func (s *Session) MyOrgs(ctx context.Context) ([]OrgResponse, error) {
	var out []OrgResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/mine", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrg fetches one organization. Membership is required.
func (s *Session) GetOrg(ctx context.Context, orgID string) (*OrgResponse, error) {
	var out OrgResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/"+orgID, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrg changes an organization's name and description. Admin only.
func (s *Session) UpdateOrg(ctx context.Context, orgID, name, description string) error {
	return s.authJSON(ctx, http.MethodPatch, "/v1/orgs/"+orgID, UpdateOrgRequest{Name: name, Description: description}, nil, http.StatusNoContent)
}

// ToggleOrg flips an organization between Active and Inactive. Admin only.
func (s *Session) ToggleOrg(ctx context.Context, orgID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/orgs/"+orgID+"/toggle", nil, nil, http.StatusNoContent)
}

// ListMembers returns every active member of the organization. Admin only.
func (s *Session) ListMembers(ctx context.Context, orgID string) ([]MemberResponse, error) {
	var out []MemberResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/"+orgID+"/members", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAdmins returns the organization's active admins. Any member may call.
func (s *Session) ListAdmins(ctx context.Context, orgID string) ([]MemberResponse, error) {
	var out []MemberResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/"+orgID+"/admins", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// PromoteMember raises a Member to Admin. Admin only.
func (s *Session) PromoteMember(ctx context.Context, orgID, userID string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/orgs/"+orgID+"/admins",
		RoleChangeRequest{UserID: userID}, nil, http.StatusNoContent)
}

// DemoteAdmin lowers an Admin back to Member. Fails with "last_admin"
// when the target is the organization's only active admin.
func (s *Session) DemoteAdmin(ctx context.Context, orgID, userID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/orgs/"+orgID+"/admins",
		RoleChangeRequest{UserID: userID}, nil, http.StatusNoContent)
}

// RemoveMember deactivates a membership. Subject to the same last-admin
// protection as DemoteAdmin.
func (s *Session) RemoveMember(ctx context.Context, orgID, userID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/orgs/"+orgID+"/members",
		RoleChangeRequest{UserID: userID}, nil, http.StatusNoContent)
}

// Invite emails an invitation to join the organization. Admin only.
// Re-inviting a pending address reissues the token.
func (s *Session) Invite(ctx context.Context, orgID, email, role string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/orgs/"+orgID+"/invitations",
		InviteRequest{Email: email, Role: role}, nil, http.StatusAccepted)
}

// ListInvitations returns the organization's invitations. Admin only.
func (s *Session) ListInvitations(ctx context.Context, orgID string) ([]InviteResponse, error) {
	var out []InviteResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/orgs/"+orgID+"/invitations", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// AcceptInvitation redeems a raw invitation token for the signed-in
// account. The account email must match the invited address.
func (s *Session) AcceptInvitation(ctx context.Context, token string) (*AcceptedInvitationResponse, error) {
	var out AcceptedInvitationResponse
	err := s.authJSON(ctx, http.MethodPost, "/v1/invitations/accept",
		InvitationActionRequest{Token: token}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeclineInvitation settles a pending invitation without joining.
func (s *Session) DeclineInvitation(ctx context.Context, token string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/invitations/decline",
		InvitationActionRequest{Token: token}, nil, http.StatusNoContent)
}
