package domain

import (
	"time"

	"github.com/opencrew/taskhub/pkg/idx"
)

// Organization is the top-level tenant. Teams and projects hang off it and
// all authorization decisions trace back to a membership row here.
type Organization struct {
	ID          idx.ID
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Member links a user to an organization with a role. The creating user
// becomes the first Admin; everyone else arrives through an invitation.
type Member struct {
	ID        idx.ID
	OrgID     idx.ID
	UserID    idx.ID
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberProfile is a membership row joined with the user it belongs to,
// used by listing endpoints.
type MemberProfile struct {
	Member
	Email string
	Name  string
}

// OrgSummary is an organization joined with the caller's role in it.
type OrgSummary struct {
	Organization
	Role string
}

// Invitation is a pending offer to join an organization. Only the SHA-256
// fingerprint of the token is stored; the raw token travels once, in the
// invitation email. Invitations expire after seven days.
type Invitation struct {
	ID        idx.ID
	OrgID     idx.ID
	Email     string
	Role      string
	TokenHash string
	Status    string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invitation can no longer be accepted.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
