package domain

import (
	"time"

	"github.com/opencrew/taskhub/pkg/idx"
)

// Team is a named group of organization members. Tasks may be assigned to
// a team, which makes every team member an assignee.
type Team struct {
	ID          idx.ID
	OrgID       idx.ID
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember links an organization member to a team.
type TeamMember struct {
	ID        idx.ID
	TeamID    idx.ID
	UserID    idx.ID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
