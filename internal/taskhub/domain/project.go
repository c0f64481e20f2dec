package domain

import (
	"time"

	"github.com/opencrew/taskhub/pkg/idx"
)

// Project groups tasks inside an organization.
type Project struct {
	ID          idx.ID
	OrgID       idx.ID
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectAdmin grants a member project-scoped admin rights on top of
// whatever their organization role says.
type ProjectAdmin struct {
	ID        idx.ID
	ProjectID idx.ID
	UserID    idx.ID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
