package domain

// Nearly every entity is soft-deleted with a status flag rather than
// physically removed.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Organization membership roles. Admin is required for every mutating
// operation on an organization and the things it owns.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// Invitation lifecycle.
const (
	InvitationPending  = "Pending"
	InvitationAccepted = "Accepted"
	InvitationDeclined = "Declined"
)

// Task lifecycle. Inactive means soft-deleted; Pending and Done both show
// up in listings.
const (
	TaskPending  = "Pending"
	TaskDone     = "Done"
	TaskInactive = "Inactive"
)

// Assignment target kinds.
const (
	AssignUser = "User"
	AssignTeam = "Team"
)
