package store

import (
	"context"
	"errors"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrNotAllowed is returned by guarded mutations when the actor lacks
	// the required membership or role. The guard is part of the statement
	// itself (WHERE EXISTS over the membership tables), so a missing row
	// and a forbidden row are indistinguishable here on purpose.
	ErrNotAllowed = errors.New("store: not allowed")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Verifications() Verifications
	Organizations() Organizations
	Members() Members
	Invitations() Invitations
	Teams() Teams
	TeamMembers() TeamMembers
	Projects() Projects
	ProjectAdmins() ProjectAdmins
	Tasks() Tasks
	Assignments() Assignments
	Comments() Comments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error, the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id, regardless of status.
	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)

	// GetActiveUserByEmail is used during sign-in. Inactive users do not
	// authenticate.
	GetActiveUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// EmailTaken reports whether an active user already holds the email.
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type Verifications interface {
	// CreateVerification writes a pending registration record.
	CreateVerification(ctx context.Context, v domain.Verification) error

	// ConsumeVerification atomically deletes the record matching the
	// process id and code and returns it. ErrNotFound means wrong code,
	// unknown process or already consumed.
	ConsumeVerification(ctx context.Context, processID, code string) (domain.Verification, error)

	// DeleteVerificationsByEmail clears older attempts when a new code is
	// requested for the same address.
	DeleteVerificationsByEmail(ctx context.Context, email string) error

	// DeleteExpiredVerifications is housekeeping.
	DeleteExpiredVerifications(ctx context.Context, now time.Time) error
}

type Organizations interface {
	// CreateOrganization inserts the org row. The caller pairs it with
	// Members.CreateMember inside one transaction so the creator becomes
	// the first Admin.
	CreateOrganization(ctx context.Context, o domain.Organization) error

	// GetOrganizationByID returns an org visible to actorID, meaning the
	// actor holds an active membership of any role.
	GetOrganizationByID(ctx context.Context, id, actorID idx.ID) (domain.Organization, error)

	// ListOrganizationsForUser returns every org the user actively
	// belongs to, with the user's role attached.
	ListOrganizationsForUser(ctx context.Context, userID idx.ID) ([]domain.OrgSummary, error)

	// UpdateOrganization updates name and description. The statement only
	// matches when actorID is an active Admin of the org; zero rows
	// yields ErrNotAllowed.
	UpdateOrganization(ctx context.Context, id, actorID idx.ID, name, description string) error

	// ToggleOrganizationStatus flips Active/Inactive under the same admin
	// guard.
	ToggleOrganizationStatus(ctx context.Context, id, actorID idx.ID) error
}

type Members interface {
	// CreateMember inserts a membership row.
	CreateMember(ctx context.Context, m domain.Member) error

	// GetMember returns the membership of userID in orgID, any status.
	GetMember(ctx context.Context, orgID, userID idx.ID) (domain.Member, error)

	// ListMembers returns active memberships joined with user profiles.
	// Admin-only: the query is guarded by actorID's own membership.
	ListMembers(ctx context.Context, orgID, actorID idx.ID) ([]domain.MemberProfile, error)

	// ListAdmins returns the org's active Admins joined with profiles.
	// Visible to any active member.
	ListAdmins(ctx context.Context, orgID, actorID idx.ID) ([]domain.MemberProfile, error)

	// PromoteMember sets role=Admin on an active Member row, guarded by
	// actorID being an active Admin of the same org.
	PromoteMember(ctx context.Context, orgID, userID, actorID idx.ID) error

	// DemoteAdmin sets role=Member, additionally guarded by the org
	// keeping at least one other active Admin afterwards.
	DemoteAdmin(ctx context.Context, orgID, userID, actorID idx.ID) error

	// RemoveMember soft-deletes a membership. Demoting-style guard: the
	// last active Admin cannot be removed.
	RemoveMember(ctx context.Context, orgID, userID, actorID idx.ID) error

	// ReviveMember reactivates a soft-deleted membership with a new
	// role. Used when a removed member accepts a fresh invitation; the
	// invitation token is the authorization.
	ReviveMember(ctx context.Context, orgID, userID idx.ID, role string) error

	// IsActiveAdmin reports whether userID is an active Admin of orgID.
	IsActiveAdmin(ctx context.Context, orgID, userID idx.ID) (bool, error)
}

type Invitations interface {
	// UpsertInvitation inserts a pending invitation or refreshes the
	// token, role and expiry of an existing pending one for the same
	// (org, email) pair. Guarded by actorID being an active Admin.
	UpsertInvitation(ctx context.Context, inv domain.Invitation, actorID idx.ID) error

	// GetPendingInvitationByTokenHash returns a pending, unexpired
	// invitation by its token fingerprint.
	GetPendingInvitationByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Invitation, error)

	// ListInvitations returns the org's invitations, newest first.
	// Admin-only via the usual guard.
	ListInvitations(ctx context.Context, orgID, actorID idx.ID) ([]domain.Invitation, error)

	// MarkInvitationAccepted flips status to Accepted. The caller pairs
	// it with Members.CreateMember in one transaction.
	MarkInvitationAccepted(ctx context.Context, id idx.ID) error

	// MarkInvitationDeclined flips status to Declined.
	MarkInvitationDeclined(ctx context.Context, id idx.ID) error

	// DeleteExpiredInvitations is housekeeping for pending rows past
	// their expiry.
	DeleteExpiredInvitations(ctx context.Context, now time.Time) error
}

type Teams interface {
	// CreateTeam inserts a team, guarded by actorID being an active
	// Admin of the owning org.
	CreateTeam(ctx context.Context, t domain.Team, actorID idx.ID) error

	// GetTeamByID returns a team visible to actorID (active member of
	// the owning org).
	GetTeamByID(ctx context.Context, id, actorID idx.ID) (domain.Team, error)

	// ListTeams returns the org's active teams, visible to any active
	// member.
	ListTeams(ctx context.Context, orgID, actorID idx.ID) ([]domain.Team, error)

	// UpdateTeam updates name and description under the org-admin guard.
	UpdateTeam(ctx context.Context, id, actorID idx.ID, name, description string) error

	// ToggleTeamStatus flips Active/Inactive under the org-admin guard.
	ToggleTeamStatus(ctx context.Context, id, actorID idx.ID) error
}

type TeamMembers interface {
	// AddTeamMember inserts or revives a team membership. The target
	// user must be an active member of the owning org and actorID an
	// active Admin of it.
	AddTeamMember(ctx context.Context, tm domain.TeamMember, actorID idx.ID) error

	// ListTeamMembers returns the team's active members with profiles,
	// visible to any active member of the owning org.
	ListTeamMembers(ctx context.Context, teamID, actorID idx.ID) ([]domain.MemberProfile, error)

	// RemoveTeamMember soft-deletes a team membership under the
	// org-admin guard.
	RemoveTeamMember(ctx context.Context, teamID, userID, actorID idx.ID) error
}

type Projects interface {
	// CreateProject inserts a project, guarded by actorID being an
	// active Admin of the owning org.
	CreateProject(ctx context.Context, p domain.Project, actorID idx.ID) error

	// GetProjectByID returns a project visible to actorID (active member
	// of the owning org).
	GetProjectByID(ctx context.Context, id, actorID idx.ID) (domain.Project, error)

	// ListProjects returns the org's active projects, visible to any
	// active member.
	ListProjects(ctx context.Context, orgID, actorID idx.ID) ([]domain.Project, error)

	// UpdateProject sets name and description. Allowed for org Admins
	// and active project admins.
	UpdateProject(ctx context.Context, id, actorID idx.ID, name, description string) error

	// ToggleProjectStatus flips Active/Inactive under the same combined
	// guard.
	ToggleProjectStatus(ctx context.Context, id, actorID idx.ID) error
}

type ProjectAdmins interface {
	// AddProjectAdmin inserts or revives a project admin grant for an
	// active org member, guarded by actorID being an active org Admin.
	AddProjectAdmin(ctx context.Context, pa domain.ProjectAdmin, actorID idx.ID) error

	// ListProjectAdmins returns active grants with profiles, visible to
	// any active member of the owning org.
	ListProjectAdmins(ctx context.Context, projectID, actorID idx.ID) ([]domain.MemberProfile, error)

	// RemoveProjectAdmin soft-deletes a grant under the org-admin guard.
	RemoveProjectAdmin(ctx context.Context, projectID, userID, actorID idx.ID) error
}

type Tasks interface {
	// CreateTask inserts a task. Allowed for org Admins and project
	// admins of the owning project.
	CreateTask(ctx context.Context, t domain.Task, actorID idx.ID) error

	// GetTaskByID returns a task visible to actorID (active member of
	// the owning org).
	GetTaskByID(ctx context.Context, id, actorID idx.ID) (domain.Task, error)

	// ListTasksByProject returns the project's non-deleted tasks.
	ListTasksByProject(ctx context.Context, projectID, actorID idx.ID) ([]domain.Task, error)

	// ListTasksForUser returns every task assigned to the user directly
	// or through one of their teams.
	ListTasksForUser(ctx context.Context, userID idx.ID) ([]domain.Task, error)

	// UpdateTask sets name, description and deadline under the combined
	// admin guard. Stamps updated_by with the actor.
	UpdateTask(ctx context.Context, id, actorID idx.ID, name, description string, deadline *time.Time) error

	// ToggleTaskDone flips Pending/Done. Allowed for assignees: the user
	// directly, or any member of an assigned team, plus the admin set.
	// Stamps updated_by with the actor.
	ToggleTaskDone(ctx context.Context, id, actorID idx.ID) error

	// DeleteTask soft-deletes (status=Inactive) under the combined admin
	// guard. Stamps updated_by with the actor.
	DeleteTask(ctx context.Context, id, actorID idx.ID) error
}

type Assignments interface {
	// CreateAssignment inserts or revives an assignment under the
	// combined admin guard on the task's project.
	CreateAssignment(ctx context.Context, a domain.Assignment, actorID idx.ID) error

	// ListAssignments returns a task's active assignments, visible to
	// any active member of the owning org.
	ListAssignments(ctx context.Context, taskID, actorID idx.ID) ([]domain.Assignment, error)

	// RemoveAssignment soft-deletes an assignment under the combined
	// admin guard.
	RemoveAssignment(ctx context.Context, id, actorID idx.ID) error
}

type Comments interface {
	// CreateComment inserts a comment. Any active member of the owning
	// org may comment.
	CreateComment(ctx context.Context, c domain.Comment, actorID idx.ID) error

	// ListComments returns a task's active comments with author names,
	// oldest first, visible to any active member of the owning org.
	ListComments(ctx context.Context, taskID, actorID idx.ID) ([]domain.CommentProfile, error)

	// UpdateComment edits the body. Author-only.
	UpdateComment(ctx context.Context, id, actorID idx.ID, body string) error

	// RemoveComment soft-deletes a comment. Author-only.
	RemoveComment(ctx context.Context, id, actorID idx.ID) error
}
