package tasksdk

import "time"

// ErrorResponse is the standard error body every endpoint returns on
// failure.
type ErrorResponse struct {
	// Error is the machine-readable code (e.g., "invalid_request", "forbidden")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth & Registration
// ============================================================================

// SignInRequest carries the credentials for POST /v1/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse returns the session-holder's profile. The session itself
// travels in an HttpOnly cookie set by the server.
type SignInResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// RegisterRequest starts an email-verified signup.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterResponse hands back the process id the client must echo when
// submitting the emailed code.
type RegisterResponse struct {
	ProcessID string `json:"process_id"`
}

// VerifyEmailRequest completes a signup with the emailed 6-digit code.
type VerifyEmailRequest struct {
	ProcessID string `json:"process_id"`
	Code      string `json:"code"`
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// Organizations & Members
// ============================================================================

type CreateOrgRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateOrgRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type OrgResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Role        string    `json:"role,omitempty"` // the caller's role, on listing endpoints
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MemberResponse is a membership joined with the member's profile.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// RoleChangeRequest targets a member for promotion, demotion or removal.
type RoleChangeRequest struct {
	UserID string `json:"user_id"`
}

// ============================================================================
// Invitations
// ============================================================================

type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"` // "Admin" or "Member"
}

type InviteResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// InvitationActionRequest carries the raw token from the invitation email
// for accept and decline.
type InvitationActionRequest struct {
	Token string `json:"token"`
}

// AcceptedInvitationResponse reports the membership created by a
// successful accept.
type AcceptedInvitationResponse struct {
	OrgID string `json:"org_id"`
	Role  string `json:"role"`
}

// ============================================================================
// Teams
// ============================================================================

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TeamResponse struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamMemberRequest adds or removes a user from a team.
type TeamMemberRequest struct {
	UserID string `json:"user_id"`
}

// ============================================================================
// Projects
// ============================================================================

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectAdminRequest grants or revokes project-scoped admin rights.
type ProjectAdminRequest struct {
	UserID string `json:"user_id"`
}

// ============================================================================
// Tasks
// ============================================================================

type CreateTaskRequest struct {
	ProjectID string `json:"project_id"`

	// ParentTaskID makes the new task a subtask of an existing task in
	// the same project.
	ParentTaskID string     `json:"parent_task_id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

type UpdateTaskRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type TaskResponse struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	ParentTaskID string     `json:"parent_task_id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Status       string     `json:"status"`
	CreatedBy    string     `json:"created_by"`
	UpdatedBy    string     `json:"updated_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AssignRequest points a task at a user or a team.
type AssignRequest struct {
	Type       string `json:"type"` // "User" or "Team"
	AssigneeID string `json:"assignee_id"`
}

type AssignmentResponse struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	Type       string    `json:"type"`
	AssigneeID string    `json:"assignee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ============================================================================
// Comments
// ============================================================================

type CreateCommentRequest struct {
	Body string `json:"body"`
}

type UpdateCommentRequest struct {
	Body string `json:"body"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks itemizes dependency probes on /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Mailer   string `json:"mailer,omitempty"`
}
