package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/jwtx"
	"github.com/opencrew/taskhub/pkg/slogx"

	_ "github.com/opencrew/taskhub/api/taskhub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer        jwtx.Signer
	verifier      jwtx.Verifier
	issuer        string
	buildVersion  string
	sessionTTL    time.Duration
	secureCookies bool
	startTime     time.Time
	logger        *slog.Logger

	store               store.Store
	AccountService      *service.AccountService
	RegistrationService *service.RegistrationService
	OrganizationService *service.OrganizationService
	MembershipService   *service.MembershipService
	TeamService         *service.TeamService
	ProjectService      *service.ProjectService
	TaskService         *service.TaskService
	CommentService      *service.CommentService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	sessionTTL time.Duration,
	secureCookies bool,
	allowedOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		signer:        signer,
		verifier:      verifier,
		issuer:        issuer,
		buildVersion:  buildVersion,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		startTime:     time.Now(),
		store:         st,
		logger:        logger,
	}

	// Set default middleware chain. CORS runs outermost so preflights get
	// answered before anything else looks at the request.
	r.middlewares = []httpx.Middleware{
		httpx.CORS(allowedOrigins),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerOrgs()
	r.registerInvitations()
	r.registerTeams()
	r.registerProjects()
	r.registerTasks()
	r.registerComments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TaskHub API
//	@version		0.1.0
//	@description	Task and project management backend for organizations, with
//	@description	team membership, role-based access and email-verified signup.
//	@description	Sessions ride in a signed HttpOnly cookie valid for one hour.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						taskhub_session
//	@description				Signed session token set by POST /v1/signin.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with session verification and a per-user rate
// limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.SessionMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	signInHandler := &SignInHandler{
		AccountService: r.AccountService,
		Signer:         r.signer,
		Issuer:         r.issuer,
		SessionTTL:     r.sessionTTL,
		SecureCookies:  r.secureCookies,
	}

	// POST /signin - strict rate limit by IP (credential endpoint)
	r.Mux.Handle("POST /v1/signin",
		httpx.Chain(signInHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/signout",
		httpx.Chain(&SignOutHandler{SecureCookies: r.secureCookies},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &RegistrationHandler{
		RegistrationService: r.RegistrationService,
		AccountService:      r.AccountService,
	}

	// Public signup endpoints - strict rate limit by IP. The code
	// endpoint especially: 6 digits do not survive brute force without
	// this.
	r.Mux.Handle("POST /v1/users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/users/email/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyEmail),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/users", r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
}

func (r *Router) registerOrgs() {
	orgs := &OrgsHandler{OrganizationService: r.OrganizationService}
	members := &MembersHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("POST /v1/orgs", r.secured(http.HandlerFunc(orgs.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/orgs/mine", r.secured(http.HandlerFunc(orgs.HandleListMine), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/orgs/{id}", r.secured(http.HandlerFunc(orgs.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/orgs/{id}", r.secured(http.HandlerFunc(orgs.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/orgs/{id}/toggle", r.secured(http.HandlerFunc(orgs.HandleToggle), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/orgs/{id}/members", r.secured(http.HandlerFunc(members.HandleListMembers), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/orgs/{id}/members", r.secured(http.HandlerFunc(members.HandleRemove), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/orgs/{id}/admins", r.secured(http.HandlerFunc(members.HandleListAdmins), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/orgs/{id}/admins", r.secured(http.HandlerFunc(members.HandlePromote), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/orgs/{id}/admins", r.secured(http.HandlerFunc(members.HandleDemote), httpx.ModerateLimit))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{
		MembershipService: r.MembershipService,
		AccountService:    r.AccountService,
	}

	r.Mux.Handle("POST /v1/orgs/{id}/invitations", r.secured(http.HandlerFunc(h.HandleInvite), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/orgs/{id}/invitations", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))

	// Token redemption gets the strict profile: tokens arrive from email
	// links and a guessing loop should hit the wall fast.
	r.Mux.Handle("POST /v1/invitations/accept", r.secured(http.HandlerFunc(h.HandleAccept), httpx.StrictLimit))
	r.Mux.Handle("POST /v1/invitations/decline", r.secured(http.HandlerFunc(h.HandleDecline), httpx.StrictLimit))
}

func (r *Router) registerTeams() {
	h := &TeamsHandler{TeamService: r.TeamService}

	r.Mux.Handle("POST /v1/orgs/{id}/teams", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/orgs/{id}/teams", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/teams/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/teams/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/teams/{id}/toggle", r.secured(http.HandlerFunc(h.HandleToggle), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/teams/{id}/members", r.secured(http.HandlerFunc(h.HandleAddMember), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/teams/{id}/members", r.secured(http.HandlerFunc(h.HandleListMembers), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/teams/{id}/members", r.secured(http.HandlerFunc(h.HandleRemoveMember), httpx.ModerateLimit))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("POST /v1/orgs/{id}/projects", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/orgs/{id}/projects", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/projects/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/projects/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/projects/{id}/toggle", r.secured(http.HandlerFunc(h.HandleToggle), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/projects/{id}/admins", r.secured(http.HandlerFunc(h.HandleAddAdmin), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}/admins", r.secured(http.HandlerFunc(h.HandleListAdmins), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/projects/{id}/admins", r.secured(http.HandlerFunc(h.HandleRemoveAdmin), httpx.ModerateLimit))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("POST /v1/tasks", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tasks", r.secured(http.HandlerFunc(h.HandleListMine), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/projects/{id}/tasks", r.secured(http.HandlerFunc(h.HandleListByProject), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/tasks/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/tasks/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tasks/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/tasks/{id}/toggle", r.secured(http.HandlerFunc(h.HandleToggle), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/tasks/{id}/assignments", r.secured(http.HandlerFunc(h.HandleAssign), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tasks/{id}/assignments", r.secured(http.HandlerFunc(h.HandleListAssignments), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/tasks/{id}/assignments/{aid}", r.secured(http.HandlerFunc(h.HandleUnassign), httpx.ModerateLimit))
}

func (r *Router) registerComments() {
	h := &CommentsHandler{CommentService: r.CommentService}

	r.Mux.Handle("POST /v1/tasks/{id}/comments", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tasks/{id}/comments", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/comments/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/comments/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
