package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/opencrew/taskhub/internal/taskhub/http"
	"github.com/opencrew/taskhub/internal/taskhub/mail"
	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/internal/taskhub/store/drivers/sqlite"
	"github.com/opencrew/taskhub/pkg/cryptox"
	"github.com/opencrew/taskhub/pkg/jwtx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the taskhub service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.EdDSASigner
	verifier *jwtx.EdDSAVerifier
	mailer   mail.Mailer

	// Services
	accountService      *service.AccountService
	registrationService *service.RegistrationService
	organizationService *service.OrganizationService
	membershipService   *service.MembershipService
	teamService         *service.TeamService
	projectService      *service.ProjectService
	taskService         *service.TaskService
	commentService      *service.CommentService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "taskhub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSessionKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("taskhub service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down taskhub service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("taskhub service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSessionKeys loads the Ed25519 session signing key, generating one
// on first run, and builds the signer/verifier pair from it.
func (app *Application) initSessionKeys() error {
	pemKey, err := jwtx.LoadOrGenerateKey(app.cfg.SessionKeyFile)
	if err != nil {
		return fmt.Errorf("failed to load session key: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(pemKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}

	app.signer = signer
	app.verifier = jwtx.NewVerifierEdDSA(signer.PublicKey(), app.cfg.Issuer)
	return nil
}

// initMailer selects the outbound mail transport. Without an SMTP relay
// configured, mail is written to the log so dev setups need no mail server.
func (app *Application) initMailer() {
	if app.cfg.SMTPAddr == "" {
		app.logger.Info("no SMTP relay configured, mail will be logged")
		app.mailer = mail.LogMailer{}
		return
	}

	app.mailer = &mail.SMTPMailer{
		Addr:    app.cfg.SMTPAddr,
		From:    app.cfg.SMTPFrom,
		BaseURL: app.cfg.FrontendURL,
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.accountService = &service.AccountService{Store: app.db}
	app.registrationService = &service.RegistrationService{
		Store:  app.db,
		Mailer: app.mailer,
	}
	app.organizationService = &service.OrganizationService{Store: app.db}
	app.membershipService = &service.MembershipService{
		Store:  app.db,
		Mailer: app.mailer,
	}
	app.teamService = &service.TeamService{Store: app.db}
	app.projectService = &service.ProjectService{Store: app.db}
	app.taskService = &service.TaskService{Store: app.db}
	app.commentService = &service.CommentService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.verifier,
		app.cfg.Issuer,
		BuildVersion,
		app.cfg.SessionTTL,
		app.cfg.SecureCookies,
		app.cfg.AllowedOrigins,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.RegistrationService = app.registrationService
	router.OrganizationService = app.organizationService
	router.MembershipService = app.membershipService
	router.TeamService = app.teamService
	router.ProjectService = app.projectService
	router.TaskService = app.taskService
	router.CommentService = app.commentService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
