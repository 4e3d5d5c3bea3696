package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/gaebar/social-media-blog-api/internal/api/middleware"
	"github.com/gaebar/social-media-blog-api/internal/config"
	"github.com/gaebar/social-media-blog-api/internal/platform/sqlstore"
	"github.com/gaebar/social-media-blog-api/internal/redact"
	"github.com/gaebar/social-media-blog-api/internal/service"
	"github.com/gaebar/social-media-blog-api/internal/service/auth"
	"github.com/gaebar/social-media-blog-api/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sqlx.DB

	accountStore store.AccountStore
	messageStore store.MessageStore

	hasher         auth.PasswordHasher
	accountService service.AccountService
	messageService service.MessageService

	sessions *apiMiddleware.SessionManager
	registry *prometheus.Registry
	metrics  *apiMiddleware.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.accountStore = sqlstore.NewAccountStore(db, logger)
	app.messageStore = sqlstore.NewMessageStore(db, logger)

	bcryptHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.hasher = bcryptHasher
	logger.Info("password hasher initialized", "bcrypt_cost", bcryptHasher.Cost())

	var err error
	app.accountService, err = service.NewAccountService(app.accountStore, app.hasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.messageService, err = service.NewMessageService(app.messageStore, app.accountStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}

	app.sessions = apiMiddleware.NewSessionManager(cfg.Auth, logger)

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, cfg.Database.Driver),
	)
	app.metrics, err = apiMiddleware.NewMetrics(app.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register HTTP metrics: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", redact.Error(err))
		}
	}
}
