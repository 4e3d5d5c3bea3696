// Package main implements the entry point for the social media API server,
// which lets accounts register, log in, and post, edit, and delete short
// messages.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gaebar/social-media-blog-api/internal/config"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
)

// main is the entry point for the social media API server.
// It loads configuration, sets up logging, opens the database, wires the
// services and serves HTTP until SIGINT/SIGTERM.
func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// run performs startup and blocks until the server shuts down.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	return cfg, nil
}
