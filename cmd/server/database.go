package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaebar/social-media-blog-api/internal/config"
	"github.com/gaebar/social-media-blog-api/internal/platform/sqlstore"
	"github.com/jmoiron/sqlx"
)

// setupAppDatabase opens the configured database and applies pool settings.
// Returns the connection pool if successful, or an error if the connection fails.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlstore.Open(ctx, cfg.Database, logger.With(slog.String("component", "database")))
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}
	return db, nil
}
