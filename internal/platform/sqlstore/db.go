package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gaebar/social-media-blog-api/internal/config"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "github.com/mattn/go-sqlite3"    // registers the "sqlite3" database/sql driver
)

// database/sql driver names.
const (
	driverPgx    = "pgx"
	driverSQLite = "sqlite3"
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// DBTX is the subset of *sqlx.DB (and *sqlx.Tx) used by the stores.
// Queries are written with '?' placeholders and passed through Rebind.
type DBTX interface {
	sqlx.ExtContext
}

// DriverName maps a configured driver (config.DriverPostgres or
// config.DriverSQLite) to its database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return driverPgx, nil
	case config.DriverSQLite:
		return driverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open establishes a connection pool for the configured driver, applies the
// pool limits, verifies connectivity and, when cfg.ApplySchema is set,
// creates any missing tables.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driver, err := DriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.ApplySchema {
		if err := ApplySchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	logger.Info("database connection established",
		slog.String("driver", driver),
		slog.Bool("schema_applied", cfg.ApplySchema))
	return db, nil
}
