package testutils

import (
	"context"
	"testing"

	"github.com/gaebar/social-media-blog-api/internal/config"
	"github.com/gaebar/social-media-blog-api/internal/platform/sqlstore"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// SQLiteConfig returns a database config for a private in-memory SQLite
// database. A single pooled connection keeps every query on the same
// in-memory instance.
func SQLiteConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		ApplySchema:  true,
	}
}

// NewSQLiteDB opens an in-memory SQLite database with the schema applied.
// The database is closed when the test finishes.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlstore.Open(context.Background(), SQLiteConfig(), nil)
	require.NoError(t, err, "failed to open in-memory SQLite database")
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CountRows returns the number of rows in table. table must be a trusted
// identifier.
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var count int
	require.NoError(t, db.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM "+table))
	return count
}
