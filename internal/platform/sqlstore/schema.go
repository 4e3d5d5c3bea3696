package sqlstore

import (
	"context"
	"fmt"
)

// Bootstrap DDL per database/sql driver. Every statement is idempotent.
// message.posted_by deliberately has no foreign key: deleting an account
// leaves its messages in place.
var schemas = map[string][]string{
	driverPgx: {
		`CREATE TABLE IF NOT EXISTS account (
			account_id SERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS message (
			message_id SERIAL PRIMARY KEY,
			posted_by INTEGER NOT NULL,
			message_text VARCHAR(255) NOT NULL,
			time_posted_epoch BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_message_posted_by ON message (posted_by)`,
	},
	driverSQLite: {
		`CREATE TABLE IF NOT EXISTS account (
			account_id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS message (
			message_id INTEGER PRIMARY KEY AUTOINCREMENT,
			posted_by INTEGER NOT NULL,
			message_text TEXT NOT NULL,
			time_posted_epoch BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_message_posted_by ON message (posted_by)`,
	},
}

// ApplySchema creates the account and message tables if they do not exist.
func ApplySchema(ctx context.Context, db DBTX) error {
	statements, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for database driver %q", db.DriverName())
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
