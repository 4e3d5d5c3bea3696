// Package sqlstore provides SQL implementations for the data storage
// interfaces defined in the internal/store package. The same queries run on
// PostgreSQL (through the pgx database/sql driver) and SQLite (through
// go-sqlite3); sqlx rebinds placeholders for whichever driver the pool was
// opened with.
package sqlstore
