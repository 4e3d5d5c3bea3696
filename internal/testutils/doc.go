// Package testutils provides testing utilities shared across packages.
//
// It wires the real SQLite-backed stores and services so tests can exercise
// the full stack without a database server:
//
//	stores := testutils.NewStores(t)
//	accounts, messages := testutils.NewServices(t, stores)
//	alice := testutils.MustRegister(t, accounts, "alice", "password")
//
// Every SQLite database is a private in-memory instance closed when the test
// ends, so tests may run in parallel. NewPostgresDB instead targets the shared
// database named by SOCIAL_TEST_DB_URL and skips when it is unset.
package testutils
