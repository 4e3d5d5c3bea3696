// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Every operation is a single statement, so no operation leaves a
// half-written row behind. Implementations classify failures into the
// sentinel errors declared in errors.go.
package store
