package service

import (
	"errors"
	"fmt"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with the operation that failed
// 3. Callers use errors.Is/errors.As or KindOf to classify an error
// 4. The API layer maps error kinds to HTTP status codes
var (
	// ErrNotOwned indicates a message is owned by a different account than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another account")

	// ErrInvalidCredentials indicates a login attempt did not match any account.
	// It is returned both for an unknown username and for a wrong password.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ErrorKind classifies an error returned by a service operation.
type ErrorKind int

// Error kinds, from most to least specific.
const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindConflict
	KindAuthorization
	KindUnauthenticated
	KindNotFound
	KindStorage
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthorization:
		return "authorization"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err. A nil error is KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, store.ErrDuplicate):
		return KindConflict
	case errors.Is(err, ErrNotOwned):
		return KindAuthorization
	case errors.Is(err, ErrInvalidCredentials):
		return KindUnauthenticated
	case errors.Is(err, store.ErrNotFound):
		return KindNotFound
	case errors.Is(err, store.ErrStorage):
		return KindStorage
	default:
		return KindUnknown
	}
}

// ServiceError wraps an error from a lower layer with the service operation
// that failed. The wrapped error stays reachable through errors.Is/errors.As,
// so KindOf classifies a ServiceError by its cause.
type ServiceError struct {
	Operation string // The operation that failed (e.g., "register", "update_message")
	Message   string // Human-readable description of the failure
	Err       error  // Underlying cause
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
