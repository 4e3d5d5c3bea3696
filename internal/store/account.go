package store

import (
	"context"

	"github.com/gaebar/social-media-blog-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store and populates its ID.
	// The caller MUST set HashedPassword; the store never sees plaintext.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int) (*domain.Account, error)

	// GetAll returns every account ordered by ID. The result is never nil.
	GetAll(ctx context.Context) ([]*domain.Account, error)

	// GetByUsername retrieves an account by its exact (case-sensitive) username.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// UsernameExists reports whether any account uses the given username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Update overwrites the username and password hash of the account with
	// the given ID. It reports whether exactly one row was changed.
	// Returns ErrUsernameExists if the new username collides with another account.
	Update(ctx context.Context, account *domain.Account) (bool, error)

	// Delete removes an account by ID and reports whether a row was removed.
	// Messages posted by the account are left in place.
	Delete(ctx context.Context, id int) (bool, error)
}
