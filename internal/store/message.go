package store

import (
	"context"

	"github.com/gaebar/social-media-blog-api/internal/domain"
)

// MessageStore defines the interface for message data persistence.
type MessageStore interface {
	// Create saves a new message to the store and populates its ID.
	// It does not check that PostedBy refers to an existing account.
	Create(ctx context.Context, message *domain.Message) error

	// GetByID retrieves a message by its unique ID.
	// Returns ErrMessageNotFound if the message does not exist.
	GetByID(ctx context.Context, id int) (*domain.Message, error)

	// GetAll returns every message ordered by ID. The result is never nil.
	GetAll(ctx context.Context) ([]*domain.Message, error)

	// GetByAccountID returns the messages posted by the given account,
	// ordered by ID. The result is never nil.
	GetByAccountID(ctx context.Context, accountID int) ([]*domain.Message, error)

	// Update overwrites the text of the message with the given ID.
	// PostedBy and TimePostedEpoch are immutable and never written.
	// It reports whether exactly one row was changed.
	Update(ctx context.Context, message *domain.Message) (bool, error)

	// Delete removes a message by ID and reports whether a row was removed.
	Delete(ctx context.Context, id int) (bool, error)
}
