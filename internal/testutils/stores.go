package testutils

import (
	"context"
	"testing"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/sqlstore"
	"github.com/gaebar/social-media-blog-api/internal/service"
	"github.com/gaebar/social-media-blog-api/internal/service/auth"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Stores holds the SQL store implementations sharing one test database.
type Stores struct {
	DB       *sqlx.DB
	Accounts *sqlstore.AccountStore
	Messages *sqlstore.MessageStore
}

// NewStores creates both stores over a fresh in-memory database.
func NewStores(t *testing.T) *Stores {
	t.Helper()

	db := NewSQLiteDB(t)
	return &Stores{
		DB:       db,
		Accounts: sqlstore.NewAccountStore(db, nil),
		Messages: sqlstore.NewMessageStore(db, nil),
	}
}

// NewServices builds the account and message services over stores, hashing
// with the minimum bcrypt cost to keep tests fast.
func NewServices(t *testing.T, stores *Stores) (service.AccountService, service.MessageService) {
	t.Helper()

	accounts, err := service.NewAccountService(stores.Accounts, auth.NewBcryptHasher(bcrypt.MinCost), nil)
	require.NoError(t, err)

	messages, err := service.NewMessageService(stores.Messages, stores.Accounts, nil)
	require.NoError(t, err)

	return accounts, messages
}

// MustRegister registers an account and fails the test on error.
func MustRegister(t *testing.T, accounts service.AccountService, username, password string) *domain.Account {
	t.Helper()

	account, err := accounts.Register(context.Background(), username, password)
	require.NoError(t, err, "failed to register %q", username)
	return account
}

// MustPost creates a message as author and fails the test on error.
func MustPost(t *testing.T, messages service.MessageService, author *domain.Account, text string) *domain.Message {
	t.Helper()

	message, err := messages.Create(context.Background(), &domain.Message{
		PostedBy:        author.ID,
		Text:            text,
		TimePostedEpoch: 1669947792,
	}, author)
	require.NoError(t, err, "failed to post message")
	return message
}
