package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/store"
	"github.com/jmoiron/sqlx"
)

const accountEntity = "account"

const (
	insertAccountQuery       = `INSERT INTO account (username, password) VALUES (?, ?) RETURNING account_id`
	selectAccountByIDQuery   = `SELECT account_id, username, password FROM account WHERE account_id = ?`
	selectAccountsQuery      = `SELECT account_id, username, password FROM account ORDER BY account_id`
	selectAccountByNameQuery = `SELECT account_id, username, password FROM account WHERE username = ?`
	countAccountsByNameQuery = `SELECT COUNT(*) FROM account WHERE username = ?`
	updateAccountQuery       = `UPDATE account SET username = ?, password = ? WHERE account_id = ?`
	deleteAccountQuery       = `DELETE FROM account WHERE account_id = ?`
)

// accountRow is the persisted layout of an account.
type accountRow struct {
	ID       int    `db:"account_id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

func (r accountRow) toDomain() *domain.Account {
	return &domain.Account{
		ID:             r.ID,
		Username:       r.Username,
		HashedPassword: r.Password,
	}
}

// AccountStore implements the store.AccountStore interface
// using a SQL database as the storage backend.
type AccountStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new SQL implementation of the AccountStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewAccountStore(db DBTX, logger *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

// Create implements store.AccountStore.Create.
// It inserts the account and populates account.ID with the generated key.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int
	err := sqlx.GetContext(ctx, s.db, &id, s.db.Rebind(insertAccountQuery),
		account.Username, account.HashedPassword)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already exists", slog.String("username", account.Username))
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("username", account.Username))
		return MapError(err, accountEntity, "create")
	}

	account.ID = id

	log.Info("account created successfully", slog.Int("account_id", id))
	return nil
}

// GetByID implements store.AccountStore.GetByID.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row accountRow
	err := sqlx.GetContext(ctx, s.db, &row, s.db.Rebind(selectAccountByIDQuery), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int("account_id", id))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.Int("account_id", id))
		return nil, MapError(err, accountEntity, "get")
	}

	return row.toDomain(), nil
}

// GetAll implements store.AccountStore.GetAll.
func (s *AccountStore) GetAll(ctx context.Context) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []accountRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, selectAccountsQuery); err != nil {
		log.Error("failed to list accounts", slog.String("error", err.Error()))
		return nil, MapError(err, accountEntity, "list")
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toDomain())
	}
	return accounts, nil
}

// GetByUsername implements store.AccountStore.GetByUsername.
// Returns store.ErrAccountNotFound if no account has that exact username.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row accountRow
	err := sqlx.GetContext(ctx, s.db, &row, s.db.Rebind(selectAccountByNameQuery), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("username", username))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by username", slog.String("error", err.Error()))
		return nil, MapError(err, accountEntity, "get")
	}

	return row.toDomain(), nil
}

// UsernameExists implements store.AccountStore.UsernameExists.
func (s *AccountStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := sqlx.GetContext(ctx, s.db, &count, s.db.Rebind(countAccountsByNameQuery), username)
	if err != nil {
		log.Error("failed to check username", slog.String("error", err.Error()))
		return false, MapError(err, accountEntity, "get")
	}

	return count > 0, nil
}

// Update implements store.AccountStore.Update.
// The caller MUST provide the new HashedPassword; the stored hash is overwritten.
func (s *AccountStore) Update(ctx context.Context, account *domain.Account) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(updateAccountQuery),
		account.Username, account.HashedPassword, account.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return false, fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.Int("account_id", account.ID))
		return false, MapError(err, accountEntity, "update")
	}

	updated, err := exactlyOne(result)
	if err != nil {
		return false, MapError(err, accountEntity, "update")
	}

	log.Debug("account update finished",
		slog.Int("account_id", account.ID),
		slog.Bool("updated", updated))
	return updated, nil
}

// Delete implements store.AccountStore.Delete.
func (s *AccountStore) Delete(ctx context.Context, id int) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(deleteAccountQuery), id)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.Int("account_id", id))
		return false, MapError(err, accountEntity, "delete")
	}

	deleted, err := exactlyOne(result)
	if err != nil {
		return false, MapError(err, accountEntity, "delete")
	}

	if deleted {
		log.Info("account deleted successfully", slog.Int("account_id", id))
	}
	return deleted, nil
}
