package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/service/auth"
	"github.com/gaebar/social-media-blog-api/internal/store"
)

// AccountService provides registration, login and account maintenance.
type AccountService interface {
	// Register creates an account with a freshly hashed password.
	// Returns a validation error for a blank/over-long username or a password
	// outside the accepted length, and store.ErrUsernameExists when taken.
	Register(ctx context.Context, username, password string) (*domain.Account, error)

	// Login returns the account whose username and password both match.
	// Any mismatch, including an unknown username, yields ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.Account, error)

	// GetByID retrieves an account by its ID.
	GetByID(ctx context.Context, id int) (*domain.Account, error)

	// GetAll returns every account.
	GetAll(ctx context.Context) ([]*domain.Account, error)

	// Update replaces the username and password of the account with
	// account.ID. account.Password is plaintext and is hashed exactly once.
	// Reports whether a row was changed.
	Update(ctx context.Context, account *domain.Account) (bool, error)

	// Delete removes the account with account.ID and reports whether a row
	// was removed. The account's messages are kept.
	Delete(ctx context.Context, account *domain.Account) (bool, error)
}

// accountServiceImpl implements the AccountService interface
type accountServiceImpl struct {
	accountStore store.AccountStore
	hasher       auth.PasswordHasher
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService.
// It returns a validation error if any required dependency is nil.
func NewAccountService(
	accountStore store.AccountStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) (AccountService, error) {
	if accountStore == nil {
		return nil, domain.NewValidationError("accountStore", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		accountStore: accountStore,
		hasher:       hasher,
		logger:       logger.With(slog.String("component", "account_service")),
	}, nil
}

// Register implements AccountService.
func (s *accountServiceImpl) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := domain.NewAccount(username, password)
	if err != nil {
		log.Debug("registration rejected", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "invalid account", err)
	}

	exists, err := s.accountStore.UsernameExists(ctx, username)
	if err != nil {
		log.Error("failed to check username", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to check username", err)
	}
	if exists {
		log.Debug("attempted to register an existing username", slog.String("username", username))
		return nil, NewServiceError("register", "username taken", store.ErrUsernameExists)
	}

	hashed, err := s.hasher.Hash(account.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to hash password", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	// The unique constraint still guards against a concurrent registration
	// that passed the check above.
	if err := s.accountStore.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Debug("username taken concurrently", slog.String("username", username))
		} else {
			log.Error("failed to save account", slog.String("error", err.Error()))
		}
		return nil, NewServiceError("register", "failed to create account", err)
	}

	log.Info("account registered", slog.Int("account_id", account.ID))
	return account, nil
}

// Login implements AccountService.
func (s *accountServiceImpl) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accountStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("login for unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up account for login", slog.String("error", err.Error()))
		return nil, NewServiceError("login", "failed to look up account", err)
	}

	if err := s.hasher.Compare(account.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Error("stored password hash could not be verified",
				slog.Int("account_id", account.ID),
				slog.String("error", err.Error()))
		}
		return nil, ErrInvalidCredentials
	}

	log.Debug("login succeeded", slog.Int("account_id", account.ID))
	return account, nil
}

// GetByID implements AccountService.
func (s *accountServiceImpl) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	account, err := s.accountStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve account",
				slog.String("error", err.Error()),
				slog.Int("account_id", id))
		}
		return nil, NewServiceError("get_account", "failed to retrieve account", err)
	}
	return account, nil
}

// GetAll implements AccountService.
func (s *accountServiceImpl) GetAll(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountStore.GetAll(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list accounts",
			slog.String("error", err.Error()))
		return nil, NewServiceError("list_accounts", "failed to list accounts", err)
	}
	return accounts, nil
}

// Update implements AccountService.
func (s *accountServiceImpl) Update(ctx context.Context, account *domain.Account) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account == nil || account.ID == 0 {
		return false, NewServiceError("update_account", "invalid account", domain.ErrEmptyAccountID)
	}
	if err := account.ValidateCredentials(); err != nil {
		log.Debug("account update rejected",
			slog.Int("account_id", account.ID),
			slog.String("error", err.Error()))
		return false, NewServiceError("update_account", "invalid account", err)
	}

	hashed, err := s.hasher.Hash(account.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return false, NewServiceError("update_account", "failed to hash password", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	updated, err := s.accountStore.Update(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Debug("attempted to rename to an existing username",
				slog.Int("account_id", account.ID))
		} else {
			log.Error("failed to update account",
				slog.String("error", err.Error()),
				slog.Int("account_id", account.ID))
		}
		return false, NewServiceError("update_account", "failed to update account", err)
	}

	log.Info("account update finished",
		slog.Int("account_id", account.ID),
		slog.Bool("updated", updated))
	return updated, nil
}

// Delete implements AccountService.
func (s *accountServiceImpl) Delete(ctx context.Context, account *domain.Account) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account == nil || account.ID == 0 {
		return false, NewServiceError("delete_account", "invalid account", domain.ErrEmptyAccountID)
	}

	deleted, err := s.accountStore.Delete(ctx, account.ID)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.Int("account_id", account.ID))
		return false, NewServiceError("delete_account", "failed to delete account", err)
	}

	log.Info("account delete finished",
		slog.Int("account_id", account.ID),
		slog.Bool("deleted", deleted))
	return deleted, nil
}
