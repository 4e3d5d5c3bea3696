package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/store"
)

// MessageService provides message-related operations.
// Mutating operations take the acting account explicitly.
type MessageService interface {
	// Create posts message on behalf of actor. The actor must be an existing
	// account and must be the message's PostedBy.
	Create(ctx context.Context, message *domain.Message, actor *domain.Account) (*domain.Message, error)

	// GetByID retrieves a message by its ID.
	// Returns store.ErrMessageNotFound when absent.
	GetByID(ctx context.Context, id int) (*domain.Message, error)

	// GetAll returns every message. The result is never nil.
	GetAll(ctx context.Context) ([]*domain.Message, error)

	// GetByAccountID returns the messages posted by an account. The result is never nil.
	GetByAccountID(ctx context.Context, accountID int) ([]*domain.Message, error)

	// Update replaces the text of the message with message.ID. Only the
	// owner may edit; every other field keeps its stored value.
	// Returns the merged record.
	Update(ctx context.Context, message *domain.Message, actor *domain.Account) (*domain.Message, error)

	// Delete removes a message owned by actor and returns the deleted record.
	Delete(ctx context.Context, id int, actor *domain.Account) (*domain.Message, error)
}

// messageServiceImpl implements the MessageService interface
type messageServiceImpl struct {
	messageStore store.MessageStore
	accountStore store.AccountStore
	logger       *slog.Logger
}

// NewMessageService creates a new MessageService.
// It returns a validation error if any required dependency is nil.
func NewMessageService(
	messageStore store.MessageStore,
	accountStore store.AccountStore,
	logger *slog.Logger,
) (MessageService, error) {
	if messageStore == nil {
		return nil, domain.NewValidationError("messageStore", "cannot be nil", domain.ErrValidation)
	}
	if accountStore == nil {
		return nil, domain.NewValidationError("accountStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &messageServiceImpl{
		messageStore: messageStore,
		accountStore: accountStore,
		logger:       logger.With(slog.String("component", "message_service")),
	}, nil
}

// errUnknownPoster is returned when a message is posted without an existing account.
var errUnknownPoster = domain.NewValidationError("posted_by", "must refer to an existing account", nil)

// Create implements MessageService.
func (s *messageServiceImpl) Create(
	ctx context.Context,
	message *domain.Message,
	actor *domain.Account,
) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if message == nil {
		return nil, NewServiceError("create_message", "invalid message", domain.ErrEmptyMessageText)
	}

	if actor == nil {
		log.Debug("message posted without an acting account")
		return nil, NewServiceError("create_message", "invalid message", errUnknownPoster)
	}
	if _, err := s.accountStore.GetByID(ctx, actor.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("message posted by unknown account", slog.Int("account_id", actor.ID))
			return nil, NewServiceError("create_message", "invalid message", errUnknownPoster)
		}
		log.Error("failed to look up posting account",
			slog.String("error", err.Error()),
			slog.Int("account_id", actor.ID))
		return nil, NewServiceError("create_message", "failed to look up account", err)
	}

	if err := message.ValidateText(); err != nil {
		log.Debug("message rejected", slog.String("error", err.Error()))
		return nil, NewServiceError("create_message", "invalid message", err)
	}

	if message.PostedBy != actor.ID {
		log.Warn("attempted to post on behalf of another account",
			slog.Int("account_id", actor.ID),
			slog.Int("posted_by", message.PostedBy))
		return nil, NewServiceError("create_message", "cannot post as another account", ErrNotOwned)
	}

	if err := s.messageStore.Create(ctx, message); err != nil {
		log.Error("failed to save message", slog.String("error", err.Error()))
		return nil, NewServiceError("create_message", "failed to create message", err)
	}

	log.Info("message created",
		slog.Int("message_id", message.ID),
		slog.Int("posted_by", message.PostedBy))
	return message, nil
}

// GetByID implements MessageService.
func (s *messageServiceImpl) GetByID(ctx context.Context, id int) (*domain.Message, error) {
	message, err := s.messageStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve message",
				slog.String("error", err.Error()),
				slog.Int("message_id", id))
		}
		return nil, NewServiceError("get_message", "failed to retrieve message", err)
	}
	return message, nil
}

// GetAll implements MessageService.
func (s *messageServiceImpl) GetAll(ctx context.Context) ([]*domain.Message, error) {
	messages, err := s.messageStore.GetAll(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list messages",
			slog.String("error", err.Error()))
		return nil, NewServiceError("list_messages", "failed to list messages", err)
	}
	return messages, nil
}

// GetByAccountID implements MessageService.
func (s *messageServiceImpl) GetByAccountID(ctx context.Context, accountID int) ([]*domain.Message, error) {
	messages, err := s.messageStore.GetByAccountID(ctx, accountID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list messages for account",
			slog.String("error", err.Error()),
			slog.Int("account_id", accountID))
		return nil, NewServiceError("list_account_messages", "failed to list messages", err)
	}
	return messages, nil
}

// Update implements MessageService.
func (s *messageServiceImpl) Update(
	ctx context.Context,
	message *domain.Message,
	actor *domain.Account,
) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if message == nil {
		return nil, NewServiceError("update_message", "invalid message", domain.ErrEmptyMessageID)
	}

	existing, err := s.ownedMessage(ctx, "update_message", message.ID, actor)
	if err != nil {
		return nil, err
	}

	existing.Text = message.Text
	if err := existing.ValidateText(); err != nil {
		log.Debug("message update rejected",
			slog.Int("message_id", existing.ID),
			slog.String("error", err.Error()))
		return nil, NewServiceError("update_message", "invalid message", err)
	}

	updated, err := s.messageStore.Update(ctx, existing)
	if err != nil {
		log.Error("failed to update message",
			slog.String("error", err.Error()),
			slog.Int("message_id", existing.ID))
		return nil, NewServiceError("update_message", "failed to update message", err)
	}
	if !updated {
		// Deleted between the fetch and the update.
		return nil, NewServiceError("update_message", "message vanished", store.ErrMessageNotFound)
	}

	log.Info("message updated", slog.Int("message_id", existing.ID))
	return existing, nil
}

// Delete implements MessageService.
func (s *messageServiceImpl) Delete(ctx context.Context, id int, actor *domain.Account) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.ownedMessage(ctx, "delete_message", id, actor)
	if err != nil {
		return nil, err
	}

	deleted, err := s.messageStore.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete message",
			slog.String("error", err.Error()),
			slog.Int("message_id", id))
		return nil, NewServiceError("delete_message", "failed to delete message", err)
	}
	if !deleted {
		return nil, NewServiceError("delete_message", "message vanished", store.ErrMessageNotFound)
	}

	log.Info("message deleted", slog.Int("message_id", id))
	return existing, nil
}

// ownedMessage fetches a message and checks that actor posted it.
func (s *messageServiceImpl) ownedMessage(
	ctx context.Context,
	operation string,
	id int,
	actor *domain.Account,
) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.messageStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("message not found", slog.Int("message_id", id))
		} else {
			log.Error("failed to retrieve message",
				slog.String("error", err.Error()),
				slog.Int("message_id", id))
		}
		return nil, NewServiceError(operation, "failed to retrieve message", err)
	}

	if !existing.IsOwnedBy(actor) {
		attrs := []any{slog.Int("message_id", id), slog.Int("posted_by", existing.PostedBy)}
		if actor != nil {
			attrs = append(attrs, slog.Int("account_id", actor.ID))
		}
		log.Warn("attempted to modify a message owned by another account", attrs...)
		return nil, NewServiceError(operation, "message not owned by account", ErrNotOwned)
	}

	return existing, nil
}
