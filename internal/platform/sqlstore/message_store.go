package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/store"
	"github.com/jmoiron/sqlx"
)

const messageEntity = "message"

const (
	insertMessageQuery = `INSERT INTO message (posted_by, message_text, time_posted_epoch) ` +
		`VALUES (?, ?, ?) RETURNING message_id`
	selectMessageByIDQuery = `SELECT message_id, posted_by, message_text, time_posted_epoch ` +
		`FROM message WHERE message_id = ?`
	selectMessagesQuery = `SELECT message_id, posted_by, message_text, time_posted_epoch ` +
		`FROM message ORDER BY message_id`
	selectMessagesByAccountQuery = `SELECT message_id, posted_by, message_text, time_posted_epoch ` +
		`FROM message WHERE posted_by = ? ORDER BY message_id`
	updateMessageQuery = `UPDATE message SET message_text = ? WHERE message_id = ?`
	deleteMessageQuery = `DELETE FROM message WHERE message_id = ?`
)

// messageRow is the persisted layout of a message.
type messageRow struct {
	ID              int    `db:"message_id"`
	PostedBy        int    `db:"posted_by"`
	Text            string `db:"message_text"`
	TimePostedEpoch int64  `db:"time_posted_epoch"`
}

func (r messageRow) toDomain() *domain.Message {
	return &domain.Message{
		ID:              r.ID,
		PostedBy:        r.PostedBy,
		Text:            r.Text,
		TimePostedEpoch: r.TimePostedEpoch,
	}
}

// MessageStore implements the store.MessageStore interface
// using a SQL database as the storage backend.
type MessageStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewMessageStore creates a new SQL implementation of the MessageStore interface.
// If logger is nil, a default logger will be used.
func NewMessageStore(db DBTX, logger *slog.Logger) *MessageStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MessageStore{
		db:     db,
		logger: logger.With(slog.String("component", "message_store")),
	}
}

// Ensure MessageStore implements store.MessageStore interface
var _ store.MessageStore = (*MessageStore)(nil)

// Create implements store.MessageStore.Create.
func (s *MessageStore) Create(ctx context.Context, message *domain.Message) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int
	err := sqlx.GetContext(ctx, s.db, &id, s.db.Rebind(insertMessageQuery),
		message.PostedBy, message.Text, message.TimePostedEpoch)
	if err != nil {
		log.Error("failed to create message",
			slog.String("error", err.Error()),
			slog.Int("posted_by", message.PostedBy))
		return MapError(err, messageEntity, "create")
	}

	message.ID = id

	log.Info("message created successfully",
		slog.Int("message_id", id),
		slog.Int("posted_by", message.PostedBy))
	return nil
}

// GetByID implements store.MessageStore.GetByID.
// Returns store.ErrMessageNotFound if the message does not exist.
func (s *MessageStore) GetByID(ctx context.Context, id int) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row messageRow
	err := sqlx.GetContext(ctx, s.db, &row, s.db.Rebind(selectMessageByIDQuery), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("message not found", slog.Int("message_id", id))
			return nil, store.ErrMessageNotFound
		}
		log.Error("failed to get message by ID",
			slog.String("error", err.Error()),
			slog.Int("message_id", id))
		return nil, MapError(err, messageEntity, "get")
	}

	return row.toDomain(), nil
}

// GetAll implements store.MessageStore.GetAll.
func (s *MessageStore) GetAll(ctx context.Context) ([]*domain.Message, error) {
	return s.list(ctx, selectMessagesQuery)
}

// GetByAccountID implements store.MessageStore.GetByAccountID.
func (s *MessageStore) GetByAccountID(ctx context.Context, accountID int) ([]*domain.Message, error) {
	return s.list(ctx, s.db.Rebind(selectMessagesByAccountQuery), accountID)
}

func (s *MessageStore) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []messageRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, query, args...); err != nil {
		log.Error("failed to list messages", slog.String("error", err.Error()))
		return nil, MapError(err, messageEntity, "list")
	}

	messages := make([]*domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}

// Update implements store.MessageStore.Update. Only message_text is written.
func (s *MessageStore) Update(ctx context.Context, message *domain.Message) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(updateMessageQuery), message.Text, message.ID)
	if err != nil {
		log.Error("failed to update message",
			slog.String("error", err.Error()),
			slog.Int("message_id", message.ID))
		return false, MapError(err, messageEntity, "update")
	}

	updated, err := exactlyOne(result)
	if err != nil {
		return false, MapError(err, messageEntity, "update")
	}

	log.Debug("message update finished",
		slog.Int("message_id", message.ID),
		slog.Bool("updated", updated))
	return updated, nil
}

// Delete implements store.MessageStore.Delete.
func (s *MessageStore) Delete(ctx context.Context, id int) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(deleteMessageQuery), id)
	if err != nil {
		log.Error("failed to delete message",
			slog.String("error", err.Error()),
			slog.Int("message_id", id))
		return false, MapError(err, messageEntity, "delete")
	}

	deleted, err := exactlyOne(result)
	if err != nil {
		return false, MapError(err, messageEntity, "delete")
	}

	if deleted {
		log.Info("message deleted successfully", slog.Int("message_id", id))
	}
	return deleted, nil
}
