package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gaebar/social-media-blog-api/internal/api/shared"
	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/service"
	"github.com/gaebar/social-media-blog-api/internal/store"
)

// MessageHandler handles message-related HTTP requests
type MessageHandler struct {
	messageService service.MessageService
	accountService service.AccountService
	logger         *slog.Logger
	now            func() time.Time
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(
	messageService service.MessageService,
	accountService service.AccountService,
	logger *slog.Logger,
) *MessageHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MessageHandler")
	}

	return &MessageHandler{
		messageService: messageService,
		accountService: accountService,
		logger:         logger.With(slog.String("component", "message_handler")),
		now:            time.Now,
	}
}

// CreateMessage handles POST /messages requests.
// The session's account is the actor; without one the service rejects the
// post as having no existing poster.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateMessageRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	actor, err := h.actor(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create message")
		return
	}

	epoch := req.TimePostedEpoch
	if epoch == 0 {
		epoch = h.now().Unix()
	}

	message := &domain.Message{
		PostedBy:        req.PostedBy,
		Text:            req.MessageText,
		TimePostedEpoch: epoch,
	}

	created, err := h.messageService.Create(r.Context(), message, actor)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, messageToResponse(created))
}

// ListMessages handles GET /messages requests.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list messages")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, messagesToResponse(messages))
}

// GetMessage handles GET /messages/{id} requests.
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	messageID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	message, err := h.messageService.GetByID(r.Context(), messageID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get message")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, messageToResponse(message))
}

// ListAccountMessages handles GET /accounts/{id}/messages requests.
// An unknown account yields an empty list.
func (h *MessageHandler) ListAccountMessages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	messages, err := h.messageService.GetByAccountID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list messages")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, messagesToResponse(messages))
}

// UpdateMessage handles PATCH /messages/{id} requests.
// Only the message text changes; the owner is the only permitted editor.
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := h.requireActor(w, r, log)
	if !ok {
		return
	}

	messageID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateMessageRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	updated, err := h.messageService.Update(
		r.Context(),
		&domain.Message{ID: messageID, Text: req.MessageText},
		actor,
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messageToResponse(updated))
}

// DeleteMessage handles DELETE /messages/{id} requests and returns the
// deleted message.
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := h.requireActor(w, r, log)
	if !ok {
		return
	}

	messageID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	deleted, err := h.messageService.Delete(r.Context(), messageID, actor)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messageToResponse(deleted))
}

// actor resolves the session's account. It returns nil without an error
// when the request is anonymous or the account no longer exists.
func (h *MessageHandler) actor(r *http.Request) (*domain.Account, error) {
	accountID, ok := shared.AccountIDFromContext(r.Context())
	if !ok {
		return nil, nil
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// requireActor resolves the session's account, writing a 401 response when
// there is none.
func (h *MessageHandler) requireActor(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (*domain.Account, bool) {
	if _, ok := requireSession(w, r, log); !ok {
		return nil, false
	}

	actor, err := h.actor(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to resolve account")
		return nil, false
	}
	if actor == nil {
		log.Debug("session refers to a deleted account")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return actor, true
}
