package api

import (
	"log/slog"
	"net/http"

	"github.com/gaebar/social-media-blog-api/internal/api/shared"
	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/redact"
	"github.com/gaebar/social-media-blog-api/internal/service"
)

// SessionWriter starts and ends the session that identifies the acting account.
type SessionWriter interface {
	Start(w http.ResponseWriter, r *http.Request, accountID int) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// AccountHandler handles registration, login and account HTTP requests
type AccountHandler struct {
	accountService service.AccountService
	sessions       SessionWriter
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(
	accountService service.AccountService,
	sessions SessionWriter,
	logger *slog.Logger,
) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		accountService: accountService,
		sessions:       sessions,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// Register handles POST /register requests.
// It creates the account and starts a session for it.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	account, err := h.accountService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register account")
		return
	}

	// Registration still succeeds without a cookie.
	if err := h.sessions.Start(w, r, account.ID); err != nil {
		log.Warn("failed to start session after registration",
			slog.Int("account_id", account.ID),
			slog.String("error", redact.Error(err)))
	}

	log.Debug("account registered", slog.Int("account_id", account.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, accountToResponse(account))
}

// Login handles POST /login requests.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	account, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to log in")
		return
	}

	if err := h.sessions.Start(w, r, account.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to start session", err)
		return
	}

	log.Debug("account logged in", slog.Int("account_id", account.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// Logout handles POST /logout requests. It succeeds with or without a session.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to end session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAccounts handles GET /accounts requests.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list accounts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, accountsToResponse(accounts))
}

// GetAccount handles GET /accounts/{id} requests.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get account")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// UpdateAccount handles PATCH /accounts/{id} requests.
// Only the session's own account may be changed.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, ok := h.requireSelf(w, r, log)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	account := &domain.Account{ID: accountID, Username: req.Username, Password: req.Password}
	updated, err := h.accountService.Update(r.Context(), account)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update account")
		return
	}
	if !updated {
		shared.RespondWithError(w, r, http.StatusNotFound, "Account not found")
		return
	}

	log.Debug("account updated", slog.Int("account_id", accountID))
	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// DeleteAccount handles DELETE /accounts/{id} requests.
// Only the session's own account may be deleted; the session ends with it.
// The account's messages are kept.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, ok := h.requireSelf(w, r, log)
	if !ok {
		return
	}

	deleted, err := h.accountService.Delete(r.Context(), &domain.Account{ID: accountID})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Account not found")
		return
	}

	if err := h.sessions.Clear(w, r); err != nil {
		log.Warn("failed to clear session after account deletion",
			slog.Int("account_id", accountID),
			slog.String("error", redact.Error(err)))
	}

	log.Debug("account deleted", slog.Int("account_id", accountID))
	w.WriteHeader(http.StatusNoContent)
}

// requireSelf checks that the request has a session and that the {id} path
// parameter names the session's account.
func (h *AccountHandler) requireSelf(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int, bool) {
	sessionID, ok := requireSession(w, r, log)
	if !ok {
		return 0, false
	}

	accountID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return 0, false
	}

	if accountID != sessionID {
		log.Warn("attempted to modify another account",
			slog.Int("session_account_id", sessionID),
			slog.Int("account_id", accountID))
		shared.RespondWithError(w, r, http.StatusForbidden, "You can only modify your own account")
		return 0, false
	}

	return accountID, true
}
