package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gaebar/social-media-blog-api/internal/api/shared"
	"github.com/gaebar/social-media-blog-api/internal/config"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/gaebar/social-media-blog-api/internal/redact"
	"github.com/gorilla/sessions"
)

const accountIDSessionKey = "account_id"

// ErrInvalidAccountID is returned by Start for non-positive account IDs.
var ErrInvalidAccountID = errors.New("session account id must be positive")

// SessionManager keeps the acting account ID in a signed cookie.
type SessionManager struct {
	store  *sessions.CookieStore
	name   string
	logger *slog.Logger
}

// NewSessionManager creates a cookie-backed SessionManager from the auth config.
func NewSessionManager(cfg config.AuthConfig, log *slog.Logger) *SessionManager {
	if log == nil {
		log = slog.Default()
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAgeSeconds,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{
		store:  store,
		name:   cfg.SessionName,
		logger: log.With(slog.String("component", "session_manager")),
	}
}

// Authenticate places the session's account ID in the request context when
// the request carries a valid session cookie. Requests without one pass
// through unchanged; handlers decide whether identity is required.
func (m *SessionManager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), m.logger)

		session, err := m.store.Get(r, m.name)
		if err != nil {
			// Tampered or stale cookies decode to an empty session.
			log.Debug("ignoring undecodable session cookie", slog.String("error", redact.Error(err)))
			next.ServeHTTP(w, r)
			return
		}

		accountID, ok := session.Values[accountIDSessionKey].(int)
		if !ok || accountID <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.WithAccountID(r.Context(), accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Start writes a session cookie identifying accountID.
func (m *SessionManager) Start(w http.ResponseWriter, r *http.Request, accountID int) error {
	if accountID <= 0 {
		return ErrInvalidAccountID
	}

	// A decode error still yields a fresh session that can be saved.
	session, _ := m.store.Get(r, m.name)
	session.Values[accountIDSessionKey] = accountID
	return session.Save(r, w)
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, m.name)
	delete(session.Values, accountIDSessionKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
