package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaebar/social-media-blog-api/internal/api/shared"
	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// fakeSessions records session writes instead of setting cookies.
type fakeSessions struct {
	started  []int
	cleared  int
	startErr error
	clearErr error
}

func (f *fakeSessions) Start(_ http.ResponseWriter, _ *http.Request, accountID int) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = append(f.started, accountID)
	return nil
}

func (f *fakeSessions) Clear(http.ResponseWriter, *http.Request) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared++
	return nil
}

func testLogger() *slog.Logger {
	return logger.New(&logger.TestLogBuffer{}, slog.LevelDebug)
}

// routeRequest serves a single request through a chi router so URL
// parameters resolve. A positive sessionAccountID marks the request as
// coming from that account's session.
type routeRequest struct {
	method           string
	pattern          string
	path             string
	body             any
	sessionAccountID int
}

func serve(t *testing.T, handler http.HandlerFunc, rr routeRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if rr.body != nil {
		if raw, ok := rr.body.(string); ok {
			body.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&body).Encode(rr.body))
		}
	}

	req := httptest.NewRequest(rr.method, rr.path, &body)
	ctx := logger.WithLogger(req.Context(), testLogger())
	if rr.sessionAccountID > 0 {
		ctx = shared.WithAccountID(ctx, rr.sessionAccountID)
	}
	req = req.WithContext(ctx)

	router := chi.NewRouter()
	router.Method(rr.method, rr.pattern, handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
