package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaebar/social-media-blog-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, traceID string) (*http.Request, *logger.TestLogBuffer) {
	t.Helper()

	logBuf, log := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), log)
	if traceID != "" {
		ctx = context.WithValue(ctx, TraceIDKey, traceID)
	}
	return httptest.NewRequest(http.MethodGet, "/messages/1", nil).WithContext(ctx), logBuf
}

func TestRespondWithJSON(t *testing.T) {
	req, _ := newRequest(t, "")
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]any{"message_id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message_id":1}`, w.Body.String())
}

type cyclic struct {
	Next *cyclic
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	req, logBuf := newRequest(t, "")
	w := httptest.NewRecorder()

	data := &cyclic{}
	data.Next = data

	RespondWithJSON(w, req, http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	logger.AssertLogContains(t, logBuf, "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	req, _ := newRequest(t, "test-trace-id")
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid request", response.Error)
	assert.Equal(t, "test-trace-id", response.TraceID)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req, _ := newRequest(t, "")
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusUnauthorized, "Unauthorized")

	assert.NotContains(t, w.Body.String(), "trace_id")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		message       string
		err           error
		elevate       bool
		expectedLevel string
	}{
		{
			name:          "server error",
			statusCode:    http.StatusInternalServerError,
			message:       "An unexpected error occurred",
			err:           errors.New("database connection failed"),
			expectedLevel: "ERROR",
		},
		{
			name:          "client error at default level",
			statusCode:    http.StatusBadRequest,
			message:       "Message text cannot be blank",
			err:           errors.New("invalid input"),
			expectedLevel: "DEBUG",
		},
		{
			name:          "client error elevated",
			statusCode:    http.StatusForbidden,
			message:       "You do not own this message",
			err:           errors.New("not owned"),
			elevate:       true,
			expectedLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, logBuf := newRequest(t, "test-trace-id")
			w := httptest.NewRecorder()

			if tc.elevate {
				RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err, WithElevatedLogLevel())
			} else {
				RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err)
			}

			assert.Equal(t, tc.statusCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.message, response.Error)
			assert.Equal(t, "test-trace-id", response.TraceID)

			entries, err := logBuf.GetLogEntries()
			require.NoError(t, err)
			require.NotEmpty(t, entries)
			last := entries[len(entries)-1]
			assert.Equal(t, tc.expectedLevel, last["level"])
			assert.Equal(t, "test-trace-id", last["trace_id"])
			assert.Equal(t, tc.message, last["user_message"])
			assert.Contains(t, last, "error_type")
		})
	}
}

func TestRespondWithErrorAndLogRedactsDetails(t *testing.T) {
	req, logBuf := newRequest(t, "")
	w := httptest.NewRecorder()

	err := errors.New("dial postgres://social:hunter22@db:5432/social: connection refused")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "An unexpected error occurred", err)

	logger.AssertLogNotContains(t, logBuf, "hunter22")
	assert.NotContains(t, w.Body.String(), "postgres://")
}

func TestWithElevatedLogLevel(t *testing.T) {
	opts := responseOptions{}
	WithElevatedLogLevel()(&opts)
	assert.True(t, opts.elevateLogLevel)
}
