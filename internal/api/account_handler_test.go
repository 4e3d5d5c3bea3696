package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gaebar/social-media-blog-api/internal/api/shared"
	"github.com/gaebar/social-media-blog-api/internal/domain"
	"github.com/gaebar/social-media-blog-api/internal/mocks"
	"github.com/gaebar/social-media-blog-api/internal/service"
	"github.com/gaebar/social-media-blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountHandler() (*AccountHandler, *mocks.MockAccountService, *fakeSessions) {
	accountService := new(mocks.MockAccountService)
	sessions := &fakeSessions{}
	return NewAccountHandler(accountService, sessions, testLogger()), accountService, sessions
}

func TestNewAccountHandler_NilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAccountHandler(new(mocks.MockAccountService), &fakeSessions{}, nil)
	})
}

func TestAccountHandler_Register(t *testing.T) {
	post := func(body any) routeRequest {
		return routeRequest{method: http.MethodPost, pattern: "/register", path: "/register", body: body}
	}

	t.Run("created and logged in", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		accountService.On("Register", mock.Anything, "testuser1", "password").
			Return(&domain.Account{ID: 1, Username: "testuser1", HashedPassword: "$2a$10$hash"}, nil)

		rec := serve(t, h.Register, post(RegisterRequest{Username: "testuser1", Password: "password"}))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, AccountResponse{AccountID: 1, Username: "testuser1"}, decodeBody[AccountResponse](t, rec))
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "$2a$")
		assert.Equal(t, []int{1}, sessions.started)
	})

	t.Run("duplicate username", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		accountService.On("Register", mock.Anything, "testuser1", "password").
			Return(nil, service.NewServiceError("register", "username taken", store.ErrUsernameExists))

		rec := serve(t, h.Register, post(RegisterRequest{Username: "testuser1", Password: "password"}))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Username already exists", decodeBody[shared.ErrorResponse](t, rec).Error)
		assert.Empty(t, sessions.started)
	})

	t.Run("short password", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()
		accountService.On("Register", mock.Anything, "testuser1", "abc").
			Return(nil, service.NewServiceError("register", "invalid account", domain.ErrPasswordTooShort))

		rec := serve(t, h.Register, post(RegisterRequest{Username: "testuser1", Password: "abc"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password must be at least 4 characters long", decodeBody[shared.ErrorResponse](t, rec).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()

		rec := serve(t, h.Register, post(`{"username":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request format", decodeBody[shared.ErrorResponse](t, rec).Error)
		accountService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing field", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()

		rec := serve(t, h.Register, post(map[string]string{"username": "testuser1"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid Password: required field", decodeBody[shared.ErrorResponse](t, rec).Error)
		accountService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("session failure does not fail registration", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		sessions.startErr = errors.New("securecookie: error")
		accountService.On("Register", mock.Anything, "testuser1", "password").
			Return(&domain.Account{ID: 1, Username: "testuser1"}, nil)

		rec := serve(t, h.Register, post(RegisterRequest{Username: "testuser1", Password: "password"}))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	post := func(body any) routeRequest {
		return routeRequest{method: http.MethodPost, pattern: "/login", path: "/login", body: body}
	}

	t.Run("valid credentials", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		accountService.On("Login", mock.Anything, "testuser1", "password").
			Return(&domain.Account{ID: 1, Username: "testuser1"}, nil)

		rec := serve(t, h.Login, post(LoginRequest{Username: "testuser1", Password: "password"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decodeBody[AccountResponse](t, rec).AccountID)
		assert.Equal(t, []int{1}, sessions.started)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		accountService.On("Login", mock.Anything, "testuser1", "wrong").
			Return(nil, service.NewServiceError("login", "no match", service.ErrInvalidCredentials))

		rec := serve(t, h.Login, post(LoginRequest{Username: "testuser1", Password: "wrong"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid username or password", decodeBody[shared.ErrorResponse](t, rec).Error)
		assert.Empty(t, sessions.started)
	})

	t.Run("session failure", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		sessions.startErr = errors.New("securecookie: error")
		accountService.On("Login", mock.Anything, "testuser1", "password").
			Return(&domain.Account{ID: 1, Username: "testuser1"}, nil)

		rec := serve(t, h.Login, post(LoginRequest{Username: "testuser1", Password: "password"}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to start session", decodeBody[shared.ErrorResponse](t, rec).Error)
	})
}

func TestAccountHandler_Logout(t *testing.T) {
	h, _, sessions := newAccountHandler()

	rec := serve(t, h.Logout, routeRequest{method: http.MethodPost, pattern: "/logout", path: "/logout"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, sessions.cleared)
}

func TestAccountHandler_Reads(t *testing.T) {
	h, accountService, _ := newAccountHandler()
	accountService.On("GetAll", mock.Anything).Return([]*domain.Account{
		{ID: 1, Username: "alice", HashedPassword: "$2a$10$hash"},
		{ID: 2, Username: "bob"},
	}, nil)
	accountService.On("GetByID", mock.Anything, 2).Return(&domain.Account{ID: 2, Username: "bob"}, nil)
	accountService.On("GetByID", mock.Anything, 9).
		Return(nil, service.NewServiceError("get_account", "failed", store.ErrAccountNotFound))

	rec := serve(t, h.ListAccounts, routeRequest{method: http.MethodGet, pattern: "/accounts", path: "/accounts"})
	assert.Equal(t, http.StatusOK, rec.Code)
	accounts := decodeBody[[]AccountResponse](t, rec)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = serve(t, h.GetAccount, routeRequest{method: http.MethodGet, pattern: "/accounts/{id}", path: "/accounts/2"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", decodeBody[AccountResponse](t, rec).Username)

	rec = serve(t, h.GetAccount, routeRequest{method: http.MethodGet, pattern: "/accounts/{id}", path: "/accounts/9"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Account not found", decodeBody[shared.ErrorResponse](t, rec).Error)

	rec = serve(t, h.GetAccount, routeRequest{method: http.MethodGet, pattern: "/accounts/{id}", path: "/accounts/abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	patch := func(path string, sessionID int, body any) routeRequest {
		return routeRequest{
			method:           http.MethodPatch,
			pattern:          "/accounts/{id}",
			path:             path,
			body:             body,
			sessionAccountID: sessionID,
		}
	}
	body := UpdateAccountRequest{Username: "renamed", Password: "newpass"}

	t.Run("own account", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()
		accountService.On("Update", mock.Anything, &domain.Account{ID: 3, Username: "renamed", Password: "newpass"}).
			Return(true, nil)

		rec := serve(t, h.UpdateAccount, patch("/accounts/3", 3, body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, AccountResponse{AccountID: 3, Username: "renamed"}, decodeBody[AccountResponse](t, rec))
		accountService.AssertExpectations(t)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()

		rec := serve(t, h.UpdateAccount, patch("/accounts/3", 0, body))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		accountService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("another account", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()

		rec := serve(t, h.UpdateAccount, patch("/accounts/3", 4, body))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		accountService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("username taken", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()
		accountService.On("Update", mock.Anything, mock.Anything).
			Return(false, service.NewServiceError("update_account", "username taken", store.ErrUsernameExists))

		rec := serve(t, h.UpdateAccount, patch("/accounts/3", 3, body))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("account vanished", func(t *testing.T) {
		h, accountService, _ := newAccountHandler()
		accountService.On("Update", mock.Anything, mock.Anything).Return(false, nil)

		rec := serve(t, h.UpdateAccount, patch("/accounts/3", 3, body))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	del := func(path string, sessionID int) routeRequest {
		return routeRequest{
			method:           http.MethodDelete,
			pattern:          "/accounts/{id}",
			path:             path,
			sessionAccountID: sessionID,
		}
	}

	t.Run("own account ends the session", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		accountService.On("Delete", mock.Anything, &domain.Account{ID: 3}).Return(true, nil)

		rec := serve(t, h.DeleteAccount, del("/accounts/3", 3))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, sessions.cleared)
	})

	t.Run("another account", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()

		rec := serve(t, h.DeleteAccount, del("/accounts/3", 4))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, sessions.cleared)
		accountService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _, _ := newAccountHandler()

		rec := serve(t, h.DeleteAccount, del("/accounts/3", 0))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("already gone", func(t *testing.T) {
		h, accountService, sessions := newAccountHandler()
		accountService.On("Delete", mock.Anything, &domain.Account{ID: 3}).Return(false, nil)

		rec := serve(t, h.DeleteAccount, del("/accounts/3", 3))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, sessions.cleared)
	})
}
