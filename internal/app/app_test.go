package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"userhub/internal/app/deps"
	"userhub/internal/app/services"
	"userhub/internal/config"
	"userhub/internal/core/domain/logging"
	uow "userhub/internal/core/domain/unit_of_work"
	passwordhasher "userhub/internal/implementations/password_hasher"
	resettokengenerator "userhub/internal/implementations/reset_token_generator"

	"github.com/stretchr/testify/require"
)

func newTestHandler() http.Handler {
	unitOfWork := uow.NewFakeUnitOfWork()
	testDeps := &deps.Deps{
		Config: &config.Config{
			Port:           9090,
			Secret:         "test-secret",
			AllowedOrigins: []string{"*"},
		},
		Logger:              logging.NewFakeLogger(),
		Now:                 func() time.Time { return time.Now().UTC() },
		UnitOfWork:          unitOfWork,
		AccountRepository:   unitOfWork.Context.AccountRepository,
		PasswordHasher:      passwordhasher.NewBcrypt("test-secret", 4),
		ResetTokenGenerator: resettokengenerator.NewGenerator(),
	}
	testServices := services.InitServices(testDeps)
	return InitHttpServer(testDeps, testServices).Handler
}

func do(t *testing.T, handler http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, url, nil)
	} else {
		request = httptest.NewRequest(method, url, strings.NewReader(body))
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestAccountLifecycle(t *testing.T) {
	handler := newTestHandler()
	assert := require.New(t)

	// Register.
	rec := do(t, handler, http.MethodPost, "/register",
		`{"name": "Jo", "email": "jo@x.com", "password": "pw1pw1"}`)
	assert.Equal(http.StatusCreated, rec.Code)
	assert.Contains(rec.Body.String(), `"email":"jo@x.com"`)
	assert.NotContains(rec.Body.String(), "password")

	// Duplicate registration fails, exactly one account remains.
	rec = do(t, handler, http.MethodPost, "/register",
		`{"name": "Jo", "email": "jo@x.com", "password": "pw1pw1"}`)
	assert.Equal(http.StatusBadRequest, rec.Code)

	// Login with the right and the wrong password.
	rec = do(t, handler, http.MethodPost, "/login", `{"email": "jo@x.com", "password": "pw1pw1"}`)
	assert.Equal(http.StatusOK, rec.Code)
	rec = do(t, handler, http.MethodPost, "/login", `{"email": "jo@x.com", "password": "wrong"}`)
	assert.Equal(http.StatusBadRequest, rec.Code)
	rec = do(t, handler, http.MethodPost, "/login", `{"email": "other@x.com", "password": "pw1pw1"}`)
	assert.Equal(http.StatusBadRequest, rec.Code)

	// Issue a reset token; it comes back in the response body.
	rec = do(t, handler, http.MethodPost, "/forget-password", `{"email": "jo@x.com"}`)
	assert.Equal(http.StatusOK, rec.Code)
	var forgetResult struct {
		Token string `json:"token"`
	}
	assert.Nil(json.Unmarshal(rec.Body.Bytes(), &forgetResult))
	assert.NotEmpty(forgetResult.Token)

	rec = do(t, handler, http.MethodPost, "/forget-password", `{"email": "unknown@x.com"}`)
	assert.Equal(http.StatusNotFound, rec.Code)

	// Redeem the token.
	rec = do(t, handler, http.MethodPut, "/reset-password",
		`{"token": "`+forgetResult.Token+`", "newPassword": "pw2pw2"}`)
	assert.Equal(http.StatusOK, rec.Code)

	// The old password stops working, the new one works, the token is spent.
	rec = do(t, handler, http.MethodPost, "/login", `{"email": "jo@x.com", "password": "pw1pw1"}`)
	assert.Equal(http.StatusBadRequest, rec.Code)
	rec = do(t, handler, http.MethodPost, "/login", `{"email": "jo@x.com", "password": "pw2pw2"}`)
	assert.Equal(http.StatusOK, rec.Code)
	rec = do(t, handler, http.MethodPut, "/reset-password",
		`{"token": "`+forgetResult.Token+`", "newPassword": "pw3pw3"}`)
	assert.Equal(http.StatusBadRequest, rec.Code)

	// Profile never exposes credential material.
	rec = do(t, handler, http.MethodGet, "/profile/1", "")
	assert.Equal(http.StatusOK, rec.Code)
	assert.Contains(rec.Body.String(), `"name":"Jo"`)
	assert.NotContains(rec.Body.String(), "password")
	assert.NotContains(rec.Body.String(), "token")

	rec = do(t, handler, http.MethodGet, "/profile/999", "")
	assert.Equal(http.StatusNotFound, rec.Code)

	// Logout acknowledges without touching any state.
	rec = do(t, handler, http.MethodDelete, "/logout/1", "")
	assert.Equal(http.StatusOK, rec.Code)
	rec = do(t, handler, http.MethodDelete, "/logout", "")
	assert.Equal(http.StatusOK, rec.Code)
	rec = do(t, handler, http.MethodGet, "/profile/1", "")
	assert.Equal(http.StatusOK, rec.Code)
}
