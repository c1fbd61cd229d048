package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		CookieName: "storefront_session",
		TTL:        time.Hour,
	}

	return cfg
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(uc, newTestConfig(), newDiscardLogger())

	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "alice", Email: "a@example.com", Password: "secret"}).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: 1, Username: "alice", PasswordHash: "hash"}}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/register",
		`{"username":"alice","email":"a@example.com","password":"secret"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)
	// The bcrypt hash must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(uc, newTestConfig(), newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/register", `{"username":"alice"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	cfg := newTestConfig()
	handler := NewAuthHandler(uc, cfg, newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "secret"}).
		Return(&usecase.LoginOutput{Token: "token-abc", User: &entity.User{ID: 1, Username: "alice"}}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cfg.Session.CookieName, cookies[0].Name)
	assert.Equal(t, "token-abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(uc, newTestConfig(), newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "nope"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"username":"alice","password":"nope"}`)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	// No cookie on failure.
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Logout_DestroysSessionAndExpiresCookie(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	cfg := newTestConfig()
	handler := NewAuthHandler(uc, cfg, newDiscardLogger())

	uc.EXPECT().Logout(mock.Anything, "token-abc").Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Session.CookieName, Value: "token-abc"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutCookieIsNoOp(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(uc, newTestConfig(), newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/logout", "")

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
