package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

func newContextWithCookie(cookieName, token string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_RequireLogin_NoCookie(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	c := newContextWithCookie("storefront_session", "")

	err := m.RequireLogin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireLogin_UnknownToken(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	sessions.EXPECT().Resolve(mock.Anything, "stale-token").Return(0, false)

	c := newContextWithCookie("storefront_session", "stale-token")

	err := m.RequireLogin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireLogin_UserGone(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	sessions.EXPECT().Resolve(mock.Anything, "token-abc").Return(9, true)
	userRepo.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, errors.New("record not found"))

	c := newContextWithCookie("storefront_session", "token-abc")

	err := m.RequireLogin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireLogin_LoadsUserOntoContext(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	sessions.EXPECT().Resolve(mock.Anything, "token-abc").Return(1, true)
	userRepo.EXPECT().FindByID(mock.Anything, uint(1)).
		Return(&entity.User{ID: 1, Username: "alice"}, nil)

	c := newContextWithCookie("storefront_session", "token-abc")

	nextCalled := false
	err := m.RequireLogin(func(c echo.Context) error {
		nextCalled = true
		user := deliverycontext.GetUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RequireAdmin_NoUser(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	c := newContextWithCookie("storefront_session", "")

	err := m.RequireAdmin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireAdmin_NonAdmin(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	c := newContextWithCookie("storefront_session", "")
	deliverycontext.SetUser(c, &entity.User{ID: 2, Username: "bob"})

	err := m.RequireAdmin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_AdminPasses(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(newTestConfig(), sessions, userRepo)

	c := newContextWithCookie("storefront_session", "")
	deliverycontext.SetUser(c, &entity.User{ID: 1, Username: "alice", IsAdmin: true})

	nextCalled := false
	err := m.RequireAdmin(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
