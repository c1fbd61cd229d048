// Package middleware contains the HTTP-specific middleware: the session
// gate and the centralized error handler.
package middleware

import (
	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session cookie to a user and gates routes on
// login and admin status.
type AuthMiddleware struct {
	cfg      *config.Config
	sessions service.SessionStore
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config, sessions service.SessionStore, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, sessions: sessions, userRepo: userRepo}
}

// RequireLogin validates the session cookie, loads the user and stores it on
// the context. Requests without a live session get 401.
func (m *AuthMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		userID, ok := m.sessions.Resolve(c.Request().Context(), cookie.Value)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			// The session outlived the account; treat it as logged out.
			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireAdmin checks the admin flag of the user loaded by RequireLogin.
// It must be used AFTER the RequireLogin middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := deliverycontext.GetUser(c)
		if user == nil {
			return domainerrors.ErrUnauthenticated
		}
		if !user.IsAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
