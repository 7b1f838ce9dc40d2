package middleware

import (
	"log/slog"
	"net/http"

	"vinyl/config"
	"vinyl/internal/delivery/http/cookie"
	"vinyl/internal/domain/entity"
	"vinyl/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeySession is the context key under which the guard stores the session.
const KeySession = "session"

// HeaderCSRFToken carries the per-session CSRF token on unsafe methods.
const HeaderCSRFToken = "X-Csrf-Token"

// hijackRedirectTarget is where a request with mismatched binding material
// is sent after its session is destroyed.
const hijackRedirectTarget = "/auth/login?hijacked=true"

// SessionGuard authenticates the session cookie surface. Each session is
// bound to the User-Agent and client IP observed at login; a request that
// presents the cookie from a different client destroys the session and is
// redirected to the login page flagged as hijacked.
type SessionGuard struct {
	store        repository.SessionStore
	logger       *slog.Logger
	cookieSecure bool
}

// NewSessionGuard is the constructor for SessionGuard.
func NewSessionGuard(store repository.SessionStore, cfg *config.Config, logger *slog.Logger) *SessionGuard {
	cookieSecure := false
	if cfg != nil && cfg.Session != nil {
		cookieSecure = cfg.Session.CookieSecure
	}

	return &SessionGuard{store: store, logger: logger, cookieSecure: cookieSecure}
}

// Authenticate validates the session cookie, its client binding and, on
// unsafe methods, the CSRF token. Valid requests refresh the idle expiry.
func (g *SessionGuard) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := cookie.ReadSessionID(c)
		if sessionID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		}

		ctx := c.Request().Context()

		session, err := g.store.Get(ctx, sessionID)
		if errors.Is(err, repository.ErrSessionNotFound) {
			cookie.ClearSession(c, g.cookieSecure)

			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session expired"})
		}
		if err != nil {
			return errors.Wrap(err, "failed to load session")
		}

		// Legacy records without binding material skip the client check.
		if session.Bound() && !session.MatchesClient(c.Request().UserAgent(), c.RealIP()) {
			return g.destroyHijacked(c, session)
		}

		if isUnsafeMethod(c.Request().Method) && c.Request().Header.Get(HeaderCSRFToken) != session.CSRFToken {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "CSRF token missing or invalid"})
		}

		if err := g.store.Touch(ctx, session); err != nil {
			g.logger.Warn("Failed to refresh session expiry", slog.Any("error", err))
		}

		c.Set(KeySession, session)
		c.Set(KeyUserID, session.UserID)
		c.Set(KeyUsername, session.Username)
		c.Set(KeyAdmin, session.Admin)
		roles := []string{string(entity.RoleUser)}
		if session.Admin {
			roles = append(roles, string(entity.RoleAdmin))
		}
		c.Set(KeyRoles, roles)

		return next(c)
	}
}

func isUnsafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

// Screen runs on every route, public ones included. It never demands a
// session; its only job is to catch a bound session presented from the wrong
// client before the request reaches any handler. Everything else passes
// through untouched, leaving authentication to the per-route middleware.
func (g *SessionGuard) Screen(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := cookie.ReadSessionID(c)
		if sessionID == "" {
			return next(c)
		}

		session, err := g.store.Get(c.Request().Context(), sessionID)
		if err != nil {
			return next(c)
		}

		if session.Bound() && !session.MatchesClient(c.Request().UserAgent(), c.RealIP()) {
			return g.destroyHijacked(c, session)
		}

		return next(c)
	}
}

// destroyHijacked deletes the presented session, clears the cookie and sends
// the client back to the login page flagged as hijacked.
func (g *SessionGuard) destroyHijacked(c echo.Context, session *entity.Session) error {
	g.logger.Warn("Session binding mismatch, destroying session",
		slog.Any("userID", session.UserID),
		slog.String("remote", c.RealIP()))

	if err := g.store.Delete(c.Request().Context(), session.ID); err != nil {
		g.logger.Error("Failed to destroy hijacked session", slog.Any("error", err))
	}
	cookie.ClearSession(c, g.cookieSecure)

	return c.Redirect(http.StatusFound, hijackRedirectTarget)
}
