package middleware

import (
	"net/http"
	"slices"
	"strings"

	"vinyl/internal/domain/entity"
	"vinyl/internal/domain/repository"
	"vinyl/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys shared by the authentication middlewares. Both the bearer
// token path and the session cookie path populate the same keys, so the
// handlers never care which credential authenticated the request.
const (
	KeyUserID   = "userID"
	KeyUsername = "username"
	KeyRoles    = "roles"
	KeyAdmin    = "admin"
)

// AuthMiddleware validates bearer tokens for the API surface. A token must
// both verify cryptographically and still be present in the token table:
// logout and account deletion revoke tokens before they expire.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	tokenRepo repository.TokenRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, tokenRepo: tokenRepo}
}

// Authenticate validates the JWT access token and its revocation state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// A valid signature is not enough: the token must not be revoked.
		_, err = m.tokenRepo.FindByHash(c.Request().Context(), m.tokenSvc.HashToken(tokenString))
		if errors.Is(err, repository.ErrTokenNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}
		if err != nil {
			return errors.Wrap(err, "failed to check token revocation")
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUsername, claims.Username)
		c.Set(KeyRoles, claims.Roles)
		c.Set(KeyAdmin, slices.Contains(claims.Roles, string(entity.RoleAdmin)))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER an authentication middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(KeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}
