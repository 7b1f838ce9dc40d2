// Package cookie centralizes the session cookie handling.
package cookie

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "session_id"

// ReadSessionID returns the session ID carried by the request cookie, or
// an empty string when the cookie is absent.
func ReadSessionID(c echo.Context) string {
	ck, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return ck.Value
}

// WriteSession sets the session cookie on the response. The cookie is
// HttpOnly always; Secure follows the deployment configuration.
func WriteSession(c echo.Context, sessionID string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie.
func ClearSession(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
