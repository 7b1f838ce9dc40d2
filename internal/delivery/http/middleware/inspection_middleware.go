package middleware

import (
	"log/slog"
	"path"
	"strings"

	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/security"

	"github.com/labstack/echo/v4"
)

// staticAssetExtensions are served verbatim and skip the parameter scan.
var staticAssetExtensions = map[string]struct{}{
	".css": {}, ".js": {}, ".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {},
	".svg": {}, ".ico": {}, ".woff": {}, ".woff2": {}, ".ttf": {}, ".map": {},
}

// scanExemptHeaders are structural headers whose values routinely contain
// characters the injection rules fire on (cookies, content types, auth
// material). Everything else is scanned.
var scanExemptHeaders = map[string]struct{}{
	"host": {}, "user-agent": {}, "accept": {}, "accept-encoding": {},
	"accept-language": {}, "cookie": {}, "content-type": {}, "content-length": {},
	"authorization": {}, "origin": {}, "referer": {}, "connection": {},
	"upgrade-insecure-requests": {}, "cache-control": {}, "if-none-match": {},
	"if-modified-since": {}, "x-request-id": {}, "x-forwarded-for": {},
	"x-forwarded-proto": {}, "x-forwarded-host": {}, "x-real-ip": {},
	"x-csrf-token": {}, "sec-fetch-dest": {}, "sec-fetch-mode": {},
	"sec-fetch-site": {}, "sec-ch-ua": {}, "sec-ch-ua-mobile": {},
	"sec-ch-ua-platform": {},
}

// InspectionMiddleware screens every request before it reaches a handler:
// the raw path is checked for traversal sequences, and parameter and header
// values for SQL injection fragments. Rejections are deliberately vague;
// the response never names the pattern that fired.
type InspectionMiddleware struct {
	logger *slog.Logger
}

// NewInspectionMiddleware is the constructor for InspectionMiddleware.
func NewInspectionMiddleware(logger *slog.Logger) *InspectionMiddleware {
	return &InspectionMiddleware{logger: logger}
}

// Inspect rejects suspicious requests with a generic 400.
func (m *InspectionMiddleware) Inspect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		m.logger.Debug("Inbound request",
			slog.String("method", req.Method),
			slog.String("uri", req.RequestURI))

		// RequestURI keeps the escaped form, which is the form the
		// traversal patterns target.
		if security.MatchesSuspiciousPath(req.RequestURI) {
			return m.reject(c, "path")
		}

		// Static assets carry no parameters worth scanning.
		if isStaticAsset(req.URL.Path) {
			return next(c)
		}

		for _, values := range c.QueryParams() {
			for _, value := range values {
				if security.MatchesSQLInjection(value) {
					return m.reject(c, "query parameter")
				}
			}
		}

		if form, err := c.FormParams(); err == nil {
			for _, values := range form {
				for _, value := range values {
					if security.MatchesSQLInjection(value) {
						return m.reject(c, "form parameter")
					}
				}
			}
		}

		for name, values := range req.Header {
			if _, exempt := scanExemptHeaders[strings.ToLower(name)]; exempt {
				continue
			}
			for _, value := range values {
				if security.MatchesSQLInjection(value) {
					return m.reject(c, "header")
				}
			}
		}

		return next(c)
	}
}

// reject logs the full detail server-side and returns the generic error.
// The detail stays out of the response on purpose.
func (m *InspectionMiddleware) reject(c echo.Context, where string) error {
	req := c.Request()
	m.logger.Error("Rejected suspicious request",
		slog.String("where", where),
		slog.String("method", req.Method),
		slog.String("uri", req.RequestURI),
		slog.String("remote", c.RealIP()),
		slog.String("userAgent", req.UserAgent()))

	return domainerrors.ErrSuspiciousRequest
}

func isStaticAsset(requestPath string) bool {
	_, ok := staticAssetExtensions[strings.ToLower(path.Ext(requestPath))]

	return ok
}
