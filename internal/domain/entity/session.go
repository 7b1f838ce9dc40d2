// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind one opaque session identifier.
// UserAgent and IPAddress are bound exactly once, when the session is issued
// at login; afterwards every request carrying this session must present the
// same values or the session is destroyed.
type Session struct {
	ID         string    // Opaque, cryptographically random session identifier.
	UserID     uuid.UUID // The authenticated user this session belongs to.
	Username   string    // Denormalized for logging and display.
	Admin      bool      // Snapshot of the admin flag at login time.
	UserAgent  string    // User-Agent observed at login.
	IPAddress  string    // Client IP observed at login.
	CSRFToken  string    // Per-session CSRF token, issued with the session.
	CreatedAt  time.Time // When the session was issued.
	LastSeenAt time.Time // Updated on every authenticated request.
}

// Bound reports whether the session carries binding material. A session
// issued by login is always bound; this guards against legacy records.
func (s *Session) Bound() bool {
	return s.UserAgent != "" || s.IPAddress != ""
}

// MatchesClient compares the bound User-Agent and IP against the current
// request values. Exact string equality only, no fuzzy comparison.
func (s *Session) MatchesClient(userAgent, ip string) bool {
	return s.UserAgent == userAgent && s.IPAddress == ip
}
