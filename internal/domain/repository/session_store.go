package repository

import (
	"context"
	"errors"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID has no live record.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines how server-side sessions are stored and retrieved.
// Implementations must enforce at most one live session per user: Create
// invalidates any prior session belonging to the same user as part of the
// same operation, not as a best-effort afterthought.
type SessionStore interface {
	// Create persists a new session and destroys any previous session of the
	// same user.
	Create(ctx context.Context, session *entity.Session) error

	// Get retrieves a live session by ID.
	Get(ctx context.Context, sessionID string) (*entity.Session, error)

	// Touch refreshes the session's idle expiry and last-seen timestamp.
	Touch(ctx context.Context, session *entity.Session) error

	// Delete destroys a session by ID. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionID string) error

	// DeleteByUserID destroys the live session of the given user, if any.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
