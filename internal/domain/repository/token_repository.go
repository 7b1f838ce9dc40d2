package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a bearer token hash has no record,
// meaning the token was never issued or has been revoked.
var ErrTokenNotFound = errors.New("token not found")

// BearerToken is the persisted record of an issued access token. Only the
// SHA-256 hash is stored; presenting a token whose hash is absent means the
// token has been revoked, even if its signature is still valid.
type BearerToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenRepository defines persistence for issued bearer tokens, enabling
// explicit revocation on logout.
type TokenRepository interface {
	// Create persists a newly issued token record.
	Create(ctx context.Context, token *BearerToken) error

	// FindByHash retrieves a live token record by hash. Expired records are
	// treated as not found.
	FindByHash(ctx context.Context, tokenHash string) (*BearerToken, error)

	// DeleteByHash revokes a token by removing its record. Deleting an
	// absent hash is a no-op.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID revokes every token issued to the given user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
