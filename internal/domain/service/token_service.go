package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Roles    []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed bearer token carrying the user's
	// identity and role claims.
	GenerateAccessToken(userID uuid.UUID, username string, roles []string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken derives the storage hash for a token string, used for
	// revocation bookkeeping.
	HashToken(tokenString string) string

	// GetAccessTokenDuration returns the configured token lifetime.
	GetAccessTokenDuration() time.Duration
}
