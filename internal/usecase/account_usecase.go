package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AccountUsecase defines the interface for account lifecycle operations.
type AccountUsecase interface {
	// DeleteAccount removes the user and everything attached to them:
	// follow edges in both directions, favorites, reviews (with the
	// affected albums' average ratings recomputed), bearer tokens and
	// the live session.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
