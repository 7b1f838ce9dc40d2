package usecase

import (
	"context"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	UserID       uuid.UUID
	Email        string
	ProfileImage string
}

// ProfileUsecase defines the interface for reading and updating user profiles.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	GetProfileByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
