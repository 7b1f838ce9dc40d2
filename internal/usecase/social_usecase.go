package usecase

import (
	"context"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// Follow toggle actions reported back to the client.
const (
	FollowActionFollowed   = "followed"
	FollowActionUnfollowed = "unfollowed"
)

// FollowToggleOutput reports which way a follow toggle went.
type FollowToggleOutput struct {
	Action  string
	Message string
}

// SocialUsecase defines the interface for the social graph operations:
// follow relations between users and album favorites.
type SocialUsecase interface {
	Follow(ctx context.Context, followerID, targetID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error
	ToggleFollow(ctx context.Context, followerID, targetID uuid.UUID) (*FollowToggleOutput, error)
	IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error)

	AddFavorite(ctx context.Context, userID, albumID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, albumID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Album, error)
}
