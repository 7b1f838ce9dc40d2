package repository

import (
	"context"
	"errors"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review lookup yields no record.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByAlbum retrieves all reviews of one album, newest first.
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]*entity.Review, error)

	// ListByAuthor retrieves all reviews written by one user.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)

	// ListRatingsByAlbum returns the bare ratings of an album's current
	// reviews, which is all the average recompute needs.
	ListRatingsByAlbum(ctx context.Context, albumID uuid.UUID) ([]int, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAuthor removes every review written by the given user.
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error
}
