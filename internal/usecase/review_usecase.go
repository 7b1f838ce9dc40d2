package usecase

import (
	"context"

	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	AlbumID  uuid.UUID
	AuthorID uuid.UUID
	Rating   int
	Content  string
}

// UpdateReviewInput defines the data required to edit an existing review.
type UpdateReviewInput struct {
	ReviewID uuid.UUID
	AuthorID uuid.UUID
	Rating   int
	Content  string
}

// ReviewUsecase defines the interface for album review operations. Every
// mutation recomputes the album's average rating in the same transaction.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, reviewID, requesterID uuid.UUID, requesterAdmin bool) error
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]*entity.Review, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)
}
