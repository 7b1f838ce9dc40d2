package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vinyl/internal/delivery/context"
	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface. Every mutation
// recomputes the affected album's average rating inside the same
// transaction, so the stored average never drifts from the review rows.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateReviewFields(rating int, content string) error {
	if rating < entity.RatingMin || rating > entity.RatingMax {
		return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}
	if strings.TrimSpace(content) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("review content must not be blank")
	}
	if len([]rune(content)) > entity.ReviewContentMaxLen {
		return domainerrors.ErrValidationFailed.WrapMessage("review content is too long")
	}

	return nil
}

// CreateReview posts a review and updates the album's average rating.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := validateReviewFields(input.Rating, input.Content); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New(),
		AlbumID:   input.AlbumID,
		AuthorID:  input.AuthorID,
		Content:   input.Content,
		Rating:    input.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		albumRepo := repoFactory.AlbumRepo()
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := albumRepo.FindByID(ctx, input.AlbumID); err != nil {
			if errors.Is(err, repository.ErrAlbumNotFound) {
				return domainerrors.ErrAlbumNotFound
			}

			return errors.Wrap(err, "failed to look up album")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}

		return recomputeAlbumRating(ctx, reviewRepo, albumRepo, input.AlbumID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create review",
			slog.Any("album", input.AlbumID), slog.Any("author", input.AuthorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID))

	return review, nil
}

// UpdateReview edits a review owned by the caller and updates the album's
// average rating.
func (srv *reviewService) UpdateReview(ctx context.Context, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if err := validateReviewFields(input.Rating, input.Content); err != nil {
		return nil, err
	}

	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, input.ReviewID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up review")
		}

		if review.AuthorID != input.AuthorID {
			return domainerrors.ErrReviewOwnership
		}

		review.Rating = input.Rating
		review.Content = input.Content
		review.UpdatedAt = time.Now()

		if err := reviewRepo.Update(ctx, review); err != nil {
			return err
		}

		updated = review

		return recomputeAlbumRating(ctx, reviewRepo, repoFactory.AlbumRepo(), review.AlbumID)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteReview removes a review. The author may delete their own review;
// admins may delete any review.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID, requesterID uuid.UUID, requesterAdmin bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up review")
		}

		if review.AuthorID != requesterID && !requesterAdmin {
			return domainerrors.ErrReviewOwnership
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return err
		}

		return recomputeAlbumRating(ctx, reviewRepo, repoFactory.AlbumRepo(), review.AlbumID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

// ListByAlbum returns all reviews for an album.
func (srv *reviewService) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]*entity.Review, error) {
	return srv.reviewRepo.ListByAlbum(ctx, albumID)
}

// ListByAuthor returns all reviews written by a user.
func (srv *reviewService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	return srv.reviewRepo.ListByAuthor(ctx, authorID)
}

// recomputeAlbumRating refreshes the stored average from the ratings that
// remain after the current mutation. Must run inside the same transaction
// as the review write.
func recomputeAlbumRating(ctx context.Context, reviewRepo repository.ReviewRepository, albumRepo repository.AlbumRepository, albumID uuid.UUID) error {
	ratings, err := reviewRepo.ListRatingsByAlbum(ctx, albumID)
	if err != nil {
		return errors.Wrap(err, "failed to list ratings for recompute")
	}

	return albumRepo.UpdateAverageRating(ctx, albumID, entity.AverageRating(ratings))
}
