// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByAlbum retrieves all reviews of one album, newest first.
func (repo *reviewRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("created_at desc").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by album")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListByAuthor retrieves all reviews written by one user.
func (repo *reviewRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by author")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListRatingsByAlbum returns the bare ratings of an album's current reviews.
func (repo *reviewRepository) ListRatingsByAlbum(ctx context.Context, albumID uuid.UUID) ([]int, error) {
	var ratings []int

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("album_id = ?", albumID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by album")
	}

	return ratings, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already reviewed this album")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating outside allowed range")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlbumNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update modifies an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Save(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating outside allowed range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Delete removes a review by ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByAuthor removes every review written by the given user.
func (repo *reviewRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reviews by author")
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		AlbumID:   data.AlbumID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toReviewDomainSlice(reviewModels []model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, toReviewDomain(&reviewModels[i]))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:       data.ID,
		AlbumID:  data.AlbumID,
		AuthorID: data.AuthorID,
		Content:  data.Content,
		Rating:   data.Rating,
	}
}
