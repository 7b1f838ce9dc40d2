package impl

import (
	"context"
	"strings"
	"testing"

	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	mockRepo "vinyl/internal/mocks/repository"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
	}
}

func TestReviewService_CreateReview_RecomputesAverage(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	albumID := uuid.New()
	authorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAlbumRepo := mockRepo.NewMockAlbumRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().AlbumRepo().Return(mockAlbumRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockAlbumRepo.EXPECT().FindByID(ctx, albumID).Return(&entity.Album{ID: albumID}, nil)
			mockReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
			// The new rating joins two existing ones: (4+5+3)/3 = 4.0.
			mockReviewRepo.EXPECT().ListRatingsByAlbum(ctx, albumID).Return([]int{4, 5, 3}, nil)
			mockAlbumRepo.EXPECT().UpdateAverageRating(ctx, albumID, 4.0).Return(nil)

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		AlbumID:  albumID,
		AuthorID: authorID,
		Rating:   3,
		Content:  "Solid, not their best.",
	})

	require.NoError(t, err)
	assert.Equal(t, albumID, review.AlbumID)
	assert.Equal(t, 3, review.Rating)
}

func TestReviewService_CreateReview_RejectsBadRating(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, -1, 6, 42} {
		_, err := fx.service.CreateReview(context.Background(), &usecase.CreateReviewInput{
			AlbumID:  uuid.New(),
			AuthorID: uuid.New(),
			Rating:   rating,
			Content:  "text",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestReviewService_CreateReview_RejectsBlankContent(t *testing.T) {
	fx := createTestReviewService(t)

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := fx.service.CreateReview(context.Background(), &usecase.CreateReviewInput{
			AlbumID:  uuid.New(),
			AuthorID: uuid.New(),
			Rating:   4,
			Content:  content,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestReviewService_CreateReview_RejectsOversizedContent(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.CreateReview(context.Background(), &usecase.CreateReviewInput{
		AlbumID:  uuid.New(),
		AuthorID: uuid.New(),
		Rating:   4,
		Content:  strings.Repeat("x", entity.ReviewContentMaxLen+1),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_UpdateReview_OwnershipEnforced(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
				ID:       reviewID,
				AuthorID: owner,
			}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateReview(ctx, &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		AuthorID: stranger,
		Rating:   1,
		Content:  "drive-by edit",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnership)
}

func TestReviewService_DeleteReview_AdminMayDeleteAny(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	albumID := uuid.New()
	owner := uuid.New()
	admin := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAlbumRepo := mockRepo.NewMockAlbumRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().AlbumRepo().Return(mockAlbumRepo)

			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
				ID:       reviewID,
				AlbumID:  albumID,
				AuthorID: owner,
			}, nil)
			mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
			// Last review gone: the average resets to the zero default.
			mockReviewRepo.EXPECT().ListRatingsByAlbum(ctx, albumID).Return([]int{}, nil)
			mockAlbumRepo.EXPECT().UpdateAverageRating(ctx, albumID, 0.0).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.DeleteReview(ctx, reviewID, admin, true))
}

func TestReviewService_DeleteReview_StrangerForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
				ID:       reviewID,
				AuthorID: owner,
			}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteReview(ctx, reviewID, stranger, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnership)
}
