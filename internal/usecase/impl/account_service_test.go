package impl

import (
	"context"
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

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	sessionStore *mockRepo.MockSessionStore
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionStore := mockRepo.NewMockSessionStore(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		SessionStore: sessionStore,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		sessionStore: sessionStore,
	}
}

func TestAccountService_DeleteAccount_CascadesEverything(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAlbumRepo := mockRepo.NewMockAlbumRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AlbumRepo().Return(mockAlbumRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

			mockReviewRepo.EXPECT().ListByAuthor(ctx, userID).Return([]*entity.Review{
				{ID: uuid.New(), AlbumID: albumID, AuthorID: userID, Rating: 5},
			}, nil)
			mockReviewRepo.EXPECT().DeleteByAuthor(ctx, userID).Return(nil)

			// The departing 5 leaves a lone 2 behind.
			mockReviewRepo.EXPECT().ListRatingsByAlbum(ctx, albumID).Return([]int{2}, nil)
			mockAlbumRepo.EXPECT().UpdateAverageRating(ctx, albumID, 2.0).Return(nil)

			mockAlbumRepo.EXPECT().RemoveFavoritesByUser(ctx, userID).Return(nil)
			mockTokenRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	fx.sessionStore.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, userID))
}

func TestAccountService_DeleteAccount_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAlbumRepo := mockRepo.NewMockAlbumRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AlbumRepo().Return(mockAlbumRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
