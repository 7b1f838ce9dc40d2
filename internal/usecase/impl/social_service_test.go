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

type socialServiceFixtures struct {
	service   usecase.SocialUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	albumRepo *mockRepo.MockAlbumRepository
}

func createTestSocialService(t *testing.T) socialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	albumRepo := mockRepo.NewMockAlbumRepository(t)

	service := NewSocialService(SocialServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		AlbumRepo: albumRepo,
		Logger:    newDiscardLogger(),
	})

	return socialServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		albumRepo: albumRepo,
	}
}

func TestSocialService_Follow_Success(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	followerID := uuid.New()
	targetID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
			mockUserRepo.EXPECT().AddFollow(ctx, followerID, targetID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.Follow(ctx, followerID, targetID))
}

func TestSocialService_Follow_SelfIsRejected(t *testing.T) {
	fx := createTestSocialService(t)

	userID := uuid.New()

	err := fx.service.Follow(context.Background(), userID, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelfFollow)
}

func TestSocialService_Follow_UnknownTarget(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	followerID := uuid.New()
	targetID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Follow(ctx, followerID, targetID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSocialService_ToggleFollow_RoundTrip(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	followerID := uuid.New()
	targetID := uuid.New()
	target := &entity.User{ID: targetID, Username: "beatmaker"}

	following := false

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
			mockUserRepo.EXPECT().HasFollow(ctx, followerID, targetID).RunAndReturn(
				func(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
					return following, nil
				})
			mockUserRepo.EXPECT().AddFollow(ctx, followerID, targetID).RunAndReturn(
				func(ctx context.Context, followerID, targetID uuid.UUID) error {
					following = true

					return nil
				}).Maybe()
			mockUserRepo.EXPECT().RemoveFollow(ctx, followerID, targetID).RunAndReturn(
				func(ctx context.Context, followerID, targetID uuid.UUID) error {
					following = false

					return nil
				}).Maybe()

			return fn(mockFactory)
		}).Twice()

	first, err := fx.service.ToggleFollow(ctx, followerID, targetID)
	require.NoError(t, err)
	assert.Equal(t, usecase.FollowActionFollowed, first.Action)
	assert.Contains(t, first.Message, "beatmaker")

	second, err := fx.service.ToggleFollow(ctx, followerID, targetID)
	require.NoError(t, err)
	assert.Equal(t, usecase.FollowActionUnfollowed, second.Action)
	assert.Contains(t, second.Message, "beatmaker")
}

func TestSocialService_Unfollow_AbsentEdgeIsNoOp(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	followerID := uuid.New()
	targetID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().RemoveFollow(ctx, followerID, targetID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.Unfollow(ctx, followerID, targetID))
}

func TestSocialService_AddFavorite_UnknownAlbum(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAlbumRepo := mockRepo.NewMockAlbumRepository(t)

			mockFactory.EXPECT().AlbumRepo().Return(mockAlbumRepo)
			mockAlbumRepo.EXPECT().FindByID(ctx, albumID).Return(nil, repository.ErrAlbumNotFound)

			return fn(mockFactory)
		})

	err := fx.service.AddFavorite(ctx, userID, albumID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlbumNotFound)
}

func TestSocialService_ListFavorites(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	albumA := &entity.Album{ID: uuid.New(), Title: "Blue Train"}
	albumB := &entity.Album{ID: uuid.New(), Title: "Kind of Blue"}

	fx.albumRepo.EXPECT().
		ListFavoriteAlbumIDsByUser(ctx, userID).
		Return([]uuid.UUID{albumA.ID, albumB.ID}, nil)
	fx.albumRepo.EXPECT().FindByID(ctx, albumA.ID).Return(albumA, nil)
	fx.albumRepo.EXPECT().FindByID(ctx, albumB.ID).Return(albumB, nil)

	albums, err := fx.service.ListFavorites(ctx, userID)

	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Blue Train", albums[0].Title)
}
