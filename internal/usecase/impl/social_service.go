package impl

import (
	"context"
	"log/slog"

	deliverycontext "vinyl/internal/delivery/context"
	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// socialService implements the SocialUsecase interface. Follow edges and
// favorites are single rows, so both directions of a relation change in
// one atomic write; the transaction wraps the existence checks with it.
type socialService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	albumRepo repository.AlbumRepository
	logger    *slog.Logger
}

// SocialServiceParams holds dependencies for socialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	AlbumRepo repository.AlbumRepository
	Logger    *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	return &socialService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		albumRepo: params.AlbumRepo,
		logger:    params.Logger,
	}
}

func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Follow makes followerID follow targetID. Following yourself is rejected,
// following someone you already follow is a no-op.
func (srv *socialService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return domainerrors.ErrSelfFollow
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to look up follow target")
		}

		return userRepo.AddFollow(ctx, followerID, targetID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Follow added", slog.Any("follower", followerID), slog.Any("target", targetID))

	return nil
}

// Unfollow removes the follow edge. Removing an absent edge is a no-op.
func (srv *socialService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return domainerrors.ErrSelfFollow
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().RemoveFollow(ctx, followerID, targetID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Follow removed", slog.Any("follower", followerID), slog.Any("target", targetID))

	return nil
}

// ToggleFollow flips the follow state and reports which way it went. The
// check and the write run in one transaction so two concurrent toggles
// cannot double-apply.
func (srv *socialService) ToggleFollow(ctx context.Context, followerID, targetID uuid.UUID) (*usecase.FollowToggleOutput, error) {
	if followerID == targetID {
		return nil, domainerrors.ErrSelfFollow
	}

	var output *usecase.FollowToggleOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to look up follow target")
		}

		following, err := userRepo.HasFollow(ctx, followerID, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to check follow state")
		}

		if following {
			if err := userRepo.RemoveFollow(ctx, followerID, targetID); err != nil {
				return err
			}
			output = &usecase.FollowToggleOutput{
				Action:  usecase.FollowActionUnfollowed,
				Message: "You are no longer following " + target.Username,
			}

			return nil
		}

		if err := userRepo.AddFollow(ctx, followerID, targetID); err != nil {
			return err
		}
		output = &usecase.FollowToggleOutput{
			Action:  usecase.FollowActionFollowed,
			Message: "You are now following " + target.Username,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to toggle follow",
			slog.Any("follower", followerID), slog.Any("target", targetID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// IsFollowing reports whether followerID currently follows targetID.
func (srv *socialService) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return srv.userRepo.HasFollow(ctx, followerID, targetID)
}

// AddFavorite marks an album as a favorite of the user. Favoriting an album
// twice is a no-op.
func (srv *socialService) AddFavorite(ctx context.Context, userID, albumID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		albumRepo := repoFactory.AlbumRepo()

		if _, err := albumRepo.FindByID(ctx, albumID); err != nil {
			if errors.Is(err, repository.ErrAlbumNotFound) {
				return domainerrors.ErrAlbumNotFound
			}

			return errors.Wrap(err, "failed to look up album")
		}

		return albumRepo.AddFavorite(ctx, userID, albumID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("user", userID), slog.Any("album", albumID))

	return nil
}

// RemoveFavorite clears the favorite mark. Removing an absent mark is a no-op.
func (srv *socialService) RemoveFavorite(ctx context.Context, userID, albumID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AlbumRepo().RemoveFavorite(ctx, userID, albumID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Favorite removed", slog.Any("user", userID), slog.Any("album", albumID))

	return nil
}

// ListFavorites returns the albums the user marked as favorites.
func (srv *socialService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Album, error) {
	albumIDs, err := srv.albumRepo.ListFavoriteAlbumIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite album ids")
	}

	albums := make([]*entity.Album, 0, len(albumIDs))
	for _, albumID := range albumIDs {
		album, err := srv.albumRepo.FindByID(ctx, albumID)
		if errors.Is(err, repository.ErrAlbumNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load favorite album")
		}
		albums = append(albums, album)
	}

	return albums, nil
}
