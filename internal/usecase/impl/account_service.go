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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	sessionStore repository.SessionStore
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SessionStore repository.SessionStore
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		sessionStore: params.SessionStore,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteAccount removes the user and everything attached to them in one
// transaction: reviews (recomputing the affected albums' averages),
// favorites, follow edges in both directions, bearer tokens and finally the
// user row. The session teardown happens after the commit; a crash in
// between leaves only an orphan session that the idle timeout reclaims.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		albumRepo := repoFactory.AlbumRepo()
		reviewRepo := repoFactory.ReviewRepo()
		tokenRepo := repoFactory.TokenRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to look up user")
		}

		// Collect the albums whose averages change before the reviews go.
		reviews, err := reviewRepo.ListByAuthor(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list user reviews")
		}
		affected := make(map[uuid.UUID]struct{}, len(reviews))
		for _, review := range reviews {
			affected[review.AlbumID] = struct{}{}
		}

		if err := reviewRepo.DeleteByAuthor(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user reviews")
		}

		for albumID := range affected {
			ratings, err := reviewRepo.ListRatingsByAlbum(ctx, albumID)
			if err != nil {
				return errors.Wrap(err, "failed to list ratings for recompute")
			}
			if err := albumRepo.UpdateAverageRating(ctx, albumID, entity.AverageRating(ratings)); err != nil {
				return errors.Wrap(err, "failed to update album rating")
			}
		}

		if err := albumRepo.RemoveFavoritesByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user favorites")
		}

		if err := tokenRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user tokens")
		}

		// Removes the follow edges in both directions, then the user row.
		return userRepo.Delete(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction",
			slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	if err := srv.sessionStore.DeleteByUserID(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to destroy session after account deletion",
			slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}
