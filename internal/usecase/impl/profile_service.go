package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vinyl/internal/delivery/context"
	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/google/uuid"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the user with their social edges loaded.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// GetProfileByUsername returns the user with their social edges loaded.
func (srv *profileService) GetProfileByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// UpdateProfile updates the mutable profile fields. An email change keeps
// the uniqueness check and the write in one transaction.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		if input.Email != "" && input.Email != user.Email {
			if other, err := userRepo.FindByEmail(ctx, input.Email); err == nil && other.ID != user.ID {
				return domainerrors.ErrEmailTaken
			} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email availability")
			}
			user.Email = input.Email
		}
		if input.ProfileImage != "" {
			user.ProfileImage = input.ProfileImage
		}
		user.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}
