// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vinyl/internal/delivery/context"
	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	"vinyl/internal/domain/service"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	sessionStore repository.SessionStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	idGenerator  service.SessionIDGenerator
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.TokenRepository
	SessionStore repository.SessionStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	IDGenerator  service.SessionIDGenerator
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenRepo:    params.TokenRepo,
		sessionStore: params.SessionStore,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		idGenerator:  params.IDGenerator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Whatever roles the client claimed in the
// registration payload are discarded: a registration always produces a
// regular, non-admin account. Admin accounts are provisioned out of band.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if containsAdminClaim(input.Roles) {
		srv.log(ctx).Warn("Registration payload claimed admin role, ignoring",
			slog.String("username", input.Username))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Admin:        false,
		ProfileImage: input.ProfileImage,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials, records a bearer token and issues a bound
// session. Any previous token or session of the user is revoked: each user
// has at most one live credential set.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, wrong password", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Username, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		if err := tokenRepo.DeleteByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to revoke previous tokens")
		}

		return tokenRepo.Create(ctx, &repository.BearerToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(accessToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetAccessTokenDuration()),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	session, err := srv.issueSession(ctx, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Session:     session,
		User:        user,
	}, nil
}

func (srv *authService) issueSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (*entity.Session, error) {
	sessionID, err := srv.idGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session id")
	}
	csrfToken, err := srv.idGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate csrf token")
	}

	now := time.Now()
	session := &entity.Session{
		ID:         sessionID,
		UserID:     user.ID,
		Username:   user.Username,
		Admin:      user.Admin,
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
		CSRFToken:  csrfToken,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if err := srv.sessionStore.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	return session, nil
}

// Logout revokes the bearer token and destroys the session. Logging out with
// an already expired or unknown token still succeeds: the desired end state
// (no live credentials) already holds.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.AccessToken != "" {
		hash := srv.tokenService.HashToken(input.AccessToken)
		if err := srv.tokenRepo.DeleteByHash(ctx, hash); err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
			return errors.Wrap(err, "failed to revoke token")
		}
	}

	if input.SessionID != "" {
		if err := srv.sessionStore.Delete(ctx, input.SessionID); err != nil {
			return errors.Wrap(err, "failed to destroy session")
		}
	}

	srv.log(ctx).Debug("Logout completed")

	return nil
}

func containsAdminClaim(roles []string) bool {
	for _, role := range roles {
		if role == string(entity.RoleAdmin) {
			return true
		}
	}

	return false
}
