package impl

import (
	"context"
	"testing"
	"time"

	"vinyl/internal/domain/entity"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/domain/repository"
	mockRepo "vinyl/internal/mocks/repository"
	mockSvc "vinyl/internal/mocks/service"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockTokenRepository
	sessionStore *mockRepo.MockSessionStore
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	idGenerator  *mockSvc.MockSessionIDGenerator
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	sessionStore := mockRepo.NewMockSessionStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	idGenerator := mockSvc.NewMockSessionIDGenerator(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenRepo:    tokenRepo,
		SessionStore: sessionStore,
		Hasher:       hasher,
		TokenService: tokenService,
		IDGenerator:  idGenerator,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		sessionStore: sessionStore,
		hasher:       hasher,
		tokenService: tokenService,
		idGenerator:  idGenerator,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "melomane",
		Email:    "melomane@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.False(t, output.User.Admin)
}

func TestAuthService_Register_IgnoresClaimedAdminRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "sneaky",
		Email:    "sneaky@example.com",
		Password: "Password123!",
		Roles:    []string{"ROLE_ADMIN"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.False(t, user.Admin)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.User.Admin)
	assert.Equal(t, []string{"ROLE_USER"}, output.User.Roles().ToStrings())
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "melomane",
		Email:    "melomane@example.com",
		Password: "Password123!",
	}

	existing := &entity.User{ID: uuid.New(), Username: input.Username}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(existing, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "melomane",
		Email:    "melomane@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "melomane",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Username:  "melomane",
		Password:  "Password123!",
		UserAgent: "Mozilla/5.0",
		IPAddress: "203.0.113.7",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(user.ID, user.Username, []string{"ROLE_USER"}).
		Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().HashToken("signed.jwt.token").Return("token_hash")
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().DeleteByUserID(ctx, user.ID).Return(nil)
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*repository.BearerToken")).
				Run(func(ctx context.Context, token *repository.BearerToken) {
					assert.Equal(t, "token_hash", token.TokenHash)
					assert.Equal(t, user.ID, token.UserID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.idGenerator.EXPECT().Generate().Return("opaque-session-id", nil).Once()
	fx.idGenerator.EXPECT().Generate().Return("opaque-csrf-token", nil).Once()
	fx.sessionStore.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, input.UserAgent, session.UserAgent)
			assert.Equal(t, input.IPAddress, session.IPAddress)
			assert.Equal(t, user.ID, session.UserID)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "opaque-session-id", output.Session.ID)
	assert.Equal(t, "opaque-csrf-token", output.Session.CSRFToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "melomane",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "melomane").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "melomane", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("signed.jwt.token").Return("token_hash")
	fx.tokenRepo.EXPECT().DeleteByHash(ctx, "token_hash").Return(nil)
	fx.sessionStore.EXPECT().Delete(ctx, "opaque-session-id").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{
		AccessToken: "signed.jwt.token",
		SessionID:   "opaque-session-id",
	})

	require.NoError(t, err)
}

func TestAuthService_Logout_ExpiredTokenIsNoOp(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// The token already aged out of the table. Logout still succeeds: the
	// desired end state holds.
	fx.tokenService.EXPECT().HashToken("stale.jwt.token").Return("stale_hash")
	fx.tokenRepo.EXPECT().DeleteByHash(ctx, "stale_hash").Return(repository.ErrTokenNotFound)
	fx.sessionStore.EXPECT().Delete(ctx, "opaque-session-id").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{
		AccessToken: "stale.jwt.token",
		SessionID:   "opaque-session-id",
	})

	require.NoError(t, err)
}
