package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	mockRepo "directory/internal/mocks/repository"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Auth.ResetTokenTTL = time.Hour

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "email", auth.Provider)
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.Roles{entity.RoleUser}, output.User.Roles)
}

func TestUserService_RegisterOwner_CarriesOwnerRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	output, err := fx.service.RegisterOwner(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleOwner}, output.User.Roles)
	assert.True(t, output.User.Roles.CanClaim())
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockRepo.NewMockAuthRepository(t))

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.RegisterUser(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt cost out of range"))

	output, err := fx.service.RegisterUser(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, output)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Roles: entity.Roles{entity.RoleOwner},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, user.ID).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed_password"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"owner"}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, user.ID).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed_password"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "Password123!",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Refresh_RereadsRoles(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Roles: entity.Roles{entity.RoleUser, entity.RoleOwner},
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"user", "owner"}).
		Return("new_access", "new_refresh", nil)

	output, err := fx.service.Refresh(ctx, "refresh_token")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Refresh(context.Background(), "garbage")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_ForgotPassword_IssuesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().
		CreatePasswordReset(ctx, mock.AnythingOfType("*entity.PasswordReset")).
		Run(func(ctx context.Context, reset *entity.PasswordReset) {
			assert.Equal(t, user.ID, reset.UserID)
			assert.NotEmpty(t, reset.TokenHash)
			assert.WithinDuration(t, time.Now().Add(time.Hour), reset.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := fx.service.ForgotPassword(ctx, user.Email)

	require.NoError(t, err)
	assert.Len(t, output.ResetToken, 64)
}

func TestUserService_ForgotPassword_UnknownEmailSucceedsSilently(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.ForgotPassword(ctx, "unknown@example.com")

	require.NoError(t, err)
	assert.Empty(t, output.ResetToken)
	fx.authRepo.AssertNotCalled(t, "CreatePasswordReset", mock.Anything, mock.Anything)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	resetID := uuid.New()
	authID := uuid.New()

	fx.authRepo.EXPECT().
		FindPasswordResetByTokenHash(ctx, mock.AnythingOfType("string")).
		Return(&entity.PasswordReset{
			ID:        resetID,
			UserID:    userID,
			ExpiresAt: time.Now().Add(30 * time.Minute),
		}, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthenticationByUser(ctx, userID).
				Return(&entity.Authentication{ID: authID, UserID: userID}, nil)
			mockAuthRepo.EXPECT().UpdatePasswordHash(ctx, authID, "new_hash").Return(nil)
			mockAuthRepo.EXPECT().DeletePasswordReset(ctx, resetID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, "raw_token", "NewPassword123!")

	require.NoError(t, err)
}

func TestUserService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	resetID := uuid.New()

	fx.authRepo.EXPECT().
		FindPasswordResetByTokenHash(ctx, mock.AnythingOfType("string")).
		Return(&entity.PasswordReset{
			ID:        resetID,
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
	fx.authRepo.EXPECT().DeletePasswordReset(ctx, resetID).Return(nil)

	err := fx.service.ResetPassword(ctx, "raw_token", "NewPassword123!")

	require.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestUserService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindPasswordResetByTokenHash(ctx, mock.AnythingOfType("string")).
		Return(nil, repository.ErrPasswordResetNotFound)

	err := fx.service.ResetPassword(ctx, "garbage", "NewPassword123!")

	require.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}
