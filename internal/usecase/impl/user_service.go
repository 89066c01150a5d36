package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	resetTTL     time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		resetTTL:     params.Config.Auth.ResetTokenTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a plain "user" account.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleUser)
}

// RegisterOwner creates an account carrying the "owner" role.
func (srv *userService) RegisterOwner(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleOwner)
}

// register creates the user and its email credential in one transaction.
func (srv *userService) register(ctx context.Context, input usecase.RegisterUserInput, role entity.Role) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email: input.Email,
		Name:  input.Name,
		Roles: entity.Roles{role},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing account")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:       user.ID,
			Provider:     "email",
			PasswordHash: hashedPassword,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID), slog.Any("role", role))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credential and issues an access/refresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	auth, err := srv.authRepo.FindAuthenticationByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find credential for login")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. Roles are
// re-read from storage so a role change takes effect on the next refresh.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// ForgotPassword issues a short-lived reset token. Unknown emails succeed
// silently so the endpoint cannot probe registrations.
func (srv *userService) ForgotPassword(ctx context.Context, email string) (*usecase.ForgotPasswordOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return &usecase.ForgotPasswordOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user for password reset")
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.authRepo.CreatePasswordReset(ctx, &entity.PasswordReset{
		UserID:    user.ID,
		TokenHash: hashResetToken(rawToken),
		ExpiresAt: time.Now().Add(srv.resetTTL),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store password reset")
	}

	srv.log(ctx).Info("Password reset issued", slog.Any("userID", user.ID))

	return &usecase.ForgotPasswordOutput{ResetToken: rawToken}, nil
}

// ResetPassword consumes a reset token and replaces the password hash.
func (srv *userService) ResetPassword(ctx context.Context, token, newPassword string) error {
	reset, err := srv.authRepo.FindPasswordResetByTokenHash(ctx, hashResetToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrPasswordResetNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find password reset")
	}

	if time.Now().After(reset.ExpiresAt) {
		// Expired records are dropped eagerly; failure to delete is harmless.
		_ = srv.authRepo.DeletePasswordReset(ctx, reset.ID)

		return domainerrors.ErrResetTokenInvalid
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		auth, err := authRepo.FindAuthenticationByUser(ctx, reset.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find credential for reset")
		}

		if err := authRepo.UpdatePasswordHash(ctx, auth.ID, hashedPassword); err != nil {
			return err
		}

		return authRepo.DeletePasswordReset(ctx, reset.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to reset password", slog.Any("userID", reset.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", reset.UserID))

	return nil
}

// generateResetToken returns 32 random bytes hex-encoded.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// hashResetToken stores only the SHA-256 of the raw token.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
