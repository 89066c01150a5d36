package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// ForgotPasswordOutput carries the raw reset token. Delivery of the token to
// the user (mail, SMS) happens outside this service.
type ForgotPasswordOutput struct {
	ResetToken string
}

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// RegisterUser creates a plain "user" account.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)

	// RegisterOwner creates an account carrying the "owner" role, which may
	// enter the claim workflow.
	RegisterOwner(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)

	// Login verifies the credential and issues an access/refresh token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// ForgotPassword issues a short-lived reset token for the account.
	// It succeeds silently for unknown emails so the endpoint cannot be used
	// to probe registrations.
	ForgotPassword(ctx context.Context, email string) (*ForgotPasswordOutput, error)

	// ResetPassword consumes a reset token and replaces the password hash.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
