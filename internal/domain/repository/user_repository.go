package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrAuthNotFound is returned when no credential exists for a user.
	ErrAuthNotFound = errors.New("authentication not found")
	// ErrPasswordResetNotFound is returned when a reset token does not exist.
	ErrPasswordResetNotFound = errors.New("password reset not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity.
	Update(ctx context.Context, user *entity.User) error
}

// AuthRepository defines the operations for login credentials and password
// reset tokens.
type AuthRepository interface {
	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByUser retrieves the "email" credential of a user.
	FindAuthenticationByUser(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error)

	// UpdatePasswordHash replaces the stored password hash for a credential.
	UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error

	// CreatePasswordReset persists a new reset token record.
	CreatePasswordReset(ctx context.Context, reset *entity.PasswordReset) error

	// FindPasswordResetByTokenHash retrieves a reset record by its token hash.
	FindPasswordResetByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error)

	// DeletePasswordReset removes a consumed or expired reset record.
	DeletePasswordReset(ctx context.Context, id uuid.UUID) error
}
