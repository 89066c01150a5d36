package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Roles determine which parts of the directory
// a user may operate on; a plain "user" can browse but never claim.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Primary contact email, used as the login identifier.
	Name      string    // Display name.
	Roles     Roles     // Assigned roles ("user", "owner", "admin").
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID           uuid.UUID // The unique ID for this specific authentication record.
	UserID       uuid.UUID // Links this authentication method to the User it belongs to.
	Provider     string    // The authentication provider, currently "email".
	PasswordHash string    // Stores the bcrypt-hashed password when Provider is "email".
	CreatedAt    time.Time // When this authentication method was linked to the account.
}

// PasswordReset is a short-lived token issued by the forgot-password flow.
type PasswordReset struct {
	ID        uuid.UUID // The unique ID for this reset record.
	UserID    uuid.UUID // The account being reset.
	TokenHash string    // SHA-256 hash of the raw reset token.
	ExpiresAt time.Time // When this reset token becomes invalid.
	CreatedAt time.Time // When the reset was requested.
}
