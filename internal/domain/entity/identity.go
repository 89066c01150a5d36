package entity

import "github.com/google/uuid"

// SessionIdentity describes the caller as seen by gating logic. It may come
// from a verified access token (middleware) or from an unverified client-side
// decode; only the former is authoritative.
type SessionIdentity struct {
	UserID        uuid.UUID // Subject of the session, zero when anonymous.
	Roles         Roles     // Roles attached to the session.
	Authenticated bool      // Whether the caller presented a valid token.
}

// Anonymous is the identity of a visitor without a session.
func Anonymous() SessionIdentity {
	return SessionIdentity{}
}
