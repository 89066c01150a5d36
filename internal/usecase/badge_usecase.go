package usecase

import (
	"context"

	"github.com/google/uuid"
)

// BadgeCounts is the cached badge state for one signed-in user. The directory
// owns the claim cart, so the cart count is the badge this service can serve.
type BadgeCounts struct {
	CartItems int64
}

// BadgeUsecase runs one cancellable periodic refresh per signed-in user and
// serves the most recent counts from cache.
type BadgeUsecase interface {
	// Start begins polling for the user. Starting an already polled user is
	// a no-op.
	Start(userID uuid.UUID)

	// Counts returns the cached badge counts, fetching synchronously when the
	// user is not yet polled.
	Counts(ctx context.Context, userID uuid.UUID) (BadgeCounts, error)

	// Stop cancels the user's poller on sign-out.
	Stop(userID uuid.UUID)

	// StopAll cancels every poller on shutdown.
	StopAll()
}
