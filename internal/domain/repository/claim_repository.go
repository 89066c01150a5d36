package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for claim-cart persistence.
var (
	// ErrClaimItemNotFound is returned when a cart item is not found.
	ErrClaimItemNotFound = errors.New("claim cart item not found")
	// ErrDuplicateClaim is returned when the user already has a pending claim
	// for the same business.
	ErrDuplicateClaim = errors.New("pending claim already exists for this business")
)

// ClaimRepository defines the operations for the claim cart and the per-user
// batch id record.
type ClaimRepository interface {
	// CreateItem persists a new cart item. Returns ErrDuplicateClaim when a
	// pending item for the same user and business already exists.
	CreateItem(ctx context.Context, item *entity.ClaimCartItem) error

	// FindItemsByUser retrieves the user's cart, newest first.
	FindItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClaimCartItem, error)

	// FindItemByID retrieves a single cart item.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.ClaimCartItem, error)

	// DeleteItem removes a cart item by its ID.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// DeleteItemsByUser removes every cart item of a user, used after a
	// completed checkout.
	DeleteItemsByUser(ctx context.Context, userID uuid.UUID) error

	// CountPendingByUser returns the number of pending items, feeding the
	// cart badge.
	CountPendingByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// SaveBatch overwrites the user's current batch id record.
	SaveBatch(ctx context.Context, batch *entity.ClaimBatch) error
}
