package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimItemStatusPending is the only client-visible cart item status; items
// disappear from the cart when removed or checked out.
const ClaimItemStatusPending = "pending"

// batchIDLayout renders the wall clock down to the minute: Order-DDMMYYYYHHmm.
const batchIDLayout = "020120061504"

// ClaimCartItem records a visitor's intent to claim a locked listing.
// Amount and batch grouping are immutable once created.
type ClaimCartItem struct {
	ID         uuid.UUID // The unique ID for this cart item.
	UserID     uuid.UUID // The visitor who added the item.
	BusinessID uuid.UUID // The claimed listing.
	BatchID    string    // Checkout grouping id, minted by FormatBatchID.
	Amount     int64     // Fixed unit price in cents, set from config at creation.
	Status     string    // Lifecycle status, currently always "pending".
	CreatedAt  time.Time // Timestamp of when the claim was added to the cart.
}

// ClaimBatch is the per-user "last computed" batch id. It is overwritten every
// time a batch id is requested, so the current batch is whatever was minted
// most recently, not a durable cart-of-record.
type ClaimBatch struct {
	UserID    uuid.UUID // Owner of the batch id.
	BatchID   string    // Latest minted id.
	UpdatedAt time.Time // When the id was last overwritten.
}

// FormatBatchID mints a checkout batch id from the wall clock. Two calls
// within the same calendar minute yield the same id; different minutes yield
// different ids.
func FormatBatchID(now time.Time) string {
	return "Order-" + now.Format(batchIDLayout)
}
