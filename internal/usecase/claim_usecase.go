package usecase

import (
	"context"
	"time"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// GateDecision is the pure claim-gate outcome for one identity and business.
type GateDecision string

const (
	// GateAuthPrompt asks the visitor to sign in (or upgrade their role)
	// before claiming. Nothing is mutated.
	GateAuthPrompt GateDecision = "auth_prompt"
	// GateConfirm shows the claim confirmation for an allowed caller.
	GateConfirm GateDecision = "confirm"
	// GateDetail routes a non-approved listing to its public detail page.
	GateDetail GateDecision = "detail"
)

// --- Output DTOs ---

// CartOutput is the user's current claim cart with its running total.
type CartOutput struct {
	Items       []*entity.ClaimCartItem
	AmountTotal int64
	BatchID     string
}

// CheckoutOutput carries the hosted payment session the client is redirected to.
type CheckoutOutput struct {
	BatchID     string
	SessionID   string
	RedirectURL string
	AmountTotal int64
	ItemCount   int
}

// ClaimUsecase defines the claim-cart workflow: gating, confirmation, cart
// management and hosted checkout.
type ClaimUsecase interface {
	// Gate decides, without mutating anything, where a click on the given
	// business sends the given identity.
	Gate(identity entity.SessionIdentity, business *entity.Business) GateDecision

	// Confirm re-checks the gate server-side and creates exactly one pending
	// cart item for the business. A failure leaves no partial item.
	Confirm(ctx context.Context, identity entity.SessionIdentity, businessID uuid.UUID) (*entity.ClaimCartItem, error)

	// CurrentBatchID mints the wall-clock batch id and overwrites the user's
	// stored batch record. Calls within the same minute return the same id.
	CurrentBatchID(ctx context.Context, userID uuid.UUID, now time.Time) (string, error)

	// ListCart returns the user's pending cart items, newest first.
	ListCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// RemoveItem deletes one cart item owned by the user. The visible list
	// changes only after the delete succeeds.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error

	// Checkout totals the pending items, requests a hosted payment session,
	// clears the cart and returns the redirect URL. No payment is handled
	// locally.
	Checkout(ctx context.Context, identity entity.SessionIdentity) (*CheckoutOutput, error)

	// CartCount returns the number of pending items, feeding the badge.
	CartCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
