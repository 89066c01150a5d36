package service

import "context"

// CheckoutSessionInput describes one hosted payment session request.
type CheckoutSessionInput struct {
	BatchID     string `json:"batch_id"`
	UserID      string `json:"user_id"`
	AmountTotal int64  `json:"amount_total"` // in cents
	ItemCount   int    `json:"item_count"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
}

// CheckoutSession is the provider's answer; the client is simply redirected
// to URL, no payment handling happens locally.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// PaymentService requests hosted checkout sessions from the payment provider.
type PaymentService interface {
	// CreateCheckoutSession asks the provider for a redirect URL covering the
	// given claim batch.
	CreateCheckoutSession(ctx context.Context, input *CheckoutSessionInput) (*CheckoutSession, error)
}
