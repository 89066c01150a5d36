package service

import (
	"context"
)

// ClaimEvent is published whenever the claim cart changes in a way the back
// office cares about (item added, checkout started).
type ClaimEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`                 // "claim.created" or "claim.checkout"
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id,omitempty"`
	BatchID    string `json:"batch_id"`
	Amount     int64  `json:"amount"` // in cents
}

// Event type keys for ClaimEvent.Type.
const (
	ClaimEventCreated  = "claim.created"
	ClaimEventCheckout = "claim.checkout"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishClaimEvent publishes a claim cart event for async processing
	PublishClaimEvent(ctx context.Context, event *ClaimEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
