// Package payment talks to the hosted checkout provider over HTTP. No card
// data ever touches this service; we only exchange a batch summary for a
// redirect URL.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"directory/config"
	"directory/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// checkoutClient implements service.PaymentService against a hosted checkout
// HTTP API.
type checkoutClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCheckoutClient creates a payment client from configuration.
func NewCheckoutClient(cfg *config.Config, logger *slog.Logger) service.PaymentService {
	timeout := cfg.Payment.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &checkoutClient{
		endpoint: cfg.Payment.Endpoint,
		apiKey:   cfg.Payment.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// CreateCheckoutSession asks the provider for a hosted session covering one
// claim batch and returns the redirect URL.
func (c *checkoutClient) CreateCheckoutSession(ctx context.Context, input *service.CheckoutSessionInput) (*service.CheckoutSession, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Info("[Payment] Creating checkout session",
		slog.String("batch_id", input.BatchID),
		slog.Int("item_count", input.ItemCount),
		slog.Int64("amount_total", input.AmountTotal),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a bounded slice of the body for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("checkout provider returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var session service.CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session response")
	}

	if session.URL == "" {
		return nil, errors.New("checkout provider returned an empty redirect URL")
	}

	c.logger.Info("[Payment] Checkout session created",
		slog.String("batch_id", input.BatchID),
		slog.String("session_id", session.SessionID),
	)

	return &session, nil
}
