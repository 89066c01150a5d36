package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type confirmClaimRequest struct {
	BusinessID uuid.UUID `json:"business_id" validate:"required"`
}

// ClaimHandler holds dependencies for the claim-cart handlers.
type ClaimHandler struct {
	uc     usecase.ClaimUsecase
	logger *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler, injected by Fx.
func NewClaimHandler(uc usecase.ClaimUsecase, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{uc: uc, logger: logger}
}

// ListCart returns the caller's pending cart items with the running total.
func (h *ClaimHandler) ListCart(c echo.Context) error {
	identity := middleware.GetIdentity(c)

	output, err := h.uc.ListCart(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Confirm adds one business to the caller's claim cart. The gate is
// re-checked server-side regardless of what the client showed.
func (h *ClaimHandler) Confirm(c echo.Context) error {
	var req confirmClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.GetIdentity(c)

	item, err := h.uc.Confirm(c.Request().Context(), identity, req.BusinessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Business added to claim cart")
}

// RemoveItem deletes one cart item owned by the caller.
func (h *ClaimHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	identity := middleware.GetIdentity(c)

	if err := h.uc.RemoveItem(c.Request().Context(), identity.UserID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}

// Checkout requests a hosted payment session for the cart and returns the
// redirect URL. No payment details pass through this server.
func (h *ClaimHandler) Checkout(c echo.Context) error {
	identity := middleware.GetIdentity(c)

	output, err := h.uc.Checkout(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Checkout session created")
}
