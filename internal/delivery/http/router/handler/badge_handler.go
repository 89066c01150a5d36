package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BadgeHandler serves the header badge counts.
type BadgeHandler struct {
	uc     usecase.BadgeUsecase
	logger *slog.Logger
}

// NewBadgeHandler is the constructor for BadgeHandler, injected by Fx.
func NewBadgeHandler(uc usecase.BadgeUsecase, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{uc: uc, logger: logger}
}

// Counts returns the caller's badge counts. The first fetch also starts the
// background poller for the session, so subsequent fetches are served from
// the cache.
func (h *BadgeHandler) Counts(c echo.Context) error {
	identity := middleware.GetIdentity(c)

	h.uc.Start(identity.UserID)

	counts, err := h.uc.Counts(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "")
}
