package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/domain/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// businessRequest is the writable payload for the back office business endpoints.
type businessRequest struct {
	CityID         uuid.UUID `json:"city_id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	Slug           string    `json:"slug" validate:"required"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	CityName       string    `json:"city_name"`
	State          string    `json:"state"`
	Country        string    `json:"country"`
	Zipcode        string    `json:"zipcode"`
	Active         bool      `json:"active"`
	Blocked        bool      `json:"blocked"`
	BusinessStatus string    `json:"business_status"`
	Latitude       string    `json:"latitude"`
	Longitude      string    `json:"longitude"`
	LogoURL        string    `json:"logo_url"`
	MarkerURL      string    `json:"marker_url"`
	ClaimedFee     int64     `json:"claimed_fee"`
	ExternalID     string    `json:"external_id"`
}

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	uc     usecase.DirectoryUsecase
	qr     service.QRCodeService
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.DirectoryUsecase, qr service.QRCodeService, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, qr: qr, logger: logger}
}

// Detail returns a single visible business for the public detail page.
func (h *BusinessHandler) Detail(c echo.Context) error {
	business, err := h.uc.GetBusinessBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// ShareQR renders a QR code pointing at the business detail page.
func (h *BusinessHandler) ShareQR(c echo.Context) error {
	business, err := h.uc.GetBusinessBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	shareURL := c.Scheme() + "://" + c.Request().Host + "/businesses/" + business.Slug

	png, err := h.qr.GenerateShareQR(shareURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create adds a new business listing.
func (h *BusinessHandler) Create(c echo.Context) error {
	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), businessInputFromRequest(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// Update replaces the writable fields of an existing listing.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business id")
	}

	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), id, businessInputFromRequest(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// Delete removes a business listing.
func (h *BusinessHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business id")
	}

	if err := h.uc.DeleteBusiness(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

func businessInputFromRequest(req businessRequest) usecase.BusinessInput {
	return usecase.BusinessInput{
		CityID:         req.CityID,
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Address:        req.Address,
		CityName:       req.CityName,
		State:          req.State,
		Country:        req.Country,
		Zipcode:        req.Zipcode,
		Active:         req.Active,
		Blocked:        req.Blocked,
		BusinessStatus: req.BusinessStatus,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		LogoURL:        req.LogoURL,
		MarkerURL:      req.MarkerURL,
		ClaimedFee:     req.ClaimedFee,
		ExternalID:     req.ExternalID,
	}
}
