package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cityRequest is the writable payload for the back office city endpoints.
type cityRequest struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Featured     bool   `json:"featured"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	DisplayOrder int    `json:"display_order"`
	PictureURL   string `json:"picture_url"`
}

type setFeaturedRequest struct {
	Featured bool `json:"featured"`
}

// CityHandler holds dependencies for city-related handlers.
type CityHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewCityHandler is the constructor for CityHandler, injected by Fx.
func NewCityHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *CityHandler {
	return &CityHandler{uc: uc, logger: logger}
}

// List returns one page of cities. Paging values outside the configured
// bounds are clamped, not rejected.
func (h *CityHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListCities(c.Request().Context(), usecase.ListCitiesInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Page, output.Limit, output.Total, output.Cities, "")
}

// Detail returns a city together with its visible businesses.
func (h *CityHandler) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid city id")
	}

	output, err := h.uc.GetCityWithBusinesses(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create adds a new city.
func (h *CityHandler) Create(c echo.Context) error {
	var req cityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.CreateCity(c.Request().Context(), cityInputFromRequest(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, city, "City created successfully")
}

// Update replaces the writable fields of an existing city.
func (h *CityHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid city id")
	}

	var req cityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.UpdateCity(c.Request().Context(), id, cityInputFromRequest(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "City updated successfully")
}

// Delete removes a city.
func (h *CityHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid city id")
	}

	if err := h.uc.DeleteCity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "City deleted successfully")
}

// SetFeatured toggles the featured flag, the server side of the optimistic
// toggle in the back office UI.
func (h *CityHandler) SetFeatured(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid city id")
	}

	var req setFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetCityFeatured(c.Request().Context(), id, req.Featured); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"featured": req.Featured}, "City updated successfully")
}

func cityInputFromRequest(req cityRequest) usecase.CityInput {
	return usecase.CityInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Featured:     req.Featured,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		DisplayOrder: req.DisplayOrder,
		PictureURL:   req.PictureURL,
	}
}
