package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directory/internal/delivery/http/validator"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	mockUsecase "directory/internal/mocks/usecase"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCityTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCityHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	c, rec := newCityTestContext(t, http.MethodGet, "/cities?page=2&limit=5&search=aus", "")

	uc.EXPECT().ListCities(mock.Anything, usecase.ListCitiesInput{
		Page:   2,
		Limit:  5,
		Search: "aus",
	}).Return(&usecase.CityListOutput{
		Page:   2,
		Limit:  5,
		Total:  11,
		Cities: []*entity.City{{ID: uuid.New(), Name: "Austin", Slug: "austin"}},
	}, nil)

	err := h.List(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Austin")
	assert.Contains(t, rec.Body.String(), `"total":11`)
	assert.Contains(t, rec.Body.String(), `"page":2`)
}

func TestCityHandler_List_DefaultsPassedThrough(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	c, rec := newCityTestContext(t, http.MethodGet, "/cities", "")

	// Missing query values arrive as zero; clamping happens in the usecase.
	uc.EXPECT().ListCities(mock.Anything, usecase.ListCitiesInput{}).
		Return(&usecase.CityListOutput{Page: 1, Limit: 20}, nil)

	err := h.List(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":1`)
	assert.Contains(t, rec.Body.String(), `"limit":20`)
}

func TestCityHandler_Detail(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	cityID := uuid.New()
	c, rec := newCityTestContext(t, http.MethodGet, "/cities/"+cityID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(cityID.String())

	uc.EXPECT().GetCityWithBusinesses(mock.Anything, cityID).Return(&usecase.CityDetailOutput{
		City: &entity.City{ID: cityID, Name: "Austin", Slug: "austin"},
		Businesses: []*entity.Business{
			{ID: uuid.New(), CityID: cityID, Name: "Franklin Barbecue", Slug: "franklin-barbecue"},
		},
	}, nil)

	err := h.Detail(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Franklin Barbecue")
}

func TestCityHandler_Detail_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	c, rec := newCityTestContext(t, http.MethodGet, "/cities/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Detail(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetCityWithBusinesses")
}

func TestCityHandler_Detail_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	cityID := uuid.New()
	c, _ := newCityTestContext(t, http.MethodGet, "/cities/"+cityID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(cityID.String())

	uc.EXPECT().GetCityWithBusinesses(mock.Anything, cityID).
		Return(nil, domainerrors.ErrCityNotFound)

	err := h.Detail(c)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCityNotFound))
}

func TestCityHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	c, rec := newCityTestContext(t, http.MethodPost, "/admin/cities",
		`{"name":"Austin","slug":"austin","featured":true,"latitude":"30.2672","longitude":"-97.7431"}`)

	uc.EXPECT().CreateCity(mock.Anything, usecase.CityInput{
		Name:      "Austin",
		Slug:      "austin",
		Featured:  true,
		Latitude:  "30.2672",
		Longitude: "-97.7431",
	}).Return(&entity.City{ID: uuid.New(), Name: "Austin", Slug: "austin", Featured: true}, nil)

	err := h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "City created successfully")
}

func TestCityHandler_Create_MissingSlug(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	c, _ := newCityTestContext(t, http.MethodPost, "/admin/cities", `{"name":"Austin"}`)

	err := h.Create(c)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	uc.AssertNotCalled(t, "CreateCity")
}

func TestCityHandler_SetFeatured(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	cityID := uuid.New()
	c, rec := newCityTestContext(t, http.MethodPatch, "/admin/cities/"+cityID.String()+"/featured",
		`{"featured":true}`)
	c.SetParamNames("id")
	c.SetParamValues(cityID.String())

	uc.EXPECT().SetCityFeatured(mock.Anything, cityID, true).Return(nil)

	err := h.SetFeatured(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"featured":true`)
}

func TestCityHandler_Delete(t *testing.T) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewCityHandler(uc, slog.Default())

	cityID := uuid.New()
	c, rec := newCityTestContext(t, http.MethodDelete, "/admin/cities/"+cityID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(cityID.String())

	uc.EXPECT().DeleteCity(mock.Anything, cityID).Return(nil)

	err := h.Delete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "City deleted successfully")
}
