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

func newClaimTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func ownerSession() entity.SessionIdentity {
	return entity.SessionIdentity{
		UserID:        uuid.New(),
		Roles:         entity.Roles{entity.RoleOwner},
		Authenticated: true,
	}
}

func TestClaimHandler_ListCart(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	identity := ownerSession()
	c, rec := newClaimTestContext(t, http.MethodGet, "/claims", "")
	c.Set("identity", identity)

	uc.EXPECT().ListCart(mock.Anything, identity.UserID).Return(&usecase.CartOutput{
		Items: []*entity.ClaimCartItem{
			{ID: uuid.New(), UserID: identity.UserID, Amount: 9900, Status: entity.ClaimItemStatusPending},
		},
		AmountTotal: 9900,
		BatchID:     "Order-010920261200",
	}, nil)

	err := h.ListCart(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order-010920261200")
	assert.Contains(t, rec.Body.String(), "9900")
}

func TestClaimHandler_Confirm(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	identity := ownerSession()
	businessID := uuid.New()
	c, rec := newClaimTestContext(t, http.MethodPost, "/claims",
		`{"business_id":"`+businessID.String()+`"}`)
	c.Set("identity", identity)

	uc.EXPECT().Confirm(mock.Anything, identity, businessID).Return(&entity.ClaimCartItem{
		ID:         uuid.New(),
		UserID:     identity.UserID,
		BusinessID: businessID,
		Amount:     9900,
		Status:     entity.ClaimItemStatusPending,
	}, nil)

	err := h.Confirm(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Business added to claim cart")
	assert.Contains(t, rec.Body.String(), businessID.String())
}

func TestClaimHandler_Confirm_InvalidBody(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	c, rec := newClaimTestContext(t, http.MethodPost, "/claims", `{"business_id":`)
	c.Set("identity", ownerSession())

	err := h.Confirm(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "Confirm")
}

func TestClaimHandler_Confirm_GateRejection(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	identity := ownerSession()
	businessID := uuid.New()
	c, _ := newClaimTestContext(t, http.MethodPost, "/claims",
		`{"business_id":"`+businessID.String()+`"}`)
	c.Set("identity", identity)

	uc.EXPECT().Confirm(mock.Anything, identity, businessID).
		Return(nil, domainerrors.ErrBusinessNotClaimable)

	err := h.Confirm(c)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotClaimable))
}

func TestClaimHandler_RemoveItem(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	identity := ownerSession()
	itemID := uuid.New()
	c, rec := newClaimTestContext(t, http.MethodDelete, "/claims/"+itemID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())
	c.Set("identity", identity)

	uc.EXPECT().RemoveItem(mock.Anything, identity.UserID, itemID).Return(nil)

	err := h.RemoveItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart item removed")
}

func TestClaimHandler_RemoveItem_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	c, rec := newClaimTestContext(t, http.MethodDelete, "/claims/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set("identity", ownerSession())

	err := h.RemoveItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "RemoveItem")
}

func TestClaimHandler_Checkout(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	identity := ownerSession()
	c, rec := newClaimTestContext(t, http.MethodPost, "/claims/checkout", "")
	c.Set("identity", identity)

	uc.EXPECT().Checkout(mock.Anything, identity).Return(&usecase.CheckoutOutput{
		BatchID:     "Order-010920261200",
		SessionID:   "sess_123",
		RedirectURL: "https://pay.example.com/sess_123",
		AmountTotal: 19800,
		ItemCount:   2,
	}, nil)

	err := h.Checkout(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://pay.example.com/sess_123")
	assert.Contains(t, rec.Body.String(), "Checkout session created")
}

func TestClaimHandler_Checkout_EmptyCart(t *testing.T) {
	uc := mockUsecase.NewMockClaimUsecase(t)
	h := NewClaimHandler(uc, slog.Default())

	identity := ownerSession()
	c, _ := newClaimTestContext(t, http.MethodPost, "/claims/checkout", "")
	c.Set("identity", identity)

	uc.EXPECT().Checkout(mock.Anything, identity).Return(nil, domainerrors.ErrCartEmpty)

	err := h.Checkout(c)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}
