package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	mockRepo "directory/internal/mocks/repository"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUnitAmount = int64(9900)

// claimServiceFixtures holds all test dependencies for claim service tests.
type claimServiceFixtures struct {
	service      usecase.ClaimUsecase
	txManager    *mockRepo.MockTransactionManager
	claimRepo    *mockRepo.MockClaimRepository
	businessRepo *mockRepo.MockBusinessRepository
	payment      *mockSvc.MockPaymentService
	publisher    *mockSvc.MockEventPublisher
}

func createTestClaimService(t *testing.T) claimServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	payment := mockSvc.NewMockPaymentService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Claim.UnitAmount = testUnitAmount
	cfg.Claim.SuccessURL = "https://example.com/claims/success"
	cfg.Claim.CancelURL = "https://example.com/claims/cancel"

	service := NewClaimService(ClaimServiceParams{
		TxManager:    txManager,
		ClaimRepo:    claimRepo,
		BusinessRepo: businessRepo,
		Payment:      payment,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger,
	})

	return claimServiceFixtures{
		service:      service,
		txManager:    txManager,
		claimRepo:    claimRepo,
		businessRepo: businessRepo,
		payment:      payment,
		publisher:    publisher,
	}
}

func approvedBusiness() *entity.Business {
	return &entity.Business{
		ID:             uuid.New(),
		Name:           "Franklin Barbecue",
		Slug:           "franklin-barbecue",
		Active:         true,
		BusinessStatus: "approved",
	}
}

func ownerIdentity() entity.SessionIdentity {
	return entity.SessionIdentity{
		UserID:        uuid.New(),
		Roles:         entity.Roles{entity.RoleOwner},
		Authenticated: true,
	}
}

func TestClaimService_Gate(t *testing.T) {
	fx := createTestClaimService(t)

	owner := ownerIdentity()
	visitor := entity.SessionIdentity{}
	plainUser := entity.SessionIdentity{
		UserID:        uuid.New(),
		Roles:         entity.Roles{entity.RoleUser},
		Authenticated: true,
	}
	admin := entity.SessionIdentity{
		UserID:        uuid.New(),
		Roles:         entity.Roles{entity.RoleUser, entity.RoleAdmin},
		Authenticated: true,
	}
	pending := approvedBusiness()
	pending.BusinessStatus = "pending"

	tests := []struct {
		name     string
		identity entity.SessionIdentity
		business *entity.Business
		want     usecase.GateDecision
	}{
		{"nil business", owner, nil, usecase.GateDetail},
		{"non-approved business", owner, pending, usecase.GateDetail},
		{"anonymous visitor", visitor, approvedBusiness(), usecase.GateAuthPrompt},
		{"plain user role", plainUser, approvedBusiness(), usecase.GateAuthPrompt},
		{"owner", owner, approvedBusiness(), usecase.GateConfirm},
		{"admin", admin, approvedBusiness(), usecase.GateConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fx.service.Gate(tt.identity, tt.business))
		})
	}
}

func TestClaimService_Gate_StatusCaseInsensitive(t *testing.T) {
	fx := createTestClaimService(t)

	business := approvedBusiness()
	business.BusinessStatus = "  Approved "

	assert.Equal(t, usecase.GateConfirm, fx.service.Gate(ownerIdentity(), business))
}

func TestClaimService_Confirm_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	identity := ownerIdentity()
	business := approvedBusiness()

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClaimRepo := mockRepo.NewMockClaimRepository(t)

			mockFactory.EXPECT().NewClaimRepository().Return(mockClaimRepo)

			mockClaimRepo.EXPECT().
				SaveBatch(ctx, mock.AnythingOfType("*entity.ClaimBatch")).
				Return(nil)
			mockClaimRepo.EXPECT().
				CreateItem(ctx, mock.AnythingOfType("*entity.ClaimCartItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishClaimEvent(ctx, mock.AnythingOfType("*service.ClaimEvent")).
		Return(nil)

	before := time.Now()
	item, err := fx.service.Confirm(ctx, identity, business.ID)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, identity.UserID, item.UserID)
	assert.Equal(t, business.ID, item.BusinessID)
	assert.Equal(t, testUnitAmount, item.Amount)
	assert.Equal(t, entity.ClaimItemStatusPending, item.Status)
	// The call may straddle a minute boundary, so either stamp is valid.
	assert.Contains(t,
		[]string{entity.FormatBatchID(before), entity.FormatBatchID(time.Now())},
		item.BatchID)
}

func TestClaimService_Confirm_AnonymousVisitor(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	business := approvedBusiness()

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	item, err := fx.service.Confirm(ctx, entity.SessionIdentity{}, business.ID)

	require.ErrorIs(t, err, domainerrors.ErrClaimNotAllowed)
	assert.Nil(t, item)
}

func TestClaimService_Confirm_NonApprovedBusiness(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	business := approvedBusiness()
	business.BusinessStatus = "claimed"

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	item, err := fx.service.Confirm(ctx, ownerIdentity(), business.ID)

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotClaimable)
	assert.Nil(t, item)
}

func TestClaimService_Confirm_BusinessNotFound(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

	item, err := fx.service.Confirm(ctx, ownerIdentity(), businessID)

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	assert.Nil(t, item)
}

func TestClaimService_Confirm_DuplicateClaim(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	business := approvedBusiness()

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateClaim)

	item, err := fx.service.Confirm(ctx, ownerIdentity(), business.ID)

	require.ErrorIs(t, err, domainerrors.ErrDuplicateClaim)
	assert.Nil(t, item)
}

func TestClaimService_Confirm_TransactionFailureLeavesNoItem(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	business := approvedBusiness()

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	item, err := fx.service.Confirm(ctx, ownerIdentity(), business.ID)

	require.Error(t, err)
	assert.Nil(t, item)
	// No event is published for a claim that was rolled back.
	fx.publisher.AssertNotCalled(t, "PublishClaimEvent", mock.Anything, mock.Anything)
}

func TestClaimService_CurrentBatchID_StableWithinMinute(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := time.Date(2026, 3, 14, 15, 9, 2, 0, time.UTC)
	second := first.Add(40 * time.Second)

	fx.claimRepo.EXPECT().
		SaveBatch(ctx, mock.AnythingOfType("*entity.ClaimBatch")).
		Return(nil).
		Twice()

	id1, err := fx.service.CurrentBatchID(ctx, userID, first)
	require.NoError(t, err)

	id2, err := fx.service.CurrentBatchID(ctx, userID, second)
	require.NoError(t, err)

	assert.Equal(t, "Order-140320261509", id1)
	assert.Equal(t, id1, id2)
}

func TestClaimService_CurrentBatchID_ChangesAcrossMinutes(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := time.Date(2026, 3, 14, 15, 9, 59, 0, time.UTC)

	fx.claimRepo.EXPECT().
		SaveBatch(ctx, mock.AnythingOfType("*entity.ClaimBatch")).
		Return(nil).
		Twice()

	id1, err := fx.service.CurrentBatchID(ctx, userID, first)
	require.NoError(t, err)

	id2, err := fx.service.CurrentBatchID(ctx, userID, first.Add(time.Second))
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestClaimService_ListCart(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.ClaimCartItem{
		{ID: uuid.New(), UserID: userID, BatchID: "Order-140320261510", Amount: testUnitAmount},
		{ID: uuid.New(), UserID: userID, BatchID: "Order-140320261509", Amount: testUnitAmount},
	}

	fx.claimRepo.EXPECT().FindItemsByUser(ctx, userID).Return(items, nil)

	out, err := fx.service.ListCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2*testUnitAmount, out.AmountTotal)
}

func TestClaimService_RemoveItem_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.claimRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.ClaimCartItem{ID: itemID, UserID: userID}, nil)
	fx.claimRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, itemID)

	require.NoError(t, err)
}

func TestClaimService_RemoveItem_WrongOwner(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.claimRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.ClaimCartItem{ID: itemID, UserID: uuid.New()}, nil)

	err := fx.service.RemoveItem(ctx, uuid.New(), itemID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.claimRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}

func TestClaimService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.claimRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(nil, repository.ErrClaimItemNotFound)

	err := fx.service.RemoveItem(ctx, uuid.New(), itemID)

	require.ErrorIs(t, err, domainerrors.ErrClaimItemNotFound)
}

func TestClaimService_Checkout_Success(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	identity := ownerIdentity()
	batchID := "Order-140320261509"
	items := []*entity.ClaimCartItem{
		{ID: uuid.New(), UserID: identity.UserID, BatchID: batchID, Amount: testUnitAmount},
		{ID: uuid.New(), UserID: identity.UserID, BatchID: batchID, Amount: testUnitAmount},
		{ID: uuid.New(), UserID: identity.UserID, BatchID: batchID, Amount: testUnitAmount},
	}

	fx.claimRepo.EXPECT().FindItemsByUser(ctx, identity.UserID).Return(items, nil)

	fx.payment.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CheckoutSessionInput")).
		Run(func(ctx context.Context, input *service.CheckoutSessionInput) {
			assert.Equal(t, batchID, input.BatchID)
			assert.Equal(t, 3*testUnitAmount, input.AmountTotal)
			assert.Equal(t, 3, input.ItemCount)
			assert.Equal(t, "https://example.com/claims/success", input.SuccessURL)
			assert.Equal(t, "https://example.com/claims/cancel", input.CancelURL)
		}).
		Return(&service.CheckoutSession{
			SessionID: "cs_test_123",
			URL:       "https://pay.example.com/cs_test_123",
		}, nil)

	fx.claimRepo.EXPECT().DeleteItemsByUser(ctx, identity.UserID).Return(nil)

	fx.publisher.EXPECT().
		PublishClaimEvent(ctx, mock.AnythingOfType("*service.ClaimEvent")).
		Return(nil)

	out, err := fx.service.Checkout(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, batchID, out.BatchID)
	assert.Equal(t, "cs_test_123", out.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_test_123", out.RedirectURL)
	assert.Equal(t, 3*testUnitAmount, out.AmountTotal)
	assert.Equal(t, 3, out.ItemCount)
}

func TestClaimService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	identity := ownerIdentity()

	fx.claimRepo.EXPECT().FindItemsByUser(ctx, identity.UserID).Return(nil, nil)

	out, err := fx.service.Checkout(ctx, identity)

	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Nil(t, out)
}

func TestClaimService_Checkout_Unauthenticated(t *testing.T) {
	fx := createTestClaimService(t)

	out, err := fx.service.Checkout(context.Background(), entity.SessionIdentity{})

	require.ErrorIs(t, err, domainerrors.ErrClaimNotAllowed)
	assert.Nil(t, out)
	fx.claimRepo.AssertNotCalled(t, "FindItemsByUser", mock.Anything, mock.Anything)
}

func TestClaimService_Checkout_ProviderFailureKeepsCart(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	identity := ownerIdentity()
	items := []*entity.ClaimCartItem{
		{ID: uuid.New(), UserID: identity.UserID, BatchID: "Order-140320261509", Amount: testUnitAmount},
	}

	fx.claimRepo.EXPECT().FindItemsByUser(ctx, identity.UserID).Return(items, nil)

	fx.payment.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CheckoutSessionInput")).
		Return(nil, errors.New("provider unavailable"))

	out, err := fx.service.Checkout(ctx, identity)

	require.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)
	assert.Nil(t, out)
	// The cart is only cleared after the provider accepted the session.
	fx.claimRepo.AssertNotCalled(t, "DeleteItemsByUser", mock.Anything, mock.Anything)
}

func TestClaimService_CartCount(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.claimRepo.EXPECT().CountPendingByUser(ctx, userID).Return(int64(4), nil)

	count, err := fx.service.CartCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
