package impl

import (
	"context"
	"log/slog"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// claimService implements the ClaimUsecase interface.
type claimService struct {
	txManager    repository.TransactionManager
	claimRepo    repository.ClaimRepository
	businessRepo repository.BusinessRepository
	payment      service.PaymentService
	publisher    service.EventPublisher
	unitAmount   int64
	successURL   string
	cancelURL    string
	logger       *slog.Logger
}

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ClaimRepo    repository.ClaimRepository
	BusinessRepo repository.BusinessRepository
	Payment      service.PaymentService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewClaimService is the constructor for claimService.
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		txManager:    params.TxManager,
		claimRepo:    params.ClaimRepo,
		businessRepo: params.BusinessRepo,
		payment:      params.Payment,
		publisher:    params.Publisher,
		unitAmount:   params.Config.Claim.UnitAmount,
		successURL:   params.Config.Claim.SuccessURL,
		cancelURL:    params.Config.Claim.CancelURL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Gate decides, without mutating anything, where a click on the business
// sends the identity. Non-approved listings always go to the public detail
// page; approved ones require an authenticated non-"user" role.
func (srv *claimService) Gate(identity entity.SessionIdentity, business *entity.Business) usecase.GateDecision {
	if business == nil || !business.IsApproved() {
		return usecase.GateDetail
	}

	if !identity.Authenticated || !identity.Roles.CanClaim() {
		return usecase.GateAuthPrompt
	}

	return usecase.GateConfirm
}

// Confirm re-checks the gate server-side and creates exactly one pending cart
// item. The item and the batch record are written in one transaction, so a
// failure leaves no partial item behind.
func (srv *claimService) Confirm(ctx context.Context, identity entity.SessionIdentity, businessID uuid.UUID) (*entity.ClaimCartItem, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to load business for claim")
	}

	switch srv.Gate(identity, business) {
	case usecase.GateConfirm:
		// allowed
	case usecase.GateAuthPrompt:
		return nil, domainerrors.ErrClaimNotAllowed
	default:
		return nil, domainerrors.ErrBusinessNotClaimable
	}

	batchID := entity.FormatBatchID(time.Now())
	item := &entity.ClaimCartItem{
		UserID:     identity.UserID,
		BusinessID: businessID,
		BatchID:    batchID,
		Amount:     srv.unitAmount,
		Status:     entity.ClaimItemStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		claimRepo := repoFactory.NewClaimRepository()

		if err := claimRepo.SaveBatch(ctx, &entity.ClaimBatch{
			UserID:    identity.UserID,
			BatchID:   batchID,
			UpdatedAt: time.Now(),
		}); err != nil {
			return err
		}

		return claimRepo.CreateItem(ctx, item)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateClaim) {
			return nil, domainerrors.ErrDuplicateClaim
		}
		srv.log(ctx).Error("Failed to create claim cart item",
			slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create claim cart item")
	}

	srv.publishEvent(ctx, &service.ClaimEvent{
		Type:       service.ClaimEventCreated,
		UserID:     identity.UserID.String(),
		BusinessID: businessID.String(),
		BatchID:    batchID,
		Amount:     item.Amount,
	})

	return item, nil
}

// CurrentBatchID mints the wall-clock batch id and overwrites the stored
// record. Two calls inside the same calendar minute return the same id.
func (srv *claimService) CurrentBatchID(ctx context.Context, userID uuid.UUID, now time.Time) (string, error) {
	batchID := entity.FormatBatchID(now)

	if err := srv.claimRepo.SaveBatch(ctx, &entity.ClaimBatch{
		UserID:    userID,
		BatchID:   batchID,
		UpdatedAt: now,
	}); err != nil {
		return "", errors.Wrap(err, "failed to save claim batch")
	}

	return batchID, nil
}

// ListCart returns the user's pending cart items, newest first.
func (srv *claimService) ListCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	items, err := srv.claimRepo.FindItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claim cart")
	}

	out := &usecase.CartOutput{Items: items}
	for _, item := range items {
		out.AmountTotal += item.Amount
		out.BatchID = item.BatchID
	}

	return out, nil
}

// RemoveItem deletes one cart item after verifying ownership.
func (srv *claimService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	item, err := srv.claimRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimItemNotFound) {
			return domainerrors.ErrClaimItemNotFound
		}

		return errors.Wrap(err, "failed to find claim cart item")
	}

	if item.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.claimRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrClaimItemNotFound) {
			return domainerrors.ErrClaimItemNotFound
		}

		return errors.Wrap(err, "failed to delete claim cart item")
	}

	return nil
}

// Checkout totals the pending items, requests a hosted payment session,
// clears the cart and returns the redirect URL.
func (srv *claimService) Checkout(ctx context.Context, identity entity.SessionIdentity) (*usecase.CheckoutOutput, error) {
	if !identity.Authenticated || !identity.Roles.CanClaim() {
		return nil, domainerrors.ErrClaimNotAllowed
	}

	items, err := srv.claimRepo.FindItemsByUser(ctx, identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	var amountTotal int64
	batchID := items[0].BatchID
	for _, item := range items {
		amountTotal += item.Amount
	}

	session, err := srv.payment.CreateCheckoutSession(ctx, &service.CheckoutSessionInput{
		BatchID:     batchID,
		UserID:      identity.UserID.String(),
		AmountTotal: amountTotal,
		ItemCount:   len(items),
		SuccessURL:  srv.successURL,
		CancelURL:   srv.cancelURL,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session",
			slog.String("batchID", batchID), slog.Any("error", err))

		return nil, domainerrors.ErrCheckoutFailed.WrapMessage(err.Error())
	}

	// The cart is cleared only after the provider accepted the session, so a
	// provider failure leaves the cart intact.
	if err := srv.claimRepo.DeleteItemsByUser(ctx, identity.UserID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after checkout",
			slog.String("batchID", batchID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	srv.publishEvent(ctx, &service.ClaimEvent{
		Type:    service.ClaimEventCheckout,
		UserID:  identity.UserID.String(),
		BatchID: batchID,
		Amount:  amountTotal,
	})

	return &usecase.CheckoutOutput{
		BatchID:     batchID,
		SessionID:   session.SessionID,
		RedirectURL: session.URL,
		AmountTotal: amountTotal,
		ItemCount:   len(items),
	}, nil
}

// CartCount returns the number of pending items, feeding the badge.
func (srv *claimService) CartCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.claimRepo.CountPendingByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}

	return count, nil
}

// publishEvent sends a claim event, logging instead of failing the request
// when the broker is unavailable.
func (srv *claimService) publishEvent(ctx context.Context, event *service.ClaimEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishClaimEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish claim event",
			slog.String("type", event.Type), slog.Any("error", err))
	}
}
