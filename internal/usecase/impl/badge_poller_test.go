package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"directory/config"
	mockUsecase "directory/internal/mocks/usecase"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// badgePollerFixtures holds all test dependencies for badge poller tests.
// ticks lets a test drive poll cycles deterministically instead of waiting
// on a real ticker.
type badgePollerFixtures struct {
	poller usecase.BadgeUsecase
	claims *mockUsecase.MockClaimUsecase
	ticks  chan time.Time
}

func createTestBadgePoller(t *testing.T) badgePollerFixtures {
	claims := mockUsecase.NewMockClaimUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Badge.PollInterval = time.Minute

	poller := NewBadgePoller(BadgePollerParams{
		Claims: claims,
		Config: cfg,
		Logger: logger,
	})

	ticks := make(chan time.Time)
	poller.(*badgePoller).newTicker = func(interval time.Duration) (<-chan time.Time, func()) {
		return ticks, func() {}
	}

	t.Cleanup(poller.StopAll)

	return badgePollerFixtures{poller: poller, claims: claims, ticks: ticks}
}

func waitForCartItems(t *testing.T, fx badgePollerFixtures, userID uuid.UUID, want int64) {
	t.Helper()
	require.Eventually(t, func() bool {
		counts, err := fx.poller.Counts(context.Background(), userID)

		return err == nil && counts.CartItems == want
	}, time.Second, 5*time.Millisecond)
}

func TestBadgePoller_Counts_FetchesSynchronouslyWhenNotPolled(t *testing.T) {
	fx := createTestBadgePoller(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.claims.EXPECT().CartCount(ctx, userID).Return(int64(2), nil).Once()

	counts, err := fx.poller.Counts(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.CartItems)

	// The synchronous fetch is cached; a second call does not hit the usecase.
	counts, err = fx.poller.Counts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.CartItems)
}

func TestBadgePoller_Counts_PropagatesFetchError(t *testing.T) {
	fx := createTestBadgePoller(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.claims.EXPECT().CartCount(ctx, userID).Return(int64(0), errors.New("db down")).Once()

	_, err := fx.poller.Counts(ctx, userID)

	require.Error(t, err)
}

func TestBadgePoller_Counts_UsesCacheAfterStart(t *testing.T) {
	fx := createTestBadgePoller(t)

	userID := uuid.New()

	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(2), nil).Once()

	fx.poller.Start(userID)

	// Start seeds the cache synchronously, so an immediate Counts call must
	// not trigger a second fetch.
	counts, err := fx.poller.Counts(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.CartItems)
}

func TestBadgePoller_Start_RefreshesImmediatelyAndOnTicks(t *testing.T) {
	fx := createTestBadgePoller(t)

	userID := uuid.New()

	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(1), nil).Once()
	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(5), nil).Once()

	fx.poller.Start(userID)
	waitForCartItems(t, fx, userID, 1)

	fx.ticks <- time.Now()
	waitForCartItems(t, fx, userID, 5)
}

func TestBadgePoller_Refresh_KeepsPreviousCountOnFailure(t *testing.T) {
	fx := createTestBadgePoller(t)

	userID := uuid.New()

	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(3), nil).Once()
	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(0), errors.New("db down")).Once()

	fx.poller.Start(userID)
	waitForCartItems(t, fx, userID, 3)

	fx.ticks <- time.Now()

	// The failed refresh must not clobber the cached value.
	time.Sleep(20 * time.Millisecond)
	counts, err := fx.poller.Counts(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.CartItems)
}

func TestBadgePoller_Start_IsIdempotent(t *testing.T) {
	fx := createTestBadgePoller(t)

	userID := uuid.New()

	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(1), nil).Once()

	fx.poller.Start(userID)
	waitForCartItems(t, fx, userID, 1)

	// A second Start for the same user spawns no second poller, so no extra
	// CartCount call happens.
	fx.poller.Start(userID)
	time.Sleep(20 * time.Millisecond)
}

func TestBadgePoller_Stop_DropsCachedCounts(t *testing.T) {
	fx := createTestBadgePoller(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.claims.EXPECT().CartCount(mock.Anything, userID).Return(int64(4), nil).Once()

	fx.poller.Start(userID)
	waitForCartItems(t, fx, userID, 4)

	fx.poller.Stop(userID)

	// With the cache dropped, the next Counts call fetches fresh.
	fx.claims.EXPECT().CartCount(ctx, userID).Return(int64(0), nil).Once()

	counts, err := fx.poller.Counts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.CartItems)
}
