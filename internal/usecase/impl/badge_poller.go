package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"directory/config"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPollInterval = 30 * time.Second

// tickerFactory returns a tick channel and its stop function. Tests swap this
// out to drive ticks deterministically.
type tickerFactory func(interval time.Duration) (<-chan time.Time, func())

func realTicker(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)

	return ticker.C, ticker.Stop
}

// badgePoller implements BadgeUsecase: one goroutine per signed-in user
// refreshing the cached counts, stopped on sign-out or shutdown.
type badgePoller struct {
	claims    usecase.ClaimUsecase
	interval  time.Duration
	newTicker tickerFactory
	logger    *slog.Logger

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
	counts  map[uuid.UUID]usecase.BadgeCounts
}

// BadgePollerParams holds dependencies for BadgePoller, injected by Fx.
type BadgePollerParams struct {
	fx.In

	Claims usecase.ClaimUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewBadgePoller is the constructor for badgePoller.
func NewBadgePoller(params BadgePollerParams) usecase.BadgeUsecase {
	interval := params.Config.Badge.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &badgePoller{
		claims:    params.Claims,
		interval:  interval,
		newTicker: realTicker,
		logger:    params.Logger,
		cancels:   make(map[uuid.UUID]context.CancelFunc),
		counts:    make(map[uuid.UUID]usecase.BadgeCounts),
	}
}

// Start begins polling for the user. Starting an already polled user is a no-op.
func (p *badgePoller) Start(userID uuid.UUID) {
	p.mu.Lock()
	if _, running := p.cancels[userID]; running {
		p.mu.Unlock()

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancels[userID] = cancel
	p.mu.Unlock()

	// Seed the cache before the goroutine exists, so a Counts call right
	// after Start reads the cache instead of fetching a second time.
	p.refresh(ctx, userID)

	go p.run(ctx, userID)
}

// run refreshes the user's counts on every tick until the context is
// cancelled. The initial refresh already happened in Start.
func (p *badgePoller) run(ctx context.Context, userID uuid.UUID) {
	ticks, stop := p.newTicker(p.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			p.refresh(ctx, userID)
		}
	}
}

// refresh fetches the counts and updates the cache, keeping the previous
// value on failure.
func (p *badgePoller) refresh(ctx context.Context, userID uuid.UUID) {
	count, err := p.claims.CartCount(ctx, userID)
	if err != nil {
		p.logger.Warn("Badge refresh failed", slog.Any("userID", userID), slog.Any("error", err))

		return
	}

	p.mu.Lock()
	p.counts[userID] = usecase.BadgeCounts{CartItems: count}
	p.mu.Unlock()
}

// Counts returns the cached badge counts, fetching synchronously when the
// user is not yet polled.
func (p *badgePoller) Counts(ctx context.Context, userID uuid.UUID) (usecase.BadgeCounts, error) {
	p.mu.Lock()
	counts, cached := p.counts[userID]
	p.mu.Unlock()

	if cached {
		return counts, nil
	}

	count, err := p.claims.CartCount(ctx, userID)
	if err != nil {
		return usecase.BadgeCounts{}, err
	}

	counts = usecase.BadgeCounts{CartItems: count}
	p.mu.Lock()
	p.counts[userID] = counts
	p.mu.Unlock()

	return counts, nil
}

// Stop cancels the user's poller and drops the cached counts.
func (p *badgePoller) Stop(userID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cancel, running := p.cancels[userID]; running {
		cancel()
		delete(p.cancels, userID)
	}
	delete(p.counts, userID)
}

// StopAll cancels every poller on shutdown.
func (p *badgePoller) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for userID, cancel := range p.cancels {
		cancel()
		delete(p.cancels, userID)
	}
}
