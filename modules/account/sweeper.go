package account

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shadowbay/marketkit/pkg/logger"
)

const defaultSweepInterval = 24 * time.Hour

// Sweeper periodically lifts expired bans. It replaces a cron job:
// run it once per process next to the manager.
type Sweeper struct {
	manager  *Manager
	interval time.Duration
	log      *slog.Logger
}

// SweeperOption configures a Sweeper during construction.
type SweeperOption func(*Sweeper)

// WithSweepInterval overrides the default daily cadence.
func WithSweepInterval(interval time.Duration) SweeperOption {
	return func(s *Sweeper) {
		s.interval = interval
	}
}

// WithSweeperLogger sets a structured logger; the default discards output.
func WithSweeperLogger(log *slog.Logger) SweeperOption {
	return func(s *Sweeper) {
		s.log = log
	}
}

// NewSweeper creates a ban sweeper over the manager.
func NewSweeper(manager *Manager, opts ...SweeperOption) *Sweeper {
	s := &Sweeper{
		manager:  manager,
		interval: defaultSweepInterval,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sweeps once immediately, then on every interval tick until the
// context is cancelled. Always returns ctx.Err().
func (s *Sweeper) Run(ctx context.Context) error {
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep unbans every account whose ban expiry has passed. Individual
// failures are logged and skipped so one bad row cannot stall the rest.
func (s *Sweeper) Sweep(ctx context.Context) {
	expired, err := s.manager.ExpiredBans(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to list expired bans",
			logger.Error(err),
			logger.Component("sweeper"),
		)
		return
	}

	for _, acc := range expired {
		if err := s.manager.Unban(ctx, acc.ID); err != nil {
			s.log.ErrorContext(ctx, "failed to lift expired ban",
				logger.AccountID(acc.ID),
				logger.Error(err),
				logger.Component("sweeper"),
			)
		}
	}

	if len(expired) > 0 {
		s.log.InfoContext(ctx, "expired bans lifted",
			slog.Int("count", len(expired)),
			logger.Component("sweeper"),
		)
	}
}
