package lending

import (
	"context"
	"time"

	"library-lending/pkg/log"
)

// Sweeper periodically expires physical requests that sat Pending past
// the hold TTL, releasing their items.
type Sweeper struct {
	uc       UseCase
	interval time.Duration
	l        log.Logger
}

// NewSweeper creates a sweeper over the lending engine.
func NewSweeper(uc UseCase, interval time.Duration, l log.Logger) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{
		uc:       uc,
		interval: interval,
		l:        l,
	}
}

// Run sweeps on a ticker until ctx is cancelled. A failing sweep is
// logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) {
	s.l.Infof(ctx, "sweeper: running every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "sweeper: stopped")
			return
		case <-ticker.C:
			n, err := s.uc.SweepExpired(ctx, time.Now())
			if err != nil {
				s.l.Errorf(ctx, "sweeper: %v", err)
				continue
			}
			if n > 0 {
				s.l.Infof(ctx, "sweeper: expired %d stale requests", n)
			}
		}
	}
}
