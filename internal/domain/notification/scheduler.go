package notification

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

type Invalidator interface {
	InvalidateAll()
}

// Scheduler expires every cached notification snapshot on a fixed
// interval so long-lived sessions pick up newly crossed deadlines even
// without mutations. The serve lifecycle owns Start and Stop.
type Scheduler struct {
	interval time.Duration
	target   Invalidator
	log      *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(target Invalidator, log *slog.Logger) *Scheduler {
	return &Scheduler{
		interval: time.Hour,
		target:   target,
		log:      log.With("component", "notification_scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.log.Info("notification scheduler started", "interval", s.interval)
		for {
			select {
			case <-ctx.Done():
				s.log.Info("notification scheduler stopped")
				return
			case <-ticker.C:
				s.target.InvalidateAll()
			}
		}
	}()
}

// Stop cancels the ticker loop and waits for it to exit. Safe to call
// only after Start.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.done
}
