package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type outboxRetrier interface {
	RetryFailedStores(ctx context.Context) (stored, pending int)
}

// Scheduler periodically replays provider reservations whose local
// persist failed.
type Scheduler struct {
	bookingService outboxRetrier
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService outboxRetrier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	stored, pending := s.bookingService.RetryFailedStores(ctx)
	if stored == 0 && pending == 0 {
		return
	}

	s.logger.Info("outbox reconciled",
		logger.Int("stored", stored),
		logger.Int("pending", pending),
	)
}
