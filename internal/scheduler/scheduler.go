package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reservationSweeper interface {
	ReleaseExpired(ctx context.Context) (int, error)
}

// Scheduler периодически запускает sweep просроченных броней. Сам sweep —
// один атомарный UPDATE, поэтому наложившиеся тики безопасны.
type Scheduler struct {
	sweeper  reservationSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper reservationSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.sweeper.ReleaseExpired(ctx)
	if err != nil {
		s.logger.Error("failed to release expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	if released > 0 {
		s.logger.Info(fmt.Sprintf("Released %d expired reservations", released))
	} else {
		s.logger.Debug("No expired reservations")
	}
}
