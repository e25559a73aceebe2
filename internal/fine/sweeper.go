package fine

import (
	"context"
	"log/slog"
	"time"
)

type refresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// Sweeper periodically refreshes every fine.
type Sweeper struct {
	fines    refresher
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(fines refresher, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{fines: fines, interval: interval, logger: logger}
}

// Run blocks until ctx is done. A non-positive interval disables the sweeper.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("fine sweeper disabled")
		return nil
	}

	s.logger.Info("fine sweeper started", "interval", s.interval.String())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("fine sweeper stopped")
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one refresh pass. Failures are logged; the next tick retries.
func (s *Sweeper) Sweep(ctx context.Context) {
	start := time.Now()
	n, err := s.fines.RefreshAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "fine sweep failed", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "fine sweep completed",
		"loans", n,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
