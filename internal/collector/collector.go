// Package collector triggers data collection on a fixed schedule.
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/abcstark/team-wellbeing/internal/facade"
)

const (
	DefaultInitialDelay = 30 * time.Second
	DefaultInterval     = 5 * time.Minute
)

// Collector is the minimal contract the scheduler needs.
type Collector interface {
	Collect(ctx context.Context, trigger string) error
}

// Scheduler periodically calls Collect.
type Scheduler struct {
	collector    Collector
	initialDelay time.Duration
	interval     time.Duration
	logger       *slog.Logger
}

// NewScheduler creates a scheduler.
func NewScheduler(c Collector, initialDelay, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		collector:    c,
		initialDelay: initialDelay,
		interval:     interval,
		logger:       logger,
	}
}

// Start waits for the initial delay, then collects once per interval until ctx
// is cancelled. It blocks; run it in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("collection scheduler started", "initial_delay", s.initialDelay, "interval", s.interval)

	delay := time.NewTimer(s.initialDelay)
	defer delay.Stop()
	select {
	case <-delay.C:
		s.runOnce(ctx)
	case <-ctx.Done():
		s.logger.Debug("collection scheduler stopped")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Debug("collection scheduler stopped")
			return
		}
	}
}

// runOnce performs a single collection. Failures are logged and the schedule continues.
func (s *Scheduler) runOnce(ctx context.Context) {
	if err := s.collector.Collect(ctx, facade.TriggerScheduled); err != nil {
		s.logger.Warn("scheduled collection failed", "error", err)
		return
	}
	s.logger.Debug("scheduled collection completed")
}
