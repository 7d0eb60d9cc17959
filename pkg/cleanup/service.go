// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Config tunes the retention sweeper.
type Config struct {
	RunRetentionDays int           `yaml:"run_retention_days"`
	EventTTL         time.Duration `yaml:"event_ttl"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"`
}

// DefaultConfig returns production retention tuning.
func DefaultConfig() Config {
	return Config{
		RunRetentionDays: 90,
		EventTTL:         30 * 24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
}

// RunRetirer soft-deletes terminal runs past the retention window.
// Implemented by services.RunService.
type RunRetirer interface {
	SoftDeleteOldRuns(ctx context.Context, retentionDays int) (int, error)
}

// EventPruner removes audit events past their TTL. Implemented by
// services.EventService.
type EventPruner interface {
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically enforces retention policies:
//   - Soft-deletes old terminal runs
//   - Removes run event rows past their TTL
//
// Live runs are never touched: only terminal statuses age out, so a
// run suspended on a gate keeps its tasks and events intact.
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config Config
	runs   RunRetirer
	events EventPruner
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg Config, runs RunRetirer, events EventPruner) *Service {
	def := DefaultConfig()
	if cfg.RunRetentionDays <= 0 {
		cfg.RunRetentionDays = def.RunRetentionDays
	}
	if cfg.EventTTL <= 0 {
		cfg.EventTTL = def.EventTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}
	return &Service{
		config: cfg,
		runs:   runs,
		events: events,
		logger: slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.retireOldRuns(ctx)
	s.pruneOldEvents(ctx)
}

func (s *Service) retireOldRuns(_ context.Context) {
	count, err := s.runs.SoftDeleteOldRuns(context.Background(), s.config.RunRetentionDays)
	if err != nil {
		s.logger.Error("Retention: soft-delete runs failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: soft-deleted old runs", "count", count)
	}
}

func (s *Service) pruneOldEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.events.DeleteEventsBefore(context.Background(), cutoff)
	if err != nil {
		s.logger.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: pruned old run events", "count", count)
	}
}
