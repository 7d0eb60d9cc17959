package gates

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically expires overdue pending gates and wakes their
// waiters. One sweeper runs per pod; the conditional expiry update makes
// concurrent sweeps safe.
type Sweeper struct {
	service  *Service
	interval time.Duration
	logger   *slog.Logger
	done     chan struct{}
}

// NewSweeper creates a gate expiry sweeper.
func NewSweeper(service *Service, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   slog.Default().With("component", "gate_sweeper"),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. Returns immediately.
func (sw *Sweeper) Start(ctx context.Context) {
	go func() {
		defer close(sw.done)

		ticker := time.NewTicker(sw.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sw.sweep(ctx)
			}
		}
	}()
	sw.logger.Info("Gate sweeper started", "interval", sw.interval)
}

// Wait blocks until the sweep loop has exited after context cancellation.
func (sw *Sweeper) Wait() {
	<-sw.done
}

func (sw *Sweeper) sweep(ctx context.Context) {
	expired, err := sw.service.store.ExpireOverdueGates(ctx)
	if err != nil {
		sw.logger.Error("Gate expiry sweep failed", "error", err)
	}

	for _, gate := range expired {
		sw.logger.Warn("Gate expired",
			"gate_id", gate.ID,
			"run_id", gate.RunID,
			"phase", gate.Phase,
			"deadline", gate.Deadline)
		sw.service.wake(gate.ID)
		if sw.service.notifier != nil {
			sw.service.notifier.NotifyGateDecided(ctx, gate)
		}
	}
}
