package services

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/breakerstate"
	"github.com/outreachkit/prospector/ent/limiterstate"
	"github.com/outreachkit/prospector/pkg/resilience"
)

// SnapshotService persists breaker and limiter state across restarts.
// Saved on shutdown and periodically; loaded once at startup so a new
// pod does not hammer a provider whose breaker was open when the old
// pod died.
type SnapshotService struct {
	client *ent.Client
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(client *ent.Client) *SnapshotService {
	return &SnapshotService{client: client}
}

// SaveBreakerSnapshots upserts one row per tool breaker.
func (s *SnapshotService) SaveBreakerSnapshots(ctx context.Context, snaps []resilience.BreakerSnapshot) error {
	for _, snap := range snaps {
		existing, err := s.client.BreakerState.Query().
			Where(breakerstate.ToolIDEQ(snap.ToolID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query breaker state %s: %w", snap.ToolID, err)
		}

		if ent.IsNotFound(err) {
			create := s.client.BreakerState.Create().
				SetToolID(snap.ToolID).
				SetState(breakerstate.State(snap.State)).
				SetFailureCount(snap.FailureCount).
				SetSuccessCount(snap.SuccessCount)
			if snap.OpenedAt != nil {
				create.SetOpenedAt(*snap.OpenedAt)
			}
			if _, err := create.Save(ctx); err != nil {
				return fmt.Errorf("failed to create breaker state %s: %w", snap.ToolID, err)
			}
			continue
		}

		update := existing.Update().
			SetState(breakerstate.State(snap.State)).
			SetFailureCount(snap.FailureCount).
			SetSuccessCount(snap.SuccessCount)
		if snap.OpenedAt != nil {
			update.SetOpenedAt(*snap.OpenedAt)
		} else {
			update.ClearOpenedAt()
		}
		if _, err := update.Save(ctx); err != nil {
			return fmt.Errorf("failed to update breaker state %s: %w", snap.ToolID, err)
		}
	}
	return nil
}

// LoadBreakerSnapshots returns all persisted breaker states. Open
// breakers age out naturally: Allow flips them to half-open once their
// timeout has elapsed, snapshot age included.
func (s *SnapshotService) LoadBreakerSnapshots(ctx context.Context) ([]resilience.BreakerSnapshot, error) {
	rows, err := s.client.BreakerState.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load breaker states: %w", err)
	}

	snaps := make([]resilience.BreakerSnapshot, 0, len(rows))
	for _, row := range rows {
		snaps = append(snaps, resilience.BreakerSnapshot{
			ToolID:       row.ToolID,
			State:        resilience.BreakerState(row.State),
			FailureCount: row.FailureCount,
			SuccessCount: row.SuccessCount,
			OpenedAt:     row.OpenedAt,
		})
	}
	return snaps, nil
}

// SaveLimiterSnapshots upserts one row per tool limiter.
func (s *SnapshotService) SaveLimiterSnapshots(ctx context.Context, snaps []resilience.LimiterSnapshot) error {
	now := time.Now()
	for _, snap := range snaps {
		existing, err := s.client.LimiterState.Query().
			Where(limiterstate.ToolIDEQ(snap.ToolID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query limiter state %s: %w", snap.ToolID, err)
		}

		if ent.IsNotFound(err) {
			if _, err := s.client.LimiterState.Create().
				SetToolID(snap.ToolID).
				SetTokens(snap.Tokens).
				SetLastRefillAt(now).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create limiter state %s: %w", snap.ToolID, err)
			}
			continue
		}

		if _, err := existing.Update().
			SetTokens(snap.Tokens).
			SetLastRefillAt(now).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to update limiter state %s: %w", snap.ToolID, err)
		}
	}
	return nil
}

// LoadLimiterSnapshots returns limiter states no older than maxAge.
// A stale snapshot would unfairly drain a bucket that has long since
// refilled, so old rows are skipped rather than restored.
func (s *SnapshotService) LoadLimiterSnapshots(ctx context.Context, maxAge time.Duration) ([]resilience.LimiterSnapshot, error) {
	rows, err := s.client.LimiterState.Query().
		Where(limiterstate.UpdatedAtGT(time.Now().Add(-maxAge))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load limiter states: %w", err)
	}

	snaps := make([]resilience.LimiterSnapshot, 0, len(rows))
	for _, row := range rows {
		snaps = append(snaps, resilience.LimiterSnapshot{
			ToolID: row.ToolID,
			Tokens: row.Tokens,
		})
	}
	return snaps, nil
}
