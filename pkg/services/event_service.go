package services

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/runevent"
)

// EventService reads and prunes the run event audit trail. Rows are
// written by the event publisher via raw SQL so persistence and NOTIFY
// share one transaction; this service covers the read side.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsByRun returns a run's audit trail in insertion order.
// A limit of 0 means no limit.
func (s *EventService) GetEventsByRun(ctx context.Context, runID string, limit int) ([]*ent.RunEvent, error) {
	q := s.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID)).
		Order(ent.Asc(runevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	evts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get run events: %w", err)
	}
	return evts, nil
}

// GetEventsSince returns events on a channel after a known id, oldest
// first, for consumers rejoining after a disconnect.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.RunEvent, error) {
	evts, err := s.client.RunEvent.Query().
		Where(
			runevent.ChannelEQ(channel),
			runevent.IDGT(sinceID),
		).
		Order(ent.Asc(runevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events since id %d: %w", sinceID, err)
	}
	return evts, nil
}

// DeleteEventsBefore purges events older than the cutoff. Used by the
// retention sweeper; returns the number of rows removed.
func (s *EventService) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.RunEvent.Delete().
		Where(runevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
