package gates

import (
	"context"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
)

// Await blocks until the gate reaches a terminal status or ctx is done.
// Wakeups come from local decisions, the cross-pod NOTIFY listener, and
// the expiry sweeper; a periodic poll covers missed notifications.
func (s *Service) Await(ctx context.Context, gateID string) (*ent.HumanGate, error) {
	ch := s.addWaiter(gateID)
	defer s.removeWaiter(gateID, ch)

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		gate, err := s.store.PollGate(ctx, gateID)
		if err != nil {
			return nil, err
		}
		if gate.Status != humangate.StatusPending {
			return gate, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ch:
		case <-ticker.C:
		}
	}
}

func (s *Service) addWaiter(gateID string) chan struct{} {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiters[gateID] = append(s.waiters[gateID], ch)
	return ch
}

func (s *Service) removeWaiter(gateID string, ch chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.waiters[gateID][:0]
	for _, w := range s.waiters[gateID] {
		if w != ch {
			remaining = append(remaining, w)
		}
	}
	if len(remaining) == 0 {
		delete(s.waiters, gateID)
	} else {
		s.waiters[gateID] = remaining
	}
}

// wake signals every local waiter of a gate. Waiters re-poll, so a
// spurious wake is harmless.
func (s *Service) wake(gateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.waiters[gateID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
