package events

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Broadcaster receives inbound NOTIFY payloads from the listener.
type Broadcaster interface {
	Broadcast(channel string, payload []byte)
}

// Hub fans inbound notifications out to registered channel handlers.
// Each pod has one Hub; handlers run on the listener's receive
// goroutine and must not block.
type Hub struct {
	mu       sync.RWMutex
	handlers map[string][]func(payload []byte)
	logger   *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		handlers: make(map[string][]func(payload []byte)),
		logger:   slog.Default().With("component", "event_hub"),
	}
}

// Handle registers a handler for a channel. Registration happens
// during startup wiring, before the listener starts delivering.
func (h *Hub) Handle(channel string, fn func(payload []byte)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[channel] = append(h.handlers[channel], fn)
}

// Broadcast dispatches a payload to every handler for the channel.
// Unhandled channels are dropped silently.
func (h *Hub) Broadcast(channel string, payload []byte) {
	h.mu.RLock()
	fns := h.handlers[channel]
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(payload)
	}
}

// GateWaker wakes local gate waiters. Implemented by gates.Service.
type GateWaker interface {
	NotifyDecision(gateID string)
}

// HandleGateDecisions registers a gate_decisions handler that wakes
// local waiters for decisions submitted on other pods.
func (h *Hub) HandleGateDecisions(waker GateWaker) {
	h.Handle(GateDecisionsChannel, func(payload []byte) {
		var notice GateDecisionNotice
		if err := json.Unmarshal(payload, &notice); err != nil {
			h.logger.Warn("Invalid gate decision notice", "error", err)
			return
		}
		if notice.GateID == "" {
			return
		}
		waker.NotifyDecision(notice.GateID)
	})
}
