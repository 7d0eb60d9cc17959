package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWaker struct {
	woken []string
}

func (w *fakeWaker) NotifyDecision(gateID string) {
	w.woken = append(w.woken, gateID)
}

func TestHubDispatchesGateDecisions(t *testing.T) {
	hub := NewHub()
	waker := &fakeWaker{}
	hub.HandleGateDecisions(waker)

	payload, err := json.Marshal(GateDecisionNotice{
		GateID: "gate-1", RunID: "run-1", Decision: "approved",
	})
	require.NoError(t, err)

	hub.Broadcast(GateDecisionsChannel, payload)
	assert.Equal(t, []string{"gate-1"}, waker.woken)

	// Malformed and empty notices are dropped without waking anyone.
	hub.Broadcast(GateDecisionsChannel, []byte("{not json"))
	hub.Broadcast(GateDecisionsChannel, []byte(`{"gate_id":""}`))
	assert.Len(t, waker.woken, 1)

	// Channels without handlers are ignored.
	hub.Broadcast("run:whatever", payload)
	assert.Len(t, waker.woken, 1)
}

func TestHubMultipleHandlers(t *testing.T) {
	hub := NewHub()
	var got []string
	hub.Handle(GlobalRunsChannel, func(p []byte) { got = append(got, "a:"+string(p)) })
	hub.Handle(GlobalRunsChannel, func(p []byte) { got = append(got, "b:"+string(p)) })

	hub.Broadcast(GlobalRunsChannel, []byte("x"))
	assert.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestRunChannel(t *testing.T) {
	assert.Equal(t, "run:abc-123", RunChannel("abc-123"))
}

func TestInjectEventIDSmallPayload(t *testing.T) {
	out, err := injectEventIDAndTruncate([]byte(`{"type":"run_started","run_id":"r1"}`), 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "run_started", m["type"])
	assert.Equal(t, "r1", m["run_id"])
}

func TestTruncateIfNeededPassthrough(t *testing.T) {
	payload := `{"type":"gate_opened","run_id":"r1"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateOversizedPayload(t *testing.T) {
	big := map[string]any{
		"type":   "agent_finished",
		"run_id": "r1",
		"blob":   strings.Repeat("x", 9000),
	}
	payloadJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectEventIDAndTruncate(payloadJSON, 7)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 7900)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "agent_finished", m["type"])
	assert.Equal(t, "r1", m["run_id"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.NotContains(t, m, "blob")
}
