// Package events provides the run event audit trail and its PostgreSQL
// NOTIFY/LISTEN distribution. Events are persisted to the run_events
// table and broadcast in the same transaction, so a notification is
// never observed for a row that failed to commit. Each pod runs one
// NotifyListener on a dedicated connection; inbound notifications are
// dispatched through a Hub to registered channel handlers.
package events

// Run lifecycle event types, written by the workflow engine.
const (
	EventRunStarted   = "run_started"
	EventRunCompleted = "run_completed"
	EventRunFailed    = "run_failed"
	EventRunCancelled = "run_cancelled"

	// EventRunCancelRequested is written by the API when cancellation is
	// requested for a claimed run; the owning pod stops the engine and
	// follows up with run_cancelled.
	EventRunCancelRequested = "run_cancel_requested"

	EventPhaseStarted   = "phase_started"
	EventPhaseCompleted = "phase_completed"

	EventGateOpened  = "gate_opened"
	EventGateDecided = "gate_decided"

	EventAgentFinished = "agent_finished"

	EventCompensationStarted = "compensation_started"
	EventCompensationApplied = "compensation_applied"
	EventCompensationFailed  = "compensation_failed"
)

// GlobalRunsChannel carries run lifecycle events for every run. The
// dashboard list subscribes here instead of per-run channels.
const GlobalRunsChannel = "runs"

// GateDecisionsChannel carries gate decision notifications for
// cross-pod waiter wakeups. The payload is a GateDecisionNotice.
const GateDecisionsChannel = "gate_decisions"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// GateDecisionNotice is the payload broadcast on GateDecisionsChannel.
type GateDecisionNotice struct {
	Type     string `json:"type"`
	GateID   string `json:"gate_id"`
	RunID    string `json:"run_id"`
	Decision string `json:"decision"`
}
