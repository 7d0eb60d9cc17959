package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/outreachkit/prospector/pkg/metrics"
)

// Publisher writes run events to the audit trail and broadcasts them
// via NOTIFY. Persistent events go through a single transaction
// (pg_notify is transactional and held until COMMIT); transient
// notifications such as gate decision wakeups skip persistence.
type Publisher struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{
		db:     db,
		logger: slog.Default().With("component", "event_publisher"),
	}
}

// EmitRunEvent persists an event on the run's channel and broadcasts
// it. Run lifecycle events (run_*) are additionally broadcast to the
// global runs channel for list views. Failures are logged, never
// surfaced: the audit trail must not fail the run it describes.
func (p *Publisher) EmitRunEvent(ctx context.Context, runID, event string, payload map[string]any) {
	metrics.ObserveRunEvent(event)

	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["type"] = event
	body["run_id"] = runID

	payloadJSON, err := json.Marshal(body)
	if err != nil {
		p.logger.Error("Failed to marshal run event", "run_id", runID, "event", event, "error", err)
		return
	}

	if err := p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON); err != nil {
		p.logger.Warn("Failed to publish run event", "run_id", runID, "event", event, "error", err)
	}

	if strings.HasPrefix(event, "run_") {
		if err := p.notifyOnly(ctx, GlobalRunsChannel, payloadJSON); err != nil {
			p.logger.Warn("Failed to publish run event to global channel",
				"run_id", runID, "event", event, "error", err)
		}
	}
}

// PublishGateDecision broadcasts a gate decision so waiters on other
// pods wake up. Transient: the decision itself is already durable in
// the human_gates row, this is only the wakeup signal.
func (p *Publisher) PublishGateDecision(ctx context.Context, notice GateDecisionNotice) error {
	notice.Type = EventGateDecided
	payloadJSON, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal gate decision notice: %w", err)
	}
	return p.notifyOnly(ctx, GateDecisionsChannel, payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to run_events and
// broadcasts via NOTIFY in a single transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, runID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO run_events (run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		runID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// pg_notify within the same transaction is held until COMMIT, so
	// listeners never see an event whose row did not land.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting it.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectEventIDAndTruncate adds db_event_id to the NOTIFY copy of the
// payload (the stored row does not carry its own id inline) and
// applies truncation if the result exceeds PostgreSQL's limit.
func injectEventIDAndTruncate(payloadJSON []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal envelope
// with only the routing fields a consumer needs to fetch the full row.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		RunID     string `json:"run_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
