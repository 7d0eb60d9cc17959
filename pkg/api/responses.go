package api

import (
	"encoding/json"
	"time"
)

// RunSubmitResponse is returned by POST /api/v1/runs.
type RunSubmitResponse struct {
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CancelResponse is returned by POST /api/v1/runs/:id/cancel.
type CancelResponse struct {
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// EventRecord is one audit trail entry. Payload is the event JSON as
// persisted.
type EventRecord struct {
	ID        int             `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// RunEventsResponse is returned by GET /api/v1/runs/:id/events.
type RunEventsResponse struct {
	RunID  string        `json:"run_id"`
	Events []EventRecord `json:"events"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
