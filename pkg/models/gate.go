package models

import (
	"time"

	"github.com/outreachkit/prospector/ent"
)

// CreateGateRequest contains fields for opening a phase-boundary gate
type CreateGateRequest struct {
	GateID      string    `json:"gate_id"`
	RunID       string    `json:"run_id"`
	Phase       int       `json:"phase"`
	ArtifactRef string    `json:"artifact_ref"`
	Deadline    time.Time `json:"deadline"`
}

// GateDecisionRequest contains the reviewer's verdict for a pending gate
type GateDecisionRequest struct {
	Decision   string `json:"decision"` // approved, rejected, revision_requested
	ApproverID string `json:"approver_id"`
	Notes      string `json:"notes,omitempty"`
}

// GateResponse wraps a HumanGate
type GateResponse struct {
	*ent.HumanGate
}

// GateListResponse contains pending gates awaiting review
type GateListResponse struct {
	Gates      []*ent.HumanGate `json:"gates"`
	TotalCount int              `json:"total_count"`
}
