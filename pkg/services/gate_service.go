package services

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/pkg/models"
)

// SystemApproverID marks gate decisions made by the orchestrator itself
// (auto-approve mode, expiry resolution).
const SystemApproverID = "system"

// GateService manages phase-boundary approval gates
type GateService struct {
	client *ent.Client
}

// NewGateService creates a new GateService
func NewGateService(client *ent.Client) *GateService {
	return &GateService{client: client}
}

// CreateGate opens a pending gate. Idempotent per gate_id so the engine can
// safely replay the write after a crash.
func (s *GateService) CreateGate(httpCtx context.Context, req models.CreateGateRequest) (*ent.HumanGate, error) {
	// Validate input
	if req.GateID == "" {
		return nil, NewValidationError("gate_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.Phase < 1 || req.Phase > 5 {
		return nil, NewValidationError("phase", "must be between 1 and 5")
	}
	if req.ArtifactRef == "" {
		return nil, NewValidationError("artifact_ref", "required")
	}
	if req.Deadline.IsZero() {
		return nil, NewValidationError("deadline", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gate, err := s.client.HumanGate.Create().
		SetID(req.GateID).
		SetRunID(req.RunID).
		SetPhase(req.Phase).
		SetArtifactRef(req.ArtifactRef).
		SetStatus(humangate.StatusPending).
		SetDeadline(req.Deadline).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, getErr := s.client.HumanGate.Get(ctx, req.GateID)
			if getErr == nil {
				return existing, nil
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create gate: %w", err)
	}

	return gate, nil
}

// GetGateByID retrieves a gate by ID
func (s *GateService) GetGateByID(ctx context.Context, gateID string) (*ent.HumanGate, error) {
	gate, err := s.client.HumanGate.Get(ctx, gateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gate: %w", err)
	}

	return gate, nil
}

// PollGate returns the gate's current status, lazily expiring overdue
// pending gates so callers always observe the effective state.
func (s *GateService) PollGate(ctx context.Context, gateID string) (*ent.HumanGate, error) {
	gate, err := s.GetGateByID(ctx, gateID)
	if err != nil {
		return nil, err
	}

	if gate.Status == humangate.StatusPending && time.Now().After(gate.Deadline) {
		if err := s.expireGate(ctx, gateID); err != nil {
			return nil, err
		}
		return s.GetGateByID(ctx, gateID)
	}

	return gate, nil
}

// SubmitDecision records the reviewer's verdict. Exactly one decision wins;
// re-submitting the recorded decision is an idempotent no-op, while a
// conflicting decision gets ErrGateAlreadyDecided. Overdue gates expire
// instead of accepting the decision.
func (s *GateService) SubmitDecision(httpCtx context.Context, gateID string, req models.GateDecisionRequest) (*ent.HumanGate, error) {
	// Validate input
	var status humangate.Status
	switch req.Decision {
	case string(humangate.StatusApproved):
		status = humangate.StatusApproved
	case string(humangate.StatusRejected):
		status = humangate.StatusRejected
	case string(humangate.StatusRevisionRequested):
		status = humangate.StatusRevisionRequested
	default:
		return nil, NewValidationError("decision", "must be 'approved', 'rejected', or 'revision_requested'")
	}
	if req.ApproverID == "" {
		return nil, NewValidationError("approver_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	update := s.client.HumanGate.Update().
		Where(
			humangate.IDEQ(gateID),
			humangate.StatusEQ(humangate.StatusPending),
			humangate.DeadlineGT(now),
		).
		SetStatus(status).
		SetApproverID(req.ApproverID).
		SetDecidedAt(now)

	if req.Notes != "" {
		update = update.SetNotes(req.Notes)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to submit gate decision: %w", err)
	}

	if n == 0 {
		gate, getErr := s.GetGateByID(ctx, gateID)
		if getErr != nil {
			return nil, getErr
		}
		// Retried delivery of the same decision is a no-op.
		if gate.Status == status {
			return gate, nil
		}
		// The conditional update missed because the gate was overdue;
		// resolve it as expired before reporting the conflict.
		if gate.Status == humangate.StatusPending {
			if err := s.expireGate(ctx, gateID); err != nil {
				return nil, err
			}
		}
		return nil, ErrGateAlreadyDecided
	}

	return s.GetGateByID(ctx, gateID)
}

// ListPendingGates returns pending gates ordered by deadline
func (s *GateService) ListPendingGates(ctx context.Context, limit int) ([]*ent.HumanGate, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	gates, err := s.client.HumanGate.Query().
		Where(humangate.StatusEQ(humangate.StatusPending)).
		Order(ent.Asc(humangate.FieldDeadline)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending gates: %w", err)
	}

	return gates, nil
}

// GetGatesByRun returns all gates of a run in phase order
func (s *GateService) GetGatesByRun(ctx context.Context, runID string) ([]*ent.HumanGate, error) {
	gates, err := s.client.HumanGate.Query().
		Where(humangate.RunIDEQ(runID)).
		Order(ent.Asc(humangate.FieldPhase), ent.Asc(humangate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gates: %w", err)
	}

	return gates, nil
}

// ExpireOverdueGates flips every overdue pending gate to expired and
// returns the affected gates so the caller can notify their waiters.
func (s *GateService) ExpireOverdueGates(ctx context.Context) ([]*ent.HumanGate, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	overdue, err := s.client.HumanGate.Query().
		Where(
			humangate.StatusEQ(humangate.StatusPending),
			humangate.DeadlineLTE(now),
		).
		All(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue gates: %w", err)
	}

	expired := make([]*ent.HumanGate, 0, len(overdue))
	for _, gate := range overdue {
		if err := s.expireGate(writeCtx, gate.ID); err != nil {
			return expired, err
		}
		refreshed, err := s.GetGateByID(writeCtx, gate.ID)
		if err != nil {
			return expired, err
		}
		// Skip gates decided between the query and the flip.
		if refreshed.Status == humangate.StatusExpired {
			expired = append(expired, refreshed)
		}
	}

	return expired, nil
}

// expireGate conditionally transitions a pending gate to expired. Losing
// the race to a concurrent decision is not an error.
func (s *GateService) expireGate(ctx context.Context, gateID string) error {
	_, err := s.client.HumanGate.Update().
		Where(
			humangate.IDEQ(gateID),
			humangate.StatusEQ(humangate.StatusPending),
		).
		SetStatus(humangate.StatusExpired).
		SetApproverID(SystemApproverID).
		SetDecidedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire gate: %w", err)
	}

	return nil
}
