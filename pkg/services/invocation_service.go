package services

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/pkg/models"
)

// InvocationService manages the tool invocation audit log and result cache
type InvocationService struct {
	client *ent.Client
}

// NewInvocationService creates a new InvocationService
func NewInvocationService(client *ent.Client) *InvocationService {
	return &InvocationService{client: client}
}

// RecordInvocation persists a completed tool call. Idempotent per
// invocation_id: a replayed write after a crash returns the original row.
func (s *InvocationService) RecordInvocation(httpCtx context.Context, req models.RecordInvocationRequest) (*ent.ToolInvocation, error) {
	// Validate input
	if req.InvocationID == "" {
		return nil, NewValidationError("invocation_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.ToolID == "" {
		return nil, NewValidationError("tool_id", "required")
	}
	if req.Op == "" {
		return nil, NewValidationError("op", "required")
	}
	if req.ParamsHash == "" {
		return nil, NewValidationError("params_hash", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ToolInvocation.Create().
		SetID(req.InvocationID).
		SetRunID(req.RunID).
		SetTaskID(req.TaskID).
		SetToolID(req.ToolID).
		SetOp(req.Op).
		SetParamsHash(req.ParamsHash).
		SetTier(toolinvocation.Tier(req.Tier)).
		SetOutcome(toolinvocation.Outcome(req.Outcome)).
		SetCostUsd(req.CostUSD).
		SetCompletedAt(time.Now())

	if req.Result != nil {
		builder.SetResult(req.Result)
	}
	if req.ErrorMessage != nil {
		builder.SetErrorMessage(*req.ErrorMessage)
	}
	if req.LatencyMs != nil {
		builder.SetLatencyMs(*req.LatencyMs)
	}

	inv, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, getErr := s.client.ToolInvocation.Get(ctx, req.InvocationID)
			if getErr == nil {
				return existing, nil
			}
			// The unique success-cache index tripped: another pod already
			// recorded a success for this logical request. Return it.
			if req.Outcome == string(toolinvocation.OutcomeSuccess) {
				cached, cacheErr := s.GetCachedInvocation(ctx, req.RunID, req.ToolID, req.Op, req.ParamsHash)
				if cacheErr == nil {
					return cached, nil
				}
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record invocation: %w", err)
	}

	return inv, nil
}

// GetCachedInvocation returns the successful invocation for a logical
// request key, or ErrNotFound when no success has been recorded.
func (s *InvocationService) GetCachedInvocation(ctx context.Context, runID, toolID, op, paramsHash string) (*ent.ToolInvocation, error) {
	inv, err := s.client.ToolInvocation.Query().
		Where(
			toolinvocation.RunIDEQ(runID),
			toolinvocation.ToolIDEQ(toolID),
			toolinvocation.OpEQ(op),
			toolinvocation.ParamsHashEQ(paramsHash),
			toolinvocation.OutcomeEQ(toolinvocation.OutcomeSuccess),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cached invocation: %w", err)
	}

	return inv, nil
}

// GetInvocationByID retrieves an invocation by ID
func (s *InvocationService) GetInvocationByID(ctx context.Context, invocationID string) (*ent.ToolInvocation, error) {
	inv, err := s.client.ToolInvocation.Get(ctx, invocationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invocation: %w", err)
	}

	return inv, nil
}

// GetInvocationsByTask retrieves a task's invocations in request order
func (s *InvocationService) GetInvocationsByTask(ctx context.Context, taskID string) ([]*ent.ToolInvocation, error) {
	invocations, err := s.client.ToolInvocation.Query().
		Where(toolinvocation.TaskIDEQ(taskID)).
		Order(ent.Asc(toolinvocation.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get invocations: %w", err)
	}

	return invocations, nil
}
