package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/budgetentry"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/models"
)

// BudgetService manages the append-only spend ledger
type BudgetService struct {
	client *ent.Client
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(client *ent.Client) *BudgetService {
	return &BudgetService{client: client}
}

// Charge appends a ledger entry and bumps the run's denormalized spend in
// one transaction. Idempotent per invocation_id: a replayed charge reports
// applied=false and changes nothing.
func (s *BudgetService) Charge(httpCtx context.Context, runID, toolID string, phase int, amountUSD float64, invocationID string) (bool, error) {
	// Validate input
	if runID == "" {
		return false, NewValidationError("run_id", "required")
	}
	if toolID == "" {
		return false, NewValidationError("tool_id", "required")
	}
	if amountUSD < 0 {
		return false, NewValidationError("amount_usd", "must not be negative")
	}
	if amountUSD == 0 {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.BudgetEntry.Create().
		SetRunID(runID).
		SetToolID(toolID).
		SetPhase(phase).
		SetAmountUsd(amountUSD)

	if invocationID != "" {
		builder.SetInvocationID(invocationID)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Already charged for this invocation.
			return false, nil
		}
		return false, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	if err := tx.WorkflowRun.UpdateOneID(runID).
		AddSpendUsd(amountUSD).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to update run spend: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit charge: %w", err)
	}

	return true, nil
}

// GetSnapshot builds the ledger-derived spend rollup for a run
func (s *BudgetService) GetSnapshot(ctx context.Context, runID string) (*models.BudgetSnapshot, error) {
	run, err := s.client.WorkflowRun.Query().
		Where(workflowrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var byPhase []struct {
		Phase int     `json:"phase"`
		Sum   float64 `json:"sum"`
	}
	err = s.client.BudgetEntry.Query().
		Where(budgetentry.RunIDEQ(runID)).
		GroupBy(budgetentry.FieldPhase).
		Aggregate(ent.Sum(budgetentry.FieldAmountUsd)).
		Scan(ctx, &byPhase)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spend by phase: %w", err)
	}

	var byTool []struct {
		ToolID string  `json:"tool_id"`
		Sum    float64 `json:"sum"`
	}
	err = s.client.BudgetEntry.Query().
		Where(budgetentry.RunIDEQ(runID)).
		GroupBy(budgetentry.FieldToolID).
		Aggregate(ent.Sum(budgetentry.FieldAmountUsd)).
		Scan(ctx, &byTool)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spend by tool: %w", err)
	}

	entryCount, err := s.client.BudgetEntry.Query().
		Where(budgetentry.RunIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	snapshot := &models.BudgetSnapshot{
		RunID:    runID,
		CapUSD:   run.BudgetCapUsd,
		SpendUSD: run.SpendUsd,
		ByPhase:  make(map[string]float64, len(byPhase)),
		ByTool:   make(map[string]float64, len(byTool)),

		EntryCount: entryCount,
	}
	for _, row := range byPhase {
		snapshot.ByPhase[strconv.Itoa(row.Phase)] = row.Sum
	}
	for _, row := range byTool {
		snapshot.ByTool[row.ToolID] = row.Sum
	}

	return snapshot, nil
}

// GetLedgerSum returns the total charged against a run from the ledger,
// the source of truth when rehydrating the governor after a restart.
func (s *BudgetService) GetLedgerSum(ctx context.Context, runID string) (float64, error) {
	var totals []struct {
		RunID string  `json:"run_id"`
		Sum   float64 `json:"sum"`
	}
	err := s.client.BudgetEntry.Query().
		Where(budgetentry.RunIDEQ(runID)).
		GroupBy(budgetentry.FieldRunID).
		Aggregate(ent.Sum(budgetentry.FieldAmountUsd)).
		Scan(ctx, &totals)
	if err != nil {
		return 0, fmt.Errorf("failed to sum ledger: %w", err)
	}

	if len(totals) == 0 {
		return 0, nil
	}
	return totals[0].Sum, nil
}

// GetEntriesByRun returns a run's ledger entries in append order
func (s *BudgetService) GetEntriesByRun(ctx context.Context, runID string) ([]*ent.BudgetEntry, error) {
	entries, err := s.client.BudgetEntry.Query().
		Where(budgetentry.RunIDEQ(runID)).
		Order(ent.Asc(budgetentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	return entries, nil
}
