package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 20260801000000_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Result cache: at most one success row per logical tool request.
	// Failed attempts may pile up freely; only the success is unique.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS toolinvocation_success_cache
		ON tool_invocations (run_id, tool_id, op, params_hash)
		WHERE outcome = 'success'`)
	if err != nil {
		return fmt.Errorf("failed to create invocation success cache index: %w", err)
	}

	// At most one non-terminal task per (run, agent). Retries insert a new
	// attempt row only after the previous one reached a terminal state.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agenttask_run_agent_active
		ON agent_tasks (run_id, agent_name)
		WHERE state NOT IN ('completed', 'failed', 'cancelled')`)
	if err != nil {
		return fmt.Errorf("failed to create active task index: %w", err)
	}

	// Exactly one ledger entry per charged invocation.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS budgetentry_invocation_charge
		ON budget_entries (invocation_id)
		WHERE invocation_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ledger charge index: %w", err)
	}

	return nil
}
