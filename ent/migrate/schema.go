// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentTasksColumns holds the columns for the "agent_tasks" table.
	AgentTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "phase", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"new", "validating", "ready", "running", "suspended", "checkpointed", "retrying", "completed", "failed", "cancelled"}, Default: "new"},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "input_ref", Type: field.TypeString, Nullable: true},
		{Name: "output_ref", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentTasksTable holds the schema information for the "agent_tasks" table.
	AgentTasksTable = &schema.Table{
		Name:       "agent_tasks",
		Columns:    AgentTasksColumns,
		PrimaryKey: []*schema.Column{AgentTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_tasks_workflow_runs_tasks",
				Columns:    []*schema.Column{AgentTasksColumns[12]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttask_state",
				Unique:  false,
				Columns: []*schema.Column{AgentTasksColumns[4]},
			},
			{
				Name:    "agenttask_run_id_phase",
				Unique:  false,
				Columns: []*schema.Column{AgentTasksColumns[12], AgentTasksColumns[2]},
			},
			{
				Name:    "agenttask_run_id_agent_name_attempt",
				Unique:  true,
				Columns: []*schema.Column{AgentTasksColumns[12], AgentTasksColumns[1], AgentTasksColumns[3]},
			},
		},
	}
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "produced_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_workflow_runs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[7]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_run_id_phase",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[1]},
			},
			{
				Name:    "artifact_run_id_name",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[2]},
			},
		},
	}
	// BreakerStatesColumns holds the columns for the "breaker_states" table.
	BreakerStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"closed", "open", "half_open"}, Default: "closed"},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BreakerStatesTable holds the schema information for the "breaker_states" table.
	BreakerStatesTable = &schema.Table{
		Name:       "breaker_states",
		Columns:    BreakerStatesColumns,
		PrimaryKey: []*schema.Column{BreakerStatesColumns[0]},
	}
	// BudgetEntriesColumns holds the columns for the "budget_entries" table.
	BudgetEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeInt},
		{Name: "amount_usd", Type: field.TypeFloat64},
		{Name: "invocation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// BudgetEntriesTable holds the schema information for the "budget_entries" table.
	BudgetEntriesTable = &schema.Table{
		Name:       "budget_entries",
		Columns:    BudgetEntriesColumns,
		PrimaryKey: []*schema.Column{BudgetEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "budget_entries_workflow_runs_budget_entries",
				Columns:    []*schema.Column{BudgetEntriesColumns[6]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "budgetentry_run_id_phase",
				Unique:  false,
				Columns: []*schema.Column{BudgetEntriesColumns[6], BudgetEntriesColumns[2]},
			},
			{
				Name:    "budgetentry_run_id_tool_id",
				Unique:  false,
				Columns: []*schema.Column{BudgetEntriesColumns[6], BudgetEntriesColumns[1]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "state", Type: field.TypeJSON},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_agent_tasks_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[5]},
				RefColumns: []*schema.Column{AgentTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "checkpoints_workflow_runs_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[6]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_task_id_version",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[5], CheckpointsColumns[1]},
			},
		},
	}
	// HumanGatesColumns holds the columns for the "human_gates" table.
	HumanGatesColumns = []*schema.Column{
		{Name: "gate_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeInt},
		{Name: "artifact_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "revision_requested", "expired"}, Default: "pending"},
		{Name: "deadline", Type: field.TypeTime},
		{Name: "approver_id", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// HumanGatesTable holds the schema information for the "human_gates" table.
	HumanGatesTable = &schema.Table{
		Name:       "human_gates",
		Columns:    HumanGatesColumns,
		PrimaryKey: []*schema.Column{HumanGatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "human_gates_workflow_runs_gates",
				Columns:    []*schema.Column{HumanGatesColumns[9]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "humangate_status_deadline",
				Unique:  false,
				Columns: []*schema.Column{HumanGatesColumns[3], HumanGatesColumns[4]},
			},
			{
				Name:    "humangate_run_id_phase",
				Unique:  false,
				Columns: []*schema.Column{HumanGatesColumns[9], HumanGatesColumns[1]},
			},
		},
	}
	// LimiterStatesColumns holds the columns for the "limiter_states" table.
	LimiterStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_id", Type: field.TypeString, Unique: true},
		{Name: "tokens", Type: field.TypeFloat64},
		{Name: "last_refill_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LimiterStatesTable holds the schema information for the "limiter_states" table.
	LimiterStatesTable = &schema.Table{
		Name:       "limiter_states",
		Columns:    LimiterStatesColumns,
		PrimaryKey: []*schema.Column{LimiterStatesColumns[0]},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_workflow_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[4]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_channel_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1], RunEventsColumns[0]},
			},
			{
				Name:    "runevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[4]},
			},
		},
	}
	// ToolInvocationsColumns holds the columns for the "tool_invocations" table.
	ToolInvocationsColumns = []*schema.Column{
		{Name: "invocation_id", Type: field.TypeString, Unique: true},
		{Name: "tool_id", Type: field.TypeString},
		{Name: "op", Type: field.TypeString},
		{Name: "params_hash", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "cheap", "moderate", "expensive"}},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"success", "retryable_failure", "permanent_failure", "rate_limited", "circuit_open", "budget_denied"}},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
	}
	// ToolInvocationsTable holds the schema information for the "tool_invocations" table.
	ToolInvocationsTable = &schema.Table{
		Name:       "tool_invocations",
		Columns:    ToolInvocationsColumns,
		PrimaryKey: []*schema.Column{ToolInvocationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_invocations_agent_tasks_invocations",
				Columns:    []*schema.Column{ToolInvocationsColumns[12]},
				RefColumns: []*schema.Column{AgentTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tool_invocations_workflow_runs_invocations",
				Columns:    []*schema.Column{ToolInvocationsColumns[13]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolinvocation_task_id_requested_at",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[12], ToolInvocationsColumns[10]},
			},
			{
				Name:    "toolinvocation_tool_id_outcome",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[1], ToolInvocationsColumns[5]},
			},
			{
				Name:    "toolinvocation_run_id_tool_id_op_params_hash",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[13], ToolInvocationsColumns[1], ToolInvocationsColumns[2], ToolInvocationsColumns[3]},
			},
		},
	}
	// WorkflowRunsColumns holds the columns for the "workflow_runs" table.
	WorkflowRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "campaign", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "awaiting_approval", "compensating", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_phase", Type: field.TypeInt, Default: 0},
		{Name: "budget_cap_usd", Type: field.TypeFloat64},
		{Name: "spend_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowRunsTable holds the schema information for the "workflow_runs" table.
	WorkflowRunsTable = &schema.Table{
		Name:       "workflow_runs",
		Columns:    WorkflowRunsColumns,
		PrimaryKey: []*schema.Column{WorkflowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrun_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[2]},
			},
			{
				Name:    "workflowrun_campaign",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[1]},
			},
			{
				Name:    "workflowrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[2], WorkflowRunsColumns[11]},
			},
			{
				Name:    "workflowrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[2], WorkflowRunsColumns[10]},
			},
			{
				Name:    "workflowrun_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentTasksTable,
		ArtifactsTable,
		BreakerStatesTable,
		BudgetEntriesTable,
		CheckpointsTable,
		HumanGatesTable,
		LimiterStatesTable,
		RunEventsTable,
		ToolInvocationsTable,
		WorkflowRunsTable,
	}
)

func init() {
	AgentTasksTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	ArtifactsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	BudgetEntriesTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	CheckpointsTable.ForeignKeys[0].RefTable = AgentTasksTable
	CheckpointsTable.ForeignKeys[1].RefTable = WorkflowRunsTable
	HumanGatesTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	RunEventsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	ToolInvocationsTable.ForeignKeys[0].RefTable = AgentTasksTable
	ToolInvocationsTable.ForeignKeys[1].RefTable = WorkflowRunsTable
}
