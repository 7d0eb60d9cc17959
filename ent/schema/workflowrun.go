package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for the WorkflowRun entity.
// One row per campaign run moving through the five pipeline phases.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("campaign").
			Comment("Campaign name this run builds outreach for"),
		field.Enum("status").
			Values("pending", "running", "awaiting_approval", "compensating", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("current_phase").
			Default(0).
			Comment("1..5 while running, 0 before the first phase starts"),
		field.Float("budget_cap_usd").
			Comment("Run-level spend ceiling"),
		field.Float("spend_usd").
			Default(0).
			Comment("Committed charges so far (never exceeds budget_cap_usd)"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("RunConfig snapshot taken at submission"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("author").
			Optional().
			Nillable().
			Comment("From oauth2-proxy"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the run was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the engine started phase 1"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the WorkflowRun.
func (WorkflowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", AgentTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("invocations", ToolInvocation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("gates", HumanGate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("budget_entries", BudgetEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("campaign"),

		// Composite indexes
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
