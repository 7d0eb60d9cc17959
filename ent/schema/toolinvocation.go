package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolInvocation holds the schema definition for the ToolInvocation entity.
// Audit record and result cache for every routed tool call.
type ToolInvocation struct {
	ent.Schema
}

// Fields of the ToolInvocation.
func (ToolInvocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("invocation_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("task_id").
			Immutable(),

		// Routing key
		field.String("tool_id").
			Comment("Provider actually used (post-routing), e.g. 'serper'"),
		field.String("op").
			Comment("Operation name, e.g. 'search'"),
		field.String("params_hash").
			Comment("sha256 hex of canonical-JSON params"),
		field.Enum("tier").
			Values("free", "cheap", "moderate", "expensive"),

		// Outcome
		field.Enum("outcome").
			Values("success", "retryable_failure", "permanent_failure", "rate_limited", "circuit_open", "budget_denied"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Provider payload on success"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Float("cost_usd").
			Default(0).
			Comment("Committed charge for this call"),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.Time("requested_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ToolInvocation.
func (ToolInvocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("invocations").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("task", AgentTask.Type).
			Ref("invocations").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolInvocation.
// Note: the partial unique index enforcing at most one success row per
// (run_id, tool_id, op, params_hash) cannot be expressed here; it is
// created in pkg/database/migrations.go.
func (ToolInvocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "requested_at"),
		index.Fields("tool_id", "outcome"),
		index.Fields("run_id", "tool_id", "op", "params_hash"),
	}
}
