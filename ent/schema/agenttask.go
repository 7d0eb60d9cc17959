package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentTask holds the schema definition for the AgentTask entity.
// One row per agent attempt inside a phase.
type AgentTask struct {
	ent.Schema
}

// Fields of the AgentTask.
func (AgentTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),

		// Task identity within the run
		field.String("agent_name").
			Comment("e.g., 'list_builder', 'email_generation'"),
		field.Int("phase").
			Comment("Pipeline phase ordinal: 1..5"),
		field.Int("attempt").
			Default(1).
			Comment("1-based; incremented on retry-from-checkpoint"),

		// Lifecycle
		field.Enum("state").
			Values("new", "validating", "ready", "running", "suspended", "checkpointed", "retrying", "completed", "failed", "cancelled").
			Default("new"),
		field.Int("step_count").
			Default(0).
			Comment("Steps executed so far (budget against max_steps)"),
		field.String("input_ref").
			Optional().
			Nillable().
			Comment("Artifact id the agent consumes"),
		field.String("output_ref").
			Optional().
			Nillable().
			Comment("Artifact id the agent produced"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the runtime transitioned the task to running"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentTask.
func (AgentTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("tasks").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("invocations", ToolInvocation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentTask.
func (AgentTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("run_id", "phase"),

		// One task per attempt; retries insert a fresh row
		index.Fields("run_id", "agent_name", "attempt").
			Unique(),
	}
}
