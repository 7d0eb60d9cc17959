package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Opaque agent state snapshots; versions are strictly increasing per task.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("version").
			Comment("1-based, strictly increasing per task"),
		field.JSON("state", map[string]interface{}{}).
			Comment("Opaque agent payload; never inspected by the store"),
		field.Int("step_count").
			Default(0).
			Comment("Steps completed when the snapshot was taken"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("checkpoints").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("task", AgentTask.Type).
			Ref("checkpoints").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate (task, version) writes are idempotent no-ops
		index.Fields("task_id", "version").
			Unique(),
	}
}
