package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HumanGate holds the schema definition for the HumanGate entity.
// One row per phase-boundary approval request.
type HumanGate struct {
	ent.Schema
}

// Fields of the HumanGate.
func (HumanGate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gate_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("phase").
			Comment("Phase whose output awaits review"),
		field.String("artifact_ref").
			Comment("Artifact id under review"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "revision_requested", "expired").
			Default("pending"),
		field.Time("deadline").
			Comment("Expiry; past-deadline gates resolve as rejections"),
		field.String("approver_id").
			Optional().
			Nillable().
			Comment("'system' when auto-approved"),
		field.Text("notes").
			Optional().
			Nillable().
			Comment("Reviewer notes; feeds revision reruns"),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the HumanGate.
func (HumanGate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("gates").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HumanGate.
func (HumanGate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "deadline"),
		index.Fields("run_id", "phase"),
	}
}
