package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// Phase outputs (reports, lead lists, campaign configs) referenced by
// tasks and gates.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("phase"),
		field.String("name").
			Comment("e.g., 'market_report', 'scored_lead_list'"),
		field.String("kind").
			Comment("report, lead_list, verification, personalization, campaign"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Structured artifact body"),
		field.String("produced_by").
			Optional().
			Nillable().
			Comment("Task id that wrote this artifact"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("artifacts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "phase"),
		index.Fields("run_id", "name"),
	}
}
