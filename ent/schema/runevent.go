package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the RunEvent entity.
// Persistent event log backing the NOTIFY fan-out; rows are inserted by
// the event publisher via raw SQL and read back for catchup.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.String("channel").
			Comment("NOTIFY channel the event was broadcast on"),
		field.Text("payload").
			Comment("Marshaled event JSON"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup queries: events on a channel after a known id
		index.Fields("channel", "id"),
		index.Fields("run_id"),
	}
}
