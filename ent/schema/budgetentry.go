package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BudgetEntry holds the schema definition for the BudgetEntry entity.
// Append-only spend ledger; rollups derive from it.
type BudgetEntry struct {
	ent.Schema
}

// Fields of the BudgetEntry.
func (BudgetEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.String("tool_id").
			Immutable(),
		field.Int("phase").
			Immutable(),
		field.Float("amount_usd").
			Immutable(),
		field.String("invocation_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Charge provenance; ledger writes are idempotent per invocation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BudgetEntry.
func (BudgetEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("budget_entries").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BudgetEntry.
func (BudgetEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "phase"),
		index.Fields("run_id", "tool_id"),
	}
}
