package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LimiterState holds the schema definition for the LimiterState entity.
// Snapshot of a token-bucket limiter, persisted alongside breaker state
// for warm restarts.
type LimiterState struct {
	ent.Schema
}

// Fields of the LimiterState.
func (LimiterState) Fields() []ent.Field {
	return []ent.Field{
		field.String("tool_id").
			Unique().
			Immutable(),
		field.Float("tokens").
			Comment("Tokens available at snapshot time"),
		field.Time("last_refill_at").
			Comment("Refill anchor; tokens accrue from this instant"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
