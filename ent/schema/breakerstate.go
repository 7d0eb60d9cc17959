package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// BreakerState holds the schema definition for the BreakerState entity.
// Snapshot of a circuit breaker, persisted on shutdown and periodically,
// so a restarted pod resumes with warm breaker state.
type BreakerState struct {
	ent.Schema
}

// Fields of the BreakerState.
func (BreakerState) Fields() []ent.Field {
	return []ent.Field{
		field.String("tool_id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values("closed", "open", "half_open").
			Default("closed"),
		field.Int("failure_count").
			Default(0).
			Comment("Consecutive failures while closed"),
		field.Int("success_count").
			Default(0).
			Comment("Consecutive probe successes while half-open"),
		field.Time("opened_at").
			Optional().
			Nillable().
			Comment("When the breaker last tripped"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
