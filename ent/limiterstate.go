// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/limiterstate"
)

// LimiterState is the model entity for the LimiterState schema.
type LimiterState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ToolID holds the value of the "tool_id" field.
	ToolID string `json:"tool_id,omitempty"`
	// Tokens available at snapshot time
	Tokens float64 `json:"tokens,omitempty"`
	// Refill anchor; tokens accrue from this instant
	LastRefillAt time.Time `json:"last_refill_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LimiterState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case limiterstate.FieldTokens:
			values[i] = new(sql.NullFloat64)
		case limiterstate.FieldID:
			values[i] = new(sql.NullInt64)
		case limiterstate.FieldToolID:
			values[i] = new(sql.NullString)
		case limiterstate.FieldLastRefillAt, limiterstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LimiterState fields.
func (_m *LimiterState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case limiterstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case limiterstate.FieldToolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_id", values[i])
			} else if value.Valid {
				_m.ToolID = value.String
			}
		case limiterstate.FieldTokens:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value.Valid {
				_m.Tokens = value.Float64
			}
		case limiterstate.FieldLastRefillAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_refill_at", values[i])
			} else if value.Valid {
				_m.LastRefillAt = value.Time
			}
		case limiterstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LimiterState.
// This includes values selected through modifiers, order, etc.
func (_m *LimiterState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LimiterState.
// Note that you need to call LimiterState.Unwrap() before calling this method if this LimiterState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LimiterState) Update() *LimiterStateUpdateOne {
	return NewLimiterStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LimiterState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LimiterState) Unwrap() *LimiterState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LimiterState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LimiterState) String() string {
	var builder strings.Builder
	builder.WriteString("LimiterState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tool_id=")
	builder.WriteString(_m.ToolID)
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("last_refill_at=")
	builder.WriteString(_m.LastRefillAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LimiterStates is a parsable slice of LimiterState.
type LimiterStates []*LimiterState
