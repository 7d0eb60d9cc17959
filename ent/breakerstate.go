// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/breakerstate"
)

// BreakerState is the model entity for the BreakerState schema.
type BreakerState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ToolID holds the value of the "tool_id" field.
	ToolID string `json:"tool_id,omitempty"`
	// State holds the value of the "state" field.
	State breakerstate.State `json:"state,omitempty"`
	// Consecutive failures while closed
	FailureCount int `json:"failure_count,omitempty"`
	// Consecutive probe successes while half-open
	SuccessCount int `json:"success_count,omitempty"`
	// When the breaker last tripped
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BreakerState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case breakerstate.FieldID, breakerstate.FieldFailureCount, breakerstate.FieldSuccessCount:
			values[i] = new(sql.NullInt64)
		case breakerstate.FieldToolID, breakerstate.FieldState:
			values[i] = new(sql.NullString)
		case breakerstate.FieldOpenedAt, breakerstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BreakerState fields.
func (_m *BreakerState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case breakerstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case breakerstate.FieldToolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_id", values[i])
			} else if value.Valid {
				_m.ToolID = value.String
			}
		case breakerstate.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = breakerstate.State(value.String)
			}
		case breakerstate.FieldFailureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_count", values[i])
			} else if value.Valid {
				_m.FailureCount = int(value.Int64)
			}
		case breakerstate.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case breakerstate.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case breakerstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BreakerState.
// This includes values selected through modifiers, order, etc.
func (_m *BreakerState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BreakerState.
// Note that you need to call BreakerState.Unwrap() before calling this method if this BreakerState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BreakerState) Update() *BreakerStateUpdateOne {
	return NewBreakerStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BreakerState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BreakerState) Unwrap() *BreakerState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BreakerState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BreakerState) String() string {
	var builder strings.Builder
	builder.WriteString("BreakerState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tool_id=")
	builder.WriteString(_m.ToolID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("failure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureCount))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BreakerStates is a parsable slice of BreakerState.
type BreakerStates []*BreakerState
