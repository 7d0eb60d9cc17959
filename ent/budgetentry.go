// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/budgetentry"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// BudgetEntry is the model entity for the BudgetEntry schema.
type BudgetEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// ToolID holds the value of the "tool_id" field.
	ToolID string `json:"tool_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase int `json:"phase,omitempty"`
	// AmountUsd holds the value of the "amount_usd" field.
	AmountUsd float64 `json:"amount_usd,omitempty"`
	// Charge provenance; ledger writes are idempotent per invocation
	InvocationID *string `json:"invocation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BudgetEntryQuery when eager-loading is set.
	Edges        BudgetEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BudgetEntryEdges holds the relations/edges for other nodes in the graph.
type BudgetEntryEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BudgetEntryEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetentry.FieldAmountUsd:
			values[i] = new(sql.NullFloat64)
		case budgetentry.FieldID, budgetentry.FieldPhase:
			values[i] = new(sql.NullInt64)
		case budgetentry.FieldRunID, budgetentry.FieldToolID, budgetentry.FieldInvocationID:
			values[i] = new(sql.NullString)
		case budgetentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetEntry fields.
func (_m *BudgetEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case budgetentry.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case budgetentry.FieldToolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_id", values[i])
			} else if value.Valid {
				_m.ToolID = value.String
			}
		case budgetentry.FieldPhase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = int(value.Int64)
			}
		case budgetentry.FieldAmountUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_usd", values[i])
			} else if value.Valid {
				_m.AmountUsd = value.Float64
			}
		case budgetentry.FieldInvocationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invocation_id", values[i])
			} else if value.Valid {
				_m.InvocationID = new(string)
				*_m.InvocationID = value.String
			}
		case budgetentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetEntry.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the BudgetEntry entity.
func (_m *BudgetEntry) QueryRun() *WorkflowRunQuery {
	return NewBudgetEntryClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this BudgetEntry.
// Note that you need to call BudgetEntry.Unwrap() before calling this method if this BudgetEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetEntry) Update() *BudgetEntryUpdateOne {
	return NewBudgetEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetEntry) Unwrap() *BudgetEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetEntry) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("tool_id=")
	builder.WriteString(_m.ToolID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("amount_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountUsd))
	builder.WriteString(", ")
	if v := _m.InvocationID; v != nil {
		builder.WriteString("invocation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetEntries is a parsable slice of BudgetEntry.
type BudgetEntries []*BudgetEntry
