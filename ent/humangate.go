// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// HumanGate is the model entity for the HumanGate schema.
type HumanGate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Phase whose output awaits review
	Phase int `json:"phase,omitempty"`
	// Artifact id under review
	ArtifactRef string `json:"artifact_ref,omitempty"`
	// Status holds the value of the "status" field.
	Status humangate.Status `json:"status,omitempty"`
	// Expiry; past-deadline gates resolve as rejections
	Deadline time.Time `json:"deadline,omitempty"`
	// 'system' when auto-approved
	ApproverID *string `json:"approver_id,omitempty"`
	// Reviewer notes; feeds revision reruns
	Notes *string `json:"notes,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HumanGateQuery when eager-loading is set.
	Edges        HumanGateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HumanGateEdges holds the relations/edges for other nodes in the graph.
type HumanGateEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HumanGateEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HumanGate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case humangate.FieldPhase:
			values[i] = new(sql.NullInt64)
		case humangate.FieldID, humangate.FieldRunID, humangate.FieldArtifactRef, humangate.FieldStatus, humangate.FieldApproverID, humangate.FieldNotes:
			values[i] = new(sql.NullString)
		case humangate.FieldDeadline, humangate.FieldDecidedAt, humangate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HumanGate fields.
func (_m *HumanGate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case humangate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case humangate.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case humangate.FieldPhase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = int(value.Int64)
			}
		case humangate.FieldArtifactRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_ref", values[i])
			} else if value.Valid {
				_m.ArtifactRef = value.String
			}
		case humangate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = humangate.Status(value.String)
			}
		case humangate.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = value.Time
			}
		case humangate.FieldApproverID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver_id", values[i])
			} else if value.Valid {
				_m.ApproverID = new(string)
				*_m.ApproverID = value.String
			}
		case humangate.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case humangate.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case humangate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HumanGate.
// This includes values selected through modifiers, order, etc.
func (_m *HumanGate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the HumanGate entity.
func (_m *HumanGate) QueryRun() *WorkflowRunQuery {
	return NewHumanGateClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this HumanGate.
// Note that you need to call HumanGate.Unwrap() before calling this method if this HumanGate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HumanGate) Update() *HumanGateUpdateOne {
	return NewHumanGateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HumanGate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HumanGate) Unwrap() *HumanGate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HumanGate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HumanGate) String() string {
	var builder strings.Builder
	builder.WriteString("HumanGate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("artifact_ref=")
	builder.WriteString(_m.ArtifactRef)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("deadline=")
	builder.WriteString(_m.Deadline.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ApproverID; v != nil {
		builder.WriteString("approver_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HumanGates is a parsable slice of HumanGate.
type HumanGates []*HumanGate
