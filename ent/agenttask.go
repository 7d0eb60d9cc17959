// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// AgentTask is the model entity for the AgentTask schema.
type AgentTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// e.g., 'list_builder', 'email_generation'
	AgentName string `json:"agent_name,omitempty"`
	// Pipeline phase ordinal: 1..5
	Phase int `json:"phase,omitempty"`
	// 1-based; incremented on retry-from-checkpoint
	Attempt int `json:"attempt,omitempty"`
	// State holds the value of the "state" field.
	State agenttask.State `json:"state,omitempty"`
	// Steps executed so far (budget against max_steps)
	StepCount int `json:"step_count,omitempty"`
	// Artifact id the agent consumes
	InputRef *string `json:"input_ref,omitempty"`
	// Artifact id the agent produced
	OutputRef *string `json:"output_ref,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the runtime transitioned the task to running
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentTaskQuery when eager-loading is set.
	Edges        AgentTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentTaskEdges holds the relations/edges for other nodes in the graph.
type AgentTaskEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// Invocations holds the value of the invocations edge.
	Invocations []*ToolInvocation `json:"invocations,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentTaskEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// InvocationsOrErr returns the Invocations value or an error if the edge
// was not loaded in eager-loading.
func (e AgentTaskEdges) InvocationsOrErr() ([]*ToolInvocation, error) {
	if e.loadedTypes[1] {
		return e.Invocations, nil
	}
	return nil, &NotLoadedError{edge: "invocations"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e AgentTaskEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[2] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttask.FieldPhase, agenttask.FieldAttempt, agenttask.FieldStepCount:
			values[i] = new(sql.NullInt64)
		case agenttask.FieldID, agenttask.FieldRunID, agenttask.FieldAgentName, agenttask.FieldState, agenttask.FieldInputRef, agenttask.FieldOutputRef, agenttask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case agenttask.FieldCreatedAt, agenttask.FieldStartedAt, agenttask.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentTask fields.
func (_m *AgentTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agenttask.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agenttask.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case agenttask.FieldPhase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = int(value.Int64)
			}
		case agenttask.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case agenttask.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = agenttask.State(value.String)
			}
		case agenttask.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case agenttask.FieldInputRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_ref", values[i])
			} else if value.Valid {
				_m.InputRef = new(string)
				*_m.InputRef = value.String
			}
		case agenttask.FieldOutputRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_ref", values[i])
			} else if value.Valid {
				_m.OutputRef = new(string)
				*_m.OutputRef = value.String
			}
		case agenttask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case agenttask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agenttask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case agenttask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentTask.
// This includes values selected through modifiers, order, etc.
func (_m *AgentTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentTask entity.
func (_m *AgentTask) QueryRun() *WorkflowRunQuery {
	return NewAgentTaskClient(_m.config).QueryRun(_m)
}

// QueryInvocations queries the "invocations" edge of the AgentTask entity.
func (_m *AgentTask) QueryInvocations() *ToolInvocationQuery {
	return NewAgentTaskClient(_m.config).QueryInvocations(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the AgentTask entity.
func (_m *AgentTask) QueryCheckpoints() *CheckpointQuery {
	return NewAgentTaskClient(_m.config).QueryCheckpoints(_m)
}

// Update returns a builder for updating this AgentTask.
// Note that you need to call AgentTask.Unwrap() before calling this method if this AgentTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentTask) Update() *AgentTaskUpdateOne {
	return NewAgentTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentTask) Unwrap() *AgentTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentTask) String() string {
	var builder strings.Builder
	builder.WriteString("AgentTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	if v := _m.InputRef; v != nil {
		builder.WriteString("input_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OutputRef; v != nil {
		builder.WriteString("output_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentTasks is a parsable slice of AgentTask.
type AgentTasks []*AgentTask
