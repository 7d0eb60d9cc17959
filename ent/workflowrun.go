// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// WorkflowRun is the model entity for the WorkflowRun schema.
type WorkflowRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Campaign name this run builds outreach for
	Campaign string `json:"campaign,omitempty"`
	// Status holds the value of the "status" field.
	Status workflowrun.Status `json:"status,omitempty"`
	// 1..5 while running, 0 before the first phase starts
	CurrentPhase int `json:"current_phase,omitempty"`
	// Run-level spend ceiling
	BudgetCapUsd float64 `json:"budget_cap_usd,omitempty"`
	// Committed charges so far (never exceeds budget_cap_usd)
	SpendUsd float64 `json:"spend_usd,omitempty"`
	// RunConfig snapshot taken at submission
	Config map[string]interface{} `json:"config,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// From oauth2-proxy
	Author *string `json:"author,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// When the run was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the engine started phase 1
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowRunQuery when eager-loading is set.
	Edges        WorkflowRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowRunEdges holds the relations/edges for other nodes in the graph.
type WorkflowRunEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*AgentTask `json:"tasks,omitempty"`
	// Invocations holds the value of the invocations edge.
	Invocations []*ToolInvocation `json:"invocations,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// Gates holds the value of the gates edge.
	Gates []*HumanGate `json:"gates,omitempty"`
	// BudgetEntries holds the value of the budget_entries edge.
	BudgetEntries []*BudgetEntry `json:"budget_entries,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) TasksOrErr() ([]*AgentTask, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// InvocationsOrErr returns the Invocations value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) InvocationsOrErr() ([]*ToolInvocation, error) {
	if e.loadedTypes[1] {
		return e.Invocations, nil
	}
	return nil, &NotLoadedError{edge: "invocations"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[2] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// GatesOrErr returns the Gates value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) GatesOrErr() ([]*HumanGate, error) {
	if e.loadedTypes[3] {
		return e.Gates, nil
	}
	return nil, &NotLoadedError{edge: "gates"}
}

// BudgetEntriesOrErr returns the BudgetEntries value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) BudgetEntriesOrErr() ([]*BudgetEntry, error) {
	if e.loadedTypes[4] {
		return e.BudgetEntries, nil
	}
	return nil, &NotLoadedError{edge: "budget_entries"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[5] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowRunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[6] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowrun.FieldConfig:
			values[i] = new([]byte)
		case workflowrun.FieldBudgetCapUsd, workflowrun.FieldSpendUsd:
			values[i] = new(sql.NullFloat64)
		case workflowrun.FieldCurrentPhase:
			values[i] = new(sql.NullInt64)
		case workflowrun.FieldID, workflowrun.FieldCampaign, workflowrun.FieldStatus, workflowrun.FieldErrorMessage, workflowrun.FieldAuthor, workflowrun.FieldPodID:
			values[i] = new(sql.NullString)
		case workflowrun.FieldLastHeartbeatAt, workflowrun.FieldCreatedAt, workflowrun.FieldStartedAt, workflowrun.FieldCompletedAt, workflowrun.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowRun fields.
func (_m *WorkflowRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowrun.FieldCampaign:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign", values[i])
			} else if value.Valid {
				_m.Campaign = value.String
			}
		case workflowrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflowrun.Status(value.String)
			}
		case workflowrun.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = int(value.Int64)
			}
		case workflowrun.FieldBudgetCapUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_cap_usd", values[i])
			} else if value.Valid {
				_m.BudgetCapUsd = value.Float64
			}
		case workflowrun.FieldSpendUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spend_usd", values[i])
			} else if value.Valid {
				_m.SpendUsd = value.Float64
			}
		case workflowrun.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case workflowrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workflowrun.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case workflowrun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case workflowrun.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case workflowrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case workflowrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case workflowrun.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowRun.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryTasks() *AgentTaskQuery {
	return NewWorkflowRunClient(_m.config).QueryTasks(_m)
}

// QueryInvocations queries the "invocations" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryInvocations() *ToolInvocationQuery {
	return NewWorkflowRunClient(_m.config).QueryInvocations(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryCheckpoints() *CheckpointQuery {
	return NewWorkflowRunClient(_m.config).QueryCheckpoints(_m)
}

// QueryGates queries the "gates" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryGates() *HumanGateQuery {
	return NewWorkflowRunClient(_m.config).QueryGates(_m)
}

// QueryBudgetEntries queries the "budget_entries" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryBudgetEntries() *BudgetEntryQuery {
	return NewWorkflowRunClient(_m.config).QueryBudgetEntries(_m)
}

// QueryArtifacts queries the "artifacts" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryArtifacts() *ArtifactQuery {
	return NewWorkflowRunClient(_m.config).QueryArtifacts(_m)
}

// QueryEvents queries the "events" edge of the WorkflowRun entity.
func (_m *WorkflowRun) QueryEvents() *RunEventQuery {
	return NewWorkflowRunClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this WorkflowRun.
// Note that you need to call WorkflowRun.Unwrap() before calling this method if this WorkflowRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowRun) Update() *WorkflowRunUpdateOne {
	return NewWorkflowRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowRun) Unwrap() *WorkflowRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowRun) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign=")
	builder.WriteString(_m.Campaign)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPhase))
	builder.WriteString(", ")
	builder.WriteString("budget_cap_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetCapUsd))
	builder.WriteString(", ")
	builder.WriteString("spend_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpendUsd))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
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
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowRuns is a parsable slice of WorkflowRun.
type WorkflowRuns []*WorkflowRun
