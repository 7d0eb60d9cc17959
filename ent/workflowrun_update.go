// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/artifact"
	"github.com/outreachkit/prospector/ent/budgetentry"
	"github.com/outreachkit/prospector/ent/checkpoint"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/predicate"
	"github.com/outreachkit/prospector/ent/runevent"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// WorkflowRunUpdate is the builder for updating WorkflowRun entities.
type WorkflowRunUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdate) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaign sets the "campaign" field.
func (_u *WorkflowRunUpdate) SetCampaign(v string) *WorkflowRunUpdate {
	_u.mutation.SetCampaign(v)
	return _u
}

// SetNillableCampaign sets the "campaign" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCampaign(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCampaign(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdate) SetStatus(v workflowrun.Status) *WorkflowRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *WorkflowRunUpdate) SetCurrentPhase(v int) *WorkflowRunUpdate {
	_u.mutation.ResetCurrentPhase()
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCurrentPhase(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// AddCurrentPhase adds value to the "current_phase" field.
func (_u *WorkflowRunUpdate) AddCurrentPhase(v int) *WorkflowRunUpdate {
	_u.mutation.AddCurrentPhase(v)
	return _u
}

// SetBudgetCapUsd sets the "budget_cap_usd" field.
func (_u *WorkflowRunUpdate) SetBudgetCapUsd(v float64) *WorkflowRunUpdate {
	_u.mutation.ResetBudgetCapUsd()
	_u.mutation.SetBudgetCapUsd(v)
	return _u
}

// SetNillableBudgetCapUsd sets the "budget_cap_usd" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableBudgetCapUsd(v *float64) *WorkflowRunUpdate {
	if v != nil {
		_u.SetBudgetCapUsd(*v)
	}
	return _u
}

// AddBudgetCapUsd adds value to the "budget_cap_usd" field.
func (_u *WorkflowRunUpdate) AddBudgetCapUsd(v float64) *WorkflowRunUpdate {
	_u.mutation.AddBudgetCapUsd(v)
	return _u
}

// SetSpendUsd sets the "spend_usd" field.
func (_u *WorkflowRunUpdate) SetSpendUsd(v float64) *WorkflowRunUpdate {
	_u.mutation.ResetSpendUsd()
	_u.mutation.SetSpendUsd(v)
	return _u
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableSpendUsd(v *float64) *WorkflowRunUpdate {
	if v != nil {
		_u.SetSpendUsd(*v)
	}
	return _u
}

// AddSpendUsd adds value to the "spend_usd" field.
func (_u *WorkflowRunUpdate) AddSpendUsd(v float64) *WorkflowRunUpdate {
	_u.mutation.AddSpendUsd(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowRunUpdate) SetConfig(v map[string]interface{}) *WorkflowRunUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowRunUpdate) ClearConfig() *WorkflowRunUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdate) SetErrorMessage(v string) *WorkflowRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableErrorMessage(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdate) ClearErrorMessage() *WorkflowRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *WorkflowRunUpdate) SetAuthor(v string) *WorkflowRunUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableAuthor(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *WorkflowRunUpdate) ClearAuthor() *WorkflowRunUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdate) SetPodID(v string) *WorkflowRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillablePodID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdate) ClearPodID() *WorkflowRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) ClearLastHeartbeatAt() *WorkflowRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowRunUpdate) SetCreatedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdate) SetStartedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdate) ClearStartedAt() *WorkflowRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdate) SetCompletedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdate) ClearCompletedAt() *WorkflowRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowRunUpdate) SetDeletedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableDeletedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowRunUpdate) ClearDeletedAt() *WorkflowRunUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the AgentTask entity by IDs.
func (_u *WorkflowRunUpdate) AddTaskIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the AgentTask entity.
func (_u *WorkflowRunUpdate) AddTasks(v ...*AgentTask) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by IDs.
func (_u *WorkflowRunUpdate) AddInvocationIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddInvocationIDs(ids...)
	return _u
}

// AddInvocations adds the "invocations" edges to the ToolInvocation entity.
func (_u *WorkflowRunUpdate) AddInvocations(v ...*ToolInvocation) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvocationIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *WorkflowRunUpdate) AddCheckpointIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowRunUpdate) AddCheckpoints(v ...*Checkpoint) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddGateIDs adds the "gates" edge to the HumanGate entity by IDs.
func (_u *WorkflowRunUpdate) AddGateIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddGateIDs(ids...)
	return _u
}

// AddGates adds the "gates" edges to the HumanGate entity.
func (_u *WorkflowRunUpdate) AddGates(v ...*HumanGate) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateIDs(ids...)
}

// AddBudgetEntryIDs adds the "budget_entries" edge to the BudgetEntry entity by IDs.
func (_u *WorkflowRunUpdate) AddBudgetEntryIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.AddBudgetEntryIDs(ids...)
	return _u
}

// AddBudgetEntries adds the "budget_entries" edges to the BudgetEntry entity.
func (_u *WorkflowRunUpdate) AddBudgetEntries(v ...*BudgetEntry) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBudgetEntryIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *WorkflowRunUpdate) AddArtifactIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *WorkflowRunUpdate) AddArtifacts(v ...*Artifact) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *WorkflowRunUpdate) AddEventIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdate) AddEvents(v ...*RunEvent) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdate) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the AgentTask entity.
func (_u *WorkflowRunUpdate) ClearTasks() *WorkflowRunUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to AgentTask entities by IDs.
func (_u *WorkflowRunUpdate) RemoveTaskIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to AgentTask entities.
func (_u *WorkflowRunUpdate) RemoveTasks(v ...*AgentTask) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearInvocations clears all "invocations" edges to the ToolInvocation entity.
func (_u *WorkflowRunUpdate) ClearInvocations() *WorkflowRunUpdate {
	_u.mutation.ClearInvocations()
	return _u
}

// RemoveInvocationIDs removes the "invocations" edge to ToolInvocation entities by IDs.
func (_u *WorkflowRunUpdate) RemoveInvocationIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveInvocationIDs(ids...)
	return _u
}

// RemoveInvocations removes "invocations" edges to ToolInvocation entities.
func (_u *WorkflowRunUpdate) RemoveInvocations(v ...*ToolInvocation) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvocationIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowRunUpdate) ClearCheckpoints() *WorkflowRunUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *WorkflowRunUpdate) RemoveCheckpointIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *WorkflowRunUpdate) RemoveCheckpoints(v ...*Checkpoint) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearGates clears all "gates" edges to the HumanGate entity.
func (_u *WorkflowRunUpdate) ClearGates() *WorkflowRunUpdate {
	_u.mutation.ClearGates()
	return _u
}

// RemoveGateIDs removes the "gates" edge to HumanGate entities by IDs.
func (_u *WorkflowRunUpdate) RemoveGateIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveGateIDs(ids...)
	return _u
}

// RemoveGates removes "gates" edges to HumanGate entities.
func (_u *WorkflowRunUpdate) RemoveGates(v ...*HumanGate) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateIDs(ids...)
}

// ClearBudgetEntries clears all "budget_entries" edges to the BudgetEntry entity.
func (_u *WorkflowRunUpdate) ClearBudgetEntries() *WorkflowRunUpdate {
	_u.mutation.ClearBudgetEntries()
	return _u
}

// RemoveBudgetEntryIDs removes the "budget_entries" edge to BudgetEntry entities by IDs.
func (_u *WorkflowRunUpdate) RemoveBudgetEntryIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.RemoveBudgetEntryIDs(ids...)
	return _u
}

// RemoveBudgetEntries removes "budget_entries" edges to BudgetEntry entities.
func (_u *WorkflowRunUpdate) RemoveBudgetEntries(v ...*BudgetEntry) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBudgetEntryIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *WorkflowRunUpdate) ClearArtifacts() *WorkflowRunUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *WorkflowRunUpdate) RemoveArtifactIDs(ids ...string) *WorkflowRunUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *WorkflowRunUpdate) RemoveArtifacts(v ...*Artifact) *WorkflowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdate) ClearEvents() *WorkflowRunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *WorkflowRunUpdate) RemoveEventIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *WorkflowRunUpdate) RemoveEvents(v ...*RunEvent) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Campaign(); ok {
		_spec.SetField(workflowrun.FieldCampaign, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(workflowrun.FieldCurrentPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhase(); ok {
		_spec.AddField(workflowrun.FieldCurrentPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BudgetCapUsd(); ok {
		_spec.SetField(workflowrun.FieldBudgetCapUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetCapUsd(); ok {
		_spec.AddField(workflowrun.FieldBudgetCapUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpendUsd(); ok {
		_spec.SetField(workflowrun.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpendUsd(); ok {
		_spec.AddField(workflowrun.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflowrun.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflowrun.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(workflowrun.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(workflowrun.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflowrun.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflowrun.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.TasksTable,
			Columns: []string{workflowrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.TasksTable,
			Columns: []string{workflowrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.TasksTable,
			Columns: []string{workflowrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.InvocationsTable,
			Columns: []string{workflowrun.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvocationsIDs(); len(nodes) > 0 && !_u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.InvocationsTable,
			Columns: []string{workflowrun.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.InvocationsTable,
			Columns: []string{workflowrun.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.CheckpointsTable,
			Columns: []string{workflowrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.CheckpointsTable,
			Columns: []string{workflowrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.CheckpointsTable,
			Columns: []string{workflowrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.GatesTable,
			Columns: []string{workflowrun.GatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGatesIDs(); len(nodes) > 0 && !_u.mutation.GatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.GatesTable,
			Columns: []string{workflowrun.GatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.GatesTable,
			Columns: []string{workflowrun.GatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BudgetEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.BudgetEntriesTable,
			Columns: []string{workflowrun.BudgetEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBudgetEntriesIDs(); len(nodes) > 0 && !_u.mutation.BudgetEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.BudgetEntriesTable,
			Columns: []string{workflowrun.BudgetEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.BudgetEntriesTable,
			Columns: []string{workflowrun.BudgetEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.ArtifactsTable,
			Columns: []string{workflowrun.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.ArtifactsTable,
			Columns: []string{workflowrun.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.ArtifactsTable,
			Columns: []string{workflowrun.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRunUpdateOne is the builder for updating a single WorkflowRun entity.
type WorkflowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// SetCampaign sets the "campaign" field.
func (_u *WorkflowRunUpdateOne) SetCampaign(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetCampaign(v)
	return _u
}

// SetNillableCampaign sets the "campaign" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCampaign(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCampaign(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdateOne) SetStatus(v workflowrun.Status) *WorkflowRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *WorkflowRunUpdateOne) SetCurrentPhase(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetCurrentPhase()
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCurrentPhase(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// AddCurrentPhase adds value to the "current_phase" field.
func (_u *WorkflowRunUpdateOne) AddCurrentPhase(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddCurrentPhase(v)
	return _u
}

// SetBudgetCapUsd sets the "budget_cap_usd" field.
func (_u *WorkflowRunUpdateOne) SetBudgetCapUsd(v float64) *WorkflowRunUpdateOne {
	_u.mutation.ResetBudgetCapUsd()
	_u.mutation.SetBudgetCapUsd(v)
	return _u
}

// SetNillableBudgetCapUsd sets the "budget_cap_usd" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableBudgetCapUsd(v *float64) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetBudgetCapUsd(*v)
	}
	return _u
}

// AddBudgetCapUsd adds value to the "budget_cap_usd" field.
func (_u *WorkflowRunUpdateOne) AddBudgetCapUsd(v float64) *WorkflowRunUpdateOne {
	_u.mutation.AddBudgetCapUsd(v)
	return _u
}

// SetSpendUsd sets the "spend_usd" field.
func (_u *WorkflowRunUpdateOne) SetSpendUsd(v float64) *WorkflowRunUpdateOne {
	_u.mutation.ResetSpendUsd()
	_u.mutation.SetSpendUsd(v)
	return _u
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableSpendUsd(v *float64) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetSpendUsd(*v)
	}
	return _u
}

// AddSpendUsd adds value to the "spend_usd" field.
func (_u *WorkflowRunUpdateOne) AddSpendUsd(v float64) *WorkflowRunUpdateOne {
	_u.mutation.AddSpendUsd(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowRunUpdateOne) SetConfig(v map[string]interface{}) *WorkflowRunUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowRunUpdateOne) ClearConfig() *WorkflowRunUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdateOne) SetErrorMessage(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableErrorMessage(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdateOne) ClearErrorMessage() *WorkflowRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *WorkflowRunUpdateOne) SetAuthor(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableAuthor(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *WorkflowRunUpdateOne) ClearAuthor() *WorkflowRunUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdateOne) SetPodID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillablePodID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdateOne) ClearPodID() *WorkflowRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) ClearLastHeartbeatAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowRunUpdateOne) SetCreatedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdateOne) SetStartedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdateOne) ClearStartedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdateOne) SetCompletedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdateOne) ClearCompletedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowRunUpdateOne) SetDeletedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableDeletedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowRunUpdateOne) ClearDeletedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the AgentTask entity by IDs.
func (_u *WorkflowRunUpdateOne) AddTaskIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the AgentTask entity.
func (_u *WorkflowRunUpdateOne) AddTasks(v ...*AgentTask) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by IDs.
func (_u *WorkflowRunUpdateOne) AddInvocationIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddInvocationIDs(ids...)
	return _u
}

// AddInvocations adds the "invocations" edges to the ToolInvocation entity.
func (_u *WorkflowRunUpdateOne) AddInvocations(v ...*ToolInvocation) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvocationIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *WorkflowRunUpdateOne) AddCheckpointIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowRunUpdateOne) AddCheckpoints(v ...*Checkpoint) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddGateIDs adds the "gates" edge to the HumanGate entity by IDs.
func (_u *WorkflowRunUpdateOne) AddGateIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddGateIDs(ids...)
	return _u
}

// AddGates adds the "gates" edges to the HumanGate entity.
func (_u *WorkflowRunUpdateOne) AddGates(v ...*HumanGate) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateIDs(ids...)
}

// AddBudgetEntryIDs adds the "budget_entries" edge to the BudgetEntry entity by IDs.
func (_u *WorkflowRunUpdateOne) AddBudgetEntryIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.AddBudgetEntryIDs(ids...)
	return _u
}

// AddBudgetEntries adds the "budget_entries" edges to the BudgetEntry entity.
func (_u *WorkflowRunUpdateOne) AddBudgetEntries(v ...*BudgetEntry) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBudgetEntryIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *WorkflowRunUpdateOne) AddArtifactIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *WorkflowRunUpdateOne) AddArtifacts(v ...*Artifact) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *WorkflowRunUpdateOne) AddEventIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdateOne) AddEvents(v ...*RunEvent) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdateOne) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the AgentTask entity.
func (_u *WorkflowRunUpdateOne) ClearTasks() *WorkflowRunUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to AgentTask entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveTaskIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to AgentTask entities.
func (_u *WorkflowRunUpdateOne) RemoveTasks(v ...*AgentTask) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearInvocations clears all "invocations" edges to the ToolInvocation entity.
func (_u *WorkflowRunUpdateOne) ClearInvocations() *WorkflowRunUpdateOne {
	_u.mutation.ClearInvocations()
	return _u
}

// RemoveInvocationIDs removes the "invocations" edge to ToolInvocation entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveInvocationIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveInvocationIDs(ids...)
	return _u
}

// RemoveInvocations removes "invocations" edges to ToolInvocation entities.
func (_u *WorkflowRunUpdateOne) RemoveInvocations(v ...*ToolInvocation) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvocationIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowRunUpdateOne) ClearCheckpoints() *WorkflowRunUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveCheckpointIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *WorkflowRunUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearGates clears all "gates" edges to the HumanGate entity.
func (_u *WorkflowRunUpdateOne) ClearGates() *WorkflowRunUpdateOne {
	_u.mutation.ClearGates()
	return _u
}

// RemoveGateIDs removes the "gates" edge to HumanGate entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveGateIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveGateIDs(ids...)
	return _u
}

// RemoveGates removes "gates" edges to HumanGate entities.
func (_u *WorkflowRunUpdateOne) RemoveGates(v ...*HumanGate) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateIDs(ids...)
}

// ClearBudgetEntries clears all "budget_entries" edges to the BudgetEntry entity.
func (_u *WorkflowRunUpdateOne) ClearBudgetEntries() *WorkflowRunUpdateOne {
	_u.mutation.ClearBudgetEntries()
	return _u
}

// RemoveBudgetEntryIDs removes the "budget_entries" edge to BudgetEntry entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveBudgetEntryIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.RemoveBudgetEntryIDs(ids...)
	return _u
}

// RemoveBudgetEntries removes "budget_entries" edges to BudgetEntry entities.
func (_u *WorkflowRunUpdateOne) RemoveBudgetEntries(v ...*BudgetEntry) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBudgetEntryIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *WorkflowRunUpdateOne) ClearArtifacts() *WorkflowRunUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveArtifactIDs(ids ...string) *WorkflowRunUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *WorkflowRunUpdateOne) RemoveArtifacts(v ...*Artifact) *WorkflowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdateOne) ClearEvents() *WorkflowRunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveEventIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *WorkflowRunUpdateOne) RemoveEvents(v ...*RunEvent) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdateOne) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRunUpdateOne) Select(field string, fields ...string) *WorkflowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRun entity.
func (_u *WorkflowRunUpdateOne) Save(ctx context.Context) (*WorkflowRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) SaveX(ctx context.Context) *WorkflowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrun.FieldID)
		for _, f := range fields {
			if !workflowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Campaign(); ok {
		_spec.SetField(workflowrun.FieldCampaign, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(workflowrun.FieldCurrentPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhase(); ok {
		_spec.AddField(workflowrun.FieldCurrentPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BudgetCapUsd(); ok {
		_spec.SetField(workflowrun.FieldBudgetCapUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetCapUsd(); ok {
		_spec.AddField(workflowrun.FieldBudgetCapUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpendUsd(); ok {
		_spec.SetField(workflowrun.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpendUsd(); ok {
		_spec.AddField(workflowrun.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflowrun.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflowrun.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(workflowrun.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(workflowrun.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflowrun.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflowrun.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.TasksTable,
			Columns: []string{workflowrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.TasksTable,
			Columns: []string{workflowrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.TasksTable,
			Columns: []string{workflowrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.InvocationsTable,
			Columns: []string{workflowrun.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvocationsIDs(); len(nodes) > 0 && !_u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.InvocationsTable,
			Columns: []string{workflowrun.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.InvocationsTable,
			Columns: []string{workflowrun.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.CheckpointsTable,
			Columns: []string{workflowrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.CheckpointsTable,
			Columns: []string{workflowrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.CheckpointsTable,
			Columns: []string{workflowrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.GatesTable,
			Columns: []string{workflowrun.GatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGatesIDs(); len(nodes) > 0 && !_u.mutation.GatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.GatesTable,
			Columns: []string{workflowrun.GatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.GatesTable,
			Columns: []string{workflowrun.GatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BudgetEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.BudgetEntriesTable,
			Columns: []string{workflowrun.BudgetEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBudgetEntriesIDs(); len(nodes) > 0 && !_u.mutation.BudgetEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.BudgetEntriesTable,
			Columns: []string{workflowrun.BudgetEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.BudgetEntriesTable,
			Columns: []string{workflowrun.BudgetEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.ArtifactsTable,
			Columns: []string{workflowrun.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.ArtifactsTable,
			Columns: []string{workflowrun.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.ArtifactsTable,
			Columns: []string{workflowrun.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
