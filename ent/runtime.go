// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/artifact"
	"github.com/outreachkit/prospector/ent/breakerstate"
	"github.com/outreachkit/prospector/ent/budgetentry"
	"github.com/outreachkit/prospector/ent/checkpoint"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/limiterstate"
	"github.com/outreachkit/prospector/ent/runevent"
	"github.com/outreachkit/prospector/ent/schema"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agenttaskFields := schema.AgentTask{}.Fields()
	_ = agenttaskFields
	// agenttaskDescAttempt is the schema descriptor for attempt field.
	agenttaskDescAttempt := agenttaskFields[4].Descriptor()
	// agenttask.DefaultAttempt holds the default value on creation for the attempt field.
	agenttask.DefaultAttempt = agenttaskDescAttempt.Default.(int)
	// agenttaskDescStepCount is the schema descriptor for step_count field.
	agenttaskDescStepCount := agenttaskFields[6].Descriptor()
	// agenttask.DefaultStepCount holds the default value on creation for the step_count field.
	agenttask.DefaultStepCount = agenttaskDescStepCount.Default.(int)
	// agenttaskDescCreatedAt is the schema descriptor for created_at field.
	agenttaskDescCreatedAt := agenttaskFields[10].Descriptor()
	// agenttask.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttask.DefaultCreatedAt = agenttaskDescCreatedAt.Default.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	breakerstateFields := schema.BreakerState{}.Fields()
	_ = breakerstateFields
	// breakerstateDescFailureCount is the schema descriptor for failure_count field.
	breakerstateDescFailureCount := breakerstateFields[2].Descriptor()
	// breakerstate.DefaultFailureCount holds the default value on creation for the failure_count field.
	breakerstate.DefaultFailureCount = breakerstateDescFailureCount.Default.(int)
	// breakerstateDescSuccessCount is the schema descriptor for success_count field.
	breakerstateDescSuccessCount := breakerstateFields[3].Descriptor()
	// breakerstate.DefaultSuccessCount holds the default value on creation for the success_count field.
	breakerstate.DefaultSuccessCount = breakerstateDescSuccessCount.Default.(int)
	// breakerstateDescUpdatedAt is the schema descriptor for updated_at field.
	breakerstateDescUpdatedAt := breakerstateFields[5].Descriptor()
	// breakerstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	breakerstate.DefaultUpdatedAt = breakerstateDescUpdatedAt.Default.(func() time.Time)
	// breakerstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	breakerstate.UpdateDefaultUpdatedAt = breakerstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	budgetentryFields := schema.BudgetEntry{}.Fields()
	_ = budgetentryFields
	// budgetentryDescCreatedAt is the schema descriptor for created_at field.
	budgetentryDescCreatedAt := budgetentryFields[5].Descriptor()
	// budgetentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	budgetentry.DefaultCreatedAt = budgetentryDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescStepCount is the schema descriptor for step_count field.
	checkpointDescStepCount := checkpointFields[5].Descriptor()
	// checkpoint.DefaultStepCount holds the default value on creation for the step_count field.
	checkpoint.DefaultStepCount = checkpointDescStepCount.Default.(int)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[6].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	humangateFields := schema.HumanGate{}.Fields()
	_ = humangateFields
	// humangateDescCreatedAt is the schema descriptor for created_at field.
	humangateDescCreatedAt := humangateFields[9].Descriptor()
	// humangate.DefaultCreatedAt holds the default value on creation for the created_at field.
	humangate.DefaultCreatedAt = humangateDescCreatedAt.Default.(func() time.Time)
	limiterstateFields := schema.LimiterState{}.Fields()
	_ = limiterstateFields
	// limiterstateDescUpdatedAt is the schema descriptor for updated_at field.
	limiterstateDescUpdatedAt := limiterstateFields[3].Descriptor()
	// limiterstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	limiterstate.DefaultUpdatedAt = limiterstateDescUpdatedAt.Default.(func() time.Time)
	// limiterstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	limiterstate.UpdateDefaultUpdatedAt = limiterstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[3].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	toolinvocationFields := schema.ToolInvocation{}.Fields()
	_ = toolinvocationFields
	// toolinvocationDescCostUsd is the schema descriptor for cost_usd field.
	toolinvocationDescCostUsd := toolinvocationFields[10].Descriptor()
	// toolinvocation.DefaultCostUsd holds the default value on creation for the cost_usd field.
	toolinvocation.DefaultCostUsd = toolinvocationDescCostUsd.Default.(float64)
	// toolinvocationDescRequestedAt is the schema descriptor for requested_at field.
	toolinvocationDescRequestedAt := toolinvocationFields[12].Descriptor()
	// toolinvocation.DefaultRequestedAt holds the default value on creation for the requested_at field.
	toolinvocation.DefaultRequestedAt = toolinvocationDescRequestedAt.Default.(func() time.Time)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescCurrentPhase is the schema descriptor for current_phase field.
	workflowrunDescCurrentPhase := workflowrunFields[3].Descriptor()
	// workflowrun.DefaultCurrentPhase holds the default value on creation for the current_phase field.
	workflowrun.DefaultCurrentPhase = workflowrunDescCurrentPhase.Default.(int)
	// workflowrunDescSpendUsd is the schema descriptor for spend_usd field.
	workflowrunDescSpendUsd := workflowrunFields[5].Descriptor()
	// workflowrun.DefaultSpendUsd holds the default value on creation for the spend_usd field.
	workflowrun.DefaultSpendUsd = workflowrunDescSpendUsd.Default.(float64)
	// workflowrunDescCreatedAt is the schema descriptor for created_at field.
	workflowrunDescCreatedAt := workflowrunFields[11].Descriptor()
	// workflowrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowrun.DefaultCreatedAt = workflowrunDescCreatedAt.Default.(func() time.Time)
}
