// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentTask is the predicate function for agenttask builders.
type AgentTask func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// BreakerState is the predicate function for breakerstate builders.
type BreakerState func(*sql.Selector)

// BudgetEntry is the predicate function for budgetentry builders.
type BudgetEntry func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// HumanGate is the predicate function for humangate builders.
type HumanGate func(*sql.Selector)

// LimiterState is the predicate function for limiterstate builders.
type LimiterState func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// ToolInvocation is the predicate function for toolinvocation builders.
type ToolInvocation func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)
