// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// HumanGateCreate is the builder for creating a HumanGate entity.
type HumanGateCreate struct {
	config
	mutation *HumanGateMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *HumanGateCreate) SetRunID(v string) *HumanGateCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *HumanGateCreate) SetPhase(v int) *HumanGateCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetArtifactRef sets the "artifact_ref" field.
func (_c *HumanGateCreate) SetArtifactRef(v string) *HumanGateCreate {
	_c.mutation.SetArtifactRef(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *HumanGateCreate) SetStatus(v humangate.Status) *HumanGateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableStatus(v *humangate.Status) *HumanGateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *HumanGateCreate) SetDeadline(v time.Time) *HumanGateCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetApproverID sets the "approver_id" field.
func (_c *HumanGateCreate) SetApproverID(v string) *HumanGateCreate {
	_c.mutation.SetApproverID(v)
	return _c
}

// SetNillableApproverID sets the "approver_id" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableApproverID(v *string) *HumanGateCreate {
	if v != nil {
		_c.SetApproverID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *HumanGateCreate) SetNotes(v string) *HumanGateCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableNotes(v *string) *HumanGateCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *HumanGateCreate) SetDecidedAt(v time.Time) *HumanGateCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableDecidedAt(v *time.Time) *HumanGateCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HumanGateCreate) SetCreatedAt(v time.Time) *HumanGateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HumanGateCreate) SetNillableCreatedAt(v *time.Time) *HumanGateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HumanGateCreate) SetID(v string) *HumanGateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *HumanGateCreate) SetRun(v *WorkflowRun) *HumanGateCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the HumanGateMutation object of the builder.
func (_c *HumanGateCreate) Mutation() *HumanGateMutation {
	return _c.mutation
}

// Save creates the HumanGate in the database.
func (_c *HumanGateCreate) Save(ctx context.Context) (*HumanGate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HumanGateCreate) SaveX(ctx context.Context) *HumanGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanGateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanGateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HumanGateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := humangate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := humangate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HumanGateCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "HumanGate.run_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "HumanGate.phase"`)}
	}
	if _, ok := _c.mutation.ArtifactRef(); !ok {
		return &ValidationError{Name: "artifact_ref", err: errors.New(`ent: missing required field "HumanGate.artifact_ref"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "HumanGate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := humangate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HumanGate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deadline(); !ok {
		return &ValidationError{Name: "deadline", err: errors.New(`ent: missing required field "HumanGate.deadline"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HumanGate.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "HumanGate.run"`)}
	}
	return nil
}

func (_c *HumanGateCreate) sqlSave(ctx context.Context) (*HumanGate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected HumanGate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HumanGateCreate) createSpec() (*HumanGate, *sqlgraph.CreateSpec) {
	var (
		_node = &HumanGate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(humangate.Table, sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(humangate.FieldPhase, field.TypeInt, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.ArtifactRef(); ok {
		_spec.SetField(humangate.FieldArtifactRef, field.TypeString, value)
		_node.ArtifactRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(humangate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(humangate.FieldDeadline, field.TypeTime, value)
		_node.Deadline = value
	}
	if value, ok := _c.mutation.ApproverID(); ok {
		_spec.SetField(humangate.FieldApproverID, field.TypeString, value)
		_node.ApproverID = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(humangate.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(humangate.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(humangate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   humangate.RunTable,
			Columns: []string{humangate.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HumanGateCreateBulk is the builder for creating many HumanGate entities in bulk.
type HumanGateCreateBulk struct {
	config
	err      error
	builders []*HumanGateCreate
}

// Save creates the HumanGate entities in the database.
func (_c *HumanGateCreateBulk) Save(ctx context.Context) ([]*HumanGate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HumanGate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HumanGateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HumanGateCreateBulk) SaveX(ctx context.Context) []*HumanGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanGateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanGateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
