// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CompletionEventCreate) SetSequence(v int64) *CompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CompletionEventCreate) SetTimestamp(v time.Time) *CompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTimestamp(v *time.Time) *CompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *CompletionEventCreate) SetUnitID(v string) *CompletionEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *CompletionEventCreate) SetSubjectID(v string) *CompletionEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *CompletionEventCreate) SetKind(v string) *CompletionEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *CompletionEventCreate) SetTopicName(v string) *CompletionEventCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTopicName(v *string) *CompletionEventCreate {
	if v != nil {
		_c.SetTopicName(*v)
	}
	return _c
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_c *CompletionEventCreate) SetPlannedMinutes(v int) *CompletionEventCreate {
	_c.mutation.SetPlannedMinutes(v)
	return _c
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillablePlannedMinutes(v *int) *CompletionEventCreate {
	if v != nil {
		_c.SetPlannedMinutes(*v)
	}
	return _c
}

// SetSpentMinutes sets the "spent_minutes" field.
func (_c *CompletionEventCreate) SetSpentMinutes(v int) *CompletionEventCreate {
	_c.mutation.SetSpentMinutes(v)
	return _c
}

// SetNillableSpentMinutes sets the "spent_minutes" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableSpentMinutes(v *int) *CompletionEventCreate {
	if v != nil {
		_c.SetSpentMinutes(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *CompletionEventCreate) SetAccuracy(v float64) *CompletionEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableAccuracy(v *float64) *CompletionEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *CompletionEventCreate) SetSkipped(v bool) *CompletionEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableSkipped(v *bool) *CompletionEventCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_c *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return _c.mutation
}

// Save creates the CompletionEvent in the database.
func (_c *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		v := completionevent.DefaultTopicName
		_c.mutation.SetTopicName(v)
	}
	if _, ok := _c.mutation.PlannedMinutes(); !ok {
		v := completionevent.DefaultPlannedMinutes
		_c.mutation.SetPlannedMinutes(v)
	}
	if _, ok := _c.mutation.SpentMinutes(); !ok {
		v := completionevent.DefaultSpentMinutes
		_c.mutation.SetSpentMinutes(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := completionevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := completionevent.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "CompletionEvent.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := completionevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "CompletionEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := completionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CompletionEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := completionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "CompletionEvent.topic_name"`)}
	}
	if _, ok := _c.mutation.PlannedMinutes(); !ok {
		return &ValidationError{Name: "planned_minutes", err: errors.New(`ent: missing required field "CompletionEvent.planned_minutes"`)}
	}
	if _, ok := _c.mutation.SpentMinutes(); !ok {
		return &ValidationError{Name: "spent_minutes", err: errors.New(`ent: missing required field "CompletionEvent.spent_minutes"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "CompletionEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "CompletionEvent.skipped"`)}
	}
	return nil
}

func (_c *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(completionevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(completionevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(completionevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(completionevent.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.PlannedMinutes(); ok {
		_spec.SetField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
		_node.PlannedMinutes = value
	}
	if value, ok := _c.mutation.SpentMinutes(); ok {
		_spec.SetField(completionevent.FieldSpentMinutes, field.TypeInt, value)
		_node.SpentMinutes = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(completionevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(completionevent.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	return _node, _spec
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
}

// Save creates the CompletionEvent entities in the database.
func (_c *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
