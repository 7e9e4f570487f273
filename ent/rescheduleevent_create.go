// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/rescheduleevent"
)

// RescheduleEventCreate is the builder for creating a RescheduleEvent entity.
type RescheduleEventCreate struct {
	config
	mutation *RescheduleEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RescheduleEventCreate) SetSequence(v int64) *RescheduleEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RescheduleEventCreate) SetTimestamp(v time.Time) *RescheduleEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RescheduleEventCreate) SetNillableTimestamp(v *time.Time) *RescheduleEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *RescheduleEventCreate) SetUnitID(v string) *RescheduleEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *RescheduleEventCreate) SetSubjectID(v string) *RescheduleEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetFromDate sets the "from_date" field.
func (_c *RescheduleEventCreate) SetFromDate(v time.Time) *RescheduleEventCreate {
	_c.mutation.SetFromDate(v)
	return _c
}

// SetToDate sets the "to_date" field.
func (_c *RescheduleEventCreate) SetToDate(v time.Time) *RescheduleEventCreate {
	_c.mutation.SetToDate(v)
	return _c
}

// SetDaysOverdue sets the "days_overdue" field.
func (_c *RescheduleEventCreate) SetDaysOverdue(v int) *RescheduleEventCreate {
	_c.mutation.SetDaysOverdue(v)
	return _c
}

// SetNillableDaysOverdue sets the "days_overdue" field if the given value is not nil.
func (_c *RescheduleEventCreate) SetNillableDaysOverdue(v *int) *RescheduleEventCreate {
	if v != nil {
		_c.SetDaysOverdue(*v)
	}
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *RescheduleEventCreate) SetPriorityScore(v float64) *RescheduleEventCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_c *RescheduleEventCreate) SetNillablePriorityScore(v *float64) *RescheduleEventCreate {
	if v != nil {
		_c.SetPriorityScore(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *RescheduleEventCreate) SetReason(v string) *RescheduleEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *RescheduleEventCreate) SetNillableReason(v *string) *RescheduleEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// Mutation returns the RescheduleEventMutation object of the builder.
func (_c *RescheduleEventCreate) Mutation() *RescheduleEventMutation {
	return _c.mutation
}

// Save creates the RescheduleEvent in the database.
func (_c *RescheduleEventCreate) Save(ctx context.Context) (*RescheduleEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RescheduleEventCreate) SaveX(ctx context.Context) *RescheduleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RescheduleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RescheduleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RescheduleEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rescheduleevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DaysOverdue(); !ok {
		v := rescheduleevent.DefaultDaysOverdue
		_c.mutation.SetDaysOverdue(v)
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		v := rescheduleevent.DefaultPriorityScore
		_c.mutation.SetPriorityScore(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := rescheduleevent.DefaultReason
		_c.mutation.SetReason(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RescheduleEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RescheduleEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RescheduleEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "RescheduleEvent.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := rescheduleevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "RescheduleEvent.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "RescheduleEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := rescheduleevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "RescheduleEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromDate(); !ok {
		return &ValidationError{Name: "from_date", err: errors.New(`ent: missing required field "RescheduleEvent.from_date"`)}
	}
	if _, ok := _c.mutation.ToDate(); !ok {
		return &ValidationError{Name: "to_date", err: errors.New(`ent: missing required field "RescheduleEvent.to_date"`)}
	}
	if _, ok := _c.mutation.DaysOverdue(); !ok {
		return &ValidationError{Name: "days_overdue", err: errors.New(`ent: missing required field "RescheduleEvent.days_overdue"`)}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "RescheduleEvent.priority_score"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "RescheduleEvent.reason"`)}
	}
	return nil
}

func (_c *RescheduleEventCreate) sqlSave(ctx context.Context) (*RescheduleEvent, error) {
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

func (_c *RescheduleEventCreate) createSpec() (*RescheduleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RescheduleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rescheduleevent.Table, sqlgraph.NewFieldSpec(rescheduleevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rescheduleevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rescheduleevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(rescheduleevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(rescheduleevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.FromDate(); ok {
		_spec.SetField(rescheduleevent.FieldFromDate, field.TypeTime, value)
		_node.FromDate = value
	}
	if value, ok := _c.mutation.ToDate(); ok {
		_spec.SetField(rescheduleevent.FieldToDate, field.TypeTime, value)
		_node.ToDate = value
	}
	if value, ok := _c.mutation.DaysOverdue(); ok {
		_spec.SetField(rescheduleevent.FieldDaysOverdue, field.TypeInt, value)
		_node.DaysOverdue = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(rescheduleevent.FieldPriorityScore, field.TypeFloat64, value)
		_node.PriorityScore = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(rescheduleevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// RescheduleEventCreateBulk is the builder for creating many RescheduleEvent entities in bulk.
type RescheduleEventCreateBulk struct {
	config
	err      error
	builders []*RescheduleEventCreate
}

// Save creates the RescheduleEvent entities in the database.
func (_c *RescheduleEventCreateBulk) Save(ctx context.Context) ([]*RescheduleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RescheduleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RescheduleEventMutation)
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
func (_c *RescheduleEventCreateBulk) SaveX(ctx context.Context) []*RescheduleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RescheduleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RescheduleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
