// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/planevent"
)

// PlanEventCreate is the builder for creating a PlanEvent entity.
type PlanEventCreate struct {
	config
	mutation *PlanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlanEventCreate) SetSequence(v int64) *PlanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlanEventCreate) SetTimestamp(v time.Time) *PlanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTimestamp(v *time.Time) *PlanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *PlanEventCreate) SetFingerprint(v string) *PlanEventCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetRangeStart sets the "range_start" field.
func (_c *PlanEventCreate) SetRangeStart(v time.Time) *PlanEventCreate {
	_c.mutation.SetRangeStart(v)
	return _c
}

// SetRangeEnd sets the "range_end" field.
func (_c *PlanEventCreate) SetRangeEnd(v time.Time) *PlanEventCreate {
	_c.mutation.SetRangeEnd(v)
	return _c
}

// SetUnitCount sets the "unit_count" field.
func (_c *PlanEventCreate) SetUnitCount(v int) *PlanEventCreate {
	_c.mutation.SetUnitCount(v)
	return _c
}

// SetNillableUnitCount sets the "unit_count" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableUnitCount(v *int) *PlanEventCreate {
	if v != nil {
		_c.SetUnitCount(*v)
	}
	return _c
}

// SetTotalHours sets the "total_hours" field.
func (_c *PlanEventCreate) SetTotalHours(v float64) *PlanEventCreate {
	_c.mutation.SetTotalHours(v)
	return _c
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTotalHours(v *float64) *PlanEventCreate {
	if v != nil {
		_c.SetTotalHours(*v)
	}
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *PlanEventCreate) SetCacheHit(v bool) *PlanEventCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableCacheHit(v *bool) *PlanEventCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// Mutation returns the PlanEventMutation object of the builder.
func (_c *PlanEventCreate) Mutation() *PlanEventMutation {
	return _c.mutation
}

// Save creates the PlanEvent in the database.
func (_c *PlanEventCreate) Save(ctx context.Context) (*PlanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanEventCreate) SaveX(ctx context.Context) *PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := planevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UnitCount(); !ok {
		v := planevent.DefaultUnitCount
		_c.mutation.SetUnitCount(v)
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		v := planevent.DefaultTotalHours
		_c.mutation.SetTotalHours(v)
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := planevent.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "PlanEvent.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := planevent.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RangeStart(); !ok {
		return &ValidationError{Name: "range_start", err: errors.New(`ent: missing required field "PlanEvent.range_start"`)}
	}
	if _, ok := _c.mutation.RangeEnd(); !ok {
		return &ValidationError{Name: "range_end", err: errors.New(`ent: missing required field "PlanEvent.range_end"`)}
	}
	if _, ok := _c.mutation.UnitCount(); !ok {
		return &ValidationError{Name: "unit_count", err: errors.New(`ent: missing required field "PlanEvent.unit_count"`)}
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		return &ValidationError{Name: "total_hours", err: errors.New(`ent: missing required field "PlanEvent.total_hours"`)}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "PlanEvent.cache_hit"`)}
	}
	return nil
}

func (_c *PlanEventCreate) sqlSave(ctx context.Context) (*PlanEvent, error) {
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

func (_c *PlanEventCreate) createSpec() (*PlanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planevent.Table, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(planevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(planevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(planevent.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.RangeStart(); ok {
		_spec.SetField(planevent.FieldRangeStart, field.TypeTime, value)
		_node.RangeStart = value
	}
	if value, ok := _c.mutation.RangeEnd(); ok {
		_spec.SetField(planevent.FieldRangeEnd, field.TypeTime, value)
		_node.RangeEnd = value
	}
	if value, ok := _c.mutation.UnitCount(); ok {
		_spec.SetField(planevent.FieldUnitCount, field.TypeInt, value)
		_node.UnitCount = value
	}
	if value, ok := _c.mutation.TotalHours(); ok {
		_spec.SetField(planevent.FieldTotalHours, field.TypeFloat64, value)
		_node.TotalHours = value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(planevent.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	return _node, _spec
}

// PlanEventCreateBulk is the builder for creating many PlanEvent entities in bulk.
type PlanEventCreateBulk struct {
	config
	err      error
	builders []*PlanEventCreate
}

// Save creates the PlanEvent entities in the database.
func (_c *PlanEventCreateBulk) Save(ctx context.Context) ([]*PlanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanEventMutation)
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
func (_c *PlanEventCreateBulk) SaveX(ctx context.Context) []*PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
