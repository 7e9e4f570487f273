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
	"github.com/rsoarez/planista/ent/planevent"
	"github.com/rsoarez/planista/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *PlanEventUpdate) SetFingerprint(v string) *PlanEventUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableFingerprint(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetRangeStart sets the "range_start" field.
func (_u *PlanEventUpdate) SetRangeStart(v time.Time) *PlanEventUpdate {
	_u.mutation.SetRangeStart(v)
	return _u
}

// SetNillableRangeStart sets the "range_start" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableRangeStart(v *time.Time) *PlanEventUpdate {
	if v != nil {
		_u.SetRangeStart(*v)
	}
	return _u
}

// SetRangeEnd sets the "range_end" field.
func (_u *PlanEventUpdate) SetRangeEnd(v time.Time) *PlanEventUpdate {
	_u.mutation.SetRangeEnd(v)
	return _u
}

// SetNillableRangeEnd sets the "range_end" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableRangeEnd(v *time.Time) *PlanEventUpdate {
	if v != nil {
		_u.SetRangeEnd(*v)
	}
	return _u
}

// SetUnitCount sets the "unit_count" field.
func (_u *PlanEventUpdate) SetUnitCount(v int) *PlanEventUpdate {
	_u.mutation.ResetUnitCount()
	_u.mutation.SetUnitCount(v)
	return _u
}

// SetNillableUnitCount sets the "unit_count" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableUnitCount(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetUnitCount(*v)
	}
	return _u
}

// AddUnitCount adds value to the "unit_count" field.
func (_u *PlanEventUpdate) AddUnitCount(v int) *PlanEventUpdate {
	_u.mutation.AddUnitCount(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *PlanEventUpdate) SetTotalHours(v float64) *PlanEventUpdate {
	_u.mutation.ResetTotalHours()
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTotalHours(v *float64) *PlanEventUpdate {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// AddTotalHours adds value to the "total_hours" field.
func (_u *PlanEventUpdate) AddTotalHours(v float64) *PlanEventUpdate {
	_u.mutation.AddTotalHours(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *PlanEventUpdate) SetCacheHit(v bool) *PlanEventUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableCacheHit(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdate) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := planevent.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(planevent.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RangeStart(); ok {
		_spec.SetField(planevent.FieldRangeStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RangeEnd(); ok {
		_spec.SetField(planevent.FieldRangeEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UnitCount(); ok {
		_spec.SetField(planevent.FieldUnitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitCount(); ok {
		_spec.AddField(planevent.FieldUnitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(planevent.FieldTotalHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalHours(); ok {
		_spec.AddField(planevent.FieldTotalHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(planevent.FieldCacheHit, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetFingerprint sets the "fingerprint" field.
func (_u *PlanEventUpdateOne) SetFingerprint(v string) *PlanEventUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableFingerprint(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetRangeStart sets the "range_start" field.
func (_u *PlanEventUpdateOne) SetRangeStart(v time.Time) *PlanEventUpdateOne {
	_u.mutation.SetRangeStart(v)
	return _u
}

// SetNillableRangeStart sets the "range_start" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableRangeStart(v *time.Time) *PlanEventUpdateOne {
	if v != nil {
		_u.SetRangeStart(*v)
	}
	return _u
}

// SetRangeEnd sets the "range_end" field.
func (_u *PlanEventUpdateOne) SetRangeEnd(v time.Time) *PlanEventUpdateOne {
	_u.mutation.SetRangeEnd(v)
	return _u
}

// SetNillableRangeEnd sets the "range_end" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableRangeEnd(v *time.Time) *PlanEventUpdateOne {
	if v != nil {
		_u.SetRangeEnd(*v)
	}
	return _u
}

// SetUnitCount sets the "unit_count" field.
func (_u *PlanEventUpdateOne) SetUnitCount(v int) *PlanEventUpdateOne {
	_u.mutation.ResetUnitCount()
	_u.mutation.SetUnitCount(v)
	return _u
}

// SetNillableUnitCount sets the "unit_count" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableUnitCount(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetUnitCount(*v)
	}
	return _u
}

// AddUnitCount adds value to the "unit_count" field.
func (_u *PlanEventUpdateOne) AddUnitCount(v int) *PlanEventUpdateOne {
	_u.mutation.AddUnitCount(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *PlanEventUpdateOne) SetTotalHours(v float64) *PlanEventUpdateOne {
	_u.mutation.ResetTotalHours()
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTotalHours(v *float64) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// AddTotalHours adds value to the "total_hours" field.
func (_u *PlanEventUpdateOne) AddTotalHours(v float64) *PlanEventUpdateOne {
	_u.mutation.AddTotalHours(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *PlanEventUpdateOne) SetCacheHit(v bool) *PlanEventUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableCacheHit(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdateOne) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := planevent.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(planevent.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RangeStart(); ok {
		_spec.SetField(planevent.FieldRangeStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RangeEnd(); ok {
		_spec.SetField(planevent.FieldRangeEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UnitCount(); ok {
		_spec.SetField(planevent.FieldUnitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitCount(); ok {
		_spec.AddField(planevent.FieldUnitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(planevent.FieldTotalHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalHours(); ok {
		_spec.AddField(planevent.FieldTotalHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(planevent.FieldCacheHit, field.TypeBool, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
