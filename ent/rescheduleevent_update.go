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
	"github.com/rsoarez/planista/ent/predicate"
	"github.com/rsoarez/planista/ent/rescheduleevent"
)

// RescheduleEventUpdate is the builder for updating RescheduleEvent entities.
type RescheduleEventUpdate struct {
	config
	hooks    []Hook
	mutation *RescheduleEventMutation
}

// Where appends a list predicates to the RescheduleEventUpdate builder.
func (_u *RescheduleEventUpdate) Where(ps ...predicate.RescheduleEvent) *RescheduleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *RescheduleEventUpdate) SetUnitID(v string) *RescheduleEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillableUnitID(v *string) *RescheduleEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *RescheduleEventUpdate) SetSubjectID(v string) *RescheduleEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillableSubjectID(v *string) *RescheduleEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetFromDate sets the "from_date" field.
func (_u *RescheduleEventUpdate) SetFromDate(v time.Time) *RescheduleEventUpdate {
	_u.mutation.SetFromDate(v)
	return _u
}

// SetNillableFromDate sets the "from_date" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillableFromDate(v *time.Time) *RescheduleEventUpdate {
	if v != nil {
		_u.SetFromDate(*v)
	}
	return _u
}

// SetToDate sets the "to_date" field.
func (_u *RescheduleEventUpdate) SetToDate(v time.Time) *RescheduleEventUpdate {
	_u.mutation.SetToDate(v)
	return _u
}

// SetNillableToDate sets the "to_date" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillableToDate(v *time.Time) *RescheduleEventUpdate {
	if v != nil {
		_u.SetToDate(*v)
	}
	return _u
}

// SetDaysOverdue sets the "days_overdue" field.
func (_u *RescheduleEventUpdate) SetDaysOverdue(v int) *RescheduleEventUpdate {
	_u.mutation.ResetDaysOverdue()
	_u.mutation.SetDaysOverdue(v)
	return _u
}

// SetNillableDaysOverdue sets the "days_overdue" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillableDaysOverdue(v *int) *RescheduleEventUpdate {
	if v != nil {
		_u.SetDaysOverdue(*v)
	}
	return _u
}

// AddDaysOverdue adds value to the "days_overdue" field.
func (_u *RescheduleEventUpdate) AddDaysOverdue(v int) *RescheduleEventUpdate {
	_u.mutation.AddDaysOverdue(v)
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *RescheduleEventUpdate) SetPriorityScore(v float64) *RescheduleEventUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillablePriorityScore(v *float64) *RescheduleEventUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *RescheduleEventUpdate) AddPriorityScore(v float64) *RescheduleEventUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RescheduleEventUpdate) SetReason(v string) *RescheduleEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RescheduleEventUpdate) SetNillableReason(v *string) *RescheduleEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the RescheduleEventMutation object of the builder.
func (_u *RescheduleEventUpdate) Mutation() *RescheduleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RescheduleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RescheduleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RescheduleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RescheduleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RescheduleEventUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := rescheduleevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "RescheduleEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := rescheduleevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "RescheduleEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RescheduleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rescheduleevent.Table, rescheduleevent.Columns, sqlgraph.NewFieldSpec(rescheduleevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(rescheduleevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(rescheduleevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromDate(); ok {
		_spec.SetField(rescheduleevent.FieldFromDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ToDate(); ok {
		_spec.SetField(rescheduleevent.FieldToDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DaysOverdue(); ok {
		_spec.SetField(rescheduleevent.FieldDaysOverdue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysOverdue(); ok {
		_spec.AddField(rescheduleevent.FieldDaysOverdue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(rescheduleevent.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(rescheduleevent.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(rescheduleevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rescheduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RescheduleEventUpdateOne is the builder for updating a single RescheduleEvent entity.
type RescheduleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RescheduleEventMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *RescheduleEventUpdateOne) SetUnitID(v string) *RescheduleEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillableUnitID(v *string) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *RescheduleEventUpdateOne) SetSubjectID(v string) *RescheduleEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillableSubjectID(v *string) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetFromDate sets the "from_date" field.
func (_u *RescheduleEventUpdateOne) SetFromDate(v time.Time) *RescheduleEventUpdateOne {
	_u.mutation.SetFromDate(v)
	return _u
}

// SetNillableFromDate sets the "from_date" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillableFromDate(v *time.Time) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetFromDate(*v)
	}
	return _u
}

// SetToDate sets the "to_date" field.
func (_u *RescheduleEventUpdateOne) SetToDate(v time.Time) *RescheduleEventUpdateOne {
	_u.mutation.SetToDate(v)
	return _u
}

// SetNillableToDate sets the "to_date" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillableToDate(v *time.Time) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetToDate(*v)
	}
	return _u
}

// SetDaysOverdue sets the "days_overdue" field.
func (_u *RescheduleEventUpdateOne) SetDaysOverdue(v int) *RescheduleEventUpdateOne {
	_u.mutation.ResetDaysOverdue()
	_u.mutation.SetDaysOverdue(v)
	return _u
}

// SetNillableDaysOverdue sets the "days_overdue" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillableDaysOverdue(v *int) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetDaysOverdue(*v)
	}
	return _u
}

// AddDaysOverdue adds value to the "days_overdue" field.
func (_u *RescheduleEventUpdateOne) AddDaysOverdue(v int) *RescheduleEventUpdateOne {
	_u.mutation.AddDaysOverdue(v)
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *RescheduleEventUpdateOne) SetPriorityScore(v float64) *RescheduleEventUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillablePriorityScore(v *float64) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *RescheduleEventUpdateOne) AddPriorityScore(v float64) *RescheduleEventUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RescheduleEventUpdateOne) SetReason(v string) *RescheduleEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RescheduleEventUpdateOne) SetNillableReason(v *string) *RescheduleEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the RescheduleEventMutation object of the builder.
func (_u *RescheduleEventUpdateOne) Mutation() *RescheduleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RescheduleEventUpdate builder.
func (_u *RescheduleEventUpdateOne) Where(ps ...predicate.RescheduleEvent) *RescheduleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RescheduleEventUpdateOne) Select(field string, fields ...string) *RescheduleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RescheduleEvent entity.
func (_u *RescheduleEventUpdateOne) Save(ctx context.Context) (*RescheduleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RescheduleEventUpdateOne) SaveX(ctx context.Context) *RescheduleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RescheduleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RescheduleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RescheduleEventUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := rescheduleevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "RescheduleEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := rescheduleevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "RescheduleEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RescheduleEventUpdateOne) sqlSave(ctx context.Context) (_node *RescheduleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rescheduleevent.Table, rescheduleevent.Columns, sqlgraph.NewFieldSpec(rescheduleevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RescheduleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rescheduleevent.FieldID)
		for _, f := range fields {
			if !rescheduleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rescheduleevent.FieldID {
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
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(rescheduleevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(rescheduleevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromDate(); ok {
		_spec.SetField(rescheduleevent.FieldFromDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ToDate(); ok {
		_spec.SetField(rescheduleevent.FieldToDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DaysOverdue(); ok {
		_spec.SetField(rescheduleevent.FieldDaysOverdue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysOverdue(); ok {
		_spec.AddField(rescheduleevent.FieldDaysOverdue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(rescheduleevent.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(rescheduleevent.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(rescheduleevent.FieldReason, field.TypeString, value)
	}
	_node = &RescheduleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rescheduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
