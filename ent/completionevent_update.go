// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/completionevent"
	"github.com/rsoarez/planista/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *CompletionEventUpdate) SetUnitID(v string) *CompletionEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableUnitID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CompletionEventUpdate) SetSubjectID(v string) *CompletionEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSubjectID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CompletionEventUpdate) SetKind(v string) *CompletionEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableKind(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *CompletionEventUpdate) SetTopicName(v string) *CompletionEventUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableTopicName(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *CompletionEventUpdate) SetPlannedMinutes(v int) *CompletionEventUpdate {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillablePlannedMinutes(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *CompletionEventUpdate) AddPlannedMinutes(v int) *CompletionEventUpdate {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetSpentMinutes sets the "spent_minutes" field.
func (_u *CompletionEventUpdate) SetSpentMinutes(v int) *CompletionEventUpdate {
	_u.mutation.ResetSpentMinutes()
	_u.mutation.SetSpentMinutes(v)
	return _u
}

// SetNillableSpentMinutes sets the "spent_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSpentMinutes(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetSpentMinutes(*v)
	}
	return _u
}

// AddSpentMinutes adds value to the "spent_minutes" field.
func (_u *CompletionEventUpdate) AddSpentMinutes(v int) *CompletionEventUpdate {
	_u.mutation.AddSpentMinutes(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *CompletionEventUpdate) SetAccuracy(v float64) *CompletionEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableAccuracy(v *float64) *CompletionEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *CompletionEventUpdate) AddAccuracy(v float64) *CompletionEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *CompletionEventUpdate) SetSkipped(v bool) *CompletionEventUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSkipped(v *bool) *CompletionEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := completionevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := completionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := completionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(completionevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(completionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(completionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(completionevent.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpentMinutes(); ok {
		_spec.SetField(completionevent.FieldSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpentMinutes(); ok {
		_spec.AddField(completionevent.FieldSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(completionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(completionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(completionevent.FieldSkipped, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *CompletionEventUpdateOne) SetUnitID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableUnitID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CompletionEventUpdateOne) SetSubjectID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSubjectID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CompletionEventUpdateOne) SetKind(v string) *CompletionEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableKind(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *CompletionEventUpdateOne) SetTopicName(v string) *CompletionEventUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableTopicName(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *CompletionEventUpdateOne) SetPlannedMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillablePlannedMinutes(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *CompletionEventUpdateOne) AddPlannedMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetSpentMinutes sets the "spent_minutes" field.
func (_u *CompletionEventUpdateOne) SetSpentMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetSpentMinutes()
	_u.mutation.SetSpentMinutes(v)
	return _u
}

// SetNillableSpentMinutes sets the "spent_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSpentMinutes(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSpentMinutes(*v)
	}
	return _u
}

// AddSpentMinutes adds value to the "spent_minutes" field.
func (_u *CompletionEventUpdateOne) AddSpentMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.AddSpentMinutes(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *CompletionEventUpdateOne) SetAccuracy(v float64) *CompletionEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableAccuracy(v *float64) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *CompletionEventUpdateOne) AddAccuracy(v float64) *CompletionEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *CompletionEventUpdateOne) SetSkipped(v bool) *CompletionEventUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSkipped(v *bool) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := completionevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := completionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := completionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
		_spec.SetField(completionevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(completionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(completionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(completionevent.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpentMinutes(); ok {
		_spec.SetField(completionevent.FieldSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpentMinutes(); ok {
		_spec.AddField(completionevent.FieldSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(completionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(completionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(completionevent.FieldSkipped, field.TypeBool, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
