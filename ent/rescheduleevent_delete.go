// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/predicate"
	"github.com/rsoarez/planista/ent/rescheduleevent"
)

// RescheduleEventDelete is the builder for deleting a RescheduleEvent entity.
type RescheduleEventDelete struct {
	config
	hooks    []Hook
	mutation *RescheduleEventMutation
}

// Where appends a list predicates to the RescheduleEventDelete builder.
func (_d *RescheduleEventDelete) Where(ps ...predicate.RescheduleEvent) *RescheduleEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RescheduleEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RescheduleEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RescheduleEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(rescheduleevent.Table, sqlgraph.NewFieldSpec(rescheduleevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RescheduleEventDeleteOne is the builder for deleting a single RescheduleEvent entity.
type RescheduleEventDeleteOne struct {
	_d *RescheduleEventDelete
}

// Where appends a list predicates to the RescheduleEventDelete builder.
func (_d *RescheduleEventDeleteOne) Where(ps ...predicate.RescheduleEvent) *RescheduleEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RescheduleEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{rescheduleevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RescheduleEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
