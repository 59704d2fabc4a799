// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/predicate"
	"github.com/adaptly/calibrant/ent/updatelog"
)

// UpdateLogDelete is the builder for deleting a UpdateLog entity.
type UpdateLogDelete struct {
	config
	hooks    []Hook
	mutation *UpdateLogMutation
}

// Where appends a list predicates to the UpdateLogDelete builder.
func (uld *UpdateLogDelete) Where(ps ...predicate.UpdateLog) *UpdateLogDelete {
	uld.mutation.Where(ps...)
	return uld
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (uld *UpdateLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, uld.sqlExec, uld.mutation, uld.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (uld *UpdateLogDelete) ExecX(ctx context.Context) int {
	n, err := uld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (uld *UpdateLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(updatelog.Table, sqlgraph.NewFieldSpec(updatelog.FieldID, field.TypeInt))
	if ps := uld.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, uld.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	uld.mutation.done = true
	return affected, err
}

// UpdateLogDeleteOne is the builder for deleting a single UpdateLog entity.
type UpdateLogDeleteOne struct {
	uld *UpdateLogDelete
}

// Where appends a list predicates to the UpdateLogDelete builder.
func (uldo *UpdateLogDeleteOne) Where(ps ...predicate.UpdateLog) *UpdateLogDeleteOne {
	uldo.uld.mutation.Where(ps...)
	return uldo
}

// Exec executes the deletion query.
func (uldo *UpdateLogDeleteOne) Exec(ctx context.Context) error {
	n, err := uldo.uld.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{updatelog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (uldo *UpdateLogDeleteOne) ExecX(ctx context.Context) {
	if err := uldo.Exec(ctx); err != nil {
		panic(err)
	}
}
