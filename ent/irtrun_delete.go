// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtrun"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtRunDelete is the builder for deleting a IrtRun entity.
type IrtRunDelete struct {
	config
	hooks    []Hook
	mutation *IrtRunMutation
}

// Where appends a list predicates to the IrtRunDelete builder.
func (ird *IrtRunDelete) Where(ps ...predicate.IrtRun) *IrtRunDelete {
	ird.mutation.Where(ps...)
	return ird
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ird *IrtRunDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ird.sqlExec, ird.mutation, ird.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ird *IrtRunDelete) ExecX(ctx context.Context) int {
	n, err := ird.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ird *IrtRunDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(irtrun.Table, sqlgraph.NewFieldSpec(irtrun.FieldID, field.TypeString))
	if ps := ird.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ird.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ird.mutation.done = true
	return affected, err
}

// IrtRunDeleteOne is the builder for deleting a single IrtRun entity.
type IrtRunDeleteOne struct {
	ird *IrtRunDelete
}

// Where appends a list predicates to the IrtRunDelete builder.
func (irdo *IrtRunDeleteOne) Where(ps ...predicate.IrtRun) *IrtRunDeleteOne {
	irdo.ird.mutation.Where(ps...)
	return irdo
}

// Exec executes the deletion query.
func (irdo *IrtRunDeleteOne) Exec(ctx context.Context) error {
	n, err := irdo.ird.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{irtrun.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (irdo *IrtRunDeleteOne) ExecX(ctx context.Context) {
	if err := irdo.Exec(ctx); err != nil {
		panic(err)
	}
}
