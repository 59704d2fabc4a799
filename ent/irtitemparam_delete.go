// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtItemParamDelete is the builder for deleting a IrtItemParam entity.
type IrtItemParamDelete struct {
	config
	hooks    []Hook
	mutation *IrtItemParamMutation
}

// Where appends a list predicates to the IrtItemParamDelete builder.
func (iipd *IrtItemParamDelete) Where(ps ...predicate.IrtItemParam) *IrtItemParamDelete {
	iipd.mutation.Where(ps...)
	return iipd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (iipd *IrtItemParamDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, iipd.sqlExec, iipd.mutation, iipd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (iipd *IrtItemParamDelete) ExecX(ctx context.Context) int {
	n, err := iipd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (iipd *IrtItemParamDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(irtitemparam.Table, sqlgraph.NewFieldSpec(irtitemparam.FieldID, field.TypeInt))
	if ps := iipd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, iipd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	iipd.mutation.done = true
	return affected, err
}

// IrtItemParamDeleteOne is the builder for deleting a single IrtItemParam entity.
type IrtItemParamDeleteOne struct {
	iipd *IrtItemParamDelete
}

// Where appends a list predicates to the IrtItemParamDelete builder.
func (iipdo *IrtItemParamDeleteOne) Where(ps ...predicate.IrtItemParam) *IrtItemParamDeleteOne {
	iipdo.iipd.mutation.Where(ps...)
	return iipdo
}

// Exec executes the deletion query.
func (iipdo *IrtItemParamDeleteOne) Exec(ctx context.Context) error {
	n, err := iipdo.iipd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{irtitemparam.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (iipdo *IrtItemParamDeleteOne) ExecX(ctx context.Context) {
	if err := iipdo.Exec(ctx); err != nil {
		panic(err)
	}
}
