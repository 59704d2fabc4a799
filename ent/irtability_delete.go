// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtAbilityDelete is the builder for deleting a IrtAbility entity.
type IrtAbilityDelete struct {
	config
	hooks    []Hook
	mutation *IrtAbilityMutation
}

// Where appends a list predicates to the IrtAbilityDelete builder.
func (iad *IrtAbilityDelete) Where(ps ...predicate.IrtAbility) *IrtAbilityDelete {
	iad.mutation.Where(ps...)
	return iad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (iad *IrtAbilityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, iad.sqlExec, iad.mutation, iad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (iad *IrtAbilityDelete) ExecX(ctx context.Context) int {
	n, err := iad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (iad *IrtAbilityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(irtability.Table, sqlgraph.NewFieldSpec(irtability.FieldID, field.TypeInt))
	if ps := iad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, iad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	iad.mutation.done = true
	return affected, err
}

// IrtAbilityDeleteOne is the builder for deleting a single IrtAbility entity.
type IrtAbilityDeleteOne struct {
	iad *IrtAbilityDelete
}

// Where appends a list predicates to the IrtAbilityDelete builder.
func (iado *IrtAbilityDeleteOne) Where(ps ...predicate.IrtAbility) *IrtAbilityDeleteOne {
	iado.iad.mutation.Where(ps...)
	return iado
}

// Exec executes the deletion query.
func (iado *IrtAbilityDeleteOne) Exec(ctx context.Context) error {
	n, err := iado.iad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{irtability.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (iado *IrtAbilityDeleteOne) ExecX(ctx context.Context) {
	if err := iado.Exec(ctx); err != nil {
		panic(err)
	}
}
