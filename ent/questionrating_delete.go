// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/predicate"
	"github.com/adaptly/calibrant/ent/questionrating"
)

// QuestionRatingDelete is the builder for deleting a QuestionRating entity.
type QuestionRatingDelete struct {
	config
	hooks    []Hook
	mutation *QuestionRatingMutation
}

// Where appends a list predicates to the QuestionRatingDelete builder.
func (qrd *QuestionRatingDelete) Where(ps ...predicate.QuestionRating) *QuestionRatingDelete {
	qrd.mutation.Where(ps...)
	return qrd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qrd *QuestionRatingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qrd.sqlExec, qrd.mutation, qrd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qrd *QuestionRatingDelete) ExecX(ctx context.Context) int {
	n, err := qrd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qrd *QuestionRatingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(questionrating.Table, sqlgraph.NewFieldSpec(questionrating.FieldID, field.TypeInt))
	if ps := qrd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qrd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qrd.mutation.done = true
	return affected, err
}

// QuestionRatingDeleteOne is the builder for deleting a single QuestionRating entity.
type QuestionRatingDeleteOne struct {
	qrd *QuestionRatingDelete
}

// Where appends a list predicates to the QuestionRatingDelete builder.
func (qrdo *QuestionRatingDeleteOne) Where(ps ...predicate.QuestionRating) *QuestionRatingDeleteOne {
	qrdo.qrd.mutation.Where(ps...)
	return qrdo
}

// Exec executes the deletion query.
func (qrdo *QuestionRatingDeleteOne) Exec(ctx context.Context) error {
	n, err := qrdo.qrd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{questionrating.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qrdo *QuestionRatingDeleteOne) ExecX(ctx context.Context) {
	if err := qrdo.Exec(ctx); err != nil {
		panic(err)
	}
}
