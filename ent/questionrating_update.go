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
	"github.com/adaptly/calibrant/ent/predicate"
	"github.com/adaptly/calibrant/ent/questionrating"
)

// QuestionRatingUpdate is the builder for updating QuestionRating entities.
type QuestionRatingUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionRatingMutation
}

// Where appends a list predicates to the QuestionRatingUpdate builder.
func (qru *QuestionRatingUpdate) Where(ps ...predicate.QuestionRating) *QuestionRatingUpdate {
	qru.mutation.Where(ps...)
	return qru
}

// SetRating sets the "rating" field.
func (qru *QuestionRatingUpdate) SetRating(f float64) *QuestionRatingUpdate {
	qru.mutation.ResetRating()
	qru.mutation.SetRating(f)
	return qru
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (qru *QuestionRatingUpdate) SetNillableRating(f *float64) *QuestionRatingUpdate {
	if f != nil {
		qru.SetRating(*f)
	}
	return qru
}

// AddRating adds f to the "rating" field.
func (qru *QuestionRatingUpdate) AddRating(f float64) *QuestionRatingUpdate {
	qru.mutation.AddRating(f)
	return qru
}

// SetUncertainty sets the "uncertainty" field.
func (qru *QuestionRatingUpdate) SetUncertainty(f float64) *QuestionRatingUpdate {
	qru.mutation.ResetUncertainty()
	qru.mutation.SetUncertainty(f)
	return qru
}

// SetNillableUncertainty sets the "uncertainty" field if the given value is not nil.
func (qru *QuestionRatingUpdate) SetNillableUncertainty(f *float64) *QuestionRatingUpdate {
	if f != nil {
		qru.SetUncertainty(*f)
	}
	return qru
}

// AddUncertainty adds f to the "uncertainty" field.
func (qru *QuestionRatingUpdate) AddUncertainty(f float64) *QuestionRatingUpdate {
	qru.mutation.AddUncertainty(f)
	return qru
}

// SetNAttempts sets the "n_attempts" field.
func (qru *QuestionRatingUpdate) SetNAttempts(i int) *QuestionRatingUpdate {
	qru.mutation.ResetNAttempts()
	qru.mutation.SetNAttempts(i)
	return qru
}

// SetNillableNAttempts sets the "n_attempts" field if the given value is not nil.
func (qru *QuestionRatingUpdate) SetNillableNAttempts(i *int) *QuestionRatingUpdate {
	if i != nil {
		qru.SetNAttempts(*i)
	}
	return qru
}

// AddNAttempts adds i to the "n_attempts" field.
func (qru *QuestionRatingUpdate) AddNAttempts(i int) *QuestionRatingUpdate {
	qru.mutation.AddNAttempts(i)
	return qru
}

// SetLastSeenAt sets the "last_seen_at" field.
func (qru *QuestionRatingUpdate) SetLastSeenAt(t time.Time) *QuestionRatingUpdate {
	qru.mutation.SetLastSeenAt(t)
	return qru
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (qru *QuestionRatingUpdate) SetNillableLastSeenAt(t *time.Time) *QuestionRatingUpdate {
	if t != nil {
		qru.SetLastSeenAt(*t)
	}
	return qru
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (qru *QuestionRatingUpdate) ClearLastSeenAt() *QuestionRatingUpdate {
	qru.mutation.ClearLastSeenAt()
	return qru
}

// SetVersion sets the "version" field.
func (qru *QuestionRatingUpdate) SetVersion(i int64) *QuestionRatingUpdate {
	qru.mutation.ResetVersion()
	qru.mutation.SetVersion(i)
	return qru
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (qru *QuestionRatingUpdate) SetNillableVersion(i *int64) *QuestionRatingUpdate {
	if i != nil {
		qru.SetVersion(*i)
	}
	return qru
}

// AddVersion adds i to the "version" field.
func (qru *QuestionRatingUpdate) AddVersion(i int64) *QuestionRatingUpdate {
	qru.mutation.AddVersion(i)
	return qru
}

// Mutation returns the QuestionRatingMutation object of the builder.
func (qru *QuestionRatingUpdate) Mutation() *QuestionRatingMutation {
	return qru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qru *QuestionRatingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qru.sqlSave, qru.mutation, qru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qru *QuestionRatingUpdate) SaveX(ctx context.Context) int {
	affected, err := qru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qru *QuestionRatingUpdate) Exec(ctx context.Context) error {
	_, err := qru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qru *QuestionRatingUpdate) ExecX(ctx context.Context) {
	if err := qru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (qru *QuestionRatingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionrating.Table, questionrating.Columns, sqlgraph.NewFieldSpec(questionrating.FieldID, field.TypeInt))
	if ps := qru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qru.mutation.Rating(); ok {
		_spec.SetField(questionrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := qru.mutation.AddedRating(); ok {
		_spec.AddField(questionrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := qru.mutation.Uncertainty(); ok {
		_spec.SetField(questionrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := qru.mutation.AddedUncertainty(); ok {
		_spec.AddField(questionrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := qru.mutation.NAttempts(); ok {
		_spec.SetField(questionrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := qru.mutation.AddedNAttempts(); ok {
		_spec.AddField(questionrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := qru.mutation.LastSeenAt(); ok {
		_spec.SetField(questionrating.FieldLastSeenAt, field.TypeTime, value)
	}
	if qru.mutation.LastSeenAtCleared() {
		_spec.ClearField(questionrating.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := qru.mutation.Version(); ok {
		_spec.SetField(questionrating.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := qru.mutation.AddedVersion(); ok {
		_spec.AddField(questionrating.FieldVersion, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qru.mutation.done = true
	return n, nil
}

// QuestionRatingUpdateOne is the builder for updating a single QuestionRating entity.
type QuestionRatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionRatingMutation
}

// SetRating sets the "rating" field.
func (qruo *QuestionRatingUpdateOne) SetRating(f float64) *QuestionRatingUpdateOne {
	qruo.mutation.ResetRating()
	qruo.mutation.SetRating(f)
	return qruo
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (qruo *QuestionRatingUpdateOne) SetNillableRating(f *float64) *QuestionRatingUpdateOne {
	if f != nil {
		qruo.SetRating(*f)
	}
	return qruo
}

// AddRating adds f to the "rating" field.
func (qruo *QuestionRatingUpdateOne) AddRating(f float64) *QuestionRatingUpdateOne {
	qruo.mutation.AddRating(f)
	return qruo
}

// SetUncertainty sets the "uncertainty" field.
func (qruo *QuestionRatingUpdateOne) SetUncertainty(f float64) *QuestionRatingUpdateOne {
	qruo.mutation.ResetUncertainty()
	qruo.mutation.SetUncertainty(f)
	return qruo
}

// SetNillableUncertainty sets the "uncertainty" field if the given value is not nil.
func (qruo *QuestionRatingUpdateOne) SetNillableUncertainty(f *float64) *QuestionRatingUpdateOne {
	if f != nil {
		qruo.SetUncertainty(*f)
	}
	return qruo
}

// AddUncertainty adds f to the "uncertainty" field.
func (qruo *QuestionRatingUpdateOne) AddUncertainty(f float64) *QuestionRatingUpdateOne {
	qruo.mutation.AddUncertainty(f)
	return qruo
}

// SetNAttempts sets the "n_attempts" field.
func (qruo *QuestionRatingUpdateOne) SetNAttempts(i int) *QuestionRatingUpdateOne {
	qruo.mutation.ResetNAttempts()
	qruo.mutation.SetNAttempts(i)
	return qruo
}

// SetNillableNAttempts sets the "n_attempts" field if the given value is not nil.
func (qruo *QuestionRatingUpdateOne) SetNillableNAttempts(i *int) *QuestionRatingUpdateOne {
	if i != nil {
		qruo.SetNAttempts(*i)
	}
	return qruo
}

// AddNAttempts adds i to the "n_attempts" field.
func (qruo *QuestionRatingUpdateOne) AddNAttempts(i int) *QuestionRatingUpdateOne {
	qruo.mutation.AddNAttempts(i)
	return qruo
}

// SetLastSeenAt sets the "last_seen_at" field.
func (qruo *QuestionRatingUpdateOne) SetLastSeenAt(t time.Time) *QuestionRatingUpdateOne {
	qruo.mutation.SetLastSeenAt(t)
	return qruo
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (qruo *QuestionRatingUpdateOne) SetNillableLastSeenAt(t *time.Time) *QuestionRatingUpdateOne {
	if t != nil {
		qruo.SetLastSeenAt(*t)
	}
	return qruo
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (qruo *QuestionRatingUpdateOne) ClearLastSeenAt() *QuestionRatingUpdateOne {
	qruo.mutation.ClearLastSeenAt()
	return qruo
}

// SetVersion sets the "version" field.
func (qruo *QuestionRatingUpdateOne) SetVersion(i int64) *QuestionRatingUpdateOne {
	qruo.mutation.ResetVersion()
	qruo.mutation.SetVersion(i)
	return qruo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (qruo *QuestionRatingUpdateOne) SetNillableVersion(i *int64) *QuestionRatingUpdateOne {
	if i != nil {
		qruo.SetVersion(*i)
	}
	return qruo
}

// AddVersion adds i to the "version" field.
func (qruo *QuestionRatingUpdateOne) AddVersion(i int64) *QuestionRatingUpdateOne {
	qruo.mutation.AddVersion(i)
	return qruo
}

// Mutation returns the QuestionRatingMutation object of the builder.
func (qruo *QuestionRatingUpdateOne) Mutation() *QuestionRatingMutation {
	return qruo.mutation
}

// Where appends a list predicates to the QuestionRatingUpdate builder.
func (qruo *QuestionRatingUpdateOne) Where(ps ...predicate.QuestionRating) *QuestionRatingUpdateOne {
	qruo.mutation.Where(ps...)
	return qruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qruo *QuestionRatingUpdateOne) Select(field string, fields ...string) *QuestionRatingUpdateOne {
	qruo.fields = append([]string{field}, fields...)
	return qruo
}

// Save executes the query and returns the updated QuestionRating entity.
func (qruo *QuestionRatingUpdateOne) Save(ctx context.Context) (*QuestionRating, error) {
	return withHooks(ctx, qruo.sqlSave, qruo.mutation, qruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qruo *QuestionRatingUpdateOne) SaveX(ctx context.Context) *QuestionRating {
	node, err := qruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qruo *QuestionRatingUpdateOne) Exec(ctx context.Context) error {
	_, err := qruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qruo *QuestionRatingUpdateOne) ExecX(ctx context.Context) {
	if err := qruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (qruo *QuestionRatingUpdateOne) sqlSave(ctx context.Context) (_node *QuestionRating, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionrating.Table, questionrating.Columns, sqlgraph.NewFieldSpec(questionrating.FieldID, field.TypeInt))
	id, ok := qruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionRating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionrating.FieldID)
		for _, f := range fields {
			if !questionrating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionrating.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qruo.mutation.Rating(); ok {
		_spec.SetField(questionrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := qruo.mutation.AddedRating(); ok {
		_spec.AddField(questionrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := qruo.mutation.Uncertainty(); ok {
		_spec.SetField(questionrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := qruo.mutation.AddedUncertainty(); ok {
		_spec.AddField(questionrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := qruo.mutation.NAttempts(); ok {
		_spec.SetField(questionrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := qruo.mutation.AddedNAttempts(); ok {
		_spec.AddField(questionrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := qruo.mutation.LastSeenAt(); ok {
		_spec.SetField(questionrating.FieldLastSeenAt, field.TypeTime, value)
	}
	if qruo.mutation.LastSeenAtCleared() {
		_spec.ClearField(questionrating.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := qruo.mutation.Version(); ok {
		_spec.SetField(questionrating.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := qruo.mutation.AddedVersion(); ok {
		_spec.AddField(questionrating.FieldVersion, field.TypeInt64, value)
	}
	_node = &QuestionRating{config: qruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qruo.mutation.done = true
	return _node, nil
}
