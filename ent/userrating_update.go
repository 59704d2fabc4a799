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
	"github.com/adaptly/calibrant/ent/userrating"
)

// UserRatingUpdate is the builder for updating UserRating entities.
type UserRatingUpdate struct {
	config
	hooks    []Hook
	mutation *UserRatingMutation
}

// Where appends a list predicates to the UserRatingUpdate builder.
func (uru *UserRatingUpdate) Where(ps ...predicate.UserRating) *UserRatingUpdate {
	uru.mutation.Where(ps...)
	return uru
}

// SetRating sets the "rating" field.
func (uru *UserRatingUpdate) SetRating(f float64) *UserRatingUpdate {
	uru.mutation.ResetRating()
	uru.mutation.SetRating(f)
	return uru
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (uru *UserRatingUpdate) SetNillableRating(f *float64) *UserRatingUpdate {
	if f != nil {
		uru.SetRating(*f)
	}
	return uru
}

// AddRating adds f to the "rating" field.
func (uru *UserRatingUpdate) AddRating(f float64) *UserRatingUpdate {
	uru.mutation.AddRating(f)
	return uru
}

// SetUncertainty sets the "uncertainty" field.
func (uru *UserRatingUpdate) SetUncertainty(f float64) *UserRatingUpdate {
	uru.mutation.ResetUncertainty()
	uru.mutation.SetUncertainty(f)
	return uru
}

// SetNillableUncertainty sets the "uncertainty" field if the given value is not nil.
func (uru *UserRatingUpdate) SetNillableUncertainty(f *float64) *UserRatingUpdate {
	if f != nil {
		uru.SetUncertainty(*f)
	}
	return uru
}

// AddUncertainty adds f to the "uncertainty" field.
func (uru *UserRatingUpdate) AddUncertainty(f float64) *UserRatingUpdate {
	uru.mutation.AddUncertainty(f)
	return uru
}

// SetNAttempts sets the "n_attempts" field.
func (uru *UserRatingUpdate) SetNAttempts(i int) *UserRatingUpdate {
	uru.mutation.ResetNAttempts()
	uru.mutation.SetNAttempts(i)
	return uru
}

// SetNillableNAttempts sets the "n_attempts" field if the given value is not nil.
func (uru *UserRatingUpdate) SetNillableNAttempts(i *int) *UserRatingUpdate {
	if i != nil {
		uru.SetNAttempts(*i)
	}
	return uru
}

// AddNAttempts adds i to the "n_attempts" field.
func (uru *UserRatingUpdate) AddNAttempts(i int) *UserRatingUpdate {
	uru.mutation.AddNAttempts(i)
	return uru
}

// SetLastSeenAt sets the "last_seen_at" field.
func (uru *UserRatingUpdate) SetLastSeenAt(t time.Time) *UserRatingUpdate {
	uru.mutation.SetLastSeenAt(t)
	return uru
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (uru *UserRatingUpdate) SetNillableLastSeenAt(t *time.Time) *UserRatingUpdate {
	if t != nil {
		uru.SetLastSeenAt(*t)
	}
	return uru
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (uru *UserRatingUpdate) ClearLastSeenAt() *UserRatingUpdate {
	uru.mutation.ClearLastSeenAt()
	return uru
}

// SetVersion sets the "version" field.
func (uru *UserRatingUpdate) SetVersion(i int64) *UserRatingUpdate {
	uru.mutation.ResetVersion()
	uru.mutation.SetVersion(i)
	return uru
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (uru *UserRatingUpdate) SetNillableVersion(i *int64) *UserRatingUpdate {
	if i != nil {
		uru.SetVersion(*i)
	}
	return uru
}

// AddVersion adds i to the "version" field.
func (uru *UserRatingUpdate) AddVersion(i int64) *UserRatingUpdate {
	uru.mutation.AddVersion(i)
	return uru
}

// Mutation returns the UserRatingMutation object of the builder.
func (uru *UserRatingUpdate) Mutation() *UserRatingMutation {
	return uru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uru *UserRatingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, uru.sqlSave, uru.mutation, uru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uru *UserRatingUpdate) SaveX(ctx context.Context) int {
	affected, err := uru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uru *UserRatingUpdate) Exec(ctx context.Context) error {
	_, err := uru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uru *UserRatingUpdate) ExecX(ctx context.Context) {
	if err := uru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (uru *UserRatingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userrating.Table, userrating.Columns, sqlgraph.NewFieldSpec(userrating.FieldID, field.TypeInt))
	if ps := uru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uru.mutation.Rating(); ok {
		_spec.SetField(userrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.AddedRating(); ok {
		_spec.AddField(userrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.Uncertainty(); ok {
		_spec.SetField(userrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.AddedUncertainty(); ok {
		_spec.AddField(userrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := uru.mutation.NAttempts(); ok {
		_spec.SetField(userrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := uru.mutation.AddedNAttempts(); ok {
		_spec.AddField(userrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := uru.mutation.LastSeenAt(); ok {
		_spec.SetField(userrating.FieldLastSeenAt, field.TypeTime, value)
	}
	if uru.mutation.LastSeenAtCleared() {
		_spec.ClearField(userrating.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := uru.mutation.Version(); ok {
		_spec.SetField(userrating.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := uru.mutation.AddedVersion(); ok {
		_spec.AddField(userrating.FieldVersion, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uru.mutation.done = true
	return n, nil
}

// UserRatingUpdateOne is the builder for updating a single UserRating entity.
type UserRatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserRatingMutation
}

// SetRating sets the "rating" field.
func (uruo *UserRatingUpdateOne) SetRating(f float64) *UserRatingUpdateOne {
	uruo.mutation.ResetRating()
	uruo.mutation.SetRating(f)
	return uruo
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (uruo *UserRatingUpdateOne) SetNillableRating(f *float64) *UserRatingUpdateOne {
	if f != nil {
		uruo.SetRating(*f)
	}
	return uruo
}

// AddRating adds f to the "rating" field.
func (uruo *UserRatingUpdateOne) AddRating(f float64) *UserRatingUpdateOne {
	uruo.mutation.AddRating(f)
	return uruo
}

// SetUncertainty sets the "uncertainty" field.
func (uruo *UserRatingUpdateOne) SetUncertainty(f float64) *UserRatingUpdateOne {
	uruo.mutation.ResetUncertainty()
	uruo.mutation.SetUncertainty(f)
	return uruo
}

// SetNillableUncertainty sets the "uncertainty" field if the given value is not nil.
func (uruo *UserRatingUpdateOne) SetNillableUncertainty(f *float64) *UserRatingUpdateOne {
	if f != nil {
		uruo.SetUncertainty(*f)
	}
	return uruo
}

// AddUncertainty adds f to the "uncertainty" field.
func (uruo *UserRatingUpdateOne) AddUncertainty(f float64) *UserRatingUpdateOne {
	uruo.mutation.AddUncertainty(f)
	return uruo
}

// SetNAttempts sets the "n_attempts" field.
func (uruo *UserRatingUpdateOne) SetNAttempts(i int) *UserRatingUpdateOne {
	uruo.mutation.ResetNAttempts()
	uruo.mutation.SetNAttempts(i)
	return uruo
}

// SetNillableNAttempts sets the "n_attempts" field if the given value is not nil.
func (uruo *UserRatingUpdateOne) SetNillableNAttempts(i *int) *UserRatingUpdateOne {
	if i != nil {
		uruo.SetNAttempts(*i)
	}
	return uruo
}

// AddNAttempts adds i to the "n_attempts" field.
func (uruo *UserRatingUpdateOne) AddNAttempts(i int) *UserRatingUpdateOne {
	uruo.mutation.AddNAttempts(i)
	return uruo
}

// SetLastSeenAt sets the "last_seen_at" field.
func (uruo *UserRatingUpdateOne) SetLastSeenAt(t time.Time) *UserRatingUpdateOne {
	uruo.mutation.SetLastSeenAt(t)
	return uruo
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (uruo *UserRatingUpdateOne) SetNillableLastSeenAt(t *time.Time) *UserRatingUpdateOne {
	if t != nil {
		uruo.SetLastSeenAt(*t)
	}
	return uruo
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (uruo *UserRatingUpdateOne) ClearLastSeenAt() *UserRatingUpdateOne {
	uruo.mutation.ClearLastSeenAt()
	return uruo
}

// SetVersion sets the "version" field.
func (uruo *UserRatingUpdateOne) SetVersion(i int64) *UserRatingUpdateOne {
	uruo.mutation.ResetVersion()
	uruo.mutation.SetVersion(i)
	return uruo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (uruo *UserRatingUpdateOne) SetNillableVersion(i *int64) *UserRatingUpdateOne {
	if i != nil {
		uruo.SetVersion(*i)
	}
	return uruo
}

// AddVersion adds i to the "version" field.
func (uruo *UserRatingUpdateOne) AddVersion(i int64) *UserRatingUpdateOne {
	uruo.mutation.AddVersion(i)
	return uruo
}

// Mutation returns the UserRatingMutation object of the builder.
func (uruo *UserRatingUpdateOne) Mutation() *UserRatingMutation {
	return uruo.mutation
}

// Where appends a list predicates to the UserRatingUpdate builder.
func (uruo *UserRatingUpdateOne) Where(ps ...predicate.UserRating) *UserRatingUpdateOne {
	uruo.mutation.Where(ps...)
	return uruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uruo *UserRatingUpdateOne) Select(field string, fields ...string) *UserRatingUpdateOne {
	uruo.fields = append([]string{field}, fields...)
	return uruo
}

// Save executes the query and returns the updated UserRating entity.
func (uruo *UserRatingUpdateOne) Save(ctx context.Context) (*UserRating, error) {
	return withHooks(ctx, uruo.sqlSave, uruo.mutation, uruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uruo *UserRatingUpdateOne) SaveX(ctx context.Context) *UserRating {
	node, err := uruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uruo *UserRatingUpdateOne) Exec(ctx context.Context) error {
	_, err := uruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uruo *UserRatingUpdateOne) ExecX(ctx context.Context) {
	if err := uruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (uruo *UserRatingUpdateOne) sqlSave(ctx context.Context) (_node *UserRating, err error) {
	_spec := sqlgraph.NewUpdateSpec(userrating.Table, userrating.Columns, sqlgraph.NewFieldSpec(userrating.FieldID, field.TypeInt))
	id, ok := uruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserRating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userrating.FieldID)
		for _, f := range fields {
			if !userrating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userrating.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uruo.mutation.Rating(); ok {
		_spec.SetField(userrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.AddedRating(); ok {
		_spec.AddField(userrating.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.Uncertainty(); ok {
		_spec.SetField(userrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.AddedUncertainty(); ok {
		_spec.AddField(userrating.FieldUncertainty, field.TypeFloat64, value)
	}
	if value, ok := uruo.mutation.NAttempts(); ok {
		_spec.SetField(userrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := uruo.mutation.AddedNAttempts(); ok {
		_spec.AddField(userrating.FieldNAttempts, field.TypeInt, value)
	}
	if value, ok := uruo.mutation.LastSeenAt(); ok {
		_spec.SetField(userrating.FieldLastSeenAt, field.TypeTime, value)
	}
	if uruo.mutation.LastSeenAtCleared() {
		_spec.ClearField(userrating.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := uruo.mutation.Version(); ok {
		_spec.SetField(userrating.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := uruo.mutation.AddedVersion(); ok {
		_spec.AddField(userrating.FieldVersion, field.TypeInt64, value)
	}
	_node = &UserRating{config: uruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uruo.mutation.done = true
	return _node, nil
}
