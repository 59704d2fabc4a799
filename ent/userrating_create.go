// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/userrating"
)

// UserRatingCreate is the builder for creating a UserRating entity.
type UserRatingCreate struct {
	config
	mutation *UserRatingMutation
	hooks    []Hook
}

// SetEntityID sets the "entity_id" field.
func (urc *UserRatingCreate) SetEntityID(s string) *UserRatingCreate {
	urc.mutation.SetEntityID(s)
	return urc
}

// SetScopeType sets the "scope_type" field.
func (urc *UserRatingCreate) SetScopeType(ut userrating.ScopeType) *UserRatingCreate {
	urc.mutation.SetScopeType(ut)
	return urc
}

// SetScopeID sets the "scope_id" field.
func (urc *UserRatingCreate) SetScopeID(s string) *UserRatingCreate {
	urc.mutation.SetScopeID(s)
	return urc
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (urc *UserRatingCreate) SetNillableScopeID(s *string) *UserRatingCreate {
	if s != nil {
		urc.SetScopeID(*s)
	}
	return urc
}

// SetRating sets the "rating" field.
func (urc *UserRatingCreate) SetRating(f float64) *UserRatingCreate {
	urc.mutation.SetRating(f)
	return urc
}

// SetUncertainty sets the "uncertainty" field.
func (urc *UserRatingCreate) SetUncertainty(f float64) *UserRatingCreate {
	urc.mutation.SetUncertainty(f)
	return urc
}

// SetNAttempts sets the "n_attempts" field.
func (urc *UserRatingCreate) SetNAttempts(i int) *UserRatingCreate {
	urc.mutation.SetNAttempts(i)
	return urc
}

// SetNillableNAttempts sets the "n_attempts" field if the given value is not nil.
func (urc *UserRatingCreate) SetNillableNAttempts(i *int) *UserRatingCreate {
	if i != nil {
		urc.SetNAttempts(*i)
	}
	return urc
}

// SetLastSeenAt sets the "last_seen_at" field.
func (urc *UserRatingCreate) SetLastSeenAt(t time.Time) *UserRatingCreate {
	urc.mutation.SetLastSeenAt(t)
	return urc
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (urc *UserRatingCreate) SetNillableLastSeenAt(t *time.Time) *UserRatingCreate {
	if t != nil {
		urc.SetLastSeenAt(*t)
	}
	return urc
}

// SetVersion sets the "version" field.
func (urc *UserRatingCreate) SetVersion(i int64) *UserRatingCreate {
	urc.mutation.SetVersion(i)
	return urc
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (urc *UserRatingCreate) SetNillableVersion(i *int64) *UserRatingCreate {
	if i != nil {
		urc.SetVersion(*i)
	}
	return urc
}

// Mutation returns the UserRatingMutation object of the builder.
func (urc *UserRatingCreate) Mutation() *UserRatingMutation {
	return urc.mutation
}

// Save creates the UserRating in the database.
func (urc *UserRatingCreate) Save(ctx context.Context) (*UserRating, error) {
	urc.defaults()
	return withHooks(ctx, urc.sqlSave, urc.mutation, urc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (urc *UserRatingCreate) SaveX(ctx context.Context) *UserRating {
	v, err := urc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (urc *UserRatingCreate) Exec(ctx context.Context) error {
	_, err := urc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (urc *UserRatingCreate) ExecX(ctx context.Context) {
	if err := urc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (urc *UserRatingCreate) defaults() {
	if _, ok := urc.mutation.ScopeID(); !ok {
		v := userrating.DefaultScopeID
		urc.mutation.SetScopeID(v)
	}
	if _, ok := urc.mutation.NAttempts(); !ok {
		v := userrating.DefaultNAttempts
		urc.mutation.SetNAttempts(v)
	}
	if _, ok := urc.mutation.Version(); !ok {
		v := userrating.DefaultVersion
		urc.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (urc *UserRatingCreate) check() error {
	if _, ok := urc.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "UserRating.entity_id"`)}
	}
	if v, ok := urc.mutation.EntityID(); ok {
		if err := userrating.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "UserRating.entity_id": %w`, err)}
		}
	}
	if _, ok := urc.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "UserRating.scope_type"`)}
	}
	if v, ok := urc.mutation.ScopeType(); ok {
		if err := userrating.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "UserRating.scope_type": %w`, err)}
		}
	}
	if _, ok := urc.mutation.ScopeID(); !ok {
		return &ValidationError{Name: "scope_id", err: errors.New(`ent: missing required field "UserRating.scope_id"`)}
	}
	if _, ok := urc.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "UserRating.rating"`)}
	}
	if _, ok := urc.mutation.Uncertainty(); !ok {
		return &ValidationError{Name: "uncertainty", err: errors.New(`ent: missing required field "UserRating.uncertainty"`)}
	}
	if _, ok := urc.mutation.NAttempts(); !ok {
		return &ValidationError{Name: "n_attempts", err: errors.New(`ent: missing required field "UserRating.n_attempts"`)}
	}
	if _, ok := urc.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "UserRating.version"`)}
	}
	return nil
}

func (urc *UserRatingCreate) sqlSave(ctx context.Context) (*UserRating, error) {
	if err := urc.check(); err != nil {
		return nil, err
	}
	_node, _spec := urc.createSpec()
	if err := sqlgraph.CreateNode(ctx, urc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	urc.mutation.id = &_node.ID
	urc.mutation.done = true
	return _node, nil
}

func (urc *UserRatingCreate) createSpec() (*UserRating, *sqlgraph.CreateSpec) {
	var (
		_node = &UserRating{config: urc.config}
		_spec = sqlgraph.NewCreateSpec(userrating.Table, sqlgraph.NewFieldSpec(userrating.FieldID, field.TypeInt))
	)
	if value, ok := urc.mutation.EntityID(); ok {
		_spec.SetField(userrating.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := urc.mutation.ScopeType(); ok {
		_spec.SetField(userrating.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := urc.mutation.ScopeID(); ok {
		_spec.SetField(userrating.FieldScopeID, field.TypeString, value)
		_node.ScopeID = value
	}
	if value, ok := urc.mutation.Rating(); ok {
		_spec.SetField(userrating.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := urc.mutation.Uncertainty(); ok {
		_spec.SetField(userrating.FieldUncertainty, field.TypeFloat64, value)
		_node.Uncertainty = value
	}
	if value, ok := urc.mutation.NAttempts(); ok {
		_spec.SetField(userrating.FieldNAttempts, field.TypeInt, value)
		_node.NAttempts = value
	}
	if value, ok := urc.mutation.LastSeenAt(); ok {
		_spec.SetField(userrating.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if value, ok := urc.mutation.Version(); ok {
		_spec.SetField(userrating.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// UserRatingCreateBulk is the builder for creating many UserRating entities in bulk.
type UserRatingCreateBulk struct {
	config
	err      error
	builders []*UserRatingCreate
}

// Save creates the UserRating entities in the database.
func (urcb *UserRatingCreateBulk) Save(ctx context.Context) ([]*UserRating, error) {
	if urcb.err != nil {
		return nil, urcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(urcb.builders))
	nodes := make([]*UserRating, len(urcb.builders))
	mutators := make([]Mutator, len(urcb.builders))
	for i := range urcb.builders {
		func(i int, root context.Context) {
			builder := urcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserRatingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, urcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, urcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, urcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (urcb *UserRatingCreateBulk) SaveX(ctx context.Context) []*UserRating {
	v, err := urcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (urcb *UserRatingCreateBulk) Exec(ctx context.Context) error {
	_, err := urcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (urcb *UserRatingCreateBulk) ExecX(ctx context.Context) {
	if err := urcb.Exec(ctx); err != nil {
		panic(err)
	}
}
