// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/questionrating"
)

// QuestionRatingCreate is the builder for creating a QuestionRating entity.
type QuestionRatingCreate struct {
	config
	mutation *QuestionRatingMutation
	hooks    []Hook
}

// SetEntityID sets the "entity_id" field.
func (qrc *QuestionRatingCreate) SetEntityID(s string) *QuestionRatingCreate {
	qrc.mutation.SetEntityID(s)
	return qrc
}

// SetScopeType sets the "scope_type" field.
func (qrc *QuestionRatingCreate) SetScopeType(qt questionrating.ScopeType) *QuestionRatingCreate {
	qrc.mutation.SetScopeType(qt)
	return qrc
}

// SetScopeID sets the "scope_id" field.
func (qrc *QuestionRatingCreate) SetScopeID(s string) *QuestionRatingCreate {
	qrc.mutation.SetScopeID(s)
	return qrc
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (qrc *QuestionRatingCreate) SetNillableScopeID(s *string) *QuestionRatingCreate {
	if s != nil {
		qrc.SetScopeID(*s)
	}
	return qrc
}

// SetRating sets the "rating" field.
func (qrc *QuestionRatingCreate) SetRating(f float64) *QuestionRatingCreate {
	qrc.mutation.SetRating(f)
	return qrc
}

// SetUncertainty sets the "uncertainty" field.
func (qrc *QuestionRatingCreate) SetUncertainty(f float64) *QuestionRatingCreate {
	qrc.mutation.SetUncertainty(f)
	return qrc
}

// SetNAttempts sets the "n_attempts" field.
func (qrc *QuestionRatingCreate) SetNAttempts(i int) *QuestionRatingCreate {
	qrc.mutation.SetNAttempts(i)
	return qrc
}

// SetNillableNAttempts sets the "n_attempts" field if the given value is not nil.
func (qrc *QuestionRatingCreate) SetNillableNAttempts(i *int) *QuestionRatingCreate {
	if i != nil {
		qrc.SetNAttempts(*i)
	}
	return qrc
}

// SetLastSeenAt sets the "last_seen_at" field.
func (qrc *QuestionRatingCreate) SetLastSeenAt(t time.Time) *QuestionRatingCreate {
	qrc.mutation.SetLastSeenAt(t)
	return qrc
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (qrc *QuestionRatingCreate) SetNillableLastSeenAt(t *time.Time) *QuestionRatingCreate {
	if t != nil {
		qrc.SetLastSeenAt(*t)
	}
	return qrc
}

// SetVersion sets the "version" field.
func (qrc *QuestionRatingCreate) SetVersion(i int64) *QuestionRatingCreate {
	qrc.mutation.SetVersion(i)
	return qrc
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (qrc *QuestionRatingCreate) SetNillableVersion(i *int64) *QuestionRatingCreate {
	if i != nil {
		qrc.SetVersion(*i)
	}
	return qrc
}

// Mutation returns the QuestionRatingMutation object of the builder.
func (qrc *QuestionRatingCreate) Mutation() *QuestionRatingMutation {
	return qrc.mutation
}

// Save creates the QuestionRating in the database.
func (qrc *QuestionRatingCreate) Save(ctx context.Context) (*QuestionRating, error) {
	qrc.defaults()
	return withHooks(ctx, qrc.sqlSave, qrc.mutation, qrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qrc *QuestionRatingCreate) SaveX(ctx context.Context) *QuestionRating {
	v, err := qrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qrc *QuestionRatingCreate) Exec(ctx context.Context) error {
	_, err := qrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qrc *QuestionRatingCreate) ExecX(ctx context.Context) {
	if err := qrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qrc *QuestionRatingCreate) defaults() {
	if _, ok := qrc.mutation.ScopeID(); !ok {
		v := questionrating.DefaultScopeID
		qrc.mutation.SetScopeID(v)
	}
	if _, ok := qrc.mutation.NAttempts(); !ok {
		v := questionrating.DefaultNAttempts
		qrc.mutation.SetNAttempts(v)
	}
	if _, ok := qrc.mutation.Version(); !ok {
		v := questionrating.DefaultVersion
		qrc.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qrc *QuestionRatingCreate) check() error {
	if _, ok := qrc.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "QuestionRating.entity_id"`)}
	}
	if v, ok := qrc.mutation.EntityID(); ok {
		if err := questionrating.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "QuestionRating.entity_id": %w`, err)}
		}
	}
	if _, ok := qrc.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "QuestionRating.scope_type"`)}
	}
	if v, ok := qrc.mutation.ScopeType(); ok {
		if err := questionrating.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "QuestionRating.scope_type": %w`, err)}
		}
	}
	if _, ok := qrc.mutation.ScopeID(); !ok {
		return &ValidationError{Name: "scope_id", err: errors.New(`ent: missing required field "QuestionRating.scope_id"`)}
	}
	if _, ok := qrc.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "QuestionRating.rating"`)}
	}
	if _, ok := qrc.mutation.Uncertainty(); !ok {
		return &ValidationError{Name: "uncertainty", err: errors.New(`ent: missing required field "QuestionRating.uncertainty"`)}
	}
	if _, ok := qrc.mutation.NAttempts(); !ok {
		return &ValidationError{Name: "n_attempts", err: errors.New(`ent: missing required field "QuestionRating.n_attempts"`)}
	}
	if _, ok := qrc.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "QuestionRating.version"`)}
	}
	return nil
}

func (qrc *QuestionRatingCreate) sqlSave(ctx context.Context) (*QuestionRating, error) {
	if err := qrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := qrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, qrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	qrc.mutation.id = &_node.ID
	qrc.mutation.done = true
	return _node, nil
}

func (qrc *QuestionRatingCreate) createSpec() (*QuestionRating, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionRating{config: qrc.config}
		_spec = sqlgraph.NewCreateSpec(questionrating.Table, sqlgraph.NewFieldSpec(questionrating.FieldID, field.TypeInt))
	)
	if value, ok := qrc.mutation.EntityID(); ok {
		_spec.SetField(questionrating.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := qrc.mutation.ScopeType(); ok {
		_spec.SetField(questionrating.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := qrc.mutation.ScopeID(); ok {
		_spec.SetField(questionrating.FieldScopeID, field.TypeString, value)
		_node.ScopeID = value
	}
	if value, ok := qrc.mutation.Rating(); ok {
		_spec.SetField(questionrating.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := qrc.mutation.Uncertainty(); ok {
		_spec.SetField(questionrating.FieldUncertainty, field.TypeFloat64, value)
		_node.Uncertainty = value
	}
	if value, ok := qrc.mutation.NAttempts(); ok {
		_spec.SetField(questionrating.FieldNAttempts, field.TypeInt, value)
		_node.NAttempts = value
	}
	if value, ok := qrc.mutation.LastSeenAt(); ok {
		_spec.SetField(questionrating.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if value, ok := qrc.mutation.Version(); ok {
		_spec.SetField(questionrating.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// QuestionRatingCreateBulk is the builder for creating many QuestionRating entities in bulk.
type QuestionRatingCreateBulk struct {
	config
	err      error
	builders []*QuestionRatingCreate
}

// Save creates the QuestionRating entities in the database.
func (qrcb *QuestionRatingCreateBulk) Save(ctx context.Context) ([]*QuestionRating, error) {
	if qrcb.err != nil {
		return nil, qrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qrcb.builders))
	nodes := make([]*QuestionRating, len(qrcb.builders))
	mutators := make([]Mutator, len(qrcb.builders))
	for i := range qrcb.builders {
		func(i int, root context.Context) {
			builder := qrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionRatingMutation)
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
					_, err = mutators[i+1].Mutate(root, qrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qrcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, qrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qrcb *QuestionRatingCreateBulk) SaveX(ctx context.Context) []*QuestionRating {
	v, err := qrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qrcb *QuestionRatingCreateBulk) Exec(ctx context.Context) error {
	_, err := qrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qrcb *QuestionRatingCreateBulk) ExecX(ctx context.Context) {
	if err := qrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
