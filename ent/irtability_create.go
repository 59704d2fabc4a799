// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtability"
)

// IrtAbilityCreate is the builder for creating a IrtAbility entity.
type IrtAbilityCreate struct {
	config
	mutation *IrtAbilityMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (iac *IrtAbilityCreate) SetRunID(s string) *IrtAbilityCreate {
	iac.mutation.SetRunID(s)
	return iac
}

// SetUserID sets the "user_id" field.
func (iac *IrtAbilityCreate) SetUserID(s string) *IrtAbilityCreate {
	iac.mutation.SetUserID(s)
	return iac
}

// SetTheta sets the "theta" field.
func (iac *IrtAbilityCreate) SetTheta(f float64) *IrtAbilityCreate {
	iac.mutation.SetTheta(f)
	return iac
}

// SetThetaSe sets the "theta_se" field.
func (iac *IrtAbilityCreate) SetThetaSe(f float64) *IrtAbilityCreate {
	iac.mutation.SetThetaSe(f)
	return iac
}

// SetNillableThetaSe sets the "theta_se" field if the given value is not nil.
func (iac *IrtAbilityCreate) SetNillableThetaSe(f *float64) *IrtAbilityCreate {
	if f != nil {
		iac.SetThetaSe(*f)
	}
	return iac
}

// SetNObs sets the "n_obs" field.
func (iac *IrtAbilityCreate) SetNObs(i int) *IrtAbilityCreate {
	iac.mutation.SetNObs(i)
	return iac
}

// Mutation returns the IrtAbilityMutation object of the builder.
func (iac *IrtAbilityCreate) Mutation() *IrtAbilityMutation {
	return iac.mutation
}

// Save creates the IrtAbility in the database.
func (iac *IrtAbilityCreate) Save(ctx context.Context) (*IrtAbility, error) {
	iac.defaults()
	return withHooks(ctx, iac.sqlSave, iac.mutation, iac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (iac *IrtAbilityCreate) SaveX(ctx context.Context) *IrtAbility {
	v, err := iac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (iac *IrtAbilityCreate) Exec(ctx context.Context) error {
	_, err := iac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iac *IrtAbilityCreate) ExecX(ctx context.Context) {
	if err := iac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iac *IrtAbilityCreate) defaults() {
	if _, ok := iac.mutation.ThetaSe(); !ok {
		v := irtability.DefaultThetaSe
		iac.mutation.SetThetaSe(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iac *IrtAbilityCreate) check() error {
	if _, ok := iac.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "IrtAbility.run_id"`)}
	}
	if v, ok := iac.mutation.RunID(); ok {
		if err := irtability.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "IrtAbility.run_id": %w`, err)}
		}
	}
	if _, ok := iac.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IrtAbility.user_id"`)}
	}
	if v, ok := iac.mutation.UserID(); ok {
		if err := irtability.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "IrtAbility.user_id": %w`, err)}
		}
	}
	if _, ok := iac.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "IrtAbility.theta"`)}
	}
	if _, ok := iac.mutation.ThetaSe(); !ok {
		return &ValidationError{Name: "theta_se", err: errors.New(`ent: missing required field "IrtAbility.theta_se"`)}
	}
	if _, ok := iac.mutation.NObs(); !ok {
		return &ValidationError{Name: "n_obs", err: errors.New(`ent: missing required field "IrtAbility.n_obs"`)}
	}
	return nil
}

func (iac *IrtAbilityCreate) sqlSave(ctx context.Context) (*IrtAbility, error) {
	if err := iac.check(); err != nil {
		return nil, err
	}
	_node, _spec := iac.createSpec()
	if err := sqlgraph.CreateNode(ctx, iac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	iac.mutation.id = &_node.ID
	iac.mutation.done = true
	return _node, nil
}

func (iac *IrtAbilityCreate) createSpec() (*IrtAbility, *sqlgraph.CreateSpec) {
	var (
		_node = &IrtAbility{config: iac.config}
		_spec = sqlgraph.NewCreateSpec(irtability.Table, sqlgraph.NewFieldSpec(irtability.FieldID, field.TypeInt))
	)
	if value, ok := iac.mutation.RunID(); ok {
		_spec.SetField(irtability.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := iac.mutation.UserID(); ok {
		_spec.SetField(irtability.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := iac.mutation.Theta(); ok {
		_spec.SetField(irtability.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := iac.mutation.ThetaSe(); ok {
		_spec.SetField(irtability.FieldThetaSe, field.TypeFloat64, value)
		_node.ThetaSe = value
	}
	if value, ok := iac.mutation.NObs(); ok {
		_spec.SetField(irtability.FieldNObs, field.TypeInt, value)
		_node.NObs = value
	}
	return _node, _spec
}

// IrtAbilityCreateBulk is the builder for creating many IrtAbility entities in bulk.
type IrtAbilityCreateBulk struct {
	config
	err      error
	builders []*IrtAbilityCreate
}

// Save creates the IrtAbility entities in the database.
func (iacb *IrtAbilityCreateBulk) Save(ctx context.Context) ([]*IrtAbility, error) {
	if iacb.err != nil {
		return nil, iacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(iacb.builders))
	nodes := make([]*IrtAbility, len(iacb.builders))
	mutators := make([]Mutator, len(iacb.builders))
	for i := range iacb.builders {
		func(i int, root context.Context) {
			builder := iacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IrtAbilityMutation)
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
					_, err = mutators[i+1].Mutate(root, iacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, iacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, iacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (iacb *IrtAbilityCreateBulk) SaveX(ctx context.Context) []*IrtAbility {
	v, err := iacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (iacb *IrtAbilityCreateBulk) Exec(ctx context.Context) error {
	_, err := iacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iacb *IrtAbilityCreateBulk) ExecX(ctx context.Context) {
	if err := iacb.Exec(ctx); err != nil {
		panic(err)
	}
}
