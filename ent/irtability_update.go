// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtAbilityUpdate is the builder for updating IrtAbility entities.
type IrtAbilityUpdate struct {
	config
	hooks    []Hook
	mutation *IrtAbilityMutation
}

// Where appends a list predicates to the IrtAbilityUpdate builder.
func (iau *IrtAbilityUpdate) Where(ps ...predicate.IrtAbility) *IrtAbilityUpdate {
	iau.mutation.Where(ps...)
	return iau
}

// SetTheta sets the "theta" field.
func (iau *IrtAbilityUpdate) SetTheta(f float64) *IrtAbilityUpdate {
	iau.mutation.ResetTheta()
	iau.mutation.SetTheta(f)
	return iau
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (iau *IrtAbilityUpdate) SetNillableTheta(f *float64) *IrtAbilityUpdate {
	if f != nil {
		iau.SetTheta(*f)
	}
	return iau
}

// AddTheta adds f to the "theta" field.
func (iau *IrtAbilityUpdate) AddTheta(f float64) *IrtAbilityUpdate {
	iau.mutation.AddTheta(f)
	return iau
}

// SetThetaSe sets the "theta_se" field.
func (iau *IrtAbilityUpdate) SetThetaSe(f float64) *IrtAbilityUpdate {
	iau.mutation.ResetThetaSe()
	iau.mutation.SetThetaSe(f)
	return iau
}

// SetNillableThetaSe sets the "theta_se" field if the given value is not nil.
func (iau *IrtAbilityUpdate) SetNillableThetaSe(f *float64) *IrtAbilityUpdate {
	if f != nil {
		iau.SetThetaSe(*f)
	}
	return iau
}

// AddThetaSe adds f to the "theta_se" field.
func (iau *IrtAbilityUpdate) AddThetaSe(f float64) *IrtAbilityUpdate {
	iau.mutation.AddThetaSe(f)
	return iau
}

// SetNObs sets the "n_obs" field.
func (iau *IrtAbilityUpdate) SetNObs(i int) *IrtAbilityUpdate {
	iau.mutation.ResetNObs()
	iau.mutation.SetNObs(i)
	return iau
}

// SetNillableNObs sets the "n_obs" field if the given value is not nil.
func (iau *IrtAbilityUpdate) SetNillableNObs(i *int) *IrtAbilityUpdate {
	if i != nil {
		iau.SetNObs(*i)
	}
	return iau
}

// AddNObs adds i to the "n_obs" field.
func (iau *IrtAbilityUpdate) AddNObs(i int) *IrtAbilityUpdate {
	iau.mutation.AddNObs(i)
	return iau
}

// Mutation returns the IrtAbilityMutation object of the builder.
func (iau *IrtAbilityUpdate) Mutation() *IrtAbilityMutation {
	return iau.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iau *IrtAbilityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iau.sqlSave, iau.mutation, iau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iau *IrtAbilityUpdate) SaveX(ctx context.Context) int {
	affected, err := iau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iau *IrtAbilityUpdate) Exec(ctx context.Context) error {
	_, err := iau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iau *IrtAbilityUpdate) ExecX(ctx context.Context) {
	if err := iau.Exec(ctx); err != nil {
		panic(err)
	}
}

func (iau *IrtAbilityUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(irtability.Table, irtability.Columns, sqlgraph.NewFieldSpec(irtability.FieldID, field.TypeInt))
	if ps := iau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iau.mutation.Theta(); ok {
		_spec.SetField(irtability.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := iau.mutation.AddedTheta(); ok {
		_spec.AddField(irtability.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := iau.mutation.ThetaSe(); ok {
		_spec.SetField(irtability.FieldThetaSe, field.TypeFloat64, value)
	}
	if value, ok := iau.mutation.AddedThetaSe(); ok {
		_spec.AddField(irtability.FieldThetaSe, field.TypeFloat64, value)
	}
	if value, ok := iau.mutation.NObs(); ok {
		_spec.SetField(irtability.FieldNObs, field.TypeInt, value)
	}
	if value, ok := iau.mutation.AddedNObs(); ok {
		_spec.AddField(irtability.FieldNObs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irtability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iau.mutation.done = true
	return n, nil
}

// IrtAbilityUpdateOne is the builder for updating a single IrtAbility entity.
type IrtAbilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IrtAbilityMutation
}

// SetTheta sets the "theta" field.
func (iauo *IrtAbilityUpdateOne) SetTheta(f float64) *IrtAbilityUpdateOne {
	iauo.mutation.ResetTheta()
	iauo.mutation.SetTheta(f)
	return iauo
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (iauo *IrtAbilityUpdateOne) SetNillableTheta(f *float64) *IrtAbilityUpdateOne {
	if f != nil {
		iauo.SetTheta(*f)
	}
	return iauo
}

// AddTheta adds f to the "theta" field.
func (iauo *IrtAbilityUpdateOne) AddTheta(f float64) *IrtAbilityUpdateOne {
	iauo.mutation.AddTheta(f)
	return iauo
}

// SetThetaSe sets the "theta_se" field.
func (iauo *IrtAbilityUpdateOne) SetThetaSe(f float64) *IrtAbilityUpdateOne {
	iauo.mutation.ResetThetaSe()
	iauo.mutation.SetThetaSe(f)
	return iauo
}

// SetNillableThetaSe sets the "theta_se" field if the given value is not nil.
func (iauo *IrtAbilityUpdateOne) SetNillableThetaSe(f *float64) *IrtAbilityUpdateOne {
	if f != nil {
		iauo.SetThetaSe(*f)
	}
	return iauo
}

// AddThetaSe adds f to the "theta_se" field.
func (iauo *IrtAbilityUpdateOne) AddThetaSe(f float64) *IrtAbilityUpdateOne {
	iauo.mutation.AddThetaSe(f)
	return iauo
}

// SetNObs sets the "n_obs" field.
func (iauo *IrtAbilityUpdateOne) SetNObs(i int) *IrtAbilityUpdateOne {
	iauo.mutation.ResetNObs()
	iauo.mutation.SetNObs(i)
	return iauo
}

// SetNillableNObs sets the "n_obs" field if the given value is not nil.
func (iauo *IrtAbilityUpdateOne) SetNillableNObs(i *int) *IrtAbilityUpdateOne {
	if i != nil {
		iauo.SetNObs(*i)
	}
	return iauo
}

// AddNObs adds i to the "n_obs" field.
func (iauo *IrtAbilityUpdateOne) AddNObs(i int) *IrtAbilityUpdateOne {
	iauo.mutation.AddNObs(i)
	return iauo
}

// Mutation returns the IrtAbilityMutation object of the builder.
func (iauo *IrtAbilityUpdateOne) Mutation() *IrtAbilityMutation {
	return iauo.mutation
}

// Where appends a list predicates to the IrtAbilityUpdate builder.
func (iauo *IrtAbilityUpdateOne) Where(ps ...predicate.IrtAbility) *IrtAbilityUpdateOne {
	iauo.mutation.Where(ps...)
	return iauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iauo *IrtAbilityUpdateOne) Select(field string, fields ...string) *IrtAbilityUpdateOne {
	iauo.fields = append([]string{field}, fields...)
	return iauo
}

// Save executes the query and returns the updated IrtAbility entity.
func (iauo *IrtAbilityUpdateOne) Save(ctx context.Context) (*IrtAbility, error) {
	return withHooks(ctx, iauo.sqlSave, iauo.mutation, iauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iauo *IrtAbilityUpdateOne) SaveX(ctx context.Context) *IrtAbility {
	node, err := iauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iauo *IrtAbilityUpdateOne) Exec(ctx context.Context) error {
	_, err := iauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iauo *IrtAbilityUpdateOne) ExecX(ctx context.Context) {
	if err := iauo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (iauo *IrtAbilityUpdateOne) sqlSave(ctx context.Context) (_node *IrtAbility, err error) {
	_spec := sqlgraph.NewUpdateSpec(irtability.Table, irtability.Columns, sqlgraph.NewFieldSpec(irtability.FieldID, field.TypeInt))
	id, ok := iauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IrtAbility.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irtability.FieldID)
		for _, f := range fields {
			if !irtability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != irtability.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iauo.mutation.Theta(); ok {
		_spec.SetField(irtability.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := iauo.mutation.AddedTheta(); ok {
		_spec.AddField(irtability.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := iauo.mutation.ThetaSe(); ok {
		_spec.SetField(irtability.FieldThetaSe, field.TypeFloat64, value)
	}
	if value, ok := iauo.mutation.AddedThetaSe(); ok {
		_spec.AddField(irtability.FieldThetaSe, field.TypeFloat64, value)
	}
	if value, ok := iauo.mutation.NObs(); ok {
		_spec.SetField(irtability.FieldNObs, field.TypeInt, value)
	}
	if value, ok := iauo.mutation.AddedNObs(); ok {
		_spec.AddField(irtability.FieldNObs, field.TypeInt, value)
	}
	_node = &IrtAbility{config: iauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irtability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iauo.mutation.done = true
	return _node, nil
}
