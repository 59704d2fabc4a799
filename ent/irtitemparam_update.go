// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtItemParamUpdate is the builder for updating IrtItemParam entities.
type IrtItemParamUpdate struct {
	config
	hooks    []Hook
	mutation *IrtItemParamMutation
}

// Where appends a list predicates to the IrtItemParamUpdate builder.
func (iipu *IrtItemParamUpdate) Where(ps ...predicate.IrtItemParam) *IrtItemParamUpdate {
	iipu.mutation.Where(ps...)
	return iipu
}

// SetDiscrimination sets the "discrimination" field.
func (iipu *IrtItemParamUpdate) SetDiscrimination(f float64) *IrtItemParamUpdate {
	iipu.mutation.ResetDiscrimination()
	iipu.mutation.SetDiscrimination(f)
	return iipu
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (iipu *IrtItemParamUpdate) SetNillableDiscrimination(f *float64) *IrtItemParamUpdate {
	if f != nil {
		iipu.SetDiscrimination(*f)
	}
	return iipu
}

// AddDiscrimination adds f to the "discrimination" field.
func (iipu *IrtItemParamUpdate) AddDiscrimination(f float64) *IrtItemParamUpdate {
	iipu.mutation.AddDiscrimination(f)
	return iipu
}

// SetDifficulty sets the "difficulty" field.
func (iipu *IrtItemParamUpdate) SetDifficulty(f float64) *IrtItemParamUpdate {
	iipu.mutation.ResetDifficulty()
	iipu.mutation.SetDifficulty(f)
	return iipu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (iipu *IrtItemParamUpdate) SetNillableDifficulty(f *float64) *IrtItemParamUpdate {
	if f != nil {
		iipu.SetDifficulty(*f)
	}
	return iipu
}

// AddDifficulty adds f to the "difficulty" field.
func (iipu *IrtItemParamUpdate) AddDifficulty(f float64) *IrtItemParamUpdate {
	iipu.mutation.AddDifficulty(f)
	return iipu
}

// SetGuessing sets the "guessing" field.
func (iipu *IrtItemParamUpdate) SetGuessing(f float64) *IrtItemParamUpdate {
	iipu.mutation.ResetGuessing()
	iipu.mutation.SetGuessing(f)
	return iipu
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (iipu *IrtItemParamUpdate) SetNillableGuessing(f *float64) *IrtItemParamUpdate {
	if f != nil {
		iipu.SetGuessing(*f)
	}
	return iipu
}

// AddGuessing adds f to the "guessing" field.
func (iipu *IrtItemParamUpdate) AddGuessing(f float64) *IrtItemParamUpdate {
	iipu.mutation.AddGuessing(f)
	return iipu
}

// SetSeDiscrimination sets the "se_discrimination" field.
func (iipu *IrtItemParamUpdate) SetSeDiscrimination(f float64) *IrtItemParamUpdate {
	iipu.mutation.ResetSeDiscrimination()
	iipu.mutation.SetSeDiscrimination(f)
	return iipu
}

// SetNillableSeDiscrimination sets the "se_discrimination" field if the given value is not nil.
func (iipu *IrtItemParamUpdate) SetNillableSeDiscrimination(f *float64) *IrtItemParamUpdate {
	if f != nil {
		iipu.SetSeDiscrimination(*f)
	}
	return iipu
}

// AddSeDiscrimination adds f to the "se_discrimination" field.
func (iipu *IrtItemParamUpdate) AddSeDiscrimination(f float64) *IrtItemParamUpdate {
	iipu.mutation.AddSeDiscrimination(f)
	return iipu
}

// SetSeDifficulty sets the "se_difficulty" field.
func (iipu *IrtItemParamUpdate) SetSeDifficulty(f float64) *IrtItemParamUpdate {
	iipu.mutation.ResetSeDifficulty()
	iipu.mutation.SetSeDifficulty(f)
	return iipu
}

// SetNillableSeDifficulty sets the "se_difficulty" field if the given value is not nil.
func (iipu *IrtItemParamUpdate) SetNillableSeDifficulty(f *float64) *IrtItemParamUpdate {
	if f != nil {
		iipu.SetSeDifficulty(*f)
	}
	return iipu
}

// AddSeDifficulty adds f to the "se_difficulty" field.
func (iipu *IrtItemParamUpdate) AddSeDifficulty(f float64) *IrtItemParamUpdate {
	iipu.mutation.AddSeDifficulty(f)
	return iipu
}

// SetNObs sets the "n_obs" field.
func (iipu *IrtItemParamUpdate) SetNObs(i int) *IrtItemParamUpdate {
	iipu.mutation.ResetNObs()
	iipu.mutation.SetNObs(i)
	return iipu
}

// SetNillableNObs sets the "n_obs" field if the given value is not nil.
func (iipu *IrtItemParamUpdate) SetNillableNObs(i *int) *IrtItemParamUpdate {
	if i != nil {
		iipu.SetNObs(*i)
	}
	return iipu
}

// AddNObs adds i to the "n_obs" field.
func (iipu *IrtItemParamUpdate) AddNObs(i int) *IrtItemParamUpdate {
	iipu.mutation.AddNObs(i)
	return iipu
}

// Mutation returns the IrtItemParamMutation object of the builder.
func (iipu *IrtItemParamUpdate) Mutation() *IrtItemParamMutation {
	return iipu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iipu *IrtItemParamUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iipu.sqlSave, iipu.mutation, iipu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iipu *IrtItemParamUpdate) SaveX(ctx context.Context) int {
	affected, err := iipu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iipu *IrtItemParamUpdate) Exec(ctx context.Context) error {
	_, err := iipu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iipu *IrtItemParamUpdate) ExecX(ctx context.Context) {
	if err := iipu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (iipu *IrtItemParamUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(irtitemparam.Table, irtitemparam.Columns, sqlgraph.NewFieldSpec(irtitemparam.FieldID, field.TypeInt))
	if ps := iipu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iipu.mutation.Discrimination(); ok {
		_spec.SetField(irtitemparam.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.AddedDiscrimination(); ok {
		_spec.AddField(irtitemparam.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.Difficulty(); ok {
		_spec.SetField(irtitemparam.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.AddedDifficulty(); ok {
		_spec.AddField(irtitemparam.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.Guessing(); ok {
		_spec.SetField(irtitemparam.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.AddedGuessing(); ok {
		_spec.AddField(irtitemparam.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.SeDiscrimination(); ok {
		_spec.SetField(irtitemparam.FieldSeDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.AddedSeDiscrimination(); ok {
		_spec.AddField(irtitemparam.FieldSeDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.SeDifficulty(); ok {
		_spec.SetField(irtitemparam.FieldSeDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.AddedSeDifficulty(); ok {
		_spec.AddField(irtitemparam.FieldSeDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipu.mutation.NObs(); ok {
		_spec.SetField(irtitemparam.FieldNObs, field.TypeInt, value)
	}
	if value, ok := iipu.mutation.AddedNObs(); ok {
		_spec.AddField(irtitemparam.FieldNObs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iipu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irtitemparam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iipu.mutation.done = true
	return n, nil
}

// IrtItemParamUpdateOne is the builder for updating a single IrtItemParam entity.
type IrtItemParamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IrtItemParamMutation
}

// SetDiscrimination sets the "discrimination" field.
func (iipuo *IrtItemParamUpdateOne) SetDiscrimination(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.ResetDiscrimination()
	iipuo.mutation.SetDiscrimination(f)
	return iipuo
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (iipuo *IrtItemParamUpdateOne) SetNillableDiscrimination(f *float64) *IrtItemParamUpdateOne {
	if f != nil {
		iipuo.SetDiscrimination(*f)
	}
	return iipuo
}

// AddDiscrimination adds f to the "discrimination" field.
func (iipuo *IrtItemParamUpdateOne) AddDiscrimination(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.AddDiscrimination(f)
	return iipuo
}

// SetDifficulty sets the "difficulty" field.
func (iipuo *IrtItemParamUpdateOne) SetDifficulty(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.ResetDifficulty()
	iipuo.mutation.SetDifficulty(f)
	return iipuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (iipuo *IrtItemParamUpdateOne) SetNillableDifficulty(f *float64) *IrtItemParamUpdateOne {
	if f != nil {
		iipuo.SetDifficulty(*f)
	}
	return iipuo
}

// AddDifficulty adds f to the "difficulty" field.
func (iipuo *IrtItemParamUpdateOne) AddDifficulty(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.AddDifficulty(f)
	return iipuo
}

// SetGuessing sets the "guessing" field.
func (iipuo *IrtItemParamUpdateOne) SetGuessing(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.ResetGuessing()
	iipuo.mutation.SetGuessing(f)
	return iipuo
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (iipuo *IrtItemParamUpdateOne) SetNillableGuessing(f *float64) *IrtItemParamUpdateOne {
	if f != nil {
		iipuo.SetGuessing(*f)
	}
	return iipuo
}

// AddGuessing adds f to the "guessing" field.
func (iipuo *IrtItemParamUpdateOne) AddGuessing(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.AddGuessing(f)
	return iipuo
}

// SetSeDiscrimination sets the "se_discrimination" field.
func (iipuo *IrtItemParamUpdateOne) SetSeDiscrimination(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.ResetSeDiscrimination()
	iipuo.mutation.SetSeDiscrimination(f)
	return iipuo
}

// SetNillableSeDiscrimination sets the "se_discrimination" field if the given value is not nil.
func (iipuo *IrtItemParamUpdateOne) SetNillableSeDiscrimination(f *float64) *IrtItemParamUpdateOne {
	if f != nil {
		iipuo.SetSeDiscrimination(*f)
	}
	return iipuo
}

// AddSeDiscrimination adds f to the "se_discrimination" field.
func (iipuo *IrtItemParamUpdateOne) AddSeDiscrimination(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.AddSeDiscrimination(f)
	return iipuo
}

// SetSeDifficulty sets the "se_difficulty" field.
func (iipuo *IrtItemParamUpdateOne) SetSeDifficulty(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.ResetSeDifficulty()
	iipuo.mutation.SetSeDifficulty(f)
	return iipuo
}

// SetNillableSeDifficulty sets the "se_difficulty" field if the given value is not nil.
func (iipuo *IrtItemParamUpdateOne) SetNillableSeDifficulty(f *float64) *IrtItemParamUpdateOne {
	if f != nil {
		iipuo.SetSeDifficulty(*f)
	}
	return iipuo
}

// AddSeDifficulty adds f to the "se_difficulty" field.
func (iipuo *IrtItemParamUpdateOne) AddSeDifficulty(f float64) *IrtItemParamUpdateOne {
	iipuo.mutation.AddSeDifficulty(f)
	return iipuo
}

// SetNObs sets the "n_obs" field.
func (iipuo *IrtItemParamUpdateOne) SetNObs(i int) *IrtItemParamUpdateOne {
	iipuo.mutation.ResetNObs()
	iipuo.mutation.SetNObs(i)
	return iipuo
}

// SetNillableNObs sets the "n_obs" field if the given value is not nil.
func (iipuo *IrtItemParamUpdateOne) SetNillableNObs(i *int) *IrtItemParamUpdateOne {
	if i != nil {
		iipuo.SetNObs(*i)
	}
	return iipuo
}

// AddNObs adds i to the "n_obs" field.
func (iipuo *IrtItemParamUpdateOne) AddNObs(i int) *IrtItemParamUpdateOne {
	iipuo.mutation.AddNObs(i)
	return iipuo
}

// Mutation returns the IrtItemParamMutation object of the builder.
func (iipuo *IrtItemParamUpdateOne) Mutation() *IrtItemParamMutation {
	return iipuo.mutation
}

// Where appends a list predicates to the IrtItemParamUpdate builder.
func (iipuo *IrtItemParamUpdateOne) Where(ps ...predicate.IrtItemParam) *IrtItemParamUpdateOne {
	iipuo.mutation.Where(ps...)
	return iipuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iipuo *IrtItemParamUpdateOne) Select(field string, fields ...string) *IrtItemParamUpdateOne {
	iipuo.fields = append([]string{field}, fields...)
	return iipuo
}

// Save executes the query and returns the updated IrtItemParam entity.
func (iipuo *IrtItemParamUpdateOne) Save(ctx context.Context) (*IrtItemParam, error) {
	return withHooks(ctx, iipuo.sqlSave, iipuo.mutation, iipuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iipuo *IrtItemParamUpdateOne) SaveX(ctx context.Context) *IrtItemParam {
	node, err := iipuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iipuo *IrtItemParamUpdateOne) Exec(ctx context.Context) error {
	_, err := iipuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iipuo *IrtItemParamUpdateOne) ExecX(ctx context.Context) {
	if err := iipuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (iipuo *IrtItemParamUpdateOne) sqlSave(ctx context.Context) (_node *IrtItemParam, err error) {
	_spec := sqlgraph.NewUpdateSpec(irtitemparam.Table, irtitemparam.Columns, sqlgraph.NewFieldSpec(irtitemparam.FieldID, field.TypeInt))
	id, ok := iipuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IrtItemParam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iipuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irtitemparam.FieldID)
		for _, f := range fields {
			if !irtitemparam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != irtitemparam.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iipuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iipuo.mutation.Discrimination(); ok {
		_spec.SetField(irtitemparam.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.AddedDiscrimination(); ok {
		_spec.AddField(irtitemparam.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.Difficulty(); ok {
		_spec.SetField(irtitemparam.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(irtitemparam.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.Guessing(); ok {
		_spec.SetField(irtitemparam.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.AddedGuessing(); ok {
		_spec.AddField(irtitemparam.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.SeDiscrimination(); ok {
		_spec.SetField(irtitemparam.FieldSeDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.AddedSeDiscrimination(); ok {
		_spec.AddField(irtitemparam.FieldSeDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.SeDifficulty(); ok {
		_spec.SetField(irtitemparam.FieldSeDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.AddedSeDifficulty(); ok {
		_spec.AddField(irtitemparam.FieldSeDifficulty, field.TypeFloat64, value)
	}
	if value, ok := iipuo.mutation.NObs(); ok {
		_spec.SetField(irtitemparam.FieldNObs, field.TypeInt, value)
	}
	if value, ok := iipuo.mutation.AddedNObs(); ok {
		_spec.AddField(irtitemparam.FieldNObs, field.TypeInt, value)
	}
	_node = &IrtItemParam{config: iipuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iipuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irtitemparam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iipuo.mutation.done = true
	return _node, nil
}
