// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtitemparam"
)

// IrtItemParamCreate is the builder for creating a IrtItemParam entity.
type IrtItemParamCreate struct {
	config
	mutation *IrtItemParamMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (iipc *IrtItemParamCreate) SetRunID(s string) *IrtItemParamCreate {
	iipc.mutation.SetRunID(s)
	return iipc
}

// SetQuestionID sets the "question_id" field.
func (iipc *IrtItemParamCreate) SetQuestionID(s string) *IrtItemParamCreate {
	iipc.mutation.SetQuestionID(s)
	return iipc
}

// SetDiscrimination sets the "discrimination" field.
func (iipc *IrtItemParamCreate) SetDiscrimination(f float64) *IrtItemParamCreate {
	iipc.mutation.SetDiscrimination(f)
	return iipc
}

// SetDifficulty sets the "difficulty" field.
func (iipc *IrtItemParamCreate) SetDifficulty(f float64) *IrtItemParamCreate {
	iipc.mutation.SetDifficulty(f)
	return iipc
}

// SetGuessing sets the "guessing" field.
func (iipc *IrtItemParamCreate) SetGuessing(f float64) *IrtItemParamCreate {
	iipc.mutation.SetGuessing(f)
	return iipc
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (iipc *IrtItemParamCreate) SetNillableGuessing(f *float64) *IrtItemParamCreate {
	if f != nil {
		iipc.SetGuessing(*f)
	}
	return iipc
}

// SetSeDiscrimination sets the "se_discrimination" field.
func (iipc *IrtItemParamCreate) SetSeDiscrimination(f float64) *IrtItemParamCreate {
	iipc.mutation.SetSeDiscrimination(f)
	return iipc
}

// SetNillableSeDiscrimination sets the "se_discrimination" field if the given value is not nil.
func (iipc *IrtItemParamCreate) SetNillableSeDiscrimination(f *float64) *IrtItemParamCreate {
	if f != nil {
		iipc.SetSeDiscrimination(*f)
	}
	return iipc
}

// SetSeDifficulty sets the "se_difficulty" field.
func (iipc *IrtItemParamCreate) SetSeDifficulty(f float64) *IrtItemParamCreate {
	iipc.mutation.SetSeDifficulty(f)
	return iipc
}

// SetNillableSeDifficulty sets the "se_difficulty" field if the given value is not nil.
func (iipc *IrtItemParamCreate) SetNillableSeDifficulty(f *float64) *IrtItemParamCreate {
	if f != nil {
		iipc.SetSeDifficulty(*f)
	}
	return iipc
}

// SetNObs sets the "n_obs" field.
func (iipc *IrtItemParamCreate) SetNObs(i int) *IrtItemParamCreate {
	iipc.mutation.SetNObs(i)
	return iipc
}

// Mutation returns the IrtItemParamMutation object of the builder.
func (iipc *IrtItemParamCreate) Mutation() *IrtItemParamMutation {
	return iipc.mutation
}

// Save creates the IrtItemParam in the database.
func (iipc *IrtItemParamCreate) Save(ctx context.Context) (*IrtItemParam, error) {
	iipc.defaults()
	return withHooks(ctx, iipc.sqlSave, iipc.mutation, iipc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (iipc *IrtItemParamCreate) SaveX(ctx context.Context) *IrtItemParam {
	v, err := iipc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (iipc *IrtItemParamCreate) Exec(ctx context.Context) error {
	_, err := iipc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iipc *IrtItemParamCreate) ExecX(ctx context.Context) {
	if err := iipc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iipc *IrtItemParamCreate) defaults() {
	if _, ok := iipc.mutation.Guessing(); !ok {
		v := irtitemparam.DefaultGuessing
		iipc.mutation.SetGuessing(v)
	}
	if _, ok := iipc.mutation.SeDiscrimination(); !ok {
		v := irtitemparam.DefaultSeDiscrimination
		iipc.mutation.SetSeDiscrimination(v)
	}
	if _, ok := iipc.mutation.SeDifficulty(); !ok {
		v := irtitemparam.DefaultSeDifficulty
		iipc.mutation.SetSeDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iipc *IrtItemParamCreate) check() error {
	if _, ok := iipc.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "IrtItemParam.run_id"`)}
	}
	if v, ok := iipc.mutation.RunID(); ok {
		if err := irtitemparam.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "IrtItemParam.run_id": %w`, err)}
		}
	}
	if _, ok := iipc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "IrtItemParam.question_id"`)}
	}
	if v, ok := iipc.mutation.QuestionID(); ok {
		if err := irtitemparam.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "IrtItemParam.question_id": %w`, err)}
		}
	}
	if _, ok := iipc.mutation.Discrimination(); !ok {
		return &ValidationError{Name: "discrimination", err: errors.New(`ent: missing required field "IrtItemParam.discrimination"`)}
	}
	if _, ok := iipc.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "IrtItemParam.difficulty"`)}
	}
	if _, ok := iipc.mutation.Guessing(); !ok {
		return &ValidationError{Name: "guessing", err: errors.New(`ent: missing required field "IrtItemParam.guessing"`)}
	}
	if _, ok := iipc.mutation.SeDiscrimination(); !ok {
		return &ValidationError{Name: "se_discrimination", err: errors.New(`ent: missing required field "IrtItemParam.se_discrimination"`)}
	}
	if _, ok := iipc.mutation.SeDifficulty(); !ok {
		return &ValidationError{Name: "se_difficulty", err: errors.New(`ent: missing required field "IrtItemParam.se_difficulty"`)}
	}
	if _, ok := iipc.mutation.NObs(); !ok {
		return &ValidationError{Name: "n_obs", err: errors.New(`ent: missing required field "IrtItemParam.n_obs"`)}
	}
	return nil
}

func (iipc *IrtItemParamCreate) sqlSave(ctx context.Context) (*IrtItemParam, error) {
	if err := iipc.check(); err != nil {
		return nil, err
	}
	_node, _spec := iipc.createSpec()
	if err := sqlgraph.CreateNode(ctx, iipc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	iipc.mutation.id = &_node.ID
	iipc.mutation.done = true
	return _node, nil
}

func (iipc *IrtItemParamCreate) createSpec() (*IrtItemParam, *sqlgraph.CreateSpec) {
	var (
		_node = &IrtItemParam{config: iipc.config}
		_spec = sqlgraph.NewCreateSpec(irtitemparam.Table, sqlgraph.NewFieldSpec(irtitemparam.FieldID, field.TypeInt))
	)
	if value, ok := iipc.mutation.RunID(); ok {
		_spec.SetField(irtitemparam.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := iipc.mutation.QuestionID(); ok {
		_spec.SetField(irtitemparam.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := iipc.mutation.Discrimination(); ok {
		_spec.SetField(irtitemparam.FieldDiscrimination, field.TypeFloat64, value)
		_node.Discrimination = value
	}
	if value, ok := iipc.mutation.Difficulty(); ok {
		_spec.SetField(irtitemparam.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := iipc.mutation.Guessing(); ok {
		_spec.SetField(irtitemparam.FieldGuessing, field.TypeFloat64, value)
		_node.Guessing = value
	}
	if value, ok := iipc.mutation.SeDiscrimination(); ok {
		_spec.SetField(irtitemparam.FieldSeDiscrimination, field.TypeFloat64, value)
		_node.SeDiscrimination = value
	}
	if value, ok := iipc.mutation.SeDifficulty(); ok {
		_spec.SetField(irtitemparam.FieldSeDifficulty, field.TypeFloat64, value)
		_node.SeDifficulty = value
	}
	if value, ok := iipc.mutation.NObs(); ok {
		_spec.SetField(irtitemparam.FieldNObs, field.TypeInt, value)
		_node.NObs = value
	}
	return _node, _spec
}

// IrtItemParamCreateBulk is the builder for creating many IrtItemParam entities in bulk.
type IrtItemParamCreateBulk struct {
	config
	err      error
	builders []*IrtItemParamCreate
}

// Save creates the IrtItemParam entities in the database.
func (iipcb *IrtItemParamCreateBulk) Save(ctx context.Context) ([]*IrtItemParam, error) {
	if iipcb.err != nil {
		return nil, iipcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(iipcb.builders))
	nodes := make([]*IrtItemParam, len(iipcb.builders))
	mutators := make([]Mutator, len(iipcb.builders))
	for i := range iipcb.builders {
		func(i int, root context.Context) {
			builder := iipcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IrtItemParamMutation)
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
					_, err = mutators[i+1].Mutate(root, iipcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, iipcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, iipcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (iipcb *IrtItemParamCreateBulk) SaveX(ctx context.Context) []*IrtItemParam {
	v, err := iipcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (iipcb *IrtItemParamCreateBulk) Exec(ctx context.Context) error {
	_, err := iipcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iipcb *IrtItemParamCreateBulk) ExecX(ctx context.Context) {
	if err := iipcb.Exec(ctx); err != nil {
		panic(err)
	}
}
