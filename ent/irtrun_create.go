// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtrun"
)

// IrtRunCreate is the builder for creating a IrtRun entity.
type IrtRunCreate struct {
	config
	mutation *IrtRunMutation
	hooks    []Hook
}

// SetModelType sets the "model_type" field.
func (irc *IrtRunCreate) SetModelType(it irtrun.ModelType) *IrtRunCreate {
	irc.mutation.SetModelType(it)
	return irc
}

// SetStatus sets the "status" field.
func (irc *IrtRunCreate) SetStatus(i irtrun.Status) *IrtRunCreate {
	irc.mutation.SetStatus(i)
	return irc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableStatus(i *irtrun.Status) *IrtRunCreate {
	if i != nil {
		irc.SetStatus(*i)
	}
	return irc
}

// SetSeed sets the "seed" field.
func (irc *IrtRunCreate) SetSeed(i int64) *IrtRunCreate {
	irc.mutation.SetSeed(i)
	return irc
}

// SetDatasetSpec sets the "dataset_spec" field.
func (irc *IrtRunCreate) SetDatasetSpec(m map[string]interface{}) *IrtRunCreate {
	irc.mutation.SetDatasetSpec(m)
	return irc
}

// SetMetrics sets the "metrics" field.
func (irc *IrtRunCreate) SetMetrics(m map[string]interface{}) *IrtRunCreate {
	irc.mutation.SetMetrics(m)
	return irc
}

// SetError sets the "error" field.
func (irc *IrtRunCreate) SetError(s string) *IrtRunCreate {
	irc.mutation.SetError(s)
	return irc
}

// SetNillableError sets the "error" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableError(s *string) *IrtRunCreate {
	if s != nil {
		irc.SetError(*s)
	}
	return irc
}

// SetNotes sets the "notes" field.
func (irc *IrtRunCreate) SetNotes(s string) *IrtRunCreate {
	irc.mutation.SetNotes(s)
	return irc
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableNotes(s *string) *IrtRunCreate {
	if s != nil {
		irc.SetNotes(*s)
	}
	return irc
}

// SetArtifactDir sets the "artifact_dir" field.
func (irc *IrtRunCreate) SetArtifactDir(s string) *IrtRunCreate {
	irc.mutation.SetArtifactDir(s)
	return irc
}

// SetNillableArtifactDir sets the "artifact_dir" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableArtifactDir(s *string) *IrtRunCreate {
	if s != nil {
		irc.SetArtifactDir(*s)
	}
	return irc
}

// SetCreatedAt sets the "created_at" field.
func (irc *IrtRunCreate) SetCreatedAt(t time.Time) *IrtRunCreate {
	irc.mutation.SetCreatedAt(t)
	return irc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableCreatedAt(t *time.Time) *IrtRunCreate {
	if t != nil {
		irc.SetCreatedAt(*t)
	}
	return irc
}

// SetStartedAt sets the "started_at" field.
func (irc *IrtRunCreate) SetStartedAt(t time.Time) *IrtRunCreate {
	irc.mutation.SetStartedAt(t)
	return irc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableStartedAt(t *time.Time) *IrtRunCreate {
	if t != nil {
		irc.SetStartedAt(*t)
	}
	return irc
}

// SetFinishedAt sets the "finished_at" field.
func (irc *IrtRunCreate) SetFinishedAt(t time.Time) *IrtRunCreate {
	irc.mutation.SetFinishedAt(t)
	return irc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (irc *IrtRunCreate) SetNillableFinishedAt(t *time.Time) *IrtRunCreate {
	if t != nil {
		irc.SetFinishedAt(*t)
	}
	return irc
}

// SetID sets the "id" field.
func (irc *IrtRunCreate) SetID(s string) *IrtRunCreate {
	irc.mutation.SetID(s)
	return irc
}

// Mutation returns the IrtRunMutation object of the builder.
func (irc *IrtRunCreate) Mutation() *IrtRunMutation {
	return irc.mutation
}

// Save creates the IrtRun in the database.
func (irc *IrtRunCreate) Save(ctx context.Context) (*IrtRun, error) {
	irc.defaults()
	return withHooks(ctx, irc.sqlSave, irc.mutation, irc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (irc *IrtRunCreate) SaveX(ctx context.Context) *IrtRun {
	v, err := irc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (irc *IrtRunCreate) Exec(ctx context.Context) error {
	_, err := irc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (irc *IrtRunCreate) ExecX(ctx context.Context) {
	if err := irc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (irc *IrtRunCreate) defaults() {
	if _, ok := irc.mutation.Status(); !ok {
		v := irtrun.DefaultStatus
		irc.mutation.SetStatus(v)
	}
	if _, ok := irc.mutation.Error(); !ok {
		v := irtrun.DefaultError
		irc.mutation.SetError(v)
	}
	if _, ok := irc.mutation.Notes(); !ok {
		v := irtrun.DefaultNotes
		irc.mutation.SetNotes(v)
	}
	if _, ok := irc.mutation.ArtifactDir(); !ok {
		v := irtrun.DefaultArtifactDir
		irc.mutation.SetArtifactDir(v)
	}
	if _, ok := irc.mutation.CreatedAt(); !ok {
		v := irtrun.DefaultCreatedAt()
		irc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (irc *IrtRunCreate) check() error {
	if _, ok := irc.mutation.ModelType(); !ok {
		return &ValidationError{Name: "model_type", err: errors.New(`ent: missing required field "IrtRun.model_type"`)}
	}
	if v, ok := irc.mutation.ModelType(); ok {
		if err := irtrun.ModelTypeValidator(v); err != nil {
			return &ValidationError{Name: "model_type", err: fmt.Errorf(`ent: validator failed for field "IrtRun.model_type": %w`, err)}
		}
	}
	if _, ok := irc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IrtRun.status"`)}
	}
	if v, ok := irc.mutation.Status(); ok {
		if err := irtrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IrtRun.status": %w`, err)}
		}
	}
	if _, ok := irc.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "IrtRun.seed"`)}
	}
	if _, ok := irc.mutation.DatasetSpec(); !ok {
		return &ValidationError{Name: "dataset_spec", err: errors.New(`ent: missing required field "IrtRun.dataset_spec"`)}
	}
	if _, ok := irc.mutation.Error(); !ok {
		return &ValidationError{Name: "error", err: errors.New(`ent: missing required field "IrtRun.error"`)}
	}
	if _, ok := irc.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "IrtRun.notes"`)}
	}
	if _, ok := irc.mutation.ArtifactDir(); !ok {
		return &ValidationError{Name: "artifact_dir", err: errors.New(`ent: missing required field "IrtRun.artifact_dir"`)}
	}
	if _, ok := irc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IrtRun.created_at"`)}
	}
	if v, ok := irc.mutation.ID(); ok {
		if err := irtrun.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "IrtRun.id": %w`, err)}
		}
	}
	return nil
}

func (irc *IrtRunCreate) sqlSave(ctx context.Context) (*IrtRun, error) {
	if err := irc.check(); err != nil {
		return nil, err
	}
	_node, _spec := irc.createSpec()
	if err := sqlgraph.CreateNode(ctx, irc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected IrtRun.ID type: %T", _spec.ID.Value)
		}
	}
	irc.mutation.id = &_node.ID
	irc.mutation.done = true
	return _node, nil
}

func (irc *IrtRunCreate) createSpec() (*IrtRun, *sqlgraph.CreateSpec) {
	var (
		_node = &IrtRun{config: irc.config}
		_spec = sqlgraph.NewCreateSpec(irtrun.Table, sqlgraph.NewFieldSpec(irtrun.FieldID, field.TypeString))
	)
	if id, ok := irc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := irc.mutation.ModelType(); ok {
		_spec.SetField(irtrun.FieldModelType, field.TypeEnum, value)
		_node.ModelType = value
	}
	if value, ok := irc.mutation.Status(); ok {
		_spec.SetField(irtrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := irc.mutation.Seed(); ok {
		_spec.SetField(irtrun.FieldSeed, field.TypeInt64, value)
		_node.Seed = value
	}
	if value, ok := irc.mutation.DatasetSpec(); ok {
		_spec.SetField(irtrun.FieldDatasetSpec, field.TypeJSON, value)
		_node.DatasetSpec = value
	}
	if value, ok := irc.mutation.Metrics(); ok {
		_spec.SetField(irtrun.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := irc.mutation.Error(); ok {
		_spec.SetField(irtrun.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := irc.mutation.Notes(); ok {
		_spec.SetField(irtrun.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := irc.mutation.ArtifactDir(); ok {
		_spec.SetField(irtrun.FieldArtifactDir, field.TypeString, value)
		_node.ArtifactDir = value
	}
	if value, ok := irc.mutation.CreatedAt(); ok {
		_spec.SetField(irtrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := irc.mutation.StartedAt(); ok {
		_spec.SetField(irtrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := irc.mutation.FinishedAt(); ok {
		_spec.SetField(irtrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// IrtRunCreateBulk is the builder for creating many IrtRun entities in bulk.
type IrtRunCreateBulk struct {
	config
	err      error
	builders []*IrtRunCreate
}

// Save creates the IrtRun entities in the database.
func (ircb *IrtRunCreateBulk) Save(ctx context.Context) ([]*IrtRun, error) {
	if ircb.err != nil {
		return nil, ircb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ircb.builders))
	nodes := make([]*IrtRun, len(ircb.builders))
	mutators := make([]Mutator, len(ircb.builders))
	for i := range ircb.builders {
		func(i int, root context.Context) {
			builder := ircb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IrtRunMutation)
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
					_, err = mutators[i+1].Mutate(root, ircb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ircb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, ircb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ircb *IrtRunCreateBulk) SaveX(ctx context.Context) []*IrtRun {
	v, err := ircb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ircb *IrtRunCreateBulk) Exec(ctx context.Context) error {
	_, err := ircb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ircb *IrtRunCreateBulk) ExecX(ctx context.Context) {
	if err := ircb.Exec(ctx); err != nil {
		panic(err)
	}
}
