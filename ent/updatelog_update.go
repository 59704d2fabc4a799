// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/predicate"
	"github.com/adaptly/calibrant/ent/updatelog"
)

// UpdateLogUpdate is the builder for updating UpdateLog entities.
type UpdateLogUpdate struct {
	config
	hooks    []Hook
	mutation *UpdateLogMutation
}

// Where appends a list predicates to the UpdateLogUpdate builder.
func (ulu *UpdateLogUpdate) Where(ps ...predicate.UpdateLog) *UpdateLogUpdate {
	ulu.mutation.Where(ps...)
	return ulu
}

// Mutation returns the UpdateLogMutation object of the builder.
func (ulu *UpdateLogUpdate) Mutation() *UpdateLogMutation {
	return ulu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ulu *UpdateLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ulu.sqlSave, ulu.mutation, ulu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ulu *UpdateLogUpdate) SaveX(ctx context.Context) int {
	affected, err := ulu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ulu *UpdateLogUpdate) Exec(ctx context.Context) error {
	_, err := ulu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ulu *UpdateLogUpdate) ExecX(ctx context.Context) {
	if err := ulu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ulu *UpdateLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(updatelog.Table, updatelog.Columns, sqlgraph.NewFieldSpec(updatelog.FieldID, field.TypeInt))
	if ps := ulu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ulu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{updatelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ulu.mutation.done = true
	return n, nil
}

// UpdateLogUpdateOne is the builder for updating a single UpdateLog entity.
type UpdateLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UpdateLogMutation
}

// Mutation returns the UpdateLogMutation object of the builder.
func (uluo *UpdateLogUpdateOne) Mutation() *UpdateLogMutation {
	return uluo.mutation
}

// Where appends a list predicates to the UpdateLogUpdate builder.
func (uluo *UpdateLogUpdateOne) Where(ps ...predicate.UpdateLog) *UpdateLogUpdateOne {
	uluo.mutation.Where(ps...)
	return uluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uluo *UpdateLogUpdateOne) Select(field string, fields ...string) *UpdateLogUpdateOne {
	uluo.fields = append([]string{field}, fields...)
	return uluo
}

// Save executes the query and returns the updated UpdateLog entity.
func (uluo *UpdateLogUpdateOne) Save(ctx context.Context) (*UpdateLog, error) {
	return withHooks(ctx, uluo.sqlSave, uluo.mutation, uluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uluo *UpdateLogUpdateOne) SaveX(ctx context.Context) *UpdateLog {
	node, err := uluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uluo *UpdateLogUpdateOne) Exec(ctx context.Context) error {
	_, err := uluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uluo *UpdateLogUpdateOne) ExecX(ctx context.Context) {
	if err := uluo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (uluo *UpdateLogUpdateOne) sqlSave(ctx context.Context) (_node *UpdateLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(updatelog.Table, updatelog.Columns, sqlgraph.NewFieldSpec(updatelog.FieldID, field.TypeInt))
	id, ok := uluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UpdateLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, updatelog.FieldID)
		for _, f := range fields {
			if !updatelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != updatelog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &UpdateLog{config: uluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{updatelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uluo.mutation.done = true
	return _node, nil
}
