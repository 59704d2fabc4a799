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
	"github.com/adaptly/calibrant/ent/irtrun"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtRunUpdate is the builder for updating IrtRun entities.
type IrtRunUpdate struct {
	config
	hooks    []Hook
	mutation *IrtRunMutation
}

// Where appends a list predicates to the IrtRunUpdate builder.
func (iru *IrtRunUpdate) Where(ps ...predicate.IrtRun) *IrtRunUpdate {
	iru.mutation.Where(ps...)
	return iru
}

// SetStatus sets the "status" field.
func (iru *IrtRunUpdate) SetStatus(i irtrun.Status) *IrtRunUpdate {
	iru.mutation.SetStatus(i)
	return iru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iru *IrtRunUpdate) SetNillableStatus(i *irtrun.Status) *IrtRunUpdate {
	if i != nil {
		iru.SetStatus(*i)
	}
	return iru
}

// SetMetrics sets the "metrics" field.
func (iru *IrtRunUpdate) SetMetrics(m map[string]interface{}) *IrtRunUpdate {
	iru.mutation.SetMetrics(m)
	return iru
}

// ClearMetrics clears the value of the "metrics" field.
func (iru *IrtRunUpdate) ClearMetrics() *IrtRunUpdate {
	iru.mutation.ClearMetrics()
	return iru
}

// SetError sets the "error" field.
func (iru *IrtRunUpdate) SetError(s string) *IrtRunUpdate {
	iru.mutation.SetError(s)
	return iru
}

// SetNillableError sets the "error" field if the given value is not nil.
func (iru *IrtRunUpdate) SetNillableError(s *string) *IrtRunUpdate {
	if s != nil {
		iru.SetError(*s)
	}
	return iru
}

// SetNotes sets the "notes" field.
func (iru *IrtRunUpdate) SetNotes(s string) *IrtRunUpdate {
	iru.mutation.SetNotes(s)
	return iru
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (iru *IrtRunUpdate) SetNillableNotes(s *string) *IrtRunUpdate {
	if s != nil {
		iru.SetNotes(*s)
	}
	return iru
}

// SetArtifactDir sets the "artifact_dir" field.
func (iru *IrtRunUpdate) SetArtifactDir(s string) *IrtRunUpdate {
	iru.mutation.SetArtifactDir(s)
	return iru
}

// SetNillableArtifactDir sets the "artifact_dir" field if the given value is not nil.
func (iru *IrtRunUpdate) SetNillableArtifactDir(s *string) *IrtRunUpdate {
	if s != nil {
		iru.SetArtifactDir(*s)
	}
	return iru
}

// SetStartedAt sets the "started_at" field.
func (iru *IrtRunUpdate) SetStartedAt(t time.Time) *IrtRunUpdate {
	iru.mutation.SetStartedAt(t)
	return iru
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (iru *IrtRunUpdate) SetNillableStartedAt(t *time.Time) *IrtRunUpdate {
	if t != nil {
		iru.SetStartedAt(*t)
	}
	return iru
}

// ClearStartedAt clears the value of the "started_at" field.
func (iru *IrtRunUpdate) ClearStartedAt() *IrtRunUpdate {
	iru.mutation.ClearStartedAt()
	return iru
}

// SetFinishedAt sets the "finished_at" field.
func (iru *IrtRunUpdate) SetFinishedAt(t time.Time) *IrtRunUpdate {
	iru.mutation.SetFinishedAt(t)
	return iru
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (iru *IrtRunUpdate) SetNillableFinishedAt(t *time.Time) *IrtRunUpdate {
	if t != nil {
		iru.SetFinishedAt(*t)
	}
	return iru
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (iru *IrtRunUpdate) ClearFinishedAt() *IrtRunUpdate {
	iru.mutation.ClearFinishedAt()
	return iru
}

// Mutation returns the IrtRunMutation object of the builder.
func (iru *IrtRunUpdate) Mutation() *IrtRunMutation {
	return iru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iru *IrtRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iru.sqlSave, iru.mutation, iru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iru *IrtRunUpdate) SaveX(ctx context.Context) int {
	affected, err := iru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iru *IrtRunUpdate) Exec(ctx context.Context) error {
	_, err := iru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iru *IrtRunUpdate) ExecX(ctx context.Context) {
	if err := iru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iru *IrtRunUpdate) check() error {
	if v, ok := iru.mutation.Status(); ok {
		if err := irtrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IrtRun.status": %w`, err)}
		}
	}
	return nil
}

func (iru *IrtRunUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(irtrun.Table, irtrun.Columns, sqlgraph.NewFieldSpec(irtrun.FieldID, field.TypeString))
	if ps := iru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iru.mutation.Status(); ok {
		_spec.SetField(irtrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iru.mutation.Metrics(); ok {
		_spec.SetField(irtrun.FieldMetrics, field.TypeJSON, value)
	}
	if iru.mutation.MetricsCleared() {
		_spec.ClearField(irtrun.FieldMetrics, field.TypeJSON)
	}
	if value, ok := iru.mutation.Error(); ok {
		_spec.SetField(irtrun.FieldError, field.TypeString, value)
	}
	if value, ok := iru.mutation.Notes(); ok {
		_spec.SetField(irtrun.FieldNotes, field.TypeString, value)
	}
	if value, ok := iru.mutation.ArtifactDir(); ok {
		_spec.SetField(irtrun.FieldArtifactDir, field.TypeString, value)
	}
	if value, ok := iru.mutation.StartedAt(); ok {
		_spec.SetField(irtrun.FieldStartedAt, field.TypeTime, value)
	}
	if iru.mutation.StartedAtCleared() {
		_spec.ClearField(irtrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := iru.mutation.FinishedAt(); ok {
		_spec.SetField(irtrun.FieldFinishedAt, field.TypeTime, value)
	}
	if iru.mutation.FinishedAtCleared() {
		_spec.ClearField(irtrun.FieldFinishedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irtrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iru.mutation.done = true
	return n, nil
}

// IrtRunUpdateOne is the builder for updating a single IrtRun entity.
type IrtRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IrtRunMutation
}

// SetStatus sets the "status" field.
func (iruo *IrtRunUpdateOne) SetStatus(i irtrun.Status) *IrtRunUpdateOne {
	iruo.mutation.SetStatus(i)
	return iruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iruo *IrtRunUpdateOne) SetNillableStatus(i *irtrun.Status) *IrtRunUpdateOne {
	if i != nil {
		iruo.SetStatus(*i)
	}
	return iruo
}

// SetMetrics sets the "metrics" field.
func (iruo *IrtRunUpdateOne) SetMetrics(m map[string]interface{}) *IrtRunUpdateOne {
	iruo.mutation.SetMetrics(m)
	return iruo
}

// ClearMetrics clears the value of the "metrics" field.
func (iruo *IrtRunUpdateOne) ClearMetrics() *IrtRunUpdateOne {
	iruo.mutation.ClearMetrics()
	return iruo
}

// SetError sets the "error" field.
func (iruo *IrtRunUpdateOne) SetError(s string) *IrtRunUpdateOne {
	iruo.mutation.SetError(s)
	return iruo
}

// SetNillableError sets the "error" field if the given value is not nil.
func (iruo *IrtRunUpdateOne) SetNillableError(s *string) *IrtRunUpdateOne {
	if s != nil {
		iruo.SetError(*s)
	}
	return iruo
}

// SetNotes sets the "notes" field.
func (iruo *IrtRunUpdateOne) SetNotes(s string) *IrtRunUpdateOne {
	iruo.mutation.SetNotes(s)
	return iruo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (iruo *IrtRunUpdateOne) SetNillableNotes(s *string) *IrtRunUpdateOne {
	if s != nil {
		iruo.SetNotes(*s)
	}
	return iruo
}

// SetArtifactDir sets the "artifact_dir" field.
func (iruo *IrtRunUpdateOne) SetArtifactDir(s string) *IrtRunUpdateOne {
	iruo.mutation.SetArtifactDir(s)
	return iruo
}

// SetNillableArtifactDir sets the "artifact_dir" field if the given value is not nil.
func (iruo *IrtRunUpdateOne) SetNillableArtifactDir(s *string) *IrtRunUpdateOne {
	if s != nil {
		iruo.SetArtifactDir(*s)
	}
	return iruo
}

// SetStartedAt sets the "started_at" field.
func (iruo *IrtRunUpdateOne) SetStartedAt(t time.Time) *IrtRunUpdateOne {
	iruo.mutation.SetStartedAt(t)
	return iruo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (iruo *IrtRunUpdateOne) SetNillableStartedAt(t *time.Time) *IrtRunUpdateOne {
	if t != nil {
		iruo.SetStartedAt(*t)
	}
	return iruo
}

// ClearStartedAt clears the value of the "started_at" field.
func (iruo *IrtRunUpdateOne) ClearStartedAt() *IrtRunUpdateOne {
	iruo.mutation.ClearStartedAt()
	return iruo
}

// SetFinishedAt sets the "finished_at" field.
func (iruo *IrtRunUpdateOne) SetFinishedAt(t time.Time) *IrtRunUpdateOne {
	iruo.mutation.SetFinishedAt(t)
	return iruo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (iruo *IrtRunUpdateOne) SetNillableFinishedAt(t *time.Time) *IrtRunUpdateOne {
	if t != nil {
		iruo.SetFinishedAt(*t)
	}
	return iruo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (iruo *IrtRunUpdateOne) ClearFinishedAt() *IrtRunUpdateOne {
	iruo.mutation.ClearFinishedAt()
	return iruo
}

// Mutation returns the IrtRunMutation object of the builder.
func (iruo *IrtRunUpdateOne) Mutation() *IrtRunMutation {
	return iruo.mutation
}

// Where appends a list predicates to the IrtRunUpdate builder.
func (iruo *IrtRunUpdateOne) Where(ps ...predicate.IrtRun) *IrtRunUpdateOne {
	iruo.mutation.Where(ps...)
	return iruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iruo *IrtRunUpdateOne) Select(field string, fields ...string) *IrtRunUpdateOne {
	iruo.fields = append([]string{field}, fields...)
	return iruo
}

// Save executes the query and returns the updated IrtRun entity.
func (iruo *IrtRunUpdateOne) Save(ctx context.Context) (*IrtRun, error) {
	return withHooks(ctx, iruo.sqlSave, iruo.mutation, iruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iruo *IrtRunUpdateOne) SaveX(ctx context.Context) *IrtRun {
	node, err := iruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iruo *IrtRunUpdateOne) Exec(ctx context.Context) error {
	_, err := iruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iruo *IrtRunUpdateOne) ExecX(ctx context.Context) {
	if err := iruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iruo *IrtRunUpdateOne) check() error {
	if v, ok := iruo.mutation.Status(); ok {
		if err := irtrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IrtRun.status": %w`, err)}
		}
	}
	return nil
}

func (iruo *IrtRunUpdateOne) sqlSave(ctx context.Context) (_node *IrtRun, err error) {
	if err := iruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(irtrun.Table, irtrun.Columns, sqlgraph.NewFieldSpec(irtrun.FieldID, field.TypeString))
	id, ok := iruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IrtRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irtrun.FieldID)
		for _, f := range fields {
			if !irtrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != irtrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iruo.mutation.Status(); ok {
		_spec.SetField(irtrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iruo.mutation.Metrics(); ok {
		_spec.SetField(irtrun.FieldMetrics, field.TypeJSON, value)
	}
	if iruo.mutation.MetricsCleared() {
		_spec.ClearField(irtrun.FieldMetrics, field.TypeJSON)
	}
	if value, ok := iruo.mutation.Error(); ok {
		_spec.SetField(irtrun.FieldError, field.TypeString, value)
	}
	if value, ok := iruo.mutation.Notes(); ok {
		_spec.SetField(irtrun.FieldNotes, field.TypeString, value)
	}
	if value, ok := iruo.mutation.ArtifactDir(); ok {
		_spec.SetField(irtrun.FieldArtifactDir, field.TypeString, value)
	}
	if value, ok := iruo.mutation.StartedAt(); ok {
		_spec.SetField(irtrun.FieldStartedAt, field.TypeTime, value)
	}
	if iruo.mutation.StartedAtCleared() {
		_spec.ClearField(irtrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := iruo.mutation.FinishedAt(); ok {
		_spec.SetField(irtrun.FieldFinishedAt, field.TypeTime, value)
	}
	if iruo.mutation.FinishedAtCleared() {
		_spec.ClearField(irtrun.FieldFinishedAt, field.TypeTime)
	}
	_node = &IrtRun{config: iruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{irtrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iruo.mutation.done = true
	return _node, nil
}
