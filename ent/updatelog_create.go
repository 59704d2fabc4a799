// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/updatelog"
)

// UpdateLogCreate is the builder for creating a UpdateLog entity.
type UpdateLogCreate struct {
	config
	mutation *UpdateLogMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (ulc *UpdateLogCreate) SetAttemptID(s string) *UpdateLogCreate {
	ulc.mutation.SetAttemptID(s)
	return ulc
}

// SetUserID sets the "user_id" field.
func (ulc *UpdateLogCreate) SetUserID(s string) *UpdateLogCreate {
	ulc.mutation.SetUserID(s)
	return ulc
}

// SetQuestionID sets the "question_id" field.
func (ulc *UpdateLogCreate) SetQuestionID(s string) *UpdateLogCreate {
	ulc.mutation.SetQuestionID(s)
	return ulc
}

// SetScopeType sets the "scope_type" field.
func (ulc *UpdateLogCreate) SetScopeType(ut updatelog.ScopeType) *UpdateLogCreate {
	ulc.mutation.SetScopeType(ut)
	return ulc
}

// SetScopeID sets the "scope_id" field.
func (ulc *UpdateLogCreate) SetScopeID(s string) *UpdateLogCreate {
	ulc.mutation.SetScopeID(s)
	return ulc
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (ulc *UpdateLogCreate) SetNillableScopeID(s *string) *UpdateLogCreate {
	if s != nil {
		ulc.SetScopeID(*s)
	}
	return ulc
}

// SetScore sets the "score" field.
func (ulc *UpdateLogCreate) SetScore(b bool) *UpdateLogCreate {
	ulc.mutation.SetScore(b)
	return ulc
}

// SetPPred sets the "p_pred" field.
func (ulc *UpdateLogCreate) SetPPred(f float64) *UpdateLogCreate {
	ulc.mutation.SetPPred(f)
	return ulc
}

// SetUserRatingPre sets the "user_rating_pre" field.
func (ulc *UpdateLogCreate) SetUserRatingPre(f float64) *UpdateLogCreate {
	ulc.mutation.SetUserRatingPre(f)
	return ulc
}

// SetUserRatingPost sets the "user_rating_post" field.
func (ulc *UpdateLogCreate) SetUserRatingPost(f float64) *UpdateLogCreate {
	ulc.mutation.SetUserRatingPost(f)
	return ulc
}

// SetUserUncertaintyPre sets the "user_uncertainty_pre" field.
func (ulc *UpdateLogCreate) SetUserUncertaintyPre(f float64) *UpdateLogCreate {
	ulc.mutation.SetUserUncertaintyPre(f)
	return ulc
}

// SetUserUncertaintyPost sets the "user_uncertainty_post" field.
func (ulc *UpdateLogCreate) SetUserUncertaintyPost(f float64) *UpdateLogCreate {
	ulc.mutation.SetUserUncertaintyPost(f)
	return ulc
}

// SetQuestionRatingPre sets the "question_rating_pre" field.
func (ulc *UpdateLogCreate) SetQuestionRatingPre(f float64) *UpdateLogCreate {
	ulc.mutation.SetQuestionRatingPre(f)
	return ulc
}

// SetQuestionRatingPost sets the "question_rating_post" field.
func (ulc *UpdateLogCreate) SetQuestionRatingPost(f float64) *UpdateLogCreate {
	ulc.mutation.SetQuestionRatingPost(f)
	return ulc
}

// SetQuestionUncertaintyPre sets the "question_uncertainty_pre" field.
func (ulc *UpdateLogCreate) SetQuestionUncertaintyPre(f float64) *UpdateLogCreate {
	ulc.mutation.SetQuestionUncertaintyPre(f)
	return ulc
}

// SetQuestionUncertaintyPost sets the "question_uncertainty_post" field.
func (ulc *UpdateLogCreate) SetQuestionUncertaintyPost(f float64) *UpdateLogCreate {
	ulc.mutation.SetQuestionUncertaintyPost(f)
	return ulc
}

// SetKUser sets the "k_user" field.
func (ulc *UpdateLogCreate) SetKUser(f float64) *UpdateLogCreate {
	ulc.mutation.SetKUser(f)
	return ulc
}

// SetKQuestion sets the "k_question" field.
func (ulc *UpdateLogCreate) SetKQuestion(f float64) *UpdateLogCreate {
	ulc.mutation.SetKQuestion(f)
	return ulc
}

// SetGuessFloor sets the "guess_floor" field.
func (ulc *UpdateLogCreate) SetGuessFloor(f float64) *UpdateLogCreate {
	ulc.mutation.SetGuessFloor(f)
	return ulc
}

// SetScale sets the "scale" field.
func (ulc *UpdateLogCreate) SetScale(f float64) *UpdateLogCreate {
	ulc.mutation.SetScale(f)
	return ulc
}

// SetOptionCount sets the "option_count" field.
func (ulc *UpdateLogCreate) SetOptionCount(i int) *UpdateLogCreate {
	ulc.mutation.SetOptionCount(i)
	return ulc
}

// SetNillableOptionCount sets the "option_count" field if the given value is not nil.
func (ulc *UpdateLogCreate) SetNillableOptionCount(i *int) *UpdateLogCreate {
	if i != nil {
		ulc.SetOptionCount(*i)
	}
	return ulc
}

// SetOccurredAt sets the "occurred_at" field.
func (ulc *UpdateLogCreate) SetOccurredAt(t time.Time) *UpdateLogCreate {
	ulc.mutation.SetOccurredAt(t)
	return ulc
}

// SetCreatedAt sets the "created_at" field.
func (ulc *UpdateLogCreate) SetCreatedAt(t time.Time) *UpdateLogCreate {
	ulc.mutation.SetCreatedAt(t)
	return ulc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ulc *UpdateLogCreate) SetNillableCreatedAt(t *time.Time) *UpdateLogCreate {
	if t != nil {
		ulc.SetCreatedAt(*t)
	}
	return ulc
}

// Mutation returns the UpdateLogMutation object of the builder.
func (ulc *UpdateLogCreate) Mutation() *UpdateLogMutation {
	return ulc.mutation
}

// Save creates the UpdateLog in the database.
func (ulc *UpdateLogCreate) Save(ctx context.Context) (*UpdateLog, error) {
	ulc.defaults()
	return withHooks(ctx, ulc.sqlSave, ulc.mutation, ulc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ulc *UpdateLogCreate) SaveX(ctx context.Context) *UpdateLog {
	v, err := ulc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ulc *UpdateLogCreate) Exec(ctx context.Context) error {
	_, err := ulc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ulc *UpdateLogCreate) ExecX(ctx context.Context) {
	if err := ulc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ulc *UpdateLogCreate) defaults() {
	if _, ok := ulc.mutation.ScopeID(); !ok {
		v := updatelog.DefaultScopeID
		ulc.mutation.SetScopeID(v)
	}
	if _, ok := ulc.mutation.OptionCount(); !ok {
		v := updatelog.DefaultOptionCount
		ulc.mutation.SetOptionCount(v)
	}
	if _, ok := ulc.mutation.CreatedAt(); !ok {
		v := updatelog.DefaultCreatedAt()
		ulc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ulc *UpdateLogCreate) check() error {
	if _, ok := ulc.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "UpdateLog.attempt_id"`)}
	}
	if v, ok := ulc.mutation.AttemptID(); ok {
		if err := updatelog.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "UpdateLog.attempt_id": %w`, err)}
		}
	}
	if _, ok := ulc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UpdateLog.user_id"`)}
	}
	if v, ok := ulc.mutation.UserID(); ok {
		if err := updatelog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UpdateLog.user_id": %w`, err)}
		}
	}
	if _, ok := ulc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "UpdateLog.question_id"`)}
	}
	if v, ok := ulc.mutation.QuestionID(); ok {
		if err := updatelog.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "UpdateLog.question_id": %w`, err)}
		}
	}
	if _, ok := ulc.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "UpdateLog.scope_type"`)}
	}
	if v, ok := ulc.mutation.ScopeType(); ok {
		if err := updatelog.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "UpdateLog.scope_type": %w`, err)}
		}
	}
	if _, ok := ulc.mutation.ScopeID(); !ok {
		return &ValidationError{Name: "scope_id", err: errors.New(`ent: missing required field "UpdateLog.scope_id"`)}
	}
	if _, ok := ulc.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "UpdateLog.score"`)}
	}
	if _, ok := ulc.mutation.PPred(); !ok {
		return &ValidationError{Name: "p_pred", err: errors.New(`ent: missing required field "UpdateLog.p_pred"`)}
	}
	if _, ok := ulc.mutation.UserRatingPre(); !ok {
		return &ValidationError{Name: "user_rating_pre", err: errors.New(`ent: missing required field "UpdateLog.user_rating_pre"`)}
	}
	if _, ok := ulc.mutation.UserRatingPost(); !ok {
		return &ValidationError{Name: "user_rating_post", err: errors.New(`ent: missing required field "UpdateLog.user_rating_post"`)}
	}
	if _, ok := ulc.mutation.UserUncertaintyPre(); !ok {
		return &ValidationError{Name: "user_uncertainty_pre", err: errors.New(`ent: missing required field "UpdateLog.user_uncertainty_pre"`)}
	}
	if _, ok := ulc.mutation.UserUncertaintyPost(); !ok {
		return &ValidationError{Name: "user_uncertainty_post", err: errors.New(`ent: missing required field "UpdateLog.user_uncertainty_post"`)}
	}
	if _, ok := ulc.mutation.QuestionRatingPre(); !ok {
		return &ValidationError{Name: "question_rating_pre", err: errors.New(`ent: missing required field "UpdateLog.question_rating_pre"`)}
	}
	if _, ok := ulc.mutation.QuestionRatingPost(); !ok {
		return &ValidationError{Name: "question_rating_post", err: errors.New(`ent: missing required field "UpdateLog.question_rating_post"`)}
	}
	if _, ok := ulc.mutation.QuestionUncertaintyPre(); !ok {
		return &ValidationError{Name: "question_uncertainty_pre", err: errors.New(`ent: missing required field "UpdateLog.question_uncertainty_pre"`)}
	}
	if _, ok := ulc.mutation.QuestionUncertaintyPost(); !ok {
		return &ValidationError{Name: "question_uncertainty_post", err: errors.New(`ent: missing required field "UpdateLog.question_uncertainty_post"`)}
	}
	if _, ok := ulc.mutation.KUser(); !ok {
		return &ValidationError{Name: "k_user", err: errors.New(`ent: missing required field "UpdateLog.k_user"`)}
	}
	if _, ok := ulc.mutation.KQuestion(); !ok {
		return &ValidationError{Name: "k_question", err: errors.New(`ent: missing required field "UpdateLog.k_question"`)}
	}
	if _, ok := ulc.mutation.GuessFloor(); !ok {
		return &ValidationError{Name: "guess_floor", err: errors.New(`ent: missing required field "UpdateLog.guess_floor"`)}
	}
	if _, ok := ulc.mutation.Scale(); !ok {
		return &ValidationError{Name: "scale", err: errors.New(`ent: missing required field "UpdateLog.scale"`)}
	}
	if _, ok := ulc.mutation.OptionCount(); !ok {
		return &ValidationError{Name: "option_count", err: errors.New(`ent: missing required field "UpdateLog.option_count"`)}
	}
	if _, ok := ulc.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "UpdateLog.occurred_at"`)}
	}
	if _, ok := ulc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UpdateLog.created_at"`)}
	}
	return nil
}

func (ulc *UpdateLogCreate) sqlSave(ctx context.Context) (*UpdateLog, error) {
	if err := ulc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ulc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ulc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ulc.mutation.id = &_node.ID
	ulc.mutation.done = true
	return _node, nil
}

func (ulc *UpdateLogCreate) createSpec() (*UpdateLog, *sqlgraph.CreateSpec) {
	var (
		_node = &UpdateLog{config: ulc.config}
		_spec = sqlgraph.NewCreateSpec(updatelog.Table, sqlgraph.NewFieldSpec(updatelog.FieldID, field.TypeInt))
	)
	if value, ok := ulc.mutation.AttemptID(); ok {
		_spec.SetField(updatelog.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := ulc.mutation.UserID(); ok {
		_spec.SetField(updatelog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := ulc.mutation.QuestionID(); ok {
		_spec.SetField(updatelog.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := ulc.mutation.ScopeType(); ok {
		_spec.SetField(updatelog.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := ulc.mutation.ScopeID(); ok {
		_spec.SetField(updatelog.FieldScopeID, field.TypeString, value)
		_node.ScopeID = value
	}
	if value, ok := ulc.mutation.Score(); ok {
		_spec.SetField(updatelog.FieldScore, field.TypeBool, value)
		_node.Score = value
	}
	if value, ok := ulc.mutation.PPred(); ok {
		_spec.SetField(updatelog.FieldPPred, field.TypeFloat64, value)
		_node.PPred = value
	}
	if value, ok := ulc.mutation.UserRatingPre(); ok {
		_spec.SetField(updatelog.FieldUserRatingPre, field.TypeFloat64, value)
		_node.UserRatingPre = value
	}
	if value, ok := ulc.mutation.UserRatingPost(); ok {
		_spec.SetField(updatelog.FieldUserRatingPost, field.TypeFloat64, value)
		_node.UserRatingPost = value
	}
	if value, ok := ulc.mutation.UserUncertaintyPre(); ok {
		_spec.SetField(updatelog.FieldUserUncertaintyPre, field.TypeFloat64, value)
		_node.UserUncertaintyPre = value
	}
	if value, ok := ulc.mutation.UserUncertaintyPost(); ok {
		_spec.SetField(updatelog.FieldUserUncertaintyPost, field.TypeFloat64, value)
		_node.UserUncertaintyPost = value
	}
	if value, ok := ulc.mutation.QuestionRatingPre(); ok {
		_spec.SetField(updatelog.FieldQuestionRatingPre, field.TypeFloat64, value)
		_node.QuestionRatingPre = value
	}
	if value, ok := ulc.mutation.QuestionRatingPost(); ok {
		_spec.SetField(updatelog.FieldQuestionRatingPost, field.TypeFloat64, value)
		_node.QuestionRatingPost = value
	}
	if value, ok := ulc.mutation.QuestionUncertaintyPre(); ok {
		_spec.SetField(updatelog.FieldQuestionUncertaintyPre, field.TypeFloat64, value)
		_node.QuestionUncertaintyPre = value
	}
	if value, ok := ulc.mutation.QuestionUncertaintyPost(); ok {
		_spec.SetField(updatelog.FieldQuestionUncertaintyPost, field.TypeFloat64, value)
		_node.QuestionUncertaintyPost = value
	}
	if value, ok := ulc.mutation.KUser(); ok {
		_spec.SetField(updatelog.FieldKUser, field.TypeFloat64, value)
		_node.KUser = value
	}
	if value, ok := ulc.mutation.KQuestion(); ok {
		_spec.SetField(updatelog.FieldKQuestion, field.TypeFloat64, value)
		_node.KQuestion = value
	}
	if value, ok := ulc.mutation.GuessFloor(); ok {
		_spec.SetField(updatelog.FieldGuessFloor, field.TypeFloat64, value)
		_node.GuessFloor = value
	}
	if value, ok := ulc.mutation.Scale(); ok {
		_spec.SetField(updatelog.FieldScale, field.TypeFloat64, value)
		_node.Scale = value
	}
	if value, ok := ulc.mutation.OptionCount(); ok {
		_spec.SetField(updatelog.FieldOptionCount, field.TypeInt, value)
		_node.OptionCount = value
	}
	if value, ok := ulc.mutation.OccurredAt(); ok {
		_spec.SetField(updatelog.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := ulc.mutation.CreatedAt(); ok {
		_spec.SetField(updatelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UpdateLogCreateBulk is the builder for creating many UpdateLog entities in bulk.
type UpdateLogCreateBulk struct {
	config
	err      error
	builders []*UpdateLogCreate
}

// Save creates the UpdateLog entities in the database.
func (ulcb *UpdateLogCreateBulk) Save(ctx context.Context) ([]*UpdateLog, error) {
	if ulcb.err != nil {
		return nil, ulcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ulcb.builders))
	nodes := make([]*UpdateLog, len(ulcb.builders))
	mutators := make([]Mutator, len(ulcb.builders))
	for i := range ulcb.builders {
		func(i int, root context.Context) {
			builder := ulcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UpdateLogMutation)
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
					_, err = mutators[i+1].Mutate(root, ulcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ulcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ulcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ulcb *UpdateLogCreateBulk) SaveX(ctx context.Context) []*UpdateLog {
	v, err := ulcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ulcb *UpdateLogCreateBulk) Exec(ctx context.Context) error {
	_, err := ulcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ulcb *UpdateLogCreateBulk) ExecX(ctx context.Context) {
	if err := ulcb.Exec(ctx); err != nil {
		panic(err)
	}
}
