// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/irtrun"
	"github.com/adaptly/calibrant/ent/predicate"
	"github.com/adaptly/calibrant/ent/questionrating"
	"github.com/adaptly/calibrant/ent/updatelog"
	"github.com/adaptly/calibrant/ent/userrating"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIrtAbility     = "IrtAbility"
	TypeIrtItemParam   = "IrtItemParam"
	TypeIrtRun         = "IrtRun"
	TypeQuestionRating = "QuestionRating"
	TypeUpdateLog      = "UpdateLog"
	TypeUserRating     = "UserRating"
)

// IrtAbilityMutation represents an operation that mutates the IrtAbility nodes in the graph.
type IrtAbilityMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	user_id       *string
	theta         *float64
	addtheta      *float64
	theta_se      *float64
	addtheta_se   *float64
	n_obs         *int
	addn_obs      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IrtAbility, error)
	predicates    []predicate.IrtAbility
}

var _ ent.Mutation = (*IrtAbilityMutation)(nil)

// irtabilityOption allows management of the mutation configuration using functional options.
type irtabilityOption func(*IrtAbilityMutation)

// newIrtAbilityMutation creates new mutation for the IrtAbility entity.
func newIrtAbilityMutation(c config, op Op, opts ...irtabilityOption) *IrtAbilityMutation {
	m := &IrtAbilityMutation{
		config:        c,
		op:            op,
		typ:           TypeIrtAbility,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIrtAbilityID sets the ID field of the mutation.
func withIrtAbilityID(id int) irtabilityOption {
	return func(m *IrtAbilityMutation) {
		var (
			err   error
			once  sync.Once
			value *IrtAbility
		)
		m.oldValue = func(ctx context.Context) (*IrtAbility, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IrtAbility.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIrtAbility sets the old IrtAbility of the mutation.
func withIrtAbility(node *IrtAbility) irtabilityOption {
	return func(m *IrtAbilityMutation) {
		m.oldValue = func(context.Context) (*IrtAbility, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IrtAbilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IrtAbilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IrtAbilityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IrtAbilityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IrtAbility.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *IrtAbilityMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *IrtAbilityMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the IrtAbility entity.
// If the IrtAbility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtAbilityMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *IrtAbilityMutation) ResetRunID() {
	m.run_id = nil
}

// SetUserID sets the "user_id" field.
func (m *IrtAbilityMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IrtAbilityMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IrtAbility entity.
// If the IrtAbility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtAbilityMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IrtAbilityMutation) ResetUserID() {
	m.user_id = nil
}

// SetTheta sets the "theta" field.
func (m *IrtAbilityMutation) SetTheta(f float64) {
	m.theta = &f
	m.addtheta = nil
}

// Theta returns the value of the "theta" field in the mutation.
func (m *IrtAbilityMutation) Theta() (r float64, exists bool) {
	v := m.theta
	if v == nil {
		return
	}
	return *v, true
}

// OldTheta returns the old "theta" field's value of the IrtAbility entity.
// If the IrtAbility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtAbilityMutation) OldTheta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheta: %w", err)
	}
	return oldValue.Theta, nil
}

// AddTheta adds f to the "theta" field.
func (m *IrtAbilityMutation) AddTheta(f float64) {
	if m.addtheta != nil {
		*m.addtheta += f
	} else {
		m.addtheta = &f
	}
}

// AddedTheta returns the value that was added to the "theta" field in this mutation.
func (m *IrtAbilityMutation) AddedTheta() (r float64, exists bool) {
	v := m.addtheta
	if v == nil {
		return
	}
	return *v, true
}

// ResetTheta resets all changes to the "theta" field.
func (m *IrtAbilityMutation) ResetTheta() {
	m.theta = nil
	m.addtheta = nil
}

// SetThetaSe sets the "theta_se" field.
func (m *IrtAbilityMutation) SetThetaSe(f float64) {
	m.theta_se = &f
	m.addtheta_se = nil
}

// ThetaSe returns the value of the "theta_se" field in the mutation.
func (m *IrtAbilityMutation) ThetaSe() (r float64, exists bool) {
	v := m.theta_se
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaSe returns the old "theta_se" field's value of the IrtAbility entity.
// If the IrtAbility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtAbilityMutation) OldThetaSe(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaSe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaSe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaSe: %w", err)
	}
	return oldValue.ThetaSe, nil
}

// AddThetaSe adds f to the "theta_se" field.
func (m *IrtAbilityMutation) AddThetaSe(f float64) {
	if m.addtheta_se != nil {
		*m.addtheta_se += f
	} else {
		m.addtheta_se = &f
	}
}

// AddedThetaSe returns the value that was added to the "theta_se" field in this mutation.
func (m *IrtAbilityMutation) AddedThetaSe() (r float64, exists bool) {
	v := m.addtheta_se
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaSe resets all changes to the "theta_se" field.
func (m *IrtAbilityMutation) ResetThetaSe() {
	m.theta_se = nil
	m.addtheta_se = nil
}

// SetNObs sets the "n_obs" field.
func (m *IrtAbilityMutation) SetNObs(i int) {
	m.n_obs = &i
	m.addn_obs = nil
}

// NObs returns the value of the "n_obs" field in the mutation.
func (m *IrtAbilityMutation) NObs() (r int, exists bool) {
	v := m.n_obs
	if v == nil {
		return
	}
	return *v, true
}

// OldNObs returns the old "n_obs" field's value of the IrtAbility entity.
// If the IrtAbility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtAbilityMutation) OldNObs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNObs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNObs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNObs: %w", err)
	}
	return oldValue.NObs, nil
}

// AddNObs adds i to the "n_obs" field.
func (m *IrtAbilityMutation) AddNObs(i int) {
	if m.addn_obs != nil {
		*m.addn_obs += i
	} else {
		m.addn_obs = &i
	}
}

// AddedNObs returns the value that was added to the "n_obs" field in this mutation.
func (m *IrtAbilityMutation) AddedNObs() (r int, exists bool) {
	v := m.addn_obs
	if v == nil {
		return
	}
	return *v, true
}

// ResetNObs resets all changes to the "n_obs" field.
func (m *IrtAbilityMutation) ResetNObs() {
	m.n_obs = nil
	m.addn_obs = nil
}

// Where appends a list predicates to the IrtAbilityMutation builder.
func (m *IrtAbilityMutation) Where(ps ...predicate.IrtAbility) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IrtAbilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IrtAbilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IrtAbility, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IrtAbilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IrtAbilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IrtAbility).
func (m *IrtAbilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IrtAbilityMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run_id != nil {
		fields = append(fields, irtability.FieldRunID)
	}
	if m.user_id != nil {
		fields = append(fields, irtability.FieldUserID)
	}
	if m.theta != nil {
		fields = append(fields, irtability.FieldTheta)
	}
	if m.theta_se != nil {
		fields = append(fields, irtability.FieldThetaSe)
	}
	if m.n_obs != nil {
		fields = append(fields, irtability.FieldNObs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IrtAbilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case irtability.FieldRunID:
		return m.RunID()
	case irtability.FieldUserID:
		return m.UserID()
	case irtability.FieldTheta:
		return m.Theta()
	case irtability.FieldThetaSe:
		return m.ThetaSe()
	case irtability.FieldNObs:
		return m.NObs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IrtAbilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case irtability.FieldRunID:
		return m.OldRunID(ctx)
	case irtability.FieldUserID:
		return m.OldUserID(ctx)
	case irtability.FieldTheta:
		return m.OldTheta(ctx)
	case irtability.FieldThetaSe:
		return m.OldThetaSe(ctx)
	case irtability.FieldNObs:
		return m.OldNObs(ctx)
	}
	return nil, fmt.Errorf("unknown IrtAbility field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrtAbilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case irtability.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case irtability.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case irtability.FieldTheta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheta(v)
		return nil
	case irtability.FieldThetaSe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaSe(v)
		return nil
	case irtability.FieldNObs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNObs(v)
		return nil
	}
	return fmt.Errorf("unknown IrtAbility field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IrtAbilityMutation) AddedFields() []string {
	var fields []string
	if m.addtheta != nil {
		fields = append(fields, irtability.FieldTheta)
	}
	if m.addtheta_se != nil {
		fields = append(fields, irtability.FieldThetaSe)
	}
	if m.addn_obs != nil {
		fields = append(fields, irtability.FieldNObs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IrtAbilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case irtability.FieldTheta:
		return m.AddedTheta()
	case irtability.FieldThetaSe:
		return m.AddedThetaSe()
	case irtability.FieldNObs:
		return m.AddedNObs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrtAbilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case irtability.FieldTheta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTheta(v)
		return nil
	case irtability.FieldThetaSe:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaSe(v)
		return nil
	case irtability.FieldNObs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNObs(v)
		return nil
	}
	return fmt.Errorf("unknown IrtAbility numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IrtAbilityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IrtAbilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IrtAbilityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IrtAbility nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IrtAbilityMutation) ResetField(name string) error {
	switch name {
	case irtability.FieldRunID:
		m.ResetRunID()
		return nil
	case irtability.FieldUserID:
		m.ResetUserID()
		return nil
	case irtability.FieldTheta:
		m.ResetTheta()
		return nil
	case irtability.FieldThetaSe:
		m.ResetThetaSe()
		return nil
	case irtability.FieldNObs:
		m.ResetNObs()
		return nil
	}
	return fmt.Errorf("unknown IrtAbility field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IrtAbilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IrtAbilityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IrtAbilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IrtAbilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IrtAbilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IrtAbilityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IrtAbilityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IrtAbility unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IrtAbilityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IrtAbility edge %s", name)
}

// IrtItemParamMutation represents an operation that mutates the IrtItemParam nodes in the graph.
type IrtItemParamMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	run_id               *string
	question_id          *string
	discrimination       *float64
	adddiscrimination    *float64
	difficulty           *float64
	adddifficulty        *float64
	guessing             *float64
	addguessing          *float64
	se_discrimination    *float64
	addse_discrimination *float64
	se_difficulty        *float64
	addse_difficulty     *float64
	n_obs                *int
	addn_obs             *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*IrtItemParam, error)
	predicates           []predicate.IrtItemParam
}

var _ ent.Mutation = (*IrtItemParamMutation)(nil)

// irtitemparamOption allows management of the mutation configuration using functional options.
type irtitemparamOption func(*IrtItemParamMutation)

// newIrtItemParamMutation creates new mutation for the IrtItemParam entity.
func newIrtItemParamMutation(c config, op Op, opts ...irtitemparamOption) *IrtItemParamMutation {
	m := &IrtItemParamMutation{
		config:        c,
		op:            op,
		typ:           TypeIrtItemParam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIrtItemParamID sets the ID field of the mutation.
func withIrtItemParamID(id int) irtitemparamOption {
	return func(m *IrtItemParamMutation) {
		var (
			err   error
			once  sync.Once
			value *IrtItemParam
		)
		m.oldValue = func(ctx context.Context) (*IrtItemParam, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IrtItemParam.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIrtItemParam sets the old IrtItemParam of the mutation.
func withIrtItemParam(node *IrtItemParam) irtitemparamOption {
	return func(m *IrtItemParamMutation) {
		m.oldValue = func(context.Context) (*IrtItemParam, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IrtItemParamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IrtItemParamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IrtItemParamMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IrtItemParamMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IrtItemParam.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *IrtItemParamMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *IrtItemParamMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *IrtItemParamMutation) ResetRunID() {
	m.run_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *IrtItemParamMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *IrtItemParamMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *IrtItemParamMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetDiscrimination sets the "discrimination" field.
func (m *IrtItemParamMutation) SetDiscrimination(f float64) {
	m.discrimination = &f
	m.adddiscrimination = nil
}

// Discrimination returns the value of the "discrimination" field in the mutation.
func (m *IrtItemParamMutation) Discrimination() (r float64, exists bool) {
	v := m.discrimination
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscrimination returns the old "discrimination" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldDiscrimination(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscrimination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscrimination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscrimination: %w", err)
	}
	return oldValue.Discrimination, nil
}

// AddDiscrimination adds f to the "discrimination" field.
func (m *IrtItemParamMutation) AddDiscrimination(f float64) {
	if m.adddiscrimination != nil {
		*m.adddiscrimination += f
	} else {
		m.adddiscrimination = &f
	}
}

// AddedDiscrimination returns the value that was added to the "discrimination" field in this mutation.
func (m *IrtItemParamMutation) AddedDiscrimination() (r float64, exists bool) {
	v := m.adddiscrimination
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscrimination resets all changes to the "discrimination" field.
func (m *IrtItemParamMutation) ResetDiscrimination() {
	m.discrimination = nil
	m.adddiscrimination = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *IrtItemParamMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *IrtItemParamMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *IrtItemParamMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *IrtItemParamMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *IrtItemParamMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetGuessing sets the "guessing" field.
func (m *IrtItemParamMutation) SetGuessing(f float64) {
	m.guessing = &f
	m.addguessing = nil
}

// Guessing returns the value of the "guessing" field in the mutation.
func (m *IrtItemParamMutation) Guessing() (r float64, exists bool) {
	v := m.guessing
	if v == nil {
		return
	}
	return *v, true
}

// OldGuessing returns the old "guessing" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldGuessing(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuessing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuessing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuessing: %w", err)
	}
	return oldValue.Guessing, nil
}

// AddGuessing adds f to the "guessing" field.
func (m *IrtItemParamMutation) AddGuessing(f float64) {
	if m.addguessing != nil {
		*m.addguessing += f
	} else {
		m.addguessing = &f
	}
}

// AddedGuessing returns the value that was added to the "guessing" field in this mutation.
func (m *IrtItemParamMutation) AddedGuessing() (r float64, exists bool) {
	v := m.addguessing
	if v == nil {
		return
	}
	return *v, true
}

// ResetGuessing resets all changes to the "guessing" field.
func (m *IrtItemParamMutation) ResetGuessing() {
	m.guessing = nil
	m.addguessing = nil
}

// SetSeDiscrimination sets the "se_discrimination" field.
func (m *IrtItemParamMutation) SetSeDiscrimination(f float64) {
	m.se_discrimination = &f
	m.addse_discrimination = nil
}

// SeDiscrimination returns the value of the "se_discrimination" field in the mutation.
func (m *IrtItemParamMutation) SeDiscrimination() (r float64, exists bool) {
	v := m.se_discrimination
	if v == nil {
		return
	}
	return *v, true
}

// OldSeDiscrimination returns the old "se_discrimination" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldSeDiscrimination(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeDiscrimination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeDiscrimination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeDiscrimination: %w", err)
	}
	return oldValue.SeDiscrimination, nil
}

// AddSeDiscrimination adds f to the "se_discrimination" field.
func (m *IrtItemParamMutation) AddSeDiscrimination(f float64) {
	if m.addse_discrimination != nil {
		*m.addse_discrimination += f
	} else {
		m.addse_discrimination = &f
	}
}

// AddedSeDiscrimination returns the value that was added to the "se_discrimination" field in this mutation.
func (m *IrtItemParamMutation) AddedSeDiscrimination() (r float64, exists bool) {
	v := m.addse_discrimination
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeDiscrimination resets all changes to the "se_discrimination" field.
func (m *IrtItemParamMutation) ResetSeDiscrimination() {
	m.se_discrimination = nil
	m.addse_discrimination = nil
}

// SetSeDifficulty sets the "se_difficulty" field.
func (m *IrtItemParamMutation) SetSeDifficulty(f float64) {
	m.se_difficulty = &f
	m.addse_difficulty = nil
}

// SeDifficulty returns the value of the "se_difficulty" field in the mutation.
func (m *IrtItemParamMutation) SeDifficulty() (r float64, exists bool) {
	v := m.se_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldSeDifficulty returns the old "se_difficulty" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldSeDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeDifficulty: %w", err)
	}
	return oldValue.SeDifficulty, nil
}

// AddSeDifficulty adds f to the "se_difficulty" field.
func (m *IrtItemParamMutation) AddSeDifficulty(f float64) {
	if m.addse_difficulty != nil {
		*m.addse_difficulty += f
	} else {
		m.addse_difficulty = &f
	}
}

// AddedSeDifficulty returns the value that was added to the "se_difficulty" field in this mutation.
func (m *IrtItemParamMutation) AddedSeDifficulty() (r float64, exists bool) {
	v := m.addse_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeDifficulty resets all changes to the "se_difficulty" field.
func (m *IrtItemParamMutation) ResetSeDifficulty() {
	m.se_difficulty = nil
	m.addse_difficulty = nil
}

// SetNObs sets the "n_obs" field.
func (m *IrtItemParamMutation) SetNObs(i int) {
	m.n_obs = &i
	m.addn_obs = nil
}

// NObs returns the value of the "n_obs" field in the mutation.
func (m *IrtItemParamMutation) NObs() (r int, exists bool) {
	v := m.n_obs
	if v == nil {
		return
	}
	return *v, true
}

// OldNObs returns the old "n_obs" field's value of the IrtItemParam entity.
// If the IrtItemParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtItemParamMutation) OldNObs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNObs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNObs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNObs: %w", err)
	}
	return oldValue.NObs, nil
}

// AddNObs adds i to the "n_obs" field.
func (m *IrtItemParamMutation) AddNObs(i int) {
	if m.addn_obs != nil {
		*m.addn_obs += i
	} else {
		m.addn_obs = &i
	}
}

// AddedNObs returns the value that was added to the "n_obs" field in this mutation.
func (m *IrtItemParamMutation) AddedNObs() (r int, exists bool) {
	v := m.addn_obs
	if v == nil {
		return
	}
	return *v, true
}

// ResetNObs resets all changes to the "n_obs" field.
func (m *IrtItemParamMutation) ResetNObs() {
	m.n_obs = nil
	m.addn_obs = nil
}

// Where appends a list predicates to the IrtItemParamMutation builder.
func (m *IrtItemParamMutation) Where(ps ...predicate.IrtItemParam) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IrtItemParamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IrtItemParamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IrtItemParam, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IrtItemParamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IrtItemParamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IrtItemParam).
func (m *IrtItemParamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IrtItemParamMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.run_id != nil {
		fields = append(fields, irtitemparam.FieldRunID)
	}
	if m.question_id != nil {
		fields = append(fields, irtitemparam.FieldQuestionID)
	}
	if m.discrimination != nil {
		fields = append(fields, irtitemparam.FieldDiscrimination)
	}
	if m.difficulty != nil {
		fields = append(fields, irtitemparam.FieldDifficulty)
	}
	if m.guessing != nil {
		fields = append(fields, irtitemparam.FieldGuessing)
	}
	if m.se_discrimination != nil {
		fields = append(fields, irtitemparam.FieldSeDiscrimination)
	}
	if m.se_difficulty != nil {
		fields = append(fields, irtitemparam.FieldSeDifficulty)
	}
	if m.n_obs != nil {
		fields = append(fields, irtitemparam.FieldNObs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IrtItemParamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case irtitemparam.FieldRunID:
		return m.RunID()
	case irtitemparam.FieldQuestionID:
		return m.QuestionID()
	case irtitemparam.FieldDiscrimination:
		return m.Discrimination()
	case irtitemparam.FieldDifficulty:
		return m.Difficulty()
	case irtitemparam.FieldGuessing:
		return m.Guessing()
	case irtitemparam.FieldSeDiscrimination:
		return m.SeDiscrimination()
	case irtitemparam.FieldSeDifficulty:
		return m.SeDifficulty()
	case irtitemparam.FieldNObs:
		return m.NObs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IrtItemParamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case irtitemparam.FieldRunID:
		return m.OldRunID(ctx)
	case irtitemparam.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case irtitemparam.FieldDiscrimination:
		return m.OldDiscrimination(ctx)
	case irtitemparam.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case irtitemparam.FieldGuessing:
		return m.OldGuessing(ctx)
	case irtitemparam.FieldSeDiscrimination:
		return m.OldSeDiscrimination(ctx)
	case irtitemparam.FieldSeDifficulty:
		return m.OldSeDifficulty(ctx)
	case irtitemparam.FieldNObs:
		return m.OldNObs(ctx)
	}
	return nil, fmt.Errorf("unknown IrtItemParam field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrtItemParamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case irtitemparam.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case irtitemparam.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case irtitemparam.FieldDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscrimination(v)
		return nil
	case irtitemparam.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case irtitemparam.FieldGuessing:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuessing(v)
		return nil
	case irtitemparam.FieldSeDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeDiscrimination(v)
		return nil
	case irtitemparam.FieldSeDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeDifficulty(v)
		return nil
	case irtitemparam.FieldNObs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNObs(v)
		return nil
	}
	return fmt.Errorf("unknown IrtItemParam field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IrtItemParamMutation) AddedFields() []string {
	var fields []string
	if m.adddiscrimination != nil {
		fields = append(fields, irtitemparam.FieldDiscrimination)
	}
	if m.adddifficulty != nil {
		fields = append(fields, irtitemparam.FieldDifficulty)
	}
	if m.addguessing != nil {
		fields = append(fields, irtitemparam.FieldGuessing)
	}
	if m.addse_discrimination != nil {
		fields = append(fields, irtitemparam.FieldSeDiscrimination)
	}
	if m.addse_difficulty != nil {
		fields = append(fields, irtitemparam.FieldSeDifficulty)
	}
	if m.addn_obs != nil {
		fields = append(fields, irtitemparam.FieldNObs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IrtItemParamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case irtitemparam.FieldDiscrimination:
		return m.AddedDiscrimination()
	case irtitemparam.FieldDifficulty:
		return m.AddedDifficulty()
	case irtitemparam.FieldGuessing:
		return m.AddedGuessing()
	case irtitemparam.FieldSeDiscrimination:
		return m.AddedSeDiscrimination()
	case irtitemparam.FieldSeDifficulty:
		return m.AddedSeDifficulty()
	case irtitemparam.FieldNObs:
		return m.AddedNObs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrtItemParamMutation) AddField(name string, value ent.Value) error {
	switch name {
	case irtitemparam.FieldDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscrimination(v)
		return nil
	case irtitemparam.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case irtitemparam.FieldGuessing:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGuessing(v)
		return nil
	case irtitemparam.FieldSeDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeDiscrimination(v)
		return nil
	case irtitemparam.FieldSeDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeDifficulty(v)
		return nil
	case irtitemparam.FieldNObs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNObs(v)
		return nil
	}
	return fmt.Errorf("unknown IrtItemParam numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IrtItemParamMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IrtItemParamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IrtItemParamMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IrtItemParam nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IrtItemParamMutation) ResetField(name string) error {
	switch name {
	case irtitemparam.FieldRunID:
		m.ResetRunID()
		return nil
	case irtitemparam.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case irtitemparam.FieldDiscrimination:
		m.ResetDiscrimination()
		return nil
	case irtitemparam.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case irtitemparam.FieldGuessing:
		m.ResetGuessing()
		return nil
	case irtitemparam.FieldSeDiscrimination:
		m.ResetSeDiscrimination()
		return nil
	case irtitemparam.FieldSeDifficulty:
		m.ResetSeDifficulty()
		return nil
	case irtitemparam.FieldNObs:
		m.ResetNObs()
		return nil
	}
	return fmt.Errorf("unknown IrtItemParam field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IrtItemParamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IrtItemParamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IrtItemParamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IrtItemParamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IrtItemParamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IrtItemParamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IrtItemParamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IrtItemParam unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IrtItemParamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IrtItemParam edge %s", name)
}

// IrtRunMutation represents an operation that mutates the IrtRun nodes in the graph.
type IrtRunMutation struct {
	config
	op            Op
	typ           string
	id            *string
	model_type    *irtrun.ModelType
	status        *irtrun.Status
	seed          *int64
	addseed       *int64
	dataset_spec  *map[string]interface{}
	metrics       *map[string]interface{}
	error         *string
	notes         *string
	artifact_dir  *string
	created_at    *time.Time
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IrtRun, error)
	predicates    []predicate.IrtRun
}

var _ ent.Mutation = (*IrtRunMutation)(nil)

// irtrunOption allows management of the mutation configuration using functional options.
type irtrunOption func(*IrtRunMutation)

// newIrtRunMutation creates new mutation for the IrtRun entity.
func newIrtRunMutation(c config, op Op, opts ...irtrunOption) *IrtRunMutation {
	m := &IrtRunMutation{
		config:        c,
		op:            op,
		typ:           TypeIrtRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIrtRunID sets the ID field of the mutation.
func withIrtRunID(id string) irtrunOption {
	return func(m *IrtRunMutation) {
		var (
			err   error
			once  sync.Once
			value *IrtRun
		)
		m.oldValue = func(ctx context.Context) (*IrtRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IrtRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIrtRun sets the old IrtRun of the mutation.
func withIrtRun(node *IrtRun) irtrunOption {
	return func(m *IrtRunMutation) {
		m.oldValue = func(context.Context) (*IrtRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IrtRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IrtRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IrtRun entities.
func (m *IrtRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IrtRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IrtRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IrtRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModelType sets the "model_type" field.
func (m *IrtRunMutation) SetModelType(it irtrun.ModelType) {
	m.model_type = &it
}

// ModelType returns the value of the "model_type" field in the mutation.
func (m *IrtRunMutation) ModelType() (r irtrun.ModelType, exists bool) {
	v := m.model_type
	if v == nil {
		return
	}
	return *v, true
}

// OldModelType returns the old "model_type" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldModelType(ctx context.Context) (v irtrun.ModelType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelType: %w", err)
	}
	return oldValue.ModelType, nil
}

// ResetModelType resets all changes to the "model_type" field.
func (m *IrtRunMutation) ResetModelType() {
	m.model_type = nil
}

// SetStatus sets the "status" field.
func (m *IrtRunMutation) SetStatus(i irtrun.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IrtRunMutation) Status() (r irtrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldStatus(ctx context.Context) (v irtrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IrtRunMutation) ResetStatus() {
	m.status = nil
}

// SetSeed sets the "seed" field.
func (m *IrtRunMutation) SetSeed(i int64) {
	m.seed = &i
	m.addseed = nil
}

// Seed returns the value of the "seed" field in the mutation.
func (m *IrtRunMutation) Seed() (r int64, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldSeed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// AddSeed adds i to the "seed" field.
func (m *IrtRunMutation) AddSeed(i int64) {
	if m.addseed != nil {
		*m.addseed += i
	} else {
		m.addseed = &i
	}
}

// AddedSeed returns the value that was added to the "seed" field in this mutation.
func (m *IrtRunMutation) AddedSeed() (r int64, exists bool) {
	v := m.addseed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeed resets all changes to the "seed" field.
func (m *IrtRunMutation) ResetSeed() {
	m.seed = nil
	m.addseed = nil
}

// SetDatasetSpec sets the "dataset_spec" field.
func (m *IrtRunMutation) SetDatasetSpec(value map[string]interface{}) {
	m.dataset_spec = &value
}

// DatasetSpec returns the value of the "dataset_spec" field in the mutation.
func (m *IrtRunMutation) DatasetSpec() (r map[string]interface{}, exists bool) {
	v := m.dataset_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetSpec returns the old "dataset_spec" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldDatasetSpec(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetSpec: %w", err)
	}
	return oldValue.DatasetSpec, nil
}

// ResetDatasetSpec resets all changes to the "dataset_spec" field.
func (m *IrtRunMutation) ResetDatasetSpec() {
	m.dataset_spec = nil
}

// SetMetrics sets the "metrics" field.
func (m *IrtRunMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *IrtRunMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *IrtRunMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[irtrun.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *IrtRunMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[irtrun.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *IrtRunMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, irtrun.FieldMetrics)
}

// SetError sets the "error" field.
func (m *IrtRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *IrtRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ResetError resets all changes to the "error" field.
func (m *IrtRunMutation) ResetError() {
	m.error = nil
}

// SetNotes sets the "notes" field.
func (m *IrtRunMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *IrtRunMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *IrtRunMutation) ResetNotes() {
	m.notes = nil
}

// SetArtifactDir sets the "artifact_dir" field.
func (m *IrtRunMutation) SetArtifactDir(s string) {
	m.artifact_dir = &s
}

// ArtifactDir returns the value of the "artifact_dir" field in the mutation.
func (m *IrtRunMutation) ArtifactDir() (r string, exists bool) {
	v := m.artifact_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactDir returns the old "artifact_dir" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldArtifactDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactDir: %w", err)
	}
	return oldValue.ArtifactDir, nil
}

// ResetArtifactDir resets all changes to the "artifact_dir" field.
func (m *IrtRunMutation) ResetArtifactDir() {
	m.artifact_dir = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IrtRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IrtRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IrtRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *IrtRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IrtRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *IrtRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[irtrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *IrtRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[irtrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IrtRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, irtrun.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *IrtRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *IrtRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the IrtRun entity.
// If the IrtRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IrtRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *IrtRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[irtrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *IrtRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[irtrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *IrtRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, irtrun.FieldFinishedAt)
}

// Where appends a list predicates to the IrtRunMutation builder.
func (m *IrtRunMutation) Where(ps ...predicate.IrtRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IrtRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IrtRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IrtRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IrtRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IrtRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IrtRun).
func (m *IrtRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IrtRunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.model_type != nil {
		fields = append(fields, irtrun.FieldModelType)
	}
	if m.status != nil {
		fields = append(fields, irtrun.FieldStatus)
	}
	if m.seed != nil {
		fields = append(fields, irtrun.FieldSeed)
	}
	if m.dataset_spec != nil {
		fields = append(fields, irtrun.FieldDatasetSpec)
	}
	if m.metrics != nil {
		fields = append(fields, irtrun.FieldMetrics)
	}
	if m.error != nil {
		fields = append(fields, irtrun.FieldError)
	}
	if m.notes != nil {
		fields = append(fields, irtrun.FieldNotes)
	}
	if m.artifact_dir != nil {
		fields = append(fields, irtrun.FieldArtifactDir)
	}
	if m.created_at != nil {
		fields = append(fields, irtrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, irtrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, irtrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IrtRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case irtrun.FieldModelType:
		return m.ModelType()
	case irtrun.FieldStatus:
		return m.Status()
	case irtrun.FieldSeed:
		return m.Seed()
	case irtrun.FieldDatasetSpec:
		return m.DatasetSpec()
	case irtrun.FieldMetrics:
		return m.Metrics()
	case irtrun.FieldError:
		return m.Error()
	case irtrun.FieldNotes:
		return m.Notes()
	case irtrun.FieldArtifactDir:
		return m.ArtifactDir()
	case irtrun.FieldCreatedAt:
		return m.CreatedAt()
	case irtrun.FieldStartedAt:
		return m.StartedAt()
	case irtrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IrtRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case irtrun.FieldModelType:
		return m.OldModelType(ctx)
	case irtrun.FieldStatus:
		return m.OldStatus(ctx)
	case irtrun.FieldSeed:
		return m.OldSeed(ctx)
	case irtrun.FieldDatasetSpec:
		return m.OldDatasetSpec(ctx)
	case irtrun.FieldMetrics:
		return m.OldMetrics(ctx)
	case irtrun.FieldError:
		return m.OldError(ctx)
	case irtrun.FieldNotes:
		return m.OldNotes(ctx)
	case irtrun.FieldArtifactDir:
		return m.OldArtifactDir(ctx)
	case irtrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case irtrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case irtrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IrtRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrtRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case irtrun.FieldModelType:
		v, ok := value.(irtrun.ModelType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelType(v)
		return nil
	case irtrun.FieldStatus:
		v, ok := value.(irtrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case irtrun.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	case irtrun.FieldDatasetSpec:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetSpec(v)
		return nil
	case irtrun.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case irtrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case irtrun.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case irtrun.FieldArtifactDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactDir(v)
		return nil
	case irtrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case irtrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case irtrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IrtRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IrtRunMutation) AddedFields() []string {
	var fields []string
	if m.addseed != nil {
		fields = append(fields, irtrun.FieldSeed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IrtRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case irtrun.FieldSeed:
		return m.AddedSeed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IrtRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case irtrun.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeed(v)
		return nil
	}
	return fmt.Errorf("unknown IrtRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IrtRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(irtrun.FieldMetrics) {
		fields = append(fields, irtrun.FieldMetrics)
	}
	if m.FieldCleared(irtrun.FieldStartedAt) {
		fields = append(fields, irtrun.FieldStartedAt)
	}
	if m.FieldCleared(irtrun.FieldFinishedAt) {
		fields = append(fields, irtrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IrtRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IrtRunMutation) ClearField(name string) error {
	switch name {
	case irtrun.FieldMetrics:
		m.ClearMetrics()
		return nil
	case irtrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case irtrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IrtRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IrtRunMutation) ResetField(name string) error {
	switch name {
	case irtrun.FieldModelType:
		m.ResetModelType()
		return nil
	case irtrun.FieldStatus:
		m.ResetStatus()
		return nil
	case irtrun.FieldSeed:
		m.ResetSeed()
		return nil
	case irtrun.FieldDatasetSpec:
		m.ResetDatasetSpec()
		return nil
	case irtrun.FieldMetrics:
		m.ResetMetrics()
		return nil
	case irtrun.FieldError:
		m.ResetError()
		return nil
	case irtrun.FieldNotes:
		m.ResetNotes()
		return nil
	case irtrun.FieldArtifactDir:
		m.ResetArtifactDir()
		return nil
	case irtrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case irtrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case irtrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IrtRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IrtRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IrtRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IrtRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IrtRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IrtRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IrtRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IrtRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IrtRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IrtRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IrtRun edge %s", name)
}

// QuestionRatingMutation represents an operation that mutates the QuestionRating nodes in the graph.
type QuestionRatingMutation struct {
	config
	op             Op
	typ            string
	id             *int
	entity_id      *string
	scope_type     *questionrating.ScopeType
	scope_id       *string
	rating         *float64
	addrating      *float64
	uncertainty    *float64
	adduncertainty *float64
	n_attempts     *int
	addn_attempts  *int
	last_seen_at   *time.Time
	version        *int64
	addversion     *int64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QuestionRating, error)
	predicates     []predicate.QuestionRating
}

var _ ent.Mutation = (*QuestionRatingMutation)(nil)

// questionratingOption allows management of the mutation configuration using functional options.
type questionratingOption func(*QuestionRatingMutation)

// newQuestionRatingMutation creates new mutation for the QuestionRating entity.
func newQuestionRatingMutation(c config, op Op, opts ...questionratingOption) *QuestionRatingMutation {
	m := &QuestionRatingMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionRating,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionRatingID sets the ID field of the mutation.
func withQuestionRatingID(id int) questionratingOption {
	return func(m *QuestionRatingMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionRating
		)
		m.oldValue = func(ctx context.Context) (*QuestionRating, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionRating.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionRating sets the old QuestionRating of the mutation.
func withQuestionRating(node *QuestionRating) questionratingOption {
	return func(m *QuestionRatingMutation) {
		m.oldValue = func(context.Context) (*QuestionRating, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionRatingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionRatingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionRatingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionRatingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionRating.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *QuestionRatingMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *QuestionRatingMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *QuestionRatingMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetScopeType sets the "scope_type" field.
func (m *QuestionRatingMutation) SetScopeType(qt questionrating.ScopeType) {
	m.scope_type = &qt
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *QuestionRatingMutation) ScopeType() (r questionrating.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldScopeType(ctx context.Context) (v questionrating.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *QuestionRatingMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *QuestionRatingMutation) SetScopeID(s string) {
	m.scope_id = &s
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *QuestionRatingMutation) ScopeID() (r string, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldScopeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *QuestionRatingMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetRating sets the "rating" field.
func (m *QuestionRatingMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *QuestionRatingMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *QuestionRatingMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *QuestionRatingMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *QuestionRatingMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetUncertainty sets the "uncertainty" field.
func (m *QuestionRatingMutation) SetUncertainty(f float64) {
	m.uncertainty = &f
	m.adduncertainty = nil
}

// Uncertainty returns the value of the "uncertainty" field in the mutation.
func (m *QuestionRatingMutation) Uncertainty() (r float64, exists bool) {
	v := m.uncertainty
	if v == nil {
		return
	}
	return *v, true
}

// OldUncertainty returns the old "uncertainty" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldUncertainty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUncertainty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUncertainty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUncertainty: %w", err)
	}
	return oldValue.Uncertainty, nil
}

// AddUncertainty adds f to the "uncertainty" field.
func (m *QuestionRatingMutation) AddUncertainty(f float64) {
	if m.adduncertainty != nil {
		*m.adduncertainty += f
	} else {
		m.adduncertainty = &f
	}
}

// AddedUncertainty returns the value that was added to the "uncertainty" field in this mutation.
func (m *QuestionRatingMutation) AddedUncertainty() (r float64, exists bool) {
	v := m.adduncertainty
	if v == nil {
		return
	}
	return *v, true
}

// ResetUncertainty resets all changes to the "uncertainty" field.
func (m *QuestionRatingMutation) ResetUncertainty() {
	m.uncertainty = nil
	m.adduncertainty = nil
}

// SetNAttempts sets the "n_attempts" field.
func (m *QuestionRatingMutation) SetNAttempts(i int) {
	m.n_attempts = &i
	m.addn_attempts = nil
}

// NAttempts returns the value of the "n_attempts" field in the mutation.
func (m *QuestionRatingMutation) NAttempts() (r int, exists bool) {
	v := m.n_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldNAttempts returns the old "n_attempts" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldNAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNAttempts: %w", err)
	}
	return oldValue.NAttempts, nil
}

// AddNAttempts adds i to the "n_attempts" field.
func (m *QuestionRatingMutation) AddNAttempts(i int) {
	if m.addn_attempts != nil {
		*m.addn_attempts += i
	} else {
		m.addn_attempts = &i
	}
}

// AddedNAttempts returns the value that was added to the "n_attempts" field in this mutation.
func (m *QuestionRatingMutation) AddedNAttempts() (r int, exists bool) {
	v := m.addn_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetNAttempts resets all changes to the "n_attempts" field.
func (m *QuestionRatingMutation) ResetNAttempts() {
	m.n_attempts = nil
	m.addn_attempts = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *QuestionRatingMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *QuestionRatingMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *QuestionRatingMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[questionrating.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *QuestionRatingMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[questionrating.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *QuestionRatingMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, questionrating.FieldLastSeenAt)
}

// SetVersion sets the "version" field.
func (m *QuestionRatingMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *QuestionRatingMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the QuestionRating entity.
// If the QuestionRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionRatingMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *QuestionRatingMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *QuestionRatingMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *QuestionRatingMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the QuestionRatingMutation builder.
func (m *QuestionRatingMutation) Where(ps ...predicate.QuestionRating) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionRatingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionRatingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionRating, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionRatingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionRatingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionRating).
func (m *QuestionRatingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionRatingMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.entity_id != nil {
		fields = append(fields, questionrating.FieldEntityID)
	}
	if m.scope_type != nil {
		fields = append(fields, questionrating.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, questionrating.FieldScopeID)
	}
	if m.rating != nil {
		fields = append(fields, questionrating.FieldRating)
	}
	if m.uncertainty != nil {
		fields = append(fields, questionrating.FieldUncertainty)
	}
	if m.n_attempts != nil {
		fields = append(fields, questionrating.FieldNAttempts)
	}
	if m.last_seen_at != nil {
		fields = append(fields, questionrating.FieldLastSeenAt)
	}
	if m.version != nil {
		fields = append(fields, questionrating.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionRatingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionrating.FieldEntityID:
		return m.EntityID()
	case questionrating.FieldScopeType:
		return m.ScopeType()
	case questionrating.FieldScopeID:
		return m.ScopeID()
	case questionrating.FieldRating:
		return m.Rating()
	case questionrating.FieldUncertainty:
		return m.Uncertainty()
	case questionrating.FieldNAttempts:
		return m.NAttempts()
	case questionrating.FieldLastSeenAt:
		return m.LastSeenAt()
	case questionrating.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionRatingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionrating.FieldEntityID:
		return m.OldEntityID(ctx)
	case questionrating.FieldScopeType:
		return m.OldScopeType(ctx)
	case questionrating.FieldScopeID:
		return m.OldScopeID(ctx)
	case questionrating.FieldRating:
		return m.OldRating(ctx)
	case questionrating.FieldUncertainty:
		return m.OldUncertainty(ctx)
	case questionrating.FieldNAttempts:
		return m.OldNAttempts(ctx)
	case questionrating.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case questionrating.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionRating field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionRatingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionrating.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case questionrating.FieldScopeType:
		v, ok := value.(questionrating.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case questionrating.FieldScopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case questionrating.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case questionrating.FieldUncertainty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUncertainty(v)
		return nil
	case questionrating.FieldNAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNAttempts(v)
		return nil
	case questionrating.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case questionrating.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionRating field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionRatingMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, questionrating.FieldRating)
	}
	if m.adduncertainty != nil {
		fields = append(fields, questionrating.FieldUncertainty)
	}
	if m.addn_attempts != nil {
		fields = append(fields, questionrating.FieldNAttempts)
	}
	if m.addversion != nil {
		fields = append(fields, questionrating.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionRatingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionrating.FieldRating:
		return m.AddedRating()
	case questionrating.FieldUncertainty:
		return m.AddedUncertainty()
	case questionrating.FieldNAttempts:
		return m.AddedNAttempts()
	case questionrating.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionRatingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionrating.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case questionrating.FieldUncertainty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUncertainty(v)
		return nil
	case questionrating.FieldNAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNAttempts(v)
		return nil
	case questionrating.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionRating numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionRatingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionrating.FieldLastSeenAt) {
		fields = append(fields, questionrating.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionRatingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionRatingMutation) ClearField(name string) error {
	switch name {
	case questionrating.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionRating nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionRatingMutation) ResetField(name string) error {
	switch name {
	case questionrating.FieldEntityID:
		m.ResetEntityID()
		return nil
	case questionrating.FieldScopeType:
		m.ResetScopeType()
		return nil
	case questionrating.FieldScopeID:
		m.ResetScopeID()
		return nil
	case questionrating.FieldRating:
		m.ResetRating()
		return nil
	case questionrating.FieldUncertainty:
		m.ResetUncertainty()
		return nil
	case questionrating.FieldNAttempts:
		m.ResetNAttempts()
		return nil
	case questionrating.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case questionrating.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown QuestionRating field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionRatingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionRatingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionRatingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionRatingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionRatingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionRatingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionRatingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionRating unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionRatingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionRating edge %s", name)
}

// UpdateLogMutation represents an operation that mutates the UpdateLog nodes in the graph.
type UpdateLogMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	attempt_id                   *string
	user_id                      *string
	question_id                  *string
	scope_type                   *updatelog.ScopeType
	scope_id                     *string
	score                        *bool
	p_pred                       *float64
	addp_pred                    *float64
	user_rating_pre              *float64
	adduser_rating_pre           *float64
	user_rating_post             *float64
	adduser_rating_post          *float64
	user_uncertainty_pre         *float64
	adduser_uncertainty_pre      *float64
	user_uncertainty_post        *float64
	adduser_uncertainty_post     *float64
	question_rating_pre          *float64
	addquestion_rating_pre       *float64
	question_rating_post         *float64
	addquestion_rating_post      *float64
	question_uncertainty_pre     *float64
	addquestion_uncertainty_pre  *float64
	question_uncertainty_post    *float64
	addquestion_uncertainty_post *float64
	k_user                       *float64
	addk_user                    *float64
	k_question                   *float64
	addk_question                *float64
	guess_floor                  *float64
	addguess_floor               *float64
	scale                        *float64
	addscale                     *float64
	option_count                 *int
	addoption_count              *int
	occurred_at                  *time.Time
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*UpdateLog, error)
	predicates                   []predicate.UpdateLog
}

var _ ent.Mutation = (*UpdateLogMutation)(nil)

// updatelogOption allows management of the mutation configuration using functional options.
type updatelogOption func(*UpdateLogMutation)

// newUpdateLogMutation creates new mutation for the UpdateLog entity.
func newUpdateLogMutation(c config, op Op, opts ...updatelogOption) *UpdateLogMutation {
	m := &UpdateLogMutation{
		config:        c,
		op:            op,
		typ:           TypeUpdateLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUpdateLogID sets the ID field of the mutation.
func withUpdateLogID(id int) updatelogOption {
	return func(m *UpdateLogMutation) {
		var (
			err   error
			once  sync.Once
			value *UpdateLog
		)
		m.oldValue = func(ctx context.Context) (*UpdateLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UpdateLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpdateLog sets the old UpdateLog of the mutation.
func withUpdateLog(node *UpdateLog) updatelogOption {
	return func(m *UpdateLogMutation) {
		m.oldValue = func(context.Context) (*UpdateLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UpdateLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UpdateLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UpdateLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UpdateLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UpdateLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAttemptID sets the "attempt_id" field.
func (m *UpdateLogMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *UpdateLogMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *UpdateLogMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UpdateLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UpdateLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UpdateLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *UpdateLogMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *UpdateLogMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *UpdateLogMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetScopeType sets the "scope_type" field.
func (m *UpdateLogMutation) SetScopeType(ut updatelog.ScopeType) {
	m.scope_type = &ut
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *UpdateLogMutation) ScopeType() (r updatelog.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldScopeType(ctx context.Context) (v updatelog.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *UpdateLogMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *UpdateLogMutation) SetScopeID(s string) {
	m.scope_id = &s
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *UpdateLogMutation) ScopeID() (r string, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldScopeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *UpdateLogMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetScore sets the "score" field.
func (m *UpdateLogMutation) SetScore(b bool) {
	m.score = &b
}

// Score returns the value of the "score" field in the mutation.
func (m *UpdateLogMutation) Score() (r bool, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldScore(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// ResetScore resets all changes to the "score" field.
func (m *UpdateLogMutation) ResetScore() {
	m.score = nil
}

// SetPPred sets the "p_pred" field.
func (m *UpdateLogMutation) SetPPred(f float64) {
	m.p_pred = &f
	m.addp_pred = nil
}

// PPred returns the value of the "p_pred" field in the mutation.
func (m *UpdateLogMutation) PPred() (r float64, exists bool) {
	v := m.p_pred
	if v == nil {
		return
	}
	return *v, true
}

// OldPPred returns the old "p_pred" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldPPred(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPPred is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPPred requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPPred: %w", err)
	}
	return oldValue.PPred, nil
}

// AddPPred adds f to the "p_pred" field.
func (m *UpdateLogMutation) AddPPred(f float64) {
	if m.addp_pred != nil {
		*m.addp_pred += f
	} else {
		m.addp_pred = &f
	}
}

// AddedPPred returns the value that was added to the "p_pred" field in this mutation.
func (m *UpdateLogMutation) AddedPPred() (r float64, exists bool) {
	v := m.addp_pred
	if v == nil {
		return
	}
	return *v, true
}

// ResetPPred resets all changes to the "p_pred" field.
func (m *UpdateLogMutation) ResetPPred() {
	m.p_pred = nil
	m.addp_pred = nil
}

// SetUserRatingPre sets the "user_rating_pre" field.
func (m *UpdateLogMutation) SetUserRatingPre(f float64) {
	m.user_rating_pre = &f
	m.adduser_rating_pre = nil
}

// UserRatingPre returns the value of the "user_rating_pre" field in the mutation.
func (m *UpdateLogMutation) UserRatingPre() (r float64, exists bool) {
	v := m.user_rating_pre
	if v == nil {
		return
	}
	return *v, true
}

// OldUserRatingPre returns the old "user_rating_pre" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldUserRatingPre(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserRatingPre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserRatingPre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserRatingPre: %w", err)
	}
	return oldValue.UserRatingPre, nil
}

// AddUserRatingPre adds f to the "user_rating_pre" field.
func (m *UpdateLogMutation) AddUserRatingPre(f float64) {
	if m.adduser_rating_pre != nil {
		*m.adduser_rating_pre += f
	} else {
		m.adduser_rating_pre = &f
	}
}

// AddedUserRatingPre returns the value that was added to the "user_rating_pre" field in this mutation.
func (m *UpdateLogMutation) AddedUserRatingPre() (r float64, exists bool) {
	v := m.adduser_rating_pre
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserRatingPre resets all changes to the "user_rating_pre" field.
func (m *UpdateLogMutation) ResetUserRatingPre() {
	m.user_rating_pre = nil
	m.adduser_rating_pre = nil
}

// SetUserRatingPost sets the "user_rating_post" field.
func (m *UpdateLogMutation) SetUserRatingPost(f float64) {
	m.user_rating_post = &f
	m.adduser_rating_post = nil
}

// UserRatingPost returns the value of the "user_rating_post" field in the mutation.
func (m *UpdateLogMutation) UserRatingPost() (r float64, exists bool) {
	v := m.user_rating_post
	if v == nil {
		return
	}
	return *v, true
}

// OldUserRatingPost returns the old "user_rating_post" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldUserRatingPost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserRatingPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserRatingPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserRatingPost: %w", err)
	}
	return oldValue.UserRatingPost, nil
}

// AddUserRatingPost adds f to the "user_rating_post" field.
func (m *UpdateLogMutation) AddUserRatingPost(f float64) {
	if m.adduser_rating_post != nil {
		*m.adduser_rating_post += f
	} else {
		m.adduser_rating_post = &f
	}
}

// AddedUserRatingPost returns the value that was added to the "user_rating_post" field in this mutation.
func (m *UpdateLogMutation) AddedUserRatingPost() (r float64, exists bool) {
	v := m.adduser_rating_post
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserRatingPost resets all changes to the "user_rating_post" field.
func (m *UpdateLogMutation) ResetUserRatingPost() {
	m.user_rating_post = nil
	m.adduser_rating_post = nil
}

// SetUserUncertaintyPre sets the "user_uncertainty_pre" field.
func (m *UpdateLogMutation) SetUserUncertaintyPre(f float64) {
	m.user_uncertainty_pre = &f
	m.adduser_uncertainty_pre = nil
}

// UserUncertaintyPre returns the value of the "user_uncertainty_pre" field in the mutation.
func (m *UpdateLogMutation) UserUncertaintyPre() (r float64, exists bool) {
	v := m.user_uncertainty_pre
	if v == nil {
		return
	}
	return *v, true
}

// OldUserUncertaintyPre returns the old "user_uncertainty_pre" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldUserUncertaintyPre(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserUncertaintyPre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserUncertaintyPre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserUncertaintyPre: %w", err)
	}
	return oldValue.UserUncertaintyPre, nil
}

// AddUserUncertaintyPre adds f to the "user_uncertainty_pre" field.
func (m *UpdateLogMutation) AddUserUncertaintyPre(f float64) {
	if m.adduser_uncertainty_pre != nil {
		*m.adduser_uncertainty_pre += f
	} else {
		m.adduser_uncertainty_pre = &f
	}
}

// AddedUserUncertaintyPre returns the value that was added to the "user_uncertainty_pre" field in this mutation.
func (m *UpdateLogMutation) AddedUserUncertaintyPre() (r float64, exists bool) {
	v := m.adduser_uncertainty_pre
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserUncertaintyPre resets all changes to the "user_uncertainty_pre" field.
func (m *UpdateLogMutation) ResetUserUncertaintyPre() {
	m.user_uncertainty_pre = nil
	m.adduser_uncertainty_pre = nil
}

// SetUserUncertaintyPost sets the "user_uncertainty_post" field.
func (m *UpdateLogMutation) SetUserUncertaintyPost(f float64) {
	m.user_uncertainty_post = &f
	m.adduser_uncertainty_post = nil
}

// UserUncertaintyPost returns the value of the "user_uncertainty_post" field in the mutation.
func (m *UpdateLogMutation) UserUncertaintyPost() (r float64, exists bool) {
	v := m.user_uncertainty_post
	if v == nil {
		return
	}
	return *v, true
}

// OldUserUncertaintyPost returns the old "user_uncertainty_post" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldUserUncertaintyPost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserUncertaintyPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserUncertaintyPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserUncertaintyPost: %w", err)
	}
	return oldValue.UserUncertaintyPost, nil
}

// AddUserUncertaintyPost adds f to the "user_uncertainty_post" field.
func (m *UpdateLogMutation) AddUserUncertaintyPost(f float64) {
	if m.adduser_uncertainty_post != nil {
		*m.adduser_uncertainty_post += f
	} else {
		m.adduser_uncertainty_post = &f
	}
}

// AddedUserUncertaintyPost returns the value that was added to the "user_uncertainty_post" field in this mutation.
func (m *UpdateLogMutation) AddedUserUncertaintyPost() (r float64, exists bool) {
	v := m.adduser_uncertainty_post
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserUncertaintyPost resets all changes to the "user_uncertainty_post" field.
func (m *UpdateLogMutation) ResetUserUncertaintyPost() {
	m.user_uncertainty_post = nil
	m.adduser_uncertainty_post = nil
}

// SetQuestionRatingPre sets the "question_rating_pre" field.
func (m *UpdateLogMutation) SetQuestionRatingPre(f float64) {
	m.question_rating_pre = &f
	m.addquestion_rating_pre = nil
}

// QuestionRatingPre returns the value of the "question_rating_pre" field in the mutation.
func (m *UpdateLogMutation) QuestionRatingPre() (r float64, exists bool) {
	v := m.question_rating_pre
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionRatingPre returns the old "question_rating_pre" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldQuestionRatingPre(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionRatingPre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionRatingPre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionRatingPre: %w", err)
	}
	return oldValue.QuestionRatingPre, nil
}

// AddQuestionRatingPre adds f to the "question_rating_pre" field.
func (m *UpdateLogMutation) AddQuestionRatingPre(f float64) {
	if m.addquestion_rating_pre != nil {
		*m.addquestion_rating_pre += f
	} else {
		m.addquestion_rating_pre = &f
	}
}

// AddedQuestionRatingPre returns the value that was added to the "question_rating_pre" field in this mutation.
func (m *UpdateLogMutation) AddedQuestionRatingPre() (r float64, exists bool) {
	v := m.addquestion_rating_pre
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionRatingPre resets all changes to the "question_rating_pre" field.
func (m *UpdateLogMutation) ResetQuestionRatingPre() {
	m.question_rating_pre = nil
	m.addquestion_rating_pre = nil
}

// SetQuestionRatingPost sets the "question_rating_post" field.
func (m *UpdateLogMutation) SetQuestionRatingPost(f float64) {
	m.question_rating_post = &f
	m.addquestion_rating_post = nil
}

// QuestionRatingPost returns the value of the "question_rating_post" field in the mutation.
func (m *UpdateLogMutation) QuestionRatingPost() (r float64, exists bool) {
	v := m.question_rating_post
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionRatingPost returns the old "question_rating_post" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldQuestionRatingPost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionRatingPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionRatingPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionRatingPost: %w", err)
	}
	return oldValue.QuestionRatingPost, nil
}

// AddQuestionRatingPost adds f to the "question_rating_post" field.
func (m *UpdateLogMutation) AddQuestionRatingPost(f float64) {
	if m.addquestion_rating_post != nil {
		*m.addquestion_rating_post += f
	} else {
		m.addquestion_rating_post = &f
	}
}

// AddedQuestionRatingPost returns the value that was added to the "question_rating_post" field in this mutation.
func (m *UpdateLogMutation) AddedQuestionRatingPost() (r float64, exists bool) {
	v := m.addquestion_rating_post
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionRatingPost resets all changes to the "question_rating_post" field.
func (m *UpdateLogMutation) ResetQuestionRatingPost() {
	m.question_rating_post = nil
	m.addquestion_rating_post = nil
}

// SetQuestionUncertaintyPre sets the "question_uncertainty_pre" field.
func (m *UpdateLogMutation) SetQuestionUncertaintyPre(f float64) {
	m.question_uncertainty_pre = &f
	m.addquestion_uncertainty_pre = nil
}

// QuestionUncertaintyPre returns the value of the "question_uncertainty_pre" field in the mutation.
func (m *UpdateLogMutation) QuestionUncertaintyPre() (r float64, exists bool) {
	v := m.question_uncertainty_pre
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionUncertaintyPre returns the old "question_uncertainty_pre" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldQuestionUncertaintyPre(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionUncertaintyPre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionUncertaintyPre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionUncertaintyPre: %w", err)
	}
	return oldValue.QuestionUncertaintyPre, nil
}

// AddQuestionUncertaintyPre adds f to the "question_uncertainty_pre" field.
func (m *UpdateLogMutation) AddQuestionUncertaintyPre(f float64) {
	if m.addquestion_uncertainty_pre != nil {
		*m.addquestion_uncertainty_pre += f
	} else {
		m.addquestion_uncertainty_pre = &f
	}
}

// AddedQuestionUncertaintyPre returns the value that was added to the "question_uncertainty_pre" field in this mutation.
func (m *UpdateLogMutation) AddedQuestionUncertaintyPre() (r float64, exists bool) {
	v := m.addquestion_uncertainty_pre
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionUncertaintyPre resets all changes to the "question_uncertainty_pre" field.
func (m *UpdateLogMutation) ResetQuestionUncertaintyPre() {
	m.question_uncertainty_pre = nil
	m.addquestion_uncertainty_pre = nil
}

// SetQuestionUncertaintyPost sets the "question_uncertainty_post" field.
func (m *UpdateLogMutation) SetQuestionUncertaintyPost(f float64) {
	m.question_uncertainty_post = &f
	m.addquestion_uncertainty_post = nil
}

// QuestionUncertaintyPost returns the value of the "question_uncertainty_post" field in the mutation.
func (m *UpdateLogMutation) QuestionUncertaintyPost() (r float64, exists bool) {
	v := m.question_uncertainty_post
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionUncertaintyPost returns the old "question_uncertainty_post" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldQuestionUncertaintyPost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionUncertaintyPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionUncertaintyPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionUncertaintyPost: %w", err)
	}
	return oldValue.QuestionUncertaintyPost, nil
}

// AddQuestionUncertaintyPost adds f to the "question_uncertainty_post" field.
func (m *UpdateLogMutation) AddQuestionUncertaintyPost(f float64) {
	if m.addquestion_uncertainty_post != nil {
		*m.addquestion_uncertainty_post += f
	} else {
		m.addquestion_uncertainty_post = &f
	}
}

// AddedQuestionUncertaintyPost returns the value that was added to the "question_uncertainty_post" field in this mutation.
func (m *UpdateLogMutation) AddedQuestionUncertaintyPost() (r float64, exists bool) {
	v := m.addquestion_uncertainty_post
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionUncertaintyPost resets all changes to the "question_uncertainty_post" field.
func (m *UpdateLogMutation) ResetQuestionUncertaintyPost() {
	m.question_uncertainty_post = nil
	m.addquestion_uncertainty_post = nil
}

// SetKUser sets the "k_user" field.
func (m *UpdateLogMutation) SetKUser(f float64) {
	m.k_user = &f
	m.addk_user = nil
}

// KUser returns the value of the "k_user" field in the mutation.
func (m *UpdateLogMutation) KUser() (r float64, exists bool) {
	v := m.k_user
	if v == nil {
		return
	}
	return *v, true
}

// OldKUser returns the old "k_user" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldKUser(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKUser: %w", err)
	}
	return oldValue.KUser, nil
}

// AddKUser adds f to the "k_user" field.
func (m *UpdateLogMutation) AddKUser(f float64) {
	if m.addk_user != nil {
		*m.addk_user += f
	} else {
		m.addk_user = &f
	}
}

// AddedKUser returns the value that was added to the "k_user" field in this mutation.
func (m *UpdateLogMutation) AddedKUser() (r float64, exists bool) {
	v := m.addk_user
	if v == nil {
		return
	}
	return *v, true
}

// ResetKUser resets all changes to the "k_user" field.
func (m *UpdateLogMutation) ResetKUser() {
	m.k_user = nil
	m.addk_user = nil
}

// SetKQuestion sets the "k_question" field.
func (m *UpdateLogMutation) SetKQuestion(f float64) {
	m.k_question = &f
	m.addk_question = nil
}

// KQuestion returns the value of the "k_question" field in the mutation.
func (m *UpdateLogMutation) KQuestion() (r float64, exists bool) {
	v := m.k_question
	if v == nil {
		return
	}
	return *v, true
}

// OldKQuestion returns the old "k_question" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldKQuestion(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKQuestion: %w", err)
	}
	return oldValue.KQuestion, nil
}

// AddKQuestion adds f to the "k_question" field.
func (m *UpdateLogMutation) AddKQuestion(f float64) {
	if m.addk_question != nil {
		*m.addk_question += f
	} else {
		m.addk_question = &f
	}
}

// AddedKQuestion returns the value that was added to the "k_question" field in this mutation.
func (m *UpdateLogMutation) AddedKQuestion() (r float64, exists bool) {
	v := m.addk_question
	if v == nil {
		return
	}
	return *v, true
}

// ResetKQuestion resets all changes to the "k_question" field.
func (m *UpdateLogMutation) ResetKQuestion() {
	m.k_question = nil
	m.addk_question = nil
}

// SetGuessFloor sets the "guess_floor" field.
func (m *UpdateLogMutation) SetGuessFloor(f float64) {
	m.guess_floor = &f
	m.addguess_floor = nil
}

// GuessFloor returns the value of the "guess_floor" field in the mutation.
func (m *UpdateLogMutation) GuessFloor() (r float64, exists bool) {
	v := m.guess_floor
	if v == nil {
		return
	}
	return *v, true
}

// OldGuessFloor returns the old "guess_floor" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldGuessFloor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuessFloor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuessFloor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuessFloor: %w", err)
	}
	return oldValue.GuessFloor, nil
}

// AddGuessFloor adds f to the "guess_floor" field.
func (m *UpdateLogMutation) AddGuessFloor(f float64) {
	if m.addguess_floor != nil {
		*m.addguess_floor += f
	} else {
		m.addguess_floor = &f
	}
}

// AddedGuessFloor returns the value that was added to the "guess_floor" field in this mutation.
func (m *UpdateLogMutation) AddedGuessFloor() (r float64, exists bool) {
	v := m.addguess_floor
	if v == nil {
		return
	}
	return *v, true
}

// ResetGuessFloor resets all changes to the "guess_floor" field.
func (m *UpdateLogMutation) ResetGuessFloor() {
	m.guess_floor = nil
	m.addguess_floor = nil
}

// SetScale sets the "scale" field.
func (m *UpdateLogMutation) SetScale(f float64) {
	m.scale = &f
	m.addscale = nil
}

// Scale returns the value of the "scale" field in the mutation.
func (m *UpdateLogMutation) Scale() (r float64, exists bool) {
	v := m.scale
	if v == nil {
		return
	}
	return *v, true
}

// OldScale returns the old "scale" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldScale(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScale: %w", err)
	}
	return oldValue.Scale, nil
}

// AddScale adds f to the "scale" field.
func (m *UpdateLogMutation) AddScale(f float64) {
	if m.addscale != nil {
		*m.addscale += f
	} else {
		m.addscale = &f
	}
}

// AddedScale returns the value that was added to the "scale" field in this mutation.
func (m *UpdateLogMutation) AddedScale() (r float64, exists bool) {
	v := m.addscale
	if v == nil {
		return
	}
	return *v, true
}

// ResetScale resets all changes to the "scale" field.
func (m *UpdateLogMutation) ResetScale() {
	m.scale = nil
	m.addscale = nil
}

// SetOptionCount sets the "option_count" field.
func (m *UpdateLogMutation) SetOptionCount(i int) {
	m.option_count = &i
	m.addoption_count = nil
}

// OptionCount returns the value of the "option_count" field in the mutation.
func (m *UpdateLogMutation) OptionCount() (r int, exists bool) {
	v := m.option_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionCount returns the old "option_count" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldOptionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionCount: %w", err)
	}
	return oldValue.OptionCount, nil
}

// AddOptionCount adds i to the "option_count" field.
func (m *UpdateLogMutation) AddOptionCount(i int) {
	if m.addoption_count != nil {
		*m.addoption_count += i
	} else {
		m.addoption_count = &i
	}
}

// AddedOptionCount returns the value that was added to the "option_count" field in this mutation.
func (m *UpdateLogMutation) AddedOptionCount() (r int, exists bool) {
	v := m.addoption_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOptionCount resets all changes to the "option_count" field.
func (m *UpdateLogMutation) ResetOptionCount() {
	m.option_count = nil
	m.addoption_count = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *UpdateLogMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *UpdateLogMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *UpdateLogMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UpdateLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UpdateLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UpdateLog entity.
// If the UpdateLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpdateLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UpdateLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UpdateLogMutation builder.
func (m *UpdateLogMutation) Where(ps ...predicate.UpdateLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UpdateLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UpdateLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UpdateLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UpdateLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UpdateLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UpdateLog).
func (m *UpdateLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UpdateLogMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.attempt_id != nil {
		fields = append(fields, updatelog.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, updatelog.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, updatelog.FieldQuestionID)
	}
	if m.scope_type != nil {
		fields = append(fields, updatelog.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, updatelog.FieldScopeID)
	}
	if m.score != nil {
		fields = append(fields, updatelog.FieldScore)
	}
	if m.p_pred != nil {
		fields = append(fields, updatelog.FieldPPred)
	}
	if m.user_rating_pre != nil {
		fields = append(fields, updatelog.FieldUserRatingPre)
	}
	if m.user_rating_post != nil {
		fields = append(fields, updatelog.FieldUserRatingPost)
	}
	if m.user_uncertainty_pre != nil {
		fields = append(fields, updatelog.FieldUserUncertaintyPre)
	}
	if m.user_uncertainty_post != nil {
		fields = append(fields, updatelog.FieldUserUncertaintyPost)
	}
	if m.question_rating_pre != nil {
		fields = append(fields, updatelog.FieldQuestionRatingPre)
	}
	if m.question_rating_post != nil {
		fields = append(fields, updatelog.FieldQuestionRatingPost)
	}
	if m.question_uncertainty_pre != nil {
		fields = append(fields, updatelog.FieldQuestionUncertaintyPre)
	}
	if m.question_uncertainty_post != nil {
		fields = append(fields, updatelog.FieldQuestionUncertaintyPost)
	}
	if m.k_user != nil {
		fields = append(fields, updatelog.FieldKUser)
	}
	if m.k_question != nil {
		fields = append(fields, updatelog.FieldKQuestion)
	}
	if m.guess_floor != nil {
		fields = append(fields, updatelog.FieldGuessFloor)
	}
	if m.scale != nil {
		fields = append(fields, updatelog.FieldScale)
	}
	if m.option_count != nil {
		fields = append(fields, updatelog.FieldOptionCount)
	}
	if m.occurred_at != nil {
		fields = append(fields, updatelog.FieldOccurredAt)
	}
	if m.created_at != nil {
		fields = append(fields, updatelog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UpdateLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case updatelog.FieldAttemptID:
		return m.AttemptID()
	case updatelog.FieldUserID:
		return m.UserID()
	case updatelog.FieldQuestionID:
		return m.QuestionID()
	case updatelog.FieldScopeType:
		return m.ScopeType()
	case updatelog.FieldScopeID:
		return m.ScopeID()
	case updatelog.FieldScore:
		return m.Score()
	case updatelog.FieldPPred:
		return m.PPred()
	case updatelog.FieldUserRatingPre:
		return m.UserRatingPre()
	case updatelog.FieldUserRatingPost:
		return m.UserRatingPost()
	case updatelog.FieldUserUncertaintyPre:
		return m.UserUncertaintyPre()
	case updatelog.FieldUserUncertaintyPost:
		return m.UserUncertaintyPost()
	case updatelog.FieldQuestionRatingPre:
		return m.QuestionRatingPre()
	case updatelog.FieldQuestionRatingPost:
		return m.QuestionRatingPost()
	case updatelog.FieldQuestionUncertaintyPre:
		return m.QuestionUncertaintyPre()
	case updatelog.FieldQuestionUncertaintyPost:
		return m.QuestionUncertaintyPost()
	case updatelog.FieldKUser:
		return m.KUser()
	case updatelog.FieldKQuestion:
		return m.KQuestion()
	case updatelog.FieldGuessFloor:
		return m.GuessFloor()
	case updatelog.FieldScale:
		return m.Scale()
	case updatelog.FieldOptionCount:
		return m.OptionCount()
	case updatelog.FieldOccurredAt:
		return m.OccurredAt()
	case updatelog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UpdateLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case updatelog.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case updatelog.FieldUserID:
		return m.OldUserID(ctx)
	case updatelog.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case updatelog.FieldScopeType:
		return m.OldScopeType(ctx)
	case updatelog.FieldScopeID:
		return m.OldScopeID(ctx)
	case updatelog.FieldScore:
		return m.OldScore(ctx)
	case updatelog.FieldPPred:
		return m.OldPPred(ctx)
	case updatelog.FieldUserRatingPre:
		return m.OldUserRatingPre(ctx)
	case updatelog.FieldUserRatingPost:
		return m.OldUserRatingPost(ctx)
	case updatelog.FieldUserUncertaintyPre:
		return m.OldUserUncertaintyPre(ctx)
	case updatelog.FieldUserUncertaintyPost:
		return m.OldUserUncertaintyPost(ctx)
	case updatelog.FieldQuestionRatingPre:
		return m.OldQuestionRatingPre(ctx)
	case updatelog.FieldQuestionRatingPost:
		return m.OldQuestionRatingPost(ctx)
	case updatelog.FieldQuestionUncertaintyPre:
		return m.OldQuestionUncertaintyPre(ctx)
	case updatelog.FieldQuestionUncertaintyPost:
		return m.OldQuestionUncertaintyPost(ctx)
	case updatelog.FieldKUser:
		return m.OldKUser(ctx)
	case updatelog.FieldKQuestion:
		return m.OldKQuestion(ctx)
	case updatelog.FieldGuessFloor:
		return m.OldGuessFloor(ctx)
	case updatelog.FieldScale:
		return m.OldScale(ctx)
	case updatelog.FieldOptionCount:
		return m.OldOptionCount(ctx)
	case updatelog.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case updatelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UpdateLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpdateLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case updatelog.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case updatelog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case updatelog.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case updatelog.FieldScopeType:
		v, ok := value.(updatelog.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case updatelog.FieldScopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case updatelog.FieldScore:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case updatelog.FieldPPred:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPPred(v)
		return nil
	case updatelog.FieldUserRatingPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserRatingPre(v)
		return nil
	case updatelog.FieldUserRatingPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserRatingPost(v)
		return nil
	case updatelog.FieldUserUncertaintyPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserUncertaintyPre(v)
		return nil
	case updatelog.FieldUserUncertaintyPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserUncertaintyPost(v)
		return nil
	case updatelog.FieldQuestionRatingPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionRatingPre(v)
		return nil
	case updatelog.FieldQuestionRatingPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionRatingPost(v)
		return nil
	case updatelog.FieldQuestionUncertaintyPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionUncertaintyPre(v)
		return nil
	case updatelog.FieldQuestionUncertaintyPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionUncertaintyPost(v)
		return nil
	case updatelog.FieldKUser:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKUser(v)
		return nil
	case updatelog.FieldKQuestion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKQuestion(v)
		return nil
	case updatelog.FieldGuessFloor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuessFloor(v)
		return nil
	case updatelog.FieldScale:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScale(v)
		return nil
	case updatelog.FieldOptionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionCount(v)
		return nil
	case updatelog.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case updatelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UpdateLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UpdateLogMutation) AddedFields() []string {
	var fields []string
	if m.addp_pred != nil {
		fields = append(fields, updatelog.FieldPPred)
	}
	if m.adduser_rating_pre != nil {
		fields = append(fields, updatelog.FieldUserRatingPre)
	}
	if m.adduser_rating_post != nil {
		fields = append(fields, updatelog.FieldUserRatingPost)
	}
	if m.adduser_uncertainty_pre != nil {
		fields = append(fields, updatelog.FieldUserUncertaintyPre)
	}
	if m.adduser_uncertainty_post != nil {
		fields = append(fields, updatelog.FieldUserUncertaintyPost)
	}
	if m.addquestion_rating_pre != nil {
		fields = append(fields, updatelog.FieldQuestionRatingPre)
	}
	if m.addquestion_rating_post != nil {
		fields = append(fields, updatelog.FieldQuestionRatingPost)
	}
	if m.addquestion_uncertainty_pre != nil {
		fields = append(fields, updatelog.FieldQuestionUncertaintyPre)
	}
	if m.addquestion_uncertainty_post != nil {
		fields = append(fields, updatelog.FieldQuestionUncertaintyPost)
	}
	if m.addk_user != nil {
		fields = append(fields, updatelog.FieldKUser)
	}
	if m.addk_question != nil {
		fields = append(fields, updatelog.FieldKQuestion)
	}
	if m.addguess_floor != nil {
		fields = append(fields, updatelog.FieldGuessFloor)
	}
	if m.addscale != nil {
		fields = append(fields, updatelog.FieldScale)
	}
	if m.addoption_count != nil {
		fields = append(fields, updatelog.FieldOptionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UpdateLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case updatelog.FieldPPred:
		return m.AddedPPred()
	case updatelog.FieldUserRatingPre:
		return m.AddedUserRatingPre()
	case updatelog.FieldUserRatingPost:
		return m.AddedUserRatingPost()
	case updatelog.FieldUserUncertaintyPre:
		return m.AddedUserUncertaintyPre()
	case updatelog.FieldUserUncertaintyPost:
		return m.AddedUserUncertaintyPost()
	case updatelog.FieldQuestionRatingPre:
		return m.AddedQuestionRatingPre()
	case updatelog.FieldQuestionRatingPost:
		return m.AddedQuestionRatingPost()
	case updatelog.FieldQuestionUncertaintyPre:
		return m.AddedQuestionUncertaintyPre()
	case updatelog.FieldQuestionUncertaintyPost:
		return m.AddedQuestionUncertaintyPost()
	case updatelog.FieldKUser:
		return m.AddedKUser()
	case updatelog.FieldKQuestion:
		return m.AddedKQuestion()
	case updatelog.FieldGuessFloor:
		return m.AddedGuessFloor()
	case updatelog.FieldScale:
		return m.AddedScale()
	case updatelog.FieldOptionCount:
		return m.AddedOptionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpdateLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case updatelog.FieldPPred:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPPred(v)
		return nil
	case updatelog.FieldUserRatingPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserRatingPre(v)
		return nil
	case updatelog.FieldUserRatingPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserRatingPost(v)
		return nil
	case updatelog.FieldUserUncertaintyPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserUncertaintyPre(v)
		return nil
	case updatelog.FieldUserUncertaintyPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserUncertaintyPost(v)
		return nil
	case updatelog.FieldQuestionRatingPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionRatingPre(v)
		return nil
	case updatelog.FieldQuestionRatingPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionRatingPost(v)
		return nil
	case updatelog.FieldQuestionUncertaintyPre:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionUncertaintyPre(v)
		return nil
	case updatelog.FieldQuestionUncertaintyPost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionUncertaintyPost(v)
		return nil
	case updatelog.FieldKUser:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKUser(v)
		return nil
	case updatelog.FieldKQuestion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKQuestion(v)
		return nil
	case updatelog.FieldGuessFloor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGuessFloor(v)
		return nil
	case updatelog.FieldScale:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScale(v)
		return nil
	case updatelog.FieldOptionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOptionCount(v)
		return nil
	}
	return fmt.Errorf("unknown UpdateLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UpdateLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UpdateLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UpdateLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UpdateLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UpdateLogMutation) ResetField(name string) error {
	switch name {
	case updatelog.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case updatelog.FieldUserID:
		m.ResetUserID()
		return nil
	case updatelog.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case updatelog.FieldScopeType:
		m.ResetScopeType()
		return nil
	case updatelog.FieldScopeID:
		m.ResetScopeID()
		return nil
	case updatelog.FieldScore:
		m.ResetScore()
		return nil
	case updatelog.FieldPPred:
		m.ResetPPred()
		return nil
	case updatelog.FieldUserRatingPre:
		m.ResetUserRatingPre()
		return nil
	case updatelog.FieldUserRatingPost:
		m.ResetUserRatingPost()
		return nil
	case updatelog.FieldUserUncertaintyPre:
		m.ResetUserUncertaintyPre()
		return nil
	case updatelog.FieldUserUncertaintyPost:
		m.ResetUserUncertaintyPost()
		return nil
	case updatelog.FieldQuestionRatingPre:
		m.ResetQuestionRatingPre()
		return nil
	case updatelog.FieldQuestionRatingPost:
		m.ResetQuestionRatingPost()
		return nil
	case updatelog.FieldQuestionUncertaintyPre:
		m.ResetQuestionUncertaintyPre()
		return nil
	case updatelog.FieldQuestionUncertaintyPost:
		m.ResetQuestionUncertaintyPost()
		return nil
	case updatelog.FieldKUser:
		m.ResetKUser()
		return nil
	case updatelog.FieldKQuestion:
		m.ResetKQuestion()
		return nil
	case updatelog.FieldGuessFloor:
		m.ResetGuessFloor()
		return nil
	case updatelog.FieldScale:
		m.ResetScale()
		return nil
	case updatelog.FieldOptionCount:
		m.ResetOptionCount()
		return nil
	case updatelog.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case updatelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UpdateLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UpdateLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UpdateLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UpdateLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UpdateLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UpdateLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UpdateLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UpdateLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UpdateLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UpdateLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UpdateLog edge %s", name)
}

// UserRatingMutation represents an operation that mutates the UserRating nodes in the graph.
type UserRatingMutation struct {
	config
	op             Op
	typ            string
	id             *int
	entity_id      *string
	scope_type     *userrating.ScopeType
	scope_id       *string
	rating         *float64
	addrating      *float64
	uncertainty    *float64
	adduncertainty *float64
	n_attempts     *int
	addn_attempts  *int
	last_seen_at   *time.Time
	version        *int64
	addversion     *int64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*UserRating, error)
	predicates     []predicate.UserRating
}

var _ ent.Mutation = (*UserRatingMutation)(nil)

// userratingOption allows management of the mutation configuration using functional options.
type userratingOption func(*UserRatingMutation)

// newUserRatingMutation creates new mutation for the UserRating entity.
func newUserRatingMutation(c config, op Op, opts ...userratingOption) *UserRatingMutation {
	m := &UserRatingMutation{
		config:        c,
		op:            op,
		typ:           TypeUserRating,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserRatingID sets the ID field of the mutation.
func withUserRatingID(id int) userratingOption {
	return func(m *UserRatingMutation) {
		var (
			err   error
			once  sync.Once
			value *UserRating
		)
		m.oldValue = func(ctx context.Context) (*UserRating, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserRating.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserRating sets the old UserRating of the mutation.
func withUserRating(node *UserRating) userratingOption {
	return func(m *UserRatingMutation) {
		m.oldValue = func(context.Context) (*UserRating, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserRatingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserRatingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserRatingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserRatingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserRating.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *UserRatingMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *UserRatingMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *UserRatingMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetScopeType sets the "scope_type" field.
func (m *UserRatingMutation) SetScopeType(ut userrating.ScopeType) {
	m.scope_type = &ut
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *UserRatingMutation) ScopeType() (r userrating.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldScopeType(ctx context.Context) (v userrating.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *UserRatingMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *UserRatingMutation) SetScopeID(s string) {
	m.scope_id = &s
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *UserRatingMutation) ScopeID() (r string, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldScopeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *UserRatingMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetRating sets the "rating" field.
func (m *UserRatingMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *UserRatingMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *UserRatingMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *UserRatingMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *UserRatingMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetUncertainty sets the "uncertainty" field.
func (m *UserRatingMutation) SetUncertainty(f float64) {
	m.uncertainty = &f
	m.adduncertainty = nil
}

// Uncertainty returns the value of the "uncertainty" field in the mutation.
func (m *UserRatingMutation) Uncertainty() (r float64, exists bool) {
	v := m.uncertainty
	if v == nil {
		return
	}
	return *v, true
}

// OldUncertainty returns the old "uncertainty" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldUncertainty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUncertainty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUncertainty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUncertainty: %w", err)
	}
	return oldValue.Uncertainty, nil
}

// AddUncertainty adds f to the "uncertainty" field.
func (m *UserRatingMutation) AddUncertainty(f float64) {
	if m.adduncertainty != nil {
		*m.adduncertainty += f
	} else {
		m.adduncertainty = &f
	}
}

// AddedUncertainty returns the value that was added to the "uncertainty" field in this mutation.
func (m *UserRatingMutation) AddedUncertainty() (r float64, exists bool) {
	v := m.adduncertainty
	if v == nil {
		return
	}
	return *v, true
}

// ResetUncertainty resets all changes to the "uncertainty" field.
func (m *UserRatingMutation) ResetUncertainty() {
	m.uncertainty = nil
	m.adduncertainty = nil
}

// SetNAttempts sets the "n_attempts" field.
func (m *UserRatingMutation) SetNAttempts(i int) {
	m.n_attempts = &i
	m.addn_attempts = nil
}

// NAttempts returns the value of the "n_attempts" field in the mutation.
func (m *UserRatingMutation) NAttempts() (r int, exists bool) {
	v := m.n_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldNAttempts returns the old "n_attempts" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldNAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNAttempts: %w", err)
	}
	return oldValue.NAttempts, nil
}

// AddNAttempts adds i to the "n_attempts" field.
func (m *UserRatingMutation) AddNAttempts(i int) {
	if m.addn_attempts != nil {
		*m.addn_attempts += i
	} else {
		m.addn_attempts = &i
	}
}

// AddedNAttempts returns the value that was added to the "n_attempts" field in this mutation.
func (m *UserRatingMutation) AddedNAttempts() (r int, exists bool) {
	v := m.addn_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetNAttempts resets all changes to the "n_attempts" field.
func (m *UserRatingMutation) ResetNAttempts() {
	m.n_attempts = nil
	m.addn_attempts = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *UserRatingMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *UserRatingMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *UserRatingMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[userrating.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *UserRatingMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[userrating.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *UserRatingMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, userrating.FieldLastSeenAt)
}

// SetVersion sets the "version" field.
func (m *UserRatingMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *UserRatingMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the UserRating entity.
// If the UserRating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRatingMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *UserRatingMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *UserRatingMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *UserRatingMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the UserRatingMutation builder.
func (m *UserRatingMutation) Where(ps ...predicate.UserRating) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserRatingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserRatingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserRating, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserRatingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserRatingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserRating).
func (m *UserRatingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserRatingMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.entity_id != nil {
		fields = append(fields, userrating.FieldEntityID)
	}
	if m.scope_type != nil {
		fields = append(fields, userrating.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, userrating.FieldScopeID)
	}
	if m.rating != nil {
		fields = append(fields, userrating.FieldRating)
	}
	if m.uncertainty != nil {
		fields = append(fields, userrating.FieldUncertainty)
	}
	if m.n_attempts != nil {
		fields = append(fields, userrating.FieldNAttempts)
	}
	if m.last_seen_at != nil {
		fields = append(fields, userrating.FieldLastSeenAt)
	}
	if m.version != nil {
		fields = append(fields, userrating.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserRatingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userrating.FieldEntityID:
		return m.EntityID()
	case userrating.FieldScopeType:
		return m.ScopeType()
	case userrating.FieldScopeID:
		return m.ScopeID()
	case userrating.FieldRating:
		return m.Rating()
	case userrating.FieldUncertainty:
		return m.Uncertainty()
	case userrating.FieldNAttempts:
		return m.NAttempts()
	case userrating.FieldLastSeenAt:
		return m.LastSeenAt()
	case userrating.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserRatingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userrating.FieldEntityID:
		return m.OldEntityID(ctx)
	case userrating.FieldScopeType:
		return m.OldScopeType(ctx)
	case userrating.FieldScopeID:
		return m.OldScopeID(ctx)
	case userrating.FieldRating:
		return m.OldRating(ctx)
	case userrating.FieldUncertainty:
		return m.OldUncertainty(ctx)
	case userrating.FieldNAttempts:
		return m.OldNAttempts(ctx)
	case userrating.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case userrating.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown UserRating field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserRatingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userrating.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case userrating.FieldScopeType:
		v, ok := value.(userrating.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case userrating.FieldScopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case userrating.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case userrating.FieldUncertainty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUncertainty(v)
		return nil
	case userrating.FieldNAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNAttempts(v)
		return nil
	case userrating.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case userrating.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown UserRating field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserRatingMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, userrating.FieldRating)
	}
	if m.adduncertainty != nil {
		fields = append(fields, userrating.FieldUncertainty)
	}
	if m.addn_attempts != nil {
		fields = append(fields, userrating.FieldNAttempts)
	}
	if m.addversion != nil {
		fields = append(fields, userrating.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserRatingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userrating.FieldRating:
		return m.AddedRating()
	case userrating.FieldUncertainty:
		return m.AddedUncertainty()
	case userrating.FieldNAttempts:
		return m.AddedNAttempts()
	case userrating.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserRatingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userrating.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case userrating.FieldUncertainty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUncertainty(v)
		return nil
	case userrating.FieldNAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNAttempts(v)
		return nil
	case userrating.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown UserRating numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserRatingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userrating.FieldLastSeenAt) {
		fields = append(fields, userrating.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserRatingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserRatingMutation) ClearField(name string) error {
	switch name {
	case userrating.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown UserRating nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserRatingMutation) ResetField(name string) error {
	switch name {
	case userrating.FieldEntityID:
		m.ResetEntityID()
		return nil
	case userrating.FieldScopeType:
		m.ResetScopeType()
		return nil
	case userrating.FieldScopeID:
		m.ResetScopeID()
		return nil
	case userrating.FieldRating:
		m.ResetRating()
		return nil
	case userrating.FieldUncertainty:
		m.ResetUncertainty()
		return nil
	case userrating.FieldNAttempts:
		m.ResetNAttempts()
		return nil
	case userrating.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case userrating.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown UserRating field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserRatingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserRatingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserRatingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserRatingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserRatingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserRatingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserRatingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserRating unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserRatingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserRating edge %s", name)
}
