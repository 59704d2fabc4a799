// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adaptly/calibrant/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/irtrun"
	"github.com/adaptly/calibrant/ent/questionrating"
	"github.com/adaptly/calibrant/ent/updatelog"
	"github.com/adaptly/calibrant/ent/userrating"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IrtAbility is the client for interacting with the IrtAbility builders.
	IrtAbility *IrtAbilityClient
	// IrtItemParam is the client for interacting with the IrtItemParam builders.
	IrtItemParam *IrtItemParamClient
	// IrtRun is the client for interacting with the IrtRun builders.
	IrtRun *IrtRunClient
	// QuestionRating is the client for interacting with the QuestionRating builders.
	QuestionRating *QuestionRatingClient
	// UpdateLog is the client for interacting with the UpdateLog builders.
	UpdateLog *UpdateLogClient
	// UserRating is the client for interacting with the UserRating builders.
	UserRating *UserRatingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IrtAbility = NewIrtAbilityClient(c.config)
	c.IrtItemParam = NewIrtItemParamClient(c.config)
	c.IrtRun = NewIrtRunClient(c.config)
	c.QuestionRating = NewQuestionRatingClient(c.config)
	c.UpdateLog = NewUpdateLogClient(c.config)
	c.UserRating = NewUserRatingClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		IrtAbility:     NewIrtAbilityClient(cfg),
		IrtItemParam:   NewIrtItemParamClient(cfg),
		IrtRun:         NewIrtRunClient(cfg),
		QuestionRating: NewQuestionRatingClient(cfg),
		UpdateLog:      NewUpdateLogClient(cfg),
		UserRating:     NewUserRatingClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		IrtAbility:     NewIrtAbilityClient(cfg),
		IrtItemParam:   NewIrtItemParamClient(cfg),
		IrtRun:         NewIrtRunClient(cfg),
		QuestionRating: NewQuestionRatingClient(cfg),
		UpdateLog:      NewUpdateLogClient(cfg),
		UserRating:     NewUserRatingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IrtAbility.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.IrtAbility, c.IrtItemParam, c.IrtRun, c.QuestionRating, c.UpdateLog,
		c.UserRating,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.IrtAbility, c.IrtItemParam, c.IrtRun, c.QuestionRating, c.UpdateLog,
		c.UserRating,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IrtAbilityMutation:
		return c.IrtAbility.mutate(ctx, m)
	case *IrtItemParamMutation:
		return c.IrtItemParam.mutate(ctx, m)
	case *IrtRunMutation:
		return c.IrtRun.mutate(ctx, m)
	case *QuestionRatingMutation:
		return c.QuestionRating.mutate(ctx, m)
	case *UpdateLogMutation:
		return c.UpdateLog.mutate(ctx, m)
	case *UserRatingMutation:
		return c.UserRating.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IrtAbilityClient is a client for the IrtAbility schema.
type IrtAbilityClient struct {
	config
}

// NewIrtAbilityClient returns a client for the IrtAbility from the given config.
func NewIrtAbilityClient(c config) *IrtAbilityClient {
	return &IrtAbilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `irtability.Hooks(f(g(h())))`.
func (c *IrtAbilityClient) Use(hooks ...Hook) {
	c.hooks.IrtAbility = append(c.hooks.IrtAbility, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `irtability.Intercept(f(g(h())))`.
func (c *IrtAbilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.IrtAbility = append(c.inters.IrtAbility, interceptors...)
}

// Create returns a builder for creating a IrtAbility entity.
func (c *IrtAbilityClient) Create() *IrtAbilityCreate {
	mutation := newIrtAbilityMutation(c.config, OpCreate)
	return &IrtAbilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IrtAbility entities.
func (c *IrtAbilityClient) CreateBulk(builders ...*IrtAbilityCreate) *IrtAbilityCreateBulk {
	return &IrtAbilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IrtAbilityClient) MapCreateBulk(slice any, setFunc func(*IrtAbilityCreate, int)) *IrtAbilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IrtAbilityCreateBulk{err: fmt.Errorf("calling to IrtAbilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IrtAbilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IrtAbilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IrtAbility.
func (c *IrtAbilityClient) Update() *IrtAbilityUpdate {
	mutation := newIrtAbilityMutation(c.config, OpUpdate)
	return &IrtAbilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IrtAbilityClient) UpdateOne(ia *IrtAbility) *IrtAbilityUpdateOne {
	mutation := newIrtAbilityMutation(c.config, OpUpdateOne, withIrtAbility(ia))
	return &IrtAbilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IrtAbilityClient) UpdateOneID(id int) *IrtAbilityUpdateOne {
	mutation := newIrtAbilityMutation(c.config, OpUpdateOne, withIrtAbilityID(id))
	return &IrtAbilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IrtAbility.
func (c *IrtAbilityClient) Delete() *IrtAbilityDelete {
	mutation := newIrtAbilityMutation(c.config, OpDelete)
	return &IrtAbilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IrtAbilityClient) DeleteOne(ia *IrtAbility) *IrtAbilityDeleteOne {
	return c.DeleteOneID(ia.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IrtAbilityClient) DeleteOneID(id int) *IrtAbilityDeleteOne {
	builder := c.Delete().Where(irtability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IrtAbilityDeleteOne{builder}
}

// Query returns a query builder for IrtAbility.
func (c *IrtAbilityClient) Query() *IrtAbilityQuery {
	return &IrtAbilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIrtAbility},
		inters: c.Interceptors(),
	}
}

// Get returns a IrtAbility entity by its id.
func (c *IrtAbilityClient) Get(ctx context.Context, id int) (*IrtAbility, error) {
	return c.Query().Where(irtability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IrtAbilityClient) GetX(ctx context.Context, id int) *IrtAbility {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IrtAbilityClient) Hooks() []Hook {
	return c.hooks.IrtAbility
}

// Interceptors returns the client interceptors.
func (c *IrtAbilityClient) Interceptors() []Interceptor {
	return c.inters.IrtAbility
}

func (c *IrtAbilityClient) mutate(ctx context.Context, m *IrtAbilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IrtAbilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IrtAbilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IrtAbilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IrtAbilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IrtAbility mutation op: %q", m.Op())
	}
}

// IrtItemParamClient is a client for the IrtItemParam schema.
type IrtItemParamClient struct {
	config
}

// NewIrtItemParamClient returns a client for the IrtItemParam from the given config.
func NewIrtItemParamClient(c config) *IrtItemParamClient {
	return &IrtItemParamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `irtitemparam.Hooks(f(g(h())))`.
func (c *IrtItemParamClient) Use(hooks ...Hook) {
	c.hooks.IrtItemParam = append(c.hooks.IrtItemParam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `irtitemparam.Intercept(f(g(h())))`.
func (c *IrtItemParamClient) Intercept(interceptors ...Interceptor) {
	c.inters.IrtItemParam = append(c.inters.IrtItemParam, interceptors...)
}

// Create returns a builder for creating a IrtItemParam entity.
func (c *IrtItemParamClient) Create() *IrtItemParamCreate {
	mutation := newIrtItemParamMutation(c.config, OpCreate)
	return &IrtItemParamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IrtItemParam entities.
func (c *IrtItemParamClient) CreateBulk(builders ...*IrtItemParamCreate) *IrtItemParamCreateBulk {
	return &IrtItemParamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IrtItemParamClient) MapCreateBulk(slice any, setFunc func(*IrtItemParamCreate, int)) *IrtItemParamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IrtItemParamCreateBulk{err: fmt.Errorf("calling to IrtItemParamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IrtItemParamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IrtItemParamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IrtItemParam.
func (c *IrtItemParamClient) Update() *IrtItemParamUpdate {
	mutation := newIrtItemParamMutation(c.config, OpUpdate)
	return &IrtItemParamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IrtItemParamClient) UpdateOne(iip *IrtItemParam) *IrtItemParamUpdateOne {
	mutation := newIrtItemParamMutation(c.config, OpUpdateOne, withIrtItemParam(iip))
	return &IrtItemParamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IrtItemParamClient) UpdateOneID(id int) *IrtItemParamUpdateOne {
	mutation := newIrtItemParamMutation(c.config, OpUpdateOne, withIrtItemParamID(id))
	return &IrtItemParamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IrtItemParam.
func (c *IrtItemParamClient) Delete() *IrtItemParamDelete {
	mutation := newIrtItemParamMutation(c.config, OpDelete)
	return &IrtItemParamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IrtItemParamClient) DeleteOne(iip *IrtItemParam) *IrtItemParamDeleteOne {
	return c.DeleteOneID(iip.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IrtItemParamClient) DeleteOneID(id int) *IrtItemParamDeleteOne {
	builder := c.Delete().Where(irtitemparam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IrtItemParamDeleteOne{builder}
}

// Query returns a query builder for IrtItemParam.
func (c *IrtItemParamClient) Query() *IrtItemParamQuery {
	return &IrtItemParamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIrtItemParam},
		inters: c.Interceptors(),
	}
}

// Get returns a IrtItemParam entity by its id.
func (c *IrtItemParamClient) Get(ctx context.Context, id int) (*IrtItemParam, error) {
	return c.Query().Where(irtitemparam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IrtItemParamClient) GetX(ctx context.Context, id int) *IrtItemParam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IrtItemParamClient) Hooks() []Hook {
	return c.hooks.IrtItemParam
}

// Interceptors returns the client interceptors.
func (c *IrtItemParamClient) Interceptors() []Interceptor {
	return c.inters.IrtItemParam
}

func (c *IrtItemParamClient) mutate(ctx context.Context, m *IrtItemParamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IrtItemParamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IrtItemParamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IrtItemParamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IrtItemParamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IrtItemParam mutation op: %q", m.Op())
	}
}

// IrtRunClient is a client for the IrtRun schema.
type IrtRunClient struct {
	config
}

// NewIrtRunClient returns a client for the IrtRun from the given config.
func NewIrtRunClient(c config) *IrtRunClient {
	return &IrtRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `irtrun.Hooks(f(g(h())))`.
func (c *IrtRunClient) Use(hooks ...Hook) {
	c.hooks.IrtRun = append(c.hooks.IrtRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `irtrun.Intercept(f(g(h())))`.
func (c *IrtRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.IrtRun = append(c.inters.IrtRun, interceptors...)
}

// Create returns a builder for creating a IrtRun entity.
func (c *IrtRunClient) Create() *IrtRunCreate {
	mutation := newIrtRunMutation(c.config, OpCreate)
	return &IrtRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IrtRun entities.
func (c *IrtRunClient) CreateBulk(builders ...*IrtRunCreate) *IrtRunCreateBulk {
	return &IrtRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IrtRunClient) MapCreateBulk(slice any, setFunc func(*IrtRunCreate, int)) *IrtRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IrtRunCreateBulk{err: fmt.Errorf("calling to IrtRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IrtRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IrtRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IrtRun.
func (c *IrtRunClient) Update() *IrtRunUpdate {
	mutation := newIrtRunMutation(c.config, OpUpdate)
	return &IrtRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IrtRunClient) UpdateOne(ir *IrtRun) *IrtRunUpdateOne {
	mutation := newIrtRunMutation(c.config, OpUpdateOne, withIrtRun(ir))
	return &IrtRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IrtRunClient) UpdateOneID(id string) *IrtRunUpdateOne {
	mutation := newIrtRunMutation(c.config, OpUpdateOne, withIrtRunID(id))
	return &IrtRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IrtRun.
func (c *IrtRunClient) Delete() *IrtRunDelete {
	mutation := newIrtRunMutation(c.config, OpDelete)
	return &IrtRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IrtRunClient) DeleteOne(ir *IrtRun) *IrtRunDeleteOne {
	return c.DeleteOneID(ir.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IrtRunClient) DeleteOneID(id string) *IrtRunDeleteOne {
	builder := c.Delete().Where(irtrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IrtRunDeleteOne{builder}
}

// Query returns a query builder for IrtRun.
func (c *IrtRunClient) Query() *IrtRunQuery {
	return &IrtRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIrtRun},
		inters: c.Interceptors(),
	}
}

// Get returns a IrtRun entity by its id.
func (c *IrtRunClient) Get(ctx context.Context, id string) (*IrtRun, error) {
	return c.Query().Where(irtrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IrtRunClient) GetX(ctx context.Context, id string) *IrtRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IrtRunClient) Hooks() []Hook {
	return c.hooks.IrtRun
}

// Interceptors returns the client interceptors.
func (c *IrtRunClient) Interceptors() []Interceptor {
	return c.inters.IrtRun
}

func (c *IrtRunClient) mutate(ctx context.Context, m *IrtRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IrtRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IrtRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IrtRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IrtRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IrtRun mutation op: %q", m.Op())
	}
}

// QuestionRatingClient is a client for the QuestionRating schema.
type QuestionRatingClient struct {
	config
}

// NewQuestionRatingClient returns a client for the QuestionRating from the given config.
func NewQuestionRatingClient(c config) *QuestionRatingClient {
	return &QuestionRatingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionrating.Hooks(f(g(h())))`.
func (c *QuestionRatingClient) Use(hooks ...Hook) {
	c.hooks.QuestionRating = append(c.hooks.QuestionRating, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionrating.Intercept(f(g(h())))`.
func (c *QuestionRatingClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionRating = append(c.inters.QuestionRating, interceptors...)
}

// Create returns a builder for creating a QuestionRating entity.
func (c *QuestionRatingClient) Create() *QuestionRatingCreate {
	mutation := newQuestionRatingMutation(c.config, OpCreate)
	return &QuestionRatingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionRating entities.
func (c *QuestionRatingClient) CreateBulk(builders ...*QuestionRatingCreate) *QuestionRatingCreateBulk {
	return &QuestionRatingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionRatingClient) MapCreateBulk(slice any, setFunc func(*QuestionRatingCreate, int)) *QuestionRatingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionRatingCreateBulk{err: fmt.Errorf("calling to QuestionRatingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionRatingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionRatingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionRating.
func (c *QuestionRatingClient) Update() *QuestionRatingUpdate {
	mutation := newQuestionRatingMutation(c.config, OpUpdate)
	return &QuestionRatingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionRatingClient) UpdateOne(qr *QuestionRating) *QuestionRatingUpdateOne {
	mutation := newQuestionRatingMutation(c.config, OpUpdateOne, withQuestionRating(qr))
	return &QuestionRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionRatingClient) UpdateOneID(id int) *QuestionRatingUpdateOne {
	mutation := newQuestionRatingMutation(c.config, OpUpdateOne, withQuestionRatingID(id))
	return &QuestionRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionRating.
func (c *QuestionRatingClient) Delete() *QuestionRatingDelete {
	mutation := newQuestionRatingMutation(c.config, OpDelete)
	return &QuestionRatingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionRatingClient) DeleteOne(qr *QuestionRating) *QuestionRatingDeleteOne {
	return c.DeleteOneID(qr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionRatingClient) DeleteOneID(id int) *QuestionRatingDeleteOne {
	builder := c.Delete().Where(questionrating.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionRatingDeleteOne{builder}
}

// Query returns a query builder for QuestionRating.
func (c *QuestionRatingClient) Query() *QuestionRatingQuery {
	return &QuestionRatingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionRating},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionRating entity by its id.
func (c *QuestionRatingClient) Get(ctx context.Context, id int) (*QuestionRating, error) {
	return c.Query().Where(questionrating.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionRatingClient) GetX(ctx context.Context, id int) *QuestionRating {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionRatingClient) Hooks() []Hook {
	return c.hooks.QuestionRating
}

// Interceptors returns the client interceptors.
func (c *QuestionRatingClient) Interceptors() []Interceptor {
	return c.inters.QuestionRating
}

func (c *QuestionRatingClient) mutate(ctx context.Context, m *QuestionRatingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionRatingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionRatingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionRatingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionRating mutation op: %q", m.Op())
	}
}

// UpdateLogClient is a client for the UpdateLog schema.
type UpdateLogClient struct {
	config
}

// NewUpdateLogClient returns a client for the UpdateLog from the given config.
func NewUpdateLogClient(c config) *UpdateLogClient {
	return &UpdateLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `updatelog.Hooks(f(g(h())))`.
func (c *UpdateLogClient) Use(hooks ...Hook) {
	c.hooks.UpdateLog = append(c.hooks.UpdateLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `updatelog.Intercept(f(g(h())))`.
func (c *UpdateLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.UpdateLog = append(c.inters.UpdateLog, interceptors...)
}

// Create returns a builder for creating a UpdateLog entity.
func (c *UpdateLogClient) Create() *UpdateLogCreate {
	mutation := newUpdateLogMutation(c.config, OpCreate)
	return &UpdateLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UpdateLog entities.
func (c *UpdateLogClient) CreateBulk(builders ...*UpdateLogCreate) *UpdateLogCreateBulk {
	return &UpdateLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UpdateLogClient) MapCreateBulk(slice any, setFunc func(*UpdateLogCreate, int)) *UpdateLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UpdateLogCreateBulk{err: fmt.Errorf("calling to UpdateLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UpdateLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UpdateLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UpdateLog.
func (c *UpdateLogClient) Update() *UpdateLogUpdate {
	mutation := newUpdateLogMutation(c.config, OpUpdate)
	return &UpdateLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UpdateLogClient) UpdateOne(ul *UpdateLog) *UpdateLogUpdateOne {
	mutation := newUpdateLogMutation(c.config, OpUpdateOne, withUpdateLog(ul))
	return &UpdateLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UpdateLogClient) UpdateOneID(id int) *UpdateLogUpdateOne {
	mutation := newUpdateLogMutation(c.config, OpUpdateOne, withUpdateLogID(id))
	return &UpdateLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UpdateLog.
func (c *UpdateLogClient) Delete() *UpdateLogDelete {
	mutation := newUpdateLogMutation(c.config, OpDelete)
	return &UpdateLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UpdateLogClient) DeleteOne(ul *UpdateLog) *UpdateLogDeleteOne {
	return c.DeleteOneID(ul.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UpdateLogClient) DeleteOneID(id int) *UpdateLogDeleteOne {
	builder := c.Delete().Where(updatelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UpdateLogDeleteOne{builder}
}

// Query returns a query builder for UpdateLog.
func (c *UpdateLogClient) Query() *UpdateLogQuery {
	return &UpdateLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpdateLog},
		inters: c.Interceptors(),
	}
}

// Get returns a UpdateLog entity by its id.
func (c *UpdateLogClient) Get(ctx context.Context, id int) (*UpdateLog, error) {
	return c.Query().Where(updatelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UpdateLogClient) GetX(ctx context.Context, id int) *UpdateLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UpdateLogClient) Hooks() []Hook {
	return c.hooks.UpdateLog
}

// Interceptors returns the client interceptors.
func (c *UpdateLogClient) Interceptors() []Interceptor {
	return c.inters.UpdateLog
}

func (c *UpdateLogClient) mutate(ctx context.Context, m *UpdateLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UpdateLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UpdateLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UpdateLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UpdateLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UpdateLog mutation op: %q", m.Op())
	}
}

// UserRatingClient is a client for the UserRating schema.
type UserRatingClient struct {
	config
}

// NewUserRatingClient returns a client for the UserRating from the given config.
func NewUserRatingClient(c config) *UserRatingClient {
	return &UserRatingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userrating.Hooks(f(g(h())))`.
func (c *UserRatingClient) Use(hooks ...Hook) {
	c.hooks.UserRating = append(c.hooks.UserRating, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userrating.Intercept(f(g(h())))`.
func (c *UserRatingClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserRating = append(c.inters.UserRating, interceptors...)
}

// Create returns a builder for creating a UserRating entity.
func (c *UserRatingClient) Create() *UserRatingCreate {
	mutation := newUserRatingMutation(c.config, OpCreate)
	return &UserRatingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserRating entities.
func (c *UserRatingClient) CreateBulk(builders ...*UserRatingCreate) *UserRatingCreateBulk {
	return &UserRatingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserRatingClient) MapCreateBulk(slice any, setFunc func(*UserRatingCreate, int)) *UserRatingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserRatingCreateBulk{err: fmt.Errorf("calling to UserRatingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserRatingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserRatingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserRating.
func (c *UserRatingClient) Update() *UserRatingUpdate {
	mutation := newUserRatingMutation(c.config, OpUpdate)
	return &UserRatingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserRatingClient) UpdateOne(ur *UserRating) *UserRatingUpdateOne {
	mutation := newUserRatingMutation(c.config, OpUpdateOne, withUserRating(ur))
	return &UserRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserRatingClient) UpdateOneID(id int) *UserRatingUpdateOne {
	mutation := newUserRatingMutation(c.config, OpUpdateOne, withUserRatingID(id))
	return &UserRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserRating.
func (c *UserRatingClient) Delete() *UserRatingDelete {
	mutation := newUserRatingMutation(c.config, OpDelete)
	return &UserRatingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserRatingClient) DeleteOne(ur *UserRating) *UserRatingDeleteOne {
	return c.DeleteOneID(ur.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserRatingClient) DeleteOneID(id int) *UserRatingDeleteOne {
	builder := c.Delete().Where(userrating.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserRatingDeleteOne{builder}
}

// Query returns a query builder for UserRating.
func (c *UserRatingClient) Query() *UserRatingQuery {
	return &UserRatingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserRating},
		inters: c.Interceptors(),
	}
}

// Get returns a UserRating entity by its id.
func (c *UserRatingClient) Get(ctx context.Context, id int) (*UserRating, error) {
	return c.Query().Where(userrating.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserRatingClient) GetX(ctx context.Context, id int) *UserRating {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserRatingClient) Hooks() []Hook {
	return c.hooks.UserRating
}

// Interceptors returns the client interceptors.
func (c *UserRatingClient) Interceptors() []Interceptor {
	return c.inters.UserRating
}

func (c *UserRatingClient) mutate(ctx context.Context, m *UserRatingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserRatingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserRatingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserRatingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserRating mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IrtAbility, IrtItemParam, IrtRun, QuestionRating, UpdateLog,
		UserRating []ent.Hook
	}
	inters struct {
		IrtAbility, IrtItemParam, IrtRun, QuestionRating, UpdateLog,
		UserRating []ent.Interceptor
	}
)
