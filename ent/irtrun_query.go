// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptly/calibrant/ent/irtrun"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtRunQuery is the builder for querying IrtRun entities.
type IrtRunQuery struct {
	config
	ctx        *QueryContext
	order      []irtrun.OrderOption
	inters     []Interceptor
	predicates []predicate.IrtRun
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IrtRunQuery builder.
func (irq *IrtRunQuery) Where(ps ...predicate.IrtRun) *IrtRunQuery {
	irq.predicates = append(irq.predicates, ps...)
	return irq
}

// Limit the number of records to be returned by this query.
func (irq *IrtRunQuery) Limit(limit int) *IrtRunQuery {
	irq.ctx.Limit = &limit
	return irq
}

// Offset to start from.
func (irq *IrtRunQuery) Offset(offset int) *IrtRunQuery {
	irq.ctx.Offset = &offset
	return irq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (irq *IrtRunQuery) Unique(unique bool) *IrtRunQuery {
	irq.ctx.Unique = &unique
	return irq
}

// Order specifies how the records should be ordered.
func (irq *IrtRunQuery) Order(o ...irtrun.OrderOption) *IrtRunQuery {
	irq.order = append(irq.order, o...)
	return irq
}

// First returns the first IrtRun entity from the query.
// Returns a *NotFoundError when no IrtRun was found.
func (irq *IrtRunQuery) First(ctx context.Context) (*IrtRun, error) {
	nodes, err := irq.Limit(1).All(setContextOp(ctx, irq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{irtrun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (irq *IrtRunQuery) FirstX(ctx context.Context) *IrtRun {
	node, err := irq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IrtRun ID from the query.
// Returns a *NotFoundError when no IrtRun ID was found.
func (irq *IrtRunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = irq.Limit(1).IDs(setContextOp(ctx, irq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{irtrun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (irq *IrtRunQuery) FirstIDX(ctx context.Context) string {
	id, err := irq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IrtRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IrtRun entity is found.
// Returns a *NotFoundError when no IrtRun entities are found.
func (irq *IrtRunQuery) Only(ctx context.Context) (*IrtRun, error) {
	nodes, err := irq.Limit(2).All(setContextOp(ctx, irq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{irtrun.Label}
	default:
		return nil, &NotSingularError{irtrun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (irq *IrtRunQuery) OnlyX(ctx context.Context) *IrtRun {
	node, err := irq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IrtRun ID in the query.
// Returns a *NotSingularError when more than one IrtRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (irq *IrtRunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = irq.Limit(2).IDs(setContextOp(ctx, irq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{irtrun.Label}
	default:
		err = &NotSingularError{irtrun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (irq *IrtRunQuery) OnlyIDX(ctx context.Context) string {
	id, err := irq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IrtRuns.
func (irq *IrtRunQuery) All(ctx context.Context) ([]*IrtRun, error) {
	ctx = setContextOp(ctx, irq.ctx, ent.OpQueryAll)
	if err := irq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IrtRun, *IrtRunQuery]()
	return withInterceptors[[]*IrtRun](ctx, irq, qr, irq.inters)
}

// AllX is like All, but panics if an error occurs.
func (irq *IrtRunQuery) AllX(ctx context.Context) []*IrtRun {
	nodes, err := irq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IrtRun IDs.
func (irq *IrtRunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if irq.ctx.Unique == nil && irq.path != nil {
		irq.Unique(true)
	}
	ctx = setContextOp(ctx, irq.ctx, ent.OpQueryIDs)
	if err = irq.Select(irtrun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (irq *IrtRunQuery) IDsX(ctx context.Context) []string {
	ids, err := irq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (irq *IrtRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, irq.ctx, ent.OpQueryCount)
	if err := irq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, irq, querierCount[*IrtRunQuery](), irq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (irq *IrtRunQuery) CountX(ctx context.Context) int {
	count, err := irq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (irq *IrtRunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, irq.ctx, ent.OpQueryExist)
	switch _, err := irq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (irq *IrtRunQuery) ExistX(ctx context.Context) bool {
	exist, err := irq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IrtRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (irq *IrtRunQuery) Clone() *IrtRunQuery {
	if irq == nil {
		return nil
	}
	return &IrtRunQuery{
		config:     irq.config,
		ctx:        irq.ctx.Clone(),
		order:      append([]irtrun.OrderOption{}, irq.order...),
		inters:     append([]Interceptor{}, irq.inters...),
		predicates: append([]predicate.IrtRun{}, irq.predicates...),
		// clone intermediate query.
		sql:  irq.sql.Clone(),
		path: irq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ModelType irtrun.ModelType `json:"model_type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.IrtRun.Query().
//		GroupBy(irtrun.FieldModelType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (irq *IrtRunQuery) GroupBy(field string, fields ...string) *IrtRunGroupBy {
	irq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IrtRunGroupBy{build: irq}
	grbuild.flds = &irq.ctx.Fields
	grbuild.label = irtrun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ModelType irtrun.ModelType `json:"model_type,omitempty"`
//	}
//
//	client.IrtRun.Query().
//		Select(irtrun.FieldModelType).
//		Scan(ctx, &v)
func (irq *IrtRunQuery) Select(fields ...string) *IrtRunSelect {
	irq.ctx.Fields = append(irq.ctx.Fields, fields...)
	sbuild := &IrtRunSelect{IrtRunQuery: irq}
	sbuild.label = irtrun.Label
	sbuild.flds, sbuild.scan = &irq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IrtRunSelect configured with the given aggregations.
func (irq *IrtRunQuery) Aggregate(fns ...AggregateFunc) *IrtRunSelect {
	return irq.Select().Aggregate(fns...)
}

func (irq *IrtRunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range irq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, irq); err != nil {
				return err
			}
		}
	}
	for _, f := range irq.ctx.Fields {
		if !irtrun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if irq.path != nil {
		prev, err := irq.path(ctx)
		if err != nil {
			return err
		}
		irq.sql = prev
	}
	return nil
}

func (irq *IrtRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IrtRun, error) {
	var (
		nodes = []*IrtRun{}
		_spec = irq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IrtRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IrtRun{config: irq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, irq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (irq *IrtRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := irq.querySpec()
	_spec.Node.Columns = irq.ctx.Fields
	if len(irq.ctx.Fields) > 0 {
		_spec.Unique = irq.ctx.Unique != nil && *irq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, irq.driver, _spec)
}

func (irq *IrtRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(irtrun.Table, irtrun.Columns, sqlgraph.NewFieldSpec(irtrun.FieldID, field.TypeString))
	_spec.From = irq.sql
	if unique := irq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if irq.path != nil {
		_spec.Unique = true
	}
	if fields := irq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irtrun.FieldID)
		for i := range fields {
			if fields[i] != irtrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := irq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := irq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := irq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := irq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (irq *IrtRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(irq.driver.Dialect())
	t1 := builder.Table(irtrun.Table)
	columns := irq.ctx.Fields
	if len(columns) == 0 {
		columns = irtrun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if irq.sql != nil {
		selector = irq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if irq.ctx.Unique != nil && *irq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range irq.predicates {
		p(selector)
	}
	for _, p := range irq.order {
		p(selector)
	}
	if offset := irq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := irq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IrtRunGroupBy is the group-by builder for IrtRun entities.
type IrtRunGroupBy struct {
	selector
	build *IrtRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (irgb *IrtRunGroupBy) Aggregate(fns ...AggregateFunc) *IrtRunGroupBy {
	irgb.fns = append(irgb.fns, fns...)
	return irgb
}

// Scan applies the selector query and scans the result into the given value.
func (irgb *IrtRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, irgb.build.ctx, ent.OpQueryGroupBy)
	if err := irgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrtRunQuery, *IrtRunGroupBy](ctx, irgb.build, irgb, irgb.build.inters, v)
}

func (irgb *IrtRunGroupBy) sqlScan(ctx context.Context, root *IrtRunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(irgb.fns))
	for _, fn := range irgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*irgb.flds)+len(irgb.fns))
		for _, f := range *irgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*irgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := irgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IrtRunSelect is the builder for selecting fields of IrtRun entities.
type IrtRunSelect struct {
	*IrtRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (irs *IrtRunSelect) Aggregate(fns ...AggregateFunc) *IrtRunSelect {
	irs.fns = append(irs.fns, fns...)
	return irs
}

// Scan applies the selector query and scans the result into the given value.
func (irs *IrtRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, irs.ctx, ent.OpQuerySelect)
	if err := irs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrtRunQuery, *IrtRunSelect](ctx, irs.IrtRunQuery, irs, irs.inters, v)
}

func (irs *IrtRunSelect) sqlScan(ctx context.Context, root *IrtRunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(irs.fns))
	for _, fn := range irs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*irs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := irs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
