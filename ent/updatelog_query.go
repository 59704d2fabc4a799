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
	"github.com/adaptly/calibrant/ent/predicate"
	"github.com/adaptly/calibrant/ent/updatelog"
)

// UpdateLogQuery is the builder for querying UpdateLog entities.
type UpdateLogQuery struct {
	config
	ctx        *QueryContext
	order      []updatelog.OrderOption
	inters     []Interceptor
	predicates []predicate.UpdateLog
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UpdateLogQuery builder.
func (ulq *UpdateLogQuery) Where(ps ...predicate.UpdateLog) *UpdateLogQuery {
	ulq.predicates = append(ulq.predicates, ps...)
	return ulq
}

// Limit the number of records to be returned by this query.
func (ulq *UpdateLogQuery) Limit(limit int) *UpdateLogQuery {
	ulq.ctx.Limit = &limit
	return ulq
}

// Offset to start from.
func (ulq *UpdateLogQuery) Offset(offset int) *UpdateLogQuery {
	ulq.ctx.Offset = &offset
	return ulq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ulq *UpdateLogQuery) Unique(unique bool) *UpdateLogQuery {
	ulq.ctx.Unique = &unique
	return ulq
}

// Order specifies how the records should be ordered.
func (ulq *UpdateLogQuery) Order(o ...updatelog.OrderOption) *UpdateLogQuery {
	ulq.order = append(ulq.order, o...)
	return ulq
}

// First returns the first UpdateLog entity from the query.
// Returns a *NotFoundError when no UpdateLog was found.
func (ulq *UpdateLogQuery) First(ctx context.Context) (*UpdateLog, error) {
	nodes, err := ulq.Limit(1).All(setContextOp(ctx, ulq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{updatelog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ulq *UpdateLogQuery) FirstX(ctx context.Context) *UpdateLog {
	node, err := ulq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UpdateLog ID from the query.
// Returns a *NotFoundError when no UpdateLog ID was found.
func (ulq *UpdateLogQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ulq.Limit(1).IDs(setContextOp(ctx, ulq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{updatelog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ulq *UpdateLogQuery) FirstIDX(ctx context.Context) int {
	id, err := ulq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UpdateLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UpdateLog entity is found.
// Returns a *NotFoundError when no UpdateLog entities are found.
func (ulq *UpdateLogQuery) Only(ctx context.Context) (*UpdateLog, error) {
	nodes, err := ulq.Limit(2).All(setContextOp(ctx, ulq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{updatelog.Label}
	default:
		return nil, &NotSingularError{updatelog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ulq *UpdateLogQuery) OnlyX(ctx context.Context) *UpdateLog {
	node, err := ulq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UpdateLog ID in the query.
// Returns a *NotSingularError when more than one UpdateLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (ulq *UpdateLogQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ulq.Limit(2).IDs(setContextOp(ctx, ulq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{updatelog.Label}
	default:
		err = &NotSingularError{updatelog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ulq *UpdateLogQuery) OnlyIDX(ctx context.Context) int {
	id, err := ulq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UpdateLogs.
func (ulq *UpdateLogQuery) All(ctx context.Context) ([]*UpdateLog, error) {
	ctx = setContextOp(ctx, ulq.ctx, ent.OpQueryAll)
	if err := ulq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UpdateLog, *UpdateLogQuery]()
	return withInterceptors[[]*UpdateLog](ctx, ulq, qr, ulq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ulq *UpdateLogQuery) AllX(ctx context.Context) []*UpdateLog {
	nodes, err := ulq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UpdateLog IDs.
func (ulq *UpdateLogQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ulq.ctx.Unique == nil && ulq.path != nil {
		ulq.Unique(true)
	}
	ctx = setContextOp(ctx, ulq.ctx, ent.OpQueryIDs)
	if err = ulq.Select(updatelog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ulq *UpdateLogQuery) IDsX(ctx context.Context) []int {
	ids, err := ulq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ulq *UpdateLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ulq.ctx, ent.OpQueryCount)
	if err := ulq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ulq, querierCount[*UpdateLogQuery](), ulq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ulq *UpdateLogQuery) CountX(ctx context.Context) int {
	count, err := ulq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ulq *UpdateLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ulq.ctx, ent.OpQueryExist)
	switch _, err := ulq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ulq *UpdateLogQuery) ExistX(ctx context.Context) bool {
	exist, err := ulq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UpdateLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ulq *UpdateLogQuery) Clone() *UpdateLogQuery {
	if ulq == nil {
		return nil
	}
	return &UpdateLogQuery{
		config:     ulq.config,
		ctx:        ulq.ctx.Clone(),
		order:      append([]updatelog.OrderOption{}, ulq.order...),
		inters:     append([]Interceptor{}, ulq.inters...),
		predicates: append([]predicate.UpdateLog{}, ulq.predicates...),
		// clone intermediate query.
		sql:  ulq.sql.Clone(),
		path: ulq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AttemptID string `json:"attempt_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UpdateLog.Query().
//		GroupBy(updatelog.FieldAttemptID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ulq *UpdateLogQuery) GroupBy(field string, fields ...string) *UpdateLogGroupBy {
	ulq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UpdateLogGroupBy{build: ulq}
	grbuild.flds = &ulq.ctx.Fields
	grbuild.label = updatelog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AttemptID string `json:"attempt_id,omitempty"`
//	}
//
//	client.UpdateLog.Query().
//		Select(updatelog.FieldAttemptID).
//		Scan(ctx, &v)
func (ulq *UpdateLogQuery) Select(fields ...string) *UpdateLogSelect {
	ulq.ctx.Fields = append(ulq.ctx.Fields, fields...)
	sbuild := &UpdateLogSelect{UpdateLogQuery: ulq}
	sbuild.label = updatelog.Label
	sbuild.flds, sbuild.scan = &ulq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UpdateLogSelect configured with the given aggregations.
func (ulq *UpdateLogQuery) Aggregate(fns ...AggregateFunc) *UpdateLogSelect {
	return ulq.Select().Aggregate(fns...)
}

func (ulq *UpdateLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ulq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ulq); err != nil {
				return err
			}
		}
	}
	for _, f := range ulq.ctx.Fields {
		if !updatelog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ulq.path != nil {
		prev, err := ulq.path(ctx)
		if err != nil {
			return err
		}
		ulq.sql = prev
	}
	return nil
}

func (ulq *UpdateLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UpdateLog, error) {
	var (
		nodes = []*UpdateLog{}
		_spec = ulq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UpdateLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UpdateLog{config: ulq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ulq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ulq *UpdateLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ulq.querySpec()
	_spec.Node.Columns = ulq.ctx.Fields
	if len(ulq.ctx.Fields) > 0 {
		_spec.Unique = ulq.ctx.Unique != nil && *ulq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ulq.driver, _spec)
}

func (ulq *UpdateLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(updatelog.Table, updatelog.Columns, sqlgraph.NewFieldSpec(updatelog.FieldID, field.TypeInt))
	_spec.From = ulq.sql
	if unique := ulq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ulq.path != nil {
		_spec.Unique = true
	}
	if fields := ulq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, updatelog.FieldID)
		for i := range fields {
			if fields[i] != updatelog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ulq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ulq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ulq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ulq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ulq *UpdateLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ulq.driver.Dialect())
	t1 := builder.Table(updatelog.Table)
	columns := ulq.ctx.Fields
	if len(columns) == 0 {
		columns = updatelog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ulq.sql != nil {
		selector = ulq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ulq.ctx.Unique != nil && *ulq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ulq.predicates {
		p(selector)
	}
	for _, p := range ulq.order {
		p(selector)
	}
	if offset := ulq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ulq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UpdateLogGroupBy is the group-by builder for UpdateLog entities.
type UpdateLogGroupBy struct {
	selector
	build *UpdateLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ulgb *UpdateLogGroupBy) Aggregate(fns ...AggregateFunc) *UpdateLogGroupBy {
	ulgb.fns = append(ulgb.fns, fns...)
	return ulgb
}

// Scan applies the selector query and scans the result into the given value.
func (ulgb *UpdateLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ulgb.build.ctx, ent.OpQueryGroupBy)
	if err := ulgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpdateLogQuery, *UpdateLogGroupBy](ctx, ulgb.build, ulgb, ulgb.build.inters, v)
}

func (ulgb *UpdateLogGroupBy) sqlScan(ctx context.Context, root *UpdateLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ulgb.fns))
	for _, fn := range ulgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ulgb.flds)+len(ulgb.fns))
		for _, f := range *ulgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ulgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ulgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UpdateLogSelect is the builder for selecting fields of UpdateLog entities.
type UpdateLogSelect struct {
	*UpdateLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uls *UpdateLogSelect) Aggregate(fns ...AggregateFunc) *UpdateLogSelect {
	uls.fns = append(uls.fns, fns...)
	return uls
}

// Scan applies the selector query and scans the result into the given value.
func (uls *UpdateLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uls.ctx, ent.OpQuerySelect)
	if err := uls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpdateLogQuery, *UpdateLogSelect](ctx, uls.UpdateLogQuery, uls, uls.inters, v)
}

func (uls *UpdateLogSelect) sqlScan(ctx context.Context, root *UpdateLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uls.fns))
	for _, fn := range uls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
