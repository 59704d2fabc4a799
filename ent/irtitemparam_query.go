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
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtItemParamQuery is the builder for querying IrtItemParam entities.
type IrtItemParamQuery struct {
	config
	ctx        *QueryContext
	order      []irtitemparam.OrderOption
	inters     []Interceptor
	predicates []predicate.IrtItemParam
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IrtItemParamQuery builder.
func (iipq *IrtItemParamQuery) Where(ps ...predicate.IrtItemParam) *IrtItemParamQuery {
	iipq.predicates = append(iipq.predicates, ps...)
	return iipq
}

// Limit the number of records to be returned by this query.
func (iipq *IrtItemParamQuery) Limit(limit int) *IrtItemParamQuery {
	iipq.ctx.Limit = &limit
	return iipq
}

// Offset to start from.
func (iipq *IrtItemParamQuery) Offset(offset int) *IrtItemParamQuery {
	iipq.ctx.Offset = &offset
	return iipq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (iipq *IrtItemParamQuery) Unique(unique bool) *IrtItemParamQuery {
	iipq.ctx.Unique = &unique
	return iipq
}

// Order specifies how the records should be ordered.
func (iipq *IrtItemParamQuery) Order(o ...irtitemparam.OrderOption) *IrtItemParamQuery {
	iipq.order = append(iipq.order, o...)
	return iipq
}

// First returns the first IrtItemParam entity from the query.
// Returns a *NotFoundError when no IrtItemParam was found.
func (iipq *IrtItemParamQuery) First(ctx context.Context) (*IrtItemParam, error) {
	nodes, err := iipq.Limit(1).All(setContextOp(ctx, iipq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{irtitemparam.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (iipq *IrtItemParamQuery) FirstX(ctx context.Context) *IrtItemParam {
	node, err := iipq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IrtItemParam ID from the query.
// Returns a *NotFoundError when no IrtItemParam ID was found.
func (iipq *IrtItemParamQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = iipq.Limit(1).IDs(setContextOp(ctx, iipq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{irtitemparam.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (iipq *IrtItemParamQuery) FirstIDX(ctx context.Context) int {
	id, err := iipq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IrtItemParam entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IrtItemParam entity is found.
// Returns a *NotFoundError when no IrtItemParam entities are found.
func (iipq *IrtItemParamQuery) Only(ctx context.Context) (*IrtItemParam, error) {
	nodes, err := iipq.Limit(2).All(setContextOp(ctx, iipq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{irtitemparam.Label}
	default:
		return nil, &NotSingularError{irtitemparam.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (iipq *IrtItemParamQuery) OnlyX(ctx context.Context) *IrtItemParam {
	node, err := iipq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IrtItemParam ID in the query.
// Returns a *NotSingularError when more than one IrtItemParam ID is found.
// Returns a *NotFoundError when no entities are found.
func (iipq *IrtItemParamQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = iipq.Limit(2).IDs(setContextOp(ctx, iipq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{irtitemparam.Label}
	default:
		err = &NotSingularError{irtitemparam.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (iipq *IrtItemParamQuery) OnlyIDX(ctx context.Context) int {
	id, err := iipq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IrtItemParams.
func (iipq *IrtItemParamQuery) All(ctx context.Context) ([]*IrtItemParam, error) {
	ctx = setContextOp(ctx, iipq.ctx, ent.OpQueryAll)
	if err := iipq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IrtItemParam, *IrtItemParamQuery]()
	return withInterceptors[[]*IrtItemParam](ctx, iipq, qr, iipq.inters)
}

// AllX is like All, but panics if an error occurs.
func (iipq *IrtItemParamQuery) AllX(ctx context.Context) []*IrtItemParam {
	nodes, err := iipq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IrtItemParam IDs.
func (iipq *IrtItemParamQuery) IDs(ctx context.Context) (ids []int, err error) {
	if iipq.ctx.Unique == nil && iipq.path != nil {
		iipq.Unique(true)
	}
	ctx = setContextOp(ctx, iipq.ctx, ent.OpQueryIDs)
	if err = iipq.Select(irtitemparam.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (iipq *IrtItemParamQuery) IDsX(ctx context.Context) []int {
	ids, err := iipq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (iipq *IrtItemParamQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, iipq.ctx, ent.OpQueryCount)
	if err := iipq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, iipq, querierCount[*IrtItemParamQuery](), iipq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (iipq *IrtItemParamQuery) CountX(ctx context.Context) int {
	count, err := iipq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (iipq *IrtItemParamQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, iipq.ctx, ent.OpQueryExist)
	switch _, err := iipq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (iipq *IrtItemParamQuery) ExistX(ctx context.Context) bool {
	exist, err := iipq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IrtItemParamQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (iipq *IrtItemParamQuery) Clone() *IrtItemParamQuery {
	if iipq == nil {
		return nil
	}
	return &IrtItemParamQuery{
		config:     iipq.config,
		ctx:        iipq.ctx.Clone(),
		order:      append([]irtitemparam.OrderOption{}, iipq.order...),
		inters:     append([]Interceptor{}, iipq.inters...),
		predicates: append([]predicate.IrtItemParam{}, iipq.predicates...),
		// clone intermediate query.
		sql:  iipq.sql.Clone(),
		path: iipq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RunID string `json:"run_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.IrtItemParam.Query().
//		GroupBy(irtitemparam.FieldRunID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (iipq *IrtItemParamQuery) GroupBy(field string, fields ...string) *IrtItemParamGroupBy {
	iipq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IrtItemParamGroupBy{build: iipq}
	grbuild.flds = &iipq.ctx.Fields
	grbuild.label = irtitemparam.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RunID string `json:"run_id,omitempty"`
//	}
//
//	client.IrtItemParam.Query().
//		Select(irtitemparam.FieldRunID).
//		Scan(ctx, &v)
func (iipq *IrtItemParamQuery) Select(fields ...string) *IrtItemParamSelect {
	iipq.ctx.Fields = append(iipq.ctx.Fields, fields...)
	sbuild := &IrtItemParamSelect{IrtItemParamQuery: iipq}
	sbuild.label = irtitemparam.Label
	sbuild.flds, sbuild.scan = &iipq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IrtItemParamSelect configured with the given aggregations.
func (iipq *IrtItemParamQuery) Aggregate(fns ...AggregateFunc) *IrtItemParamSelect {
	return iipq.Select().Aggregate(fns...)
}

func (iipq *IrtItemParamQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range iipq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, iipq); err != nil {
				return err
			}
		}
	}
	for _, f := range iipq.ctx.Fields {
		if !irtitemparam.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if iipq.path != nil {
		prev, err := iipq.path(ctx)
		if err != nil {
			return err
		}
		iipq.sql = prev
	}
	return nil
}

func (iipq *IrtItemParamQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IrtItemParam, error) {
	var (
		nodes = []*IrtItemParam{}
		_spec = iipq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IrtItemParam).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IrtItemParam{config: iipq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, iipq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (iipq *IrtItemParamQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := iipq.querySpec()
	_spec.Node.Columns = iipq.ctx.Fields
	if len(iipq.ctx.Fields) > 0 {
		_spec.Unique = iipq.ctx.Unique != nil && *iipq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, iipq.driver, _spec)
}

func (iipq *IrtItemParamQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(irtitemparam.Table, irtitemparam.Columns, sqlgraph.NewFieldSpec(irtitemparam.FieldID, field.TypeInt))
	_spec.From = iipq.sql
	if unique := iipq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if iipq.path != nil {
		_spec.Unique = true
	}
	if fields := iipq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irtitemparam.FieldID)
		for i := range fields {
			if fields[i] != irtitemparam.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := iipq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := iipq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := iipq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := iipq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (iipq *IrtItemParamQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(iipq.driver.Dialect())
	t1 := builder.Table(irtitemparam.Table)
	columns := iipq.ctx.Fields
	if len(columns) == 0 {
		columns = irtitemparam.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if iipq.sql != nil {
		selector = iipq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if iipq.ctx.Unique != nil && *iipq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range iipq.predicates {
		p(selector)
	}
	for _, p := range iipq.order {
		p(selector)
	}
	if offset := iipq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := iipq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IrtItemParamGroupBy is the group-by builder for IrtItemParam entities.
type IrtItemParamGroupBy struct {
	selector
	build *IrtItemParamQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (iipgb *IrtItemParamGroupBy) Aggregate(fns ...AggregateFunc) *IrtItemParamGroupBy {
	iipgb.fns = append(iipgb.fns, fns...)
	return iipgb
}

// Scan applies the selector query and scans the result into the given value.
func (iipgb *IrtItemParamGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, iipgb.build.ctx, ent.OpQueryGroupBy)
	if err := iipgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrtItemParamQuery, *IrtItemParamGroupBy](ctx, iipgb.build, iipgb, iipgb.build.inters, v)
}

func (iipgb *IrtItemParamGroupBy) sqlScan(ctx context.Context, root *IrtItemParamQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(iipgb.fns))
	for _, fn := range iipgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*iipgb.flds)+len(iipgb.fns))
		for _, f := range *iipgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*iipgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := iipgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IrtItemParamSelect is the builder for selecting fields of IrtItemParam entities.
type IrtItemParamSelect struct {
	*IrtItemParamQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (iips *IrtItemParamSelect) Aggregate(fns ...AggregateFunc) *IrtItemParamSelect {
	iips.fns = append(iips.fns, fns...)
	return iips
}

// Scan applies the selector query and scans the result into the given value.
func (iips *IrtItemParamSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, iips.ctx, ent.OpQuerySelect)
	if err := iips.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrtItemParamQuery, *IrtItemParamSelect](ctx, iips.IrtItemParamQuery, iips, iips.inters, v)
}

func (iips *IrtItemParamSelect) sqlScan(ctx context.Context, root *IrtItemParamQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(iips.fns))
	for _, fn := range iips.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*iips.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := iips.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
