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
	"github.com/adaptly/calibrant/ent/questionrating"
)

// QuestionRatingQuery is the builder for querying QuestionRating entities.
type QuestionRatingQuery struct {
	config
	ctx        *QueryContext
	order      []questionrating.OrderOption
	inters     []Interceptor
	predicates []predicate.QuestionRating
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuestionRatingQuery builder.
func (qrq *QuestionRatingQuery) Where(ps ...predicate.QuestionRating) *QuestionRatingQuery {
	qrq.predicates = append(qrq.predicates, ps...)
	return qrq
}

// Limit the number of records to be returned by this query.
func (qrq *QuestionRatingQuery) Limit(limit int) *QuestionRatingQuery {
	qrq.ctx.Limit = &limit
	return qrq
}

// Offset to start from.
func (qrq *QuestionRatingQuery) Offset(offset int) *QuestionRatingQuery {
	qrq.ctx.Offset = &offset
	return qrq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (qrq *QuestionRatingQuery) Unique(unique bool) *QuestionRatingQuery {
	qrq.ctx.Unique = &unique
	return qrq
}

// Order specifies how the records should be ordered.
func (qrq *QuestionRatingQuery) Order(o ...questionrating.OrderOption) *QuestionRatingQuery {
	qrq.order = append(qrq.order, o...)
	return qrq
}

// First returns the first QuestionRating entity from the query.
// Returns a *NotFoundError when no QuestionRating was found.
func (qrq *QuestionRatingQuery) First(ctx context.Context) (*QuestionRating, error) {
	nodes, err := qrq.Limit(1).All(setContextOp(ctx, qrq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{questionrating.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (qrq *QuestionRatingQuery) FirstX(ctx context.Context) *QuestionRating {
	node, err := qrq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuestionRating ID from the query.
// Returns a *NotFoundError when no QuestionRating ID was found.
func (qrq *QuestionRatingQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qrq.Limit(1).IDs(setContextOp(ctx, qrq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{questionrating.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (qrq *QuestionRatingQuery) FirstIDX(ctx context.Context) int {
	id, err := qrq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuestionRating entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuestionRating entity is found.
// Returns a *NotFoundError when no QuestionRating entities are found.
func (qrq *QuestionRatingQuery) Only(ctx context.Context) (*QuestionRating, error) {
	nodes, err := qrq.Limit(2).All(setContextOp(ctx, qrq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{questionrating.Label}
	default:
		return nil, &NotSingularError{questionrating.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (qrq *QuestionRatingQuery) OnlyX(ctx context.Context) *QuestionRating {
	node, err := qrq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuestionRating ID in the query.
// Returns a *NotSingularError when more than one QuestionRating ID is found.
// Returns a *NotFoundError when no entities are found.
func (qrq *QuestionRatingQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qrq.Limit(2).IDs(setContextOp(ctx, qrq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{questionrating.Label}
	default:
		err = &NotSingularError{questionrating.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (qrq *QuestionRatingQuery) OnlyIDX(ctx context.Context) int {
	id, err := qrq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuestionRatings.
func (qrq *QuestionRatingQuery) All(ctx context.Context) ([]*QuestionRating, error) {
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryAll)
	if err := qrq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuestionRating, *QuestionRatingQuery]()
	return withInterceptors[[]*QuestionRating](ctx, qrq, qr, qrq.inters)
}

// AllX is like All, but panics if an error occurs.
func (qrq *QuestionRatingQuery) AllX(ctx context.Context) []*QuestionRating {
	nodes, err := qrq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuestionRating IDs.
func (qrq *QuestionRatingQuery) IDs(ctx context.Context) (ids []int, err error) {
	if qrq.ctx.Unique == nil && qrq.path != nil {
		qrq.Unique(true)
	}
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryIDs)
	if err = qrq.Select(questionrating.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (qrq *QuestionRatingQuery) IDsX(ctx context.Context) []int {
	ids, err := qrq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (qrq *QuestionRatingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryCount)
	if err := qrq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, qrq, querierCount[*QuestionRatingQuery](), qrq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (qrq *QuestionRatingQuery) CountX(ctx context.Context) int {
	count, err := qrq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (qrq *QuestionRatingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryExist)
	switch _, err := qrq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (qrq *QuestionRatingQuery) ExistX(ctx context.Context) bool {
	exist, err := qrq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuestionRatingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (qrq *QuestionRatingQuery) Clone() *QuestionRatingQuery {
	if qrq == nil {
		return nil
	}
	return &QuestionRatingQuery{
		config:     qrq.config,
		ctx:        qrq.ctx.Clone(),
		order:      append([]questionrating.OrderOption{}, qrq.order...),
		inters:     append([]Interceptor{}, qrq.inters...),
		predicates: append([]predicate.QuestionRating{}, qrq.predicates...),
		// clone intermediate query.
		sql:  qrq.sql.Clone(),
		path: qrq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		EntityID string `json:"entity_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuestionRating.Query().
//		GroupBy(questionrating.FieldEntityID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (qrq *QuestionRatingQuery) GroupBy(field string, fields ...string) *QuestionRatingGroupBy {
	qrq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuestionRatingGroupBy{build: qrq}
	grbuild.flds = &qrq.ctx.Fields
	grbuild.label = questionrating.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		EntityID string `json:"entity_id,omitempty"`
//	}
//
//	client.QuestionRating.Query().
//		Select(questionrating.FieldEntityID).
//		Scan(ctx, &v)
func (qrq *QuestionRatingQuery) Select(fields ...string) *QuestionRatingSelect {
	qrq.ctx.Fields = append(qrq.ctx.Fields, fields...)
	sbuild := &QuestionRatingSelect{QuestionRatingQuery: qrq}
	sbuild.label = questionrating.Label
	sbuild.flds, sbuild.scan = &qrq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuestionRatingSelect configured with the given aggregations.
func (qrq *QuestionRatingQuery) Aggregate(fns ...AggregateFunc) *QuestionRatingSelect {
	return qrq.Select().Aggregate(fns...)
}

func (qrq *QuestionRatingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range qrq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, qrq); err != nil {
				return err
			}
		}
	}
	for _, f := range qrq.ctx.Fields {
		if !questionrating.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if qrq.path != nil {
		prev, err := qrq.path(ctx)
		if err != nil {
			return err
		}
		qrq.sql = prev
	}
	return nil
}

func (qrq *QuestionRatingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuestionRating, error) {
	var (
		nodes = []*QuestionRating{}
		_spec = qrq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuestionRating).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuestionRating{config: qrq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, qrq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (qrq *QuestionRatingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := qrq.querySpec()
	_spec.Node.Columns = qrq.ctx.Fields
	if len(qrq.ctx.Fields) > 0 {
		_spec.Unique = qrq.ctx.Unique != nil && *qrq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, qrq.driver, _spec)
}

func (qrq *QuestionRatingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(questionrating.Table, questionrating.Columns, sqlgraph.NewFieldSpec(questionrating.FieldID, field.TypeInt))
	_spec.From = qrq.sql
	if unique := qrq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if qrq.path != nil {
		_spec.Unique = true
	}
	if fields := qrq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionrating.FieldID)
		for i := range fields {
			if fields[i] != questionrating.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := qrq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := qrq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := qrq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := qrq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (qrq *QuestionRatingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(qrq.driver.Dialect())
	t1 := builder.Table(questionrating.Table)
	columns := qrq.ctx.Fields
	if len(columns) == 0 {
		columns = questionrating.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if qrq.sql != nil {
		selector = qrq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if qrq.ctx.Unique != nil && *qrq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range qrq.predicates {
		p(selector)
	}
	for _, p := range qrq.order {
		p(selector)
	}
	if offset := qrq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := qrq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuestionRatingGroupBy is the group-by builder for QuestionRating entities.
type QuestionRatingGroupBy struct {
	selector
	build *QuestionRatingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (qrgb *QuestionRatingGroupBy) Aggregate(fns ...AggregateFunc) *QuestionRatingGroupBy {
	qrgb.fns = append(qrgb.fns, fns...)
	return qrgb
}

// Scan applies the selector query and scans the result into the given value.
func (qrgb *QuestionRatingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qrgb.build.ctx, ent.OpQueryGroupBy)
	if err := qrgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionRatingQuery, *QuestionRatingGroupBy](ctx, qrgb.build, qrgb, qrgb.build.inters, v)
}

func (qrgb *QuestionRatingGroupBy) sqlScan(ctx context.Context, root *QuestionRatingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(qrgb.fns))
	for _, fn := range qrgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*qrgb.flds)+len(qrgb.fns))
		for _, f := range *qrgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*qrgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qrgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuestionRatingSelect is the builder for selecting fields of QuestionRating entities.
type QuestionRatingSelect struct {
	*QuestionRatingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (qrs *QuestionRatingSelect) Aggregate(fns ...AggregateFunc) *QuestionRatingSelect {
	qrs.fns = append(qrs.fns, fns...)
	return qrs
}

// Scan applies the selector query and scans the result into the given value.
func (qrs *QuestionRatingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qrs.ctx, ent.OpQuerySelect)
	if err := qrs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionRatingQuery, *QuestionRatingSelect](ctx, qrs.QuestionRatingQuery, qrs, qrs.inters, v)
}

func (qrs *QuestionRatingSelect) sqlScan(ctx context.Context, root *QuestionRatingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(qrs.fns))
	for _, fn := range qrs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*qrs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qrs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
