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
	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/predicate"
)

// IrtAbilityQuery is the builder for querying IrtAbility entities.
type IrtAbilityQuery struct {
	config
	ctx        *QueryContext
	order      []irtability.OrderOption
	inters     []Interceptor
	predicates []predicate.IrtAbility
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IrtAbilityQuery builder.
func (iaq *IrtAbilityQuery) Where(ps ...predicate.IrtAbility) *IrtAbilityQuery {
	iaq.predicates = append(iaq.predicates, ps...)
	return iaq
}

// Limit the number of records to be returned by this query.
func (iaq *IrtAbilityQuery) Limit(limit int) *IrtAbilityQuery {
	iaq.ctx.Limit = &limit
	return iaq
}

// Offset to start from.
func (iaq *IrtAbilityQuery) Offset(offset int) *IrtAbilityQuery {
	iaq.ctx.Offset = &offset
	return iaq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (iaq *IrtAbilityQuery) Unique(unique bool) *IrtAbilityQuery {
	iaq.ctx.Unique = &unique
	return iaq
}

// Order specifies how the records should be ordered.
func (iaq *IrtAbilityQuery) Order(o ...irtability.OrderOption) *IrtAbilityQuery {
	iaq.order = append(iaq.order, o...)
	return iaq
}

// First returns the first IrtAbility entity from the query.
// Returns a *NotFoundError when no IrtAbility was found.
func (iaq *IrtAbilityQuery) First(ctx context.Context) (*IrtAbility, error) {
	nodes, err := iaq.Limit(1).All(setContextOp(ctx, iaq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{irtability.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (iaq *IrtAbilityQuery) FirstX(ctx context.Context) *IrtAbility {
	node, err := iaq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IrtAbility ID from the query.
// Returns a *NotFoundError when no IrtAbility ID was found.
func (iaq *IrtAbilityQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = iaq.Limit(1).IDs(setContextOp(ctx, iaq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{irtability.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (iaq *IrtAbilityQuery) FirstIDX(ctx context.Context) int {
	id, err := iaq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IrtAbility entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IrtAbility entity is found.
// Returns a *NotFoundError when no IrtAbility entities are found.
func (iaq *IrtAbilityQuery) Only(ctx context.Context) (*IrtAbility, error) {
	nodes, err := iaq.Limit(2).All(setContextOp(ctx, iaq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{irtability.Label}
	default:
		return nil, &NotSingularError{irtability.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (iaq *IrtAbilityQuery) OnlyX(ctx context.Context) *IrtAbility {
	node, err := iaq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IrtAbility ID in the query.
// Returns a *NotSingularError when more than one IrtAbility ID is found.
// Returns a *NotFoundError when no entities are found.
func (iaq *IrtAbilityQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = iaq.Limit(2).IDs(setContextOp(ctx, iaq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{irtability.Label}
	default:
		err = &NotSingularError{irtability.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (iaq *IrtAbilityQuery) OnlyIDX(ctx context.Context) int {
	id, err := iaq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IrtAbilities.
func (iaq *IrtAbilityQuery) All(ctx context.Context) ([]*IrtAbility, error) {
	ctx = setContextOp(ctx, iaq.ctx, ent.OpQueryAll)
	if err := iaq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IrtAbility, *IrtAbilityQuery]()
	return withInterceptors[[]*IrtAbility](ctx, iaq, qr, iaq.inters)
}

// AllX is like All, but panics if an error occurs.
func (iaq *IrtAbilityQuery) AllX(ctx context.Context) []*IrtAbility {
	nodes, err := iaq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IrtAbility IDs.
func (iaq *IrtAbilityQuery) IDs(ctx context.Context) (ids []int, err error) {
	if iaq.ctx.Unique == nil && iaq.path != nil {
		iaq.Unique(true)
	}
	ctx = setContextOp(ctx, iaq.ctx, ent.OpQueryIDs)
	if err = iaq.Select(irtability.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (iaq *IrtAbilityQuery) IDsX(ctx context.Context) []int {
	ids, err := iaq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (iaq *IrtAbilityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, iaq.ctx, ent.OpQueryCount)
	if err := iaq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, iaq, querierCount[*IrtAbilityQuery](), iaq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (iaq *IrtAbilityQuery) CountX(ctx context.Context) int {
	count, err := iaq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (iaq *IrtAbilityQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, iaq.ctx, ent.OpQueryExist)
	switch _, err := iaq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (iaq *IrtAbilityQuery) ExistX(ctx context.Context) bool {
	exist, err := iaq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IrtAbilityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (iaq *IrtAbilityQuery) Clone() *IrtAbilityQuery {
	if iaq == nil {
		return nil
	}
	return &IrtAbilityQuery{
		config:     iaq.config,
		ctx:        iaq.ctx.Clone(),
		order:      append([]irtability.OrderOption{}, iaq.order...),
		inters:     append([]Interceptor{}, iaq.inters...),
		predicates: append([]predicate.IrtAbility{}, iaq.predicates...),
		// clone intermediate query.
		sql:  iaq.sql.Clone(),
		path: iaq.path,
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
//	client.IrtAbility.Query().
//		GroupBy(irtability.FieldRunID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (iaq *IrtAbilityQuery) GroupBy(field string, fields ...string) *IrtAbilityGroupBy {
	iaq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IrtAbilityGroupBy{build: iaq}
	grbuild.flds = &iaq.ctx.Fields
	grbuild.label = irtability.Label
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
//	client.IrtAbility.Query().
//		Select(irtability.FieldRunID).
//		Scan(ctx, &v)
func (iaq *IrtAbilityQuery) Select(fields ...string) *IrtAbilitySelect {
	iaq.ctx.Fields = append(iaq.ctx.Fields, fields...)
	sbuild := &IrtAbilitySelect{IrtAbilityQuery: iaq}
	sbuild.label = irtability.Label
	sbuild.flds, sbuild.scan = &iaq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IrtAbilitySelect configured with the given aggregations.
func (iaq *IrtAbilityQuery) Aggregate(fns ...AggregateFunc) *IrtAbilitySelect {
	return iaq.Select().Aggregate(fns...)
}

func (iaq *IrtAbilityQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range iaq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, iaq); err != nil {
				return err
			}
		}
	}
	for _, f := range iaq.ctx.Fields {
		if !irtability.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if iaq.path != nil {
		prev, err := iaq.path(ctx)
		if err != nil {
			return err
		}
		iaq.sql = prev
	}
	return nil
}

func (iaq *IrtAbilityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IrtAbility, error) {
	var (
		nodes = []*IrtAbility{}
		_spec = iaq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IrtAbility).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IrtAbility{config: iaq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, iaq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (iaq *IrtAbilityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := iaq.querySpec()
	_spec.Node.Columns = iaq.ctx.Fields
	if len(iaq.ctx.Fields) > 0 {
		_spec.Unique = iaq.ctx.Unique != nil && *iaq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, iaq.driver, _spec)
}

func (iaq *IrtAbilityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(irtability.Table, irtability.Columns, sqlgraph.NewFieldSpec(irtability.FieldID, field.TypeInt))
	_spec.From = iaq.sql
	if unique := iaq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if iaq.path != nil {
		_spec.Unique = true
	}
	if fields := iaq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, irtability.FieldID)
		for i := range fields {
			if fields[i] != irtability.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := iaq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := iaq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := iaq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := iaq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (iaq *IrtAbilityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(iaq.driver.Dialect())
	t1 := builder.Table(irtability.Table)
	columns := iaq.ctx.Fields
	if len(columns) == 0 {
		columns = irtability.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if iaq.sql != nil {
		selector = iaq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if iaq.ctx.Unique != nil && *iaq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range iaq.predicates {
		p(selector)
	}
	for _, p := range iaq.order {
		p(selector)
	}
	if offset := iaq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := iaq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IrtAbilityGroupBy is the group-by builder for IrtAbility entities.
type IrtAbilityGroupBy struct {
	selector
	build *IrtAbilityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (iagb *IrtAbilityGroupBy) Aggregate(fns ...AggregateFunc) *IrtAbilityGroupBy {
	iagb.fns = append(iagb.fns, fns...)
	return iagb
}

// Scan applies the selector query and scans the result into the given value.
func (iagb *IrtAbilityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, iagb.build.ctx, ent.OpQueryGroupBy)
	if err := iagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrtAbilityQuery, *IrtAbilityGroupBy](ctx, iagb.build, iagb, iagb.build.inters, v)
}

func (iagb *IrtAbilityGroupBy) sqlScan(ctx context.Context, root *IrtAbilityQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(iagb.fns))
	for _, fn := range iagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*iagb.flds)+len(iagb.fns))
		for _, f := range *iagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*iagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := iagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IrtAbilitySelect is the builder for selecting fields of IrtAbility entities.
type IrtAbilitySelect struct {
	*IrtAbilityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ias *IrtAbilitySelect) Aggregate(fns ...AggregateFunc) *IrtAbilitySelect {
	ias.fns = append(ias.fns, fns...)
	return ias
}

// Scan applies the selector query and scans the result into the given value.
func (ias *IrtAbilitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ias.ctx, ent.OpQuerySelect)
	if err := ias.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IrtAbilityQuery, *IrtAbilitySelect](ctx, ias.IrtAbilityQuery, ias, ias.inters, v)
}

func (ias *IrtAbilitySelect) sqlScan(ctx context.Context, root *IrtAbilityQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ias.fns))
	for _, fn := range ias.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ias.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ias.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
