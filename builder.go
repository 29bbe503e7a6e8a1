package dynsql

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/types"
)

// Builder provides a fluent API for assembling statement models.
// The first error is kept and returned by Build; later calls are no-ops.
type Builder struct {
	where    types.Condition
	limit    *int64
	offset   *int64
	err      error
	op       types.Operation
	table    types.Table
	columns  []types.Column
	joins    []types.Join
	groupBy  []types.Column
	orderBy  []types.Column
	mappings []types.UpdateMapping
	rows     [][]any
	distinct bool
	count    bool
}

// GetError returns the first error recorded by the builder.
func (b *Builder) GetError() error {
	return b.err
}

// Select creates a new SELECT builder.
func Select(t types.Table) *Builder {
	return &Builder{op: types.OpSelect, table: t}
}

// Count creates a SELECT count(*) builder.
func Count(t types.Table) *Builder {
	return &Builder{op: types.OpSelect, table: t, count: true}
}

// InsertInto creates a new INSERT builder.
func InsertInto(t types.Table) *Builder {
	return &Builder{op: types.OpInsert, table: t}
}

// Update creates a new UPDATE builder.
func Update(t types.Table) *Builder {
	return &Builder{op: types.OpUpdate, table: t}
}

// DeleteFrom creates a new DELETE builder.
func DeleteFrom(t types.Table) *Builder {
	return &Builder{op: types.OpDelete, table: t}
}

func (b *Builder) require(method string, ops ...types.Operation) bool {
	if b.err != nil {
		return false
	}
	for _, op := range ops {
		if b.op == op {
			return true
		}
	}
	b.err = &types.ConfigurationError{
		Entity: string(b.op),
		Field:  method,
		Reason: fmt.Sprintf("can only be used with %v", ops),
	}
	return false
}

// Columns sets the projected columns of a SELECT or the target columns of an INSERT.
func (b *Builder) Columns(cols ...types.Column) *Builder {
	if !b.require("Columns()", types.OpSelect, types.OpInsert) {
		return b
	}
	b.columns = append(b.columns, cols...)
	return b
}

// Distinct makes a SELECT return distinct rows.
func (b *Builder) Distinct() *Builder {
	if b.require("Distinct()", types.OpSelect) {
		b.distinct = true
	}
	return b
}

// Join adds an inner join.
func (b *Builder) Join(table types.Table, on types.Condition) *Builder {
	return b.addJoin(types.InnerJoin, table, on)
}

// LeftJoin adds a left join.
func (b *Builder) LeftJoin(table types.Table, on types.Condition) *Builder {
	return b.addJoin(types.LeftJoin, table, on)
}

// RightJoin adds a right join.
func (b *Builder) RightJoin(table types.Table, on types.Condition) *Builder {
	return b.addJoin(types.RightJoin, table, on)
}

// FullJoin adds a full outer join.
func (b *Builder) FullJoin(table types.Table, on types.Condition) *Builder {
	return b.addJoin(types.FullJoin, table, on)
}

func (b *Builder) addJoin(joinType types.JoinType, table types.Table, on types.Condition) *Builder {
	if !b.require("Join()", types.OpSelect) {
		return b
	}
	if on == nil {
		b.err = &types.ConfigurationError{Entity: "join", Field: table.Name, Reason: "an on condition is required"}
		return b
	}
	b.joins = append(b.joins, types.Join{Type: joinType, Table: table, On: on})
	return b
}

// Where sets the condition. Repeated calls are combined with AND.
func (b *Builder) Where(cond types.Condition) *Builder {
	if !b.require("Where()", types.OpSelect, types.OpUpdate, types.OpDelete) {
		return b
	}
	if cond == nil {
		b.err = types.NewInvalidConditionError("where", "", "nil condition")
		return b
	}
	if b.where == nil {
		b.where = cond
		return b
	}
	and, err := types.NewAnd(b.where, cond)
	if err != nil {
		b.err = err
		return b
	}
	b.where = and
	return b
}

// OrWhere combines cond with the existing condition using OR.
func (b *Builder) OrWhere(cond types.Condition) *Builder {
	if !b.require("OrWhere()", types.OpSelect, types.OpUpdate, types.OpDelete) {
		return b
	}
	if cond == nil {
		b.err = types.NewInvalidConditionError("where", "", "nil condition")
		return b
	}
	if b.where == nil {
		b.where = cond
		return b
	}
	or, err := types.NewOr(b.where, cond)
	if err != nil {
		b.err = err
		return b
	}
	b.where = or
	return b
}

// GroupBy adds grouping columns.
func (b *Builder) GroupBy(cols ...types.Column) *Builder {
	if b.require("GroupBy()", types.OpSelect) {
		b.groupBy = append(b.groupBy, cols...)
	}
	return b
}

// OrderBy adds sort columns. Use Column.Descending for descending order.
func (b *Builder) OrderBy(cols ...types.Column) *Builder {
	if b.require("OrderBy()", types.OpSelect) {
		b.orderBy = append(b.orderBy, cols...)
	}
	return b
}

// Limit sets the maximum number of rows.
func (b *Builder) Limit(limit int) *Builder {
	if b.require("Limit()", types.OpSelect) {
		v := int64(limit)
		b.limit = &v
	}
	return b
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int) *Builder {
	if b.require("Offset()", types.OpSelect) {
		v := int64(offset)
		b.offset = &v
	}
	return b
}

// Set assigns a bound value to col.
func (b *Builder) Set(col types.Column, value any) *Builder {
	return b.addMapping("Set()", func() (types.UpdateMapping, error) { return types.SetValue(col, value) })
}

// SetColumn assigns the value of source to col.
func (b *Builder) SetColumn(col, source types.Column) *Builder {
	return b.addMapping("SetColumn()", func() (types.UpdateMapping, error) { return types.SetColumn(col, source) })
}

// SetNull assigns null to col.
func (b *Builder) SetNull(col types.Column) *Builder {
	return b.addMapping("SetNull()", func() (types.UpdateMapping, error) { return types.SetNull(col) })
}

// SetConstant assigns a verbatim SQL expression to col.
func (b *Builder) SetConstant(col types.Column, constant string) *Builder {
	return b.addMapping("SetConstant()", func() (types.UpdateMapping, error) { return types.SetConstant(col, constant) })
}

func (b *Builder) addMapping(method string, mapping func() (types.UpdateMapping, error)) *Builder {
	if !b.require(method, types.OpUpdate) {
		return b
	}
	m, err := mapping()
	if err != nil {
		b.err = err
		return b
	}
	b.mappings = append(b.mappings, m)
	return b
}

// Values adds one INSERT row, one value per column in Columns order.
func (b *Builder) Values(values ...any) *Builder {
	if b.require("Values()", types.OpInsert) {
		b.rows = append(b.rows, values)
	}
	return b
}

// Build validates the assembled statement and returns the immutable model.
func (b *Builder) Build() (types.Statement, error) {
	if b.err != nil {
		return nil, b.err
	}
	var (
		stmt types.Statement
		err  error
	)
	switch b.op {
	case types.OpSelect:
		stmt, err = statement(b.BuildSelect())
	case types.OpInsert:
		stmt, err = statement(types.NewInsertModel(types.InsertSpec{
			Table:   b.table,
			Columns: b.columns,
			Rows:    b.rows,
		}))
	case types.OpUpdate:
		stmt, err = statement(types.NewUpdateModel(types.UpdateSpec{
			Table:    b.table,
			Mappings: b.mappings,
			Where:    b.where,
		}))
	case types.OpDelete:
		stmt, err = statement(types.NewDeleteModel(types.DeleteSpec{
			Table: b.table,
			Where: b.where,
		}))
	default:
		err = fmt.Errorf("dynsql: unknown operation %q", b.op)
	}
	return stmt, err
}

// statement converts a model constructor result without leaking a typed nil.
func statement[M types.Statement](m M, err error) (types.Statement, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

// BuildSelect returns the select model, for use in Exists.
func (b *Builder) BuildSelect() (*types.SelectModel, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.op != types.OpSelect {
		return nil, &types.ConfigurationError{Entity: string(b.op), Field: "BuildSelect()", Reason: "not a select"}
	}
	return types.NewSelectModel(types.SelectSpec{
		Table:    b.table,
		Columns:  b.columns,
		Distinct: b.distinct,
		Count:    b.count,
		Joins:    b.joins,
		Where:    b.where,
		GroupBy:  b.groupBy,
		OrderBy:  b.orderBy,
		Limit:    b.limit,
		Offset:   b.offset,
	})
}

// MustBuild returns the model or panics on error.
func (b *Builder) MustBuild() types.Statement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with strategy.
func (b *Builder) Render(strategy types.RenderingStrategy) (*types.RenderedStatement, error) {
	stmt, err := b.Build()
	if err != nil {
		return nil, err
	}
	return Render(stmt, strategy)
}

// MustRender renders the statement or panics on error.
func (b *Builder) MustRender(strategy types.RenderingStrategy) *types.RenderedStatement {
	result, err := b.Render(strategy)
	if err != nil {
		panic(err)
	}
	return result
}
