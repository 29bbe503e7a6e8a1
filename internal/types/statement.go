package types

import (
	"fmt"
	"iter"
	"slices"
)

// Statement is implemented by every built statement model.
type Statement interface {
	Operation() Operation
	Table() Table
	Where() (Condition, bool)
}

// SelectSpec describes a select statement under construction.
type SelectSpec struct {
	Where    Condition
	Limit    *int64
	Offset   *int64
	Table    Table
	Columns  []Column
	Joins    []Join
	GroupBy  []Column
	OrderBy  []Column
	Distinct bool
	Count    bool
}

// SelectModel is an immutable select statement.
type SelectModel struct {
	where    Condition
	limit    *int64
	offset   *int64
	table    Table
	columns  []Column
	joins    []Join
	groupBy  []Column
	orderBy  []Column
	distinct bool
	count    bool
}

// NewSelectModel validates spec and returns the built model.
// Slices are copied so later changes to spec are not observed.
func NewSelectModel(spec SelectSpec) (*SelectModel, error) {
	if spec.Table.Name == "" {
		return nil, NewConfigurationError("select", "a table")
	}
	if spec.Count && len(spec.Columns) > 0 {
		return nil, &ConfigurationError{Entity: "select", Field: "columns", Reason: "count(*) cannot be combined with projected columns"}
	}
	if spec.Count && spec.Distinct {
		return nil, &ConfigurationError{Entity: "select", Field: "distinct", Reason: "count(*) cannot be combined with distinct"}
	}
	for i, j := range spec.Joins {
		if j.Table.Name == "" {
			return nil, &ConfigurationError{Entity: "select", Field: fmt.Sprintf("join %d", i), Reason: "a table is required"}
		}
		if j.On == nil {
			return nil, &ConfigurationError{Entity: "select", Field: fmt.Sprintf("join %d", i), Reason: "an on condition is required"}
		}
	}
	if spec.Limit != nil && *spec.Limit < 0 {
		return nil, &ConfigurationError{Entity: "select", Field: "limit", Reason: "must not be negative"}
	}
	if spec.Offset != nil && *spec.Offset < 0 {
		return nil, &ConfigurationError{Entity: "select", Field: "offset", Reason: "must not be negative"}
	}
	return &SelectModel{
		table:    spec.Table,
		columns:  slices.Clone(spec.Columns),
		joins:    slices.Clone(spec.Joins),
		where:    spec.Where,
		groupBy:  slices.Clone(spec.GroupBy),
		orderBy:  slices.Clone(spec.OrderBy),
		limit:    cloneInt(spec.Limit),
		offset:   cloneInt(spec.Offset),
		distinct: spec.Distinct,
		count:    spec.Count,
	}, nil
}

// Operation returns OpSelect.
func (*SelectModel) Operation() Operation { return OpSelect }

// Table returns the table of the FROM clause.
func (m *SelectModel) Table() Table { return m.table }

// Where returns the filter condition, if any.
func (m *SelectModel) Where() (Condition, bool) { return m.where, m.where != nil }

// Columns yields the projected columns. No columns means select *.
func (m *SelectModel) Columns() iter.Seq[Column] { return slices.Values(m.columns) }

// Joins yields the join clauses in declaration order.
func (m *SelectModel) Joins() iter.Seq[Join] { return slices.Values(m.joins) }

// GroupBy yields the grouping columns.
func (m *SelectModel) GroupBy() iter.Seq[Column] { return slices.Values(m.groupBy) }

// OrderBy yields the sort specifications in declaration order.
func (m *SelectModel) OrderBy() iter.Seq[Column] { return slices.Values(m.orderBy) }

// IsDistinct reports whether duplicate rows are removed.
func (m *SelectModel) IsDistinct() bool { return m.distinct }

// IsCount reports whether the statement selects count(*).
func (m *SelectModel) IsCount() bool { return m.count }

// Limit returns the row limit, if any.
func (m *SelectModel) Limit() (int64, bool) { return derefInt(m.limit) }

// Offset returns the row offset, if any.
func (m *SelectModel) Offset() (int64, bool) { return derefInt(m.offset) }

// UpdateSpec describes an update statement under construction.
type UpdateSpec struct {
	Where    Condition
	Table    Table
	Mappings []UpdateMapping
}

// UpdateModel is an immutable update statement.
type UpdateModel struct {
	where    Condition
	table    Table
	mappings []UpdateMapping
}

// NewUpdateModel validates spec and returns the built model.
func NewUpdateModel(spec UpdateSpec) (*UpdateModel, error) {
	if spec.Table.Name == "" {
		return nil, NewConfigurationError("update", "a table")
	}
	if len(spec.Mappings) == 0 {
		return nil, &MissingColumnValuesError{Operation: OpUpdate, Table: spec.Table.Name}
	}
	return &UpdateModel{
		table:    spec.Table,
		mappings: slices.Clone(spec.Mappings),
		where:    spec.Where,
	}, nil
}

// Operation returns OpUpdate.
func (*UpdateModel) Operation() Operation { return OpUpdate }

// Table returns the updated table.
func (m *UpdateModel) Table() Table { return m.table }

// Where returns the filter condition, if any.
func (m *UpdateModel) Where() (Condition, bool) { return m.where, m.where != nil }

// Mappings yields the SET assignments in declaration order.
func (m *UpdateModel) Mappings() iter.Seq[UpdateMapping] { return slices.Values(m.mappings) }

// InsertSpec describes an insert statement under construction.
type InsertSpec struct {
	Table   Table
	Columns []Column
	Rows    [][]any
}

// InsertModel is an immutable insert statement.
type InsertModel struct {
	table   Table
	columns []Column
	rows    [][]any
}

// NewInsertModel validates spec and returns the built model.
// Every row must supply one value per column; nil binds SQL NULL.
func NewInsertModel(spec InsertSpec) (*InsertModel, error) {
	if spec.Table.Name == "" {
		return nil, NewConfigurationError("insert", "a table")
	}
	if len(spec.Columns) == 0 || len(spec.Rows) == 0 {
		return nil, &MissingColumnValuesError{Operation: OpInsert, Table: spec.Table.Name}
	}
	rows := make([][]any, len(spec.Rows))
	for i, row := range spec.Rows {
		if len(row) != len(spec.Columns) {
			return nil, &ConfigurationError{
				Entity: "insert",
				Field:  fmt.Sprintf("row %d", i),
				Reason: fmt.Sprintf("has %d values for %d columns", len(row), len(spec.Columns)),
			}
		}
		for j, v := range row {
			col := spec.Columns[j]
			if v != nil && !col.Accepts(v) {
				return nil, &ConfigurationError{
					Entity: "insert",
					Field:  col.Name(),
					Reason: fmt.Sprintf("value of type %T is not compatible with %s", v, col.JDBCType()),
				}
			}
		}
		rows[i] = slices.Clone(row)
	}
	return &InsertModel{
		table:   spec.Table,
		columns: slices.Clone(spec.Columns),
		rows:    rows,
	}, nil
}

// Operation returns OpInsert.
func (*InsertModel) Operation() Operation { return OpInsert }

// Table returns the target table.
func (m *InsertModel) Table() Table { return m.table }

// Where always reports false; inserts carry no condition.
func (*InsertModel) Where() (Condition, bool) { return nil, false }

// Columns yields the target columns in declaration order.
func (m *InsertModel) Columns() iter.Seq[Column] { return slices.Values(m.columns) }

// Rows yields each value row. The yielded slices must not be modified.
func (m *InsertModel) Rows() iter.Seq[[]any] { return slices.Values(m.rows) }

// DeleteSpec describes a delete statement under construction.
type DeleteSpec struct {
	Where Condition
	Table Table
}

// DeleteModel is an immutable delete statement.
type DeleteModel struct {
	where Condition
	table Table
}

// NewDeleteModel validates spec and returns the built model.
func NewDeleteModel(spec DeleteSpec) (*DeleteModel, error) {
	if spec.Table.Name == "" {
		return nil, NewConfigurationError("delete", "a table")
	}
	return &DeleteModel{table: spec.Table, where: spec.Where}, nil
}

// Operation returns OpDelete.
func (*DeleteModel) Operation() Operation { return OpDelete }

// Table returns the table rows are deleted from.
func (m *DeleteModel) Table() Table { return m.table }

// Where returns the filter condition, if any.
func (m *DeleteModel) Where() (Condition, bool) { return m.where, m.where != nil }

// MapColumnValues yields fn applied to each update mapping, in order.
func MapColumnValues[R any](m *UpdateModel, fn func(UpdateMapping) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, mapping := range m.mappings {
			if !yield(fn(mapping)) {
				return
			}
		}
	}
}

func cloneInt(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func derefInt(p *int64) (int64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
