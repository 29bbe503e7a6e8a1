// Package dynsql provides a typed SQL statement builder that renders
// immutable statement models into parameterized SQL.
//
// Callers compose tables, columns and conditions, assemble them into a
// select, insert, update or delete model, and render that model with a
// RenderingStrategy that decides placeholder syntax and parameter naming.
// Rendering is a pure function of (model, strategy): the same model renders
// to byte-identical output every time and may be rendered concurrently.
//
// # Basic Usage
//
//	foo := dynsql.T("foo")
//	id := dynsql.Col("id", foo, dynsql.TypeInteger)
//	name := dynsql.Col("name", foo, dynsql.TypeVarchar)
//
//	result, err := dynsql.Update(foo).
//		Set(name, "fred").
//		Where(dynsql.C(id, dynsql.EQ, 1)).
//		Render(dynsql.Positional())
//	// result.SQL:    update foo set name = ? where id = ?
//	// result.Args(): []any{"fred", 1}
//
// # Rendering Strategies
//
// Positional renders "?" placeholders. Named renders "#{p1}" placeholders
// and NamedWithTypes adds the column's JDBC type and marshal hint. Dialect
// packages (postgres, mariadb, sqlite, mssql) provide the placeholder syntax
// of each database and refuse features it cannot execute.
//
//	import "github.com/zoobzio/dynsql/postgres"
//
//	result, err := query.Render(postgres.New())
//	// select ... where id = $1
//
// # Table Aliases
//
// Aliases are resolved once per render over the whole statement, subqueries
// included. A statement touching a single table renders unqualified columns.
// When more than one table is involved each table receives t1, t2, ... in
// first-encounter order unless the caller supplied an alias with Table.As.
//
// # Schema-Validated Usage
//
// A Catalog built from a DBML project only hands out tables and columns the
// schema declares, typed from their SQL column types:
//
//	catalog, err := dynsql.NewCatalog(project)
//	users := catalog.T("users")
//	email := catalog.Col(users, "email")
package dynsql

import (
	"iter"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Table represents a table reference.
type Table = types.Table

// Column is an immutable column descriptor.
type Column = types.Column

// JDBCType is the base SQL type token carried by a column.
type JDBCType = types.JDBCType

// Re-export JDBC type constants for public API.
const (
	TypeArray                 = types.TypeArray
	TypeBigint                = types.TypeBigint
	TypeBinary                = types.TypeBinary
	TypeBit                   = types.TypeBit
	TypeBlob                  = types.TypeBlob
	TypeBoolean               = types.TypeBoolean
	TypeChar                  = types.TypeChar
	TypeClob                  = types.TypeClob
	TypeDatalink              = types.TypeDatalink
	TypeDate                  = types.TypeDate
	TypeDecimal               = types.TypeDecimal
	TypeDistinct              = types.TypeDistinct
	TypeDouble                = types.TypeDouble
	TypeFloat                 = types.TypeFloat
	TypeInteger               = types.TypeInteger
	TypeJavaObject            = types.TypeJavaObject
	TypeLongNVarchar          = types.TypeLongNVarchar
	TypeLongVarbinary         = types.TypeLongVarbinary
	TypeLongVarchar           = types.TypeLongVarchar
	TypeNChar                 = types.TypeNChar
	TypeNClob                 = types.TypeNClob
	TypeNull                  = types.TypeNull
	TypeNumeric               = types.TypeNumeric
	TypeNVarchar              = types.TypeNVarchar
	TypeOther                 = types.TypeOther
	TypeReal                  = types.TypeReal
	TypeRef                   = types.TypeRef
	TypeRefCursor             = types.TypeRefCursor
	TypeRowID                 = types.TypeRowID
	TypeSmallint              = types.TypeSmallint
	TypeSQLXML                = types.TypeSQLXML
	TypeStruct                = types.TypeStruct
	TypeTime                  = types.TypeTime
	TypeTimeWithTimezone      = types.TypeTimeWithTimezone
	TypeTimestamp             = types.TypeTimestamp
	TypeTimestampWithTimezone = types.TypeTimestampWithTimezone
	TypeTinyint               = types.TypeTinyint
	TypeVarbinary             = types.TypeVarbinary
	TypeVarchar               = types.TypeVarchar
)

// ParseJDBCType maps a SQL type name such as "varchar(255)" to a JDBC token.
func ParseJDBCType(sqlType string) (JDBCType, bool) {
	return types.ParseJDBCType(sqlType)
}

// Operator represents a comparison operator.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ      = types.EQ
	NE      = types.NE
	GT      = types.GT
	GE      = types.GE
	LT      = types.LT
	LE      = types.LE
	LIKE    = types.LIKE
	NotLike = types.NotLike
)

// Operation represents the kind of statement.
type Operation = types.Operation

// Re-export operation constants for public API.
const (
	OpSelect = types.OpSelect
	OpInsert = types.OpInsert
	OpUpdate = types.OpUpdate
	OpDelete = types.OpDelete
)

// JoinType represents the type of a join.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
)

// Join represents a join clause of a select.
type Join = types.Join

// Condition is a node of the condition tree.
type Condition = types.Condition

// Condition variants, for callers that inspect a tree.
type (
	Comparison       = types.Comparison
	ColumnComparison = types.ColumnComparison
	BetweenCondition = types.Between
	InCondition      = types.In
	NullCondition    = types.IsNull
	AndCondition     = types.And
	OrCondition      = types.Or
	NotCondition     = types.Not
	ExistsCondition  = types.Exists
	RawCondition     = types.Raw
)

// UpdateMapping assigns a new value to a column in an UPDATE statement.
type UpdateMapping = types.UpdateMapping

// MappingKind identifies the right-hand side of an update mapping.
type MappingKind = types.MappingKind

// Re-export mapping kind constants for public API.
const (
	MapValue    = types.MapValue
	MapColumn   = types.MapColumn
	MapNull     = types.MapNull
	MapConstant = types.MapConstant
)

// Statement is implemented by every built statement model.
type Statement = types.Statement

// Statement models and the specs they are built from.
type (
	SelectModel = types.SelectModel
	SelectSpec  = types.SelectSpec
	InsertModel = types.InsertModel
	InsertSpec  = types.InsertSpec
	UpdateModel = types.UpdateModel
	UpdateSpec  = types.UpdateSpec
	DeleteModel = types.DeleteModel
	DeleteSpec  = types.DeleteSpec
)

// NewSelectModel validates spec and returns the built model.
func NewSelectModel(spec SelectSpec) (*SelectModel, error) { return types.NewSelectModel(spec) }

// NewInsertModel validates spec and returns the built model.
func NewInsertModel(spec InsertSpec) (*InsertModel, error) { return types.NewInsertModel(spec) }

// NewUpdateModel validates spec and returns the built model.
func NewUpdateModel(spec UpdateSpec) (*UpdateModel, error) { return types.NewUpdateModel(spec) }

// NewDeleteModel validates spec and returns the built model.
func NewDeleteModel(spec DeleteSpec) (*DeleteModel, error) { return types.NewDeleteModel(spec) }

// MapColumnValues yields fn applied to each update mapping of m, in order.
func MapColumnValues[R any](m *UpdateModel, fn func(UpdateMapping) R) iter.Seq[R] {
	return types.MapColumnValues(m, fn)
}

// RenderingStrategy decides bind names and placeholder syntax.
type RenderingStrategy = types.RenderingStrategy

// Binding describes one bound parameter at the point its placeholder is emitted.
type Binding = types.Binding

// Strategy adapts a pair of functions to RenderingStrategy.
type Strategy = types.Strategy

// RenderedStatement is the SQL text and its parameters in emission order.
type RenderedStatement = types.RenderedStatement

// Parameter is one bound value of a rendered statement.
type Parameter = types.Parameter

// Capabilities describes the SQL features a dialect can render.
type Capabilities = render.Capabilities

// CapabilityReporter is implemented by strategies that restrict features.
type CapabilityReporter = render.CapabilityReporter

// AliasResolver maps the tables of one statement to their aliases.
type AliasResolver = render.AliasResolver

// ResolveAliases runs the alias pre-pass over stmt. It fails when two tables
// share a caller alias or one table is brought into scope twice.
func ResolveAliases(stmt Statement) (*AliasResolver, error) { return render.ResolveAliases(stmt) }
