package types

// AliasLookup resolves the alias assigned to a table during one render.
type AliasLookup interface {
	Lookup(table Table) (string, bool)
}

// Column is an immutable column descriptor.
// Derivation methods copy the receiver and override a single field; the
// receiver is never modified.
type Column struct {
	table       Table
	name        string
	alias       string
	marshalHint string
	jdbcType    JDBCType
	descending  bool
}

// NewColumn validates and returns a column descriptor.
func NewColumn(name string, table Table, jdbcType JDBCType) (Column, error) {
	if name == "" {
		return Column{}, NewConfigurationError("column", "a name")
	}
	if table.Name == "" {
		return Column{}, &ConfigurationError{Entity: "column", Field: name, Reason: "owning table is required"}
	}
	if !jdbcType.Valid() {
		return Column{}, &ConfigurationError{Entity: "column", Field: name, Reason: "a valid JDBC type is required"}
	}
	return Column{name: name, table: table, jdbcType: jdbcType}, nil
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Table returns the owning table.
func (c Column) Table() Table { return c.table }

// JDBCType returns the base type token.
func (c Column) JDBCType() JDBCType { return c.jdbcType }

// IsDescending reports whether the column sorts descending.
func (c Column) IsDescending() bool { return c.descending }

// Alias returns the column alias used in projections and ORDER BY.
func (c Column) Alias() (string, bool) { return c.alias, c.alias != "" }

// MarshalHint returns the custom marshalling hint handed to the execution layer.
func (c Column) MarshalHint() (string, bool) { return c.marshalHint, c.marshalHint != "" }

// AliasOrName returns the alias when set, the column name otherwise.
func (c Column) AliasOrName() string {
	if c.alias != "" {
		return c.alias
	}
	return c.name
}

// IsZero reports whether c is the zero Column.
func (c Column) IsZero() bool { return c.name == "" }

// As returns a copy of the column with the given alias.
func (c Column) As(alias string) Column {
	c.alias = alias
	return c
}

// Descending returns a copy of the column that sorts descending.
func (c Column) Descending() Column {
	c.descending = true
	return c
}

// WithMarshalHint returns a copy of the column with a custom marshalling hint.
func (c Column) WithMarshalHint(hint string) Column {
	c.marshalHint = hint
	return c
}

// RenderWithAlias renders the column reference, qualified with the table
// alias when the lookup has one. This is the only place qualification happens.
func (c Column) RenderWithAlias(lookup AliasLookup) string {
	if lookup != nil {
		if alias, ok := lookup.Lookup(c.table); ok {
			return alias + "." + c.name
		}
	}
	return c.name
}

// Accepts reports whether v may be bound against this column.
// Columns with a marshal hint accept any value since conversion is delegated.
func (c Column) Accepts(v any) bool {
	if c.marshalHint != "" {
		return true
	}
	return c.jdbcType.Accepts(v)
}
