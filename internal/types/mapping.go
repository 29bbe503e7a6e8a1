package types

import "fmt"

// MappingKind identifies the right-hand side of an update mapping.
type MappingKind int

const (
	MapValue    MappingKind = iota // bound parameter
	MapColumn                      // another column
	MapNull                        // literal null
	MapConstant                    // verbatim SQL text
)

// UpdateMapping assigns a new value to a column in an UPDATE statement.
type UpdateMapping struct {
	value    any
	column   Column
	source   Column
	constant string
	kind     MappingKind
}

// SetValue maps a column to a bound value. A nil value binds SQL NULL.
func SetValue(col Column, value any) (UpdateMapping, error) {
	if col.IsZero() {
		return UpdateMapping{}, NewConfigurationError("update mapping", "a target column")
	}
	if value != nil && !col.Accepts(value) {
		return UpdateMapping{}, &ConfigurationError{
			Entity: "update mapping",
			Field:  col.Name(),
			Reason: fmt.Sprintf("value of type %T is not compatible with %s", value, col.JDBCType()),
		}
	}
	return UpdateMapping{column: col, value: value, kind: MapValue}, nil
}

// SetColumn maps a column to another column.
func SetColumn(col, source Column) (UpdateMapping, error) {
	if col.IsZero() || source.IsZero() {
		return UpdateMapping{}, NewConfigurationError("update mapping", "a target and a source column")
	}
	return UpdateMapping{column: col, source: source, kind: MapColumn}, nil
}

// SetNull maps a column to literal null.
func SetNull(col Column) (UpdateMapping, error) {
	if col.IsZero() {
		return UpdateMapping{}, NewConfigurationError("update mapping", "a target column")
	}
	return UpdateMapping{column: col, kind: MapNull}, nil
}

// SetConstant maps a column to a verbatim SQL expression.
func SetConstant(col Column, constant string) (UpdateMapping, error) {
	if col.IsZero() {
		return UpdateMapping{}, NewConfigurationError("update mapping", "a target column")
	}
	if constant == "" {
		return UpdateMapping{}, &ConfigurationError{Entity: "update mapping", Field: col.Name(), Reason: "empty constant"}
	}
	return UpdateMapping{column: col, constant: constant, kind: MapConstant}, nil
}

// Column returns the target column.
func (m UpdateMapping) Column() Column { return m.column }

// Kind returns the mapping kind.
func (m UpdateMapping) Kind() MappingKind { return m.kind }

// Value returns the bound value of a MapValue mapping.
func (m UpdateMapping) Value() any { return m.value }

// Source returns the source column of a MapColumn mapping.
func (m UpdateMapping) Source() Column { return m.source }

// Constant returns the SQL text of a MapConstant mapping.
func (m UpdateMapping) Constant() string { return m.constant }

// Join represents a join clause of a select.
type Join struct {
	On    Condition
	Table Table
	Type  JoinType
}
