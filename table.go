package dynsql

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/types"
)

// TryT creates a table reference, returning an error if invalid.
// An optional schema qualifies the table name.
func TryT(name string, schema ...string) (types.Table, error) {
	if name == "" {
		return types.Table{}, types.NewConfigurationError("table", "a name")
	}
	if !isValidSQLIdentifier(name) {
		return types.Table{}, &types.ConfigurationError{Entity: "table", Field: name, Reason: "not a valid SQL identifier"}
	}
	t := types.Table{Name: name}
	if len(schema) > 0 {
		if len(schema) > 1 {
			return types.Table{}, &types.ConfigurationError{Entity: "table", Field: name, Reason: "only one schema allowed"}
		}
		if !isValidSQLIdentifier(schema[0]) {
			return types.Table{}, &types.ConfigurationError{Entity: "table", Field: name, Reason: fmt.Sprintf("invalid schema %q", schema[0])}
		}
		t.Schema = schema[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, schema ...string) types.Table {
	t, err := TryT(name, schema...)
	if err != nil {
		panic(err)
	}
	return t
}

// isValidSQLIdentifier reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits or underscores.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
