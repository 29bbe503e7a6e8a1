package dynsql

import "github.com/zoobzio/dynsql/internal/types"

// TryCol creates a column of table, returning an error if invalid.
func TryCol(name string, table types.Table, jdbcType types.JDBCType) (types.Column, error) {
	if name != "" && !isValidSQLIdentifier(name) {
		return types.Column{}, &types.ConfigurationError{Entity: "column", Field: name, Reason: "not a valid SQL identifier"}
	}
	return types.NewColumn(name, table, jdbcType)
}

// Col creates a column of table.
func Col(name string, table types.Table, jdbcType types.JDBCType) types.Column {
	c, err := TryCol(name, table, jdbcType)
	if err != nil {
		panic(err)
	}
	return c
}
