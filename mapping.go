package dynsql

import "github.com/zoobzio/dynsql/internal/types"

// SetValue maps col to a bound value. A nil value binds SQL NULL.
func SetValue(col types.Column, value any) (types.UpdateMapping, error) {
	return types.SetValue(col, value)
}

// SetColumn maps col to the value of source.
func SetColumn(col, source types.Column) (types.UpdateMapping, error) {
	return types.SetColumn(col, source)
}

// SetNull maps col to literal null.
func SetNull(col types.Column) (types.UpdateMapping, error) {
	return types.SetNull(col)
}

// SetConstant maps col to a verbatim SQL expression such as "now()".
func SetConstant(col types.Column, constant string) (types.UpdateMapping, error) {
	return types.SetConstant(col, constant)
}
