package dynsql

import (
	"github.com/zoobzio/dynsql/internal/types"
)

// TryC creates a comparison of col with a bound value, returning an error if invalid.
func TryC(col types.Column, op types.Operator, value any) (types.Comparison, error) {
	return types.NewComparison(col, op, value)
}

// C creates a comparison of col with a bound value.
func C(col types.Column, op types.Operator, value any) types.Comparison {
	c, err := TryC(col, op, value)
	if err != nil {
		panic(err)
	}
	return c
}

// TryCC creates a comparison between two columns, returning an error if invalid.
func TryCC(left types.Column, op types.Operator, right types.Column) (types.ColumnComparison, error) {
	return types.NewColumnComparison(left, op, right)
}

// CC creates a comparison between two columns.
func CC(left types.Column, op types.Operator, right types.Column) types.ColumnComparison {
	c, err := TryCC(left, op, right)
	if err != nil {
		panic(err)
	}
	return c
}

// TryBetween creates a BETWEEN condition, returning an error if invalid.
// Exactly two operands are required.
func TryBetween(col types.Column, operands ...any) (types.Between, error) {
	return types.NewBetween(col, operands...)
}

// Between creates a BETWEEN condition.
func Between(col types.Column, low, high any) types.Between {
	b, err := TryBetween(col, low, high)
	if err != nil {
		panic(err)
	}
	return b
}

// NotBetween creates a NOT BETWEEN condition.
func NotBetween(col types.Column, low, high any) types.Between {
	b := Between(col, low, high)
	b.Negated = true
	return b
}

// TryIn creates an IN condition, returning an error if invalid.
// At least one value is required.
func TryIn(col types.Column, values ...any) (types.In, error) {
	return types.NewIn(col, values...)
}

// In creates an IN condition.
func In(col types.Column, values ...any) types.In {
	in, err := TryIn(col, values...)
	if err != nil {
		panic(err)
	}
	return in
}

// TryNotIn creates a NOT IN condition, returning an error if invalid.
func TryNotIn(col types.Column, values ...any) (types.In, error) {
	in, err := types.NewIn(col, values...)
	if err != nil {
		return types.In{}, err
	}
	in.Negated = true
	return in, nil
}

// NotIn creates a NOT IN condition.
func NotIn(col types.Column, values ...any) types.In {
	in, err := TryNotIn(col, values...)
	if err != nil {
		panic(err)
	}
	return in
}

// TryNull creates an IS NULL condition, returning an error if invalid.
func TryNull(col types.Column) (types.IsNull, error) {
	return types.NewIsNull(col)
}

// Null creates an IS NULL condition.
func Null(col types.Column) types.IsNull {
	c, err := TryNull(col)
	if err != nil {
		panic(err)
	}
	return c
}

// NotNull creates an IS NOT NULL condition.
func NotNull(col types.Column) types.IsNull {
	c := Null(col)
	c.Negated = true
	return c
}

// TryAnd joins two conditions with AND, returning an error if invalid.
func TryAnd(left, right types.Condition) (types.And, error) {
	return types.NewAnd(left, right)
}

// And joins two conditions with AND.
func And(left, right types.Condition) types.And {
	a, err := TryAnd(left, right)
	if err != nil {
		panic(err)
	}
	return a
}

// TryOr joins two conditions with OR, returning an error if invalid.
func TryOr(left, right types.Condition) (types.Or, error) {
	return types.NewOr(left, right)
}

// Or joins two conditions with OR.
func Or(left, right types.Condition) types.Or {
	o, err := TryOr(left, right)
	if err != nil {
		panic(err)
	}
	return o
}

// TryNot negates a condition, returning an error if invalid.
func TryNot(child types.Condition) (types.Not, error) {
	return types.NewNot(child)
}

// Not negates a condition.
func Not(child types.Condition) types.Not {
	n, err := TryNot(child)
	if err != nil {
		panic(err)
	}
	return n
}

// TryAllOf folds conditions into right-associated ANDs. A single condition
// is returned as is.
func TryAllOf(conditions ...types.Condition) (types.Condition, error) {
	return fold("and", conditions, func(l, r types.Condition) (types.Condition, error) {
		return types.NewAnd(l, r)
	})
}

// AllOf folds conditions into right-associated ANDs.
func AllOf(conditions ...types.Condition) types.Condition {
	c, err := TryAllOf(conditions...)
	if err != nil {
		panic(err)
	}
	return c
}

// TryAnyOf folds conditions into right-associated ORs. A single condition
// is returned as is.
func TryAnyOf(conditions ...types.Condition) (types.Condition, error) {
	return fold("or", conditions, func(l, r types.Condition) (types.Condition, error) {
		return types.NewOr(l, r)
	})
}

// AnyOf folds conditions into right-associated ORs.
func AnyOf(conditions ...types.Condition) types.Condition {
	c, err := TryAnyOf(conditions...)
	if err != nil {
		panic(err)
	}
	return c
}

func fold(name string, conditions []types.Condition, join func(l, r types.Condition) (types.Condition, error)) (types.Condition, error) {
	if len(conditions) == 0 {
		return nil, types.NewInvalidConditionError(name, "", "at least one condition required")
	}
	acc := conditions[len(conditions)-1]
	if acc == nil {
		return nil, types.NewInvalidConditionError(name, "", "nil condition")
	}
	for i := len(conditions) - 2; i >= 0; i-- {
		next, err := join(conditions[i], acc)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// TryExists creates an EXISTS condition over a select, returning an error if invalid.
func TryExists(query *types.SelectModel) (types.Exists, error) {
	return types.NewExists(query)
}

// Exists creates an EXISTS condition over a select.
func Exists(query *types.SelectModel) types.Exists {
	e, err := TryExists(query)
	if err != nil {
		panic(err)
	}
	return e
}

// NotExists creates a NOT EXISTS condition over a select.
func NotExists(query *types.SelectModel) types.Exists {
	e := Exists(query)
	e.Negated = true
	return e
}

// TryRaw creates a verbatim SQL fragment, returning an error if invalid.
// The fragment is not escaped and binds nothing.
func TryRaw(sql string) (types.Raw, error) {
	return types.NewRaw(sql)
}

// Raw creates a verbatim SQL fragment.
func Raw(sql string) types.Raw {
	r, err := TryRaw(sql)
	if err != nil {
		panic(err)
	}
	return r
}
