package types

import "fmt"

// Condition is a node of the condition tree.
// The variant set is closed; renderers switch on the concrete type and
// validate every node again, since variants may be built as literals.
type Condition interface {
	isCondition()
	Validate() error
}

// Comparison compares a column with a bound value.
type Comparison struct {
	Value    any
	Column   Column
	Operator Operator
}

// ColumnComparison compares two columns; nothing is bound.
type ColumnComparison struct {
	Left     Column
	Right    Column
	Operator Operator
}

// Between tests a column against an inclusive range of two bound values.
type Between struct {
	Low     any
	High    any
	Column  Column
	Negated bool
}

// In tests a column against a non-empty list of bound values.
type In struct {
	Values  []any
	Column  Column
	Negated bool
}

// IsNull tests a column for NULL.
type IsNull struct {
	Column  Column
	Negated bool
}

// And joins two conditions.
type And struct {
	Left  Condition
	Right Condition
}

// Or joins two alternative conditions.
type Or struct {
	Left  Condition
	Right Condition
}

// Not negates a condition.
type Not struct {
	Child Condition
}

// Exists tests whether a subquery returns rows.
type Exists struct {
	Query   *SelectModel
	Negated bool
}

// Raw is a verbatim SQL fragment. It binds nothing.
type Raw struct {
	SQL string
}

func (Comparison) isCondition()       {}
func (ColumnComparison) isCondition() {}
func (Between) isCondition()          {}
func (In) isCondition()               {}
func (IsNull) isCondition()           {}
func (And) isCondition()              {}
func (Or) isCondition()               {}
func (Not) isCondition()              {}
func (Exists) isCondition()           {}
func (Raw) isCondition()              {}

// Validate reports whether the comparison is complete and its operand fits the column.
func (c Comparison) Validate() error {
	if c.Column.IsZero() {
		return NewInvalidConditionError("comparison", "", "column is required")
	}
	if !c.Operator.Valid() {
		return NewInvalidConditionError("comparison", c.Column.Name(), fmt.Sprintf("unknown operator %q", c.Operator))
	}
	if c.Value == nil {
		return NewInvalidConditionError("comparison", c.Column.Name(), "nil operand, use IsNull")
	}
	if c.Operator.IsPattern() && !c.Column.JDBCType().IsCharacter() {
		if _, ok := c.Column.MarshalHint(); !ok {
			return NewInvalidConditionError("comparison", c.Column.Name(),
				fmt.Sprintf("%s requires a character column, got %s", c.Operator, c.Column.JDBCType()))
		}
	}
	return checkOperand("comparison", c.Column, c.Value)
}

// Validate reports whether both columns and the operator are present.
func (c ColumnComparison) Validate() error {
	if c.Left.IsZero() || c.Right.IsZero() {
		return NewInvalidConditionError("column comparison", "", "both columns are required")
	}
	if !c.Operator.Valid() {
		return NewInvalidConditionError("column comparison", c.Left.Name(), fmt.Sprintf("unknown operator %q", c.Operator))
	}
	return nil
}

// Validate reports whether both bounds are present and fit the column.
func (c Between) Validate() error {
	if c.Column.IsZero() {
		return NewInvalidConditionError("between", "", "column is required")
	}
	for _, v := range []any{c.Low, c.High} {
		if v == nil {
			return NewInvalidConditionError("between", c.Column.Name(), "nil operand")
		}
		if err := checkOperand("between", c.Column, v); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports whether the value list is non-empty and every value fits the column.
func (c In) Validate() error {
	if c.Column.IsZero() {
		return NewInvalidConditionError("in", "", "column is required")
	}
	if len(c.Values) == 0 {
		return &EmptyInCollectionError{Column: c.Column.Name()}
	}
	for _, v := range c.Values {
		if v == nil {
			return NewInvalidConditionError("in", c.Column.Name(), "nil operand")
		}
		if err := checkOperand("in", c.Column, v); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports whether the column is present.
func (c IsNull) Validate() error {
	if c.Column.IsZero() {
		return NewInvalidConditionError("is null", "", "column is required")
	}
	return nil
}

// Validate reports whether both children are present.
func (c And) Validate() error {
	if c.Left == nil || c.Right == nil {
		return NewInvalidConditionError("and", "", "exactly two conditions required")
	}
	return nil
}

// Validate reports whether both children are present.
func (c Or) Validate() error {
	if c.Left == nil || c.Right == nil {
		return NewInvalidConditionError("or", "", "exactly two conditions required")
	}
	return nil
}

// Validate reports whether the child is present.
func (c Not) Validate() error {
	if c.Child == nil {
		return NewInvalidConditionError("not", "", "a condition is required")
	}
	return nil
}

// Validate reports whether the subquery is present.
func (c Exists) Validate() error {
	if c.Query == nil {
		return NewInvalidConditionError("exists", "", "a select model is required")
	}
	return nil
}

// Validate reports whether the fragment is non-empty.
func (c Raw) Validate() error {
	if c.SQL == "" {
		return NewInvalidConditionError("raw", "", "empty fragment")
	}
	return nil
}

// NewComparison validates and returns a comparison.
func NewComparison(col Column, op Operator, value any) (Comparison, error) {
	c := Comparison{Column: col, Operator: op, Value: value}
	if err := c.Validate(); err != nil {
		return Comparison{}, err
	}
	return c, nil
}

// NewColumnComparison validates and returns a column-to-column comparison.
func NewColumnComparison(left Column, op Operator, right Column) (ColumnComparison, error) {
	c := ColumnComparison{Left: left, Operator: op, Right: right}
	if err := c.Validate(); err != nil {
		return ColumnComparison{}, err
	}
	return c, nil
}

// NewBetween validates and returns a between condition. Exactly two operands are required.
func NewBetween(col Column, operands ...any) (Between, error) {
	if col.IsZero() {
		return Between{}, NewInvalidConditionError("between", "", "column is required")
	}
	if len(operands) != 2 {
		return Between{}, NewInvalidConditionError("between", col.Name(),
			fmt.Sprintf("exactly two operands required, got %d", len(operands)))
	}
	c := Between{Column: col, Low: operands[0], High: operands[1]}
	if err := c.Validate(); err != nil {
		return Between{}, err
	}
	return c, nil
}

// NewIn validates and returns an IN condition. The values are copied.
func NewIn(col Column, values ...any) (In, error) {
	c := In{Column: col, Values: append([]any(nil), values...)}
	if err := c.Validate(); err != nil {
		return In{}, err
	}
	return c, nil
}

// NewIsNull returns an IS NULL condition.
func NewIsNull(col Column) (IsNull, error) {
	c := IsNull{Column: col}
	if err := c.Validate(); err != nil {
		return IsNull{}, err
	}
	return c, nil
}

// NewAnd validates and returns a binary AND.
func NewAnd(left, right Condition) (And, error) {
	c := And{Left: left, Right: right}
	if err := c.Validate(); err != nil {
		return And{}, err
	}
	return c, nil
}

// NewOr validates and returns a binary OR.
func NewOr(left, right Condition) (Or, error) {
	c := Or{Left: left, Right: right}
	if err := c.Validate(); err != nil {
		return Or{}, err
	}
	return c, nil
}

// NewNot validates and returns a negation.
func NewNot(child Condition) (Not, error) {
	c := Not{Child: child}
	if err := c.Validate(); err != nil {
		return Not{}, err
	}
	return c, nil
}

// NewExists validates and returns an EXISTS condition.
func NewExists(query *SelectModel) (Exists, error) {
	c := Exists{Query: query}
	if err := c.Validate(); err != nil {
		return Exists{}, err
	}
	return c, nil
}

// NewRaw validates and returns a raw fragment.
func NewRaw(sql string) (Raw, error) {
	c := Raw{SQL: sql}
	if err := c.Validate(); err != nil {
		return Raw{}, err
	}
	return c, nil
}

func checkOperand(condition string, col Column, v any) error {
	if !col.Accepts(v) {
		return NewInvalidConditionError(condition, col.Name(),
			fmt.Sprintf("operand of type %T is not compatible with %s", v, col.JDBCType()))
	}
	return nil
}
