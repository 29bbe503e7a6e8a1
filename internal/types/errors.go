package types

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrConfiguration reports a table, column or statement built without a required field.
	ErrConfiguration = errors.New("dynsql: configuration error")

	// ErrInvalidCondition reports a condition with the wrong arity or an incompatible operand.
	ErrInvalidCondition = errors.New("dynsql: invalid condition")

	// ErrEmptyInCollection reports an IN condition without candidate values.
	ErrEmptyInCollection = errors.New("dynsql: empty IN collection")

	// ErrMissingColumnValues reports an UPDATE or INSERT without column values.
	ErrMissingColumnValues = errors.New("dynsql: missing column values")

	// ErrAliasResolution reports a column whose table is not in scope: not the
	// statement's table, a joined table, or a table of an enclosing query.
	ErrAliasResolution = errors.New("dynsql: alias resolution failed")
)

// ConfigurationError is returned when a descriptor or model misses a required field.
type ConfigurationError struct {
	Entity string // "table", "column", "select", ...
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("dynsql: %s %s: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("dynsql: %s requires %s", e.Entity, e.Field)
}

// Is reports whether target is ErrConfiguration.
func (*ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError returns a ConfigurationError for a missing field.
func NewConfigurationError(entity, field string) *ConfigurationError {
	return &ConfigurationError{Entity: entity, Field: field}
}

// InvalidConditionError is returned when a condition node cannot be built.
type InvalidConditionError struct {
	Condition string
	Column    string
	Reason    string
}

func (e *InvalidConditionError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("dynsql: invalid %s condition on %q: %s", e.Condition, e.Column, e.Reason)
	}
	return fmt.Sprintf("dynsql: invalid %s condition: %s", e.Condition, e.Reason)
}

// Is reports whether target is ErrInvalidCondition.
func (*InvalidConditionError) Is(target error) bool {
	return target == ErrInvalidCondition
}

// NewInvalidConditionError returns an InvalidConditionError.
func NewInvalidConditionError(condition, column, reason string) *InvalidConditionError {
	return &InvalidConditionError{Condition: condition, Column: column, Reason: reason}
}

// EmptyInCollectionError is returned when an IN condition is given no values.
type EmptyInCollectionError struct {
	Column string
}

func (e *EmptyInCollectionError) Error() string {
	return fmt.Sprintf("dynsql: IN condition on %q requires at least one value", e.Column)
}

// Is reports whether target is ErrEmptyInCollection.
func (*EmptyInCollectionError) Is(target error) bool {
	return target == ErrEmptyInCollection
}

// MissingColumnValuesError is returned when an UPDATE or INSERT has nothing to write.
type MissingColumnValuesError struct {
	Operation Operation
	Table     string
}

func (e *MissingColumnValuesError) Error() string {
	return fmt.Sprintf("dynsql: %s on %q requires at least one column value", e.Operation, e.Table)
}

// Is reports whether target is ErrMissingColumnValues.
func (*MissingColumnValuesError) Is(target error) bool {
	return target == ErrMissingColumnValues
}

// AliasResolutionError is returned when a column references a table that is
// not in scope where the column is rendered.
type AliasResolutionError struct {
	Table  string
	Column string
}

func (e *AliasResolutionError) Error() string {
	return fmt.Sprintf("dynsql: column %q references table %q, which is not in scope", e.Column, e.Table)
}

// Is reports whether target is ErrAliasResolution.
func (*AliasResolutionError) Is(target error) bool {
	return target == ErrAliasResolution
}
