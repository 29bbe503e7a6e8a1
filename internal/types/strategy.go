package types

// Binding describes one bound parameter at the point its placeholder is emitted.
type Binding struct {
	Name        string
	MarshalHint string
	Ordinal     int // 1-based emission position
	Type        JDBCType
}

// RenderingStrategy decides how bound parameters are named and how their
// placeholders are written. Implementations must be stateless.
type RenderingStrategy interface {
	// BindName returns the parameter name for the given 1-based ordinal.
	BindName(ordinal int) string
	// Placeholder returns the SQL text standing in for the binding.
	Placeholder(b Binding) string
}

// Strategy adapts a pair of functions to RenderingStrategy.
type Strategy struct {
	Name   func(ordinal int) string
	Format func(b Binding) string
}

func (s Strategy) BindName(ordinal int) string { return s.Name(ordinal) }

func (s Strategy) Placeholder(b Binding) string { return s.Format(b) }
