package types

import "database/sql"

// Parameter is one bound value of a rendered statement.
type Parameter struct {
	Value       any
	Name        string
	MarshalHint string
	Ordinal     int
	Type        JDBCType
}

// RenderedStatement is the SQL text and its parameters in emission order.
type RenderedStatement struct {
	SQL        string
	Parameters []Parameter
}

// Args returns the parameter values in emission order, for positional drivers.
func (r *RenderedStatement) Args() []any {
	args := make([]any, len(r.Parameters))
	for i, p := range r.Parameters {
		args[i] = p.Value
	}
	return args
}

// NamedArgs returns the parameters as sql.NamedArg values.
func (r *RenderedStatement) NamedArgs() []any {
	args := make([]any, len(r.Parameters))
	for i, p := range r.Parameters {
		args[i] = sql.Named(p.Name, p.Value)
	}
	return args
}

// Map returns the parameter values keyed by bind name.
func (r *RenderedStatement) Map() map[string]any {
	m := make(map[string]any, len(r.Parameters))
	for _, p := range r.Parameters {
		m[p.Name] = p.Value
	}
	return m
}

// Lookup returns the parameter bound under name.
func (r *RenderedStatement) Lookup(name string) (Parameter, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
