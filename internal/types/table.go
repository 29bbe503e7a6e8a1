package types

// Table represents a table reference.
// Identity is the full value: two references to the same table with different
// aliases are distinct tables as far as alias resolution is concerned.
type Table struct {
	Name   string
	Schema string
	Alias  string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetAlias returns the caller-supplied alias, if any.
func (t Table) GetAlias() string {
	return t.Alias
}

// As returns a copy of the table carrying a caller-supplied alias.
func (t Table) As(alias string) Table {
	t.Alias = alias
	return t
}

// QualifiedName returns schema.name, or name when no schema is set.
func (t Table) QualifiedName() string {
	if t.Schema != "" {
		return t.Schema + "." + t.Name
	}
	return t.Name
}
