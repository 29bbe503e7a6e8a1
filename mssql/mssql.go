// Package mssql provides the SQL Server dialect rendering strategy for dynsql.
package mssql

import (
	"strconv"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Renderer renders SQL Server named placeholders: @p1, @p2, ...
// Execute with the NamedArgs of the rendered statement.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// BindName returns p followed by the ordinal.
func (*Renderer) BindName(ordinal int) string {
	return "p" + strconv.Itoa(ordinal)
}

// Placeholder returns @name.
func (*Renderer) Placeholder(b types.Binding) string {
	return "@" + b.Name
}

// Capabilities returns the SQL features supported by SQL Server.
// LIMIT and OFFSET are not part of its dialect.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:     "mssql",
		RightJoin:   true,
		FullJoin:    true,
		LimitOffset: false,
	}
}
