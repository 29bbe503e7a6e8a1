// Package postgres provides the PostgreSQL dialect rendering strategies for dynsql.
package postgres

import (
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Renderer renders PostgreSQL placeholders.
type Renderer struct {
	named bool
}

// New creates a renderer using numbered placeholders: $1, $2, ...
func New() *Renderer {
	return &Renderer{}
}

// NewNamed creates a renderer using pgx named placeholders: @p1, @p2, ...
// Pass NamedArgs of the rendered statement as the single query argument.
func NewNamed() *Renderer {
	return &Renderer{named: true}
}

// BindName returns the parameter name for ordinal.
func (r *Renderer) BindName(ordinal int) string {
	if r.named {
		return "p" + strconv.Itoa(ordinal)
	}
	return strconv.Itoa(ordinal)
}

// Placeholder returns $N, or @name for the named renderer.
func (r *Renderer) Placeholder(b types.Binding) string {
	if r.named {
		return "@" + b.Name
	}
	return "$" + strconv.Itoa(b.Ordinal)
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:     "postgres",
		RightJoin:   true,
		FullJoin:    true,
		LimitOffset: true,
	}
}

// NamedArgs returns the parameters of a statement rendered with NewNamed
// as pgx.NamedArgs.
func NamedArgs(rs *types.RenderedStatement) pgx.NamedArgs {
	args := make(pgx.NamedArgs, len(rs.Parameters))
	for _, p := range rs.Parameters {
		args[p.Name] = p.Value
	}
	return args
}
