// Package sqlite provides the SQLite dialect rendering strategy for dynsql.
package sqlite

import (
	"strconv"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Renderer renders SQLite numbered placeholders: ?1, ?2, ...
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// BindName returns the ordinal as the parameter name.
func (*Renderer) BindName(ordinal int) string {
	return strconv.Itoa(ordinal)
}

// Placeholder returns ?N.
func (*Renderer) Placeholder(b types.Binding) string {
	return "?" + strconv.Itoa(b.Ordinal)
}

// Capabilities returns the SQL features supported by SQLite.
// RIGHT and FULL JOIN require SQLite 3.39 or newer.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:     "sqlite",
		RightJoin:   true,
		FullJoin:    true,
		LimitOffset: true,
	}
}
