// Package mariadb provides the MariaDB dialect rendering strategy for dynsql.
package mariadb

import (
	"strconv"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Renderer renders MariaDB "?" placeholders.
type Renderer struct{}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{}
}

// BindName returns the ordinal as the parameter name.
func (*Renderer) BindName(ordinal int) string {
	return strconv.Itoa(ordinal)
}

// Placeholder returns "?".
func (*Renderer) Placeholder(types.Binding) string {
	return "?"
}

// Capabilities returns the SQL features supported by MariaDB.
// FULL JOIN is not available.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:     "mariadb",
		RightJoin:   true,
		FullJoin:    false,
		LimitOffset: true,
	}
}
