package dynsql

import (
	"strconv"
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

// Positional renders "?" placeholders. Parameters are named by ordinal: "1", "2", ...
func Positional() Strategy {
	return Strategy{
		Name:   strconv.Itoa,
		Format: func(types.Binding) string { return "?" },
	}
}

// Named renders "#{p1}", "#{p2}", ... placeholders.
func Named() Strategy {
	return NamedStrategy("p", "#{%s}", false)
}

// NamedWithTypes renders "#{p1,jdbcType=VARCHAR}" placeholders, adding
// ",typeHandler=<hint>" for columns carrying a marshal hint.
func NamedWithTypes() Strategy {
	return NamedStrategy("p", "#{%s}", true)
}

// ColonNamed renders ":p1", ":p2", ... placeholders, as used by sqlx.
func ColonNamed() Strategy {
	return NamedStrategy("p", ":%s", false)
}

// TryNamedStrategy names parameters prefix1, prefix2, ... and substitutes the
// name into template at its "%s" verb. With includeTypes the JDBC type and
// marshal hint follow the name inside the template. The template must hold
// exactly one "%s" so that every placeholder carries its own name.
func TryNamedStrategy(prefix, template string, includeTypes bool) (Strategy, error) {
	if strings.Count(template, "%s") != 1 {
		return Strategy{}, &ConfigurationError{Entity: "strategy", Field: "template", Reason: `must contain exactly one "%s"`}
	}
	return Strategy{
		Name: func(ordinal int) string { return prefix + strconv.Itoa(ordinal) },
		Format: func(b types.Binding) string {
			inner := b.Name
			if includeTypes {
				inner += ",jdbcType=" + b.Type.String()
				if b.MarshalHint != "" {
					inner += ",typeHandler=" + b.MarshalHint
				}
			}
			return strings.Replace(template, "%s", inner, 1)
		},
	}, nil
}

// NamedStrategy is TryNamedStrategy that panics on an invalid template.
func NamedStrategy(prefix, template string, includeTypes bool) Strategy {
	s, err := TryNamedStrategy(prefix, template, includeTypes)
	if err != nil {
		panic(err)
	}
	return s
}

// NumberedStrategy renders prefix followed by the ordinal, e.g. "$1" or "?1".
func NumberedStrategy(prefix string) Strategy {
	return Strategy{
		Name:   strconv.Itoa,
		Format: func(b types.Binding) string { return prefix + strconv.Itoa(b.Ordinal) },
	}
}
