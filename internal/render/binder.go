package render

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/types"
)

// binder accumulates the parameters of one render. The Nth call to bind
// produces the Nth placeholder and the Nth parameter.
type binder struct {
	strategy types.RenderingStrategy
	names    map[string]struct{}
	params   []types.Parameter
}

func newBinder(strategy types.RenderingStrategy) *binder {
	return &binder{
		strategy: strategy,
		names:    make(map[string]struct{}),
	}
}

// bind registers value and returns its placeholder.
func (b *binder) bind(value any, typ types.JDBCType, hint string) (string, error) {
	ordinal := len(b.params) + 1
	name := b.strategy.BindName(ordinal)
	if _, dup := b.names[name]; dup {
		return "", fmt.Errorf("%w: %q at position %d", ErrDuplicateBindName, name, ordinal)
	}
	b.names[name] = struct{}{}

	b.params = append(b.params, types.Parameter{
		Name:        name,
		Ordinal:     ordinal,
		Value:       value,
		Type:        typ,
		MarshalHint: hint,
	})
	return b.strategy.Placeholder(types.Binding{
		Name:        name,
		Ordinal:     ordinal,
		Type:        typ,
		MarshalHint: hint,
	}), nil
}

// bindColumn binds value with the type and marshal hint of col.
func (b *binder) bindColumn(col types.Column, value any) (string, error) {
	hint, _ := col.MarshalHint()
	return b.bind(value, col.JDBCType(), hint)
}
