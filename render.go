package dynsql

import (
	"context"
	"log/slog"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Render converts a statement model into SQL text and its parameters.
// It either fully succeeds or returns an error and no result.
func Render(stmt types.Statement, strategy types.RenderingStrategy) (*types.RenderedStatement, error) {
	result, err := render.Render(stmt, strategy)
	if err != nil {
		log().Debug("render failed", "error", err)
		return nil, err
	}
	l := log()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("rendered statement",
			"operation", stmt.Operation(),
			"sql", result.SQL,
			"params", len(result.Parameters))
	}
	return result, nil
}

// MustRender renders stmt or panics on error.
func MustRender(stmt types.Statement, strategy types.RenderingStrategy) *types.RenderedStatement {
	result, err := Render(stmt, strategy)
	if err != nil {
		panic(err)
	}
	return result
}
