package render

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

// MaxSubqueryDepth bounds how deeply exists subqueries may nest.
const MaxSubqueryDepth = 8

// renderContext is the per-call state shared by every clause of one render,
// including nested subqueries.
type renderContext struct {
	aliases *AliasResolver
	binder  *binder
	scope   map[types.Table]struct{}
	caps    Capabilities
	depth   int
}

// withSubquery returns a child context sharing the resolver and binder.
// Columns in the subquery may reference its own tables and those of every
// enclosing query.
func (ctx *renderContext) withSubquery(m *types.SelectModel) (*renderContext, error) {
	if ctx.depth >= MaxSubqueryDepth {
		return nil, fmt.Errorf("dynsql: maximum subquery depth (%d) exceeded", MaxSubqueryDepth)
	}
	scope := maps.Clone(ctx.scope)
	for t := range scopeTables(m) {
		scope[t] = struct{}{}
	}
	return &renderContext{
		aliases: ctx.aliases,
		binder:  ctx.binder,
		scope:   scope,
		caps:    ctx.caps,
		depth:   ctx.depth + 1,
	}, nil
}

// Render converts a statement model into SQL text and its parameters.
// Nothing is returned on failure.
func Render(stmt types.Statement, strategy types.RenderingStrategy) (*types.RenderedStatement, error) {
	if stmt == nil {
		return nil, errors.New("dynsql: nil statement")
	}
	if err := checkStrategy(strategy); err != nil {
		return nil, err
	}

	aliases, err := ResolveAliases(stmt)
	if err != nil {
		return nil, err
	}
	ctx := &renderContext{
		aliases: aliases,
		binder:  newBinder(strategy),
		scope:   make(map[types.Table]struct{}),
		caps:    capabilitiesOf(strategy),
	}
	for t := range scopeTables(stmt) {
		ctx.scope[t] = struct{}{}
	}

	var sql strings.Builder
	switch m := stmt.(type) {
	case *types.SelectModel:
		err = renderSelect(m, &sql, ctx)
	case *types.InsertModel:
		err = renderInsert(m, &sql, ctx)
	case *types.UpdateModel:
		err = renderUpdate(m, &sql, ctx)
	case *types.DeleteModel:
		err = renderDelete(m, &sql, ctx)
	default:
		err = fmt.Errorf("dynsql: unsupported statement %T", stmt)
	}
	if err != nil {
		return nil, err
	}

	return &types.RenderedStatement{
		SQL:        sql.String(),
		Parameters: ctx.binder.params,
	}, nil
}

// checkStrategy rejects a nil strategy and a Strategy missing either function.
func checkStrategy(strategy types.RenderingStrategy) error {
	var s types.Strategy
	switch v := strategy.(type) {
	case nil:
		return errors.New("dynsql: nil rendering strategy")
	case types.Strategy:
		s = v
	case *types.Strategy:
		if v == nil {
			return errors.New("dynsql: nil rendering strategy")
		}
		s = *v
	default:
		return nil
	}
	if s.Name == nil {
		return types.NewConfigurationError("strategy", "a name function")
	}
	if s.Format == nil {
		return types.NewConfigurationError("strategy", "a format function")
	}
	return nil
}

// column renders a qualified column reference. The column's table must be
// in scope at this point of the statement.
func (ctx *renderContext) column(col types.Column) (string, error) {
	if _, ok := ctx.scope[col.Table()]; !ok {
		return "", &types.AliasResolutionError{Table: col.Table().QualifiedName(), Column: col.Name()}
	}
	return col.RenderWithAlias(ctx.aliases), nil
}

// table renders a table token, followed by its alias when it has one.
func (ctx *renderContext) table(t types.Table) string {
	if alias, ok := ctx.aliases.Lookup(t); ok {
		return t.QualifiedName() + " " + alias
	}
	return t.QualifiedName()
}

func renderWhere(stmt types.Statement, sql *strings.Builder, ctx *renderContext) error {
	where, ok := stmt.Where()
	if !ok {
		return nil
	}
	sql.WriteString(" where ")
	return renderCondition(where, sql, ctx, true)
}
