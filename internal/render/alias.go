package render

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/zoobzio/dynsql/internal/types"
)

// AliasResolver maps each table of one statement to the alias its columns
// are qualified with. It is built once per render and never modified after.
type AliasResolver struct {
	aliases map[types.Table]string
	known   map[types.Table]struct{}
}

// BuildAliasResolver assigns aliases to root and tables in the order given.
// Repeated tables are listed once. Caller-supplied aliases are kept and may
// not be shared by two different tables. When more than one distinct table
// is present, every table without one receives the next free tN name; a lone
// table without a caller alias stays unqualified.
func BuildAliasResolver(root types.Table, tables ...types.Table) (*AliasResolver, error) {
	r := &AliasResolver{
		aliases: make(map[types.Table]string),
		known:   make(map[types.Table]struct{}),
	}

	var ordered []types.Table
	for _, t := range append([]types.Table{root}, tables...) {
		if _, seen := r.known[t]; seen || t.Name == "" {
			continue
		}
		r.known[t] = struct{}{}
		ordered = append(ordered, t)
	}

	taken := make(map[string]types.Table)
	for _, t := range ordered {
		if t.Alias == "" {
			continue
		}
		if other, ok := taken[t.Alias]; ok {
			return nil, &types.ConfigurationError{
				Entity: "table",
				Field:  t.QualifiedName(),
				Reason: fmt.Sprintf("alias %q is already used by %s", t.Alias, other.QualifiedName()),
			}
		}
		r.aliases[t] = t.Alias
		taken[t.Alias] = t
	}
	if len(ordered) < 2 {
		return r, nil
	}

	next := 1
	for _, t := range ordered {
		if t.Alias != "" {
			continue
		}
		name := "t" + strconv.Itoa(next)
		for {
			if _, ok := taken[name]; !ok {
				break
			}
			next++
			name = "t" + strconv.Itoa(next)
		}
		next++
		r.aliases[t] = name
		taken[name] = t
	}
	return r, nil
}

// ResolveAliases collects the tables stmt brings into scope, its own FROM
// and joins followed by those of every exists subquery, and builds the
// resolver from them in first-encounter order. A table brought into scope
// twice cannot be told apart and is rejected.
func ResolveAliases(stmt types.Statement) (*AliasResolver, error) {
	c := &scopeCollector{seen: make(map[types.Table]struct{})}
	if err := c.statement(stmt); err != nil {
		return nil, err
	}
	return BuildAliasResolver(stmt.Table(), c.tables...)
}

// Lookup returns the alias assigned to table.
func (r *AliasResolver) Lookup(table types.Table) (string, bool) {
	alias, ok := r.aliases[table]
	return alias, ok
}

// Known reports whether table is part of the statement.
func (r *AliasResolver) Known(table types.Table) bool {
	_, ok := r.known[table]
	return ok
}

// scopeTables yields the tables a statement itself brings into scope:
// its target table and, for selects, every joined table.
func scopeTables(stmt types.Statement) iter.Seq[types.Table] {
	return func(yield func(types.Table) bool) {
		if !yield(stmt.Table()) {
			return
		}
		if m, ok := stmt.(*types.SelectModel); ok {
			for j := range m.Joins() {
				if !yield(j.Table) {
					return
				}
			}
		}
	}
}

type scopeCollector struct {
	seen   map[types.Table]struct{}
	tables []types.Table
}

func (c *scopeCollector) statement(stmt types.Statement) error {
	for t := range scopeTables(stmt) {
		if _, dup := c.seen[t]; dup {
			return &types.ConfigurationError{
				Entity: "table",
				Field:  t.QualifiedName(),
				Reason: "appears more than once in the statement, give each occurrence its own alias",
			}
		}
		c.seen[t] = struct{}{}
		c.tables = append(c.tables, t)
	}
	if m, ok := stmt.(*types.SelectModel); ok {
		for j := range m.Joins() {
			if err := c.condition(j.On); err != nil {
				return err
			}
		}
	}
	if where, ok := stmt.Where(); ok {
		return c.condition(where)
	}
	return nil
}

// condition descends into exists subqueries; other nodes add no tables.
func (c *scopeCollector) condition(cond types.Condition) error {
	switch n := cond.(type) {
	case types.And:
		if err := c.condition(n.Left); err != nil {
			return err
		}
		return c.condition(n.Right)
	case types.Or:
		if err := c.condition(n.Left); err != nil {
			return err
		}
		return c.condition(n.Right)
	case types.Not:
		return c.condition(n.Child)
	case types.Exists:
		if n.Query != nil {
			return c.statement(n.Query)
		}
	}
	return nil
}
