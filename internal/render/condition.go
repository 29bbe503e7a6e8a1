package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

// renderCondition writes cond to sql. Combinators and raw fragments wrap
// their own output in parentheses unless they are the root of the tree.
func renderCondition(cond types.Condition, sql *strings.Builder, ctx *renderContext, root bool) error {
	if cond == nil {
		return types.NewInvalidConditionError("where", "", "nil condition")
	}
	if err := cond.Validate(); err != nil {
		return err
	}
	switch c := cond.(type) {
	case types.Comparison:
		ref, err := ctx.column(c.Column)
		if err != nil {
			return err
		}
		ph, err := ctx.binder.bindColumn(c.Column, c.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(sql, "%s %s %s", ref, c.Operator, ph)

	case types.ColumnComparison:
		left, err := ctx.column(c.Left)
		if err != nil {
			return err
		}
		right, err := ctx.column(c.Right)
		if err != nil {
			return err
		}
		fmt.Fprintf(sql, "%s %s %s", left, c.Operator, right)

	case types.Between:
		ref, err := ctx.column(c.Column)
		if err != nil {
			return err
		}
		low, err := ctx.binder.bindColumn(c.Column, c.Low)
		if err != nil {
			return err
		}
		high, err := ctx.binder.bindColumn(c.Column, c.High)
		if err != nil {
			return err
		}
		sql.WriteString(ref)
		if c.Negated {
			sql.WriteString(" not")
		}
		fmt.Fprintf(sql, " between %s and %s", low, high)

	case types.In:
		ref, err := ctx.column(c.Column)
		if err != nil {
			return err
		}
		sql.WriteString(ref)
		if c.Negated {
			sql.WriteString(" not")
		}
		sql.WriteString(" in (")
		for i, v := range c.Values {
			if i > 0 {
				sql.WriteString(", ")
			}
			ph, err := ctx.binder.bindColumn(c.Column, v)
			if err != nil {
				return err
			}
			sql.WriteString(ph)
		}
		sql.WriteString(")")

	case types.IsNull:
		ref, err := ctx.column(c.Column)
		if err != nil {
			return err
		}
		sql.WriteString(ref)
		if c.Negated {
			sql.WriteString(" is not null")
		} else {
			sql.WriteString(" is null")
		}

	case types.And:
		return renderJunction("and", c.Left, c.Right, sql, ctx, root)

	case types.Or:
		return renderJunction("or", c.Left, c.Right, sql, ctx, root)

	case types.Not:
		if !root {
			sql.WriteString("(")
		}
		sql.WriteString("not ")
		if err := renderCondition(c.Child, sql, ctx, false); err != nil {
			return err
		}
		if !root {
			sql.WriteString(")")
		}

	case types.Exists:
		sub, err := ctx.withSubquery(c.Query)
		if err != nil {
			return err
		}
		if c.Negated {
			sql.WriteString("not ")
		}
		sql.WriteString("exists (")
		if err := renderSelect(c.Query, sql, sub); err != nil {
			return err
		}
		sql.WriteString(")")

	case types.Raw:
		if root {
			sql.WriteString(c.SQL)
		} else {
			sql.WriteString("(" + c.SQL + ")")
		}

	default:
		return fmt.Errorf("dynsql: unknown condition type %T", cond)
	}
	return nil
}

func renderJunction(keyword string, left, right types.Condition, sql *strings.Builder, ctx *renderContext, root bool) error {
	if !root {
		sql.WriteString("(")
	}
	if err := renderCondition(left, sql, ctx, false); err != nil {
		return err
	}
	sql.WriteString(" " + keyword + " ")
	if err := renderCondition(right, sql, ctx, false); err != nil {
		return err
	}
	if !root {
		sql.WriteString(")")
	}
	return nil
}
