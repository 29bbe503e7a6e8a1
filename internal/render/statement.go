package render

import (
	"iter"
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

func renderSelect(m *types.SelectModel, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("select ")
	if m.IsDistinct() {
		sql.WriteString("distinct ")
	}

	if m.IsCount() {
		sql.WriteString("count(*)")
	} else {
		n := 0
		for col := range m.Columns() {
			if n > 0 {
				sql.WriteString(", ")
			}
			ref, err := ctx.column(col)
			if err != nil {
				return err
			}
			sql.WriteString(ref)
			if alias, ok := col.Alias(); ok {
				sql.WriteString(" as " + alias)
			}
			n++
		}
		if n == 0 {
			sql.WriteString("*")
		}
	}

	sql.WriteString(" from ")
	sql.WriteString(ctx.table(m.Table()))

	for join := range m.Joins() {
		switch {
		case join.Type == types.FullJoin && !ctx.caps.FullJoin:
			return NewUnsupportedFeatureError(ctx.caps.Dialect, "FULL JOIN", "combine a LEFT JOIN and a RIGHT JOIN with UNION")
		case join.Type == types.RightJoin && !ctx.caps.RightJoin:
			return NewUnsupportedFeatureError(ctx.caps.Dialect, "RIGHT JOIN", "swap the tables and use a LEFT JOIN")
		}
		sql.WriteString(" " + string(join.Type) + " ")
		sql.WriteString(ctx.table(join.Table))
		sql.WriteString(" on ")
		if err := renderCondition(join.On, sql, ctx, true); err != nil {
			return err
		}
	}

	if err := renderWhere(m, sql, ctx); err != nil {
		return err
	}

	if err := renderColumnList(" group by ", m.GroupBy(), sql, ctx, false); err != nil {
		return err
	}
	if err := renderColumnList(" order by ", m.OrderBy(), sql, ctx, true); err != nil {
		return err
	}

	limit, hasLimit := m.Limit()
	offset, hasOffset := m.Offset()
	if (hasLimit || hasOffset) && !ctx.caps.LimitOffset {
		return NewUnsupportedFeatureError(ctx.caps.Dialect, "LIMIT/OFFSET", "use OFFSET ... FETCH NEXT ... ROWS ONLY")
	}
	if hasLimit {
		ph, err := ctx.binder.bind(limit, types.TypeBigint, "")
		if err != nil {
			return err
		}
		sql.WriteString(" limit " + ph)
	}
	if hasOffset {
		ph, err := ctx.binder.bind(offset, types.TypeBigint, "")
		if err != nil {
			return err
		}
		sql.WriteString(" offset " + ph)
	}
	return nil
}

// renderColumnList writes prefix followed by the columns, or nothing when
// there are none. Sort lists prefer the column alias and honour direction.
func renderColumnList(prefix string, cols iter.Seq[types.Column], sql *strings.Builder, ctx *renderContext, sort bool) error {
	n := 0
	for col := range cols {
		if n == 0 {
			sql.WriteString(prefix)
		} else {
			sql.WriteString(", ")
		}
		n++

		if alias, ok := col.Alias(); ok && sort {
			sql.WriteString(alias)
		} else {
			ref, err := ctx.column(col)
			if err != nil {
				return err
			}
			sql.WriteString(ref)
		}
		if sort && col.IsDescending() {
			sql.WriteString(" desc")
		}
	}
	return nil
}

func renderInsert(m *types.InsertModel, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("insert into ")
	sql.WriteString(m.Table().QualifiedName())

	var cols []types.Column
	sql.WriteString(" (")
	for col := range m.Columns() {
		if _, err := ctx.column(col); err != nil {
			return err
		}
		if len(cols) > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString(col.Name())
		cols = append(cols, col)
	}
	sql.WriteString(") values ")

	r := 0
	for row := range m.Rows() {
		if r > 0 {
			sql.WriteString(", ")
		}
		r++
		sql.WriteString("(")
		for i, v := range row {
			if i > 0 {
				sql.WriteString(", ")
			}
			ph, err := ctx.binder.bindColumn(cols[i], v)
			if err != nil {
				return err
			}
			sql.WriteString(ph)
		}
		sql.WriteString(")")
	}
	return nil
}

func renderUpdate(m *types.UpdateModel, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("update ")
	sql.WriteString(ctx.table(m.Table()))
	sql.WriteString(" set ")

	n := 0
	for mapping := range m.Mappings() {
		if n > 0 {
			sql.WriteString(", ")
		}
		n++
		if _, err := ctx.column(mapping.Column()); err != nil {
			return err
		}
		// SET targets are never qualified.
		sql.WriteString(mapping.Column().Name())
		sql.WriteString(" = ")

		switch mapping.Kind() {
		case types.MapValue:
			ph, err := ctx.binder.bindColumn(mapping.Column(), mapping.Value())
			if err != nil {
				return err
			}
			sql.WriteString(ph)
		case types.MapColumn:
			ref, err := ctx.column(mapping.Source())
			if err != nil {
				return err
			}
			sql.WriteString(ref)
		case types.MapNull:
			sql.WriteString("null")
		case types.MapConstant:
			sql.WriteString(mapping.Constant())
		}
	}

	return renderWhere(m, sql, ctx)
}

func renderDelete(m *types.DeleteModel, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("delete from ")
	sql.WriteString(ctx.table(m.Table()))
	return renderWhere(m, sql, ctx)
}
