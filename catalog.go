package dynsql

import (
	"fmt"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql/internal/types"
)

// Catalog hands out tables and columns declared by a DBML schema.
// Column types are derived from the schema's SQL types.
type Catalog struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]types.JDBCType // table -> column -> type
	order   map[string][]string                  // table -> column names in schema order
}

// NewCatalog creates a catalog from a DBML project.
// Columns whose SQL type has no JDBC equivalent are typed OTHER.
func NewCatalog(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, types.NewConfigurationError("catalog", "a project")
	}

	c := &Catalog{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]types.JDBCType),
		order:   make(map[string][]string),
	}

	for _, table := range project.Tables {
		c.tables[table.Name] = table
		c.columns[table.Name] = make(map[string]types.JDBCType)
		c.order[table.Name] = make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			typ, ok := types.ParseJDBCType(col.Type)
			if !ok {
				log().Warn("unmapped column type, using OTHER",
					"table", table.Name,
					"column", col.Name,
					"type", col.Type)
				typ = types.TypeOther
			}
			c.columns[table.Name][col.Name] = typ
			c.order[table.Name] = append(c.order[table.Name], col.Name)
		}
	}

	return c, nil
}

// Project returns the schema the catalog was built from.
func (c *Catalog) Project() *dbml.Project {
	return c.project
}

// TryT returns the named table, or an error if the schema does not declare it.
func (c *Catalog) TryT(name string) (types.Table, error) {
	if _, ok := c.tables[name]; !ok {
		return types.Table{}, &types.ConfigurationError{Entity: "table", Field: name, Reason: "not found in schema"}
	}
	return types.Table{Name: name}, nil
}

// T returns the named table.
func (c *Catalog) T(name string) types.Table {
	t, err := c.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryCol returns the named column of table, typed from the schema.
// table may carry an alias; its name must be declared by the schema.
func (c *Catalog) TryCol(table types.Table, name string) (types.Column, error) {
	cols, ok := c.columns[table.Name]
	if !ok {
		return types.Column{}, &types.ConfigurationError{Entity: "table", Field: table.Name, Reason: "not found in schema"}
	}
	typ, ok := cols[name]
	if !ok {
		return types.Column{}, &types.ConfigurationError{
			Entity: "column",
			Field:  name,
			Reason: fmt.Sprintf("not found in table %q", table.Name),
		}
	}
	return types.NewColumn(name, table, typ)
}

// Col returns the named column of table.
func (c *Catalog) Col(table types.Table, name string) types.Column {
	col, err := c.TryCol(table, name)
	if err != nil {
		panic(err)
	}
	return col
}

// TryColumns returns every column of table in schema order.
func (c *Catalog) TryColumns(table types.Table) ([]types.Column, error) {
	names, ok := c.order[table.Name]
	if !ok {
		return nil, &types.ConfigurationError{Entity: "table", Field: table.Name, Reason: "not found in schema"}
	}
	cols := make([]types.Column, 0, len(names))
	for _, name := range names {
		col, err := c.TryCol(table, name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// Columns returns every column of table in schema order.
func (c *Catalog) Columns(table types.Table) []types.Column {
	cols, err := c.TryColumns(table)
	if err != nil {
		panic(err)
	}
	return cols
}
