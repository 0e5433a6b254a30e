// Package query builds parameterized PostgreSQL SELECT statements from a
// projection of view field names onto table columns.
package query

import "strings"

// ProjectionMap maps view field names (Go struct field names) to qualified table columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project adds a column to the projection under the given view name.
// Columns are emitted in the order they are projected.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns = append(p.columns, qualified)
	p.fields[viewName] = qualified
	return p
}

// Table returns the qualified table reference with alias.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column resolves a view name to its qualified column.
// Unknown names are returned unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.fields[viewName]; ok {
		return col
	}
	return viewName
}

// Has reports whether the view name is part of the projection.
func (p *ProjectionMap) Has(viewName string) bool {
	_, ok := p.fields[viewName]
	return ok
}

// Columns returns the comma-separated column list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns a copy of the projected columns.
func (p *ProjectionMap) ColumnList() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}
