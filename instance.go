package geoql

import (
	"fmt"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/geoql/internal/types"
)

// GeoQL validates table and column references against a DBML schema.
type GeoQL struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column
}

// NewFromDBML creates a GeoQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*GeoQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	g := &GeoQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		g.tables[table.Name] = table
		g.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			g.columns[table.Name][col.Name] = col
		}
	}

	return g, nil
}

// Project returns the schema the instance validates against.
func (g *GeoQL) Project() *dbml.Project {
	return g.project
}

func (g *GeoQL) validateTable(name string) error {
	if _, ok := g.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

func (g *GeoQL) validateColumn(name string) error {
	for _, cols := range g.columns {
		if _, ok := cols[name]; ok {
			return nil
		}
	}
	return fmt.Errorf("column '%s' not found in schema", name)
}

// TryT creates a validated table reference, returning an error if invalid.
func (g *GeoQL) TryT(name string, alias ...string) (types.Table, error) {
	if err := g.validateTable(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return TryT(name, alias...)
}

// T creates a validated table reference.
func (g *GeoQL) T(name string, alias ...string) types.Table {
	t, err := g.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a validated column reference, returning an error if no
// table in the schema has the column. A qualifier must be a table of the
// schema that has the column, or a single-letter alias.
func (g *GeoQL) TryC(name string, table ...string) (types.Column, error) {
	if err := g.validateColumn(name); err != nil {
		return types.Column{}, fmt.Errorf("invalid column: %w", err)
	}
	if len(table) > 0 && !isValidTableAlias(table[0]) {
		cols, ok := g.columns[table[0]]
		if !ok {
			return types.Column{}, fmt.Errorf("invalid column: table '%s' not found in schema", table[0])
		}
		if _, ok := cols[name]; !ok {
			return types.Column{}, fmt.Errorf("invalid column: '%s' not found in table '%s'", name, table[0])
		}
	}
	return TryCol(name, table...)
}

// C creates a validated column reference.
func (g *GeoQL) C(name string, table ...string) types.Column {
	c, err := g.TryC(name, table...)
	if err != nil {
		panic(err)
	}
	return c
}
