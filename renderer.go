package geoql

import (
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// Renderer is implemented by every dialect package (mssql, postgres,
// mariadb). It combines the compiler-facing dialect methods with the DDL
// lifecycle hooks.
type Renderer interface {
	render.Dialect
	render.Lifecycle

	// Render converts an AST to a QueryResult with dialect-specific SQL.
	Render(ast *types.AST) (*types.QueryResult, error)
}
