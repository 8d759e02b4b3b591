// Package geoql renders spatial SQL for several database dialects.
//
// Queries are built as an expression tree of columns, parameters, literals
// and calls to canonical spatial functions (ST_Area, ST_Buffer, ...). A
// dialect renderer then decides how each call is written: PostGIS keeps the
// canonical names, SQL Server rewrites them into method calls on the
// geometry value, and MariaDB maps the few names it spells differently.
//
// # Basic Usage
//
//	import "github.com/zoobzio/geoql/mssql"
//
//	query := geoql.Select(geoql.T("parcels")).
//		Fields(geoql.Col("id")).
//		Field(geoql.Fn("ST_Area", geoql.Col("shape")), "area").
//		Where(geoql.Cond(
//			geoql.Fn("ST_Intersects", geoql.Col("shape"), geoql.GeomFromText("POLYGON((0 0, 1 0, 1 1, 0 0))", 4326)),
//			geoql.EQ,
//			geoql.L(1),
//		))
//
//	result, err := query.Render(mssql.MustNew())
//	// result.SQL: SELECT [id], [shape].STArea() AS [area] FROM [parcels]
//	//   WHERE [shape].STIntersects (geometry::STGeomFromText(@lit_1, 4326)) = @lit_2
//
// Literals are never inlined. Each one is bound under a generated name and
// returned in QueryResult.Bindings; QueryResult.Args combines them with
// caller-supplied parameter values into database/sql arguments.
//
// # Function Tables
//
// Every dialect registers its rewrite rules into a Registry when it is
// constructed. SQL Server's default table is mssql.Functions(); it can be
// extended with mssql.WithMapping or a YAML file via mssql.WithMappingFile:
//
//	ST_Perimeter: [STLength, polygon]
//	ST_X: [STX, point, property]
//	ST_MakeEnvelope: dbo_MakeEnvelope
//
// # Schema-Validated Usage
//
// A GeoQL instance created from a DBML project validates table and column
// references:
//
//	instance, err := geoql.NewFromDBML(project)
//	parcels := instance.T("parcels", "p")
//	shape := instance.C("shape")
package geoql

import (
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// AST represents the abstract syntax tree for a statement.
type AST = types.AST

// QueryResult contains the rendered SQL, required parameters and bound
// literal values.
type QueryResult = types.QueryResult

// Expr is any node of the expression tree.
type Expr = types.Expr

// Expression node types.
type (
	Column       = types.Column
	Param        = types.Param
	Literal      = types.Literal
	FunctionCall = types.FunctionCall
	Table        = types.Table
	Condition    = types.Condition
)

// Operator represents SQL comparison operators.
type Operator = types.Operator

// Re-export operation constants for public API.
const (
	OpSelect = types.OpSelect
	OpInsert = types.OpInsert
)

// SpatialType describes the geometry kind and SRID of a spatial value.
type SpatialType = types.SpatialType

// GeometryKind names a geometry type.
type GeometryKind = types.GeometryKind

// Re-export geometry kinds for public API.
const (
	KindGeometry           = types.KindGeometry
	KindPoint              = types.KindPoint
	KindLineString         = types.KindLineString
	KindPolygon            = types.KindPolygon
	KindMultiPoint         = types.KindMultiPoint
	KindMultiLineString    = types.KindMultiLineString
	KindMultiPolygon       = types.KindMultiPolygon
	KindGeometryCollection = types.KindGeometryCollection
)

// Rule describes how one canonical function is rendered by a dialect.
type Rule = render.Rule

// Mapping maps canonical function names to dialect rules.
type Mapping = render.Mapping

// Registry holds the compile hooks of one or more dialects.
type Registry = render.Registry

// Rule constructors.
var (
	Function = render.Function
	Method   = render.Method
	Property = render.Property
)

// LoadMapping reads a function mapping from YAML.
var LoadMapping = render.LoadMapping

// NewRegistry creates an empty registry that can be shared by dialects.
var NewRegistry = render.NewRegistry

// Capabilities describes the spatial SQL features supported by a dialect.
type Capabilities = render.Capabilities

// Errors returned by renderers.
type (
	UnsupportedFeatureError = render.UnsupportedFeatureError
	ConfigError             = render.ConfigError
	ArgumentError           = render.ArgumentError
	BindError               = render.BindError
)

// Execer is the subset of *sql.DB and *sql.Tx used by Create and Drop.
type Execer = render.Execer

// ColumnInfo describes a column being reflected.
type ColumnInfo = render.ColumnInfo
