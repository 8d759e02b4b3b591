package geoql

import (
	"database/sql"
	"fmt"

	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// L creates a literal. Literals are bound as generated parameters, never
// inlined into the SQL text.
func L(value any) types.Literal {
	return types.Literal{Value: value}
}

// TryFn creates a call to a canonical function, returning an error if the
// name is not a plain identifier.
func TryFn(name string, args ...types.Expr) (*types.FunctionCall, error) {
	return TryFnT(name, types.SpatialType{}, args...)
}

// Fn creates a call to a canonical function such as ST_Area. Dialects
// decide how the call is written.
func Fn(name string, args ...types.Expr) *types.FunctionCall {
	f, err := TryFn(name, args...)
	if err != nil {
		panic(err)
	}
	return f
}

// TryFnT creates a function call with an explicit result type.
func TryFnT(name string, t types.SpatialType, args ...types.Expr) (*types.FunctionCall, error) {
	if !render.IsValidIdentifier(name) {
		return nil, fmt.Errorf("invalid function name: %s", name)
	}
	if t.SRID < 0 {
		return nil, fmt.Errorf("invalid SRID %d for %s", t.SRID, name)
	}
	for i, arg := range args {
		if arg == nil {
			return nil, fmt.Errorf("%s argument %d is nil", name, i)
		}
	}
	return &types.FunctionCall{Name: name, Args: args, Type: t}, nil
}

// FnT creates a function call with an explicit result type. The type's
// SRID is used by the geometry constructors.
func FnT(name string, t types.SpatialType, args ...types.Expr) *types.FunctionCall {
	f, err := TryFnT(name, t, args...)
	if err != nil {
		panic(err)
	}
	return f
}

func tryGeometry(name string, value types.Expr, srid int) (*types.FunctionCall, error) {
	return TryFnT(name, types.SpatialType{Kind: types.KindGeometry, SRID: srid}, value)
}

func geometry(name string, value types.Expr, srid int) *types.FunctionCall {
	f, err := tryGeometry(name, value, srid)
	if err != nil {
		panic(err)
	}
	return f
}

// GeomFromText creates a geometry from well-known text. An SRID of 0
// leaves the spatial reference unspecified; a negative SRID panics.
func GeomFromText(wkt string, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromText, L(wkt), srid)
}

// GeomFromEWKT creates a geometry from extended well-known text. Dialects
// without extended formats use srid instead of the SRID= prefix.
func GeomFromEWKT(ewkt string, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromEWKT, L(ewkt), srid)
}

// GeomFromWKB creates a geometry from well-known binary.
func GeomFromWKB(wkb []byte, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromWKB, L(wkb), srid)
}

// GeomFromRawWKB creates a geometry from a buffer scanned into
// sql.RawBytes. The buffer is copied when the query is rendered, so the
// rows it came from may be advanced afterwards.
func GeomFromRawWKB(view sql.RawBytes, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromWKB, L(view), srid)
}

// GeomFromEWKB creates a geometry from extended well-known binary.
// SQL Server has no EWKB reader and renders this with STGeomFromWKB, which
// rejects the SRID flag; use GeomFromWKB there.
func GeomFromEWKB(ewkb []byte, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromEWKB, L(ewkb), srid)
}

// GeomFromTextParam creates a geometry from well-known text supplied as a
// query parameter.
func GeomFromTextParam(p types.Param, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromText, p, srid)
}

// GeomFromWKBParam creates a geometry from well-known binary supplied as a
// query parameter.
func GeomFromWKBParam(p types.Param, srid int) *types.FunctionCall {
	return geometry(types.FnGeomFromWKB, p, srid)
}
