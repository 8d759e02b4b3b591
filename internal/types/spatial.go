package types

import "strings"

// GeometryKind is the declared shape of a spatial column or value.
type GeometryKind string

const (
	KindGeometry           GeometryKind = "GEOMETRY"
	KindPoint              GeometryKind = "POINT"
	KindLineString         GeometryKind = "LINESTRING"
	KindPolygon            GeometryKind = "POLYGON"
	KindMultiPoint         GeometryKind = "MULTIPOINT"
	KindMultiLineString    GeometryKind = "MULTILINESTRING"
	KindMultiPolygon       GeometryKind = "MULTIPOLYGON"
	KindGeometryCollection GeometryKind = "GEOMETRYCOLLECTION"
)

// GeometryKinds lists every kind recognised when reflecting a column type.
var GeometryKinds = []GeometryKind{
	KindGeometry,
	KindPoint,
	KindLineString,
	KindPolygon,
	KindMultiPoint,
	KindMultiLineString,
	KindMultiPolygon,
	KindGeometryCollection,
}

// ParseGeometryKind maps a database type name to a GeometryKind.
// The match is case-insensitive.
func ParseGeometryKind(name string) (GeometryKind, bool) {
	upper := GeometryKind(strings.ToUpper(strings.TrimSpace(name)))
	for _, k := range GeometryKinds {
		if k == upper {
			return k, true
		}
	}
	return "", false
}

// SpatialType describes the spatial result type of an expression.
// An SRID of 0 means unspecified.
type SpatialType struct {
	Kind GeometryKind
	SRID int
}

// IsZero reports whether the type carries no information.
func (t SpatialType) IsZero() bool {
	return t.Kind == "" && t.SRID == 0
}
