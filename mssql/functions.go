package mssql

import (
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// Functions returns the default function table. Geometry functions are
// rendered as methods on their first argument. The table is a fresh copy
// and may be modified by the caller.
//
// Not mapped yet: STCurveN, STNumCurves, BufferWithCurves,
// BufferWithTolerance, CurveToLineWithTolerance, Filter, HasM, HasZ,
// InstanceOf, IsNull, Reduce, MinDbCompatibilityLevel, ToString, Z.
func Functions() render.Mapping {
	g := types.KindGeometry
	return render.Mapping{
		"ST_Area":            render.Method("STArea", g),
		"ST_AsBinary":        render.Method("STAsBinary", g),
		"ST_AsEWKB":          render.Method("STAsBinary", g),
		"ST_AsText":          render.Method("STAsText", g),
		"ST_Boundary":        render.Method("STBoundary", g),
		"ST_Buffer":          render.Method("STBuffer", g),
		"ST_Centroid":        render.Method("STCentroid", g),
		"ST_Contains":        render.Method("STContains", g),
		"ST_ConvexHull":      render.Method("STConvexHull", g),
		"ST_Crosses":         render.Method("STCrosses", g),
		"ST_CurveToLine":     render.Method("STCurveToLine", g),
		"ST_Difference":      render.Method("STDifference", g),
		"ST_Dimension":       render.Method("STDimension", g),
		"ST_Disjoint":        render.Method("STDisjoint", g),
		"ST_Distance":        render.Method("STDistance", g),
		"ST_EndPoint":        render.Method("STEndPoint", g),
		"ST_Envelope":        render.Method("STEnvelope", g),
		"ST_Equals":          render.Method("STEquals", g),
		"ST_ExteriorRing":    render.Method("STExteriorRing", g),
		"ST_GeometryN":       render.Method("STGeometryN", g),
		"ST_GeometryType":    render.Method("STGeometryType", g),
		"ST_InteriorRingN":   render.Method("STInteriorRingN", g),
		"ST_Intersection":    render.Method("STIntersection", g),
		"ST_Intersects":      render.Method("STIntersects", g),
		"ST_IsClosed":        render.Method("STIsClosed", g),
		"ST_IsEmpty":         render.Method("STIsEmpty", g),
		"ST_IsRing":          render.Method("STIsRing", g),
		"ST_IsSimple":        render.Method("STIsSimple", g),
		"ST_IsValid":         render.Method("STIsValid", g),
		"ST_Length":          render.Method("STLength", g),
		"ST_NumGeometries":   render.Method("STNumGeometries", g),
		"ST_NumInteriorRing": render.Method("STNumInteriorRing", g),
		"ST_NumPoints":       render.Method("STNumPoints", g),
		"ST_Overlaps":        render.Method("STOverlaps", g),
		"ST_PointN":          render.Method("STPointN", g),
		"ST_PointOnSurface":  render.Method("STPointOnSurface", g),
		"ST_Relate":          render.Method("STRelate", g),
		"ST_SRID":            render.Property("STSrid", g),
		"ST_StartPoint":      render.Method("STStartPoint", g),
		"ST_SymDifference":   render.Method("STSymDifference", g),
		"ST_Touches":         render.Method("STTouches", g),
		"ST_Union":           render.Method("STUnion", g),
		"ST_Within":          render.Method("STWithin", g),
		"ST_X":               render.Property("STX", g),
		"ST_Y":               render.Property("STY", g),
		"ST_IsValidDetail":   render.Method("IsValidDetail", g),
		"ST_M":               render.Property("M", g),
		"ST_MakeValid":       render.Method("MakeValid", g),
		"ST_ShortestLine":    render.Method("ShortestLineTo", g),

		// Kept for a complete table; Register installs the constructor
		// hooks under these names instead.
		types.FnGeomFromEWKT: render.Function("STGeomFromText"),
		types.FnGeomFromText: render.Function("STGeomFromText"),
		types.FnGeomFromEWKB: render.Function("STGeomFromWKB"),
		types.FnGeomFromWKB:  render.Function("STGeomFromWKB"),
	}
}

// Register installs a function table and the geometry constructors into
// reg. The constructors take precedence over table entries for the same
// names; those entries are skipped rather than registered and replaced.
func Register(reg *render.Registry, mapping render.Mapping, split render.SplitMode) error {
	constructors := constructorHooks()
	table := make(render.Mapping, len(mapping))
	for name, rule := range mapping {
		if _, ok := constructors[name]; !ok {
			table[name] = rule
		}
	}

	if err := render.RegisterMapping(reg, DialectName, table, split); err != nil {
		return err
	}
	return registerConstructors(reg, constructors)
}
