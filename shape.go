package geoql

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
	"github.com/zoobzio/geoql/internal/types"
)

// FromShape converts a go-geom geometry into a well-known binary
// constructor. The SRID is taken from the shape.
func FromShape(g geom.T) (*types.FunctionCall, error) {
	if isNilShape(g) {
		return nil, fmt.Errorf("shape is nil")
	}
	data, err := wkb.Marshal(g, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shape as WKB: %w", err)
	}
	return tryGeometry(types.FnGeomFromWKB, L(data), g.SRID())
}

// FromShapeText converts a go-geom geometry into a well-known text
// constructor. The SRID is taken from the shape.
func FromShapeText(g geom.T) (*types.FunctionCall, error) {
	if isNilShape(g) {
		return nil, fmt.Errorf("shape is nil")
	}
	text, err := wkt.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shape as WKT: %w", err)
	}
	return tryGeometry(types.FnGeomFromText, L(text), g.SRID())
}

// FromShapeExtended converts a go-geom geometry into an extended
// well-known binary constructor carrying the shape's SRID. SQL Server
// cannot read EWKB; use FromShape for that dialect.
func FromShapeExtended(g geom.T) (*types.FunctionCall, error) {
	if isNilShape(g) {
		return nil, fmt.Errorf("shape is nil")
	}
	data, err := ewkb.Marshal(g, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shape as EWKB: %w", err)
	}
	return tryGeometry(types.FnGeomFromEWKB, L(data), g.SRID())
}

// FromGeoJSON decodes a GeoJSON geometry object into a well-known binary
// constructor with the given SRID.
func FromGeoJSON(data []byte, srid int) (*types.FunctionCall, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}
	if isNilShape(g) {
		return nil, fmt.Errorf("GeoJSON document holds no geometry")
	}
	encoded, err := wkb.Marshal(g, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shape as WKB: %w", err)
	}
	return tryGeometry(types.FnGeomFromWKB, L(encoded), srid)
}

// isNilShape reports whether g is nil or a nil pointer wrapped in geom.T.
func isNilShape(g geom.T) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ToShape decodes well-known binary, such as the result of ST_AsBinary,
// into a go-geom geometry. The input may be a sql.RawBytes buffer; the
// returned geometry does not reference it.
func ToShape(data []byte) (geom.T, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode WKB: %w", err)
	}
	return g, nil
}

// ToShapeExtended decodes extended well-known binary, keeping its SRID.
func ToShapeExtended(data []byte) (geom.T, error) {
	g, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode EWKB: %w", err)
	}
	return g, nil
}
