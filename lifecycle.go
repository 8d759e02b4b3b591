package geoql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// Create runs the dialect's BeforeCreate hook, executes ddl and then runs
// AfterCreate. Nothing after a failing step is run.
func Create(ctx context.Context, db render.Execer, r Renderer, table types.Table, ddl string) error {
	if db == nil || r == nil {
		return fmt.Errorf("database and renderer are required")
	}
	if err := r.BeforeCreate(ctx, table, db); err != nil {
		return fmt.Errorf("%s: before create %s: %w", r.Name(), table.Name, err)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%s: create %s: %w", r.Name(), table.Name, err)
	}
	if err := r.AfterCreate(ctx, table, db); err != nil {
		return fmt.Errorf("%s: after create %s: %w", r.Name(), table.Name, err)
	}
	return nil
}

// Drop runs BeforeDrop, executes ddl and then runs AfterDrop.
func Drop(ctx context.Context, db render.Execer, r Renderer, table types.Table, ddl string) error {
	if db == nil || r == nil {
		return fmt.Errorf("database and renderer are required")
	}
	if err := r.BeforeDrop(ctx, table, db); err != nil {
		return fmt.Errorf("%s: before drop %s: %w", r.Name(), table.Name, err)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%s: drop %s: %w", r.Name(), table.Name, err)
	}
	if err := r.AfterDrop(ctx, table, db); err != nil {
		return fmt.Errorf("%s: after drop %s: %w", r.Name(), table.Name, err)
	}
	return nil
}

// ReflectColumn recognises geometry column types and fills in
// col.Spatial, then hands the column to the dialect's reflection hook.
// Columns of other types are left untouched and the hook is not called.
//
// Recognised forms are a bare kind ("geometry", "POINT") and the PostGIS
// typmod form "geometry(Point,4326)".
func ReflectColumn(r Renderer, table types.Table, col *render.ColumnInfo) error {
	if r == nil || col == nil {
		return fmt.Errorf("renderer and column are required")
	}
	t, ok := ParseSpatialType(col.Type)
	if !ok {
		return nil
	}
	col.Spatial = &t
	if err := r.ReflectGeometryColumn(table, col); err != nil {
		return fmt.Errorf("%s: reflect %s.%s: %w", r.Name(), table.Name, col.Name, err)
	}
	return nil
}

// ParseSpatialType parses a column type name into a SpatialType.
func ParseSpatialType(typeName string) (types.SpatialType, bool) {
	name := strings.TrimSpace(typeName)
	open := strings.IndexByte(name, '(')
	if open == -1 {
		kind, ok := types.ParseGeometryKind(name)
		return types.SpatialType{Kind: kind}, ok
	}

	if !strings.HasSuffix(name, ")") {
		return types.SpatialType{}, false
	}
	base, ok := types.ParseGeometryKind(name[:open])
	if !ok || base != types.KindGeometry {
		return types.SpatialType{}, false
	}

	parts := strings.Split(name[open+1:len(name)-1], ",")
	kind, ok := types.ParseGeometryKind(parts[0])
	if !ok || len(parts) > 2 {
		return types.SpatialType{}, false
	}
	t := types.SpatialType{Kind: kind}
	if len(parts) == 2 {
		srid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || srid < 0 {
			return types.SpatialType{}, false
		}
		t.SRID = srid
	}
	return t, true
}
