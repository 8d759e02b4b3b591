package mssql

import (
	"context"

	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// SQL Server keeps no spatial catalog of its own to maintain, and spatial
// indexes are created explicitly, so the lifecycle hooks do nothing.

// BeforeCreate is called before a table is created.
func (r *Renderer) BeforeCreate(context.Context, types.Table, render.Execer) error {
	return nil
}

// AfterCreate is called after a table is created.
func (r *Renderer) AfterCreate(context.Context, types.Table, render.Execer) error {
	return nil
}

// BeforeDrop is called before a table is dropped.
func (r *Renderer) BeforeDrop(context.Context, types.Table, render.Execer) error {
	return nil
}

// AfterDrop is called after a table is dropped.
func (r *Renderer) AfterDrop(context.Context, types.Table, render.Execer) error {
	return nil
}

// ReflectGeometryColumn is called for each reflected geometry column.
func (r *Renderer) ReflectGeometryColumn(types.Table, *render.ColumnInfo) error {
	return nil
}
