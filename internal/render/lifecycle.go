package render

import (
	"context"
	"database/sql"

	"github.com/zoobzio/geoql/internal/types"
)

// Execer is the subset of *sql.DB and *sql.Tx used by lifecycle hooks.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ColumnInfo describes a column being reflected. Spatial is filled in when
// the column type names a geometry kind.
type ColumnInfo struct {
	Spatial  *types.SpatialType
	Name     string
	Type     string
	Nullable bool
}

// Lifecycle hooks are called around table creation and drop and while
// reflecting columns. Dialects without spatial catalog bookkeeping embed
// NopLifecycle.
type Lifecycle interface {
	BeforeCreate(ctx context.Context, table types.Table, db Execer) error
	AfterCreate(ctx context.Context, table types.Table, db Execer) error
	BeforeDrop(ctx context.Context, table types.Table, db Execer) error
	AfterDrop(ctx context.Context, table types.Table, db Execer) error
	ReflectGeometryColumn(table types.Table, column *ColumnInfo) error
}

// NopLifecycle implements Lifecycle with hooks that do nothing.
type NopLifecycle struct{}

func (NopLifecycle) BeforeCreate(context.Context, types.Table, Execer) error { return nil }
func (NopLifecycle) AfterCreate(context.Context, types.Table, Execer) error  { return nil }
func (NopLifecycle) BeforeDrop(context.Context, types.Table, Execer) error   { return nil }
func (NopLifecycle) AfterDrop(context.Context, types.Table, Execer) error    { return nil }

func (NopLifecycle) ReflectGeometryColumn(types.Table, *ColumnInfo) error { return nil }
