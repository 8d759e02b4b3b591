package mssql

import "github.com/zoobzio/geoql/internal/types"

// BindValue passes bound values to go-mssqldb unchanged.
func (r *Renderer) BindValue(_ types.SpatialType, value any) (any, error) {
	return value, nil
}
