package geoql

import (
	"fmt"

	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// RenderExpr renders a single expression, e.g. a function call used as a
// column default or inside hand-written SQL.
func RenderExpr(expr types.Expr, r Renderer) (*QueryResult, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	return render.RenderExpr(r, expr)
}
