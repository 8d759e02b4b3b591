package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/geoql/internal/types"
)

// testDialect is a minimal Dialect used by the package tests.
type testDialect struct {
	reg   *Registry
	bind  func(types.SpatialType, any) (any, error)
	style ParamStyle
}

func newTestDialect(style ParamStyle) *testDialect {
	return &testDialect{reg: NewRegistry(nil), style: style}
}

func (d *testDialect) Name() string { return "test" }

func (d *testDialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *testDialect) Placeholder(name string, position int) string {
	switch d.style {
	case ParamNumbered:
		return fmt.Sprintf("$%d", position)
	case ParamQuestion:
		return "?"
	default:
		return "@" + name
	}
}

func (d *testDialect) Capabilities() Capabilities {
	return Capabilities{ParamStyle: d.style}
}

func (d *testDialect) BindValue(t types.SpatialType, v any) (any, error) {
	if d.bind != nil {
		return d.bind(t, v)
	}
	return v, nil
}

func (d *testDialect) Registry() *Registry { return d.reg }
