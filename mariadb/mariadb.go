// Package mariadb provides the MariaDB dialect renderer for geoql.
//
// MariaDB has no extended WKT or WKB formats. ST_AsEWKB and ST_AsEWKT fall
// back to their strict equivalents, and the EWKT/EWKB constructors are
// rejected.
package mariadb

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// DialectName is the name hooks are registered under.
const DialectName = "mariadb"

const extendedHint = "MariaDB has no extended formats, use ST_GeomFromText or ST_GeomFromWKB with an SRID"

// Renderer implements the MariaDB dialect renderer.
type Renderer struct {
	render.NopLifecycle
	registry *render.Registry
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	log      logrus.FieldLogger
	registry *render.Registry
}

// WithLogger sets the logger used by the renderer's registry.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithRegistry registers hooks into an existing registry instead of a new one.
func WithRegistry(reg *render.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// Functions returns the default function table.
func Functions() render.Mapping {
	return render.Mapping{
		types.FnAsEWKB: render.Function("ST_AsBinary"),
		types.FnAsEWKT: render.Function("ST_AsText"),
	}
}

// New creates a new MariaDB renderer.
func New(opts ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := cfg.registry
	if reg == nil {
		reg = render.NewRegistry(cfg.log)
	}
	if err := render.RegisterMapping(reg, DialectName, Functions(), render.SplitArguments); err != nil {
		return nil, fmt.Errorf("mariadb: %w", err)
	}

	hooks := map[string]render.Hook{
		types.FnGeomFromText: {Compile: render.FromText(types.FnGeomFromText), Source: "constructor " + types.FnGeomFromText},
		types.FnGeomFromWKB:  {Compile: render.FromBinary(types.FnGeomFromWKB), Source: "constructor " + types.FnGeomFromWKB},
		types.FnGeomFromEWKT: {Compile: render.Unsupported(DialectName, extendedHint), Source: "unsupported"},
		types.FnGeomFromEWKB: {Compile: render.Unsupported(DialectName, extendedHint), Source: "unsupported"},
	}
	for name, hook := range hooks {
		if err := reg.Register(DialectName, name, hook); err != nil {
			return nil, fmt.Errorf("mariadb: %w", err)
		}
	}

	return &Renderer{registry: reg}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return DialectName
}

// QuoteIdentifier quotes a MariaDB identifier with backticks.
func (r *Renderer) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Placeholder returns the ? placeholder used by go-sql-driver/mysql.
func (r *Renderer) Placeholder(string, int) string {
	return "?"
}

// Registry returns the registry holding the renderer's compile hooks.
func (r *Renderer) Registry() *render.Registry {
	return r.registry
}

// BindValue copies borrowed driver buffers. go-sql-driver/mysql may hold
// on to argument slices until the statement is executed.
func (r *Renderer) BindValue(_ types.SpatialType, value any) (any, error) {
	if raw, ok := value.(sql.RawBytes); ok {
		return bytes.Clone([]byte(raw)), nil
	}
	return value, nil
}

// Render converts an AST to a QueryResult with MariaDB SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return render.RenderAST(r, ast)
}

// RenderExpr renders a single expression.
func (r *Renderer) RenderExpr(expr types.Expr) (*types.QueryResult, error) {
	return render.RenderExpr(r, expr)
}

// Capabilities returns the spatial SQL features supported by MariaDB.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		MethodCalls:      false,
		ExtendedLiterals: false,
		ParamStyle:       render.ParamQuestion,
	}
}
