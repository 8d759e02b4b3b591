// Package postgres provides the PostGIS dialect renderer for geoql.
package postgres

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// DialectName is the name hooks are registered under.
const DialectName = "postgres"

// Renderer implements the PostGIS dialect renderer. Canonical ST_* names
// are PostGIS names, so only the geometry constructors carry hooks.
type Renderer struct {
	render.NopLifecycle
	registry *render.Registry
}

type config struct {
	log      logrus.FieldLogger
	registry *render.Registry
	mapping  render.Mapping
}

// Option configures a Renderer.
type Option func(*config)

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

// WithMapping registers additional rewrite rules, e.g. to route a
// canonical name to a schema-qualified function.
func WithMapping(m render.Mapping) Option {
	return func(c *config) {
		c.mapping = c.mapping.Merge(m)
	}
}

// New creates a new PostGIS renderer.
func New(opts ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := cfg.registry
	if reg == nil {
		reg = render.NewRegistry(cfg.log)
	}
	if err := render.RegisterMapping(reg, DialectName, cfg.mapping, render.SplitArguments); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	if err := registerConstructors(reg); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
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

func registerConstructors(reg *render.Registry) error {
	hooks := map[string]render.Hook{
		types.FnGeomFromText: {Compile: render.FromText(types.FnGeomFromText), Source: "constructor " + types.FnGeomFromText},
		types.FnGeomFromWKB:  {Compile: render.FromBinary(types.FnGeomFromWKB), Source: "constructor " + types.FnGeomFromWKB},
		types.FnGeomFromEWKT: {Compile: render.FromExtended(types.FnGeomFromEWKT), Source: "constructor " + types.FnGeomFromEWKT},
		types.FnGeomFromEWKB: {Compile: render.FromExtended(types.FnGeomFromEWKB), Source: "constructor " + types.FnGeomFromEWKB},
	}
	for name, hook := range hooks {
		if err := reg.Register(DialectName, name, hook); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return DialectName
}

// QuoteIdentifier quotes a PostgreSQL identifier with double quotes.
func (r *Renderer) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Placeholder returns the positional $n placeholder used by pgx.
func (r *Renderer) Placeholder(_ string, position int) string {
	return fmt.Sprintf("$%d", position)
}

// Registry returns the registry holding the renderer's compile hooks.
func (r *Renderer) Registry() *render.Registry {
	return r.registry
}

// BindValue passes bound values to pgx unchanged.
func (r *Renderer) BindValue(_ types.SpatialType, value any) (any, error) {
	return value, nil
}

// Render converts an AST to a QueryResult with PostgreSQL SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return render.RenderAST(r, ast)
}

// RenderExpr renders a single expression.
func (r *Renderer) RenderExpr(expr types.Expr) (*types.QueryResult, error) {
	return render.RenderExpr(r, expr)
}

// Capabilities returns the spatial SQL features supported by PostGIS.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		MethodCalls:      false,
		ExtendedLiterals: true,
		ParamStyle:       render.ParamNumbered,
	}
}
