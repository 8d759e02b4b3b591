// Package mssql provides the SQL Server dialect renderer for geoql.
//
// Canonical spatial functions are rewritten into SQL Server's method-call
// syntax, so ST_Area(shape) renders as [shape].STArea() and
// ST_Buffer(shape, d) as [shape].STBuffer (@d). Geometry literals are built
// with geometry::STGeomFromText and geometry::STGeomFromWKB.
package mssql

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// DialectName is the name hooks are registered under.
const DialectName = "mssql"

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	registry *render.Registry
	mapping  render.Mapping
	split    render.SplitMode
}

type config struct {
	log       logrus.FieldLogger
	registry  *render.Registry
	overrides []func() (render.Mapping, error)
	split     render.SplitMode
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
// Renderers sharing a registry share its hooks: each New overwrites the
// entries it registers, split mode included, and leaves the rest in place.
// Mapping and ArgumentSplit then describe the table a renderer was built
// with, not necessarily what the registry renders.
func WithRegistry(reg *render.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithMapping overlays entries on the default function table.
// Later options win over earlier ones.
func WithMapping(m render.Mapping) Option {
	return func(c *config) {
		c.overrides = append(c.overrides, func() (render.Mapping, error) {
			return m, nil
		})
	}
}

// WithMappingFile overlays entries read from a YAML mapping file.
func WithMappingFile(path string) Option {
	return func(c *config) {
		c.overrides = append(c.overrides, func() (render.Mapping, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("failed to open mapping file: %w", err)
			}
			defer f.Close()

			m, err := render.LoadMapping(f)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return m, nil
		})
	}
}

// WithLegacyArgumentSplit renders method calls by splitting the joined
// argument text on commas, keeping only the first argument after the
// receiver. Arguments that contain commas are split incorrectly; use this
// only where output must match SQL produced by older versions.
func WithLegacyArgumentSplit() Option {
	return func(c *config) {
		c.split = render.SplitLegacy
	}
}

// New creates a new SQL Server renderer with its function table registered.
func New(opts ...Option) (*Renderer, error) {
	cfg := config{split: render.SplitArguments}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logrus.StandardLogger()
	}

	overrides := make([]render.Mapping, 0, len(cfg.overrides))
	for _, load := range cfg.overrides {
		m, err := load()
		if err != nil {
			return nil, fmt.Errorf("mssql: %w", err)
		}
		overrides = append(overrides, m)
	}
	mapping := Functions().Merge(overrides...)

	reg := cfg.registry
	if reg == nil {
		reg = render.NewRegistry(cfg.log)
	}
	if err := Register(reg, mapping, cfg.split); err != nil {
		return nil, fmt.Errorf("mssql: %w", err)
	}

	return &Renderer{
		registry: reg,
		mapping:  mapping,
		split:    cfg.split,
	}, nil
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

// QuoteIdentifier quotes a SQL Server identifier with square brackets.
func (r *Renderer) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, "]", "]]")
	return "[" + escaped + "]"
}

// Placeholder returns the @name placeholder used by go-mssqldb.
func (r *Renderer) Placeholder(name string, _ int) string {
	return "@" + name
}

// Registry returns the registry holding the renderer's compile hooks.
func (r *Renderer) Registry() *render.Registry {
	return r.registry
}

// Mapping returns a copy of the function table the renderer registered.
func (r *Renderer) Mapping() render.Mapping {
	return r.mapping.Merge()
}

// ArgumentSplit returns how method-call arguments are split.
func (r *Renderer) ArgumentSplit() render.SplitMode {
	return r.split
}

// Render converts an AST to a QueryResult with SQL Server SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return render.RenderAST(r, ast)
}

// RenderExpr renders a single expression.
func (r *Renderer) RenderExpr(expr types.Expr) (*types.QueryResult, error) {
	return render.RenderExpr(r, expr)
}

// Capabilities returns the spatial SQL features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		MethodCalls:      true,
		ExtendedLiterals: true,
		ParamStyle:       render.ParamNamed,
	}
}
