package render

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/zoobzio/geoql/internal/types"
)

// MaxCallDepth limits how deeply function calls may be nested.
const MaxCallDepth = 16

// LiteralPrefix is the prefix of parameter names generated for literals.
// User parameters may not use it.
const LiteralPrefix = "lit_"

// Dialect is implemented by every renderer. The compiler asks it for
// quoting, placeholders, bind processing and compile hooks.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Placeholder(name string, position int) string
	Capabilities() Capabilities
	BindValue(t types.SpatialType, value any) (any, error)
	Registry() *Registry
}

// Call is the rendering context handed to a compile hook. Identifier starts
// out as the canonical name and Args as the node's arguments; hooks derive
// new values instead of modifying Node.
type Call struct {
	Node       *types.FunctionCall
	Identifier string
	Args       []types.Expr
}

// SRID returns the spatial reference identifier of the call's result type.
func (c Call) SRID() int {
	return c.Node.Type.SRID
}

// Compiler renders expressions for a single statement. A Compiler is not
// safe for concurrent use; create one per render pass.
type Compiler struct {
	dialect  Dialect
	bindings map[string]any
	index    map[string]int
	params   []string
	literals int
	depth    int
}

// NewCompiler creates a compiler for one render pass.
func NewCompiler(d Dialect) *Compiler {
	return &Compiler{
		dialect:  d,
		bindings: make(map[string]any),
		index:    make(map[string]int),
	}
}

// Dialect returns the dialect being compiled for.
func (c *Compiler) Dialect() Dialect {
	return c.dialect
}

// Compile renders a single expression.
func (c *Compiler) Compile(expr types.Expr) (string, error) {
	return c.compile(expr, types.SpatialType{})
}

func (c *Compiler) compile(expr types.Expr, t types.SpatialType) (string, error) {
	switch e := expr.(type) {
	case nil:
		return "", fmt.Errorf("nil expression")
	case types.Column:
		return c.column(e), nil
	case types.Param:
		if e.Name == "" {
			return "", fmt.Errorf("parameter name is required")
		}
		return c.addParam(e.Name), nil
	case types.Literal:
		return c.bindLiteral(e.Value, t)
	case *types.FunctionCall:
		return c.compileCall(e)
	default:
		return "", fmt.Errorf("unsupported expression type %T", expr)
	}
}

func (c *Compiler) compileCall(fn *types.FunctionCall) (string, error) {
	if fn == nil {
		return "", fmt.Errorf("nil function call")
	}
	if c.depth >= MaxCallDepth {
		return "", fmt.Errorf("maximum function nesting depth (%d) exceeded", MaxCallDepth)
	}
	c.depth++
	defer func() { c.depth-- }()

	call := Call{Node: fn, Identifier: fn.Name, Args: fn.Args}
	if hook, ok := c.dialect.Registry().Lookup(c.dialect.Name(), fn.Name); ok {
		return hook.Compile(call, c)
	}
	return c.Default(call)
}

// Default renders a call as Identifier(arg, ...). Calls without a
// registered hook are rendered this way.
func (c *Compiler) Default(call Call) (string, error) {
	args, err := c.CompileArgs(call)
	if err != nil {
		return "", err
	}
	return RenderFunction(call.Identifier, args), nil
}

// CompileArgs renders each argument of a call separately. Literal arguments
// are bound with the call's spatial type.
func (c *Compiler) CompileArgs(call Call) ([]string, error) {
	out := make([]string, 0, len(call.Args))
	for i, arg := range call.Args {
		s, err := c.compile(arg, call.Node.Type)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", call.Node.Name, i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *Compiler) column(col types.Column) string {
	quoted := c.dialect.QuoteIdentifier(col.Name)
	if col.Table != "" {
		return fmt.Sprintf("%s.%s", col.Table, quoted)
	}
	return quoted
}

func (c *Compiler) table(t types.Table) string {
	quoted := c.dialect.QuoteIdentifier(t.Name)
	if t.Alias != "" {
		return fmt.Sprintf("%s %s", quoted, t.Alias)
	}
	return quoted
}

// addParam records a parameter and returns its placeholder.
func (c *Compiler) addParam(name string) string {
	style := c.dialect.Capabilities().ParamStyle
	if style != ParamQuestion {
		if pos, ok := c.index[name]; ok {
			return c.dialect.Placeholder(name, pos)
		}
	}

	c.params = append(c.params, name)
	pos := len(c.params)
	if style != ParamQuestion {
		c.index[name] = pos
	}
	return c.dialect.Placeholder(name, pos)
}

func (c *Compiler) bindLiteral(value any, t types.SpatialType) (string, error) {
	bound, err := c.dialect.BindValue(t, value)
	if err != nil {
		return "", err
	}

	// RawBytes aliases driver memory that is reused on the next scan.
	if _, ok := bound.(sql.RawBytes); ok {
		return "", BindError{
			Dialect: c.dialect.Name(),
			Reason:  "borrowed buffer must be copied before binding",
			Value:   bound,
		}
	}

	converted, err := driver.DefaultParameterConverter.ConvertValue(bound)
	if err != nil {
		return "", BindError{Dialect: c.dialect.Name(), Reason: err.Error(), Value: bound}
	}

	c.literals++
	name := fmt.Sprintf("%s%d", LiteralPrefix, c.literals)
	c.bindings[name] = converted
	return c.addParam(name), nil
}

// Result packages rendered SQL with the parameters collected so far.
func (c *Compiler) Result(sql string) *types.QueryResult {
	return &types.QueryResult{
		SQL:            sql,
		RequiredParams: c.params,
		Bindings:       c.bindings,
		Named:          c.dialect.Capabilities().ParamStyle == ParamNamed,
	}
}

// RenderExpr renders a standalone expression.
func RenderExpr(d Dialect, expr types.Expr) (*types.QueryResult, error) {
	c := NewCompiler(d)
	s, err := c.Compile(expr)
	if err != nil {
		return nil, err
	}
	return c.Result(s), nil
}

// RenderFunction formats name(arg, ...).
func RenderFunction(name string, args []string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

// WithSRID formats a geometry constructor, appending the SRID only when it
// is greater than zero.
func WithSRID(identifier, compiled string, srid int) string {
	if srid > 0 {
		return fmt.Sprintf("%s(%s, %d)", identifier, compiled, srid)
	}
	return fmt.Sprintf("%s(%s)", identifier, compiled)
}
