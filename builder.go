package geoql

import (
	"fmt"

	"github.com/zoobzio/geoql/internal/types"
)

// Builder provides a fluent API for constructing statements. The first
// error encountered is kept and returned by Build; later calls are no-ops.
type Builder struct {
	ast *types.AST
	err error
}

// Select creates a new SELECT builder.
func Select(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpSelect,
			Target:    t,
		},
	}
}

// Insert creates a new INSERT builder.
func Insert(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpInsert,
			Target:    t,
			Values:    make(map[types.Column]types.Expr),
		},
	}
}

// GetAST returns the internal AST.
func (b *Builder) GetAST() *types.AST {
	return b.ast
}

// GetError returns the first error recorded by the builder.
func (b *Builder) GetError() error {
	return b.err
}

// Fields adds selected expressions without aliases.
func (b *Builder) Fields(exprs ...types.Expr) *Builder {
	for _, expr := range exprs {
		b.Field(expr, "")
	}
	return b
}

// Field adds a selected expression with an alias. An empty alias selects
// the expression unaliased.
func (b *Builder) Field(expr types.Expr, alias string) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("Fields() can only be used with SELECT queries")
		return b
	}
	if expr == nil {
		b.err = fmt.Errorf("field expression is nil")
		return b
	}
	if alias != "" && !isValidSQLIdentifier(alias) {
		b.err = fmt.Errorf("invalid field alias: %s", alias)
		return b
	}
	b.ast.Fields = append(b.ast.Fields, types.FieldExpression{Expr: expr, Alias: alias})
	return b
}

// Where adds conditions. All conditions are combined with AND.
func (b *Builder) Where(conditions ...types.Condition) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("Where() can only be used with SELECT queries")
		return b
	}
	b.ast.Where = append(b.ast.Where, conditions...)
	return b
}

// Set assigns a value to a column in an INSERT.
func (b *Builder) Set(col types.Column, value types.Expr) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpInsert {
		b.err = fmt.Errorf("Set() can only be used with INSERT queries")
		return b
	}
	if value == nil {
		b.err = fmt.Errorf("value for %s is nil", col.Name)
		return b
	}
	if _, ok := b.ast.Values[col]; ok {
		b.err = fmt.Errorf("column %s is set twice", col.Name)
		return b
	}
	b.ast.Values[col] = value
	return b
}

// Build returns the constructed AST or an error.
func (b *Builder) Build() (*types.AST, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.ast.Validate(); err != nil {
		return nil, err
	}
	return b.ast, nil
}

// MustBuild returns the AST or panics on error.
func (b *Builder) MustBuild() *types.AST {
	ast, err := b.Build()
	if err != nil {
		panic(err)
	}
	return ast
}

// Render builds the AST and renders it with the provided renderer.
func (b *Builder) Render(r Renderer) (*QueryResult, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	ast, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(ast)
}

// MustRender builds and renders, panicking on error.
func (b *Builder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
