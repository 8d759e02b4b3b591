package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/geoql/internal/types"
)

// RenderAST converts an AST to a QueryResult for the given dialect.
func RenderAST(d Dialect, ast *types.AST) (*types.QueryResult, error) {
	if err := ast.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AST: %w", err)
	}

	c := NewCompiler(d)
	var sql strings.Builder

	switch ast.Operation {
	case types.OpSelect:
		if err := c.renderSelect(ast, &sql); err != nil {
			return nil, err
		}
	case types.OpInsert:
		if err := c.renderInsert(ast, &sql); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	return c.Result(sql.String()), nil
}

func (c *Compiler) renderSelect(ast *types.AST, sql *strings.Builder) error {
	sql.WriteString("SELECT ")

	if len(ast.Fields) == 0 {
		sql.WriteString("*")
	} else {
		selections := make([]string, 0, len(ast.Fields))
		for i, field := range ast.Fields {
			s, err := c.Compile(field.Expr)
			if err != nil {
				return fmt.Errorf("field %d: %w", i, err)
			}
			if field.Alias != "" {
				s = fmt.Sprintf("%s AS %s", s, c.dialect.QuoteIdentifier(field.Alias))
			}
			selections = append(selections, s)
		}
		sql.WriteString(strings.Join(selections, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(c.table(ast.Target))

	if len(ast.Where) > 0 {
		sql.WriteString(" WHERE ")
		for i, cond := range ast.Where {
			if i > 0 {
				sql.WriteString(" AND ")
			}
			s, err := c.renderCondition(cond)
			if err != nil {
				return fmt.Errorf("condition %d: %w", i, err)
			}
			sql.WriteString(s)
		}
	}

	return nil
}

func (c *Compiler) renderCondition(cond types.Condition) (string, error) {
	left, err := c.Compile(cond.Left)
	if err != nil {
		return "", err
	}
	right, err := c.Compile(cond.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, cond.Operator, right), nil
}

func (c *Compiler) renderInsert(ast *types.AST, sql *strings.Builder) error {
	sql.WriteString("INSERT INTO ")
	sql.WriteString(c.table(ast.Target))

	cols := make([]types.Column, 0, len(ast.Values))
	for col := range ast.Values {
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool {
		return cols[i].Name < cols[j].Name
	})

	names := make([]string, 0, len(cols))
	values := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, c.dialect.QuoteIdentifier(col.Name))
		s, err := c.Compile(ast.Values[col])
		if err != nil {
			return fmt.Errorf("value for %s: %w", col.Name, err)
		}
		values = append(values, s)
	}

	sql.WriteString(" (")
	sql.WriteString(strings.Join(names, ", "))
	sql.WriteString(") VALUES (")
	sql.WriteString(strings.Join(values, ", "))
	sql.WriteString(")")
	return nil
}
