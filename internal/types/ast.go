package types

import "fmt"

// Operation represents the type of statement.
type Operation string

const (
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
)

// FieldExpression is a selected expression with an optional alias.
type FieldExpression struct {
	Expr  Expr
	Alias string
}

// AST represents the abstract syntax tree for a statement.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type AST struct {
	Operation Operation
	Target    Table
	Fields    []FieldExpression
	Where     []Condition     // ANDed together
	Values    map[Column]Expr // For INSERT operations
}

// Validate performs basic validation on the AST.
func (ast *AST) Validate() error {
	if ast.Target.Name == "" {
		return fmt.Errorf("target table is required")
	}

	switch ast.Operation {
	case OpSelect:
		// Fields are optional (defaults to *)
		if len(ast.Values) > 0 {
			return fmt.Errorf("SELECT cannot have insert values")
		}
	case OpInsert:
		if len(ast.Values) == 0 {
			return fmt.Errorf("INSERT requires at least one value")
		}
		if len(ast.Fields) > 0 || len(ast.Where) > 0 {
			return fmt.Errorf("INSERT cannot have selected fields or WHERE conditions")
		}
	default:
		return fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	for i, field := range ast.Fields {
		if field.Expr == nil {
			return fmt.Errorf("field %d has no expression", i)
		}
	}

	for i, cond := range ast.Where {
		if cond.Left == nil || cond.Right == nil {
			return fmt.Errorf("condition %d is missing an operand", i)
		}
		if !cond.Operator.Valid() {
			return fmt.Errorf("condition %d has unsupported operator %q", i, cond.Operator)
		}
	}

	return nil
}
