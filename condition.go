package geoql

import (
	"fmt"

	"github.com/zoobzio/geoql/internal/types"
)

// TryCond creates a comparison, returning an error if an operand is missing
// or the operator is not supported.
func TryCond(left types.Expr, op types.Operator, right types.Expr) (types.Condition, error) {
	if left == nil || right == nil {
		return types.Condition{}, fmt.Errorf("condition requires two operands")
	}
	if !op.Valid() {
		return types.Condition{}, fmt.Errorf("unsupported operator %q", op)
	}
	return types.Condition{Left: left, Operator: op, Right: right}, nil
}

// Cond creates a comparison such as ST_Intersects(a, b) = 1.
func Cond(left types.Expr, op types.Operator, right types.Expr) types.Condition {
	c, err := TryCond(left, op, right)
	if err != nil {
		panic(err)
	}
	return c
}
