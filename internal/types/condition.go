package types

// Condition compares two expressions. Spatial predicates that return a bit
// on SQL Server are written as Condition{Left: call, Operator: EQ, Right: L(1)}.
type Condition struct {
	Left     Expr
	Operator Operator
	Right    Expr
}
