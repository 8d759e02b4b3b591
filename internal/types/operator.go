package types

// Operator represents query comparison operators.
type Operator string

const (
	EQ Operator = "="
	NE Operator = "<>"
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="
)

// Valid reports whether the operator is one of the supported comparisons.
func (o Operator) Valid() bool {
	switch o {
	case EQ, NE, GT, GE, LT, LE:
		return true
	}
	return false
}
