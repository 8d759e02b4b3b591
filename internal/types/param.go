package types

// Param represents a parameter reference in a query.
// All parameters are named parameters; positional dialects number them
// in order of first appearance.
type Param struct {
	Name string
}

// GetName returns the parameter name.
func (p Param) GetName() string {
	return p.Name
}

func (Param) IsExpr() {}
