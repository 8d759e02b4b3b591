package types

// Expr is any node that can appear as a function argument, a selected
// field or one side of a condition.
type Expr interface {
	IsExpr()
}

// Literal is a value embedded in the query. Literals are never inlined into
// the SQL text; the compiler binds each one under a generated parameter name.
type Literal struct {
	Value any
}

func (Literal) IsExpr() {}

// FunctionCall is a call to a canonical function such as ST_Area.
// Name is the canonical name, dialects decide how it is rendered.
type FunctionCall struct {
	Name string
	Args []Expr
	Type SpatialType
}

func (*FunctionCall) IsExpr() {}

// SRID returns the spatial reference identifier of the call's result type.
func (f *FunctionCall) SRID() int {
	return f.Type.SRID
}

// Canonical function names used by the geometry-literal constructors and
// the dialect function tables.
const (
	FnGeomFromText = "ST_GeomFromText"
	FnGeomFromEWKT = "ST_GeomFromEWKT"
	FnGeomFromWKB  = "ST_GeomFromWKB"
	FnGeomFromEWKB = "ST_GeomFromEWKB"
	FnAsBinary     = "ST_AsBinary"
	FnAsEWKB       = "ST_AsEWKB"
	FnAsText       = "ST_AsText"
	FnAsEWKT       = "ST_AsEWKT"
)
