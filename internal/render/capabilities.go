package render

// ParamStyle indicates how a dialect writes bind parameters.
type ParamStyle int

const (
	ParamNamed    ParamStyle = iota // @name, each name bound once
	ParamNumbered                   // $1, each name bound once
	ParamQuestion                   // ?, one binding per occurrence
)

// Capabilities describes the spatial SQL features supported by a dialect.
type Capabilities struct {
	MethodCalls      bool       // column.STArea() instead of ST_Area(column)
	ExtendedLiterals bool       // ST_GeomFromEWKT / ST_GeomFromEWKB constructors
	ParamStyle       ParamStyle // placeholder syntax
}
