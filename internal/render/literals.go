package render

import (
	"bytes"
	"database/sql"
	"strings"

	"github.com/zoobzio/geoql/internal/types"
)

// FromText returns a hook for the geometry-from-text constructors. The call
// is rendered as identifier(args) or identifier(args, srid) when the call's
// SRID is greater than zero.
func FromText(identifier string) CompileFunc {
	return func(call Call, c *Compiler) (string, error) {
		call.Identifier = identifier
		return compileConstructor(call, c)
	}
}

// FromBinary returns a hook for the geometry-from-binary constructors. A
// borrowed first argument is copied before it is compiled.
func FromBinary(identifier string) CompileFunc {
	return func(call Call, c *Compiler) (string, error) {
		call.Identifier = identifier
		return compileConstructor(MaterializeBinary(call), c)
	}
}

// FromExtended returns a hook for the EWKT and EWKB constructors, whose
// literal carries its own SRID. The SRID of the call is never appended.
func FromExtended(identifier string) CompileFunc {
	return func(call Call, c *Compiler) (string, error) {
		call.Identifier = identifier
		call = MaterializeBinary(call)
		if len(call.Args) == 0 {
			return "", NewArgumentError(c.Dialect().Name(), call.Node.Name, "constructor requires a geometry argument")
		}
		return c.Default(call)
	}
}

// Unsupported returns a hook that always fails with UnsupportedFeatureError.
func Unsupported(dialect, hint string) CompileFunc {
	return func(call Call, _ *Compiler) (string, error) {
		return "", NewUnsupportedFeatureError(dialect, call.Node.Name, hint)
	}
}

func compileConstructor(call Call, c *Compiler) (string, error) {
	if len(call.Args) == 0 {
		return "", NewArgumentError(c.Dialect().Name(), call.Node.Name, "constructor requires a geometry argument")
	}
	args, err := c.CompileArgs(call)
	if err != nil {
		return "", err
	}
	return WithSRID(call.Identifier, strings.Join(args, ", "), call.SRID()), nil
}

// MaterializeBinary returns call with a literal sql.RawBytes first argument
// replaced by an owned copy. The node and its argument slice are left as
// they were.
func MaterializeBinary(call Call) Call {
	if len(call.Args) == 0 {
		return call
	}
	lit, ok := call.Args[0].(types.Literal)
	if !ok {
		return call
	}
	view, ok := lit.Value.(sql.RawBytes)
	if !ok {
		return call
	}

	args := make([]types.Expr, len(call.Args))
	copy(args, call.Args)
	args[0] = types.Literal{Value: bytes.Clone([]byte(view))}
	call.Args = args
	return call
}
