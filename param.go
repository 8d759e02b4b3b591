package geoql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// TryP creates a parameter reference, returning an error if the name is
// invalid.
func TryP(name string) (types.Param, error) {
	if !isValidParamName(name) {
		return types.Param{}, fmt.Errorf("invalid parameter name '%s': must be alphanumeric with underscores, starting with letter", name)
	}
	if strings.HasPrefix(name, render.LiteralPrefix) {
		return types.Param{}, fmt.Errorf("invalid parameter name '%s': prefix %q is reserved for literals", name, render.LiteralPrefix)
	}
	return types.Param{Name: name}, nil
}

// P creates a parameter reference. This is the primary way to reference
// user values in queries. It panics on an invalid name.
func P(name string) types.Param {
	p, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Only allows alphanumeric characters and underscores, must start with letter.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}

	first := name[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z')) {
		return false
	}

	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	lower := strings.ToLower(name)
	sqlKeywords := []string{
		"select", "insert", "update", "delete", "drop",
		"create", "alter", "table", "from", "where",
		"and", "or", "not", "null", "true", "false",
		"union", "join", "having", "group", "order",
	}
	for _, keyword := range sqlKeywords {
		if lower == keyword {
			return false
		}
	}

	return true
}
