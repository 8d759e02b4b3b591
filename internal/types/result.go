package types

import (
	"database/sql"
	"fmt"
)

// QueryResult contains the rendered SQL and the parameters it needs.
type QueryResult struct {
	// Bindings holds values of literals embedded in the expression tree,
	// already passed through the dialect's bind processor.
	Bindings map[string]any
	SQL      string
	// RequiredParams lists placeholder names in order. Named dialects list
	// each name once; positional dialects list one entry per placeholder.
	RequiredParams []string
	Named          bool
}

// Args builds database/sql arguments for the query. Values supplied by the
// caller take precedence over bound literals of the same name.
func (r *QueryResult) Args(values map[string]any) ([]any, error) {
	args := make([]any, 0, len(r.RequiredParams))
	for _, name := range r.RequiredParams {
		v, ok := values[name]
		if !ok {
			v, ok = r.Bindings[name]
		}
		if !ok {
			return nil, fmt.Errorf("missing value for parameter %q", name)
		}
		if r.Named {
			args = append(args, sql.Named(name, v))
		} else {
			args = append(args, v)
		}
	}
	return args, nil
}
