package geoql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/geoql/internal/types"
)

// TryCol creates a column reference, returning an error if the name is not
// a plain identifier. An optional table name or alias qualifies the column.
func TryCol(name string, table ...string) (types.Column, error) {
	if !isValidSQLIdentifier(name) {
		return types.Column{}, fmt.Errorf("invalid column name: %s", name)
	}
	col := types.Column{Name: name}
	if len(table) > 0 {
		if len(table) > 1 {
			return types.Column{}, fmt.Errorf("only one table qualifier allowed")
		}
		if !isValidTableAlias(table[0]) && !isValidSQLIdentifier(table[0]) {
			return types.Column{}, fmt.Errorf("invalid table qualifier: %s", table[0])
		}
		col.Table = table[0]
	}
	return col, nil
}

// Col creates a column reference. It panics on an invalid name.
func Col(name string, table ...string) types.Column {
	c, err := TryCol(name, table...)
	if err != nil {
		panic(err)
	}
	return c
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// isValidSQLIdentifier checks if a string is a valid SQL identifier.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Keywords that are harmless as identifiers but almost always mean the
	// caller passed SQL text by mistake.
	lower := strings.ToLower(s)
	for _, keyword := range []string{"select", "drop", "delete", "insert", "union"} {
		if lower == keyword {
			return false
		}
	}

	return true
}
