package types

// Column represents a column reference.
// This is exported from the internal package so providers can use it,
// but external users cannot import this package.
type Column struct {
	Name  string // The column name (required)
	Table string // Optional table/alias prefix
}

// GetName returns the column name.
func (c Column) GetName() string {
	return c.Name
}

// GetTable returns the table/alias prefix.
func (c Column) GetTable() string {
	return c.Table
}

// WithTable returns a copy of the column qualified by a table or alias.
func (c Column) WithTable(tableOrAlias string) Column {
	c.Table = tableOrAlias
	return c
}

func (Column) IsExpr() {}
