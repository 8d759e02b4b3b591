package geoql

import "github.com/zoobzio/geoql/internal/types"

// Re-export operator constants for public API.
const (
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE
)
