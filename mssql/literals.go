package mssql

import (
	"github.com/zoobzio/geoql/internal/render"
	"github.com/zoobzio/geoql/internal/types"
)

// Identifiers used for geometry literals.
const (
	FromTextIdentifier   = "geometry::STGeomFromText"
	FromBinaryIdentifier = "geometry::STGeomFromWKB"
)

// constructorHooks returns the geometry constructors. SQL Server has no
// extended text or binary formats; the extended constructors share the
// strict ones and take the SRID from the call type.
func constructorHooks() map[string]render.Hook {
	text := render.Hook{Compile: render.FromText(FromTextIdentifier), Source: "constructor " + FromTextIdentifier}
	binary := render.Hook{Compile: render.FromBinary(FromBinaryIdentifier), Source: "constructor " + FromBinaryIdentifier}
	return map[string]render.Hook{
		types.FnGeomFromText: text,
		types.FnGeomFromEWKT: text,
		types.FnGeomFromWKB:  binary,
		types.FnGeomFromEWKB: binary,
	}
}

func registerConstructors(reg *render.Registry, hooks map[string]render.Hook) error {
	for function, hook := range hooks {
		if err := reg.Register(DialectName, function, hook); err != nil {
			return err
		}
	}
	return nil
}
