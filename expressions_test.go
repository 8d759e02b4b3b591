package geoql_test

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/zoobzio/geoql"
)

func TestP(t *testing.T) {
	if p := geoql.P("radius"); p.Name != "radius" {
		t.Errorf("P() = %+v", p)
	}

	invalid := []string{"", "1abc", "_private", "select", "lit_1", "lit_x", "a-b"}
	for _, name := range invalid {
		if _, err := geoql.TryP(name); err == nil {
			t.Errorf("TryP(%q) succeeded", name)
		}
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("P() did not panic on a reserved name")
		}
	}()
	geoql.P("lit_1")
}

func TestCol(t *testing.T) {
	c := geoql.Col("shape")
	if c.Name != "shape" || c.Table != "" {
		t.Errorf("Col() = %+v", c)
	}

	c = geoql.Col("shape", "p")
	if c.Table != "p" {
		t.Errorf("Col() table = %q", c.Table)
	}

	if _, err := geoql.TryCol("shape", "p", "q"); err == nil {
		t.Error("TryCol() accepted two qualifiers")
	}
	if _, err := geoql.TryCol("shape", "p x"); err == nil {
		t.Error("TryCol() accepted an invalid qualifier")
	}
}

func TestT(t *testing.T) {
	tbl := geoql.T("parcels", "p")
	if tbl.Name != "parcels" || tbl.Alias != "p" {
		t.Errorf("T() = %+v", tbl)
	}
	if _, err := geoql.TryT("parcels", "pa"); err == nil {
		t.Error("TryT() accepted a two-letter alias")
	}
	if _, err := geoql.TryT("parcels", "p", "q"); err == nil {
		t.Error("TryT() accepted two aliases")
	}
}

func TestFn(t *testing.T) {
	f := geoql.Fn("ST_Buffer", geoql.Col("shape"), geoql.L(5))
	if f.Name != "ST_Buffer" || len(f.Args) != 2 {
		t.Errorf("Fn() = %+v", f)
	}
	if !f.Type.IsZero() {
		t.Errorf("Fn() type = %+v, want zero", f.Type)
	}

	if _, err := geoql.TryFn("ST_Buffer", geoql.Col("shape"), nil); err == nil {
		t.Error("TryFn() accepted a nil argument")
	}
	if _, err := geoql.TryFnT("ST_Buffer", geoql.SpatialType{SRID: -1}); err == nil {
		t.Error("TryFnT() accepted a negative SRID")
	}
}

func TestFnT(t *testing.T) {
	typ := geoql.SpatialType{Kind: geoql.KindPolygon, SRID: 3857}
	f := geoql.FnT("ST_Transform", typ, geoql.Col("shape"), geoql.L(3857))
	if f.Type != typ || f.SRID() != 3857 {
		t.Errorf("FnT() type = %+v", f.Type)
	}
}

func TestGeometryConstructors(t *testing.T) {
	tests := []struct {
		name string
		call *geoql.FunctionCall
		fn   string
		srid int
	}{
		{"text", geoql.GeomFromText("POINT(1 2)", 4326), "ST_GeomFromText", 4326},
		{"extended text", geoql.GeomFromEWKT("SRID=4326;POINT(1 2)", 4326), "ST_GeomFromEWKT", 4326},
		{"binary", geoql.GeomFromWKB([]byte{0x01}, 0), "ST_GeomFromWKB", 0},
		{"raw binary", geoql.GeomFromRawWKB(sql.RawBytes{0x01}, 27700), "ST_GeomFromWKB", 27700},
		{"extended binary", geoql.GeomFromEWKB([]byte{0x01}, 4326), "ST_GeomFromEWKB", 4326},
		{"text param", geoql.GeomFromTextParam(geoql.P("wkt"), 4326), "ST_GeomFromText", 4326},
		{"binary param", geoql.GeomFromWKBParam(geoql.P("wkb"), 0), "ST_GeomFromWKB", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.call.Name != tt.fn {
				t.Errorf("Name = %q, want %q", tt.call.Name, tt.fn)
			}
			if tt.call.SRID() != tt.srid {
				t.Errorf("SRID() = %d, want %d", tt.call.SRID(), tt.srid)
			}
			if tt.call.Type.Kind != geoql.KindGeometry {
				t.Errorf("Kind = %q", tt.call.Type.Kind)
			}
			if len(tt.call.Args) != 1 {
				t.Errorf("Args = %v", tt.call.Args)
			}
		})
	}

	lit, ok := geoql.GeomFromRawWKB(sql.RawBytes{0x01}, 0).Args[0].(geoql.Literal)
	if !ok {
		t.Fatal("raw binary argument is not a literal")
	}
	if _, ok := lit.Value.(sql.RawBytes); !ok {
		t.Errorf("raw binary literal holds %T, want sql.RawBytes", lit.Value)
	}
}

func TestCond(t *testing.T) {
	c := geoql.Cond(geoql.Fn("ST_Area", geoql.Col("shape")), geoql.GT, geoql.P("min"))
	if c.Operator != geoql.GT {
		t.Errorf("Operator = %q", c.Operator)
	}
	if _, err := geoql.TryCond(geoql.Col("a"), geoql.Operator("LIKE"), geoql.P("b")); err == nil {
		t.Error("TryCond() accepted an unsupported operator")
	}
	if _, err := geoql.TryCond(nil, geoql.EQ, geoql.P("b")); err == nil {
		t.Error("TryCond() accepted a nil operand")
	}
}

func TestRenderExpr(t *testing.T) {
	expr := geoql.Fn("ST_Area", geoql.GeomFromText("POLYGON((0 0, 1 0, 1 1, 0 0))", 4326))

	tests := []struct {
		name     string
		renderer geoql.Renderer
		want     string
	}{
		{"mssql", newMSSQL(t), "geometry::STGeomFromText(@lit_1, 4326).STArea()"},
		{"postgres", newPostgres(t), "ST_Area(ST_GeomFromText($1, 4326))"},
		{"mariadb", newMariaDB(t), "ST_Area(ST_GeomFromText(?, 4326))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := geoql.RenderExpr(expr, tt.renderer)
			if err != nil {
				t.Fatalf("RenderExpr() error = %v", err)
			}
			if result.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", result.SQL, tt.want)
			}
			if !strings.HasPrefix(result.Bindings["lit_1"].(string), "POLYGON") {
				t.Errorf("lit_1 = %v", result.Bindings["lit_1"])
			}
		})
	}

	if _, err := geoql.RenderExpr(expr, nil); err == nil {
		t.Error("RenderExpr() accepted a nil renderer")
	}
}
