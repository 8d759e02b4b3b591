package geoql_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/zoobzio/geoql"
	geoqltesting "github.com/zoobzio/geoql/testing"
)

type recordingExecer struct {
	statements []string
	err        error
}

func (e *recordingExecer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	e.statements = append(e.statements, query)
	return nil, e.err
}

// hookRenderer records lifecycle calls around the mssql renderer.
type hookRenderer struct {
	geoql.Renderer
	calls   []string
	failOn  string
	reflect []string
}

func (h *hookRenderer) hook(name string) error {
	h.calls = append(h.calls, name)
	if name == h.failOn {
		return errors.New(name + " failed")
	}
	return nil
}

func (h *hookRenderer) BeforeCreate(context.Context, geoql.Table, geoql.Execer) error {
	return h.hook("before_create")
}

func (h *hookRenderer) AfterCreate(context.Context, geoql.Table, geoql.Execer) error {
	return h.hook("after_create")
}

func (h *hookRenderer) BeforeDrop(context.Context, geoql.Table, geoql.Execer) error {
	return h.hook("before_drop")
}

func (h *hookRenderer) AfterDrop(context.Context, geoql.Table, geoql.Execer) error {
	return h.hook("after_drop")
}

func (h *hookRenderer) ReflectGeometryColumn(_ geoql.Table, col *geoql.ColumnInfo) error {
	h.reflect = append(h.reflect, col.Name)
	return nil
}

func TestCreate(t *testing.T) {
	db := &recordingExecer{}
	r := &hookRenderer{Renderer: newMSSQL(t)}
	ctx := context.Background()

	err := geoql.Create(ctx, db, r, geoql.T("parcels"), "CREATE TABLE parcels (shape geometry)")
	geoqltesting.AssertNoError(t, err)

	if len(db.statements) != 1 {
		t.Errorf("statements = %v", db.statements)
	}
	want := []string{"before_create", "after_create"}
	geoqltesting.AssertParams(t, want, r.calls)
}

func TestCreate_StopsOnError(t *testing.T) {
	ctx := context.Background()

	t.Run("before hook", func(t *testing.T) {
		db := &recordingExecer{}
		r := &hookRenderer{Renderer: newMSSQL(t), failOn: "before_create"}
		err := geoql.Create(ctx, db, r, geoql.T("parcels"), "CREATE TABLE parcels (id int)")
		geoqltesting.AssertErrorContains(t, err, "before create parcels")
		if len(db.statements) != 0 {
			t.Errorf("DDL ran after a failing hook: %v", db.statements)
		}
	})

	t.Run("exec", func(t *testing.T) {
		db := &recordingExecer{err: errors.New("syntax error")}
		r := &hookRenderer{Renderer: newMSSQL(t)}
		err := geoql.Create(ctx, db, r, geoql.T("parcels"), "CREATE TABLE")
		geoqltesting.AssertErrorContains(t, err, "syntax error")
		geoqltesting.AssertParams(t, []string{"before_create"}, r.calls)
	})
}

func TestDrop(t *testing.T) {
	db := &recordingExecer{}
	r := &hookRenderer{Renderer: newPostgres(t)}

	err := geoql.Drop(context.Background(), db, r, geoql.T("parcels"), "DROP TABLE parcels")
	geoqltesting.AssertNoError(t, err)
	geoqltesting.AssertParams(t, []string{"before_drop", "after_drop"}, r.calls)

	r = &hookRenderer{Renderer: newPostgres(t), failOn: "after_drop"}
	err = geoql.Drop(context.Background(), db, r, geoql.T("parcels"), "DROP TABLE parcels")
	geoqltesting.AssertErrorContains(t, err, "after drop parcels")
}

func TestCreateDrop_DialectNoOps(t *testing.T) {
	ctx := context.Background()
	for _, r := range []geoql.Renderer{newMSSQL(t), newPostgres(t), newMariaDB(t)} {
		db := &recordingExecer{}
		geoqltesting.AssertNoError(t, geoql.Create(ctx, db, r, geoql.T("parcels"), "CREATE"))
		geoqltesting.AssertNoError(t, geoql.Drop(ctx, db, r, geoql.T("parcels"), "DROP"))
		if len(db.statements) != 2 {
			t.Errorf("%s: statements = %v", r.Name(), db.statements)
		}
	}
}

func TestReflectColumn(t *testing.T) {
	r := &hookRenderer{Renderer: newMSSQL(t)}
	table := geoql.T("parcels")

	shape := &geoql.ColumnInfo{Name: "shape", Type: "geometry(Polygon,4326)"}
	geoqltesting.AssertNoError(t, geoql.ReflectColumn(r, table, shape))
	if shape.Spatial == nil || shape.Spatial.Kind != geoql.KindPolygon || shape.Spatial.SRID != 4326 {
		t.Errorf("Spatial = %+v", shape.Spatial)
	}

	name := &geoql.ColumnInfo{Name: "name", Type: "varchar"}
	geoqltesting.AssertNoError(t, geoql.ReflectColumn(r, table, name))
	if name.Spatial != nil {
		t.Errorf("Spatial = %+v, want nil", name.Spatial)
	}

	geoqltesting.AssertParams(t, []string{"shape"}, r.reflect)
}

func TestParseSpatialType(t *testing.T) {
	tests := []struct {
		in   string
		want geoql.SpatialType
		ok   bool
	}{
		{"geometry", geoql.SpatialType{Kind: geoql.KindGeometry}, true},
		{"POINT", geoql.SpatialType{Kind: geoql.KindPoint}, true},
		{" MultiPolygon ", geoql.SpatialType{Kind: geoql.KindMultiPolygon}, true},
		{"GeometryCollection", geoql.SpatialType{Kind: geoql.KindGeometryCollection}, true},
		{"geometry(Point)", geoql.SpatialType{Kind: geoql.KindPoint}, true},
		{"geometry(LineString, 27700)", geoql.SpatialType{Kind: geoql.KindLineString, SRID: 27700}, true},
		{"geography", geoql.SpatialType{}, false},
		{"varchar(20)", geoql.SpatialType{}, false},
		{"geometry(Point,abc)", geoql.SpatialType{}, false},
		{"geometry(Point,4326", geoql.SpatialType{}, false},
		{"point(Point,4326)", geoql.SpatialType{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := geoql.ParseSpatialType(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSpatialType(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
