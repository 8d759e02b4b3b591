package integration

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/twpayne/go-geom"
	"github.com/zoobzio/geoql"
	geoqlpostgres "github.com/zoobzio/geoql/postgres"
	geoqltesting "github.com/zoobzio/geoql/testing"
)

// PostgresContainer wraps a testcontainers PostGIS instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
	connStr   string
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, query string, args ...any) {
	t.Helper()
	if _, err := pc.conn.Exec(ctx, query, args...); err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

func setupPostgresParcels(ctx context.Context, t *testing.T, pc *PostgresContainer, r geoql.Renderer) {
	t.Helper()

	pc.Exec(ctx, t, "CREATE EXTENSION IF NOT EXISTS postgis")
	pc.Exec(ctx, t, "DROP TABLE IF EXISTS parcels")
	pc.Exec(ctx, t, `CREATE TABLE parcels (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		shape geometry(Polygon, 4326) NOT NULL
	)`)
	t.Cleanup(func() {
		_, _ = pc.conn.Exec(context.Background(), "DROP TABLE IF EXISTS parcels")
	})

	insert, err := geoql.Insert(geoql.T("parcels")).
		Set(geoql.Col("name"), geoql.P("name")).
		Set(geoql.Col("shape"), geoql.GeomFromText(squareWKT, 4326)).
		Render(r)
	geoqltesting.AssertNoError(t, err)

	args, err := insert.Args(map[string]any{"name": "square"})
	geoqltesting.AssertNoError(t, err)
	pc.Exec(ctx, t, insert.SQL, args...)
}

func TestPostgresIntegration_Functions(t *testing.T) {
	skipShort(t)

	ctx := context.Background()
	pc := getPostgresContainer(t)
	r := geoqlpostgres.MustNew()
	setupPostgresParcels(ctx, t, pc, r)

	shape := geoql.Col("shape")
	result, err := geoql.Select(geoql.T("parcels")).
		Field(geoql.Fn("ST_Area", shape), "area").
		Field(geoql.Fn("ST_SRID", shape), "srid").
		Where(geoql.Cond(geoql.Fn("ST_Contains", shape, geoql.GeomFromTextParam(geoql.P("pt"), 4326)), geoql.EQ, geoql.L(true))).
		Render(r)
	geoqltesting.AssertNoError(t, err)

	args, err := result.Args(map[string]any{"pt": "POINT(5 5)"})
	geoqltesting.AssertNoError(t, err)

	var area float64
	var srid int
	if err := pc.conn.QueryRow(ctx, result.SQL, args...).Scan(&area, &srid); err != nil {
		t.Fatalf("query failed: %v\nSQL: %s", err, result.SQL)
	}
	if area != 100 || srid != 4326 {
		t.Errorf("got area=%v srid=%v", area, srid)
	}
}

func TestPostgresIntegration_ShapeRoundTrip(t *testing.T) {
	skipShort(t)

	ctx := context.Background()
	pc := getPostgresContainer(t)
	r := geoqlpostgres.MustNew()
	setupPostgresParcels(ctx, t, pc, r)

	triangle := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 4, 0, 0, 3, 0, 0}, []int{8}).SetSRID(4326)
	for _, encode := range []func(geom.T) (*geoql.FunctionCall, error){
		geoql.FromShape,
		geoql.FromShapeText,
		geoql.FromShapeExtended,
	} {
		call, err := encode(triangle)
		geoqltesting.AssertNoError(t, err)

		insert, err := geoql.Insert(geoql.T("parcels")).
			Set(geoql.Col("name"), geoql.L(call.Name)).
			Set(geoql.Col("shape"), call).
			Render(r)
		geoqltesting.AssertNoError(t, err)
		args, err := insert.Args(nil)
		geoqltesting.AssertNoError(t, err)
		pc.Exec(ctx, t, insert.SQL, args...)
	}

	result, err := geoql.Select(geoql.T("parcels")).
		Field(geoql.Fn("ST_AsEWKB", geoql.Col("shape")), "shape").
		Where(geoql.Cond(geoql.Col("name"), geoql.NE, geoql.L("square"))).
		Render(r)
	geoqltesting.AssertNoError(t, err)
	args, err := result.Args(nil)
	geoqltesting.AssertNoError(t, err)

	rows, err := pc.conn.Query(ctx, result.SQL, args...)
	geoqltesting.AssertNoError(t, err)
	defer rows.Close()

	count := 0
	for rows.Next() {
		var data []byte
		geoqltesting.AssertNoError(t, rows.Scan(&data))
		g, err := geoql.ToShapeExtended(data)
		geoqltesting.AssertNoError(t, err)
		if g.SRID() != 4326 {
			t.Errorf("SRID = %d, want 4326", g.SRID())
		}
		count++
	}
	geoqltesting.AssertNoError(t, rows.Err())
	if count != 3 {
		t.Errorf("read %d shapes, want 3", count)
	}
}
