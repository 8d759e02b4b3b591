package geoql_test

import (
	"testing"

	"github.com/zoobzio/geoql/mariadb"
	"github.com/zoobzio/geoql/mssql"
	"github.com/zoobzio/geoql/postgres"
)

func newMSSQL(t *testing.T) *mssql.Renderer {
	t.Helper()
	r, err := mssql.New()
	if err != nil {
		t.Fatalf("mssql.New() error = %v", err)
	}
	return r
}

func newPostgres(t *testing.T) *postgres.Renderer {
	t.Helper()
	r, err := postgres.New()
	if err != nil {
		t.Fatalf("postgres.New() error = %v", err)
	}
	return r
}

func newMariaDB(t *testing.T) *mariadb.Renderer {
	t.Helper()
	r, err := mariadb.New()
	if err != nil {
		t.Fatalf("mariadb.New() error = %v", err)
	}
	return r
}
