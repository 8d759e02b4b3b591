// Package testing provides test utilities for geoql.
package testing

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/geoql"
)

// SpatialSchema returns the DBML project used by TestInstance: a parcels
// table with a polygon column, a roads table with a linestring column and
// a places table with a point column.
func SpatialSchema() *dbml.Project {
	project := dbml.NewProject("spatial")

	parcels := dbml.NewTable("parcels")
	parcels.AddColumn(dbml.NewColumn("id", "bigint"))
	parcels.AddColumn(dbml.NewColumn("name", "varchar"))
	parcels.AddColumn(dbml.NewColumn("shape", "geometry(Polygon,4326)"))
	project.AddTable(parcels)

	roads := dbml.NewTable("roads")
	roads.AddColumn(dbml.NewColumn("id", "bigint"))
	roads.AddColumn(dbml.NewColumn("name", "varchar"))
	roads.AddColumn(dbml.NewColumn("path", "geometry(LineString,4326)"))
	project.AddTable(roads)

	places := dbml.NewTable("places")
	places.AddColumn(dbml.NewColumn("id", "bigint"))
	places.AddColumn(dbml.NewColumn("label", "varchar"))
	places.AddColumn(dbml.NewColumn("location", "geometry(Point,4326)"))
	project.AddTable(places)

	return project
}

// TestInstance creates a GeoQL instance over SpatialSchema.
func TestInstance(t *testing.T) *geoql.GeoQL {
	t.Helper()
	instance, err := geoql.NewFromDBML(SpatialSchema())
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertParams checks that the required params match in order. Order
// matters for positional dialects.
func AssertParams(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Param count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Param %d mismatch: expected %q, got %q\nExpected: %v\nActual: %v",
				i, expected[i], actual[i], expected, actual)
		}
	}
}

// AssertBinding checks the value bound for a generated literal parameter.
// Byte slices are compared by content.
func AssertBinding(t *testing.T, result *geoql.QueryResult, name string, expected any) {
	t.Helper()
	actual, ok := result.Bindings[name]
	if !ok {
		t.Errorf("Binding %q not found in %v", name, result.Bindings)
		return
	}
	if want, ok := expected.([]byte); ok {
		got, ok := actual.([]byte)
		if !ok || !bytes.Equal(want, got) {
			t.Errorf("Binding %q mismatch: expected %x, got %v", name, want, actual)
		}
		return
	}
	if fmt.Sprint(expected) != fmt.Sprint(actual) {
		t.Errorf("Binding %q mismatch: expected %v (%T), got %v (%T)", name, expected, expected, actual, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertErrorAs fails the test unless err wraps an error of type E, which
// is returned.
func AssertErrorAs[E error](t *testing.T, err error) E {
	t.Helper()
	var target E
	if !errors.As(err, &target) {
		t.Fatalf("Expected %T in error chain, got: %v", target, err)
	}
	return target
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
