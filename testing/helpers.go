// Package testing provides test utilities for dynsql.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
)

// TestProject returns a DBML project with users, posts, comments, orders,
// and products tables.
func TestProject() *dbml.Project {
	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	users.AddColumn(dbml.NewColumn("metadata", "jsonb"))
	project.AddTable(users)

	// Posts table
	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(posts)

	// Comments table
	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("user_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	comments.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(comments)

	// Orders table
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	orders.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(orders)

	// Products table
	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	products.AddColumn(dbml.NewColumn("price", "numeric"))
	products.AddColumn(dbml.NewColumn("category", "varchar"))
	products.AddColumn(dbml.NewColumn("stock", "int"))
	project.AddTable(products)

	return project
}

// TestCatalog creates a catalog over TestProject.
func TestCatalog(t *testing.T) *dynsql.Catalog {
	t.Helper()
	catalog, err := dynsql.NewCatalog(TestProject())
	if err != nil {
		t.Fatalf("Failed to create test catalog: %v", err)
	}
	return catalog
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertArgs checks the parameter values of a rendered statement, in order.
func AssertArgs(t *testing.T, result *dynsql.RenderedStatement, expected ...any) {
	t.Helper()
	actual := result.Args()
	if len(expected) != len(actual) {
		t.Errorf("Arg count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Arg %d mismatch: expected %v (%T), got %v (%T)", i, expected[i], expected[i], actual[i], actual[i])
		}
	}
}

// AssertParamNames checks the bind names of a rendered statement, in order.
func AssertParamNames(t *testing.T, result *dynsql.RenderedStatement, expected ...string) {
	t.Helper()
	if len(expected) != len(result.Parameters) {
		t.Errorf("Param count mismatch: expected %d, got %d", len(expected), len(result.Parameters))
		return
	}
	for i, p := range result.Parameters {
		if p.Name != expected[i] {
			t.Errorf("Param %d: expected name %q, got %q", i, expected[i], p.Name)
		}
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

// AssertErrorIs fails the test unless err matches target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("Expected error matching %v, got: %v", target, err)
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

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
