package postgres

import (
	"testing"

	"github.com/zoobzio/dynsql"
)

func TestRender_Numbered(t *testing.T) {
	users := dynsql.T("users")
	id := dynsql.Col("id", users, dynsql.TypeBigint)
	name := dynsql.Col("name", users, dynsql.TypeVarchar)

	result, err := dynsql.Select(users).
		Columns(id, name).
		Where(dynsql.And(dynsql.C(name, dynsql.LIKE, "a%"), dynsql.In(id, 1, 2))).
		Limit(10).
		Render(New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "select id, name from users where name like $1 and id in ($2, $3) limit $4"
	if result.SQL != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, result.SQL)
	}
	if len(result.Parameters) != 4 {
		t.Errorf("Expected 4 parameters, got %d", len(result.Parameters))
	}
}

func TestRender_NamedArgs(t *testing.T) {
	foo := dynsql.T("foo")
	id := dynsql.Col("id", foo, dynsql.TypeInteger)
	name := dynsql.Col("name", foo, dynsql.TypeVarchar)

	result, err := dynsql.Update(foo).
		Set(name, "fred").
		Where(dynsql.C(id, dynsql.EQ, 1)).
		Render(NewNamed())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "update foo set name = @p1 where id = @p2"
	if result.SQL != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, result.SQL)
	}

	args := NamedArgs(result)
	if args["p1"] != "fred" || args["p2"] != 1 {
		t.Errorf("NamedArgs() = %v", args)
	}
}

func TestCapabilities(t *testing.T) {
	caps := New().Capabilities()
	if caps.Dialect != "postgres" || !caps.FullJoin || !caps.LimitOffset {
		t.Errorf("Unexpected capabilities: %+v", caps)
	}
}
