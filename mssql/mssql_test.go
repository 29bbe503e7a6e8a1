package mssql

import (
	"database/sql"
	"testing"

	"github.com/zoobzio/dynsql"
)

func TestRender_Named(t *testing.T) {
	users := dynsql.T("users", "dbo")
	id := dynsql.Col("id", users, dynsql.TypeBigint)
	name := dynsql.Col("name", users, dynsql.TypeNVarchar)

	result, err := dynsql.Select(users).
		Columns(name).
		Where(dynsql.C(id, dynsql.GE, 10)).
		OrderBy(name.Descending()).
		Render(New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "select name from dbo.users where id >= @p1 order by name desc"
	if result.SQL != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, result.SQL)
	}
	arg, ok := result.NamedArgs()[0].(sql.NamedArg)
	if !ok || arg.Name != "p1" || arg.Value != 10 {
		t.Errorf("NamedArgs()[0] = %#v", result.NamedArgs()[0])
	}
}

func TestRender_LimitUnsupported(t *testing.T) {
	users := dynsql.T("users")
	_, err := dynsql.Select(users).Limit(5).Render(New())
	if !dynsql.IsUnsupportedFeature(err) {
		t.Fatalf("Expected unsupported feature error, got %v", err)
	}
}
