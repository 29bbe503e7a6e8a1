// Package benchmarks provides performance benchmarks for dynsql.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
	"github.com/zoobzio/dynsql/postgres"
	"github.com/zoobzio/dynsql/sqlite"
)

func createBenchmarkCatalog(b *testing.B) *dynsql.Catalog {
	b.Helper()

	project := dbml.NewProject("bench")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	catalog, err := dynsql.NewCatalog(project)
	if err != nil {
		b.Fatalf("Failed to create catalog: %v", err)
	}
	return catalog
}

// BenchmarkSimpleSelect measures simple SELECT query rendering.
func BenchmarkSimpleSelect(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(table).Render(dynsql.Positional())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithColumns measures SELECT with explicit columns.
func BenchmarkSelectWithColumns(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	cols := catalog.Columns(table)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(table).Columns(cols...).Render(dynsql.Positional())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithMultipleConditions measures SELECT with a nested WHERE tree.
func BenchmarkSelectWithMultipleConditions(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	cond := dynsql.And(
		dynsql.C(catalog.Col(table, "active"), dynsql.EQ, true),
		dynsql.Or(
			dynsql.C(catalog.Col(table, "age"), dynsql.GT, 18),
			dynsql.C(catalog.Col(table, "username"), dynsql.LIKE, "a%"),
		),
	)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(table).Where(cond).Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStrategies compares placeholder strategies on the same statement.
func BenchmarkStrategies(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	stmt := dynsql.Select(table).
		Where(dynsql.In(catalog.Col(table, "id"), 1, 2, 3, 4, 5)).
		Where(dynsql.Between(catalog.Col(table, "age"), 18, 65)).
		MustBuild()

	strategies := []struct {
		name     string
		strategy dynsql.RenderingStrategy
	}{
		{"positional", dynsql.Positional()},
		{"named", dynsql.Named()},
		{"named_with_types", dynsql.NamedWithTypes()},
		{"colon_named", dynsql.ColonNamed()},
		{"postgres", postgres.New()},
		{"sqlite", sqlite.New()},
	}

	for _, s := range strategies {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := dynsql.Render(stmt, s.strategy); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSelectWithJoin measures SELECT with JOIN and generated aliases.
func BenchmarkSelectWithJoin(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	users := catalog.T("users")
	posts := catalog.T("posts")
	on := dynsql.CC(catalog.Col(users, "id"), dynsql.EQ, catalog.Col(posts, "user_id"))
	username := catalog.Col(users, "username")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(users).
			Columns(username).
			Join(posts, on).
			Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithOrderByLimit measures SELECT with ORDER BY and LIMIT.
func BenchmarkSelectWithOrderByLimit(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	createdAt := catalog.Col(table, "created_at")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(table).
			OrderBy(createdAt.Descending()).
			Limit(10).
			Offset(20).
			Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInsert measures multi-row INSERT rendering.
func BenchmarkInsert(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	cols := []dynsql.Column{
		catalog.Col(table, "username"),
		catalog.Col(table, "email"),
		catalog.Col(table, "age"),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.InsertInto(table).
			Columns(cols...).
			Values("alice", "alice@example.com", 30).
			Values("bob", "bob@example.com", 25).
			Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpdate measures UPDATE rendering across mapping kinds.
func BenchmarkUpdate(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	username := catalog.Col(table, "username")
	email := catalog.Col(table, "email")
	age := catalog.Col(table, "age")
	id := catalog.Col(table, "id")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Update(table).
			Set(username, "new_name").
			SetColumn(email, username).
			SetNull(age).
			Where(dynsql.C(id, dynsql.EQ, 1)).
			Render(dynsql.Named())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDelete measures DELETE rendering.
func BenchmarkDelete(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	id := catalog.Col(table, "id")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.DeleteFrom(table).
			Where(dynsql.NotIn(id, 1, 2, 3)).
			Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCount measures COUNT rendering.
func BenchmarkCount(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	active := catalog.Col(table, "active")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Count(table).
			Where(dynsql.C(active, dynsql.EQ, true)).
			Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExists measures a correlated EXISTS subquery.
func BenchmarkExists(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	users := catalog.T("users")
	posts := catalog.T("posts")
	sub := dynsql.Select(posts).
		Where(dynsql.CC(catalog.Col(posts, "user_id"), dynsql.EQ, catalog.Col(users, "id"))).
		Where(dynsql.C(catalog.Col(posts, "published"), dynsql.EQ, true))
	query, err := sub.BuildSelect()
	if err != nil {
		b.Fatal(err)
	}
	cond := dynsql.Exists(query)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(users).Where(cond).Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComplexQuery measures a query combining most clauses.
func BenchmarkComplexQuery(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	users := catalog.T("users")
	orders := catalog.T("orders")
	username := catalog.Col(users, "username")
	status := catalog.Col(orders, "status")
	total := catalog.Col(orders, "total")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := dynsql.Select(users).
			Columns(username, status).
			LeftJoin(orders, dynsql.CC(catalog.Col(orders, "user_id"), dynsql.EQ, catalog.Col(users, "id"))).
			Where(dynsql.AllOf(
				dynsql.C(catalog.Col(users, "active"), dynsql.EQ, true),
				dynsql.Between(total, 10, 500),
				dynsql.NotNull(status),
			)).
			OrWhere(dynsql.In(status, "refunded", "disputed")).
			GroupBy(username, status).
			OrderBy(username).
			Limit(50).
			Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConcurrentRender measures rendering one statement from many goroutines.
func BenchmarkConcurrentRender(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	table := catalog.T("users")
	stmt := dynsql.Select(table).
		Where(dynsql.C(catalog.Col(table, "age"), dynsql.GE, 21)).
		MustBuild()
	strategy := postgres.New()

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := dynsql.Render(stmt, strategy); err != nil {
				b.Fatal(err)
			}
		}
	})
}
