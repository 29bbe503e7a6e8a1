// Package integration runs rendered dynsql statements against real databases.
package integration

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
)

// Shared containers - lazily initialized
var (
	sharedPgContainer      *PostgresContainer
	sharedMariaDBContainer *MariaDBContainer
	sharedMSSQLContainer   *MSSQLContainer

	pgOnce      sync.Once
	mariadbOnce sync.Once
	mssqlOnce   sync.Once

	// Teardown functions of started containers, run after all tests.
	teardownMu sync.Mutex
	teardown   []func(context.Context)
)

// TestMain runs the tests and terminates every container that was started.
func TestMain(m *testing.M) {
	// testing.Short() is not available before flag parsing; each test
	// checks short mode itself through skipShort.
	code := m.Run()

	ctx := context.Background()
	teardownMu.Lock()
	for i := len(teardown) - 1; i >= 0; i-- {
		teardown[i](ctx)
	}
	teardownMu.Unlock()

	os.Exit(code)
}

func onTeardown(fn func(context.Context)) {
	teardownMu.Lock()
	defer teardownMu.Unlock()
	teardown = append(teardown, fn)
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// newCatalog creates a catalog matching the integration schema shared by
// every database: users, posts and orders.
func newCatalog(t *testing.T) *dynsql.Catalog {
	t.Helper()

	project := dbml.NewProject("integration")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
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
		t.Fatalf("Failed to create catalog: %v", err)
	}
	return catalog
}

// scanStrings reads a single string column from every row.
func scanStrings(t *testing.T, rows *sql.Rows) []string {
	t.Helper()
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	return out
}

// waitForPing retries db.Ping until it succeeds or attempts run out.
func waitForPing(db *sql.DB, attempts int) {
	for i := 0; i < attempts; i++ {
		if err := db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
}

// getPostgresContainer returns the shared PostgreSQL container, starting it if needed.
func getPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("dynsql_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}

		sharedPgContainer = &PostgresContainer{container: container, conn: conn}
		onTeardown(func(ctx context.Context) {
			_ = conn.Close(ctx)
			_ = container.Terminate(ctx)
		})
	})

	return sharedPgContainer
}

// getMariaDBContainer returns the shared MariaDB container, starting it if needed.
func getMariaDBContainer(t *testing.T) *MariaDBContainer {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("dynsql_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("mysql", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mariadb: %v", err)
		}
		waitForPing(db, 30)

		sharedMariaDBContainer = &MariaDBContainer{container: container, db: db}
		onTeardown(func(ctx context.Context) {
			_ = db.Close()
			_ = container.Terminate(ctx)
		})
	})

	return sharedMariaDBContainer
}

// getMSSQLContainer returns the shared MSSQL container, starting it if needed.
func getMSSQLContainer(t *testing.T) *MSSQLContainer {
	t.Helper()

	mssqlOnce.Do(func() {
		ctx := context.Background()

		container, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mssql container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("sqlserver", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mssql: %v", err)
		}
		waitForPing(db, 60)

		sharedMSSQLContainer = &MSSQLContainer{container: container, db: db}
		onTeardown(func(ctx context.Context) {
			_ = db.Close()
			_ = container.Terminate(ctx)
		})
	})

	return sharedMSSQLContainer
}
