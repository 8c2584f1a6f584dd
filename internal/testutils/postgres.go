//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/linskybing/clientdesk/internal/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// SetupPostgres returns the URL of a migrated, empty database. TEST_DB_DSN
// points at an existing server; otherwise a postgres container is started and
// terminated when the test ends.
func SetupPostgres(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		ctx := context.Background()
		pg, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("clientdesk"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.BasicWaitStrategies(),
		)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pg); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})
		if err != nil {
			t.Fatalf("start postgres container: %v", err)
		}

		dsn, err = pg.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			t.Fatalf("postgres connection string: %v", err)
		}
	}

	if err := migrations.Up(dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	resetTables(t, dsn)
	return dsn
}

func resetTables(t *testing.T, dsn string) {
	t.Helper()
	db := OpenSQL(t, dsn)
	if _, err := db.Exec(`TRUNCATE project_users, project, client, audit_logs, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
}

// OpenSQL opens a plain database/sql handle for assertions on raw rows.
func OpenSQL(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open sql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
