package db

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/pvpsim/internal/testutil"
)

// testPool — shared connection pool для всех tests в package db.
// nil в режиме -short.
var (
	testPool *pgxpool.Pool
	testDSN  string
)

// TestMain поднимает один PostgreSQL testcontainer на весь package.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	dsn, pool, stop, err := testutil.StartPostgres(context.Background())
	if err != nil {
		log.Fatalf("%v", err)
	}
	testPool, testDSN = pool, dsn

	code := m.Run()
	stop()
	os.Exit(code)
}

// setupTestDB возвращает shared pool и очищает таблицы для изоляции между тестами.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	if testPool == nil {
		tb.Skip("postgres testcontainer skipped in -short mode")
	}

	ctx := context.Background()
	for _, query := range []string{"TRUNCATE battles", "TRUNCATE rankings"} {
		if _, err := testPool.Exec(ctx, query); err != nil {
			tb.Logf("cleanup warning: %v", err) // non-fatal
		}
	}
	return testPool
}
