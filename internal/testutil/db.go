package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/udisondev/pvpsim/internal/db/migrations"
)

// StartPostgres запускает PostgreSQL testcontainer, применяет миграции и возвращает DSN и pool.
// Использует модуль postgres с BasicWaitStrategies (log occurrence(2) + port check).
// Вызывающий отвечает за terminate: возвращаемая функция останавливает контейнер и закрывает pool.
func StartPostgres(ctx context.Context) (string, *pgxpool.Pool, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pvpsim_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", nil, nil, fmt.Errorf("starting postgres container: %w", err)
	}
	terminate := func() { _ = testcontainers.TerminateContainer(container) }

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, nil, fmt.Errorf("getting connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		terminate()
		return "", nil, nil, fmt.Errorf("connecting to test db: %w", err)
	}

	if err := runMigrations(pool); err != nil {
		pool.Close()
		terminate()
		return "", nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	return dsn, pool, func() {
		pool.Close()
		terminate()
	}, nil
}

// SetupTestDB создаёт отдельный контейнер на тест. Пропускает тест в режиме -short.
// Cleanup автоматически при завершении теста.
func SetupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	if testing.Short() {
		tb.Skip("postgres testcontainer skipped in -short mode")
	}

	_, pool, stop, err := StartPostgres(context.Background())
	if err != nil {
		tb.Fatalf("%v", err)
	}
	tb.Cleanup(stop)
	return pool
}

// Context возвращает context с timeout, отменяемый при завершении теста.
func Context(tb testing.TB) context.Context {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	tb.Cleanup(cancel)
	return ctx
}

// runMigrations применяет embedded миграции через goose.
func runMigrations(pool *pgxpool.Pool) error {
	// goose требует *sql.DB, получаем его из pgxpool
	connStr := stdlib.RegisterConnConfig(pool.Config().ConnConfig)
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("opening sql.DB: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	return nil
}
