package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/legends-backend/internal/adapter/postgres"
)

const (
	image    = "postgres:17-alpine"
	database = "legends"
)

// shared is the one migrated database every test in the process talks to.
var shared struct {
	once sync.Once
	url  string
	err  error
}

// SetupTestDB returns a pool on the shared test database, starting and
// migrating the container on first use. The pool is closed on cleanup; the
// container is reaped with the test process.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), URL(t))
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// URL returns the connection string of the shared test database.
func URL(t *testing.T) string {
	t.Helper()

	shared.once.Do(func() {
		shared.url, shared.err = bootstrap()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: test database unavailable: %v", shared.err)
	}
	return shared.url
}

func bootstrap() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase(database),
		tcpostgres.WithUsername("legends"),
		tcpostgres.WithPassword("legends"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", image, err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return "", fmt.Errorf("migration pool: %w", err)
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return url, nil
}
