// Package dbtest starts throwaway PostgreSQL containers for tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"frankit/internal/config"
	"frankit/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a migrated test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// Setup creates a PostgreSQL test container, connects a pool and applies the schema.
func Setup(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// Truncate removes all rows and resets identity sequences.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"TRUNCATE order_items, orders, option_details, product_options, products, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// OrderLine identifies what a seeded order item references. Zero ids are stored as NULL.
type OrderLine struct {
	ProductID int64
	OptionID  int64
	DetailID  int64
}

// SeedOrder inserts one order holding a single item for line, the way the
// ordering system would.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, line OrderLine) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	orderID := uuid.New()

	if _, err := pool.Exec(ctx, "INSERT INTO orders (id) VALUES ($1)", orderID); err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO order_items (id, order_id, product_id, option_id, detail_id, quantity)
		 VALUES ($1, $2, $3, $4, $5, 1)`,
		uuid.New(), orderID, line.ProductID, nullable(line.OptionID), nullable(line.DetailID),
	)
	if err != nil {
		t.Fatalf("failed to seed order item: %v", err)
	}

	return orderID
}

func nullable(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
