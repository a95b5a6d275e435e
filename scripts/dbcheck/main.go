// Command dbcheck verifies the configured database is reachable and reports
// the row count of each application table.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"frankit/internal/config"
	"frankit/internal/database"

	"github.com/rs/zerolog"
)

var tables = []string{"users", "products", "product_options", "option_details", "orders", "order_items"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	fmt.Println("\nTables:")
	for _, table := range tables {
		var exists bool
		if err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", "public."+table).Scan(&exists); err != nil {
			fmt.Fprintf(os.Stderr, "Lookup of %s failed: %v\n", table, err)
			os.Exit(1)
		}
		if !exists {
			fmt.Printf("  - %-16s missing (run with DB_AUTO_MIGRATE=true)\n", table)
			continue
		}

		var count int64
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			fmt.Fprintf(os.Stderr, "Count of %s failed: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("  - %-16s %d rows\n", table, count)
	}
}
