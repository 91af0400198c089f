// Command init_db creates the tables used for optional search run persistence.
//
// Usage:
//
//	go run cmd/tools/init_db/main.go
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const schema = `
CREATE TABLE IF NOT EXISTS searches (
    id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    location      text NOT NULL,
    sic_codes     text[] NOT NULL,
    total_results integer NOT NULL DEFAULT 0,
    returned      integer NOT NULL DEFAULT 0,
    written       integer NOT NULL DEFAULT 0,
    skipped       integer NOT NULL DEFAULT 0,
    output_file   text NOT NULL,
    created_at    timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS search_companies (
    id             uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    search_id      uuid NOT NULL REFERENCES searches(id) ON DELETE CASCADE,
    company_name   text NOT NULL,
    address_line_1 text NOT NULL DEFAULT '',
    address_line_2 text NOT NULL DEFAULT '',
    locality       text NOT NULL DEFAULT '',
    postal_code    text NOT NULL DEFAULT '',
    has_address    boolean NOT NULL DEFAULT false,
    created_at     timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_search_companies_search_id ON search_companies(search_id);
`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Schema created.")
}
