package db

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/hyperionhq/hyperion/database"
)

// Connect opens a Postgres connection pool, verifies connectivity and
// applies pending schema migrations.
func Connect(dsn string) (*sqlx.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
	}

	// Fail fast on startup if PG is unreachable
	cfg.ConnectTimeout = 5 * time.Second

	// pgx stdlib adapter wrapped in sqlx for struct scanning
	db := sqlx.NewDb(stdlib.OpenDB(*cfg), "pgx")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db: failed to connect to Postgres: %w", err)
	}

	if err := database.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("db: failed to migrate: %w", err)
	}

	return db, nil
}
