package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// Config holds configuration for the Postgres ledger repository
type Config struct {
	// DB is an open database handle
	DB *sql.DB
}

// pgRepository implements the ledger.Repository interface on PostgreSQL
type pgRepository struct {
	db *sql.DB
}

// New creates a new Postgres-backed ledger repository
func New(cfg *Config) (*pgRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	return &pgRepository{
		db: cfg.DB,
	}, nil
}

// OpenDB opens and pings a PostgreSQL database via the pgx stdlib driver
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
