// Package db provides PostgreSQL storage for extracted candidate profiles.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate creates the candidate tables when they do not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY,
	full_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	github_url TEXT,
	linkedin_url TEXT,
	total_years_experience INT NOT NULL DEFAULT 0 CHECK (total_years_experience BETWEEN 0 AND 60),
	target_role TEXT NOT NULL DEFAULT '',
	source_file TEXT NOT NULL DEFAULT '',
	source_hash TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS candidate_skills (
	id UUID PRIMARY KEY,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	years NUMERIC(5,2) NOT NULL CHECK (years BETWEEN 0 AND 60),
	ordinal INT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidate_skills_candidate ON candidate_skills(candidate_id);
CREATE TABLE IF NOT EXISTS candidate_employment (
	id UUID PRIMARY KEY,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	company TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL DEFAULT '',
	start_raw TEXT,
	end_raw TEXT,
	start_date DATE,
	end_date DATE,
	summary TEXT NOT NULL DEFAULT '',
	ordinal INT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidate_employment_candidate ON candidate_employment(candidate_id);
`

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
