package recordstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS records (
    name       TEXT PRIMARY KEY,
    payload    BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertRecord = `
INSERT INTO records (name, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func ConnectPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewPostgresStore(ctx, pool)
}

// NewPostgresStore creates the records table if it is missing.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createRecordsTable); err != nil {
		return nil, fmt.Errorf("failed to create records table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, "SELECT payload FROM records WHERE name = $1", name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select record %s: %w", name, err)
	}
	return payload, nil
}

func (s *PostgresStore) Put(ctx context.Context, name string, payload []byte) error {
	if _, err := s.pool.Exec(ctx, upsertRecord, name, payload); err != nil {
		return fmt.Errorf("upsert record %s: %w", name, err)
	}
	return nil
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
