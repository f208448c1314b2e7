//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// DropRecords removes the records table so the next app boot starts from
// defaults and recreates it.
func DropRecords(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "DROP TABLE IF EXISTS records")
	return err
}

// GetRecord returns the raw payload stored under name, or nil when absent.
func GetRecord(t *testing.T, db DBLike, name string) []byte {
	t.Helper()

	var payload []byte
	err := db.QueryRow(context.Background(), "SELECT payload FROM records WHERE name = $1", name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return payload
}

// PutRecord writes a payload behind the app's back, e.g. a corrupted one.
func PutRecord(t *testing.T, db DBLike, name string, payload []byte) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO records (name, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		name, payload)
	require.NoError(t, err)
}
