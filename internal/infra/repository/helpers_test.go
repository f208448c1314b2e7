//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"equipment-rental/internal/infra/recordstore"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func putJSON(t *testing.T, store recordstore.Store, name string, v any) {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), name, payload))
}

func getJSON(t *testing.T, store recordstore.Store, name string, v any) {
	t.Helper()
	payload, err := store.Get(context.Background(), name)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, v))
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return payload
}
