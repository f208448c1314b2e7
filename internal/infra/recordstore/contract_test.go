//go:build unit || e2e

package recordstore_test

import (
	"context"
	"testing"

	"equipment-rental/internal/infra/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract checks the behaviour every backend must share.
func runContract(t *testing.T, store recordstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing record", func(t *testing.T) {
		_, err := store.Get(ctx, recordstore.RecordPreferences)
		assert.ErrorIs(t, err, recordstore.ErrRecordNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		payload := []byte(`[{"id":"req_1","status":"pending"}]`)
		require.NoError(t, store.Put(ctx, recordstore.RecordRentals, payload))

		got, err := store.Get(ctx, recordstore.RecordRentals)
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	})

	t.Run("put replaces whole record", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, recordstore.RecordCatalog, []byte(`[{"id":"e1"},{"id":"e2"}]`)))
		require.NoError(t, store.Put(ctx, recordstore.RecordCatalog, []byte(`[{"id":"e_9"}]`)))

		got, err := store.Get(ctx, recordstore.RecordCatalog)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"e_9"}]`, string(got))
	})

	t.Run("records are independent", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, recordstore.RecordRentals, []byte(`[]`)))

		got, err := store.Get(ctx, recordstore.RecordCatalog)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"e_9"}]`, string(got))
	})

	t.Run("payload is opaque", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, recordstore.RecordPreferences, []byte("not json {")))

		got, err := store.Get(ctx, recordstore.RecordPreferences)
		require.NoError(t, err)
		assert.Equal(t, "not json {", string(got))
	})
}
