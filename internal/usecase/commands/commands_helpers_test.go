//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"equipment-rental/internal/domain/user"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedIn(t *testing.T) user.Identity {
	t.Helper()
	id, err := user.NewIdentity("Ana", "ana@example.com", "")
	require.NoError(t, err)
	return id
}
