//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newGate(t *testing.T) usecase.AdminGate {
	t.Helper()
	g, err := usecase.NewAdminGate("admin", "s3cret", bcrypt.MinCost, discardLogger())
	require.NoError(t, err)
	return g
}

func TestAdminGate_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials open a session", func(t *testing.T) {
		g := newGate(t)
		id, err := g.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.True(t, g.IsActive(id))
	})

	t.Run("each login gets its own session", func(t *testing.T) {
		g := newGate(t)
		a, _ := g.Login(ctx, "admin", "s3cret")
		b, _ := g.Login(ctx, "admin", "s3cret")
		assert.NotEqual(t, a, b)
		assert.True(t, g.IsActive(a))
		assert.True(t, g.IsActive(b))
	})

	rejected := []struct{ name, user, pass string }{
		{"wrong password", "admin", "nope"},
		{"wrong user", "root", "s3cret"},
		{"case differs", "Admin", "s3cret"},
		{"empty", "", ""},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			id, err := newGate(t).Login(ctx, tc.user, tc.pass)
			assert.Empty(t, id)
			assert.ErrorIs(t, err, usecase.ErrInvalidAdminCredentials)
			assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
		})
	}
}

func TestAdminGate_Logout(t *testing.T) {
	ctx := context.Background()
	g := newGate(t)

	id, err := g.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	g.Logout(ctx, id)
	assert.False(t, g.IsActive(id))

	assert.NotPanics(t, func() { g.Logout(ctx, "unknown") })
	assert.False(t, g.IsActive(""))
}
