//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/jwt"
	"equipment-rental/internal/usecase"
	"equipment-rental/tests/common/authtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIdentityService_SignInWithGoogle(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	svc := usecase.NewIdentityService(jwtService, discardLogger())
	ctx := context.Background()

	t.Run("issues a session for a decodable credential", func(t *testing.T) {
		cred := authtest.GoogleCredential(t, "Ana Lima", "ana@example.com", "https://img/a.png")

		sess, err := svc.SignInWithGoogle(ctx, cred)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, sess.ExpiresIn)
		assert.Equal(t, "Ana Lima", sess.Identity.Name())
		assert.Equal(t, "ana@example.com", sess.Identity.Email().Value())
		assert.Equal(t, "https://img/a.png", sess.Identity.Picture())

		claims, err := jwtService.ValidateToken(sess.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", claims.Email)
	})

	t.Run("missing name falls back to the email local part", func(t *testing.T) {
		sess, err := svc.SignInWithGoogle(ctx, authtest.GoogleCredential(t, "", "bo@example.com", ""))
		require.NoError(t, err)
		assert.Equal(t, "bo", sess.Identity.Name())
	})

	declined := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"no email":     authtest.GoogleCredential(t, "Ana", "", ""),
		"bad email":    authtest.GoogleCredential(t, "Ana", "ana-at-example", ""),
		"two segments": "aaa.bbb",
	}
	for name, cred := range declined {
		t.Run("declines "+name, func(t *testing.T) {
			sess, err := svc.SignInWithGoogle(ctx, cred)
			assert.Nil(t, sess)
			assert.True(t, errs.Is(err, usecase.ErrSignInDeclined))
		})
	}
}

func TestTokenValidator(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	v := usecase.NewTokenValidator(jwtService)

	sess, err := usecase.NewIdentityService(jwtService, discardLogger()).
		SignInWithGoogle(context.Background(), authtest.GoogleCredential(t, "Ana", "ana@example.com", ""))
	require.NoError(t, err)

	id, err := v.ValidateToken(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ana", id.Name())
	assert.True(t, id.IsSignedIn())

	_, err = v.ValidateToken(sess.Token + "x")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
