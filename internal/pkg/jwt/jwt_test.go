//go:build unit

package jwt

import (
	"testing"
	"time"

	"equipment-rental/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIdentity(t *testing.T) user.Identity {
	t.Helper()
	id, err := user.NewIdentity("Ana", "ana@example.com", "https://img/a.png")
	require.NoError(t, err)
	return id
}

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	token, err := svc.GenerateToken(mustIdentity(t))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, "https://img/a.png", claims.Picture)
}

func TestService_Expired(t *testing.T) {
	svc := NewService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken(mustIdentity(t))
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_WrongSecret(t *testing.T) {
	token, err := NewService("one", time.Hour).GenerateToken(mustIdentity(t))
	require.NoError(t, err)

	_, err = NewService("two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewService("two", time.Hour).ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeGoogleCredential(t *testing.T) {
	t.Run("decodes without verifying", func(t *testing.T) {
		// Signed with a key we do not hold on the server side.
		tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, GoogleClaims{
			Name:    "Ana",
			Email:   "ana@example.com",
			Picture: "https://img/a.png",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "https://accounts.google.com",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		credential, err := tok.SignedString([]byte("google-side-key"))
		require.NoError(t, err)

		claims, err := DecodeGoogleCredential(credential)
		require.NoError(t, err)
		assert.Equal(t, "Ana", claims.Name)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, "https://img/a.png", claims.Picture)
	})

	for _, credential := range []string{"", "not-a-jwt", "a.b.c", "x.!!!.y"} {
		t.Run("rejects "+credential, func(t *testing.T) {
			_, err := DecodeGoogleCredential(credential)
			assert.ErrorIs(t, err, ErrUndecodableCredential)
		})
	}
}
