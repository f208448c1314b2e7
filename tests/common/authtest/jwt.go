//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// GoogleCredential builds an ID-token shaped credential. The signature is
// random since it is never verified.
func GoogleCredential(t *testing.T, name, email, picture string) string {
	t.Helper()
	claims := gojwt.MapClaims{
		"iss":            "https://accounts.google.com",
		"sub":            "1234567890",
		"email":          email,
		"email_verified": true,
		"exp":            time.Now().Add(time.Hour).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	if picture != "" {
		claims["picture"] = picture
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("not-google"))
	require.NoError(t, err)
	return token
}

type JWTHelper struct {
	cfg config.SessionConfig
}

func NewJWTHelper(cfg config.SessionConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, name, email string) string {
	t.Helper()
	duration, err := h.cfg.TokenDuration()
	require.NoError(t, err)
	return h.generate(t, duration, name, email)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, name, email string) string {
	t.Helper()
	return h.generate(t, -time.Minute, name, email)
}

func (h *JWTHelper) generate(t *testing.T, d time.Duration, name, email string) string {
	t.Helper()
	identity, err := user.NewIdentity(name, email, "")
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, d).GenerateToken(identity)
	require.NoError(t, err)
	return token
}
