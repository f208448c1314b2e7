package middleware

import (
	"net/http"
	"strings"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/pkg/cookie"
	"equipment-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	adminGate      usecase.AdminGate
}

const (
	ctxIdentityKey  = "identity"
	ctxUserEmailKey = "user_email"
	ctxAdminKey     = "admin"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, adminGate usecase.AdminGate) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		adminGate:      adminGate,
	}
}

// RequireUser accepts the session cookie or a bearer token.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Sign in required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalUser attaches the identity when a valid session is present and
// never aborts.
func (m *AuthMiddleware) OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := sessionToken(c); token != "" {
			if identity, err := m.tokenValidator.ValidateToken(token); err == nil {
				setIdentity(c, identity)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.adminGate.IsActive(cookie.GetAdminSession(c)) {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Admin sign-in required", nil)
			return
		}
		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, identity user.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxUserEmailKey, identity.Email().Value())
}

// GetIdentity returns the signed-in user, or the zero identity.
func GetIdentity(c *gin.Context) (user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}, false
	}
	identity, ok := v.(user.Identity)
	return identity, ok && identity.IsSignedIn()
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxAdminKey)
}
