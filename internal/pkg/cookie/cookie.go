package cookie

import (
	"net/http"
	"time"

	"equipment-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName      = "session_token"
	AdminSessionCookieName = "admin_session"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, SessionCookieName, token, int(expiry.Seconds()))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, SessionCookieName, "", -1)
}

// SetAdminSessionCookie writes a session cookie with no Max-Age; the admin
// session itself lives until logout or restart.
func SetAdminSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	set(c, cfg, AdminSessionCookieName, sessionID, 0)
}

func ClearAdminSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AdminSessionCookieName, "", -1)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

func GetAdminSession(c *gin.Context) string {
	id, _ := c.Cookie(AdminSessionCookieName)
	return id
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
