//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"equipment-rental/internal/handler/dto/request"
	"equipment-rental/internal/pkg/cookie"
	"equipment-rental/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

// SignIn goes through the Google sign-in endpoint and returns the session
// cookie.
func SignIn(t *testing.T, h http.Handler, name, email string) *http.Cookie {
	t.Helper()

	w := httptest.Do(t, h, http.MethodPost, "/api/auth/google",
		request.GoogleSignInRequest{Credential: GoogleCredential(t, name, email, "")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.Cookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "session cookie not set")
	require.NotEmpty(t, session.Value, "session cookie is empty")
	return session
}

func AdminLogin(t *testing.T, h http.Handler, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.Do(t, h, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.Cookie(w, cookie.AdminSessionCookieName)
	require.NotNil(t, session, "admin session cookie not set")
	return session
}

func AdminLogout(t *testing.T, h http.Handler, session *http.Cookie) {
	t.Helper()

	w := httptest.Do(t, h, http.MethodPost, "/api/admin/logout", nil, httptest.WithCookies(session))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
