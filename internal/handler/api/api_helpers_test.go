//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/handler/dto/request"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/pkg/cookie"
	usecasemock "equipment-rental/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userToken    = "user-session-token"
	adminSession = "admin-session-id"
)

// sessions drives the real auth middleware through mocked validators.
type sessions struct {
	tokens *usecasemock.MockTokenValidator
	gate   *usecasemock.MockAdminGate
	mw     *middleware.AuthMiddleware
}

func newSessions(ctrl *gomock.Controller) *sessions {
	tokens := usecasemock.NewMockTokenValidator(ctrl)
	gate := usecasemock.NewMockAdminGate(ctrl)
	return &sessions{tokens: tokens, gate: gate, mw: middleware.NewAuthMiddleware(tokens, gate)}
}

func (s *sessions) userIs(identity user.Identity) {
	s.tokens.EXPECT().ValidateToken(userToken).Return(identity, nil).AnyTimes()
}

func (s *sessions) adminActive() {
	s.gate.EXPECT().IsActive(adminSession).Return(true).AnyTimes()
	s.gate.EXPECT().IsActive("").Return(false).AnyTimes()
}

func adminCookie() *http.Cookie {
	return &http.Cookie{Name: cookie.AdminSessionCookieName, Value: adminSession}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, request.RegisterValidators())
	return gin.New()
}

func ptr[T any](v T) *T { return &v }
