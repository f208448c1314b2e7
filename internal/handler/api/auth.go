package api

import (
	"net/http"

	reqdto "equipment-rental/internal/handler/dto/request"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/cookie"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	identity  usecase.IdentityService
	cookieCfg config.CookieConfig
}

func NewAuthHandler(identity usecase.IdentityService, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		identity:  identity,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Sign in with Google
// @Description Exchange a Google Identity Services credential for a session. An undecodable credential leaves the caller signed out.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.GoogleSignInRequest true "Google credential"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/google [post]
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req reqdto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	sess, err := h.identity.SignInWithGoogle(c.Request.Context(), req.Credential)
	if err != nil {
		if errs.Is(err, usecase.ErrSignInDeclined) {
			c.JSON(http.StatusOK, resdto.SessionResponse{SignedIn: false})
			return
		}
		httperr.Abort(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, sess.Token, sess.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromSession(sess))
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusOK, resdto.SessionResponse{SignedIn: false})
		return
	}
	c.JSON(http.StatusOK, resdto.SessionResponse{SignedIn: true, User: resdto.FromIdentity(identity)})
}

// @Summary Sign out
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Session tokens are stateless; dropping the cookie is all there is.
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
