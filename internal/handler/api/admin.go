package api

import (
	"net/http"

	reqdto "equipment-rental/internal/handler/dto/request"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/cookie"
	"equipment-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	gate      usecase.AdminGate
	cookieCfg config.CookieConfig
}

func NewAdminHandler(gate usecase.AdminGate, cfg config.Config) *AdminHandler {
	return &AdminHandler{gate: gate, cookieCfg: cfg.Cookie}
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} resdto.AdminSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	sessionID, err := h.gate.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAdminSessionCookie(c, h.cookieCfg, sessionID)
	c.JSON(http.StatusOK, resdto.AdminSessionResponse{IsAdminAuthenticated: true})
}

// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.AdminSessionResponse
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	if id := cookie.GetAdminSession(c); id != "" {
		h.gate.Logout(c.Request.Context(), id)
	}
	cookie.ClearAdminSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.AdminSessionResponse{IsAdminAuthenticated: false})
}

// @Summary Admin session state
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.AdminSessionResponse
// @Router /api/admin/session [get]
func (h *AdminHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.AdminSessionResponse{
		IsAdminAuthenticated: h.gate.IsActive(cookie.GetAdminSession(c)),
	})
}
