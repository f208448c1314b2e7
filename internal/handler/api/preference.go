package api

import (
	"net/http"

	reqdto "equipment-rental/internal/handler/dto/request"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	cmds    commands.PreferenceCommands
	queries queries.PreferenceQueries
}

func NewPreferenceHandler(cmds commands.PreferenceCommands, q queries.PreferenceQueries) *PreferenceHandler {
	return &PreferenceHandler{cmds: cmds, queries: q}
}

// @Summary Get my preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} queries.PreferenceView
// @Failure 401 {object} httperr.Response
// @Router /api/me/preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	prefs, err := h.queries.Get(c.Request.Context(), identity.Email().Value())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// @Summary Update my preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body reqdto.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} queries.PreferenceView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/me/preferences [put]
func (h *PreferenceHandler) Update(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req reqdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	prefs, err := h.cmds.SetDarkMode(c.Request.Context(), identity, *req.DarkMode)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}
