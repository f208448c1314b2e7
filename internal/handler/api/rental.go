package api

import (
	"net/http"

	reqdto "equipment-rental/internal/handler/dto/request"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	cmds          commands.RentalCommands
	queries       queries.RentalQueries
	notifications queries.NotificationQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries, nq queries.NotificationQueries) *RentalHandler {
	return &RentalHandler{
		cmds:          cmds,
		queries:       q,
		notifications: nq,
	}
}

// @Summary Submit rental request
// @Description Books a catalog item for a date range. The request starts pending.
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitRentalRequest true "Booking form"
// @Success 201 {object} queries.RentalView
// @Failure 400 {object} httperr.Response
// @Router /api/rentals [post]
func (h *RentalHandler) Submit(c *gin.Context) {
	// Signed-out submissions reach the lifecycle rules, which reject them
	// with the message the booking form shows.
	identity, _ := middleware.GetIdentity(c)

	var req reqdto.SubmitRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), identity, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/rentals/"+view.ID)
	c.JSON(http.StatusCreated, view)
}

// @Summary My rental requests
// @Tags rentals
// @Produce json
// @Success 200 {object} resdto.RentalListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/rentals/mine [get]
func (h *RentalHandler) ListMine(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	views, err := h.queries.ListByUser(c.Request.Context(), identity.Email().Value())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary My rental counters
// @Tags rentals
// @Produce json
// @Success 200 {object} queries.UserRentalSummary
// @Failure 401 {object} httperr.Response
// @Router /api/rentals/mine/summary [get]
func (h *RentalHandler) MySummary(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	summary, err := h.queries.UserSummary(c.Request.Context(), identity.Email().Value())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary All rental requests
// @Tags admin
// @Produce json
// @Param status query string false "pending, approved or disapproved"
// @Success 200 {object} resdto.RentalListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/rentals [get]
func (h *RentalHandler) AdminList(c *gin.Context) {
	var query reqdto.RentalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	views, err := h.queries.ListAll(c.Request.Context(), query.ToFilters())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Approve or disapprove a request
// @Description Only pending requests can be decided. The requester is emailed in the background.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body reqdto.UpdateStatusRequest true "Decision"
// @Success 200 {object} queries.RentalView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/rentals/{id}/status [patch]
func (h *RentalHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Notification state of a request
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} queries.NotificationStatusView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/rentals/{id}/notification [get]
func (h *RentalHandler) NotificationStatus(c *gin.Context) {
	status, err := h.notifications.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Admin dashboard counters
// @Tags admin
// @Produce json
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} httperr.Response
// @Router /api/admin/dashboard [get]
func (h *RentalHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.queries.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
