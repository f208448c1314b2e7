package api

import (
	"net/http"

	reqdto "equipment-rental/internal/handler/dto/request"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Browse the catalog
// @Description Items of one category whose title or description contains q (case-insensitive). Category defaults to equipment.
// @Tags catalog
// @Produce json
// @Param q query string false "Search term"
// @Param category query string false "equipment or lab"
// @Success 200 {object} resdto.CatalogListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var query reqdto.CatalogSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}
	category := query.CategoryOrDefault()

	items, err := h.q.Search(c.Request.Context(), query.Q, category)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogViews(items, category.String(), query.Q))
}

// @Summary Get catalog item
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} queries.CatalogItemView
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Add catalog item
// @Description New items are listed first. Omitted fields take defaults (empty description, price 0, category equipment).
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "New item"
// @Success 201 {object} queries.CatalogItemView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/catalog [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err), nil)
		return
	}

	item, err := h.cmds.AddItem(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/catalog/"+item.ID)
	c.JSON(http.StatusCreated, item)
}
