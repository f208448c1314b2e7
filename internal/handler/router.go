package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"equipment-rental/internal/handler/api"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Admin      *api.AdminHandler
	Catalog    *api.CatalogHandler
	Rental     *api.RentalHandler
	Preference *api.PreferenceHandler
	Feed       *api.FeedHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/google", Handler: h.Auth.GoogleSignIn},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authMiddleware.OptionalUser()}},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.Get},
		})

		rentals := apiGroup.Group("/rentals")
		addRoutes(rentals, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Rental.Submit, Mw: []gin.HandlerFunc{authMiddleware.OptionalUser()}},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Rental.ListMine, Mw: []gin.HandlerFunc{authMiddleware.RequireUser()}},
			{Method: http.MethodGet, Path: "/mine/summary", Handler: h.Rental.MySummary, Mw: []gin.HandlerFunc{authMiddleware.RequireUser()}},
		})

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireUser())
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "/preferences", Handler: h.Preference.Get},
			{Method: http.MethodPut, Path: "/preferences", Handler: h.Preference.Update},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
				{Method: http.MethodGet, Path: "/session", Handler: h.Admin.Session},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/catalog", Handler: h.Catalog.Add},
				{Method: http.MethodGet, Path: "/rentals", Handler: h.Rental.AdminList},
				{Method: http.MethodPatch, Path: "/rentals/:id/status", Handler: h.Rental.UpdateStatus},
				{Method: http.MethodGet, Path: "/rentals/:id/notification", Handler: h.Rental.NotificationStatus},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Rental.Dashboard},
				{Method: http.MethodGet, Path: "/notifications/ws", Handler: h.Feed.Stream},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
