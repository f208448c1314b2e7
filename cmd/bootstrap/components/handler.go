package components

import (
	"equipment-rental/internal/handler"
	"equipment-rental/internal/handler/api"
	"equipment-rental/internal/handler/dto/request"
	"equipment-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAdminHandler,
		api.NewCatalogHandler,
		api.NewRentalHandler,
		api.NewPreferenceHandler,
		api.NewFeedHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(request.RegisterValidators),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	admin *api.AdminHandler,
	catalog *api.CatalogHandler,
	rental *api.RentalHandler,
	preference *api.PreferenceHandler,
	feed *api.FeedHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Admin:      admin,
		Catalog:    catalog,
		Rental:     rental,
		Preference: preference,
		Feed:       feed,
	}
}
