package components

import (
	"log/slog"

	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/password"
	"equipment-rental/internal/usecase"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		// Identity
		usecase.NewIdentityService,
		usecase.NewTokenValidator,
		NewAdminGate,

		// Commands
		commands.NewCatalogCommands,
		commands.NewRentalCommands,
		commands.NewPreferenceCommands,
		NewRentalPolicy,

		// Queries
		queries.NewCatalogQueries,
		queries.NewRentalQueries,
		queries.NewPreferenceQueries,
		queries.NewNotificationQueries,
	),
)

func NewAdminGate(cfg config.Config, logger *slog.Logger) (usecase.AdminGate, error) {
	return usecase.NewAdminGate(cfg.Admin.Username, cfg.Admin.Password, password.DefaultCost, logger)
}

func NewRentalPolicy(cfg config.Config) commands.RentalPolicy {
	return commands.RentalPolicy{RequireTimes: cfg.Rental.RequireTimes}
}
