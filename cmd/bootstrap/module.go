package bootstrap

import (
	"equipment-rental/cmd/bootstrap/components"
	"equipment-rental/internal/pkg/clock"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(clock.NewRealClock),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	StorageModule,
	JWTModule,
	NotificationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
