package bootstrap

import (
	"context"
	"log/slog"

	"equipment-rental/internal/handler/api"
	"equipment-rental/internal/infra/notification"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) (notification.Sender, error) {
			return notification.NewSender(cfg.Mail, logger)
		},
		fx.Annotate(
			NewFeed,
			fx.As(fx.Self()),
			fx.As(new(notification.Publisher)),
			fx.As(new(api.FeedServer)),
		),
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.Notifier)),
			fx.As(new(queries.DispatchTracker)),
		),
	),
)

func NewFeed(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *notification.Feed {
	feed := notification.NewFeed(cfg.CORS.AllowOrigins, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			feed.Close()
			return nil
		},
	})
	return feed
}

// NewDispatcher drains in-flight sends on shutdown, up to the stop deadline.
func NewDispatcher(lc fx.Lifecycle, sender notification.Sender, publisher notification.Publisher, clk clock.Clock, logger *slog.Logger) *notification.Dispatcher {
	d := notification.NewDispatcher(sender, publisher, clk, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := d.Shutdown(ctx); err != nil {
				logger.Warn("Notification dispatcher stopped with sends still in flight", "error", err)
			}
			return nil
		},
	})
	return d
}
