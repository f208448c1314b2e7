package bootstrap

import (
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := cfg.Session.TokenDuration()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.Session.Secret, duration), nil
}
