package auth

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.TokenTTL}

	var strategy Strategy
	if p.Config.TokenStrategy == config.TokenStrategyJWT {
		strategy = NewJWTStrategy(p.Config.JWTSecret, opts)
	} else {
		strategy = NewHMACStrategy(p.Config.JWTSecret, opts)
	}

	p.Logger.Info("auth token strategy selected",
		slog.String("strategy", strategy.Name()),
		slog.Duration("ttl", opts.normalize().TTL),
	)
	return strategy
}
