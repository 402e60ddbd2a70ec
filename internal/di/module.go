package di

import (
	"go.uber.org/fx"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/app"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/logger"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/pkg/auth"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/router"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/storage"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/usecase"
)

// UserModule composes the user-service graph.
func UserModule(opts ...fx.Option) fx.Option {
	modules := append(common(config.UserService),
		auth.Module,
		usecase.UserModule,
		router.UserModule,
		app.UserModule,
	)
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// OrderModule composes the order-service graph.
func OrderModule(opts ...fx.Option) fx.Option {
	modules := append(common(config.OrderService),
		usecase.CatalogModule,
		router.OrderModule,
		app.OrderModule,
	)
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

func common(service string) []fx.Option {
	return []fx.Option{
		config.Module(service),
		logger.Module,
		storage.Module,
		fx.Provide(func(b storage.Backend) app.HealthChecker { return b }),
	}
}
