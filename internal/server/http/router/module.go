package router

import (
	"go.uber.org/fx"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/app"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/handlers"
)

// UserModule registers user service router construction for fx runtime.
var UserModule = fx.Provide(
	func(f *app.UserFacade) handlers.UserFacade { return f },
	SetupUser,
)

// OrderModule registers order service router construction for fx runtime.
var OrderModule = fx.Provide(
	func(f *app.CatalogFacade) handlers.OrderFacade { return f },
	SetupOrder,
)
