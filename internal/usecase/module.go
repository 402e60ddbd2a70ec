package usecase

import "go.uber.org/fx"

// UserModule provides account use cases to the fx container.
var UserModule = fx.Provide(NewAuthUseCase)

// CatalogModule provides product catalog use cases to the fx container.
var CatalogModule = fx.Provide(NewCatalogUseCase)
