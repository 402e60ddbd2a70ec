package handlers

import (
	"context"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, reg model.Registration) (*model.Account, string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, accountID int64) (*model.Account, error)
}

// CatalogFacade provides read access to the product catalog.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
}

// ReadinessProbe reports whether the service can serve traffic.
type ReadinessProbe interface {
	Ready(ctx context.Context) error
}

// UserFacade aggregates the operations used by user-service handlers.
type UserFacade interface {
	AuthFacade
	ReadinessProbe
}

// OrderFacade aggregates the operations used by order-service handlers.
type OrderFacade interface {
	CatalogFacade
	ReadinessProbe
}
