package app

import (
	"context"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UserFacade exposes account operations of the user service.
type UserFacade struct {
	auth   *usecase.AuthUseCase
	health HealthChecker
}

func NewUserFacade(auth *usecase.AuthUseCase, health HealthChecker) *UserFacade {
	return &UserFacade{auth: auth, health: health}
}

func (f *UserFacade) Register(ctx context.Context, reg model.Registration) (*model.Account, string, error) {
	return f.auth.Register(ctx, reg)
}

func (f *UserFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *UserFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *UserFacade) Profile(ctx context.Context, accountID int64) (*model.Account, error) {
	return f.auth.Profile(ctx, accountID)
}

func (f *UserFacade) Ready(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// CatalogFacade exposes product catalog operations of the order service.
type CatalogFacade struct {
	catalog *usecase.CatalogUseCase
	health  HealthChecker
}

func NewCatalogFacade(catalog *usecase.CatalogUseCase, health HealthChecker) *CatalogFacade {
	return &CatalogFacade{catalog: catalog, health: health}
}

// Products never returns a nil slice so that an empty catalog encodes as [].
func (f *CatalogFacade) Products(ctx context.Context) ([]model.Product, error) {
	products, err := f.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (f *CatalogFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *CatalogFacade) Seed(ctx context.Context) (int, error) {
	return f.catalog.Seed(ctx)
}

func (f *CatalogFacade) Ready(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
