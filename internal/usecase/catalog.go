package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/repository"
)

// CatalogUseCase serves the read-only product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
	defaults []model.Product
}

// NewCatalogUseCase constructs CatalogUseCase seeded with DefaultProducts.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, defaults: DefaultProducts()}
}

// DefaultProducts is the catalog a fresh order service starts with.
func DefaultProducts() []model.Product {
	return []model.Product{
		{SKU: "TSHIRT-001", Name: "Classic T-Shirt", Description: "Cotton crew neck t-shirt", Category: "apparel", Price: 19.99},
		{SKU: "MUG-001", Name: "Coffee Mug", Description: "Ceramic mug, 350 ml", Category: "kitchen", Price: 9.5},
		{SKU: "BOOK-001", Name: "Go in Practice", Description: "Paperback programming book", Category: "books", Price: 34},
	}
}

// Seed inserts the default products when the catalog is empty and reports how many were stored.
func (u *CatalogUseCase) Seed(ctx context.Context) (int, error) {
	existing, err := u.products.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, p := range u.defaults {
		if err := p.Validate(); err != nil {
			return 0, err
		}
		if _, err := u.products.Upsert(ctx, p); err != nil {
			return 0, fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
	}
	return len(u.defaults), nil
}

// List returns every catalog product.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns a single product by its identifier.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.products.GetByID(ctx, id)
}
