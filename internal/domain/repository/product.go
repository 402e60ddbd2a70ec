package repository

import (
	"context"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
)

// ProductRepository describes persistence operations with the product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	// Upsert stores product keyed by SKU and returns the stored row.
	Upsert(ctx context.Context, product model.Product) (*model.Product, error)
}
