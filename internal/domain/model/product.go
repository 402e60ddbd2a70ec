package model

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
)

// Product describes a catalog entry offered by the order service.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Category    string
	Price       float64
	CreatedAt   time.Time
}

// Validate reports whether product carries the fields required by the catalog.
func (p Product) Validate() error {
	if strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("%w: sku is required", domainErrors.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrInvalidInput)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrInvalidInput)
	}
	return nil
}
