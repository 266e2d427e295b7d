package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Filter defines filtering options for product queries
type Filter struct {
	Type   *ProductType
	Search string
	Limit  int
	Offset int
}

// Repository defines the interface for product persistence
type Repository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindAll finds products matching the filter
	FindAll(ctx context.Context, filter Filter) ([]*Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
