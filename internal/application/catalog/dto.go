package catalog

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU           string          `json:"sku" binding:"required,min=1,max=50"`
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Type          string          `json:"type" binding:"required,oneof=FUEL STORE"`
	Unit          string          `json:"unit" binding:"max=20"`
	SellPrice     decimal.Decimal `json:"sell_price" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	SellPrice     *decimal.Decimal `json:"sell_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}

// ListProductsRequest represents query options for listing products
type ListProductsRequest struct {
	Type   string `form:"type" binding:"omitempty,oneof=FUEL STORE"`
	Search string `form:"search"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Unit          string          `json:"unit"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Type:          p.Type.String(),
		Unit:          p.Unit,
		SellPrice:     p.SellPrice,
		PurchasePrice: p.PurchasePrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
