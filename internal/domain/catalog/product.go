package catalog

import (
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductType distinguishes metered fuel from shop goods
type ProductType string

const (
	ProductTypeFuel  ProductType = "FUEL"  // Dispensed through a pump with a tank meter
	ProductTypeStore ProductType = "STORE" // Lubricants, accessories, shop items
)

// IsValid checks if the product type is valid
func (t ProductType) IsValid() bool {
	return t == ProductTypeFuel || t == ProductTypeStore
}

// String returns the string representation of ProductType
func (t ProductType) String() string {
	return string(t)
}

// Product is a sellable item in the station catalog. PurchasePrice is
// the current catalog cost and serves as the fallback when no purchase
// history exists for historical cost lookups.
type Product struct {
	shared.BaseAggregateRoot
	SKU           string
	Name          string
	Type          ProductType
	Unit          string // "L" for fuel, "pc" etc. for store items
	SellPrice     decimal.Decimal
	PurchasePrice decimal.Decimal
}

// NewProduct creates a new catalog product
func NewProduct(sku, name string, productType ProductType, unit string, sellPrice, purchasePrice decimal.Decimal) (*Product, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if !productType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Product type is not valid")
	}
	if sellPrice.IsNegative() || purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if unit == "" {
		unit = "pc"
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              name,
		Type:              productType,
		Unit:              unit,
		SellPrice:         sellPrice,
		PurchasePrice:     purchasePrice,
	}, nil
}

// IsFuel returns true if the product is dispensed fuel
func (p *Product) IsFuel() bool {
	return p.Type == ProductTypeFuel
}

// UpdatePrices updates the sell and purchase prices
func (p *Product) UpdatePrices(sellPrice, purchasePrice decimal.Decimal) error {
	if sellPrice.IsNegative() || purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	p.SellPrice = sellPrice
	p.PurchasePrice = purchasePrice
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Rename updates the product name
func (p *Product) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.Touch()
	p.IncrementVersion()
	return nil
}
