package models

import (
	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product aggregate
type ProductModel struct {
	AggregateModel
	SKU           string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string              `gorm:"type:varchar(200);not null"`
	Type          catalog.ProductType `gorm:"type:varchar(10);not null;index"`
	Unit          string              `gorm:"type:varchar(20);not null"`
	SellPrice     decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasePrice decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SKU:               m.SKU,
		Name:              m.Name,
		Type:              m.Type,
		Unit:              m.Unit,
		SellPrice:         m.SellPrice,
		PurchasePrice:     m.PurchasePrice,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Type = p.Type
	m.Unit = p.Unit
	m.SellPrice = p.SellPrice
	m.PurchasePrice = p.PurchasePrice
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
