package models

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for a Sale event
type SaleModel struct {
	BaseModel
	CustomerID    *uuid.UUID                `gorm:"type:uuid;index"`
	OccurredAt    time.Time                 `gorm:"not null;index"`
	Items         []SaleItemModel           `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	TotalAmount   valueobject.Money         `gorm:"type:decimal(18,4);not null"`
	PaymentMethod valueobject.PaymentMethod `gorm:"type:varchar(20);not null"`
	Remark        string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel is the persistence model for a sale line item
type SaleItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToDomain converts the persistence model to a domain Sale
func (m *SaleModel) ToDomain() *trade.Sale {
	items := make([]trade.SaleItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = trade.SaleItem{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			Discount:     item.Discount,
			TotalAmount:  item.TotalAmount,
		}
	}
	return &trade.Sale{
		BaseEntity:    m.BaseModel.ToDomain(),
		CustomerID:    m.CustomerID,
		OccurredAt:    m.OccurredAt,
		Items:         items,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: m.PaymentMethod,
		Remark:        m.Remark,
	}
}

// SaleModelFromDomain creates a new persistence model from a domain Sale
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	m := &SaleModel{
		CustomerID:    s.CustomerID,
		OccurredAt:    s.OccurredAt,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		Remark:        s.Remark,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Items = make([]SaleItemModel, len(s.Items))
	for i, item := range s.Items {
		m.Items[i] = SaleItemModel{
			ID:           item.ID,
			SaleID:       s.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			Discount:     item.Discount,
			TotalAmount:  item.TotalAmount,
		}
	}
	return m
}

// PurchaseModel is the persistence model for a Purchase event
type PurchaseModel struct {
	BaseModel
	SupplierID uuid.UUID           `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time           `gorm:"not null;index"`
	Items      []PurchaseItemModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	TotalCost  valueobject.Money   `gorm:"type:decimal(18,4);not null"`
	Remark     string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseItemModel is the persistence model for a purchase line item
type PurchaseItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	PurchaseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPerUnit decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalCost   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}

// ToDomain converts the persistence model to a domain Purchase
func (m *PurchaseModel) ToDomain() *trade.Purchase {
	items := make([]trade.PurchaseItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = trade.PurchaseItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			CostPerUnit: item.CostPerUnit,
			TotalCost:   item.TotalCost,
		}
	}
	return &trade.Purchase{
		BaseEntity: m.BaseModel.ToDomain(),
		SupplierID: m.SupplierID,
		OccurredAt: m.OccurredAt,
		Items:      items,
		TotalCost:  m.TotalCost,
		Remark:     m.Remark,
	}
}

// PurchaseModelFromDomain creates a new persistence model from a domain Purchase
func PurchaseModelFromDomain(p *trade.Purchase) *PurchaseModel {
	m := &PurchaseModel{
		SupplierID: p.SupplierID,
		OccurredAt: p.OccurredAt,
		TotalCost:  p.TotalCost,
		Remark:     p.Remark,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Items = make([]PurchaseItemModel, len(p.Items))
	for i, item := range p.Items {
		m.Items[i] = PurchaseItemModel{
			ID:          item.ID,
			PurchaseID:  p.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			CostPerUnit: item.CostPerUnit,
			TotalCost:   item.TotalCost,
		}
	}
	return m
}

// PurchaseReturnModel is the persistence model for a PurchaseReturn event
type PurchaseReturnModel struct {
	BaseModel
	SupplierID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	OccurredAt  time.Time         `gorm:"not null;index"`
	Volume      decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	TotalRefund valueobject.Money `gorm:"type:decimal(18,4);not null"`
	Reason      string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseReturnModel) TableName() string {
	return "purchase_returns"
}

// ToDomain converts the persistence model to a domain PurchaseReturn
func (m *PurchaseReturnModel) ToDomain() *trade.PurchaseReturn {
	return &trade.PurchaseReturn{
		BaseEntity:  m.BaseModel.ToDomain(),
		SupplierID:  m.SupplierID,
		ProductID:   m.ProductID,
		OccurredAt:  m.OccurredAt,
		Volume:      valueobject.MustNewLiters(m.Volume),
		TotalRefund: m.TotalRefund,
		Reason:      m.Reason,
	}
}

// PurchaseReturnModelFromDomain creates a new persistence model from a
// domain PurchaseReturn
func PurchaseReturnModelFromDomain(r *trade.PurchaseReturn) *PurchaseReturnModel {
	m := &PurchaseReturnModel{
		SupplierID:  r.SupplierID,
		ProductID:   r.ProductID,
		OccurredAt:  r.OccurredAt,
		Volume:      r.Volume.Value(),
		TotalRefund: r.TotalRefund,
		Reason:      r.Reason,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
