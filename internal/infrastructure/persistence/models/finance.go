package models

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CustomerPaymentModel is the persistence model for a CustomerPayment event
type CustomerPaymentModel struct {
	BaseModel
	CustomerID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time                 `gorm:"not null;index"`
	Amount     valueobject.Money         `gorm:"type:decimal(18,4);not null"`
	Method     valueobject.PaymentMethod `gorm:"type:varchar(20);not null"`
	Remark     string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerPaymentModel) TableName() string {
	return "customer_payments"
}

// ToDomain converts the persistence model to a domain CustomerPayment
func (m *CustomerPaymentModel) ToDomain() *finance.CustomerPayment {
	return &finance.CustomerPayment{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		OccurredAt: m.OccurredAt,
		Amount:     m.Amount,
		Method:     m.Method,
		Remark:     m.Remark,
	}
}

// CustomerPaymentModelFromDomain creates a new persistence model from a
// domain CustomerPayment
func CustomerPaymentModelFromDomain(p *finance.CustomerPayment) *CustomerPaymentModel {
	m := &CustomerPaymentModel{
		CustomerID: p.CustomerID,
		OccurredAt: p.OccurredAt,
		Amount:     p.Amount,
		Method:     p.Method,
		Remark:     p.Remark,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// SupplierPaymentModel is the persistence model for a SupplierPayment event
type SupplierPaymentModel struct {
	BaseModel
	SupplierID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time                 `gorm:"not null;index"`
	Amount     valueobject.Money         `gorm:"type:decimal(18,4);not null"`
	Method     valueobject.PaymentMethod `gorm:"type:varchar(20);not null"`
	Remark     string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierPaymentModel) TableName() string {
	return "supplier_payments"
}

// ToDomain converts the persistence model to a domain SupplierPayment
func (m *SupplierPaymentModel) ToDomain() *finance.SupplierPayment {
	return &finance.SupplierPayment{
		BaseEntity: m.BaseModel.ToDomain(),
		SupplierID: m.SupplierID,
		OccurredAt: m.OccurredAt,
		Amount:     m.Amount,
		Method:     m.Method,
		Remark:     m.Remark,
	}
}

// SupplierPaymentModelFromDomain creates a new persistence model from a
// domain SupplierPayment
func SupplierPaymentModelFromDomain(p *finance.SupplierPayment) *SupplierPaymentModel {
	m := &SupplierPaymentModel{
		SupplierID: p.SupplierID,
		OccurredAt: p.OccurredAt,
		Amount:     p.Amount,
		Method:     p.Method,
		Remark:     p.Remark,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// CashAdvanceModel is the persistence model for a CashAdvance event
type CashAdvanceModel struct {
	BaseModel
	PartyID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time         `gorm:"not null;index"`
	Amount     valueobject.Money `gorm:"type:decimal(18,4);not null"`
	Notes      string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CashAdvanceModel) TableName() string {
	return "cash_advances"
}

// ToDomain converts the persistence model to a domain CashAdvance
func (m *CashAdvanceModel) ToDomain() *finance.CashAdvance {
	return &finance.CashAdvance{
		BaseEntity: m.BaseModel.ToDomain(),
		PartyID:    m.PartyID,
		OccurredAt: m.OccurredAt,
		Amount:     m.Amount,
		Notes:      m.Notes,
	}
}

// CashAdvanceModelFromDomain creates a new persistence model from a
// domain CashAdvance
func CashAdvanceModelFromDomain(a *finance.CashAdvance) *CashAdvanceModel {
	m := &CashAdvanceModel{
		PartyID:    a.PartyID,
		OccurredAt: a.OccurredAt,
		Amount:     a.Amount,
		Notes:      a.Notes,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}

// CapitalEntryModel is the persistence model for a CapitalEntry event
type CapitalEntryModel struct {
	BaseModel
	PartnerID  uuid.UUID                `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time                `gorm:"not null;index"`
	Type       finance.CapitalEntryType `gorm:"type:varchar(20);not null"`
	Amount     valueobject.Money        `gorm:"type:decimal(18,4);not null"`
	Remark     string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CapitalEntryModel) TableName() string {
	return "capital_entries"
}

// ToDomain converts the persistence model to a domain CapitalEntry
func (m *CapitalEntryModel) ToDomain() *finance.CapitalEntry {
	return &finance.CapitalEntry{
		BaseEntity: m.BaseModel.ToDomain(),
		PartnerID:  m.PartnerID,
		OccurredAt: m.OccurredAt,
		Type:       m.Type,
		Amount:     m.Amount,
		Remark:     m.Remark,
	}
}

// CapitalEntryModelFromDomain creates a new persistence model from a
// domain CapitalEntry
func CapitalEntryModelFromDomain(e *finance.CapitalEntry) *CapitalEntryModel {
	m := &CapitalEntryModel{
		PartnerID:  e.PartnerID,
		OccurredAt: e.OccurredAt,
		Type:       e.Type,
		Amount:     e.Amount,
		Remark:     e.Remark,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// ExpenseModel is the persistence model for an Expense event
type ExpenseModel struct {
	BaseModel
	Category    finance.ExpenseCategory `gorm:"type:varchar(20);not null;index"`
	EmployeeID  *uuid.UUID              `gorm:"type:uuid;index"`
	OccurredAt  time.Time               `gorm:"not null;index"`
	Amount      valueobject.Money       `gorm:"type:decimal(18,4);not null"`
	Description string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:  m.BaseModel.ToDomain(),
		Category:    m.Category,
		EmployeeID:  m.EmployeeID,
		OccurredAt:  m.OccurredAt,
		Amount:      m.Amount,
		Description: m.Description,
	}
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		Category:    e.Category,
		EmployeeID:  e.EmployeeID,
		OccurredAt:  e.OccurredAt,
		Amount:      e.Amount,
		Description: e.Description,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
