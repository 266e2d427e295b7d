package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PeriodFilter restricts queries to a time window; zero bounds are open
type PeriodFilter struct {
	From time.Time
	To   time.Time
}

// CustomerPaymentRepository defines the interface for customer payment persistence
type CustomerPaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerPayment, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*CustomerPayment, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter PeriodFilter) ([]*CustomerPayment, error)
	Save(ctx context.Context, p *CustomerPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierPaymentRepository defines the interface for supplier payment persistence
type SupplierPaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierPayment, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*SupplierPayment, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter PeriodFilter) ([]*SupplierPayment, error)
	Save(ctx context.Context, p *SupplierPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CashAdvanceRepository defines the interface for cash advance persistence
type CashAdvanceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CashAdvance, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*CashAdvance, error)
	FindByParty(ctx context.Context, partyID uuid.UUID, filter PeriodFilter) ([]*CashAdvance, error)
	Save(ctx context.Context, a *CashAdvance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CapitalEntryRepository defines the interface for capital entry persistence
type CapitalEntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CapitalEntry, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*CapitalEntry, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID, filter PeriodFilter) ([]*CapitalEntry, error)
	Save(ctx context.Context, e *CapitalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*Expense, error)
	FindByCategory(ctx context.Context, category ExpenseCategory, filter PeriodFilter) ([]*Expense, error)
	Save(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
