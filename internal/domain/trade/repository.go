package trade

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

// Contains reports whether t falls within the filter window
func (f PeriodFilter) Contains(t time.Time) bool {
	if !f.From.IsZero() && t.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.After(f.To) {
		return false
	}
	return true
}

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*Sale, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter PeriodFilter) ([]*Sale, error)
	Save(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PurchaseRepository defines the interface for purchase persistence
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*Purchase, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter PeriodFilter) ([]*Purchase, error)
	Save(ctx context.Context, p *Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PurchaseReturnRepository defines the interface for purchase return persistence
type PurchaseReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseReturn, error)
	FindAll(ctx context.Context, filter PeriodFilter) ([]*PurchaseReturn, error)
	Save(ctx context.Context, r *PurchaseReturn) error
	Delete(ctx context.Context, id uuid.UUID) error
}
