package trade

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseReturn is an immutable record of fuel returned to a supplier.
// The refund reduces the supplier's payable balance.
type PurchaseReturn struct {
	shared.BaseEntity
	SupplierID  uuid.UUID
	ProductID   uuid.UUID
	OccurredAt  time.Time
	Volume      valueobject.Volume
	TotalRefund valueobject.Money
	Reason      string
}

// NewPurchaseReturn creates a purchase return record
func NewPurchaseReturn(supplierID, productID uuid.UUID, occurredAt time.Time, volume, totalRefund decimal.Decimal, reason string) (*PurchaseReturn, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if volume.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_VOLUME", "Returned volume must be positive")
	}
	if totalRefund.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_REFUND", "Refund amount must be positive")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &PurchaseReturn{
		BaseEntity:  shared.NewBaseEntity(),
		SupplierID:  supplierID,
		ProductID:   productID,
		OccurredAt:  occurredAt,
		Volume:      valueobject.MustNewLiters(volume),
		TotalRefund: valueobject.NewMoneyPKR(totalRefund),
		Reason:      reason,
	}, nil
}
