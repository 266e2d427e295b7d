package trade

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseItem is a line item within a supplier purchase
type PurchaseItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	TotalCost   decimal.Decimal `json:"total_cost"` // quantity * cost
}

// NewPurchaseItem creates a purchase line item, deriving the line cost
func NewPurchaseItem(productID uuid.UUID, quantity, costPerUnit decimal.Decimal) (PurchaseItem, error) {
	if productID == uuid.Nil {
		return PurchaseItem{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return PurchaseItem{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if costPerUnit.IsNegative() {
		return PurchaseItem{}, shared.NewDomainError("INVALID_COST", "Cost per unit cannot be negative")
	}
	return PurchaseItem{
		ID:          uuid.New(),
		ProductID:   productID,
		Quantity:    quantity,
		CostPerUnit: costPerUnit,
		TotalCost:   quantity.Mul(costPerUnit),
	}, nil
}

// Purchase is an immutable stock purchase from a supplier. It credits
// the supplier's payable account and its line costs feed the historical
// cost index.
type Purchase struct {
	shared.BaseEntity
	SupplierID uuid.UUID
	OccurredAt time.Time // Ordering key for ledger replay and cost lookups
	Items      []PurchaseItem
	TotalCost  valueobject.Money
	Remark     string
}

// NewPurchase creates a purchase from its line items, deriving the total
func NewPurchase(supplierID uuid.UUID, occurredAt time.Time, items []PurchaseItem, remark string) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_PURCHASE", "Purchase must have at least one line item")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalCost)
	}
	return &Purchase{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: supplierID,
		OccurredAt: occurredAt,
		Items:      items,
		TotalCost:  valueobject.NewMoneyPKR(total),
		Remark:     remark,
	}, nil
}
