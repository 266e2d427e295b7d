package trade

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem is a line item within a sale
type SaleItem struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Discount     decimal.Decimal `json:"discount"`
	TotalAmount  decimal.Decimal `json:"total_amount"` // quantity*price - discount
}

// NewSaleItem creates a sale line item, deriving the line total
func NewSaleItem(productID uuid.UUID, quantity, pricePerUnit, discount decimal.Decimal) (SaleItem, error) {
	if productID == uuid.Nil {
		return SaleItem{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return SaleItem{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerUnit.IsNegative() {
		return SaleItem{}, shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}
	if discount.IsNegative() {
		return SaleItem{}, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	total := quantity.Mul(pricePerUnit).Sub(discount)
	if total.IsNegative() {
		return SaleItem{}, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed line amount")
	}
	return SaleItem{
		ID:           uuid.New(),
		ProductID:    productID,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Discount:     discount,
		TotalAmount:  total,
	}, nil
}

// Sale is an immutable point-of-sale transaction. A nil CustomerID
// means a walk-in sale that posts to no ledger account. Ledger events
// are never edited in place; corrections are made by deleting and
// re-entering.
type Sale struct {
	shared.BaseEntity
	CustomerID    *uuid.UUID
	OccurredAt    time.Time // Ordering key for ledger replay
	Items         []SaleItem
	TotalAmount   valueobject.Money
	PaymentMethod valueobject.PaymentMethod
	Remark        string
}

// NewSale creates a sale from its line items. The sale total is derived
// from the lines; a mismatched caller-supplied total is not accepted.
func NewSale(customerID *uuid.UUID, occurredAt time.Time, items []SaleItem, method valueobject.PaymentMethod, remark string) (*Sale, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must have at least one line item")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if method == valueobject.PaymentMethodCredit && customerID == nil {
		return nil, shared.NewDomainError("CREDIT_NEEDS_CUSTOMER", "On-account sales require a customer")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalAmount)
	}
	return &Sale{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerID:    customerID,
		OccurredAt:    occurredAt,
		Items:         items,
		TotalAmount:   valueobject.NewMoneyPKR(total),
		PaymentMethod: method,
		Remark:        remark,
	}, nil
}

// IsWalkIn returns true when the sale has no customer account attached
func (s *Sale) IsWalkIn() bool {
	return s.CustomerID == nil
}

// VolumeOfProduct sums the sold quantity of the given product across
// the sale's line items.
func (s *Sale) VolumeOfProduct(productID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if item.ProductID == productID {
			total = total.Add(item.Quantity)
		}
	}
	return total
}
