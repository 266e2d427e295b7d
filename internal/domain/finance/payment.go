package finance

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerPayment is an immutable record of money received from a
// customer (or employee) against their account. It credits the payer's
// receivable balance.
type CustomerPayment struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	OccurredAt time.Time
	Amount     valueobject.Money
	Method     valueobject.PaymentMethod
	Remark     string
}

// NewCustomerPayment creates a customer payment record
func NewCustomerPayment(customerID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, method valueobject.PaymentMethod, remark string) (*CustomerPayment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() || method == valueobject.PaymentMethodCredit {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid for settlements")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &CustomerPayment{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		OccurredAt: occurredAt,
		Amount:     valueobject.NewMoneyPKR(amount),
		Method:     method,
		Remark:     remark,
	}, nil
}

// SupplierPayment is an immutable record of money paid out to a
// supplier. It reduces the supplier's payable balance.
type SupplierPayment struct {
	shared.BaseEntity
	SupplierID uuid.UUID
	OccurredAt time.Time
	Amount     valueobject.Money
	Method     valueobject.PaymentMethod
	Remark     string
}

// NewSupplierPayment creates a supplier payment record
func NewSupplierPayment(supplierID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, method valueobject.PaymentMethod, remark string) (*SupplierPayment, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() || method == valueobject.PaymentMethodCredit {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid for settlements")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &SupplierPayment{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: supplierID,
		OccurredAt: occurredAt,
		Amount:     valueobject.NewMoneyPKR(amount),
		Method:     method,
		Remark:     remark,
	}, nil
}
