package finance

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashAdvance is an immutable record of cash handed out to a customer
// or employee against their account. It debits the recipient's
// receivable balance, exactly like a sale does.
type CashAdvance struct {
	shared.BaseEntity
	PartyID    uuid.UUID // Customer or employee
	OccurredAt time.Time
	Amount     valueobject.Money
	Notes      string
}

// NewCashAdvance creates a cash advance record
func NewCashAdvance(partyID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, notes string) (*CashAdvance, error) {
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Advance amount must be positive")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &CashAdvance{
		BaseEntity: shared.NewBaseEntity(),
		PartyID:    partyID,
		OccurredAt: occurredAt,
		Amount:     valueobject.NewMoneyPKR(amount),
		Notes:      notes,
	}, nil
}
