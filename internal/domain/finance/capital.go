package finance

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CapitalEntryType represents the direction of a partner capital movement
type CapitalEntryType string

const (
	CapitalEntryInvestment CapitalEntryType = "INVESTMENT" // Partner puts money in (credit)
	CapitalEntryWithdrawal CapitalEntryType = "WITHDRAWAL" // Partner takes money out (debit)
)

// IsValid checks if the entry type is valid
func (t CapitalEntryType) IsValid() bool {
	return t == CapitalEntryInvestment || t == CapitalEntryWithdrawal
}

// String returns the string representation of CapitalEntryType
func (t CapitalEntryType) String() string {
	return string(t)
}

// CapitalEntry is an immutable record of a partner's investment into or
// withdrawal from the business.
type CapitalEntry struct {
	shared.BaseEntity
	PartnerID  uuid.UUID
	OccurredAt time.Time
	Type       CapitalEntryType
	Amount     valueobject.Money
	Remark     string
}

// NewCapitalEntry creates a capital entry record
func NewCapitalEntry(partnerID uuid.UUID, occurredAt time.Time, entryType CapitalEntryType, amount decimal.Decimal, remark string) (*CapitalEntry, error) {
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTNER", "Partner ID cannot be empty")
	}
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Capital entry type is not valid")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Capital amount must be positive")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &CapitalEntry{
		BaseEntity: shared.NewBaseEntity(),
		PartnerID:  partnerID,
		OccurredAt: occurredAt,
		Type:       entryType,
		Amount:     valueobject.NewMoneyPKR(amount),
		Remark:     remark,
	}, nil
}
