package ledger

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one row in the unified account ledger: a financial
// event tagged with the party it belongs to. Exactly one of Debit and
// Credit is non-zero. RunningBalance is filled in by the builder in
// chronological order.
type LedgerEntry struct {
	Source         EntrySource     `json:"source"`
	Timestamp      time.Time       `json:"timestamp"`
	PartyID        uuid.UUID       `json:"party_id"`
	PartyName      string          `json:"party_name"`
	PartyKind      party.Kind      `json:"party_kind"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// EntryID returns the composite transport id of the entry
func (e *LedgerEntry) EntryID() string {
	return e.Source.EntryID()
}

// SignedEffect returns the entry's contribution to its party's balance.
// Customers and employees are the receivable side: their balance grows
// with debits (they owe more). Partners and suppliers are the payable
// side: their balance grows with credits (the business owes more).
func (e *LedgerEntry) SignedEffect() decimal.Decimal {
	if e.PartyKind.IsReceivableSide() {
		return e.Debit.Sub(e.Credit)
	}
	return e.Credit.Sub(e.Debit)
}

// debitEntry builds an entry with the amount in the debit column
func debitEntry(source EntrySource, ts time.Time, p *party.Party, description string, amount decimal.Decimal) LedgerEntry {
	return LedgerEntry{
		Source:      source,
		Timestamp:   ts,
		PartyID:     p.ID,
		PartyName:   p.Name,
		PartyKind:   p.Kind,
		Description: description,
		Debit:       amount,
		Credit:      decimal.Zero,
	}
}

// creditEntry builds an entry with the amount in the credit column
func creditEntry(source EntrySource, ts time.Time, p *party.Party, description string, amount decimal.Decimal) LedgerEntry {
	return LedgerEntry{
		Source:      source,
		Timestamp:   ts,
		PartyID:     p.ID,
		PartyName:   p.Name,
		PartyKind:   p.Kind,
		Description: description,
		Debit:       decimal.Zero,
		Credit:      amount,
	}
}
