package ledger

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerQuery narrows the unified ledger. Party restricts to a single
// account; Date restricts to one calendar day with the prior balance
// carried forward.
type LedgerQuery struct {
	PartyID *uuid.UUID `form:"party_id"`
	Date    *time.Time `form:"date" time_format:"2006-01-02"`
}

// EntryResponse is one ledger row in API responses. EntryID is the
// composite id accepted by the delete endpoint.
type EntryResponse struct {
	EntryID     string          `json:"entry_id"`
	Kind        string          `json:"kind"`
	Timestamp   time.Time       `json:"timestamp"`
	PartyID     uuid.UUID       `json:"party_id"`
	PartyName   string          `json:"party_name"`
	PartyKind   string          `json:"party_kind"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerResponse is the built ledger in API responses
type LedgerResponse struct {
	Entries        []EntryResponse `json:"entries"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
}

// BalanceResponse is one party's computed account balance
type BalanceResponse struct {
	PartyID uuid.UUID       `json:"party_id"`
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

func toLedgerResponse(l *ledger.Ledger) *LedgerResponse {
	resp := &LedgerResponse{
		Entries:        make([]EntryResponse, 0, len(l.Entries)),
		OpeningBalance: l.OpeningBalance,
		ClosingBalance: l.ClosingBalance,
		TotalDebit:     l.TotalDebit,
		TotalCredit:    l.TotalCredit,
	}
	for _, e := range l.Entries {
		resp.Entries = append(resp.Entries, EntryResponse{
			EntryID:     e.Source.EntryID(),
			Kind:        e.Source.Kind.String(),
			Timestamp:   e.Timestamp,
			PartyID:     e.PartyID,
			PartyName:   e.PartyName,
			PartyKind:   e.PartyKind.String(),
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     e.RunningBalance,
		})
	}
	return resp
}
