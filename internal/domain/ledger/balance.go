package ledger

import (
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComputeBalance replays every event belonging to the given party in
// chronological order and returns the resulting signed balance. The
// caller supplies the kind explicitly; the engine never guesses the
// role of an ambiguous id. A party with no events has balance zero.
//
// Positive balance means: the party owes the business (customer,
// employee) or the business owes the party (partner, supplier).
func ComputeBalance(partyID uuid.UUID, kind party.Kind, snap *Snapshot) decimal.Decimal {
	entries := collectEntries(snap)
	sortEntries(entries)

	balance := decimal.Zero
	for _, e := range entries {
		if e.PartyID != partyID {
			continue
		}
		// The entry's own party kind drives the sign, but the caller's
		// declared kind wins for legacy flag records whose role was
		// ambiguous; both agree for parties created under the union model.
		e.PartyKind = kind
		balance = balance.Add(e.SignedEffect())
	}
	return balance
}

// BalanceStatement pairs a party with its computed balance, for listing
// all account balances at once.
type BalanceStatement struct {
	PartyID uuid.UUID       `json:"party_id"`
	Name    string          `json:"name"`
	Kind    party.Kind      `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

// ComputeAllBalances computes the balance of every party in the
// snapshot in a single replay pass.
func ComputeAllBalances(snap *Snapshot) []BalanceStatement {
	entries := collectEntries(snap)
	sortEntries(entries)

	totals := make(map[uuid.UUID]decimal.Decimal, len(snap.Parties))
	for _, e := range entries {
		totals[e.PartyID] = totals[e.PartyID].Add(e.SignedEffect())
	}

	statements := make([]BalanceStatement, 0, len(snap.Parties))
	for _, p := range snap.Parties {
		statements = append(statements, BalanceStatement{
			PartyID: p.ID,
			Name:    p.Name,
			Kind:    p.Kind,
			Balance: totals[p.ID],
		})
	}
	return statements
}
