package ledger

import (
	"sort"
	"time"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter narrows the built ledger. PartyID restricts to one account;
// Date restricts to a single day, carrying the balance of everything
// before that day forward as the opening balance.
type Filter struct {
	PartyID *uuid.UUID
	Date    *time.Time
}

// Ledger is the result of a build: chronologically ordered entries with
// running balances, plus totals over the displayed entries only.
type Ledger struct {
	Entries        []LedgerEntry   `json:"entries"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
}

// Build merges every event collection in the snapshot into one
// chronologically ordered, party-tagged ledger. Events that reference a
// party the snapshot cannot resolve are skipped; one dangling record
// must not blank the whole ledger. Walk-in sales carry no account and
// are likewise not ledger entries.
func Build(snap *Snapshot, filter Filter) *Ledger {
	entries := collectEntries(snap)
	sortEntries(entries)

	if filter.PartyID != nil {
		filtered := entries[:0]
		for _, e := range entries {
			if e.PartyID == *filter.PartyID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	opening := decimal.Zero
	if filter.Date != nil {
		dayStart := startOfDay(*filter.Date)
		dayEnd := dayStart.AddDate(0, 0, 1)

		displayed := make([]LedgerEntry, 0, len(entries))
		for _, e := range entries {
			switch {
			case e.Timestamp.Before(dayStart):
				opening = opening.Add(e.SignedEffect())
			case e.Timestamp.Before(dayEnd):
				displayed = append(displayed, e)
			}
		}
		entries = displayed
	}

	ledger := &Ledger{
		Entries:        entries,
		OpeningBalance: opening,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
	}

	running := opening
	for i := range ledger.Entries {
		running = running.Add(ledger.Entries[i].SignedEffect())
		ledger.Entries[i].RunningBalance = running
		ledger.TotalDebit = ledger.TotalDebit.Add(ledger.Entries[i].Debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(ledger.Entries[i].Credit)
	}
	ledger.ClosingBalance = running

	return ledger
}

// collectEntries tags every resolvable event as a ledger entry per the
// sign conventions: receivable side (customer/employee) is debited by
// sales and cash advances and credited by payments and salary; payable
// side (partner/supplier) is credited by purchases and investments and
// debited by payments made, return refunds and withdrawals.
func collectEntries(snap *Snapshot) []LedgerEntry {
	resolver := snap.Resolver()
	entries := make([]LedgerEntry, 0,
		len(snap.Sales)+len(snap.Purchases)+len(snap.PurchaseReturns)+
			len(snap.CustomerPayments)+len(snap.SupplierPayments)+
			len(snap.CashAdvances)+len(snap.CapitalEntries)+len(snap.Expenses))

	for _, s := range snap.Sales {
		if s.CustomerID == nil {
			continue
		}
		p, ok := resolver.Resolve(*s.CustomerID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindSale, EventID: s.ID}
		entries = append(entries, debitEntry(src, s.OccurredAt, p, "Sale", s.TotalAmount.Amount()))
	}

	for _, a := range snap.CashAdvances {
		p, ok := resolver.Resolve(a.PartyID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindCashAdvance, EventID: a.ID}
		entries = append(entries, debitEntry(src, a.OccurredAt, p, "Cash advance", a.Amount.Amount()))
	}

	for _, pay := range snap.CustomerPayments {
		p, ok := resolver.Resolve(pay.CustomerID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindCustomerPayment, EventID: pay.ID}
		entries = append(entries, creditEntry(src, pay.OccurredAt, p, "Payment received", pay.Amount.Amount()))
	}

	for _, e := range snap.Expenses {
		if !e.IsSalary() {
			continue // Only salary expenses post to a party ledger
		}
		p, ok := resolver.Resolve(*e.EmployeeID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindSalary, EventID: e.ID}
		entries = append(entries, creditEntry(src, e.OccurredAt, p, "Salary", e.Amount.Amount()))
	}

	for _, pu := range snap.Purchases {
		p, ok := resolver.Resolve(pu.SupplierID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindPurchase, EventID: pu.ID}
		entries = append(entries, creditEntry(src, pu.OccurredAt, p, "Purchase", pu.TotalCost.Amount()))
	}

	for _, pay := range snap.SupplierPayments {
		p, ok := resolver.Resolve(pay.SupplierID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindSupplierPayment, EventID: pay.ID}
		entries = append(entries, debitEntry(src, pay.OccurredAt, p, "Payment made", pay.Amount.Amount()))
	}

	for _, r := range snap.PurchaseReturns {
		p, ok := resolver.Resolve(r.SupplierID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindPurchaseReturn, EventID: r.ID}
		entries = append(entries, debitEntry(src, r.OccurredAt, p, "Purchase return", r.TotalRefund.Amount()))
	}

	for _, c := range snap.CapitalEntries {
		p, ok := resolver.Resolve(c.PartnerID)
		if !ok {
			continue
		}
		src := EntrySource{Kind: EntryKindCapital, EventID: c.ID}
		if c.Type == finance.CapitalEntryInvestment {
			entries = append(entries, creditEntry(src, c.OccurredAt, p, "Investment", c.Amount.Amount()))
		} else {
			entries = append(entries, debitEntry(src, c.OccurredAt, p, "Withdrawal", c.Amount.Amount()))
		}
	}

	return entries
}

// sortEntries orders entries by timestamp, breaking ties by event id so
// the replay is deterministic regardless of input collection order.
func sortEntries(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		}
		return entries[i].Source.EventID.String() < entries[j].Source.EventID.String()
	})
}

// startOfDay truncates t to midnight in its own location
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
