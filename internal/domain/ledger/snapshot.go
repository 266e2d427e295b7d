package ledger

import (
	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/trade"
)

// Snapshot is the full in-memory view of every event collection the
// ledger derives from. The core is a pure computation over a snapshot:
// it never fetches or persists, and every change to the underlying
// collections is handled by rebuilding from a fresh snapshot.
type Snapshot struct {
	Parties          []*party.Party
	Sales            []*trade.Sale
	Purchases        []*trade.Purchase
	PurchaseReturns  []*trade.PurchaseReturn
	CustomerPayments []*finance.CustomerPayment
	SupplierPayments []*finance.SupplierPayment
	CashAdvances     []*finance.CashAdvance
	CapitalEntries   []*finance.CapitalEntry
	Expenses         []*finance.Expense

	resolver *party.Resolver
}

// Resolver returns a party resolver over the snapshot, built lazily on
// first use. Snapshots are not shared across goroutines.
func (s *Snapshot) Resolver() *party.Resolver {
	if s.resolver == nil {
		s.resolver = party.NewResolver(s.Parties)
	}
	return s.resolver
}
