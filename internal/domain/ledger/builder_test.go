package ledger

import (
	"testing"
	"time"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ChronologicalOrder(t *testing.T) {
	customer := newTestCustomer(t, "C")
	supplier := newTestSupplier(t, "S")

	// Inserted out of order on purpose; output must follow timestamps.
	snap := &Snapshot{
		Parties:   []*party.Party{customer, supplier},
		Sales:     []*trade.Sale{saleFor(t, &customer.ID, day(3), 100)},
		Purchases: []*trade.Purchase{purchaseFor(t, supplier.ID, day(1), 500)},
	}
	payment, err := finance.NewCustomerPayment(customer.ID, day(2), decimal.NewFromInt(50), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	snap.CustomerPayments = []*finance.CustomerPayment{payment}

	ledger := Build(snap, Filter{})
	require.Len(t, ledger.Entries, 3)
	assert.Equal(t, EntryKindPurchase, ledger.Entries[0].Source.Kind)
	assert.Equal(t, EntryKindCustomerPayment, ledger.Entries[1].Source.Kind)
	assert.Equal(t, EntryKindSale, ledger.Entries[2].Source.Kind)
	for i := 1; i < len(ledger.Entries); i++ {
		assert.False(t, ledger.Entries[i].Timestamp.Before(ledger.Entries[i-1].Timestamp))
	}
}

func TestBuild_ExactlyOneColumnPerEntry(t *testing.T) {
	customer := newTestCustomer(t, "C")
	supplier := newTestSupplier(t, "S")
	partner := newTestPartner(t, "P")

	payment, err := finance.NewSupplierPayment(supplier.ID, day(2), decimal.NewFromInt(10), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	invest, err := finance.NewCapitalEntry(partner.ID, day(3), finance.CapitalEntryInvestment, decimal.NewFromInt(10), "")
	require.NoError(t, err)

	snap := &Snapshot{
		Parties:          []*party.Party{customer, supplier, partner},
		Sales:            []*trade.Sale{saleFor(t, &customer.ID, day(1), 10)},
		Purchases:        []*trade.Purchase{purchaseFor(t, supplier.ID, day(1), 10)},
		SupplierPayments: []*finance.SupplierPayment{payment},
		CapitalEntries:   []*finance.CapitalEntry{invest},
	}

	ledger := Build(snap, Filter{})
	require.NotEmpty(t, ledger.Entries)
	for _, e := range ledger.Entries {
		oneSided := (e.Debit.IsZero() && !e.Credit.IsZero()) || (!e.Debit.IsZero() && e.Credit.IsZero())
		assert.True(t, oneSided, "entry %s has debit=%s credit=%s", e.EntryID(), e.Debit, e.Credit)
	}
}

func TestBuild_SkipsDanglingAndWalkIn(t *testing.T) {
	customer := newTestCustomer(t, "Known")
	ghost := uuid.New() // No such party in the snapshot

	snap := &Snapshot{
		Parties: []*party.Party{customer},
		Sales: []*trade.Sale{
			saleFor(t, &customer.ID, day(1), 100),
			saleFor(t, &ghost, day(1), 999),
			saleFor(t, nil, day(1), 50), // Walk-in, no account
		},
	}

	ledger := Build(snap, Filter{})
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, customer.ID, ledger.Entries[0].PartyID)
	assert.True(t, ledger.TotalDebit.Equal(decimal.NewFromInt(100)))
}

func TestBuild_PartyFilter(t *testing.T) {
	alice := newTestCustomer(t, "Alice")
	bob := newTestCustomer(t, "Bob")

	snap := &Snapshot{
		Parties: []*party.Party{alice, bob},
		Sales: []*trade.Sale{
			saleFor(t, &alice.ID, day(1), 100),
			saleFor(t, &bob.ID, day(2), 200),
		},
	}

	ledger := Build(snap, Filter{PartyID: &alice.ID})
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, alice.ID, ledger.Entries[0].PartyID)
	assert.True(t, ledger.ClosingBalance.Equal(decimal.NewFromInt(100)))
}

func TestBuild_DateFilterCarriesOpeningBalance(t *testing.T) {
	customer := newTestCustomer(t, "C")
	payment, err := finance.NewCustomerPayment(customer.ID, day(2), decimal.NewFromInt(200), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	snap := &Snapshot{
		Parties:          []*party.Party{customer},
		Sales:            []*trade.Sale{saleFor(t, &customer.ID, day(1), 500)},
		CustomerPayments: []*finance.CustomerPayment{payment},
	}

	dayTwo := day(2)
	ledger := Build(snap, Filter{PartyID: &customer.ID, Date: &dayTwo})

	assert.True(t, ledger.OpeningBalance.Equal(decimal.NewFromInt(500)), "opening %s", ledger.OpeningBalance)
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, EntryKindCustomerPayment, ledger.Entries[0].Source.Kind)
	assert.True(t, ledger.ClosingBalance.Equal(decimal.NewFromInt(300)), "closing %s", ledger.ClosingBalance)

	// Totals cover displayed entries only, not the opening balance.
	assert.True(t, ledger.TotalDebit.IsZero())
	assert.True(t, ledger.TotalCredit.Equal(decimal.NewFromInt(200)))
}

func TestBuild_ClosingEqualsNextOpening(t *testing.T) {
	customer := newTestCustomer(t, "C")
	payment, err := finance.NewCustomerPayment(customer.ID, day(2), decimal.NewFromInt(150), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	snap := &Snapshot{
		Parties: []*party.Party{customer},
		Sales: []*trade.Sale{
			saleFor(t, &customer.ID, day(1), 400),
			saleFor(t, &customer.ID, day(2), 100),
			saleFor(t, &customer.ID, day(3), 50),
		},
		CustomerPayments: []*finance.CustomerPayment{payment},
	}

	dayTwo, dayThree := day(2), day(3)
	onDayTwo := Build(snap, Filter{PartyID: &customer.ID, Date: &dayTwo})
	onDayThree := Build(snap, Filter{PartyID: &customer.ID, Date: &dayThree})

	assert.True(t, onDayTwo.ClosingBalance.Equal(onDayThree.OpeningBalance),
		"closing %s vs next opening %s", onDayTwo.ClosingBalance, onDayThree.OpeningBalance)

	// Opening + signed effects of the day's entries == closing.
	sum := onDayTwo.OpeningBalance
	for _, e := range onDayTwo.Entries {
		sum = sum.Add(e.SignedEffect())
	}
	assert.True(t, sum.Equal(onDayTwo.ClosingBalance))
}

func TestBuild_RunningBalanceMatchesReplay(t *testing.T) {
	customer := newTestCustomer(t, "C")
	payment, err := finance.NewCustomerPayment(customer.ID, day(2), decimal.NewFromInt(300), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	snap := &Snapshot{
		Parties: []*party.Party{customer},
		Sales: []*trade.Sale{
			saleFor(t, &customer.ID, day(1), 1000),
			saleFor(t, &customer.ID, day(3), 200),
		},
		CustomerPayments: []*finance.CustomerPayment{payment},
	}

	ledger := Build(snap, Filter{PartyID: &customer.ID})
	require.Len(t, ledger.Entries, 3)
	assert.True(t, ledger.Entries[0].RunningBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, ledger.Entries[1].RunningBalance.Equal(decimal.NewFromInt(700)))
	assert.True(t, ledger.Entries[2].RunningBalance.Equal(decimal.NewFromInt(900)))
	assert.True(t, ledger.ClosingBalance.Equal(ComputeBalance(customer.ID, party.KindCustomer, snap)))
}

func TestBuild_DeterministicTieBreak(t *testing.T) {
	customer := newTestCustomer(t, "C")
	at := day(1)
	s1 := saleFor(t, &customer.ID, at, 10)
	s2 := saleFor(t, &customer.ID, at, 20)

	forward := Build(&Snapshot{Parties: []*party.Party{customer}, Sales: []*trade.Sale{s1, s2}}, Filter{})
	reversed := Build(&Snapshot{Parties: []*party.Party{customer}, Sales: []*trade.Sale{s2, s1}}, Filter{})

	require.Len(t, forward.Entries, 2)
	require.Len(t, reversed.Entries, 2)
	for i := range forward.Entries {
		assert.Equal(t, forward.Entries[i].EntryID(), reversed.Entries[i].EntryID())
	}
}

func TestBuild_EmptySnapshot(t *testing.T) {
	ledger := Build(&Snapshot{}, Filter{})
	assert.Empty(t, ledger.Entries)
	assert.True(t, ledger.OpeningBalance.IsZero())
	assert.True(t, ledger.ClosingBalance.IsZero())
	assert.True(t, ledger.TotalDebit.IsZero())
	assert.True(t, ledger.TotalCredit.IsZero())
}

func TestBuild_DateFilterUsesEntryLocation(t *testing.T) {
	customer := newTestCustomer(t, "C")
	early := time.Date(2026, 1, 2, 0, 30, 0, 0, time.UTC)
	late := time.Date(2026, 1, 2, 23, 45, 0, 0, time.UTC)

	snap := &Snapshot{
		Parties: []*party.Party{customer},
		Sales: []*trade.Sale{
			saleFor(t, &customer.ID, early, 10),
			saleFor(t, &customer.ID, late, 20),
		},
	}

	filterDay := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	ledger := Build(snap, Filter{Date: &filterDay})
	assert.Len(t, ledger.Entries, 2)
}
