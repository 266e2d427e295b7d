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

func day(n int) time.Time {
	return time.Date(2026, 1, n, 12, 0, 0, 0, time.UTC)
}

func newTestCustomer(t *testing.T, name string) *party.Party {
	t.Helper()
	p, err := party.NewCustomer(name, "")
	require.NoError(t, err)
	return p
}

func newTestSupplier(t *testing.T, name string) *party.Party {
	t.Helper()
	p, err := party.NewSupplier(name, "")
	require.NoError(t, err)
	return p
}

func newTestPartner(t *testing.T, name string) *party.Party {
	t.Helper()
	p, err := party.NewPartner(name, "", decimal.NewFromInt(50))
	require.NoError(t, err)
	return p
}

func newTestEmployee(t *testing.T, name string) *party.Party {
	t.Helper()
	p, err := party.NewEmployee(name, "", decimal.NewFromInt(30000), "attendant", day(1))
	require.NoError(t, err)
	return p
}

func saleFor(t *testing.T, customerID *uuid.UUID, at time.Time, amount int64) *trade.Sale {
	t.Helper()
	item, err := trade.NewSaleItem(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(amount), decimal.Zero)
	require.NoError(t, err)
	s, err := trade.NewSale(customerID, at, []trade.SaleItem{item}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	return s
}

func purchaseFor(t *testing.T, supplierID uuid.UUID, at time.Time, cost int64) *trade.Purchase {
	t.Helper()
	item, err := trade.NewPurchaseItem(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(cost))
	require.NoError(t, err)
	p, err := trade.NewPurchase(supplierID, at, []trade.PurchaseItem{item}, "")
	require.NoError(t, err)
	return p
}

func TestComputeBalance_Customer(t *testing.T) {
	t.Run("sale then payment leaves what the customer owes", func(t *testing.T) {
		customer := newTestCustomer(t, "Haris Transport")
		payment, err := finance.NewCustomerPayment(customer.ID, day(2), decimal.NewFromInt(400), valueobject.PaymentMethodCash, "")
		require.NoError(t, err)

		snap := &Snapshot{
			Parties:          []*party.Party{customer},
			Sales:            []*trade.Sale{saleFor(t, &customer.ID, day(1), 1000)},
			CustomerPayments: []*finance.CustomerPayment{payment},
		}

		balance := ComputeBalance(customer.ID, party.KindCustomer, snap)
		assert.True(t, balance.Equal(decimal.NewFromInt(600)), "got %s", balance)
	})

	t.Run("cash advance debits like a sale", func(t *testing.T) {
		customer := newTestCustomer(t, "Walk-up account")
		advance, err := finance.NewCashAdvance(customer.ID, day(1), decimal.NewFromInt(250), "")
		require.NoError(t, err)

		snap := &Snapshot{
			Parties:      []*party.Party{customer},
			CashAdvances: []*finance.CashAdvance{advance},
		}

		balance := ComputeBalance(customer.ID, party.KindCustomer, snap)
		assert.True(t, balance.Equal(decimal.NewFromInt(250)))
	})

	t.Run("no events means zero balance", func(t *testing.T) {
		customer := newTestCustomer(t, "Dormant")
		snap := &Snapshot{Parties: []*party.Party{customer}}

		balance := ComputeBalance(customer.ID, party.KindCustomer, snap)
		assert.True(t, balance.IsZero())
	})
}

func TestComputeBalance_Supplier(t *testing.T) {
	t.Run("purchase, payment and return settle to the payable", func(t *testing.T) {
		supplier := newTestSupplier(t, "PSO Depot")
		payment, err := finance.NewSupplierPayment(supplier.ID, day(2), decimal.NewFromInt(2000), valueobject.PaymentMethodBank, "")
		require.NoError(t, err)
		ret, err := trade.NewPurchaseReturn(supplier.ID, uuid.New(), day(3), decimal.NewFromInt(50), decimal.NewFromInt(500), "water contamination")
		require.NoError(t, err)

		snap := &Snapshot{
			Parties:          []*party.Party{supplier},
			Purchases:        []*trade.Purchase{purchaseFor(t, supplier.ID, day(1), 5000)},
			SupplierPayments: []*finance.SupplierPayment{payment},
			PurchaseReturns:  []*trade.PurchaseReturn{ret},
		}

		balance := ComputeBalance(supplier.ID, party.KindSupplier, snap)
		assert.True(t, balance.Equal(decimal.NewFromInt(2500)), "got %s", balance)
	})
}

func TestComputeBalance_Partner(t *testing.T) {
	t.Run("investment minus withdrawal is what the business owes", func(t *testing.T) {
		partner := newTestPartner(t, "M. Aslam")
		invest, err := finance.NewCapitalEntry(partner.ID, day(1), finance.CapitalEntryInvestment, decimal.NewFromInt(100000), "")
		require.NoError(t, err)
		withdraw, err := finance.NewCapitalEntry(partner.ID, day(10), finance.CapitalEntryWithdrawal, decimal.NewFromInt(20000), "")
		require.NoError(t, err)

		snap := &Snapshot{
			Parties:        []*party.Party{partner},
			CapitalEntries: []*finance.CapitalEntry{invest, withdraw},
		}

		balance := ComputeBalance(partner.ID, party.KindPartner, snap)
		assert.True(t, balance.Equal(decimal.NewFromInt(80000)), "got %s", balance)
	})
}

func TestComputeBalance_Employee(t *testing.T) {
	t.Run("advances and purchases are settled by salary", func(t *testing.T) {
		employee := newTestEmployee(t, "Rashid")
		advance, err := finance.NewCashAdvance(employee.ID, day(5), decimal.NewFromInt(5000), "eid advance")
		require.NoError(t, err)
		salary, err := finance.NewSalaryExpense(employee.ID, day(30), decimal.NewFromInt(30000), "January salary")
		require.NoError(t, err)

		snap := &Snapshot{
			Parties:      []*party.Party{employee},
			Sales:        []*trade.Sale{saleFor(t, &employee.ID, day(10), 2000)},
			CashAdvances: []*finance.CashAdvance{advance},
			Expenses:     []*finance.Expense{salary},
		}

		// 5000 advance + 2000 fuel on account - 30000 salary = -23000:
		// the business owes the employee the remainder of the salary.
		balance := ComputeBalance(employee.ID, party.KindEmployee, snap)
		assert.True(t, balance.Equal(decimal.NewFromInt(-23000)), "got %s", balance)
	})

	t.Run("non-salary expenses never post to the employee", func(t *testing.T) {
		employee := newTestEmployee(t, "Rashid")
		rent, err := finance.NewExpense(finance.ExpenseCategoryRent, day(1), decimal.NewFromInt(40000), "station rent")
		require.NoError(t, err)

		snap := &Snapshot{
			Parties:  []*party.Party{employee},
			Expenses: []*finance.Expense{rent},
		}

		balance := ComputeBalance(employee.ID, party.KindEmployee, snap)
		assert.True(t, balance.IsZero())
	})
}

func TestComputeBalance_InputOrderIndependence(t *testing.T) {
	customer := newTestCustomer(t, "Order Test")
	s1 := saleFor(t, &customer.ID, day(3), 300)
	s2 := saleFor(t, &customer.ID, day(1), 100)
	s3 := saleFor(t, &customer.ID, day(2), 200)
	payment, err := finance.NewCustomerPayment(customer.ID, day(4), decimal.NewFromInt(150), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	forward := &Snapshot{
		Parties:          []*party.Party{customer},
		Sales:            []*trade.Sale{s1, s2, s3},
		CustomerPayments: []*finance.CustomerPayment{payment},
	}
	reversed := &Snapshot{
		Parties:          []*party.Party{customer},
		Sales:            []*trade.Sale{s3, s2, s1},
		CustomerPayments: []*finance.CustomerPayment{payment},
	}

	want := decimal.NewFromInt(450)
	assert.True(t, ComputeBalance(customer.ID, party.KindCustomer, forward).Equal(want))
	assert.True(t, ComputeBalance(customer.ID, party.KindCustomer, reversed).Equal(want))
}

func TestComputeAllBalances(t *testing.T) {
	customer := newTestCustomer(t, "C")
	supplier := newTestSupplier(t, "S")

	snap := &Snapshot{
		Parties:   []*party.Party{customer, supplier},
		Sales:     []*trade.Sale{saleFor(t, &customer.ID, day(1), 700)},
		Purchases: []*trade.Purchase{purchaseFor(t, supplier.ID, day(1), 900)},
	}

	statements := ComputeAllBalances(snap)
	require.Len(t, statements, 2)

	byID := map[uuid.UUID]decimal.Decimal{}
	for _, st := range statements {
		byID[st.PartyID] = st.Balance
	}
	assert.True(t, byID[customer.ID].Equal(decimal.NewFromInt(700)))
	assert.True(t, byID[supplier.ID].Equal(decimal.NewFromInt(900)))
}
