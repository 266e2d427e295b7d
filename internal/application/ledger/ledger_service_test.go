package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/fuelpos/backend/internal/domain/finance"
	domainledger "github.com/fuelpos/backend/internal/domain/ledger"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPartyRepository is a mock implementation of party.Repository
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindAll(ctx context.Context, filter party.Filter) ([]*party.Party, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*party.Party), args.Error(1)
}

func (m *MockPartyRepository) Count(ctx context.Context, filter party.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartyRepository) Save(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of trade.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter trade.PeriodFilter) ([]*trade.Sale, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter trade.PeriodFilter) ([]*trade.Sale, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, s *trade.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPurchaseRepository is a mock implementation of trade.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context, filter trade.PeriodFilter) ([]*trade.Purchase, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*trade.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter trade.PeriodFilter) ([]*trade.Purchase, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).([]*trade.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, p *trade.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPurchaseReturnRepository is a mock implementation of trade.PurchaseReturnRepository
type MockPurchaseReturnRepository struct {
	mock.Mock
}

func (m *MockPurchaseReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseReturn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseReturn), args.Error(1)
}

func (m *MockPurchaseReturnRepository) FindAll(ctx context.Context, filter trade.PeriodFilter) ([]*trade.PurchaseReturn, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*trade.PurchaseReturn), args.Error(1)
}

func (m *MockPurchaseReturnRepository) Save(ctx context.Context, r *trade.PurchaseReturn) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPurchaseReturnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerPaymentRepository is a mock implementation of finance.CustomerPaymentRepository
type MockCustomerPaymentRepository struct {
	mock.Mock
}

func (m *MockCustomerPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CustomerPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CustomerPayment), args.Error(1)
}

func (m *MockCustomerPaymentRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.CustomerPayment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*finance.CustomerPayment), args.Error(1)
}

func (m *MockCustomerPaymentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter finance.PeriodFilter) ([]*finance.CustomerPayment, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]*finance.CustomerPayment), args.Error(1)
}

func (m *MockCustomerPaymentRepository) Save(ctx context.Context, p *finance.CustomerPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCustomerPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSupplierPaymentRepository is a mock implementation of finance.SupplierPaymentRepository
type MockSupplierPaymentRepository struct {
	mock.Mock
}

func (m *MockSupplierPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.SupplierPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.SupplierPayment), args.Error(1)
}

func (m *MockSupplierPaymentRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.SupplierPayment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*finance.SupplierPayment), args.Error(1)
}

func (m *MockSupplierPaymentRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter finance.PeriodFilter) ([]*finance.SupplierPayment, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).([]*finance.SupplierPayment), args.Error(1)
}

func (m *MockSupplierPaymentRepository) Save(ctx context.Context, p *finance.SupplierPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockSupplierPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCashAdvanceRepository is a mock implementation of finance.CashAdvanceRepository
type MockCashAdvanceRepository struct {
	mock.Mock
}

func (m *MockCashAdvanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CashAdvance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CashAdvance), args.Error(1)
}

func (m *MockCashAdvanceRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.CashAdvance, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*finance.CashAdvance), args.Error(1)
}

func (m *MockCashAdvanceRepository) FindByParty(ctx context.Context, partyID uuid.UUID, filter finance.PeriodFilter) ([]*finance.CashAdvance, error) {
	args := m.Called(ctx, partyID, filter)
	return args.Get(0).([]*finance.CashAdvance), args.Error(1)
}

func (m *MockCashAdvanceRepository) Save(ctx context.Context, a *finance.CashAdvance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCashAdvanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCapitalEntryRepository is a mock implementation of finance.CapitalEntryRepository
type MockCapitalEntryRepository struct {
	mock.Mock
}

func (m *MockCapitalEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CapitalEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CapitalEntry), args.Error(1)
}

func (m *MockCapitalEntryRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.CapitalEntry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*finance.CapitalEntry), args.Error(1)
}

func (m *MockCapitalEntryRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, filter finance.PeriodFilter) ([]*finance.CapitalEntry, error) {
	args := m.Called(ctx, partnerID, filter)
	return args.Get(0).([]*finance.CapitalEntry), args.Error(1)
}

func (m *MockCapitalEntryRepository) Save(ctx context.Context, e *finance.CapitalEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockCapitalEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExpenseRepository is a mock implementation of finance.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.Expense, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByCategory(ctx context.Context, category finance.ExpenseCategory, filter finance.PeriodFilter) ([]*finance.Expense, error) {
	args := m.Called(ctx, category, filter)
	return args.Get(0).([]*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, e *finance.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type serviceMocks struct {
	parties          *MockPartyRepository
	sales            *MockSaleRepository
	purchases        *MockPurchaseRepository
	purchaseReturns  *MockPurchaseReturnRepository
	customerPayments *MockCustomerPaymentRepository
	supplierPayments *MockSupplierPaymentRepository
	cashAdvances     *MockCashAdvanceRepository
	capitalEntries   *MockCapitalEntryRepository
	expenses         *MockExpenseRepository
}

func newService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		parties:          new(MockPartyRepository),
		sales:            new(MockSaleRepository),
		purchases:        new(MockPurchaseRepository),
		purchaseReturns:  new(MockPurchaseReturnRepository),
		customerPayments: new(MockCustomerPaymentRepository),
		supplierPayments: new(MockSupplierPaymentRepository),
		cashAdvances:     new(MockCashAdvanceRepository),
		capitalEntries:   new(MockCapitalEntryRepository),
		expenses:         new(MockExpenseRepository),
	}
	svc := NewService(
		m.parties, m.sales, m.purchases, m.purchaseReturns,
		m.customerPayments, m.supplierPayments, m.cashAdvances,
		m.capitalEntries, m.expenses, zap.NewNop(),
	)
	return svc, m
}

// expectSnapshot wires all FindAll calls with the given collections,
// defaulting each to empty.
func (m *serviceMocks) expectSnapshot(parties []*party.Party, sales []*trade.Sale, payments []*finance.CustomerPayment) {
	m.parties.On("FindAll", mock.Anything, party.Filter{}).Return(parties, nil)
	m.sales.On("FindAll", mock.Anything, trade.PeriodFilter{}).Return(sales, nil)
	m.purchases.On("FindAll", mock.Anything, trade.PeriodFilter{}).Return([]*trade.Purchase{}, nil)
	m.purchaseReturns.On("FindAll", mock.Anything, trade.PeriodFilter{}).Return([]*trade.PurchaseReturn{}, nil)
	m.customerPayments.On("FindAll", mock.Anything, finance.PeriodFilter{}).Return(payments, nil)
	m.supplierPayments.On("FindAll", mock.Anything, finance.PeriodFilter{}).Return([]*finance.SupplierPayment{}, nil)
	m.cashAdvances.On("FindAll", mock.Anything, finance.PeriodFilter{}).Return([]*finance.CashAdvance{}, nil)
	m.capitalEntries.On("FindAll", mock.Anything, finance.PeriodFilter{}).Return([]*finance.CapitalEntry{}, nil)
	m.expenses.On("FindAll", mock.Anything, finance.PeriodFilter{}).Return([]*finance.Expense{}, nil)
}

func creditSale(t *testing.T, customerID uuid.UUID, at time.Time, amount int64) *trade.Sale {
	t.Helper()
	item, err := trade.NewSaleItem(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(amount), decimal.Zero)
	require.NoError(t, err)
	s, err := trade.NewSale(&customerID, at, []trade.SaleItem{item}, valueobject.PaymentMethodCredit, "")
	require.NoError(t, err)
	return s
}

func TestService_GetLedger(t *testing.T) {
	svc, mocks := newService()
	ctx := context.Background()

	customer, err := party.NewCustomer("Haris Transport", "")
	require.NoError(t, err)

	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	sale := creditSale(t, customer.ID, day.Add(9*time.Hour), 1500)
	payment, err := finance.NewCustomerPayment(customer.ID, day.Add(17*time.Hour), decimal.NewFromInt(500), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	mocks.expectSnapshot([]*party.Party{customer}, []*trade.Sale{sale}, []*finance.CustomerPayment{payment})

	resp, err := svc.GetLedger(ctx, LedgerQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "sale-"+sale.ID.String(), resp.Entries[0].EntryID)
	assert.Equal(t, "Haris Transport", resp.Entries[0].PartyName)
	assert.True(t, resp.ClosingBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.TotalDebit.Equal(decimal.NewFromInt(1500)))
	assert.True(t, resp.TotalCredit.Equal(decimal.NewFromInt(500)))
}

func TestService_PartyBalance(t *testing.T) {
	svc, mocks := newService()
	ctx := context.Background()

	customer, err := party.NewCustomer("C", "")
	require.NoError(t, err)
	sale := creditSale(t, customer.ID, time.Now(), 800)

	mocks.parties.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	mocks.expectSnapshot([]*party.Party{customer}, []*trade.Sale{sale}, []*finance.CustomerPayment{})

	balance, err := svc.PartyBalance(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(800)))
}

func TestService_PartyBalance_UnknownParty(t *testing.T) {
	svc, mocks := newService()
	id := uuid.New()
	mocks.parties.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.PartyBalance(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_DeleteEntry(t *testing.T) {
	t.Run("routes sale deletes to the sale collection", func(t *testing.T) {
		svc, mocks := newService()
		id := uuid.New()
		mocks.sales.On("Delete", mock.Anything, id).Return(nil)

		err := svc.DeleteEntry(context.Background(), domainledger.EntrySource{Kind: domainledger.EntryKindSale, EventID: id}.EntryID())
		require.NoError(t, err)
		mocks.sales.AssertExpectations(t)
	})

	t.Run("routes salary deletes to the expense collection", func(t *testing.T) {
		svc, mocks := newService()
		id := uuid.New()
		mocks.expenses.On("Delete", mock.Anything, id).Return(nil)

		err := svc.DeleteEntry(context.Background(), "salary-"+id.String())
		require.NoError(t, err)
		mocks.expenses.AssertExpectations(t)
	})

	t.Run("unknown kind prefix is an error", func(t *testing.T) {
		svc, _ := newService()
		err := svc.DeleteEntry(context.Background(), "refund-"+uuid.New().String())
		assert.ErrorIs(t, err, shared.ErrUnknownEntryKind)
	})

	t.Run("malformed id is an error", func(t *testing.T) {
		svc, _ := newService()
		err := svc.DeleteEntry(context.Background(), "nodash")
		assert.Error(t, err)
	})
}
