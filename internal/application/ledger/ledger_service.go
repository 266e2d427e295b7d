package ledger

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/ledger"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service builds the unified ledger and computed balances from the
// underlying event collections, and routes entry deletions back to the
// collection that owns the event. Every query rebuilds from a fresh
// snapshot, so the derived figures can never drift from the records.
type Service struct {
	partyRepo           party.Repository
	saleRepo            trade.SaleRepository
	purchaseRepo        trade.PurchaseRepository
	purchaseReturnRepo  trade.PurchaseReturnRepository
	customerPaymentRepo finance.CustomerPaymentRepository
	supplierPaymentRepo finance.SupplierPaymentRepository
	cashAdvanceRepo     finance.CashAdvanceRepository
	capitalRepo         finance.CapitalEntryRepository
	expenseRepo         finance.ExpenseRepository
	logger              *zap.Logger
}

// NewService creates a new ledger service
func NewService(
	partyRepo party.Repository,
	saleRepo trade.SaleRepository,
	purchaseRepo trade.PurchaseRepository,
	purchaseReturnRepo trade.PurchaseReturnRepository,
	customerPaymentRepo finance.CustomerPaymentRepository,
	supplierPaymentRepo finance.SupplierPaymentRepository,
	cashAdvanceRepo finance.CashAdvanceRepository,
	capitalRepo finance.CapitalEntryRepository,
	expenseRepo finance.ExpenseRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		partyRepo:           partyRepo,
		saleRepo:            saleRepo,
		purchaseRepo:        purchaseRepo,
		purchaseReturnRepo:  purchaseReturnRepo,
		customerPaymentRepo: customerPaymentRepo,
		supplierPaymentRepo: supplierPaymentRepo,
		cashAdvanceRepo:     cashAdvanceRepo,
		capitalRepo:         capitalRepo,
		expenseRepo:         expenseRepo,
		logger:              logger,
	}
}

// LoadSnapshot fetches every event collection into one in-memory
// snapshot for the pure ledger computations.
func (s *Service) LoadSnapshot(ctx context.Context) (*ledger.Snapshot, error) {
	parties, err := s.partyRepo.FindAll(ctx, party.Filter{})
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindAll(ctx, trade.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.FindAll(ctx, trade.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	returns, err := s.purchaseReturnRepo.FindAll(ctx, trade.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	customerPayments, err := s.customerPaymentRepo.FindAll(ctx, finance.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	supplierPayments, err := s.supplierPaymentRepo.FindAll(ctx, finance.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	advances, err := s.cashAdvanceRepo.FindAll(ctx, finance.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	capitalEntries, err := s.capitalRepo.FindAll(ctx, finance.PeriodFilter{})
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindAll(ctx, finance.PeriodFilter{})
	if err != nil {
		return nil, err
	}

	return &ledger.Snapshot{
		Parties:          parties,
		Sales:            sales,
		Purchases:        purchases,
		PurchaseReturns:  returns,
		CustomerPayments: customerPayments,
		SupplierPayments: supplierPayments,
		CashAdvances:     advances,
		CapitalEntries:   capitalEntries,
		Expenses:         expenses,
	}, nil
}

// GetLedger builds the unified ledger with the given filters applied
func (s *Service) GetLedger(ctx context.Context, query LedgerQuery) (*LedgerResponse, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	built := ledger.Build(snap, ledger.Filter{PartyID: query.PartyID, Date: query.Date})
	return toLedgerResponse(built), nil
}

// PartyBalance computes the signed balance of one party by replaying
// its events. The party must exist; its kind drives the sign convention.
func (s *Service) PartyBalance(ctx context.Context, partyID uuid.UUID) (decimal.Decimal, error) {
	p, err := s.partyRepo.FindByID(ctx, partyID)
	if err != nil {
		return decimal.Zero, err
	}
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.ComputeBalance(p.ID, p.Kind, snap), nil
}

// ListBalances computes every party's balance in one replay pass
func (s *Service) ListBalances(ctx context.Context) ([]BalanceResponse, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	statements := ledger.ComputeAllBalances(snap)
	responses := make([]BalanceResponse, 0, len(statements))
	for _, st := range statements {
		responses = append(responses, BalanceResponse{
			PartyID: st.PartyID,
			Name:    st.Name,
			Kind:    st.Kind.String(),
			Balance: st.Balance,
		})
	}
	return responses, nil
}

// DeleteEntry removes the event behind a composite ledger entry id.
// The kind prefix routes the delete to the owning collection; an
// unknown or malformed id is an error, never a silent no-op.
func (s *Service) DeleteEntry(ctx context.Context, entryID string) error {
	src, err := ledger.ParseEntryID(entryID)
	if err != nil {
		return err
	}

	s.logger.Info("Deleting ledger entry",
		zap.String("kind", src.Kind.String()),
		zap.String("event_id", src.EventID.String()))

	switch src.Kind {
	case ledger.EntryKindSale:
		return s.saleRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindPurchase:
		return s.purchaseRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindPurchaseReturn:
		return s.purchaseReturnRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindCustomerPayment:
		return s.customerPaymentRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindSupplierPayment:
		return s.supplierPaymentRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindCashAdvance:
		return s.cashAdvanceRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindCapital:
		return s.capitalRepo.Delete(ctx, src.EventID)
	case ledger.EntryKindSalary:
		return s.expenseRepo.Delete(ctx, src.EventID)
	default:
		return shared.ErrUnknownEntryKind
	}
}
