package finance

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService records settlement payments and cash advances against
// party accounts
type PaymentService struct {
	customerPaymentRepo finance.CustomerPaymentRepository
	supplierPaymentRepo finance.SupplierPaymentRepository
	cashAdvanceRepo     finance.CashAdvanceRepository
	partyRepo           party.Repository
	logger              *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	customerPaymentRepo finance.CustomerPaymentRepository,
	supplierPaymentRepo finance.SupplierPaymentRepository,
	cashAdvanceRepo finance.CashAdvanceRepository,
	partyRepo party.Repository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		customerPaymentRepo: customerPaymentRepo,
		supplierPaymentRepo: supplierPaymentRepo,
		cashAdvanceRepo:     cashAdvanceRepo,
		partyRepo:           partyRepo,
		logger:              logger,
	}
}

// RecordCustomerPayment records money received from a customer or
// employee, crediting their receivable account.
func (s *PaymentService) RecordCustomerPayment(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if !p.Kind.IsReceivableSide() {
		return nil, shared.NewDomainError("INVALID_PARTY", "Customer payments settle customer or employee accounts")
	}

	payment, err := finance.NewCustomerPayment(req.PartyID, req.OccurredAt, req.Amount, valueobject.PaymentMethod(req.Method), req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.customerPaymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Customer payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("customer_id", payment.CustomerID.String()),
		zap.String("amount", payment.Amount.String()))

	resp := toCustomerPaymentResponse(payment)
	return &resp, nil
}

// RecordSupplierPayment records money paid out to a supplier, reducing
// the payable balance.
func (s *PaymentService) RecordSupplierPayment(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if p.Kind != party.KindSupplier {
		return nil, shared.NewDomainError("INVALID_PARTY", "Supplier payments settle supplier accounts")
	}

	payment, err := finance.NewSupplierPayment(req.PartyID, req.OccurredAt, req.Amount, valueobject.PaymentMethod(req.Method), req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.supplierPaymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Supplier payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("supplier_id", payment.SupplierID.String()),
		zap.String("amount", payment.Amount.String()))

	resp := toSupplierPaymentResponse(payment)
	return &resp, nil
}

// RecordCashAdvance records cash handed out to a customer or employee,
// debiting their account exactly like a sale.
func (s *PaymentService) RecordCashAdvance(ctx context.Context, req CreateCashAdvanceRequest) (*CashAdvanceResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if !p.Kind.IsReceivableSide() {
		return nil, shared.NewDomainError("INVALID_PARTY", "Cash advances go to customer or employee accounts")
	}

	advance, err := finance.NewCashAdvance(req.PartyID, req.OccurredAt, req.Amount, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.cashAdvanceRepo.Save(ctx, advance); err != nil {
		return nil, err
	}

	s.logger.Info("Cash advance recorded",
		zap.String("advance_id", advance.ID.String()),
		zap.String("party_id", advance.PartyID.String()))

	resp := toCashAdvanceResponse(advance)
	return &resp, nil
}

// ListCustomerPayments returns customer payments in the period
func (s *PaymentService) ListCustomerPayments(ctx context.Context, period PeriodRequest) ([]PaymentResponse, error) {
	payments, err := s.customerPaymentRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toCustomerPaymentResponse(p))
	}
	return responses, nil
}

// ListSupplierPayments returns supplier payments in the period
func (s *PaymentService) ListSupplierPayments(ctx context.Context, period PeriodRequest) ([]PaymentResponse, error) {
	payments, err := s.supplierPaymentRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toSupplierPaymentResponse(p))
	}
	return responses, nil
}

// ListCashAdvances returns cash advances in the period
func (s *PaymentService) ListCashAdvances(ctx context.Context, period PeriodRequest) ([]CashAdvanceResponse, error) {
	advances, err := s.cashAdvanceRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]CashAdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, toCashAdvanceResponse(a))
	}
	return responses, nil
}
