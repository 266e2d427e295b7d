package trade

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleService handles sale recording. Sales are immutable events:
// corrections are made by deleting and re-entering, never by editing.
type SaleService struct {
	saleRepo    trade.SaleRepository
	partyRepo   party.Repository
	productRepo catalog.Repository
	logger      *zap.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo trade.SaleRepository, partyRepo party.Repository, productRepo catalog.Repository, logger *zap.Logger) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		partyRepo:   partyRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create records a new sale. An account sale requires the customer to
// exist and be on the receivable side (customer or employee).
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	if req.CustomerID != nil {
		p, err := s.partyRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !p.Kind.IsReceivableSide() {
			return nil, shared.NewDomainError("INVALID_CUSTOMER", "Sales can only be charged to customer or employee accounts")
		}
	}

	items := make([]trade.SaleItem, 0, len(req.Items))
	for _, ir := range req.Items {
		if _, err := s.productRepo.FindByID(ctx, ir.ProductID); err != nil {
			return nil, err
		}
		item, err := trade.NewSaleItem(ir.ProductID, ir.Quantity, ir.PricePerUnit, ir.Discount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	sale, err := trade.NewSale(req.CustomerID, req.OccurredAt, items, valueobject.PaymentMethod(req.PaymentMethod), req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info("Sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("total", sale.TotalAmount.String()),
		zap.Bool("walk_in", sale.IsWalkIn()))

	resp := toSaleResponse(sale)
	return &resp, nil
}

// Get returns one sale by id
func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// List returns sales in the period, newest first ordering is left to
// the repository.
func (s *SaleService) List(ctx context.Context, period PeriodRequest) ([]SaleResponse, error) {
	sales, err := s.saleRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, toSaleResponse(sale))
	}
	return responses, nil
}

// ListByCustomer returns one customer's sales in the period
func (s *SaleService) ListByCustomer(ctx context.Context, customerID uuid.UUID, period PeriodRequest) ([]SaleResponse, error) {
	sales, err := s.saleRepo.FindByCustomer(ctx, customerID, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, toSaleResponse(sale))
	}
	return responses, nil
}

// Delete removes a sale record
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Sale deleted", zap.String("sale_id", id.String()))
	return nil
}
