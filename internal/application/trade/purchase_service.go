package trade

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PurchaseService handles supplier purchases and purchase returns
type PurchaseService struct {
	purchaseRepo trade.PurchaseRepository
	returnRepo   trade.PurchaseReturnRepository
	partyRepo    party.Repository
	productRepo  catalog.Repository
	logger       *zap.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo trade.PurchaseRepository,
	returnRepo trade.PurchaseReturnRepository,
	partyRepo party.Repository,
	productRepo catalog.Repository,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		returnRepo:   returnRepo,
		partyRepo:    partyRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create records a supplier purchase. Its line costs become the
// historical cost timeline used for profit reporting.
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	supplier, err := s.partyRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier.Kind != party.KindSupplier {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Purchases can only be recorded against supplier accounts")
	}

	items := make([]trade.PurchaseItem, 0, len(req.Items))
	for _, ir := range req.Items {
		if _, err := s.productRepo.FindByID(ctx, ir.ProductID); err != nil {
			return nil, err
		}
		item, err := trade.NewPurchaseItem(ir.ProductID, ir.Quantity, ir.CostPerUnit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	purchase, err := trade.NewPurchase(req.SupplierID, req.OccurredAt, items, req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase recorded",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("supplier_id", purchase.SupplierID.String()),
		zap.String("total_cost", purchase.TotalCost.String()))

	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

// Get returns one purchase by id
func (s *PurchaseService) Get(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

// List returns purchases in the period
func (s *PurchaseService) List(ctx context.Context, period PeriodRequest) ([]PurchaseResponse, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, toPurchaseResponse(p))
	}
	return responses, nil
}

// Delete removes a purchase record
func (s *PurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.purchaseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.purchaseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Purchase deleted", zap.String("purchase_id", id.String()))
	return nil
}

// CreateReturn records fuel returned to a supplier
func (s *PurchaseService) CreateReturn(ctx context.Context, req CreatePurchaseReturnRequest) (*PurchaseReturnResponse, error) {
	supplier, err := s.partyRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier.Kind != party.KindSupplier {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Returns can only be recorded against supplier accounts")
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	ret, err := trade.NewPurchaseReturn(req.SupplierID, req.ProductID, req.OccurredAt, req.Volume, req.TotalRefund, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.returnRepo.Save(ctx, ret); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase return recorded",
		zap.String("return_id", ret.ID.String()),
		zap.String("supplier_id", ret.SupplierID.String()))

	resp := toPurchaseReturnResponse(ret)
	return &resp, nil
}

// ListReturns returns purchase returns in the period
func (s *PurchaseService) ListReturns(ctx context.Context, period PeriodRequest) ([]PurchaseReturnResponse, error) {
	returns, err := s.returnRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]PurchaseReturnResponse, 0, len(returns))
	for _, r := range returns {
		responses = append(responses, toPurchaseReturnResponse(r))
	}
	return responses, nil
}

// DeleteReturn removes a purchase return record
func (s *PurchaseService) DeleteReturn(ctx context.Context, id uuid.UUID) error {
	if _, err := s.returnRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.returnRepo.Delete(ctx, id)
}
