package tank

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/tank"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service records tank meter readings. Usage and variance are derived
// once at recording time against the prior reading and the sales in
// between; later edits to sales do not rewrite stored readings.
type Service struct {
	readingRepo tank.Repository
	saleRepo    trade.SaleRepository
	productRepo catalog.Repository
	logger      *zap.Logger
}

// NewService creates a new tank service
func NewService(readingRepo tank.Repository, saleRepo trade.SaleRepository, productRepo catalog.Repository, logger *zap.Logger) *Service {
	return &Service{
		readingRepo: readingRepo,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Record derives and stores a new meter reading for a fuel product
func (s *Service) Record(ctx context.Context, req CreateReadingRequest) (*ReadingResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsFuel() {
		return nil, shared.NewDomainError("NOT_FUEL", "Tank readings apply to fuel products only")
	}
	meter, err := valueobject.NewLiters(req.MeterReading)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_READING", "Meter reading cannot be negative")
	}

	prior, err := s.readingRepo.FindByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	// The derivation window is bounded by the prior reading, so only
	// sales since then matter; fetching all of them keeps the window
	// logic in one place.
	sales, err := s.saleRepo.FindAll(ctx, trade.PeriodFilter{})
	if err != nil {
		return nil, err
	}

	derivation := tank.Derive(req.ProductID, meter, req.OccurredAt, prior, sales)
	reading, err := tank.NewTankReading(req.ProductID, meter, req.OccurredAt, derivation)
	if err != nil {
		return nil, err
	}
	if err := s.readingRepo.Save(ctx, reading); err != nil {
		return nil, err
	}

	s.logger.Info("Tank reading recorded",
		zap.String("reading_id", reading.ID.String()),
		zap.String("product_id", reading.ProductID.String()),
		zap.String("variance", reading.Variance.String()),
		zap.String("status", reading.Status().String()))

	resp := toReadingResponse(reading)
	return &resp, nil
}

// ListByProduct returns all readings of one fuel product
func (s *Service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReadingResponse, error) {
	readings, err := s.readingRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	responses := make([]ReadingResponse, 0, len(readings))
	for _, r := range readings {
		responses = append(responses, toReadingResponse(r))
	}
	return responses, nil
}

// List returns all tank readings
func (s *Service) List(ctx context.Context) ([]ReadingResponse, error) {
	readings, err := s.readingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ReadingResponse, 0, len(readings))
	for _, r := range readings {
		responses = append(responses, toReadingResponse(r))
	}
	return responses, nil
}

// Delete removes a tank reading
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.readingRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.readingRepo.Delete(ctx, id)
}
