package finance

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CapitalService records partner capital movements
type CapitalService struct {
	capitalRepo finance.CapitalEntryRepository
	partyRepo   party.Repository
	logger      *zap.Logger
}

// NewCapitalService creates a new capital service
func NewCapitalService(capitalRepo finance.CapitalEntryRepository, partyRepo party.Repository, logger *zap.Logger) *CapitalService {
	return &CapitalService{capitalRepo: capitalRepo, partyRepo: partyRepo, logger: logger}
}

// Record records a partner investment or withdrawal
func (s *CapitalService) Record(ctx context.Context, req CreateCapitalEntryRequest) (*CapitalEntryResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, req.PartnerID)
	if err != nil {
		return nil, err
	}
	if p.Kind != party.KindPartner {
		return nil, shared.NewDomainError("INVALID_PARTY", "Capital entries belong to partner accounts")
	}

	entry, err := finance.NewCapitalEntry(req.PartnerID, req.OccurredAt, finance.CapitalEntryType(req.Type), req.Amount, req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.capitalRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Capital entry recorded",
		zap.String("entry_id", entry.ID.String()),
		zap.String("partner_id", entry.PartnerID.String()),
		zap.String("type", entry.Type.String()))

	resp := toCapitalEntryResponse(entry)
	return &resp, nil
}

// List returns capital entries in the period
func (s *CapitalService) List(ctx context.Context, period PeriodRequest) ([]CapitalEntryResponse, error) {
	entries, err := s.capitalRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]CapitalEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toCapitalEntryResponse(e))
	}
	return responses, nil
}
