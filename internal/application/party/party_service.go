package party

import (
	"context"
	"time"

	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceCalculator computes a party's account balance from the ledger
type BalanceCalculator interface {
	PartyBalance(ctx context.Context, partyID uuid.UUID) (decimal.Decimal, error)
}

// Service handles party account management. Balances are never stored
// on the party; the detail view computes them through the ledger.
type Service struct {
	repo     party.Repository
	balances BalanceCalculator
	logger   *zap.Logger
}

// NewService creates a new party service
func NewService(repo party.Repository, balances BalanceCalculator, logger *zap.Logger) *Service {
	return &Service{repo: repo, balances: balances, logger: logger}
}

// Create creates a new party of the requested kind
func (s *Service) Create(ctx context.Context, req CreatePartyRequest) (*PartyResponse, error) {
	var (
		p   *party.Party
		err error
	)
	switch party.Kind(req.Kind) {
	case party.KindCustomer:
		p, err = party.NewCustomer(req.Name, req.Contact)
	case party.KindSupplier:
		p, err = party.NewSupplier(req.Name, req.Contact)
	case party.KindEmployee:
		salary := decimal.Zero
		if req.Salary != nil {
			salary = *req.Salary
		}
		hireDate := time.Now()
		if req.HireDate != nil {
			hireDate = *req.HireDate
		}
		p, err = party.NewEmployee(req.Name, req.Contact, salary, req.Position, hireDate)
	case party.KindPartner:
		share := decimal.Zero
		if req.SharePercentage != nil {
			share = *req.SharePercentage
		}
		p, err = party.NewPartner(req.Name, req.Contact, share)
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Party kind is not valid")
	}
	if err != nil {
		return nil, err
	}
	p.Notes = req.Notes

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Party created",
		zap.String("party_id", p.ID.String()),
		zap.String("kind", p.Kind.String()),
		zap.String("name", p.Name))

	resp := toPartyResponse(p)
	return &resp, nil
}

// Get returns one party with its computed ledger balance
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PartyResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPartyResponse(p)

	balance, err := s.balances.PartyBalance(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp.Balance = &balance
	return &resp, nil
}

// List returns parties matching the filter with the total count
func (s *Service) List(ctx context.Context, req ListPartiesRequest) (*ListPartiesResponse, error) {
	filter := party.Filter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Kind != "" {
		kind := party.Kind(req.Kind)
		filter.Kind = &kind
	}

	parties, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &ListPartiesResponse{
		Parties: make([]PartyResponse, 0, len(parties)),
		Total:   total,
	}
	for _, p := range parties {
		resp.Parties = append(resp.Parties, toPartyResponse(p))
	}
	return resp, nil
}

// Update applies partial updates to a party
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePartyRequest) (*PartyResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := p.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Contact != nil {
		p.UpdateContact(*req.Contact)
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Salary != nil {
		if err := p.UpdateSalary(*req.Salary); err != nil {
			return nil, err
		}
	}
	if req.SharePercentage != nil {
		if err := p.UpdateSharePercentage(*req.SharePercentage); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	resp := toPartyResponse(p)
	return &resp, nil
}

// Delete removes a party. The party's ledger events stay behind as
// dangling references and drop out of future ledger builds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Party deleted", zap.String("party_id", id.String()))
	return nil
}
