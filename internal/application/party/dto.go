package party

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest represents a request to create a new party.
// Salary, position and hire date apply to employees; share percentage
// applies to partners.
type CreatePartyRequest struct {
	Kind            string           `json:"kind" binding:"required,oneof=CUSTOMER PARTNER EMPLOYEE SUPPLIER"`
	Name            string           `json:"name" binding:"required,min=1,max=200"`
	Contact         string           `json:"contact" binding:"max=100"`
	Notes           string           `json:"notes"`
	Salary          *decimal.Decimal `json:"salary"`
	Position        string           `json:"position" binding:"max=100"`
	HireDate        *time.Time       `json:"hire_date"`
	SharePercentage *decimal.Decimal `json:"share_percentage"`
}

// UpdatePartyRequest represents a request to update a party
type UpdatePartyRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Contact         *string          `json:"contact" binding:"omitempty,max=100"`
	Notes           *string          `json:"notes"`
	Salary          *decimal.Decimal `json:"salary"`
	SharePercentage *decimal.Decimal `json:"share_percentage"`
}

// ListPartiesRequest represents query options for listing parties
type ListPartiesRequest struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=CUSTOMER PARTNER EMPLOYEE SUPPLIER"`
	Search string `form:"search"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// PartyResponse represents a party in API responses. Balance is present
// only on detail responses, where it is computed from the ledger.
type PartyResponse struct {
	ID              uuid.UUID        `json:"id"`
	Kind            string           `json:"kind"`
	Name            string           `json:"name"`
	Contact         string           `json:"contact"`
	Notes           string           `json:"notes,omitempty"`
	Salary          *decimal.Decimal `json:"salary,omitempty"`
	Position        string           `json:"position,omitempty"`
	HireDate        *time.Time       `json:"hire_date,omitempty"`
	SharePercentage *decimal.Decimal `json:"share_percentage,omitempty"`
	Balance         *decimal.Decimal `json:"balance,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ListPartiesResponse pairs a page of parties with the total count
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
	Total   int64           `json:"total"`
}

func toPartyResponse(p *party.Party) PartyResponse {
	resp := PartyResponse{
		ID:        p.ID,
		Kind:      p.Kind.String(),
		Name:      p.Name,
		Contact:   p.Contact,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Employee != nil {
		salary := p.Employee.Salary
		hireDate := p.Employee.HireDate
		resp.Salary = &salary
		resp.Position = p.Employee.Position
		resp.HireDate = &hireDate
	}
	if p.Partner != nil {
		share := p.Partner.SharePercentage
		resp.SharePercentage = &share
	}
	return resp
}
