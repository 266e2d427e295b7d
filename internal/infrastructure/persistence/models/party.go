package models

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/shopspring/decimal"
)

// PartyModel is the persistence model for the Party aggregate. The
// role-specific profile columns are nullable and populated only for the
// matching kind.
type PartyModel struct {
	AggregateModel
	Kind            party.Kind       `gorm:"type:varchar(20);not null;index"`
	Name            string           `gorm:"type:varchar(200);not null;index"`
	Contact         string           `gorm:"type:varchar(100)"`
	Notes           string           `gorm:"type:text"`
	Salary          *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Position        *string          `gorm:"type:varchar(100)"`
	HireDate        *time.Time       ``
	SharePercentage *decimal.Decimal `gorm:"type:decimal(7,4)"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "parties"
}

// ToDomain converts the persistence model to a domain Party
func (m *PartyModel) ToDomain() *party.Party {
	p := &party.Party{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Kind:              m.Kind,
		Name:              m.Name,
		Contact:           m.Contact,
		Notes:             m.Notes,
	}
	if m.Kind == party.KindEmployee {
		profile := &party.EmployeeProfile{}
		if m.Salary != nil {
			profile.Salary = *m.Salary
		}
		if m.Position != nil {
			profile.Position = *m.Position
		}
		if m.HireDate != nil {
			profile.HireDate = *m.HireDate
		}
		p.Employee = profile
	}
	if m.Kind == party.KindPartner {
		profile := &party.PartnerProfile{}
		if m.SharePercentage != nil {
			profile.SharePercentage = *m.SharePercentage
		}
		p.Partner = profile
	}
	return p
}

// FromDomain populates the persistence model from a domain Party
func (m *PartyModel) FromDomain(p *party.Party) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Kind = p.Kind
	m.Name = p.Name
	m.Contact = p.Contact
	m.Notes = p.Notes
	m.Salary = nil
	m.Position = nil
	m.HireDate = nil
	m.SharePercentage = nil
	if p.Employee != nil {
		salary := p.Employee.Salary
		position := p.Employee.Position
		hireDate := p.Employee.HireDate
		m.Salary = &salary
		m.Position = &position
		m.HireDate = &hireDate
	}
	if p.Partner != nil {
		share := p.Partner.SharePercentage
		m.SharePercentage = &share
	}
}

// PartyModelFromDomain creates a new persistence model from a domain Party
func PartyModelFromDomain(p *party.Party) *PartyModel {
	m := &PartyModel{}
	m.FromDomain(p)
	return m
}
