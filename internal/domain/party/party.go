package party

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Kind discriminates the role a party plays in the books. A party has
// exactly one kind; the legacy schema that flagged a single customer
// record as partner and/or employee is resolved at import time (see
// ResolveLegacyKind).
type Kind string

const (
	KindCustomer Kind = "CUSTOMER"
	KindPartner  Kind = "PARTNER"
	KindEmployee Kind = "EMPLOYEE"
	KindSupplier Kind = "SUPPLIER"
)

// IsValid checks if the kind is a valid party Kind
func (k Kind) IsValid() bool {
	switch k {
	case KindCustomer, KindPartner, KindEmployee, KindSupplier:
		return true
	}
	return false
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsReceivableSide returns true for kinds whose positive balance means
// the party owes the business (customers and employees). Partners and
// suppliers are the payable side: a positive balance means the business
// owes them.
func (k Kind) IsReceivableSide() bool {
	return k == KindCustomer || k == KindEmployee
}

// EmployeeProfile carries employee-specific fields
type EmployeeProfile struct {
	Salary   decimal.Decimal `json:"salary"`
	Position string          `json:"position"`
	HireDate time.Time       `json:"hire_date"`
}

// PartnerProfile carries partner-specific fields
type PartnerProfile struct {
	SharePercentage decimal.Decimal `json:"share_percentage"`
}

// Party is an aggregate representing anyone the station keeps an
// account with: customers, partners, employees and suppliers. The
// role-specific profiles are present only for the matching kind.
type Party struct {
	shared.BaseAggregateRoot
	Kind     Kind
	Name     string
	Contact  string
	Notes    string
	Employee *EmployeeProfile
	Partner  *PartnerProfile
}

func newParty(kind Kind, name, contact string) (*Party, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Party name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Party name cannot exceed 200 characters")
	}
	return &Party{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		Name:              name,
		Contact:           contact,
	}, nil
}

// NewCustomer creates a plain customer party
func NewCustomer(name, contact string) (*Party, error) {
	return newParty(KindCustomer, name, contact)
}

// NewSupplier creates a supplier party
func NewSupplier(name, contact string) (*Party, error) {
	return newParty(KindSupplier, name, contact)
}

// NewEmployee creates an employee party with its payroll profile
func NewEmployee(name, contact string, salary decimal.Decimal, position string, hireDate time.Time) (*Party, error) {
	if salary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	p, err := newParty(KindEmployee, name, contact)
	if err != nil {
		return nil, err
	}
	p.Employee = &EmployeeProfile{
		Salary:   salary,
		Position: position,
		HireDate: hireDate,
	}
	return p, nil
}

// NewPartner creates a partner party with its equity profile
func NewPartner(name, contact string, sharePercentage decimal.Decimal) (*Party, error) {
	if sharePercentage.IsNegative() || sharePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_SHARE", "Share percentage must be between 0 and 100")
	}
	p, err := newParty(KindPartner, name, contact)
	if err != nil {
		return nil, err
	}
	p.Partner = &PartnerProfile{SharePercentage: sharePercentage}
	return p, nil
}

// Rename updates the party name
func (p *Party) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Party name cannot be empty")
	}
	p.Name = name
	p.Touch()
	p.IncrementVersion()
	return nil
}

// UpdateContact updates the contact information
func (p *Party) UpdateContact(contact string) {
	p.Contact = contact
	p.Touch()
	p.IncrementVersion()
}

// UpdateSalary updates the salary of an employee party
func (p *Party) UpdateSalary(salary decimal.Decimal) error {
	if p.Kind != KindEmployee || p.Employee == nil {
		return shared.NewDomainError("NOT_EMPLOYEE", "Party is not an employee")
	}
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	p.Employee.Salary = salary
	p.Touch()
	p.IncrementVersion()
	return nil
}

// UpdateSharePercentage updates the equity share of a partner party
func (p *Party) UpdateSharePercentage(share decimal.Decimal) error {
	if p.Kind != KindPartner || p.Partner == nil {
		return shared.NewDomainError("NOT_PARTNER", "Party is not a partner")
	}
	if share.IsNegative() || share.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_SHARE", "Share percentage must be between 0 and 100")
	}
	p.Partner.SharePercentage = share
	p.Touch()
	p.IncrementVersion()
	return nil
}

// ResolveLegacyKind maps the legacy boolean-flag customer schema onto a
// single Kind. Flag priority is fixed: Partner > Employee > Customer.
// A record flagged both partner and employee is ambiguous in the legacy
// data; callers importing such records should warn rather than guess
// silently, but the returned kind follows the documented priority so
// balance sign conventions stay deterministic.
func ResolveLegacyKind(isPartner, isEmployee bool) Kind {
	switch {
	case isPartner:
		return KindPartner
	case isEmployee:
		return KindEmployee
	default:
		return KindCustomer
	}
}
