package finance

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies operating expenses
type ExpenseCategory string

const (
	ExpenseCategorySalaries    ExpenseCategory = "SALARIES" // Posts to an employee ledger
	ExpenseCategoryUtilities   ExpenseCategory = "UTILITIES"
	ExpenseCategoryRent        ExpenseCategory = "RENT"
	ExpenseCategoryMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseCategoryTransport   ExpenseCategory = "TRANSPORT"
	ExpenseCategoryOther       ExpenseCategory = "OTHER"
)

// IsValid checks if the expense category is valid
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategorySalaries, ExpenseCategoryUtilities, ExpenseCategoryRent,
		ExpenseCategoryMaintenance, ExpenseCategoryTransport, ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// Expense is an immutable operating expense record. A SALARIES expense
// carries the employee it pays and credits that employee's account
// (settling advances and purchases made against salary).
type Expense struct {
	shared.BaseEntity
	Category    ExpenseCategory
	EmployeeID  *uuid.UUID // Set only for SALARIES
	OccurredAt  time.Time
	Amount      valueobject.Money
	Description string
}

// NewExpense creates a general expense record
func NewExpense(category ExpenseCategory, occurredAt time.Time, amount decimal.Decimal, description string) (*Expense, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if category == ExpenseCategorySalaries {
		return nil, shared.NewDomainError("MISSING_EMPLOYEE", "Salary expenses must name an employee; use NewSalaryExpense")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Category:    category,
		OccurredAt:  occurredAt,
		Amount:      valueobject.NewMoneyPKR(amount),
		Description: description,
	}, nil
}

// NewSalaryExpense creates a salary posting for the given employee
func NewSalaryExpense(employeeID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, description string) (*Expense, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Salary amount must be positive")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Category:    ExpenseCategorySalaries,
		EmployeeID:  &employeeID,
		OccurredAt:  occurredAt,
		Amount:      valueobject.NewMoneyPKR(amount),
		Description: description,
	}, nil
}

// IsSalary returns true if the expense is a salary posting
func (e *Expense) IsSalary() bool {
	return e.Category == ExpenseCategorySalaries && e.EmployeeID != nil
}
