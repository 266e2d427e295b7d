package finance

import (
	"context"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/party"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpenseService records operating expenses. Salary expenses post to
// the named employee's ledger; all other categories post to no party.
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	partyRepo   party.Repository
	logger      *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo finance.ExpenseRepository, partyRepo party.Repository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, partyRepo: partyRepo, logger: logger}
}

// Record records an expense
func (s *ExpenseService) Record(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	category := finance.ExpenseCategory(req.Category)

	var (
		expense *finance.Expense
		err     error
	)
	if category == finance.ExpenseCategorySalaries {
		if req.EmployeeID == nil {
			return nil, shared.NewDomainError("MISSING_EMPLOYEE", "Salary expenses must name an employee")
		}
		employee, findErr := s.partyRepo.FindByID(ctx, *req.EmployeeID)
		if findErr != nil {
			return nil, findErr
		}
		if employee.Kind != party.KindEmployee {
			return nil, shared.NewDomainError("NOT_EMPLOYEE", "Salary expenses can only pay employee accounts")
		}
		expense, err = finance.NewSalaryExpense(*req.EmployeeID, req.OccurredAt, req.Amount, req.Description)
	} else {
		expense, err = finance.NewExpense(category, req.OccurredAt, req.Amount, req.Description)
	}
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", expense.Category.String()),
		zap.String("amount", expense.Amount.String()))

	resp := toExpenseResponse(expense)
	return &resp, nil
}

// List returns expenses in the period
func (s *ExpenseService) List(ctx context.Context, period PeriodRequest) ([]ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindAll(ctx, period.toFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}
	return responses, nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
