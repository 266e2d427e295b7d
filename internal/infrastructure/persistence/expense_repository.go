package persistence

import (
	"context"
	"errors"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds expenses within the period, oldest first
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.Expense, error) {
	query := applyPeriod(r.db.WithContext(ctx).Model(&models.ExpenseModel{}), filter.From, filter.To)
	return r.find(query)
}

// FindByCategory finds expenses of a category within the period
func (r *GormExpenseRepository) FindByCategory(ctx context.Context, category finance.ExpenseCategory, filter finance.PeriodFilter) ([]*finance.Expense, error) {
	query := applyPeriod(
		r.db.WithContext(ctx).Model(&models.ExpenseModel{}).Where("category = ?", category),
		filter.From, filter.To,
	)
	return r.find(query)
}

// Save creates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, e *finance.Expense) error {
	model := models.ExpenseModelFromDomain(e)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormExpenseRepository) find(query *gorm.DB) ([]*finance.Expense, error) {
	var expenseModels []models.ExpenseModel
	if err := query.Order("occurred_at ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	expenses := make([]*finance.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToDomain()
	}
	return expenses, nil
}

// Ensure GormExpenseRepository implements finance.ExpenseRepository
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
