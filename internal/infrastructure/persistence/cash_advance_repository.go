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

// GormCashAdvanceRepository implements finance.CashAdvanceRepository using GORM
type GormCashAdvanceRepository struct {
	db *gorm.DB
}

// NewGormCashAdvanceRepository creates a new GormCashAdvanceRepository
func NewGormCashAdvanceRepository(db *gorm.DB) *GormCashAdvanceRepository {
	return &GormCashAdvanceRepository{db: db}
}

// FindByID finds a cash advance by its ID
func (r *GormCashAdvanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CashAdvance, error) {
	var model models.CashAdvanceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds cash advances within the period, oldest first
func (r *GormCashAdvanceRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.CashAdvance, error) {
	query := applyPeriod(r.db.WithContext(ctx).Model(&models.CashAdvanceModel{}), filter.From, filter.To)
	return r.find(query)
}

// FindByParty finds advances handed to a party within the period
func (r *GormCashAdvanceRepository) FindByParty(ctx context.Context, partyID uuid.UUID, filter finance.PeriodFilter) ([]*finance.CashAdvance, error) {
	query := applyPeriod(
		r.db.WithContext(ctx).Model(&models.CashAdvanceModel{}).Where("party_id = ?", partyID),
		filter.From, filter.To,
	)
	return r.find(query)
}

// Save creates a cash advance
func (r *GormCashAdvanceRepository) Save(ctx context.Context, a *finance.CashAdvance) error {
	model := models.CashAdvanceModelFromDomain(a)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a cash advance
func (r *GormCashAdvanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CashAdvanceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCashAdvanceRepository) find(query *gorm.DB) ([]*finance.CashAdvance, error) {
	var advanceModels []models.CashAdvanceModel
	if err := query.Order("occurred_at ASC").Find(&advanceModels).Error; err != nil {
		return nil, err
	}
	advances := make([]*finance.CashAdvance, len(advanceModels))
	for i := range advanceModels {
		advances[i] = advanceModels[i].ToDomain()
	}
	return advances, nil
}

// Ensure GormCashAdvanceRepository implements finance.CashAdvanceRepository
var _ finance.CashAdvanceRepository = (*GormCashAdvanceRepository)(nil)
