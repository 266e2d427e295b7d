package persistence

import (
	"context"
	"errors"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/fuelpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseReturnRepository implements trade.PurchaseReturnRepository using GORM
type GormPurchaseReturnRepository struct {
	db *gorm.DB
}

// NewGormPurchaseReturnRepository creates a new GormPurchaseReturnRepository
func NewGormPurchaseReturnRepository(db *gorm.DB) *GormPurchaseReturnRepository {
	return &GormPurchaseReturnRepository{db: db}
}

// FindByID finds a purchase return by its ID
func (r *GormPurchaseReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseReturn, error) {
	var model models.PurchaseReturnModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds purchase returns within the period, oldest first
func (r *GormPurchaseReturnRepository) FindAll(ctx context.Context, filter trade.PeriodFilter) ([]*trade.PurchaseReturn, error) {
	var returnModels []models.PurchaseReturnModel
	query := applyPeriod(r.db.WithContext(ctx).Model(&models.PurchaseReturnModel{}), filter.From, filter.To)

	if err := query.Order("occurred_at ASC").Find(&returnModels).Error; err != nil {
		return nil, err
	}

	returns := make([]*trade.PurchaseReturn, len(returnModels))
	for i := range returnModels {
		returns[i] = returnModels[i].ToDomain()
	}
	return returns, nil
}

// Save creates a purchase return
func (r *GormPurchaseReturnRepository) Save(ctx context.Context, ret *trade.PurchaseReturn) error {
	model := models.PurchaseReturnModelFromDomain(ret)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a purchase return
func (r *GormPurchaseReturnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PurchaseReturnModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPurchaseReturnRepository implements trade.PurchaseReturnRepository
var _ trade.PurchaseReturnRepository = (*GormPurchaseReturnRepository)(nil)
