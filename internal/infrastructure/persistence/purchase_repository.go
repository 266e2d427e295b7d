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

// GormPurchaseRepository implements trade.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID, with line items
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds purchases within the period, oldest first
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter trade.PeriodFilter) ([]*trade.Purchase, error) {
	var purchaseModels []models.PurchaseModel
	query := applyPeriod(r.db.WithContext(ctx).Preload("Items"), filter.From, filter.To)

	if err := query.Order("occurred_at ASC").Find(&purchaseModels).Error; err != nil {
		return nil, err
	}
	return purchaseModelsToDomain(purchaseModels), nil
}

// FindBySupplier finds purchases from a supplier within the period
func (r *GormPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter trade.PeriodFilter) ([]*trade.Purchase, error) {
	var purchaseModels []models.PurchaseModel
	query := applyPeriod(
		r.db.WithContext(ctx).Preload("Items").Where("supplier_id = ?", supplierID),
		filter.From, filter.To,
	)

	if err := query.Order("occurred_at ASC").Find(&purchaseModels).Error; err != nil {
		return nil, err
	}
	return purchaseModelsToDomain(purchaseModels), nil
}

// Save creates a purchase with its line items
func (r *GormPurchaseRepository) Save(ctx context.Context, p *trade.Purchase) error {
	model := models.PurchaseModelFromDomain(p)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a purchase and its line items
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseItemModel{}, "purchase_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func purchaseModelsToDomain(purchaseModels []models.PurchaseModel) []*trade.Purchase {
	purchases := make([]*trade.Purchase, len(purchaseModels))
	for i := range purchaseModels {
		purchases[i] = purchaseModels[i].ToDomain()
	}
	return purchases
}

// Ensure GormPurchaseRepository implements trade.PurchaseRepository
var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
