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

// GormSaleRepository implements trade.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID, with line items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds sales within the period, oldest first
func (r *GormSaleRepository) FindAll(ctx context.Context, filter trade.PeriodFilter) ([]*trade.Sale, error) {
	var saleModels []models.SaleModel
	query := applyPeriod(r.db.WithContext(ctx).Preload("Items"), filter.From, filter.To)

	if err := query.Order("occurred_at ASC").Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return saleModelsToDomain(saleModels), nil
}

// FindByCustomer finds sales for a customer within the period
func (r *GormSaleRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter trade.PeriodFilter) ([]*trade.Sale, error) {
	var saleModels []models.SaleModel
	query := applyPeriod(
		r.db.WithContext(ctx).Preload("Items").Where("customer_id = ?", customerID),
		filter.From, filter.To,
	)

	if err := query.Order("occurred_at ASC").Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return saleModelsToDomain(saleModels), nil
}

// Save creates a sale with its line items
func (r *GormSaleRepository) Save(ctx context.Context, s *trade.Sale) error {
	model := models.SaleModelFromDomain(s)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a sale and its line items
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SaleItemModel{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.SaleModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func saleModelsToDomain(saleModels []models.SaleModel) []*trade.Sale {
	sales := make([]*trade.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToDomain()
	}
	return sales
}

// Ensure GormSaleRepository implements trade.SaleRepository
var _ trade.SaleRepository = (*GormSaleRepository)(nil)
