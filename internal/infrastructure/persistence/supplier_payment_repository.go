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

// GormSupplierPaymentRepository implements finance.SupplierPaymentRepository using GORM
type GormSupplierPaymentRepository struct {
	db *gorm.DB
}

// NewGormSupplierPaymentRepository creates a new GormSupplierPaymentRepository
func NewGormSupplierPaymentRepository(db *gorm.DB) *GormSupplierPaymentRepository {
	return &GormSupplierPaymentRepository{db: db}
}

// FindByID finds a supplier payment by its ID
func (r *GormSupplierPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.SupplierPayment, error) {
	var model models.SupplierPaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds supplier payments within the period, oldest first
func (r *GormSupplierPaymentRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.SupplierPayment, error) {
	query := applyPeriod(r.db.WithContext(ctx).Model(&models.SupplierPaymentModel{}), filter.From, filter.To)
	return r.find(query)
}

// FindBySupplier finds payments to a supplier within the period
func (r *GormSupplierPaymentRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter finance.PeriodFilter) ([]*finance.SupplierPayment, error) {
	query := applyPeriod(
		r.db.WithContext(ctx).Model(&models.SupplierPaymentModel{}).Where("supplier_id = ?", supplierID),
		filter.From, filter.To,
	)
	return r.find(query)
}

// Save creates a supplier payment
func (r *GormSupplierPaymentRepository) Save(ctx context.Context, p *finance.SupplierPayment) error {
	model := models.SupplierPaymentModelFromDomain(p)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a supplier payment
func (r *GormSupplierPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplierPaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormSupplierPaymentRepository) find(query *gorm.DB) ([]*finance.SupplierPayment, error) {
	var paymentModels []models.SupplierPaymentModel
	if err := query.Order("occurred_at ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*finance.SupplierPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// Ensure GormSupplierPaymentRepository implements finance.SupplierPaymentRepository
var _ finance.SupplierPaymentRepository = (*GormSupplierPaymentRepository)(nil)
