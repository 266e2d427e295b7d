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

// GormCustomerPaymentRepository implements finance.CustomerPaymentRepository using GORM
type GormCustomerPaymentRepository struct {
	db *gorm.DB
}

// NewGormCustomerPaymentRepository creates a new GormCustomerPaymentRepository
func NewGormCustomerPaymentRepository(db *gorm.DB) *GormCustomerPaymentRepository {
	return &GormCustomerPaymentRepository{db: db}
}

// FindByID finds a customer payment by its ID
func (r *GormCustomerPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CustomerPayment, error) {
	var model models.CustomerPaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds customer payments within the period, oldest first
func (r *GormCustomerPaymentRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.CustomerPayment, error) {
	query := applyPeriod(r.db.WithContext(ctx).Model(&models.CustomerPaymentModel{}), filter.From, filter.To)
	return r.find(query)
}

// FindByCustomer finds payments from a customer within the period
func (r *GormCustomerPaymentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter finance.PeriodFilter) ([]*finance.CustomerPayment, error) {
	query := applyPeriod(
		r.db.WithContext(ctx).Model(&models.CustomerPaymentModel{}).Where("customer_id = ?", customerID),
		filter.From, filter.To,
	)
	return r.find(query)
}

// Save creates a customer payment
func (r *GormCustomerPaymentRepository) Save(ctx context.Context, p *finance.CustomerPayment) error {
	model := models.CustomerPaymentModelFromDomain(p)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a customer payment
func (r *GormCustomerPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerPaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCustomerPaymentRepository) find(query *gorm.DB) ([]*finance.CustomerPayment, error) {
	var paymentModels []models.CustomerPaymentModel
	if err := query.Order("occurred_at ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*finance.CustomerPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// Ensure GormCustomerPaymentRepository implements finance.CustomerPaymentRepository
var _ finance.CustomerPaymentRepository = (*GormCustomerPaymentRepository)(nil)
