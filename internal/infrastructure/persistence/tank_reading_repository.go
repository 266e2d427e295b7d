package persistence

import (
	"context"
	"errors"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/tank"
	"github.com/fuelpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTankReadingRepository implements tank.Repository using GORM
type GormTankReadingRepository struct {
	db *gorm.DB
}

// NewGormTankReadingRepository creates a new GormTankReadingRepository
func NewGormTankReadingRepository(db *gorm.DB) *GormTankReadingRepository {
	return &GormTankReadingRepository{db: db}
}

// FindByID finds a tank reading by its ID
func (r *GormTankReadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*tank.TankReading, error) {
	var model models.TankReadingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProduct finds readings of a product, oldest first
func (r *GormTankReadingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*tank.TankReading, error) {
	var readingModels []models.TankReadingModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("occurred_at ASC").
		Find(&readingModels).Error; err != nil {
		return nil, err
	}
	return readingModelsToDomain(readingModels), nil
}

// FindAll finds all readings, oldest first
func (r *GormTankReadingRepository) FindAll(ctx context.Context) ([]*tank.TankReading, error) {
	var readingModels []models.TankReadingModel
	if err := r.db.WithContext(ctx).
		Order("occurred_at ASC").
		Find(&readingModels).Error; err != nil {
		return nil, err
	}
	return readingModelsToDomain(readingModels), nil
}

// Save creates a tank reading
func (r *GormTankReadingRepository) Save(ctx context.Context, reading *tank.TankReading) error {
	model := models.TankReadingModelFromDomain(reading)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a tank reading
func (r *GormTankReadingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TankReadingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func readingModelsToDomain(readingModels []models.TankReadingModel) []*tank.TankReading {
	readings := make([]*tank.TankReading, len(readingModels))
	for i := range readingModels {
		readings[i] = readingModels[i].ToDomain()
	}
	return readings
}

// Ensure GormTankReadingRepository implements tank.Repository
var _ tank.Repository = (*GormTankReadingRepository)(nil)
