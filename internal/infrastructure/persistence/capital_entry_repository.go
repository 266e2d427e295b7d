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

// GormCapitalEntryRepository implements finance.CapitalEntryRepository using GORM
type GormCapitalEntryRepository struct {
	db *gorm.DB
}

// NewGormCapitalEntryRepository creates a new GormCapitalEntryRepository
func NewGormCapitalEntryRepository(db *gorm.DB) *GormCapitalEntryRepository {
	return &GormCapitalEntryRepository{db: db}
}

// FindByID finds a capital entry by its ID
func (r *GormCapitalEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CapitalEntry, error) {
	var model models.CapitalEntryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds capital entries within the period, oldest first
func (r *GormCapitalEntryRepository) FindAll(ctx context.Context, filter finance.PeriodFilter) ([]*finance.CapitalEntry, error) {
	query := applyPeriod(r.db.WithContext(ctx).Model(&models.CapitalEntryModel{}), filter.From, filter.To)
	return r.find(query)
}

// FindByPartner finds capital entries of a partner within the period
func (r *GormCapitalEntryRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, filter finance.PeriodFilter) ([]*finance.CapitalEntry, error) {
	query := applyPeriod(
		r.db.WithContext(ctx).Model(&models.CapitalEntryModel{}).Where("partner_id = ?", partnerID),
		filter.From, filter.To,
	)
	return r.find(query)
}

// Save creates a capital entry
func (r *GormCapitalEntryRepository) Save(ctx context.Context, e *finance.CapitalEntry) error {
	model := models.CapitalEntryModelFromDomain(e)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a capital entry
func (r *GormCapitalEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CapitalEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCapitalEntryRepository) find(query *gorm.DB) ([]*finance.CapitalEntry, error) {
	var entryModels []models.CapitalEntryModel
	if err := query.Order("occurred_at ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]*finance.CapitalEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, nil
}

// Ensure GormCapitalEntryRepository implements finance.CapitalEntryRepository
var _ finance.CapitalEntryRepository = (*GormCapitalEntryRepository)(nil)
