package models

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/tank"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TankReadingModel is the persistence model for a TankReading. The
// derived columns are stored as computed at recording time so historical
// variance reports survive later sale deletions.
type TankReadingModel struct {
	BaseModel
	ProductID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	OccurredAt            time.Time       `gorm:"not null;index"`
	MeterReading          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CalculatedUsage       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SalesSinceLastReading decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Variance              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	HasPrior              bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (TankReadingModel) TableName() string {
	return "tank_readings"
}

// ToDomain converts the persistence model to a domain TankReading
func (m *TankReadingModel) ToDomain() *tank.TankReading {
	return &tank.TankReading{
		BaseEntity:            m.BaseModel.ToDomain(),
		ProductID:             m.ProductID,
		OccurredAt:            m.OccurredAt,
		MeterReading:          valueobject.MustNewLiters(m.MeterReading),
		CalculatedUsage:       m.CalculatedUsage,
		SalesSinceLastReading: m.SalesSinceLastReading,
		Variance:              m.Variance,
		HasPrior:              m.HasPrior,
	}
}

// TankReadingModelFromDomain creates a new persistence model from a
// domain TankReading
func TankReadingModelFromDomain(r *tank.TankReading) *TankReadingModel {
	m := &TankReadingModel{
		ProductID:             r.ProductID,
		OccurredAt:            r.OccurredAt,
		MeterReading:          r.MeterReading.Value(),
		CalculatedUsage:       r.CalculatedUsage,
		SalesSinceLastReading: r.SalesSinceLastReading,
		Variance:              r.Variance,
		HasPrior:              r.HasPrior,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
