package tank

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/tank"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateReadingRequest represents a new meter reading being recorded
type CreateReadingRequest struct {
	ProductID    uuid.UUID       `json:"product_id" binding:"required"`
	MeterReading decimal.Decimal `json:"meter_reading" binding:"required"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// ReadingResponse represents a tank reading with its derived figures
type ReadingResponse struct {
	ID                    uuid.UUID       `json:"id"`
	ProductID             uuid.UUID       `json:"product_id"`
	OccurredAt            time.Time       `json:"occurred_at"`
	MeterReading          decimal.Decimal `json:"meter_reading"`
	CalculatedUsage       decimal.Decimal `json:"calculated_usage"`
	SalesSinceLastReading decimal.Decimal `json:"sales_since_last_reading"`
	Variance              decimal.Decimal `json:"variance"`
	Status                string          `json:"status"`
	HasPrior              bool            `json:"has_prior"`
}

func toReadingResponse(r *tank.TankReading) ReadingResponse {
	return ReadingResponse{
		ID:                    r.ID,
		ProductID:             r.ProductID,
		OccurredAt:            r.OccurredAt,
		MeterReading:          r.MeterReading.Value(),
		CalculatedUsage:       r.CalculatedUsage,
		SalesSinceLastReading: r.SalesSinceLastReading,
		Variance:              r.Variance,
		Status:                r.Status().String(),
		HasPrior:              r.HasPrior,
	}
}
