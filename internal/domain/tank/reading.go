package tank

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VarianceTolerance is the absolute variance (in volume units) still
// considered normal pump drift. The classification is display-only;
// readings outside tolerance are stored all the same.
var VarianceTolerance = decimal.NewFromInt(1)

// VarianceStatus classifies a reading's variance
type VarianceStatus string

const (
	VarianceStatusNormal VarianceStatus = "NORMAL" // |variance| within tolerance
	VarianceStatusLoss   VarianceStatus = "LOSS"   // Meter usage exceeds recorded sales
	VarianceStatusGain   VarianceStatus = "GAIN"   // Recorded sales exceed meter usage
)

// String returns the string representation of VarianceStatus
func (s VarianceStatus) String() string {
	return string(s)
}

// TankReading is an immutable dip/meter reading for a fuel product,
// with the usage and variance derived at recording time.
//
// Meter rollover is not special-cased: a meter that wraps produces a
// negative calculated usage and a large negative variance, which is the
// signal the operator sees. Inventing rollover arithmetic here would
// silently change a convention the books were kept under.
type TankReading struct {
	shared.BaseEntity
	ProductID             uuid.UUID
	OccurredAt            time.Time
	MeterReading          valueobject.Volume
	CalculatedUsage       decimal.Decimal
	SalesSinceLastReading decimal.Decimal
	Variance              decimal.Decimal // CalculatedUsage - SalesSinceLastReading
	HasPrior              bool            // False for the first reading of a product
}

// Derivation holds the computed fields of a new reading
type Derivation struct {
	CalculatedUsage       decimal.Decimal `json:"calculated_usage"`
	SalesSinceLastReading decimal.Decimal `json:"sales_since_last_reading"`
	Variance              decimal.Decimal `json:"variance"`
	HasPrior              bool            `json:"has_prior"`
}

// Derive computes usage, sales volume and variance for a new meter
// reading against the prior readings and sales of the same product.
// The sales window is (previous reading, current reading]. With no
// prior reading there is no window, so all derived figures are zero.
func Derive(productID uuid.UUID, meterReading valueobject.Volume, occurredAt time.Time, priorReadings []*TankReading, sales []*trade.Sale) Derivation {
	prev := latestBefore(productID, occurredAt, priorReadings)
	if prev == nil {
		return Derivation{
			CalculatedUsage:       decimal.Zero,
			SalesSinceLastReading: decimal.Zero,
			Variance:              decimal.Zero,
		}
	}

	// Readings are always recorded in liters, so the unit check cannot
	// fail. Usage is a raw decimal because a wrapped meter makes it
	// negative, which a Volume cannot represent.
	usage, _ := meterReading.Subtract(prev.MeterReading)
	sold := decimal.Zero
	for _, s := range sales {
		if !s.OccurredAt.After(prev.OccurredAt) || s.OccurredAt.After(occurredAt) {
			continue
		}
		sold = sold.Add(s.VolumeOfProduct(productID))
	}

	return Derivation{
		CalculatedUsage:       usage,
		SalesSinceLastReading: sold,
		Variance:              usage.Sub(sold),
		HasPrior:              true,
	}
}

// NewTankReading records a meter reading with its derivation. A
// negative meter value is unrepresentable: the Volume constructor
// rejects it before a reading can be built.
func NewTankReading(productID uuid.UUID, meterReading valueobject.Volume, occurredAt time.Time, d Derivation) (*TankReading, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &TankReading{
		BaseEntity:            shared.NewBaseEntity(),
		ProductID:             productID,
		OccurredAt:            occurredAt,
		MeterReading:          meterReading,
		CalculatedUsage:       d.CalculatedUsage,
		SalesSinceLastReading: d.SalesSinceLastReading,
		Variance:              d.Variance,
		HasPrior:              d.HasPrior,
	}, nil
}

// Status classifies the reading's variance against the tolerance
func (r *TankReading) Status() VarianceStatus {
	if r.Variance.Abs().LessThanOrEqual(VarianceTolerance) {
		return VarianceStatusNormal
	}
	if r.Variance.IsPositive() {
		return VarianceStatusLoss
	}
	return VarianceStatusGain
}

// latestBefore returns the most recent reading of the product strictly
// before ts, or nil when none exists.
func latestBefore(productID uuid.UUID, ts time.Time, readings []*TankReading) *TankReading {
	var prev *TankReading
	for _, r := range readings {
		if r.ProductID != productID || !r.OccurredAt.Before(ts) {
			continue
		}
		if prev == nil || r.OccurredAt.After(prev.OccurredAt) {
			prev = r
		}
	}
	return prev
}
