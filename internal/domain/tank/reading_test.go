package tank

import (
	"testing"
	"time"

	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC)
}

func liters(n int64) valueobject.Volume {
	return valueobject.MustNewLiters(decimal.NewFromInt(n))
}

func reading(t *testing.T, productID uuid.UUID, ts time.Time, meter int64, prior []*TankReading, sales []*trade.Sale) *TankReading {
	t.Helper()
	d := Derive(productID, liters(meter), ts, prior, sales)
	r, err := NewTankReading(productID, liters(meter), ts, d)
	require.NoError(t, err)
	return r
}

func fuelSale(t *testing.T, productID uuid.UUID, ts time.Time, qty int64) *trade.Sale {
	t.Helper()
	item, err := trade.NewSaleItem(productID, decimal.NewFromInt(qty), decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)
	s, err := trade.NewSale(nil, ts, []trade.SaleItem{item}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	return s
}

func TestDerive_FirstReadingHasNoWindow(t *testing.T) {
	diesel := uuid.New()
	d := Derive(diesel, liters(1000), at(8), nil, nil)
	assert.True(t, d.CalculatedUsage.IsZero())
	assert.True(t, d.SalesSinceLastReading.IsZero())
	assert.True(t, d.Variance.IsZero())
	assert.False(t, d.HasPrior)
}

func TestDerive_UsageAndVariance(t *testing.T) {
	diesel := uuid.New()
	first := reading(t, diesel, at(8), 1000, nil, nil)

	sales := []*trade.Sale{
		fuelSale(t, diesel, at(10), 60),
		fuelSale(t, diesel, at(12), 38),
	}

	d := Derive(diesel, liters(1100), at(14), []*TankReading{first}, sales)
	assert.True(t, d.CalculatedUsage.Equal(decimal.NewFromInt(100)))
	assert.True(t, d.SalesSinceLastReading.Equal(decimal.NewFromInt(98)))
	assert.True(t, d.Variance.Equal(decimal.NewFromInt(2)))
	assert.True(t, d.HasPrior)
}

func TestDerive_SalesWindowBounds(t *testing.T) {
	diesel := uuid.New()
	first := reading(t, diesel, at(8), 1000, nil, nil)

	sales := []*trade.Sale{
		fuelSale(t, diesel, at(8), 40),  // At the prior reading: excluded
		fuelSale(t, diesel, at(10), 50), // Inside: included
		fuelSale(t, diesel, at(14), 30), // At the current reading: included
		fuelSale(t, diesel, at(15), 20), // After: excluded
	}

	d := Derive(diesel, liters(1080), at(14), []*TankReading{first}, sales)
	assert.True(t, d.SalesSinceLastReading.Equal(decimal.NewFromInt(80)))
}

func TestDerive_OtherProductSalesIgnored(t *testing.T) {
	diesel := uuid.New()
	petrol := uuid.New()
	first := reading(t, diesel, at(8), 500, nil, nil)

	sales := []*trade.Sale{
		fuelSale(t, petrol, at(10), 70),
		fuelSale(t, diesel, at(11), 25),
	}

	d := Derive(diesel, liters(525), at(12), []*TankReading{first}, sales)
	assert.True(t, d.SalesSinceLastReading.Equal(decimal.NewFromInt(25)))
	assert.True(t, d.Variance.IsZero())
}

func TestDerive_UsesImmediatelyPrecedingReading(t *testing.T) {
	diesel := uuid.New()
	older := reading(t, diesel, at(6), 900, nil, nil)
	newer := reading(t, diesel, at(9), 950, []*TankReading{older}, nil)

	d := Derive(diesel, liters(980), at(12), []*TankReading{older, newer}, nil)
	assert.True(t, d.CalculatedUsage.Equal(decimal.NewFromInt(30)))
}

func TestDerive_MeterRollbackSurfacesNegativeUsage(t *testing.T) {
	// A wrapped or replaced meter reads lower than before; the usage
	// goes negative and shows up as a large negative variance instead
	// of being silently corrected.
	diesel := uuid.New()
	first := reading(t, diesel, at(8), 999900, nil, nil)

	d := Derive(diesel, liters(100), at(12), []*TankReading{first}, nil)
	assert.True(t, d.CalculatedUsage.IsNegative())
	assert.True(t, d.Variance.IsNegative())
}

func TestTankReading_Status(t *testing.T) {
	diesel := uuid.New()

	cases := []struct {
		name     string
		variance int64
		want     VarianceStatus
	}{
		{"within tolerance positive", 1, VarianceStatusNormal},
		{"within tolerance negative", -1, VarianceStatusNormal},
		{"zero", 0, VarianceStatusNormal},
		{"loss beyond tolerance", 3, VarianceStatusLoss},
		{"gain beyond tolerance", -3, VarianceStatusGain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewTankReading(diesel, liters(100), at(8), Derivation{
				Variance: decimal.NewFromInt(tc.variance),
				HasPrior: true,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Status())
		})
	}
}

func TestNewTankReading_Validation(t *testing.T) {
	t.Run("rejects nil product", func(t *testing.T) {
		_, err := NewTankReading(uuid.Nil, liters(1), at(8), Derivation{})
		assert.Error(t, err)
	})

	t.Run("stores the meter reading in liters", func(t *testing.T) {
		r, err := NewTankReading(uuid.New(), liters(750), at(8), Derivation{})
		require.NoError(t, err)
		assert.Equal(t, valueobject.UnitLiter, r.MeterReading.Unit())
		assert.True(t, r.MeterReading.Value().Equal(decimal.NewFromInt(750)))
	})
}
