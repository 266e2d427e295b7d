package trade

import (
	"testing"
	"time"

	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseReturn(t *testing.T) {
	now := time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC)

	t.Run("records volume in liters and refund in rupees", func(t *testing.T) {
		r, err := NewPurchaseReturn(uuid.New(), uuid.New(), now,
			decimal.NewFromInt(2000), decimal.NewFromInt(540000), "water contamination")
		require.NoError(t, err)
		assert.Equal(t, valueobject.UnitLiter, r.Volume.Unit())
		assert.True(t, r.Volume.Value().Equal(decimal.NewFromInt(2000)))
		assert.True(t, r.TotalRefund.Equals(valueobject.NewMoneyPKR(decimal.NewFromInt(540000))))
	})

	t.Run("rejects non-positive volume", func(t *testing.T) {
		_, err := NewPurchaseReturn(uuid.New(), uuid.New(), now,
			decimal.Zero, decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive refund", func(t *testing.T) {
		_, err := NewPurchaseReturn(uuid.New(), uuid.New(), now,
			decimal.NewFromInt(10), decimal.Zero, "")
		assert.Error(t, err)
	})
}
