package costing

import (
	"testing"
	"time"

	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, 2, n, 12, 0, 0, 0, time.UTC)
}

func purchaseOf(t *testing.T, productID uuid.UUID, at time.Time, qty, cost int64) *trade.Purchase {
	t.Helper()
	item, err := trade.NewPurchaseItem(productID, decimal.NewFromInt(qty), decimal.NewFromInt(cost))
	require.NoError(t, err)
	p, err := trade.NewPurchase(uuid.New(), at, []trade.PurchaseItem{item}, "")
	require.NoError(t, err)
	return p
}

func saleItemOf(t *testing.T, productID uuid.UUID, qty, price int64) trade.SaleItem {
	t.Helper()
	item, err := trade.NewSaleItem(productID, decimal.NewFromInt(qty), decimal.NewFromInt(price), decimal.Zero)
	require.NoError(t, err)
	return item
}

func TestCostIndex_UnitCostAt(t *testing.T) {
	diesel := uuid.New()
	idx := NewCostIndex([]*trade.Purchase{
		purchaseOf(t, diesel, day(1), 1000, 10),
		purchaseOf(t, diesel, day(5), 1000, 12),
	})

	t.Run("sale between purchases uses the earlier cost", func(t *testing.T) {
		cost, ok := idx.UnitCostAt(diesel, day(3))
		require.True(t, ok)
		assert.True(t, cost.Equal(decimal.NewFromInt(10)))
	})

	t.Run("sale after the later purchase uses the later cost", func(t *testing.T) {
		cost, ok := idx.UnitCostAt(diesel, day(6))
		require.True(t, ok)
		assert.True(t, cost.Equal(decimal.NewFromInt(12)))
	})

	t.Run("sale exactly at a purchase timestamp is eligible", func(t *testing.T) {
		cost, ok := idx.UnitCostAt(diesel, day(5))
		require.True(t, ok)
		assert.True(t, cost.Equal(decimal.NewFromInt(12)))
	})

	t.Run("sale before any purchase finds nothing", func(t *testing.T) {
		_, ok := idx.UnitCostAt(diesel, day(1).Add(-time.Hour))
		assert.False(t, ok)
	})

	t.Run("unknown product finds nothing", func(t *testing.T) {
		_, ok := idx.UnitCostAt(uuid.New(), day(3))
		assert.False(t, ok)
	})
}

func TestCostIndex_MostRecentEligibleWins(t *testing.T) {
	// An intermediate purchase must shadow an older one: the lookup
	// returns the single most recent eligible cost, never an arbitrary
	// earlier match.
	petrol := uuid.New()
	idx := NewCostIndex([]*trade.Purchase{
		purchaseOf(t, petrol, day(1), 500, 8),
		purchaseOf(t, petrol, day(2), 500, 9),
		purchaseOf(t, petrol, day(4), 500, 11),
	})

	cost, ok := idx.UnitCostAt(petrol, day(3))
	require.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromInt(9)))
}

func TestCostIndex_CostOfGoods(t *testing.T) {
	diesel := uuid.New()
	idx := NewCostIndex([]*trade.Purchase{
		purchaseOf(t, diesel, day(1), 1000, 10),
		purchaseOf(t, diesel, day(5), 1000, 12),
	})

	t.Run("historical cost for 3 units at day-1 price", func(t *testing.T) {
		item := saleItemOf(t, diesel, 3, 15)
		cog := idx.CostOfGoods(item, day(3), decimal.NewFromInt(99))
		assert.True(t, cog.Cost.Equal(decimal.NewFromInt(30)))
		assert.False(t, cog.Estimated)
	})

	t.Run("historical cost for 3 units at day-5 price", func(t *testing.T) {
		item := saleItemOf(t, diesel, 3, 15)
		cog := idx.CostOfGoods(item, day(6), decimal.NewFromInt(99))
		assert.True(t, cog.Cost.Equal(decimal.NewFromInt(36)))
		assert.False(t, cog.Estimated)
	})

	t.Run("catalog fallback is flagged as estimated", func(t *testing.T) {
		other := uuid.New()
		item := saleItemOf(t, other, 2, 15)
		cog := idx.CostOfGoods(item, day(3), decimal.NewFromInt(7))
		assert.True(t, cog.Cost.Equal(decimal.NewFromInt(14)))
		assert.True(t, cog.Estimated)
	})
}
