package costing

import (
	"testing"

	"github.com/fuelpos/backend/internal/domain/shared/valueobject"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMargin(t *testing.T) {
	t.Run("normal margin", func(t *testing.T) {
		m := Margin(decimal.NewFromInt(25), decimal.NewFromInt(100))
		assert.True(t, m.Equal(decimal.NewFromInt(25)))
	})

	t.Run("zero revenue yields zero, not NaN", func(t *testing.T) {
		m := Margin(decimal.NewFromInt(25), decimal.Zero)
		assert.True(t, m.IsZero())
	})
}

func TestComputeSaleProfit(t *testing.T) {
	diesel := uuid.New()
	idx := NewCostIndex([]*trade.Purchase{
		purchaseOf(t, diesel, day(1), 1000, 10),
	})

	item := saleItemOf(t, diesel, 3, 15) // revenue 45, cost 30
	sale, err := trade.NewSale(nil, day(3), []trade.SaleItem{item}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	profit := ComputeSaleProfit(sale, idx, CatalogCosts{})
	assert.True(t, profit.Revenue.Equal(decimal.NewFromInt(45)))
	assert.True(t, profit.Cost.Equal(decimal.NewFromInt(30)))
	assert.True(t, profit.Profit.Equal(decimal.NewFromInt(15)))
	assert.False(t, profit.Estimated)
}

func TestComputeSaleProfit_EstimatedIsSticky(t *testing.T) {
	diesel := uuid.New()
	oil := uuid.New() // Never purchased
	idx := NewCostIndex([]*trade.Purchase{
		purchaseOf(t, diesel, day(1), 1000, 10),
	})

	sale, err := trade.NewSale(nil, day(3), []trade.SaleItem{
		saleItemOf(t, diesel, 1, 15),
		saleItemOf(t, oil, 1, 20),
	}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	profit := ComputeSaleProfit(sale, idx, CatalogCosts{oil: decimal.NewFromInt(12)})
	assert.True(t, profit.Estimated)
	assert.True(t, profit.Cost.Equal(decimal.NewFromInt(22)))
}

func TestComputeProfitByProduct(t *testing.T) {
	diesel := uuid.New()
	petrol := uuid.New()
	idx := NewCostIndex([]*trade.Purchase{
		purchaseOf(t, diesel, day(1), 1000, 10),
		purchaseOf(t, petrol, day(1), 1000, 8),
	})

	s1, err := trade.NewSale(nil, day(2), []trade.SaleItem{
		saleItemOf(t, diesel, 2, 15), // revenue 30, cost 20
		saleItemOf(t, petrol, 5, 10), // revenue 50, cost 40
	}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	s2, err := trade.NewSale(nil, day(3), []trade.SaleItem{
		saleItemOf(t, diesel, 1, 15), // revenue 15, cost 10
	}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	results := ComputeProfitByProduct([]*trade.Sale{s1, s2}, idx, CatalogCosts{})
	require.Len(t, results, 2)

	byProduct := map[uuid.UUID]ProfitByProduct{}
	for _, r := range results {
		byProduct[r.ProductID] = r
	}

	dieselAgg := byProduct[diesel]
	assert.True(t, dieselAgg.Revenue.Equal(decimal.NewFromInt(45)))
	assert.True(t, dieselAgg.Cost.Equal(decimal.NewFromInt(30)))
	assert.True(t, dieselAgg.Profit.Equal(decimal.NewFromInt(15)))

	petrolAgg := byProduct[petrol]
	assert.True(t, petrolAgg.Profit.Equal(decimal.NewFromInt(10)))
	assert.True(t, petrolAgg.Margin.Equal(decimal.NewFromInt(20)))
}
