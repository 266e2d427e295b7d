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

func testItem(t *testing.T, qty, price, discount int64) SaleItem {
	t.Helper()
	item, err := NewSaleItem(uuid.New(), decimal.NewFromInt(qty), decimal.NewFromInt(price), decimal.NewFromInt(discount))
	require.NoError(t, err)
	return item
}

func TestNewSaleItem(t *testing.T) {
	t.Run("derives line total with discount", func(t *testing.T) {
		item := testItem(t, 10, 250, 100)
		assert.True(t, item.TotalAmount.Equal(decimal.NewFromInt(2400)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSaleItem(uuid.New(), decimal.Zero, decimal.NewFromInt(10), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects discount exceeding line amount", func(t *testing.T) {
		_, err := NewSaleItem(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(10), decimal.NewFromInt(11))
		assert.Error(t, err)
	})
}

func TestNewSale(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	t.Run("derives total from lines", func(t *testing.T) {
		s, err := NewSale(nil, now, []SaleItem{testItem(t, 2, 100, 0), testItem(t, 1, 50, 0)}, valueobject.PaymentMethodCash, "")
		require.NoError(t, err)
		assert.True(t, s.TotalAmount.Equals(valueobject.NewMoneyPKR(decimal.NewFromInt(250))))
		assert.Equal(t, valueobject.PKR, s.TotalAmount.Currency())
		assert.True(t, s.IsWalkIn())
	})

	t.Run("rejects empty sale", func(t *testing.T) {
		_, err := NewSale(nil, now, nil, valueobject.PaymentMethodCash, "")
		assert.Error(t, err)
	})

	t.Run("on-account sale requires a customer", func(t *testing.T) {
		_, err := NewSale(nil, now, []SaleItem{testItem(t, 1, 100, 0)}, valueobject.PaymentMethodCredit, "")
		assert.Error(t, err)

		customerID := uuid.New()
		s, err := NewSale(&customerID, now, []SaleItem{testItem(t, 1, 100, 0)}, valueobject.PaymentMethodCredit, "")
		require.NoError(t, err)
		assert.False(t, s.IsWalkIn())
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewSale(nil, now, []SaleItem{testItem(t, 1, 100, 0)}, "BARTER", "")
		assert.Error(t, err)
	})
}

func TestSale_VolumeOfProduct(t *testing.T) {
	diesel := uuid.New()
	other := uuid.New()
	i1, err := NewSaleItem(diesel, decimal.NewFromInt(30), decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)
	i2, err := NewSaleItem(diesel, decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)
	i3, err := NewSaleItem(other, decimal.NewFromInt(5), decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)

	s, err := NewSale(nil, time.Now(), []SaleItem{i1, i2, i3}, valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	assert.True(t, s.VolumeOfProduct(diesel).Equal(decimal.NewFromInt(50)))
	assert.True(t, s.VolumeOfProduct(uuid.New()).IsZero())
}
