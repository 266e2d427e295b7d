package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), USD)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, USD, m.Currency())
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a := NewMoneyPKR(decimal.NewFromInt(100))
		b := NewMoneyPKR(decimal.NewFromInt(50))
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))
	})

	t.Run("add rejects mixed currencies", func(t *testing.T) {
		a := NewMoneyPKR(decimal.NewFromInt(100))
		b, err := NewMoney(decimal.NewFromInt(50), USD)
		require.NoError(t, err)
		_, err = a.Add(b)
		assert.Error(t, err)
	})

	t.Run("subtract may go negative", func(t *testing.T) {
		a := NewMoneyPKR(decimal.NewFromInt(100))
		b := NewMoneyPKR(decimal.NewFromInt(150))
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("multiply", func(t *testing.T) {
		m := NewMoneyPKR(decimal.NewFromFloat(10.5)).Multiply(decimal.NewFromInt(3))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(31.5)))
	})

	t.Run("negate and abs", func(t *testing.T) {
		m := NewMoneyPKR(decimal.NewFromInt(10)).Negate()
		assert.True(t, m.IsNegative())
		assert.True(t, m.Abs().IsPositive())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyPKR(decimal.NewFromInt(100))
	b := NewMoneyPKR(decimal.NewFromInt(200))

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, a.Equals(NewMoneyPKR(decimal.NewFromInt(100))))
	assert.False(t, a.Equals(b))
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyPKR(decimal.NewFromFloat(123.45))
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))
}

func TestZero(t *testing.T) {
	assert.True(t, ZeroPKR().IsZero())
	assert.Equal(t, PKR, ZeroPKR().Currency())
}
