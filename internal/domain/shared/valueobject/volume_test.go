package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolume(t *testing.T) {
	t.Run("creates volume with value and unit", func(t *testing.T) {
		v, err := NewVolume(decimal.NewFromInt(500), UnitGallon)
		require.NoError(t, err)
		assert.True(t, v.Value().Equal(decimal.NewFromInt(500)))
		assert.Equal(t, UnitGallon, v.Unit())
	})

	t.Run("defaults empty unit to liters", func(t *testing.T) {
		v, err := NewVolume(decimal.NewFromInt(10), "")
		require.NoError(t, err)
		assert.Equal(t, UnitLiter, v.Unit())
	})

	t.Run("rejects negative volume", func(t *testing.T) {
		_, err := NewVolume(decimal.NewFromInt(-1), UnitLiter)
		assert.Error(t, err)

		_, err = NewLiters(decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestMustNewLiters(t *testing.T) {
	v := MustNewLiters(decimal.NewFromInt(100))
	assert.Equal(t, UnitLiter, v.Unit())

	assert.Panics(t, func() {
		MustNewLiters(decimal.NewFromInt(-1))
	})
}

func TestVolume_Add(t *testing.T) {
	t.Run("sums matching units", func(t *testing.T) {
		a := MustNewLiters(decimal.NewFromInt(30))
		b := MustNewLiters(decimal.NewFromInt(12))
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Value().Equal(decimal.NewFromInt(42)))
	})

	t.Run("rejects mixed units", func(t *testing.T) {
		a := MustNewLiters(decimal.NewFromInt(30))
		b, err := NewVolume(decimal.NewFromInt(5), UnitGallon)
		require.NoError(t, err)
		_, err = a.Add(b)
		assert.Error(t, err)
	})
}

func TestVolume_Subtract(t *testing.T) {
	t.Run("returns raw decimal difference", func(t *testing.T) {
		a := MustNewLiters(decimal.NewFromInt(100))
		b := MustNewLiters(decimal.NewFromInt(40))
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Equal(decimal.NewFromInt(60)))
	})

	t.Run("may go negative on a wrapped meter", func(t *testing.T) {
		a := MustNewLiters(decimal.NewFromInt(100))
		b := MustNewLiters(decimal.NewFromInt(999900))
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("rejects mixed units", func(t *testing.T) {
		a := MustNewLiters(decimal.NewFromInt(10))
		b, err := NewVolume(decimal.NewFromInt(1), UnitGallon)
		require.NoError(t, err)
		_, err = a.Subtract(b)
		assert.Error(t, err)
	})
}

func TestVolume_Equals(t *testing.T) {
	a := MustNewLiters(decimal.NewFromInt(10))
	assert.True(t, a.Equals(MustNewLiters(decimal.NewFromInt(10))))
	assert.False(t, a.Equals(MustNewLiters(decimal.NewFromInt(11))))

	gallons, err := NewVolume(decimal.NewFromInt(10), UnitGallon)
	require.NoError(t, err)
	assert.False(t, a.Equals(gallons))
}

func TestVolume_String(t *testing.T) {
	v := MustNewLiters(decimal.NewFromFloat(12.5))
	assert.Equal(t, "12.500 L", v.String())
	assert.True(t, ZeroLiters().IsZero())
}
