package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// VolumeUnit is the measurement unit for fuel volumes
type VolumeUnit string

const (
	UnitLiter  VolumeUnit = "L"
	UnitGallon VolumeUnit = "gal"
)

// Volume is a value object representing a fuel volume.
// It is immutable - all operations return new Volume instances.
type Volume struct {
	value decimal.Decimal
	unit  VolumeUnit
}

// NewVolume creates a new Volume with the specified value and unit
func NewVolume(value decimal.Decimal, unit VolumeUnit) (Volume, error) {
	if value.IsNegative() {
		return Volume{}, errors.New("volume cannot be negative")
	}
	if unit == "" {
		unit = UnitLiter
	}
	return Volume{value: value, unit: unit}, nil
}

// NewLiters creates a Volume in liters
func NewLiters(value decimal.Decimal) (Volume, error) {
	return NewVolume(value, UnitLiter)
}

// NewLitersFromFloat creates a Volume in liters from float64
func NewLitersFromFloat(value float64) (Volume, error) {
	return NewVolume(decimal.NewFromFloat(value), UnitLiter)
}

// MustNewLiters creates a Volume in liters and panics on error
func MustNewLiters(value decimal.Decimal) Volume {
	v, err := NewLiters(value)
	if err != nil {
		panic(err)
	}
	return v
}

// ZeroLiters returns a zero volume in liters
func ZeroLiters() Volume {
	return Volume{value: decimal.Zero, unit: UnitLiter}
}

// Value returns the decimal value
func (v Volume) Value() decimal.Decimal {
	return v.value
}

// Unit returns the measurement unit
func (v Volume) Unit() VolumeUnit {
	return v.unit
}

// IsZero returns true if the volume is zero
func (v Volume) IsZero() bool {
	return v.value.IsZero()
}

// Add returns a new Volume with the sum of both values.
// Returns error if units don't match.
func (v Volume) Add(other Volume) (Volume, error) {
	if v.unit != other.unit {
		return Volume{}, fmt.Errorf("cannot add volumes with different units: %s and %s", v.unit, other.unit)
	}
	return Volume{value: v.value.Add(other.value), unit: v.unit}, nil
}

// Subtract returns a new decimal difference; the result may be negative
// (e.g. a meter rollover), so it is returned as a raw decimal rather
// than a Volume.
func (v Volume) Subtract(other Volume) (decimal.Decimal, error) {
	if v.unit != other.unit {
		return decimal.Zero, fmt.Errorf("cannot subtract volumes with different units: %s and %s", v.unit, other.unit)
	}
	return v.value.Sub(other.value), nil
}

// Equals returns true if both volumes are equal (same value and unit)
func (v Volume) Equals(other Volume) bool {
	return v.unit == other.unit && v.value.Equal(other.value)
}

// String returns a human-readable representation
func (v Volume) String() string {
	return fmt.Sprintf("%s %s", v.value.StringFixed(3), v.unit)
}
