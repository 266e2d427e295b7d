package party

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		assert.True(t, KindCustomer.IsValid())
		assert.True(t, KindPartner.IsValid())
		assert.True(t, KindEmployee.IsValid())
		assert.True(t, KindSupplier.IsValid())
		assert.False(t, Kind("VENDOR").IsValid())
	})

	t.Run("receivable side", func(t *testing.T) {
		assert.True(t, KindCustomer.IsReceivableSide())
		assert.True(t, KindEmployee.IsReceivableSide())
		assert.False(t, KindPartner.IsReceivableSide())
		assert.False(t, KindSupplier.IsReceivableSide())
	})
}

func TestNewParty(t *testing.T) {
	t.Run("customer", func(t *testing.T) {
		p, err := NewCustomer("Haris Transport", "0300-1234567")
		require.NoError(t, err)
		assert.Equal(t, KindCustomer, p.Kind)
		assert.Nil(t, p.Employee)
		assert.Nil(t, p.Partner)
	})

	t.Run("employee carries its profile", func(t *testing.T) {
		hired := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		p, err := NewEmployee("Rashid", "", decimal.NewFromInt(30000), "attendant", hired)
		require.NoError(t, err)
		require.NotNil(t, p.Employee)
		assert.Equal(t, "attendant", p.Employee.Position)
		assert.True(t, p.Employee.Salary.Equal(decimal.NewFromInt(30000)))
	})

	t.Run("partner carries its profile", func(t *testing.T) {
		p, err := NewPartner("M. Aslam", "", decimal.NewFromInt(40))
		require.NoError(t, err)
		require.NotNil(t, p.Partner)
		assert.True(t, p.Partner.SharePercentage.Equal(decimal.NewFromInt(40)))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer("", "")
		assert.Error(t, err)
	})

	t.Run("rejects share over 100", func(t *testing.T) {
		_, err := NewPartner("X", "", decimal.NewFromInt(101))
		assert.Error(t, err)
	})

	t.Run("rejects negative salary", func(t *testing.T) {
		_, err := NewEmployee("X", "", decimal.NewFromInt(-1), "", time.Now())
		assert.Error(t, err)
	})
}

func TestParty_ProfileUpdates(t *testing.T) {
	t.Run("salary update only for employees", func(t *testing.T) {
		customer, err := NewCustomer("C", "")
		require.NoError(t, err)
		assert.Error(t, customer.UpdateSalary(decimal.NewFromInt(1000)))

		employee, err := NewEmployee("E", "", decimal.NewFromInt(100), "", time.Now())
		require.NoError(t, err)
		require.NoError(t, employee.UpdateSalary(decimal.NewFromInt(200)))
		assert.True(t, employee.Employee.Salary.Equal(decimal.NewFromInt(200)))
	})

	t.Run("share update only for partners", func(t *testing.T) {
		customer, err := NewCustomer("C", "")
		require.NoError(t, err)
		assert.Error(t, customer.UpdateSharePercentage(decimal.NewFromInt(10)))
	})
}

func TestResolveLegacyKind(t *testing.T) {
	// Legacy records model partner/employee as flags on a customer row.
	// Resolution priority is fixed so balance sign conventions stay
	// deterministic: Partner > Employee > Customer.
	cases := []struct {
		name       string
		isPartner  bool
		isEmployee bool
		want       Kind
	}{
		{"plain customer", false, false, KindCustomer},
		{"employee", false, true, KindEmployee},
		{"partner", true, false, KindPartner},
		{"both flags resolves to partner", true, true, KindPartner},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveLegacyKind(tc.isPartner, tc.isEmployee))
		})
	}
}
