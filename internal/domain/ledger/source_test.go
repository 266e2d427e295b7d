package ledger

import (
	"errors"
	"testing"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntrySource_RoundTrip(t *testing.T) {
	kinds := []EntryKind{
		EntryKindSale, EntryKindPurchase, EntryKindPurchaseReturn,
		EntryKindCustomerPayment, EntryKindSupplierPayment,
		EntryKindCashAdvance, EntryKindCapital, EntryKindSalary,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			src := EntrySource{Kind: kind, EventID: uuid.New()}
			parsed, err := ParseEntryID(src.EntryID())
			require.NoError(t, err)
			assert.Equal(t, src, parsed)
		})
	}
}

func TestParseEntryID_UnknownKind(t *testing.T) {
	_, err := ParseEntryID("voucher-" + uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrUnknownEntryKind)
}

func TestParseEntryID_Malformed(t *testing.T) {
	t.Run("no separator", func(t *testing.T) {
		_, err := ParseEntryID("nonsense")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_ENTRY_ID", domainErr.Code)
	})

	t.Run("bad uuid", func(t *testing.T) {
		_, err := ParseEntryID("sale-not-a-uuid")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_ENTRY_ID", domainErr.Code)
	})
}

func TestEntryKind_IsValid(t *testing.T) {
	assert.True(t, EntryKindSale.IsValid())
	assert.True(t, EntryKindSalary.IsValid())
	assert.False(t, EntryKind("voucher").IsValid())
}
