package ledger

import (
	"fmt"
	"strings"

	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EntryKind identifies the collection a ledger entry originates from.
// It replaces ad hoc string-prefix parsing with a closed set: routing a
// delete through an unknown kind is a reportable error, never a silent
// no-op.
type EntryKind string

const (
	EntryKindSale            EntryKind = "sale"
	EntryKindPurchase        EntryKind = "purchase"
	EntryKindPurchaseReturn  EntryKind = "preturn"
	EntryKindCustomerPayment EntryKind = "cpayment"
	EntryKindSupplierPayment EntryKind = "spayment"
	EntryKindCashAdvance     EntryKind = "advance"
	EntryKindCapital         EntryKind = "capital"
	EntryKindSalary          EntryKind = "salary"
)

// IsValid checks if the entry kind is valid
func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindSale, EntryKindPurchase, EntryKindPurchaseReturn,
		EntryKindCustomerPayment, EntryKindSupplierPayment,
		EntryKindCashAdvance, EntryKindCapital, EntryKindSalary:
		return true
	}
	return false
}

// String returns the string representation of EntryKind
func (k EntryKind) String() string {
	return string(k)
}

// EntrySource identifies the event behind a ledger entry: the source
// collection and the original event id. It is the routing key for
// delete actions.
type EntrySource struct {
	Kind    EntryKind `json:"kind"`
	EventID uuid.UUID `json:"event_id"`
}

// EntryID renders the source as a stable composite id for transport,
// e.g. "sale-6e3f...". The kind prefix never contains a dash.
func (s EntrySource) EntryID() string {
	return fmt.Sprintf("%s-%s", s.Kind, s.EventID)
}

// ParseEntryID parses a composite entry id back into an EntrySource.
// An unrecognized kind prefix returns ErrUnknownEntryKind so callers
// surface it instead of dropping the delete on the floor.
func ParseEntryID(id string) (EntrySource, error) {
	kindStr, idStr, found := strings.Cut(id, "-")
	if !found {
		return EntrySource{}, shared.NewDomainError("INVALID_ENTRY_ID", fmt.Sprintf("Malformed ledger entry id %q", id))
	}
	kind := EntryKind(kindStr)
	if !kind.IsValid() {
		return EntrySource{}, shared.ErrUnknownEntryKind
	}
	eventID, err := uuid.Parse(idStr)
	if err != nil {
		return EntrySource{}, shared.NewDomainError("INVALID_ENTRY_ID", fmt.Sprintf("Malformed event id in ledger entry id %q", id))
	}
	return EntrySource{Kind: kind, EventID: eventID}, nil
}
