package party

import "github.com/google/uuid"

// Resolver resolves party ids to typed parties. The ledger builder and
// balance engine use it instead of scanning collections per lookup, so
// a dangling foreign key is answered uniformly with ok=false.
type Resolver struct {
	byID map[uuid.UUID]*Party
}

// NewResolver builds a resolver over a loaded party collection.
// Later duplicates of the same id win, matching last-write semantics of
// the source collections.
func NewResolver(parties []*Party) *Resolver {
	byID := make(map[uuid.UUID]*Party, len(parties))
	for _, p := range parties {
		if p == nil {
			continue
		}
		byID[p.ID] = p
	}
	return &Resolver{byID: byID}
}

// Resolve returns the party for the given id, or ok=false if the id is
// unknown (a dangling reference in the event data).
func (r *Resolver) Resolve(id uuid.UUID) (*Party, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Len returns the number of resolvable parties
func (r *Resolver) Len() int {
	return len(r.byID)
}
