package party

import (
	"context"

	"github.com/google/uuid"
)

// Filter defines filtering options for party queries
type Filter struct {
	Kind   *Kind  // Filter by party kind
	Search string // Match against name/contact
	Limit  int
	Offset int
}

// Repository defines the interface for party persistence
type Repository interface {
	// FindByID finds a party by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)

	// FindAll finds parties matching the filter
	FindAll(ctx context.Context, filter Filter) ([]*Party, error)

	// Count counts parties matching the filter
	Count(ctx context.Context, filter Filter) (int64, error)

	// Save creates or updates a party
	Save(ctx context.Context, p *Party) error

	// Delete removes a party by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
