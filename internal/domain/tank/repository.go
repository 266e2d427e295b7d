package tank

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for tank reading persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TankReading, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*TankReading, error)
	FindAll(ctx context.Context) ([]*TankReading, error)
	Save(ctx context.Context, r *TankReading) error
	Delete(ctx context.Context, id uuid.UUID) error
}
