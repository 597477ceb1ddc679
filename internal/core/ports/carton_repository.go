package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
)

// CartonRepository defines the persistence contract for packed cartons.
type CartonRepository interface {
	Add(ctx context.Context, aggregate *packing.PackedCarton) error
	Update(ctx context.Context, aggregate *packing.PackedCarton) error
	Get(ctx context.Context, id kernel.UUID) (*packing.PackedCarton, error)
}

// CartonTypeRepository reads the carton catalog.
type CartonTypeRepository interface {
	// Get retrieves a carton type, active or not.
	Get(ctx context.Context, id kernel.UUID) (packing.CartonType, error)

	// GetActive returns every active carton type.
	GetActive(ctx context.Context) ([]packing.CartonType, error)
}
