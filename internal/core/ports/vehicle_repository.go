package ports

import (
	"context"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// The request workflow reads it to resolve vehicle references; writes happen
// only through vehicle registration.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns an ObjectNotFound error when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}
