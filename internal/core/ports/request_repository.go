package ports

import (
	"context"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for service request
// aggregates. Provides methods for storing, retrieving, and querying
// requests by identifier, vehicle, provider, and lifecycle state.
type RequestRepository interface {
	// Add persists a new service request aggregate to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *request.ServiceRequest) error

	// Update persists changes to an existing service request aggregate.
	// The write carries an optimistic version check: when the stored row no
	// longer matches the version the aggregate was read at, Update fails
	// with a Conflict error and nothing is written. Two concurrent
	// assignment attempts on the same request therefore cannot both succeed.
	Update(ctx context.Context, aggregate *request.ServiceRequest) error

	// Get retrieves a service request aggregate by its unique identifier.
	// Returns an ObjectNotFound error when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*request.ServiceRequest, error)

	// GetFirstInPendingStatus retrieves the oldest request still in Pending
	// status. Used by the dispatch workflow to find work awaiting a provider.
	GetFirstInPendingStatus(ctx context.Context) (*request.ServiceRequest, error)

	// GetAllByVehicle retrieves every request referencing the given vehicle,
	// regardless of status. Returns an empty slice when there are none.
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*request.ServiceRequest, error)

	// GetAllByProvider retrieves every request assigned to the given
	// provider, regardless of status. Returns an empty slice when there are none.
	GetAllByProvider(ctx context.Context, providerID kernel.UUID) ([]*request.ServiceRequest, error)
}
