package queries

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/guard"
)

var (
	ErrGetVehicleRequestsQueryIsNotConstructed = errors.New(
		"GetVehicleRequestsQuery must be created via NewGetVehicleRequestsQuery constructor",
	)
)

// GetVehicleRequestsQuery retrieves the service history of one vehicle.
// Returns every request referencing the vehicle, regardless of status.
//
// Example:
//
//	query, err := NewGetVehicleRequestsQuery(vehicleID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetVehicleRequestsQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get vehicle history: %w", err)
//	}
//
//	fmt.Printf("Vehicle has %d service requests\n", len(history))
type GetVehicleRequestsQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleRequestsQuery creates a query to retrieve a vehicle's requests.
// Validates that the identifier is valid.
func NewGetVehicleRequestsQuery(vehicleID kernel.UUID) (GetVehicleRequestsQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleRequestsQuery{}, err
	}

	return GetVehicleRequestsQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVehicleRequestsQueryIsNotConstructed if validation fails.
func (q GetVehicleRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleRequestsQueryIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle whose requests to fetch.
func (q GetVehicleRequestsQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}
