package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVehicleRequestsQueryHandler retrieves a vehicle's request history from the database.
// Results include open and closed requests to provide a complete service record.
type GetVehicleRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleRequestsQueryHandler creates a handler for vehicle history queries.
// Requires a GORM database connection for query execution.
func NewGetVehicleRequestsQueryHandler(db *gorm.DB) GetVehicleRequestsQueryHandler {
	return GetVehicleRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve every request for the vehicle.
// Results are sorted by submission time for a chronological history.
// An unknown vehicle yields an empty slice, not an error.
func (h GetVehicleRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanRequestRows(h.db.WithContext(ctx), `
		SELECT `+requestColumns+`
		FROM service_requests
		WHERE vehicle_id = ?
		ORDER BY requested_at
	`, query.VehicleID().Bytes())
}
