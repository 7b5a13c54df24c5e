package queries

import (
	"time"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestResponse represents service request information in the read model.
// Shared by every request query so callers see one consistent shape.
type RequestResponse struct {
	ID          kernel.UUID
	VehicleID   kernel.UUID
	ProviderID  *kernel.UUID
	ServiceType string
	Notes       string
	Status      string
	RequestedAt time.Time
	CompletedAt *time.Time
}

// requestColumns is the select list every request query scans from.
const requestColumns = `
		id, 
		vehicle_id, 
		provider_id, 
		service_type, 
		notes, 
		status, 
		requested_at, 
		completed_at`

// scanRequestRows runs a request select and drains the rows into read models.
func scanRequestRows(db *gorm.DB, query string, args ...any) ([]RequestResponse, error) {
	requests := make([]RequestResponse, 0)

	result, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer result.Close()

	for result.Next() {
		var response RequestResponse
		var id, vehicleID uuid.UUID
		var providerID *uuid.UUID
		var serviceType, status int
		var requestedAt time.Time
		var completedAt *time.Time

		err = result.Scan(
			&id,
			&vehicleID,
			&providerID,
			&serviceType,
			&response.Notes,
			&status,
			&requestedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = requestID

		vID, idErr := kernel.UUIDFromBytes(vehicleID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.VehicleID = vID

		if providerID != nil {
			pID, idErr := kernel.UUIDFromBytes(providerID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.ProviderID = &pID
		}

		response.ServiceType = request.ServiceType(serviceType).String()
		response.Status = request.Status(status).String()
		response.RequestedAt = requestedAt.UTC()
		if completedAt != nil {
			utc := completedAt.UTC()
			response.CompletedAt = &utc
		}

		requests = append(requests, response)
	}

	if err = result.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
