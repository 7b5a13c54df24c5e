// Package requestrepo provides data transfer objects and mapping functions for request persistence.
// This package implements the repository pattern for the service request domain aggregate, handling
// the conversion between domain entities and database representations.
package requestrepo

import (
	"time"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting service request aggregates.
// Maps request domain entities to relational database tables with proper indexing
// for efficient querying by status, vehicle, and provider assignment.
type RequestDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProviderID  *uuid.UUID `gorm:"type:uuid;index"`
	ServiceType int        `gorm:"type:int;not null"`
	Notes       string     `gorm:"type:varchar(1000)"`
	Status      int        `gorm:"type:int;not null;index"`
	RequestedAt time.Time  `gorm:"not null"`
	CompletedAt *time.Time
	Version     int `gorm:"type:int;not null"`
}

// TableName specifies the database table name for request entities.
// Overrides GORM's default naming convention to use "service_requests".
func (RequestDTO) TableName() string {
	return "service_requests"
}

// fromDomain converts a request domain aggregate to its database representation.
// Maps all request attributes including optional provider assignment and completion time.
func fromDomain(r *request.ServiceRequest) RequestDTO {
	var providerID *uuid.UUID
	if id := r.AssignedProvider(); id != nil {
		raw := id.Bytes()
		providerID = &raw
	}

	return RequestDTO{
		ID:          r.ID().Bytes(),
		VehicleID:   r.VehicleID().Bytes(),
		ProviderID:  providerID,
		ServiceType: int(r.ServiceType()),
		Notes:       r.Notes(),
		Status:      int(r.Status()),
		RequestedAt: r.RequestedAt(),
		CompletedAt: r.CompletedAt(),
		Version:     r.Version(),
	}
}

// toDomain converts a database DTO to a request domain aggregate.
// Reconstructs the complete aggregate including status, provider assignment,
// and completion time using RestoreServiceRequest.
func toDomain(dto RequestDTO) (*request.ServiceRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var providerID *kernel.UUID
	if dto.ProviderID != nil {
		pid, pidErr := kernel.UUIDFromBytes(dto.ProviderID[:])
		if pidErr != nil {
			return nil, pidErr
		}
		providerID = &pid
	}

	var completedAt *time.Time
	if dto.CompletedAt != nil {
		utc := dto.CompletedAt.UTC()
		completedAt = &utc
	}

	return request.RestoreServiceRequest(
		id,
		vehicleID,
		request.ServiceType(dto.ServiceType),
		dto.Notes,
		request.Status(dto.Status),
		providerID,
		dto.RequestedAt.UTC(),
		completedAt,
		dto.Version,
	)
}
