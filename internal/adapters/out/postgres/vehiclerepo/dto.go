// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
package vehiclerepo

import (
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Make         string    `gorm:"type:varchar(50);not null"`
	Model        string    `gorm:"type:varchar(50);not null"`
	Year         int       `gorm:"type:int;not null"`
	LicensePlate string    `gorm:"type:varchar(20);not null"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           v.ID().Bytes(),
		Make:         v.Make(),
		Model:        v.Model(),
		Year:         v.Year(),
		LicensePlate: v.LicensePlate(),
		OwnerID:      v.OwnerID().Bytes(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.NewVehicle(id, dto.Make, dto.Model, dto.Year, dto.LicensePlate, ownerID)
}
