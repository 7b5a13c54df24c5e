// Package providerrepo provides data transfer objects and mapping functions for provider persistence.
// This package implements the repository pattern for the service provider domain aggregate, handling
// the conversion between domain entities and database representations.
package providerrepo

import (
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"

	"github.com/google/uuid"
)

// ProviderDTO represents the database structure for persisting provider aggregates.
// Maps provider domain entities to relational database tables with an index on
// availability for the dispatch query.
type ProviderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName       string    `gorm:"type:varchar(100);not null"`
	Specialization int       `gorm:"type:int;not null"`
	IsAvailable    bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for provider entities.
// Overrides GORM's default naming convention to use "service_providers".
func (ProviderDTO) TableName() string {
	return "service_providers"
}

// fromDomain converts a provider domain aggregate to its database representation.
func fromDomain(p *provider.ServiceProvider) ProviderDTO {
	return ProviderDTO{
		ID:             p.ID().Bytes(),
		FullName:       p.FullName(),
		Specialization: int(p.Specialization()),
		IsAvailable:    p.IsAvailable(),
	}
}

// toDomain converts a database DTO to a provider domain aggregate.
// Reconstructs the complete aggregate including availability using RestoreServiceProvider.
func toDomain(dto ProviderDTO) (*provider.ServiceProvider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return provider.RestoreServiceProvider(
		id,
		dto.FullName,
		provider.Specialization(dto.Specialization),
		dto.IsAvailable,
	)
}
