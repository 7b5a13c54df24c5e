// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fixmate/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// ProviderRepoFactory provides access to the provider repository within a transaction.
	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// RequestUoW manages transactions for request-only operations.
	// Used when commands only modify request aggregates.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// ProviderUoW manages transactions for provider-only operations.
	// Used when commands only modify provider aggregates.
	ProviderUoW interface {
		TxManager
		ProviderRepoFactory
	}

	// ProviderUoWFactory creates new provider unit of work instances.
	ProviderUoWFactory interface {
		Create() ProviderUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// UoW manages transactions spanning request, provider, and vehicle aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   requestRepo := uow.RequestRepository()
	//   providerRepo := uow.ProviderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RequestRepoFactory
		ProviderRepoFactory
		VehicleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
