// Package ports defines repository and transaction-boundary interfaces for
// the fixmate domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for service provider
// aggregates.
type ProviderRepository interface {
	// Add persists a new provider aggregate to storage.
	// The provider must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *provider.ServiceProvider) error

	// Update persists changes to an existing provider aggregate,
	// currently only the availability flag changes after creation.
	Update(ctx context.Context, aggregate *provider.ServiceProvider) error

	// Get retrieves a provider aggregate by its unique identifier.
	// Returns an ObjectNotFound error when no such provider exists.
	Get(ctx context.Context, id kernel.UUID) (*provider.ServiceProvider, error)

	// GetAllAvailable retrieves every provider currently accepting work.
	// Availability read here is authoritative only at commit time; the
	// dispatch workflow re-checks eligibility inside its transaction.
	GetAllAvailable(ctx context.Context) ([]*provider.ServiceProvider, error)
}
