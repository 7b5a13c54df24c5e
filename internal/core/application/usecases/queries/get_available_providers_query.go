// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/guard"
)

var (
	ErrGetAvailableProvidersQueryIsNotConstructed = errors.New(
		"GetAvailableProvidersQuery must be created via NewGetAvailableProvidersQuery constructor",
	)
)

// GetAvailableProvidersQuery retrieves every provider currently accepting work.
// Returns provider identities and specializations for dispatch monitoring.
//
// Example:
//
//	query := NewGetAvailableProvidersQuery()
//	handler := NewGetAvailableProvidersQueryHandler(db)
//
//	providers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve providers: %w", err)
//	}
//
//	for _, p := range providers {
//	    fmt.Printf("Provider %s (%s)\n", p.FullName, p.Specialization)
//	}
type GetAvailableProvidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProvidersQuery creates a query to retrieve available providers.
// This is a parameterless query that fetches every provider accepting work.
func NewGetAvailableProvidersQuery() GetAvailableProvidersQuery {
	return GetAvailableProvidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableProvidersQueryIsNotConstructed if validation fails.
func (q GetAvailableProvidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProvidersQueryIsNotConstructed)
}

// GetAvailableProvidersQueryResponse represents provider information in the read model.
// Contains essential provider data for display and assignment decisions.
type GetAvailableProvidersQueryResponse struct {
	ID             kernel.UUID
	FullName       string
	Specialization string
}
