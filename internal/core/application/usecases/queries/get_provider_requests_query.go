package queries

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/guard"
)

var (
	ErrGetProviderRequestsQueryIsNotConstructed = errors.New(
		"GetProviderRequestsQuery must be created via NewGetProviderRequestsQuery constructor",
	)
)

// GetProviderRequestsQuery retrieves the workload of one provider.
// Returns every request assigned to the provider, regardless of status.
type GetProviderRequestsQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProviderRequestsQuery creates a query to retrieve a provider's requests.
// Validates that the identifier is valid.
func NewGetProviderRequestsQuery(providerID kernel.UUID) (GetProviderRequestsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderRequestsQuery{}, err
	}

	return GetProviderRequestsQuery{
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProviderRequestsQueryIsNotConstructed if validation fails.
func (q GetProviderRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderRequestsQueryIsNotConstructed)
}

// ProviderID returns the identifier of the provider whose requests to fetch.
func (q GetProviderRequestsQuery) ProviderID() kernel.UUID {
	return q.providerID
}
