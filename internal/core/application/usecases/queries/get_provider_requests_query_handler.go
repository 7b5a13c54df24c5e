package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProviderRequestsQueryHandler retrieves a provider's assigned requests from the database.
type GetProviderRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetProviderRequestsQueryHandler creates a handler for provider workload queries.
// Requires a GORM database connection for query execution.
func NewGetProviderRequestsQueryHandler(db *gorm.DB) GetProviderRequestsQueryHandler {
	return GetProviderRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve every request assigned to the provider.
// Results are sorted by submission time. An unknown provider yields an empty
// slice, not an error.
func (h GetProviderRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetProviderRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanRequestRows(h.db.WithContext(ctx), `
		SELECT `+requestColumns+`
		FROM service_requests
		WHERE provider_id = ?
		ORDER BY requested_at
	`, query.ProviderID().Bytes())
}
