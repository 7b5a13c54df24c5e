package queries

import (
	"context"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableProvidersQueryHandler retrieves available provider information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableProvidersQueryHandler(db)
//	query := NewGetAvailableProvidersQuery()
//
//	providers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get providers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d available providers\n", len(providers))
type GetAvailableProvidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableProvidersQueryHandler creates a handler for provider retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableProvidersQueryHandler(db *gorm.DB) GetAvailableProvidersQueryHandler {
	return GetAvailableProvidersQueryHandler{db: db}
}

// Handle executes the query to retrieve all available providers.
// Returns a slice of provider read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAvailableProvidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProvidersQuery,
) ([]GetAvailableProvidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	providers := make([]GetAvailableProvidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			id, 
			full_name, 
			specialization 
		FROM service_providers
		WHERE is_available = true
		ORDER BY full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAvailableProvidersQueryResponse
		var id uuid.UUID
		var specialization int

		err = rows.Scan(
			&id,
			&response.FullName,
			&specialization,
		)
		if err != nil {
			return nil, err
		}

		providerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = providerID
		response.Specialization = provider.Specialization(specialization).String()

		providers = append(providers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}
