package queries

import (
	"context"

	"fixmate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRequestQueryHandler retrieves a single service request from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestQueryHandler creates a handler for single-request queries.
// Requires a GORM database connection for query execution.
func NewGetRequestQueryHandler(db *gorm.DB) GetRequestQueryHandler {
	return GetRequestQueryHandler{db: db}
}

// Handle executes the query to retrieve one request by identifier.
// Returns an ObjectNotFound error when the request does not exist.
func (h GetRequestQueryHandler) Handle(
	ctx context.Context,
	query GetRequestQuery,
) (RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return RequestResponse{}, err
	}

	requests, err := scanRequestRows(h.db.WithContext(ctx), `
		SELECT `+requestColumns+`
		FROM service_requests
		WHERE id = ?
	`, query.RequestID().Bytes())
	if err != nil {
		return RequestResponse{}, err
	}

	if len(requests) == 0 {
		return RequestResponse{}, errs.NewObjectNotFoundError("request", query.RequestID().String())
	}

	return requests[0], nil
}
