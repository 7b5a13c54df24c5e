package queries

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/guard"
)

var (
	ErrGetRequestQueryIsNotConstructed = errors.New(
		"GetRequestQuery must be created via NewGetRequestQuery constructor",
	)
)

// GetRequestQuery retrieves a single service request by its identifier.
//
// Example:
//
//	query, err := NewGetRequestQuery(requestID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRequestQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("no such request")
//	}
type GetRequestQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRequestQuery creates a query to retrieve one request.
// Validates that the identifier is valid.
func NewGetRequestQuery(requestID kernel.UUID) (GetRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRequestQuery{}, err
	}

	return GetRequestQuery{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRequestQueryIsNotConstructed if validation fails.
func (q GetRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestQueryIsNotConstructed)
}

// RequestID returns the identifier of the request to fetch.
func (q GetRequestQuery) RequestID() kernel.UUID {
	return q.requestID
}
