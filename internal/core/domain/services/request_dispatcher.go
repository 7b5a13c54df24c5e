package services

import (
	"errors"

	"fixmate/internal/core/domain/model/provider"
	"fixmate/internal/core/domain/model/request"
)

// ErrProviderNotFound is returned when no eligible provider is available for
// a request. This occurs when either no providers are supplied or none of
// them is available and qualified for the request's service type.
var ErrProviderNotFound = errors.New("provider not found")

// RequestDispatcher is a domain service that matches a pending service
// request with an eligible provider.
//
// Business rules:
//   - The request must be valid and in Pending status
//   - A provider is eligible when available and when its specialization
//     covers the request's service type
//   - Candidates are evaluated in the order supplied; the first eligible
//     provider wins, so callers control priority through ordering
//   - Matching mutates the request (provider bound, status advanced) but
//     never the provider: availability is not flipped by assignment
//
// Example usage:
//
//	dispatcher := services.NewRequestDispatcher()
//	matched, err := dispatcher.Dispatch(req, providers)
//	if errors.Is(err, services.ErrProviderNotFound) {
//	    // No eligible providers for this request
//	    return
//	}
type RequestDispatcher struct{}

// NewRequestDispatcher creates a new RequestDispatcher instance.
func NewRequestDispatcher() RequestDispatcher {
	return RequestDispatcher{}
}

// Dispatch finds an eligible provider for the given request and binds it.
//
// Returns the matched provider, ErrProviderNotFound when no supplied
// provider is eligible, or a validation/assignment error.
func (d RequestDispatcher) Dispatch(
	req *request.ServiceRequest,
	providers []*provider.ServiceProvider,
) (*provider.ServiceProvider, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := req.ValidateAssign(); err != nil {
		return nil, err
	}

	matched, err := d.findEligibleProvider(req, providers)
	if err != nil {
		return nil, err
	}

	if err = req.Assign(matched.ID()); err != nil {
		return nil, err
	}

	return matched, nil
}

// findEligibleProvider scans the candidates for the first provider that is
// available and qualified for the request's service type.
func (d RequestDispatcher) findEligibleProvider(
	req *request.ServiceRequest,
	providers []*provider.ServiceProvider,
) (*provider.ServiceProvider, error) {
	for _, p := range providers {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		eligible, err := p.CanServe(req)
		if err != nil {
			return nil, err
		}

		if eligible {
			return p, nil
		}
	}

	return nil, ErrProviderNotFound
}
