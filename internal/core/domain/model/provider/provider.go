package provider

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"
)

// FullNameMaxLength bounds the provider's display name.
const FullNameMaxLength = 100

// ErrServiceProviderIsNotConstructed is returned when a ServiceProvider instance was not
// created through the NewServiceProvider or RestoreServiceProvider factory methods.
var ErrServiceProviderIsNotConstructed = errors.New(
	"ServiceProvider must be created via NewServiceProvider or RestoreServiceProvider constructor",
)

// ServiceProvider represents an entity capable of performing service work.
// It is an aggregate root holding the provider's identity, trade, and
// availability flag.
//
// ServiceProvider follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name of at most FullNameMaxLength characters
//   - Must have a valid specialization
//   - Can only be created through its factory methods
//
// Availability is read by many assignment attempts concurrently; it is
// authoritative only at commit time, and assignment never flips it. Toggling
// availability is an explicit, separate operation.
type ServiceProvider struct {
	// id is the unique identifier for the provider
	id kernel.UUID

	// fullName is the provider's display name
	fullName string

	// specialization is the trade the provider is qualified for
	specialization Specialization

	// isAvailable reports whether the provider currently accepts work
	isAvailable bool

	// isConstructed ensures the provider was created via a constructor
	isConstructed bool
}

// NewServiceProvider creates a new ServiceProvider with validation.
// New providers are available by default.
//
// Parameters:
//   - id: Unique identifier for the provider (must be a valid UUID)
//   - fullName: Display name (required, at most FullNameMaxLength characters)
//   - specialization: The provider's trade (must be valid)
//
// Returns the created provider, or a validation error if any parameter is
// invalid.
func NewServiceProvider(id kernel.UUID, fullName string, specialization Specialization) (*ServiceProvider, error) {
	p := &ServiceProvider{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setFullName(fullName),
		p.setSpecialization(specialization),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreServiceProvider reconstructs a ServiceProvider from persistence,
// including its stored availability flag.
func RestoreServiceProvider(
	id kernel.UUID,
	fullName string,
	specialization Specialization,
	isAvailable bool,
) (*ServiceProvider, error) {
	p, err := NewServiceProvider(id, fullName, specialization)
	if err != nil {
		return nil, err
	}

	p.isAvailable = isAvailable
	return p, nil
}

// Validate ensures the ServiceProvider instance was properly constructed
// through one of the factory methods.
func (p *ServiceProvider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrServiceProviderIsNotConstructed
	}

	return nil
}

// IsEqual compares two providers by their unique identifiers.
func (p *ServiceProvider) IsEqual(other *ServiceProvider) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the provider's unique identifier.
func (p *ServiceProvider) ID() kernel.UUID {
	return p.id
}

// FullName returns the provider's display name.
func (p *ServiceProvider) FullName() string {
	return p.fullName
}

// Specialization returns the provider's trade.
func (p *ServiceProvider) Specialization() Specialization {
	return p.specialization
}

// IsAvailable reports whether the provider currently accepts work.
func (p *ServiceProvider) IsAvailable() bool {
	return p.isAvailable
}

// SetAvailability toggles whether the provider accepts new work.
// Idempotent: setting the current value is permitted.
func (p *ServiceProvider) SetAvailability(available bool) {
	p.isAvailable = available
}

// ValidateAccept checks the availability precondition for binding this
// provider to a request. An unavailable provider yields a Conflict error.
func (p *ServiceProvider) ValidateAccept() error {
	if !p.isAvailable {
		return errs.NewConflictError("provider not available")
	}
	return nil
}

// CanServe reports whether the provider is eligible for the given request:
// available, and qualified for the request's service type. Used by the
// dispatcher when matching pending requests.
func (p *ServiceProvider) CanServe(r *request.ServiceRequest) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	return p.isAvailable && p.specialization.CanServe(r.ServiceType()), nil
}

// setID validates and sets the provider's unique identifier.
// This is a private method used only during construction.
func (p *ServiceProvider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setFullName validates and sets the display name.
// This is a private method used only during construction.
func (p *ServiceProvider) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	if len(fullName) > FullNameMaxLength {
		return errs.NewValueIsOutOfRangeError("fullName length", len(fullName), 1, FullNameMaxLength)
	}
	p.fullName = fullName
	return nil
}

// setSpecialization validates and sets the trade.
// This is a private method used only during construction.
func (p *ServiceProvider) setSpecialization(specialization Specialization) error {
	if err := specialization.Validate(); err != nil {
		return err
	}
	p.specialization = specialization
	return nil
}
