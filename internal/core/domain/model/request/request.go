package request

import (
	"errors"
	"fmt"
	"time"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/errs"
)

// NotesMaxLength bounds the free-text notes attached to a request.
const NotesMaxLength = 1000

var (
	// ErrServiceRequestIsNotConstructed is returned when a ServiceRequest instance was not
	// created through the NewServiceRequest or RestoreServiceRequest factory methods.
	ErrServiceRequestIsNotConstructed = errors.New(
		"ServiceRequest must be created via NewServiceRequest or RestoreServiceRequest constructor",
	)

	// ErrRequestedAtIsRequired is returned when the creation timestamp is missing.
	ErrRequestedAtIsRequired = errs.NewValueIsRequiredError("requestedAt")
)

// ServiceRequest represents a single owner-initiated service need tied to one
// vehicle. It is the aggregate root that manages the request lifecycle from
// creation through provider assignment to completion or rejection.
//
// ServiceRequest follows these invariants:
//   - Must have a valid unique identifier and vehicle reference
//   - Service type must be one of the defined categories
//   - Notes must not exceed NotesMaxLength characters
//   - assignedProviderID is non-nil exactly while status is Assigned,
//     InProgress, or Completed
//   - completedAt is set exactly once, on transition into Completed
//   - Status transitions follow defined business rules
//   - Can only be created through NewServiceRequest or RestoreServiceRequest
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type ServiceRequest struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// vehicleID references the vehicle the work is requested for; immutable
	vehicleID kernel.UUID

	// serviceType is the enumerated category of requested work
	serviceType ServiceType

	// notes is optional free text from the owner, bounded by NotesMaxLength
	notes string

	// status represents the current state in the request lifecycle
	status Status

	// assignedProviderID is the bound provider's ID (nil while unassigned)
	assignedProviderID *kernel.UUID

	// requestedAt is the creation timestamp in UTC; immutable
	requestedAt time.Time

	// completedAt is set once, on transition into Completed
	completedAt *time.Time

	// version is the optimistic-concurrency token maintained by the store
	version int

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewServiceRequest creates a new ServiceRequest in Pending status with no
// provider assigned. This is the only way to create a fresh request, ensuring
// all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the request (must be a valid UUID)
//   - vehicleID: Identifier of an existing vehicle (must be a valid UUID)
//   - serviceType: Category of requested work (must be valid)
//   - notes: Optional free text, at most NotesMaxLength characters
//   - requestedAt: Creation timestamp; stored in UTC
//
// Returns the created request, or a validation error if any parameter is
// invalid.
func NewServiceRequest(
	id kernel.UUID,
	vehicleID kernel.UUID,
	serviceType ServiceType,
	notes string,
	requestedAt time.Time,
) (*ServiceRequest, error) {
	r := &ServiceRequest{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setServiceType(serviceType),
		r.setNotes(notes),
		r.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreServiceRequest reconstructs a ServiceRequest from persistence.
// Unlike NewServiceRequest it accepts any lifecycle state, but it still
// verifies the cross-field invariants: the provider reference must be
// consistent with the status, and completedAt must be present exactly when
// the request is Completed.
func RestoreServiceRequest(
	id kernel.UUID,
	vehicleID kernel.UUID,
	serviceType ServiceType,
	notes string,
	status Status,
	assignedProviderID *kernel.UUID,
	requestedAt time.Time,
	completedAt *time.Time,
	version int,
) (*ServiceRequest, error) {
	r := &ServiceRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setServiceType(serviceType),
		r.setNotes(notes),
		r.setRequestedAt(requestedAt),
		status.Validate(),
		status.ValidateCanHaveProvider(assignedProviderID != nil),
	); err != nil {
		return nil, err
	}

	if assignedProviderID != nil {
		if err := assignedProviderID.Validate(); err != nil {
			return nil, err
		}
	}

	if status == Completed && completedAt == nil {
		return nil, errs.NewValueIsRequiredError("completedAt")
	}
	if status != Completed && completedAt != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completedAt",
			fmt.Errorf("%s is not a valid status to have a completion time", status),
		)
	}

	r.status = status
	r.assignedProviderID = assignedProviderID
	r.completedAt = completedAt
	r.version = version

	return r, nil
}

// Validate ensures the ServiceRequest instance was properly constructed
// through one of the factory methods. This prevents bypassing validation by
// directly instantiating the struct.
func (r *ServiceRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrServiceRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *ServiceRequest) IsEqual(other *ServiceRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *ServiceRequest) ID() kernel.UUID {
	return r.id
}

// VehicleID returns the identifier of the vehicle the work is requested for.
func (r *ServiceRequest) VehicleID() kernel.UUID {
	return r.vehicleID
}

// ServiceType returns the category of requested work.
func (r *ServiceRequest) ServiceType() ServiceType {
	return r.serviceType
}

// Notes returns the owner's free-text notes. May be empty.
func (r *ServiceRequest) Notes() string {
	return r.notes
}

// Status returns the current status of the request.
func (r *ServiceRequest) Status() Status {
	return r.status
}

// AssignedProvider returns the bound provider's ID.
// Returns nil while no provider is assigned.
func (r *ServiceRequest) AssignedProvider() *kernel.UUID {
	return r.assignedProviderID
}

// RequestedAt returns the UTC creation timestamp.
func (r *ServiceRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// CompletedAt returns the UTC completion timestamp, or nil while the
// request has not completed.
func (r *ServiceRequest) CompletedAt() *time.Time {
	return r.completedAt
}

// Version returns the optimistic-concurrency token last read from the store.
func (r *ServiceRequest) Version() int {
	return r.version
}

// ValidateAssign checks whether the request can accept a provider without
// performing the transition.
func (r *ServiceRequest) ValidateAssign() error {
	return r.status.ValidateAssign()
}

// Assign binds a provider to the request and moves the status from Pending
// to Assigned.
//
// Business rules:
//   - The provider ID must be valid
//   - The request must be Pending; a request that already carries a provider
//     or sits in a terminal state fails with a Conflict error
//
// After successful assignment AssignedProvider() returns the provider's ID.
func (r *ServiceRequest) Assign(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedProviderID = &providerID
	return nil
}

// Start marks the assigned work as underway, moving Assigned to InProgress.
// Fails with a Conflict error from any other state.
func (r *ServiceRequest) Start() error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete marks the request as completed and records the completion time.
//
// Business rules:
//   - The request must be Assigned or InProgress
//   - completedAt is stamped exactly once, in UTC
//
// Completed is a terminal state with no further transitions.
func (r *ServiceRequest) Complete(completedAt time.Time) error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	utc := completedAt.UTC()
	r.status = newStatus
	r.completedAt = &utc
	return nil
}

// Reject marks the request as rejected. Permitted from Pending, Assigned,
// and InProgress; terminal states fail with a Conflict error.
// Any provider reference is cleared: a rejected request never carries an
// assignment.
func (r *ServiceRequest) Reject() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedProviderID = nil
	return nil
}

// ChangeStatus applies a caller-requested status transition. Assignment is
// excluded: Assigned can only be entered via Assign, and Pending is never a
// transition target, so both fail with a Conflict error here. now supplies
// the completion timestamp when the target status is Completed.
func (r *ServiceRequest) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	switch newStatus {
	case InProgress:
		return r.Start()
	case Completed:
		return r.Complete(now)
	case Rejected:
		return r.Reject()
	default:
		return errs.NewConflictError(
			fmt.Sprintf("invalid status transition: %s -> %s", r.status, newStatus),
		)
	}
}

// setID validates and sets the request's unique identifier.
// This is a private method used only during construction.
func (r *ServiceRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setVehicleID validates and sets the vehicle reference.
// This is a private method used only during construction.
func (r *ServiceRequest) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return fmt.Errorf("vehicleId: %w", err)
	}
	r.vehicleID = vehicleID
	return nil
}

// setServiceType validates and sets the service type.
// This is a private method used only during construction.
func (r *ServiceRequest) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	r.serviceType = serviceType
	return nil
}

// setNotes validates and sets the free-text notes.
// Notes may be empty but must not exceed NotesMaxLength characters.
// This is a private method used only during construction.
func (r *ServiceRequest) setNotes(notes string) error {
	if len(notes) > NotesMaxLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, NotesMaxLength)
	}
	r.notes = notes
	return nil
}

// setRequestedAt validates and sets the creation timestamp, normalized to UTC.
// This is a private method used only during construction.
func (r *ServiceRequest) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return ErrRequestedAtIsRequired
	}
	r.requestedAt = requestedAt.UTC()
	return nil
}
