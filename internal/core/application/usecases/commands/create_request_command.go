package commands

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"
	"fixmate/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand represents a request to open a new service request
// for a registered vehicle. Encapsulates the vehicle reference, the kind of
// work needed, and free-form notes from the owner.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	cmd, err := NewCreateRequestCommand(requestID, vehicleID, request.Repair, "engine stalls at idle")
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//
//	handler := NewCreateRequestCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create request: %w", err)
//	}
//	fmt.Printf("Request %s created and awaiting a provider", requestID)
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	vehicleID   kernel.UUID
	serviceType request.ServiceType
	notes       string

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to open a new service request.
// Validates that both identifiers are valid, the service type is known, and
// the notes fit the allowed length. Returns an error if any validation fails.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	vehicleID kernel.UUID,
	serviceType request.ServiceType,
	notes string,
) (CreateRequestCommand, error) {
	command := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setVehicleID(vehicleID),
		command.setServiceType(serviceType),
		command.setNotes(notes),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRequestCommandIsNotConstructed if validation fails.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new request.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// VehicleID returns the identifier of the vehicle the request is for.
func (c CreateRequestCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ServiceType returns the kind of work requested.
func (c CreateRequestCommand) ServiceType() request.ServiceType {
	return c.serviceType
}

// Notes returns the free-form description supplied by the owner.
func (c CreateRequestCommand) Notes() string {
	return c.notes
}

func (c *CreateRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateRequestCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateRequestCommand) setServiceType(serviceType request.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateRequestCommand) setNotes(notes string) error {
	if len(notes) > request.NotesMaxLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, request.NotesMaxLength)
	}

	c.notes = notes
	return nil
}
