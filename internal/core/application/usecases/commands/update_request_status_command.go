package commands

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/guard"
)

var ErrUpdateRequestStatusCommandIsNotConstructed = errors.New(
	"UpdateRequestStatusCommand must be created via NewUpdateRequestStatusCommand constructor",
)

// UpdateRequestStatusCommand represents a request to move a service request
// to a new lifecycle status. Only forward transitions permitted by the status
// machine will be accepted by the handler.
//
// Example:
//
//	cmd, err := NewUpdateRequestStatusCommand(requestID, request.InProgress)
//	if err != nil {
//	    return fmt.Errorf("invalid status data: %w", err)
//	}
//
//	handler := NewUpdateRequestStatusCommandHandler(uowFactory, clock.NewSystem())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateRequestStatusCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	status    request.Status

	guard guard.ConstructorGuard
}

// NewUpdateRequestStatusCommand creates a command to change a request's status.
// Validates that the identifier is valid and the target status is known.
// Whether the transition itself is legal is decided by the aggregate.
func NewUpdateRequestStatusCommand(requestID kernel.UUID, status request.Status) (UpdateRequestStatusCommand, error) {
	command := UpdateRequestStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setStatus(status),
	); err != nil {
		return UpdateRequestStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateRequestStatusCommandIsNotConstructed if validation fails.
func (c UpdateRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestStatusCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being updated.
func (c UpdateRequestStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Status returns the target lifecycle status.
func (c UpdateRequestStatusCommand) Status() request.Status {
	return c.status
}

func (c *UpdateRequestStatusCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *UpdateRequestStatusCommand) setStatus(status request.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
