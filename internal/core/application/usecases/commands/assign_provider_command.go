package commands

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/guard"
)

var ErrAssignProviderCommandIsNotConstructed = errors.New(
	"AssignProviderCommand must be created via NewAssignProviderCommand constructor",
)

// AssignProviderCommand represents a request to assign a specific provider
// to a specific pending service request. Unlike the dispatch workflow, the
// caller names both sides of the match explicitly.
//
// Example:
//
//	cmd, err := NewAssignProviderCommand(requestID, providerID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewAssignProviderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignProviderCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignProviderCommand creates a command to assign a provider to a request.
// Validates that both identifiers are valid.
func NewAssignProviderCommand(requestID kernel.UUID, providerID kernel.UUID) (AssignProviderCommand, error) {
	command := AssignProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setProviderID(providerID),
	); err != nil {
		return AssignProviderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignProviderCommandIsNotConstructed if validation fails.
func (c AssignProviderCommand) Validate() error {
	return c.guard.Validate(ErrAssignProviderCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being assigned.
func (c AssignProviderCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ProviderID returns the identifier of the provider to assign.
func (c AssignProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *AssignProviderCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AssignProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
