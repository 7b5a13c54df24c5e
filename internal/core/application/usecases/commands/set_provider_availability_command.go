package commands

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/guard"
)

var ErrSetProviderAvailabilityCommandIsNotConstructed = errors.New(
	"SetProviderAvailabilityCommand must be created via NewSetProviderAvailabilityCommand constructor",
)

// SetProviderAvailabilityCommand represents a request to flip a provider's
// availability flag. Unavailable providers are skipped by dispatch and
// rejected for direct assignment.
//
// Example:
//
//	cmd, err := NewSetProviderAvailabilityCommand(providerID, false)
//	if err != nil {
//	    return fmt.Errorf("invalid availability data: %w", err)
//	}
//
//	handler := NewSetProviderAvailabilityCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("availability update failed: %w", err)
//	}
type SetProviderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	providerID  kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewSetProviderAvailabilityCommand creates a command to change a provider's availability.
// Validates that the provider identifier is valid.
func NewSetProviderAvailabilityCommand(providerID kernel.UUID, isAvailable bool) (SetProviderAvailabilityCommand, error) {
	command := SetProviderAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProviderID(providerID); err != nil {
		return SetProviderAvailabilityCommand{}, err
	}

	command.isAvailable = isAvailable
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetProviderAvailabilityCommandIsNotConstructed if validation fails.
func (c SetProviderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProviderAvailabilityCommandIsNotConstructed)
}

// ProviderID returns the identifier of the provider being updated.
func (c SetProviderAvailabilityCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// IsAvailable returns the target availability flag.
func (c SetProviderAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *SetProviderAvailabilityCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
