package commands

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"
	"fixmate/internal/pkg/errs"
	"fixmate/internal/pkg/guard"
)

var ErrCreateProviderCommandIsNotConstructed = errors.New(
	"CreateProviderCommand must be created via NewCreateProviderCommand constructor",
)

// CreateProviderCommand represents a request to register a new service
// provider. Encapsulates the provider's name and the specialization that
// determines which kinds of work they can take.
//
// Example:
//
//	cmd, err := NewCreateProviderCommand("Jane Smith", provider.Mechanic)
//	if err != nil {
//	    return fmt.Errorf("invalid provider data: %w", err)
//	}
//
//	handler := NewCreateProviderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create provider: %w", err)
//	}
//	fmt.Printf("Created provider with ID: %s", cmd.ProviderID())
type CreateProviderCommand struct { //nolint:recvcheck //using for validation
	providerID     kernel.UUID
	fullName       string
	specialization provider.Specialization

	guard guard.ConstructorGuard
}

// NewCreateProviderCommand creates a command to register a new provider.
// Automatically generates a unique ID for the provider.
// Validates that the name is present and within bounds and the
// specialization is known.
func NewCreateProviderCommand(fullName string, specialization provider.Specialization) (CreateProviderCommand, error) {
	command := CreateProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProviderID(kernel.NewUUID()),
		command.setFullName(fullName),
		command.setSpecialization(specialization),
	); err != nil {
		return CreateProviderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProviderCommandIsNotConstructed if validation fails.
func (c CreateProviderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProviderCommandIsNotConstructed)
}

// ProviderID returns the generated provider identifier.
func (c CreateProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// FullName returns the provider name from the command.
func (c CreateProviderCommand) FullName() string {
	return c.fullName
}

// Specialization returns the provider specialization from the command.
func (c CreateProviderCommand) Specialization() provider.Specialization {
	return c.specialization
}

func (c *CreateProviderCommand) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.providerID = id
	return nil
}

func (c *CreateProviderCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	if len(fullName) > provider.FullNameMaxLength {
		return errs.NewValueIsOutOfRangeError("fullName length", len(fullName), 1, provider.FullNameMaxLength)
	}

	c.fullName = fullName
	return nil
}

func (c *CreateProviderCommand) setSpecialization(specialization provider.Specialization) error {
	if err := specialization.Validate(); err != nil {
		return err
	}

	c.specialization = specialization
	return nil
}
