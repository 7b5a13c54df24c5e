package commands

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/vehicle"
	"fixmate/internal/pkg/errs"
	"fixmate/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a vehicle so that
// service requests can reference it.
//
// Example:
//
//	cmd, err := NewCreateVehicleCommand("Toyota", "Corolla", 2019, "AB-123-CD", ownerID)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
//	fmt.Printf("Registered vehicle with ID: %s", cmd.VehicleID())
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	make         string
	model        string
	year         int
	licensePlate string
	ownerID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Automatically generates a unique ID for the vehicle.
// Validates that make, model, and license plate are present and within
// bounds, the year is plausible, and the owner reference is valid.
func NewCreateVehicleCommand(
	make string,
	model string,
	year int,
	licensePlate string,
	ownerID kernel.UUID,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(kernel.NewUUID()),
		command.setMake(make),
		command.setModel(model),
		command.setYear(year),
		command.setLicensePlate(licensePlate),
		command.setOwnerID(ownerID),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the generated vehicle identifier.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Make returns the vehicle make from the command.
func (c CreateVehicleCommand) Make() string {
	return c.make
}

// Model returns the vehicle model from the command.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Year returns the vehicle model year from the command.
func (c CreateVehicleCommand) Year() int {
	return c.year
}

// LicensePlate returns the vehicle license plate from the command.
func (c CreateVehicleCommand) LicensePlate() string {
	return c.licensePlate
}

// OwnerID returns the owner reference from the command.
func (c CreateVehicleCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setMake(make string) error {
	if make == "" {
		return errs.NewValueIsRequiredError("make")
	}
	if len(make) > vehicle.MakeMaxLength {
		return errs.NewValueIsOutOfRangeError("make length", len(make), 1, vehicle.MakeMaxLength)
	}

	c.make = make
	return nil
}

func (c *CreateVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if len(model) > vehicle.ModelMaxLength {
		return errs.NewValueIsOutOfRangeError("model length", len(model), 1, vehicle.ModelMaxLength)
	}

	c.model = model
	return nil
}

func (c *CreateVehicleCommand) setYear(year int) error {
	if year < vehicle.YearMin || year > vehicle.YearMax {
		return errs.NewValueIsOutOfRangeError("year", year, vehicle.YearMin, vehicle.YearMax)
	}

	c.year = year
	return nil
}

func (c *CreateVehicleCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	if len(licensePlate) > vehicle.LicensePlateMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"licensePlate length", len(licensePlate), 1, vehicle.LicensePlateMaxLength,
		)
	}

	c.licensePlate = licensePlate
	return nil
}

func (c *CreateVehicleCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
