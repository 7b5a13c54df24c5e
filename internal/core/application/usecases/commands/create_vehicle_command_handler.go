package commands

import (
	"context"

	"fixmate/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	cmd, _ := NewCreateVehicleCommand("Honda", "Civic", 2021, "XY-987-ZW", ownerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration operations.
// Requires a VehicleUoWFactory for transactional persistence.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Uses a transaction to ensure the vehicle is properly persisted or rolled back on error.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(), cmd.Make(), cmd.Model(), cmd.Year(), cmd.LicensePlate(), cmd.OwnerID(),
	)
	if err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	if err = vehicleRepo.Add(ctx, newVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
