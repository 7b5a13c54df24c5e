package commands

import (
	"context"

	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/clock"
)

// CreateRequestCommandHandler handles the business logic for opening service requests.
// Verifies the referenced vehicle exists and creates the request in "pending" status.
//
// Example:
//
//	handler := NewCreateRequestCommandHandler(uowFactory, clock.NewSystem())
//	requestID := kernel.NewUUID()
//	cmd, _ := NewCreateRequestCommand(requestID, vehicleID, request.Maintenance, "60k km service")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("request creation failed: %w", err)
//	}
//	// Request is now pending and ready for provider assignment
type CreateRequestCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

// NewCreateRequestCommandHandler creates a handler for request creation operations.
// Requires a UoWFactory for transactional persistence and a clock for stamping
// the request submission time.
func NewCreateRequestCommandHandler(uowFactory UoWFactory, clk clock.Clock) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the request creation command.
// Resolves the vehicle reference first: a request for an unknown vehicle fails
// with an ObjectNotFound error before anything is written. The new request is
// stamped with the current time and persisted in "pending" status.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	if _, err := vehicleRepo.Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	serviceRequest, err := request.NewServiceRequest(
		cmd.RequestID(), cmd.VehicleID(), cmd.ServiceType(), cmd.Notes(), h.clock.Now(),
	)
	if err != nil {
		return err
	}

	requestRepo := uow.RequestRepository()
	if err = requestRepo.Add(ctx, serviceRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
