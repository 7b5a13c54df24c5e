package commands

import (
	"context"

	"fixmate/internal/pkg/clock"
)

// UpdateRequestStatusCommandHandler handles lifecycle transitions on service
// requests. The aggregate decides whether the requested transition is legal;
// the handler supplies the completion timestamp and the transaction boundary.
//
// Example:
//
//	handler := NewUpdateRequestStatusCommandHandler(uowFactory, clock.NewSystem())
//	cmd, _ := NewUpdateRequestStatusCommand(requestID, request.Completed)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("Transition not allowed from the current status")
//	}
type UpdateRequestStatusCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      clock.Clock
}

// NewUpdateRequestStatusCommandHandler creates a handler for status transitions.
// Requires a RequestUoWFactory for transactional persistence and a clock for
// stamping completion times.
func NewUpdateRequestStatusCommandHandler(
	uowFactory RequestUoWFactory,
	clk clock.Clock,
) UpdateRequestStatusCommandHandler {
	return UpdateRequestStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the status update command.
// Loads the request, applies the transition through the aggregate, and
// persists the result. Returns ObjectNotFound when the request is missing
// and Conflict when the transition is not allowed from the current status.
func (h UpdateRequestStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRequestStatusCommand) error {
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

	requestRepo := uow.RequestRepository()

	serviceRequest, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = serviceRequest.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, serviceRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
