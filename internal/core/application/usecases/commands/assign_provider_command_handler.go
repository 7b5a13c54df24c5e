package commands

import (
	"context"
)

// AssignProviderCommandHandler handles direct assignment of a named provider
// to a named request. Loads both aggregates, checks the provider is accepting
// work, and records the assignment on the request.
//
// Example:
//
//	handler := NewAssignProviderCommandHandler(uowFactory)
//	cmd, _ := NewAssignProviderCommand(requestID, providerID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Request or provider does not exist")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Request not pending or provider unavailable")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignProviderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignProviderCommandHandler creates a handler for direct assignment operations.
// Requires a UoWFactory for coordinating reads and the request update in one transaction.
func NewAssignProviderCommandHandler(uowFactory UoWFactory) AssignProviderCommandHandler {
	return AssignProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Both aggregates are read and the request is updated inside a single
// transaction, and the request write carries a version check, so two
// concurrent assignments of the same request cannot both succeed.
// Returns ObjectNotFound when either side is missing and Conflict when the
// request is not pending or the provider is not available.
func (h AssignProviderCommandHandler) Handle(ctx context.Context, cmd AssignProviderCommand) error {
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
	providerRepo := uow.ProviderRepository()

	serviceRequest, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	serviceProvider, err := providerRepo.Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if err = serviceProvider.ValidateAccept(); err != nil {
		return err
	}

	if err = serviceRequest.Assign(serviceProvider.ID()); err != nil {
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
