package commands

import (
	"context"
	"errors"

	"fixmate/internal/core/domain/services"
	"fixmate/internal/pkg/errs"
)

var (
	ErrNoAvailableProviders = errors.New("no available providers found")
	ErrNoPendingRequests    = errors.New("no pending requests found")
)

// DispatchPendingRequestCommandHandler orchestrates the dispatch process.
// Finds the oldest pending request and matches it with an available provider
// whose specialization covers the requested work.
//
// Example:
//
//	handler := NewDispatchPendingRequestCommandHandler(uowFactory)
//	cmd := NewDispatchPendingRequestCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingRequests):
//	    log.Println("No pending requests")
//	case errors.Is(err, ErrNoAvailableProviders):
//	    log.Println("No provider can take the work")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Provider assigned successfully")
//	}
type DispatchPendingRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchPendingRequestCommandHandler creates a handler for dispatch operations.
// Requires a UoWFactory for coordinating transactional reads and the request update.
func NewDispatchPendingRequestCommandHandler(uowFactory UoWFactory) DispatchPendingRequestCommandHandler {
	return DispatchPendingRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Retrieves the oldest pending request, loads available providers, and uses
// RequestDispatcher to select the first eligible match. The request update
// happens within the same transaction. Returns specific errors for no
// requests (ErrNoPendingRequests) or no eligible providers (ErrNoAvailableProviders).
func (h DispatchPendingRequestCommandHandler) Handle(ctx context.Context, command DispatchPendingRequestCommand) error {
	if err := command.Validate(); err != nil {
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

	serviceRequest, err := requestRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingRequests
	}
	if err != nil {
		return err
	}

	providers, err := providerRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		return ErrNoAvailableProviders
	}

	_, err = services.NewRequestDispatcher().Dispatch(serviceRequest, providers)
	if errors.Is(err, services.ErrProviderNotFound) {
		return ErrNoAvailableProviders
	}
	if err != nil {
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
