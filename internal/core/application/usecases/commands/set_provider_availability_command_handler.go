package commands

import (
	"context"
)

// SetProviderAvailabilityCommandHandler handles availability changes for providers.
// The operation is idempotent: setting the flag to its current value is not an error.
//
// Example:
//
//	handler := NewSetProviderAvailabilityCommandHandler(uowFactory)
//	cmd, _ := NewSetProviderAvailabilityCommand(providerID, false)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Provider does not exist")
//	}
type SetProviderAvailabilityCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewSetProviderAvailabilityCommandHandler creates a handler for availability updates.
// Requires a ProviderUoWFactory for transactional persistence.
func NewSetProviderAvailabilityCommandHandler(uowFactory ProviderUoWFactory) SetProviderAvailabilityCommandHandler {
	return SetProviderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update command.
// Loads the provider, applies the flag, and persists the result.
// Returns ObjectNotFound when the provider is missing.
func (h SetProviderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetProviderAvailabilityCommand) error {
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

	providerRepo := uow.ProviderRepository()

	serviceProvider, err := providerRepo.Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	serviceProvider.SetAvailability(cmd.IsAvailable())

	if err = providerRepo.Update(ctx, serviceProvider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
