package commands

import (
	"context"

	"fixmate/internal/core/domain/model/provider"
)

// CreateProviderCommandHandler handles the business logic for provider registration.
// New providers start out available for work.
//
// Example:
//
//	handler := NewCreateProviderCommandHandler(uowFactory)
//	cmd, _ := NewCreateProviderCommand("Jane Smith", provider.Electrician)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("provider registration failed: %w", err)
//	}
type CreateProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewCreateProviderCommandHandler creates a handler for provider registration operations.
// Requires a ProviderUoWFactory for transactional persistence.
func NewCreateProviderCommandHandler(uowFactory ProviderUoWFactory) CreateProviderCommandHandler {
	return CreateProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider registration command.
// Uses a transaction to ensure the provider is properly persisted or rolled back on error.
func (h *CreateProviderCommandHandler) Handle(ctx context.Context, cmd CreateProviderCommand) error {
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

	newProvider, err := provider.NewServiceProvider(cmd.ProviderID(), cmd.FullName(), cmd.Specialization())
	if err != nil {
		return err
	}

	providerRepo := uow.ProviderRepository()
	if err = providerRepo.Add(ctx, newProvider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
