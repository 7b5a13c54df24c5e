package commands

import (
	"errors"

	"fixmate/internal/pkg/guard"
)

var ErrDispatchPendingRequestCommandIsNotConstructed = errors.New(
	"DispatchPendingRequestCommand must be created via NewDispatchPendingRequestCommand constructor",
)

// DispatchPendingRequestCommand triggers assignment of an available provider
// to the oldest pending service request. It represents the business operation
// of matching repair capacity with waiting work.
//
// Example:
//
//	cmd := NewDispatchPendingRequestCommand()
//	handler := NewDispatchPendingRequestCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No requests to dispatch or no eligible providers: %v", err)
//	}
type DispatchPendingRequestCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingRequestCommand creates a new command to trigger dispatch.
// This is a parameterless command that initiates the provider-request matching process.
func NewDispatchPendingRequestCommand() DispatchPendingRequestCommand {
	return DispatchPendingRequestCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchPendingRequestCommandIsNotConstructed if validation fails.
func (c *DispatchPendingRequestCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPendingRequestCommandIsNotConstructed,
	)
}
