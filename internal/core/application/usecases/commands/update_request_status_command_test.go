package commands_test

import (
	"testing"

	"fixmate/internal/core/application/usecases/commands"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateRequestStatusCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	cmd, err := commands.NewUpdateRequestStatusCommand(requestID, request.InProgress)
	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, request.InProgress, cmd.Status())
}

func TestNewUpdateRequestStatusCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewUpdateRequestStatusCommand(kernel.UUID{}, request.InProgress)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateRequestStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateRequestStatusCommand(kernel.NewUUID(), request.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateRequestStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateRequestStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateRequestStatusCommandIsNotConstructed)
}
