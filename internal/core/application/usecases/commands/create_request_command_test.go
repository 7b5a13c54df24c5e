package commands_test

import (
	"strings"
	"testing"

	"fixmate/internal/core/application/usecases/commands"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRequestCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(requestID, vehicleID, request.Repair, "engine stalls at idle")
	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, vehicleID, cmd.VehicleID())
	assert.Equal(t, request.Repair, cmd.ServiceType())
	assert.Equal(t, "engine stalls at idle", cmd.Notes())
}

func TestNewCreateRequestCommand_EmptyNotes(t *testing.T) {
	cmd, err := commands.NewCreateRequestCommand(kernel.NewUUID(), kernel.NewUUID(), request.Maintenance, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Notes())
}

func TestNewCreateRequestCommand_InvalidRequestID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateRequestCommand(invalidID, kernel.NewUUID(), request.Repair, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateRequestCommand_InvalidVehicleID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreateRequestCommand(kernel.NewUUID(), invalidID, request.Repair, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateRequestCommand_UnknownServiceType(t *testing.T) {
	_, err := commands.NewCreateRequestCommand(kernel.NewUUID(), kernel.NewUUID(), request.UnknownServiceType, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateRequestCommand_NotesTooLong(t *testing.T) {
	notes := strings.Repeat("x", request.NotesMaxLength+1)
	_, err := commands.NewCreateRequestCommand(kernel.NewUUID(), kernel.NewUUID(), request.Repair, notes)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateRequestCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateRequestCommand
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateRequestCommandIsNotConstructed)
}
