package commands_test

import (
	"testing"
	"time"

	"fixmate/internal/core/application/usecases/commands"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/clock"
	"fixmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgressRequest(t *testing.T, id kernel.UUID) *request.ServiceRequest {
	t.Helper()
	providerID := kernel.NewUUID()
	r, err := request.RestoreServiceRequest(
		id, kernel.NewUUID(), request.Repair, "", request.InProgress,
		&providerID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), nil, 2,
	)
	require.NoError(t, err)
	return r
}

func TestUpdateRequestStatusCommandHandler_Handle_Complete(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	now := time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC)
	cmd, _ := commands.NewUpdateRequestStatusCommand(requestID, request.Completed)

	testRequest := inProgressRequest(t, requestID)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(testRequest, nil).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*request.ServiceRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRequestStatusCommandHandler(factory, clock.NewFixed(now))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, request.Completed, testRequest.Status())
	require.NotNil(t, testRequest.CompletedAt())
	assert.Equal(t, now, *testRequest.CompletedAt())

	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateRequestStatusCommandHandler_Handle_StartFromAssigned(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateRequestStatusCommand(requestID, request.InProgress)

	testRequest, err := request.RestoreServiceRequest(
		requestID, kernel.NewUUID(), request.Repair, "", request.Assigned,
		&providerID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), nil, 1,
	)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(testRequest, nil).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*request.ServiceRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRequestStatusCommandHandler(factory, clock.NewFixed(time.Now()))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.InProgress, testRequest.Status())
	assert.Nil(t, testRequest.CompletedAt())
}

func TestUpdateRequestStatusCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateRequestStatusCommand(requestID, request.Rejected)

	testRequest := pendingRequest(t, requestID)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(testRequest, nil).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*request.ServiceRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRequestStatusCommandHandler(factory, clock.NewFixed(time.Now()))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, request.Rejected, testRequest.Status())
	assert.Nil(t, testRequest.AssignedProvider())
}

func TestUpdateRequestStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateRequestStatusCommand(requestID, request.Completed)

	// Pending requests cannot complete without going through assignment.
	testRequest := pendingRequest(t, requestID)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(testRequest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRequestStatusCommandHandler(factory, clock.NewFixed(time.Now()))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateRequestStatusCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateRequestStatusCommand(requestID, request.InProgress)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, requestID).
			Return(nil, errs.NewObjectNotFoundError("requestID", requestID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRequestStatusCommandHandler(factory, clock.NewFixed(time.Now()))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
