package commands_test

import (
	"context"

	"fixmate/internal/core/application/usecases/commands"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/core/domain/model/vehicle"
	"fixmate/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.ServiceRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.ServiceRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) GetFirstInPendingStatus(ctx context.Context) (*request.ServiceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) GetAllByVehicle(
	ctx context.Context, vehicleID kernel.UUID,
) ([]*request.ServiceRequest, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) GetAllByProvider(
	ctx context.Context, providerID kernel.UUID,
) ([]*request.ServiceRequest, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.ServiceRequest), args.Error(1)
}

type MockProviderRepository struct{ mock.Mock }

func (m *MockProviderRepository) Add(ctx context.Context, p *provider.ServiceProvider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProviderRepository) Update(ctx context.Context, p *provider.ServiceProvider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) GetAllAvailable(ctx context.Context) ([]*provider.ServiceProvider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*provider.ServiceProvider), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockProviderUoWFactory struct{ mock.Mock }

func (m *MockProviderUoWFactory) Create() commands.ProviderUoW {
	args := m.Called()
	return args.Get(0).(commands.ProviderUoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}
