package cmd

import (
	"fixmate/internal/adapters/out/postgres"
	"fixmate/internal/core/application/usecases/commands"
	"fixmate/internal/core/application/usecases/queries"
	"fixmate/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(),
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignProviderCommandHandler() commands.AssignProviderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignProviderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRequestStatusCommandHandler() commands.UpdateRequestStatusCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRequestStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDispatchPendingRequestCommandHandler() commands.DispatchPendingRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProviderCommandHandler() commands.CreateProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProviderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProviderAvailabilityCommandHandler() commands.SetProviderAvailabilityCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProviderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRequestQueryHandler() queries.GetRequestQueryHandler {
	return queries.NewGetRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleRequestsQueryHandler() queries.GetVehicleRequestsQueryHandler {
	return queries.NewGetVehicleRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderRequestsQueryHandler() queries.GetProviderRequestsQueryHandler {
	return queries.NewGetProviderRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableProvidersQueryHandler() queries.GetAvailableProvidersQueryHandler {
	return queries.NewGetAvailableProvidersQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
