package cmd

import (
	"fuelroute/internal/adapters/out/postgres"
	"fuelroute/internal/core/application/usecases/commands"
	"fuelroute/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreatePlanCommandHandler() commands.CreatePlanCommandHandler {
	var f commands.PlanUoWFactory = FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePlanCommandHandler(f)
}

func (c *CompositionRoot) CreateSolveNextPlanCommandHandler() commands.SolveNextPlanCommandHandler {
	var f commands.PlanUoWFactory = FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSolveNextPlanCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPlanQueryHandler() queries.GetPlanQueryHandler {
	return queries.NewGetPlanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQueuedPlansQueryHandler() queries.GetQueuedPlansQueryHandler {
	return queries.NewGetQueuedPlansQueryHandler(c.gormDB)
}

type FuncPlanUoWFactory func() commands.PlanUoW

func (f FuncPlanUoWFactory) Create() commands.PlanUoW {
	return f()
}
