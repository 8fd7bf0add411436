package commands

import (
	"context"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
	"fuelroute/internal/core/domain/model/vehicle"
)

// CreatePlanCommandHandler handles the business logic for plan creation.
// Builds the domain fleet and packages from the command's raw specs and
// persists a new plan in "Queued" status for the solver job to pick up.
//
// Example:
//
//	handler := NewCreatePlanCommandHandler(uowFactory)
//	planID := kernel.NewUUID()
//	cmd, _ := NewCreatePlanCommand(planID, vehicleSpecs, packageSpecs)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("plan creation failed: %w", err)
//	}
//	// Plan is now queued and ready for solving
type CreatePlanCommandHandler struct {
	uowFactory PlanUoWFactory
}

// NewCreatePlanCommandHandler creates a handler for plan creation operations.
// Requires a PlanUoWFactory for transactional persistence.
func NewCreatePlanCommandHandler(uowFactory PlanUoWFactory) CreatePlanCommandHandler {
	return CreatePlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan creation command.
// Constructs the domain vehicles and packages, assigning each package its
// position in the request as identifier, and creates the plan in "Queued"
// status. Uses a transaction so the plan is persisted fully or not at all.
func (h *CreatePlanCommandHandler) Handle(ctx context.Context, cmd CreatePlanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(cmd.Vehicles()))
	for _, spec := range cmd.Vehicles() {
		v, err := vehicle.NewVehicle(spec.Capacity, spec.FuelConsumption)
		if err != nil {
			return err
		}
		vehicles = append(vehicles, v)
	}

	packages := make([]cargo.Package, 0, len(cmd.Packages()))
	for i, spec := range cmd.Packages() {
		pkg, err := cargo.NewPackage(i, kernel.Coordinate(spec.Pickup), kernel.Coordinate(spec.Drop), spec.Weight)
		if err != nil {
			return err
		}
		packages = append(packages, pkg)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	planRepo := uow.PlanRepository()
	aggregate, err := plan.NewPlan(cmd.PlanID(), vehicles, packages)
	if err != nil {
		return err
	}

	if err = planRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
