package commands

import (
	"errors"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/pkg/guard"
)

var (
	ErrCreatePlanCommandIsNotConstructed = errors.New(
		"CreatePlanCommand must be created via NewCreatePlanCommand constructor",
	)
	ErrVehiclesAreRequired = errors.New("at least one vehicle is required")
	ErrPackagesAreRequired = errors.New("at least one package is required")
)

// VehicleSpec describes one vehicle of the requested fleet as raw numbers.
// Value validation happens in the domain layer when the plan is created.
type VehicleSpec struct {
	Capacity        int
	FuelConsumption int
}

// PackageSpec describes one requested delivery as raw numbers.
// Value validation happens in the domain layer when the plan is created.
type PackageSpec struct {
	Pickup int
	Drop   int
	Weight int
}

// CreatePlanCommand represents a request to register a new route planning job.
// Encapsulates the fleet and the packages the route must serve.
//
// Example:
//
//	planID := kernel.NewUUID()
//	cmd, err := NewCreatePlanCommand(planID,
//	    []VehicleSpec{{Capacity: 10, FuelConsumption: 10}},
//	    []PackageSpec{{Pickup: -1, Drop: 5, Weight: 4}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid plan data: %w", err)
//	}
//
//	handler := NewCreatePlanCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create plan: %w", err)
//	}
//	fmt.Printf("Plan %s queued for solving", planID)
type CreatePlanCommand struct { //nolint:recvcheck //using for validation
	planID   kernel.UUID
	vehicles []VehicleSpec
	packages []PackageSpec

	guard guard.ConstructorGuard
}

// NewCreatePlanCommand creates a command to register a new route planning job.
// Validates that the plan ID is valid and both the fleet and the package list
// are non-empty. Returns an error if any validation fails.
func NewCreatePlanCommand(planID kernel.UUID, vehicles []VehicleSpec, packages []PackageSpec) (CreatePlanCommand, error) {
	planCommand := CreatePlanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		planCommand.setPlanID(planID),
		planCommand.setVehicles(vehicles),
		planCommand.setPackages(packages),
	); err != nil {
		return CreatePlanCommand{}, err
	}

	return planCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePlanCommandIsNotConstructed if validation fails.
func (c CreatePlanCommand) Validate() error {
	return c.guard.Validate(ErrCreatePlanCommandIsNotConstructed)
}

// PlanID returns the unique identifier for the plan.
func (c CreatePlanCommand) PlanID() kernel.UUID {
	return c.planID
}

// Vehicles returns the requested fleet specs.
func (c CreatePlanCommand) Vehicles() []VehicleSpec {
	return c.vehicles
}

// Packages returns the requested delivery specs.
func (c CreatePlanCommand) Packages() []PackageSpec {
	return c.packages
}

func (c *CreatePlanCommand) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}

	c.planID = planID
	return nil
}

func (c *CreatePlanCommand) setVehicles(vehicles []VehicleSpec) error {
	if len(vehicles) == 0 {
		return ErrVehiclesAreRequired
	}

	c.vehicles = vehicles
	return nil
}

func (c *CreatePlanCommand) setPackages(packages []PackageSpec) error {
	if len(packages) == 0 {
		return ErrPackagesAreRequired
	}

	c.packages = packages
	return nil
}
