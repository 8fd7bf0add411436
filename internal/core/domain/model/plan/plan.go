package plan

import (
	"errors"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/route"
	"fuelroute/internal/core/domain/model/vehicle"
	"fuelroute/internal/pkg/errs"
)

var (
	// ErrPlanIsNotConstructed is returned when a Plan instance was not created through
	// the NewPlan factory method. This ensures all plans are properly validated.
	ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan constructor")
)

// Result is the outcome of solving a plan: the vehicle chosen for the
// route, the ordered waypoints it visits, and the route's cost figures.
//
// RouteLength is the total distance of the waypoint sequence and FuelCost
// is that distance multiplied by the chosen vehicle's fuel consumption.
type Result struct {
	Vehicle     vehicle.Info
	Waypoints   []route.Waypoint
	RouteLength int
	FuelCost    int
}

// Plan represents a route planning request in the system. It is the aggregate
// root that manages the planning lifecycle from creation through solving to
// completion or failure.
//
// Plan follows these invariants:
//   - Must have a valid unique identifier
//   - Must have at least one vehicle and at least one package
//   - Status transitions follow defined business rules
//   - Completed plans carry a result; failed plans carry a failure reason
//   - Can only be created through NewPlan or RestorePlan
//
// The Plan struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Plan struct {
	// id is the unique identifier for the plan
	id kernel.UUID

	// vehicles is the fleet available for the route (templates with empty cargo)
	vehicles []*vehicle.Vehicle

	// packages is the set of deliveries the route must serve
	packages []cargo.Package

	// status represents the current state in the plan lifecycle
	status Status

	// failureReason describes why solving failed (empty unless Failed)
	failureReason string

	// result holds the winning route (nil unless Completed)
	result *Result

	// isConstructed ensures the plan was created via a constructor
	isConstructed bool
}

// NewPlan creates a new Plan instance with validation. This is the only way
// to create a fresh Plan, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the plan (must be valid UUID)
//   - vehicles: Fleet available for the route (at least one, each valid)
//   - packages: Deliveries to serve (at least one, each valid)
//
// Returns:
//   - *Plan: The created plan in Queued status if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	planID := kernel.NewUUID()
//	plan, err := NewPlan(planID, vehicles, packages)
//	if err != nil {
//	    // Handle validation error
//	}
func NewPlan(id kernel.UUID, vehicles []*vehicle.Vehicle, packages []cargo.Package) (*Plan, error) {
	plan := &Plan{
		status:        Queued,
		isConstructed: true,
	}

	if err := errors.Join(
		plan.setID(id),
		plan.setVehicles(vehicles),
		plan.setPackages(packages),
	); err != nil {
		return nil, err
	}

	return plan, nil
}

// RestorePlan reconstructs a Plan from persisted state. Unlike NewPlan it
// accepts any valid status along with the failure reason and result that
// were stored with it.
//
// Returns:
//   - *Plan: The restored plan if all validations pass
//   - error: Validation error if any field is invalid
//
// This function is intended for repositories only; application code should
// create plans through NewPlan.
func RestorePlan(
	id kernel.UUID,
	vehicles []*vehicle.Vehicle,
	packages []cargo.Package,
	status Status,
	failureReason string,
	result *Result,
) (*Plan, error) {
	plan := &Plan{isConstructed: true}

	if err := errors.Join(
		plan.setID(id),
		plan.setVehicles(vehicles),
		plan.setPackages(packages),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	plan.status = status
	plan.failureReason = failureReason
	plan.result = result
	return plan, nil
}

// Validate ensures the Plan instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
//
// Returns:
//   - nil if the plan is valid
//   - ErrPlanIsNotConstructed if the plan was not created via a constructor
func (p *Plan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlanIsNotConstructed
	}

	return nil
}

// IsEqual compares two plans by their unique identifiers.
// Plans are considered equal if they have the same ID.
func (p *Plan) IsEqual(other *Plan) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the plan's unique identifier.
func (p *Plan) ID() kernel.UUID {
	return p.id
}

// Vehicles returns the fleet available for the route.
// The returned slice is a copy; mutating it does not affect the plan.
func (p *Plan) Vehicles() []*vehicle.Vehicle {
	vehicles := make([]*vehicle.Vehicle, len(p.vehicles))
	copy(vehicles, p.vehicles)
	return vehicles
}

// Packages returns the deliveries the route must serve.
// The returned slice is a copy; mutating it does not affect the plan.
func (p *Plan) Packages() []cargo.Package {
	packages := make([]cargo.Package, len(p.packages))
	copy(packages, p.packages)
	return packages
}

// Status returns the current status of the plan.
func (p *Plan) Status() Status {
	return p.status
}

// FailureReason returns why solving failed.
// Returns the empty string unless the plan is in Failed status.
func (p *Plan) FailureReason() string {
	return p.failureReason
}

// Result returns the winning route of a completed plan.
// Returns nil unless the plan is in Completed status.
func (p *Plan) Result() *Result {
	return p.result
}

// Complete records the winning route and moves the plan to Completed.
//
// This method enforces the following business rules:
//   - The candidate must be valid and complete
//   - The plan must be in Queued status
//   - Completed is a final state with no further transitions
//
// Parameters:
//   - best: The winning route candidate produced by the solver
//
// Returns:
//   - nil on successful completion
//   - error if the candidate is invalid or the transition is not allowed
//
// After successful completion Result() returns the stored route.
func (p *Plan) Complete(best *route.Candidate) error {
	if err := best.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.result = &Result{
		Vehicle:     best.Vehicle().Info(),
		Waypoints:   best.Waypoints(),
		RouteLength: best.Length(),
		FuelCost:    best.FuelCost(),
	}
	return nil
}

// Fail records the failure reason and moves the plan to Failed.
//
// This method enforces the following business rules:
//   - The reason must be non-empty
//   - The plan must be in Queued status
//   - Failed is a final state with no further transitions
//
// Parameters:
//   - reason: Human-readable explanation of why solving failed
//
// Returns:
//   - nil on successful transition
//   - error if the reason is empty or the transition is not allowed
func (p *Plan) Fail(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := p.status.Fail()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.failureReason = reason
	return nil
}

// setID validates and sets the plan's unique identifier.
// This is a private method used only during construction.
func (p *Plan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setVehicles validates and sets the plan's fleet.
// At least one valid vehicle is required.
// This is a private method used only during construction.
func (p *Plan) setVehicles(vehicles []*vehicle.Vehicle) error {
	if len(vehicles) == 0 {
		return errs.NewValueIsRequiredError("vehicles")
	}
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	p.vehicles = make([]*vehicle.Vehicle, len(vehicles))
	copy(p.vehicles, vehicles)
	return nil
}

// setPackages validates and sets the plan's deliveries.
// At least one valid package is required.
// This is a private method used only during construction.
func (p *Plan) setPackages(packages []cargo.Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}
	for _, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return err
		}
	}
	p.packages = make([]cargo.Package, len(packages))
	copy(p.packages, packages)
	return nil
}
