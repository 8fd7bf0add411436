package vehicle

import (
	"errors"
	"fmt"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/pkg/errs"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrPackageNotCarried is returned when unloading a package the vehicle does not carry.
	ErrPackageNotCarried = errors.New("package is not carried by the vehicle")
)

// Info is the identifying pair of a vehicle: its capacity and its fuel
// consumption rate. It is the shape in which the winning vehicle is reported
// to callers of the planner.
type Info struct {
	Capacity        int
	FuelConsumption int
}

// Vehicle represents a delivery vehicle considered by the route planner.
//
// Key responsibilities:
//   - Tracking the cargo currently aboard and its total weight
//   - Answering capacity questions (CanFit) against the current cargo
//   - Answering identity questions about carried packages (Carries)
//
// Business rules:
//   - Capacity and fuel consumption must be positive
//   - The weight check ignores future drops: a package that does not fit
//     alongside the current cargo cannot be picked up, even if another
//     package will be dropped sooner
//   - Load and Unload clone the vehicle rather than mutating it, so sibling
//     route candidates branched from the same parent never share cargo state
//
// Example usage:
//
//	v, err := vehicle.NewVehicle(9, 8)
//	if err != nil {
//	    // Handle construction error
//	}
//	loaded, _ := v.Load(pkg)  // v itself is unchanged
type Vehicle struct {
	// capacity is the maximum total cargo weight carryable at once
	capacity int
	// fuelConsumption is the fuel cost per unit distance traveled
	fuelConsumption int
	// cargo holds the packages currently aboard
	cargo []cargo.Package
	// isConstructed ensures the vehicle was created via a constructor
	isConstructed bool
}

// NewVehicle creates a Vehicle with empty cargo.
//
// Parameters:
//   - capacity: Maximum total cargo weight (must be positive)
//   - fuelConsumption: Fuel cost per unit distance (must be positive)
//
// Returns:
//   - *Vehicle: A vehicle ready for route expansion
//   - error: Validation error if either parameter is non-positive
func NewVehicle(capacity, fuelConsumption int) (*Vehicle, error) {
	v := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setCapacity(capacity),
		v.setFuelConsumption(fuelConsumption),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks if the Vehicle was properly constructed via NewVehicle.
// The zero value of Vehicle is invalid and fails this validation.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// Capacity returns the maximum total cargo weight the vehicle can carry at once.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// FuelConsumption returns the fuel cost per unit distance traveled.
func (v *Vehicle) FuelConsumption() int {
	return v.fuelConsumption
}

// Info returns the identifying capacity/fuel pair of the vehicle.
func (v *Vehicle) Info() Info {
	return Info{
		Capacity:        v.capacity,
		FuelConsumption: v.fuelConsumption,
	}
}

// Cargo returns the packages currently aboard.
// The returned slice is a copy to prevent external modification.
func (v *Vehicle) Cargo() []cargo.Package {
	out := make([]cargo.Package, len(v.cargo))
	copy(out, v.cargo)
	return out
}

// CurrentWeight returns the total weight of the cargo currently aboard.
func (v *Vehicle) CurrentWeight() int {
	weight := 0
	for _, pkg := range v.cargo {
		weight += pkg.Weight()
	}
	return weight
}

// CanFit reports whether the package fits alongside the current cargo.
// The check is against the cargo aboard right now; packages that will be
// dropped later in the route do not free up capacity for this check.
func (v *Vehicle) CanFit(pkg cargo.Package) bool {
	return v.CurrentWeight()+pkg.Weight() <= v.capacity
}

// Carries reports whether the package (by id) is currently aboard.
func (v *Vehicle) Carries(pkg cargo.Package) bool {
	for _, carried := range v.cargo {
		if carried.IsEqual(pkg) {
			return true
		}
	}
	return false
}

// Load returns a clone of the vehicle with the package added to its cargo.
// The receiver is left untouched, which is what lets many route candidates
// branch from one parent without aliasing. Load does not check CanFit; the
// legality of a pickup is decided by the route candidate before branching.
//
// Returns:
//   - *Vehicle: A new vehicle carrying the package in addition to the receiver's cargo
//   - error: Validation error if the package was not properly constructed
func (v *Vehicle) Load(pkg cargo.Package) (*Vehicle, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	clone := v.clone()
	clone.cargo = append(clone.cargo, pkg)
	return clone, nil
}

// Unload returns a clone of the vehicle with the package (matched by id)
// removed from its cargo. The receiver is left untouched.
//
// Returns:
//   - *Vehicle: A new vehicle without the package
//   - error: ErrPackageNotCarried if the package is not aboard
func (v *Vehicle) Unload(pkg cargo.Package) (*Vehicle, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	for i, carried := range v.cargo {
		if carried.IsEqual(pkg) {
			clone := v.clone()
			clone.cargo = append(clone.cargo[:i:i], clone.cargo[i+1:]...)
			return clone, nil
		}
	}

	return nil, ErrPackageNotCarried
}

// String returns a human-readable representation of the vehicle.
// This method implements the fmt.Stringer interface.
func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle(capacity %d, fuel %d, carrying %d)",
		v.capacity, v.fuelConsumption, len(v.cargo))
}

// clone returns a deep copy of the vehicle with its own cargo slice.
func (v *Vehicle) clone() *Vehicle {
	cargoCopy := make([]cargo.Package, len(v.cargo))
	copy(cargoCopy, v.cargo)

	return &Vehicle{
		capacity:        v.capacity,
		fuelConsumption: v.fuelConsumption,
		cargo:           cargoCopy,
		isConstructed:   true,
	}
}

// setCapacity sets the capacity with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}

	v.capacity = capacity
	return nil
}

// setFuelConsumption sets the fuel consumption rate with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setFuelConsumption(fuelConsumption int) error {
	if fuelConsumption <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("fuel consumption",
			fmt.Errorf("%d is not greater than 0", fuelConsumption))
	}

	v.fuelConsumption = fuelConsumption
	return nil
}
