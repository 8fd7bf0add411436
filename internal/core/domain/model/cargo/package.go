package cargo

import (
	"errors"
	"fmt"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/pkg/errs"
)

// Domain errors for package construction.
var (
	// ErrPackageIsNotConstructed is returned when using an improperly initialized Package.
	ErrPackageIsNotConstructed = errs.NewValueIsRequiredError(
		"package must be created via NewPackage constructor")
	// ErrSamePickupAndDrop is returned when pickup and drop coordinates coincide.
	ErrSamePickupAndDrop = errs.NewValueIsInvalidError("pickup and drop locations cannot be the same")
)

// Package represents a single delivery item on the one-dimensional axis.
// It is an immutable value object: once constructed, its pickup point, drop
// point, and weight never change.
//
// Equality between packages is defined by id only. A vehicle that carries
// package 2 carries it regardless of which copy of the value it holds, and
// distinct packages with identical coordinates and weight never compare equal.
//
// Invariants:
//   - weight is positive
//   - pickup and drop coordinates differ
//
// Example:
//
//	pkg, err := cargo.NewPackage(0, -1, 5, 4)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pkg.Weight()) // Output: 4
type Package struct { //nolint:recvcheck //using for validation
	id     int
	pickup kernel.Coordinate
	drop   kernel.Coordinate
	weight int

	isConstructed bool
}

// NewPackage creates a Package with the given identity, coordinates, and weight.
//
// Parameters:
//   - id: Caller-assigned identity; the solver assigns ids by input position
//   - pickup: Coordinate where the package is collected
//   - drop: Coordinate where the package is delivered (must differ from pickup)
//   - weight: Package weight (must be positive)
//
// Returns:
//   - Package: A valid immutable package
//   - error: Validation error if weight is non-positive or pickup equals drop
func NewPackage(id int, pickup, drop kernel.Coordinate, weight int) (Package, error) {
	pkg := Package{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setLocations(pickup, drop),
		pkg.setWeight(weight),
	); err != nil {
		return Package{}, err
	}

	return pkg, nil
}

// Validate checks if the Package was properly constructed via NewPackage.
// The zero value of Package is invalid and fails this validation.
func (p Package) Validate() error {
	if !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the caller-assigned identity of the package.
func (p Package) ID() int {
	return p.id
}

// Pickup returns the coordinate where the package is collected.
func (p Package) Pickup() kernel.Coordinate {
	return p.pickup
}

// Drop returns the coordinate where the package is delivered.
func (p Package) Drop() kernel.Coordinate {
	return p.drop
}

// Weight returns the package weight.
// The weight is guaranteed to be positive for properly constructed packages.
func (p Package) Weight() int {
	return p.weight
}

// IsEqual compares two packages by identity.
// Two packages are the same package iff they share an id; coordinates and
// weight do not participate in the comparison. Comparison against anything
// that is not a Package is excluded statically by the signature.
//
// Example:
//
//	a, _ := cargo.NewPackage(1, -1, 5, 4)
//	b, _ := cargo.NewPackage(1, 6, 2, 9) // same id, different fields
//	fmt.Println(a.IsEqual(b)) // Output: true
func (p Package) IsEqual(other Package) bool {
	return p.id == other.id
}

// String returns a human-readable representation of the package.
// This method implements the fmt.Stringer interface.
func (p Package) String() string {
	return fmt.Sprintf("Package(%d: %d->%d, weight %d)", p.id, int(p.pickup), int(p.drop), p.weight)
}

// setLocations sets the pickup and drop coordinates with validation.
// We intentionally use pointer receivers for these private setters to enable
// self-encapsulated validation during construction, while the public API keeps
// value receivers.
func (p *Package) setLocations(pickup, drop kernel.Coordinate) error {
	if pickup == drop {
		return ErrSamePickupAndDrop
	}

	p.pickup = pickup
	p.drop = drop
	return nil
}

// setWeight sets the weight with validation.
func (p *Package) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weight))
	}

	p.weight = weight
	return nil
}
