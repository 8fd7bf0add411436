package route

import (
	"fmt"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/kernel"
)

// Event represents a point in a route where an action occurs. It pairs a
// coordinate on the delivery axis with the kind of action performed there
// and, for pickups and drops, the package acted upon.
//
// Events are immutable value objects. The full set of events derivable from
// a package list (its universe) is generated once and shared read-only by
// every route candidate, so events are safe to hold by value anywhere.
//
// Two events are equal iff coordinate, kind, and package identity all match;
// package identity follows the by-id rule of cargo.Package.
type Event struct {
	coordinate kernel.Coordinate
	kind       Kind
	// pkg is meaningful only for Pickup and Drop events
	pkg        cargo.Package
	hasPackage bool
}

// NewStartEvent creates the synthetic route origin at the depot.
// Start events carry no package.
func NewStartEvent() Event {
	return Event{coordinate: kernel.Depot, kind: Start}
}

// NewEndEvent creates the synthetic route terminus at the depot.
// End events carry no package.
func NewEndEvent() Event {
	return Event{coordinate: kernel.Depot, kind: End}
}

// NewPickupEvent creates the pickup event of a package, located at the
// package's pickup coordinate.
func NewPickupEvent(pkg cargo.Package) (Event, error) {
	if err := pkg.Validate(); err != nil {
		return Event{}, err
	}

	return Event{coordinate: pkg.Pickup(), kind: Pickup, pkg: pkg, hasPackage: true}, nil
}

// NewDropEvent creates the drop event of a package, located at the
// package's drop coordinate.
func NewDropEvent(pkg cargo.Package) (Event, error) {
	if err := pkg.Validate(); err != nil {
		return Event{}, err
	}

	return Event{coordinate: pkg.Drop(), kind: Drop, pkg: pkg, hasPackage: true}, nil
}

// Coordinate returns the position of the event on the delivery axis.
func (e Event) Coordinate() kernel.Coordinate {
	return e.coordinate
}

// Kind returns the action performed at the event.
func (e Event) Kind() Kind {
	return e.kind
}

// Package returns the package acted upon and whether the event carries one.
// Start and End events carry no package.
func (e Event) Package() (cargo.Package, bool) {
	return e.pkg, e.hasPackage
}

// IsPickup reports whether the event collects a package.
func (e Event) IsPickup() bool {
	return e.kind == Pickup
}

// IsDrop reports whether the event delivers a package.
func (e Event) IsDrop() bool {
	return e.kind == Drop
}

// IsEqual compares two events for equality.
// Events are equal iff coordinate, kind, and package identity all match.
// Package identity follows cargo.Package's by-id rule, so a pickup event
// built from a package value with the same id compares equal regardless of
// the other package fields.
func (e Event) IsEqual(other Event) bool {
	if e.coordinate != other.coordinate || e.kind != other.kind {
		return false
	}
	if e.hasPackage != other.hasPackage {
		return false
	}
	if !e.hasPackage {
		return true
	}
	return e.pkg.IsEqual(other.pkg)
}

// String returns a human-readable representation of the event.
// This method implements the fmt.Stringer interface.
func (e Event) String() string {
	if e.hasPackage {
		return fmt.Sprintf("Event(%s package %d at %d)", e.kind, e.pkg.ID(), int(e.coordinate))
	}
	return fmt.Sprintf("Event(%s at %d)", e.kind, int(e.coordinate))
}

// Waypoint is the read shape of a visited event: the coordinate and the
// action label performed there. Routes are reported to callers as ordered
// waypoint sequences.
type Waypoint struct {
	Coordinate kernel.Coordinate
	Action     string
}

// Waypoint returns the event as a waypoint.
func (e Event) Waypoint() Waypoint {
	return Waypoint{
		Coordinate: e.coordinate,
		Action:     e.kind.String(),
	}
}
