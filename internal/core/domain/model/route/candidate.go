package route

import (
	"errors"

	"fuelroute/internal/core/domain/model/vehicle"
)

// Domain errors for candidate operations.
var (
	// ErrCandidateIsNotConstructed is returned when using an improperly initialized Candidate.
	ErrCandidateIsNotConstructed = errors.New("Candidate must be created via NewCandidate constructor")
	// ErrVisitedIsRequired is returned when constructing a candidate with no visited events.
	ErrVisitedIsRequired = errors.New("candidate requires at least one visited event")
)

// Candidate represents one partial or complete visiting order under
// consideration during route expansion: the ordered sequence of events
// visited so far, the vehicle state those visits imply, and a reference to
// the full event universe of the package set.
//
// Candidates are immutable. Branching never modifies a parent: Extend
// produces a child with its own visited sequence and its own vehicle cargo
// snapshot, while the universe is shared read-only by every candidate of a
// search. This exclusive ownership of mutable state is what makes per-round
// branching safe to run without any locking.
//
// Lifetime: candidates are created during expansion and either survive to
// selection as finalized routes or are dropped with their branch.
type Candidate struct {
	vehicle  *vehicle.Vehicle
	visited  []Event
	universe []Event
}

// NewCandidate creates a candidate from a vehicle snapshot, the events
// visited so far, and the shared event universe.
//
// The visited slice is copied so the candidate owns its sequence; the
// universe is kept by reference since it is read-only for the whole search.
//
// Returns:
//   - *Candidate: The constructed candidate
//   - error: Validation error if the vehicle is invalid or visited is empty
func NewCandidate(v *vehicle.Vehicle, visited, universe []Event) (*Candidate, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if len(visited) == 0 {
		return nil, ErrVisitedIsRequired
	}

	visitedCopy := make([]Event, len(visited))
	copy(visitedCopy, visited)

	return &Candidate{
		vehicle:  v,
		visited:  visitedCopy,
		universe: universe,
	}, nil
}

// Validate checks if the Candidate was properly constructed via NewCandidate.
func (c *Candidate) Validate() error {
	if c == nil || c.vehicle == nil || len(c.visited) == 0 {
		return ErrCandidateIsNotConstructed
	}
	return nil
}

// Vehicle returns the vehicle state implied by the visits so far.
func (c *Candidate) Vehicle() *vehicle.Vehicle {
	return c.vehicle
}

// Visited returns the ordered sequence of events visited so far.
// The returned slice is a copy to prevent external modification.
func (c *Candidate) Visited() []Event {
	out := make([]Event, len(c.visited))
	copy(out, c.visited)
	return out
}

// Available returns the universe events not yet present in the visited
// sequence. Membership uses event equality (coordinate, kind, and package
// identity), not sequence position.
func (c *Candidate) Available() []Event {
	available := make([]Event, 0, len(c.universe))
	for _, ev := range c.universe {
		if !c.hasVisited(ev) {
			available = append(available, ev)
		}
	}
	return available
}

// LegalNextEvents returns every available event the vehicle may lawfully
// visit next:
//   - a Pickup is legal iff the vehicle does not already carry the package
//     and the package fits alongside the current cargo (the weight check
//     ignores future drops)
//   - a Drop is legal iff the vehicle currently carries the package
//
// Start and End events are never offered; they are handled outside normal
// branching as the initial seed and the final append. No ordering is defined
// among multiple legal events; the expansion explores all of them.
func (c *Candidate) LegalNextEvents() []Event {
	legal := make([]Event, 0, len(c.universe))

	for _, ev := range c.Available() {
		pkg, ok := ev.Package()
		if !ok {
			continue
		}

		switch {
		case ev.IsPickup():
			if !c.vehicle.Carries(pkg) && c.vehicle.CanFit(pkg) {
				legal = append(legal, ev)
			}
		case ev.IsDrop():
			if c.vehicle.Carries(pkg) {
				legal = append(legal, ev)
			}
		}
	}

	return legal
}

// Extend returns a child candidate with the event appended to the visited
// sequence and the vehicle cargo adjusted: loaded for a Pickup, unloaded for
// a Drop, unchanged for Start and End. The receiver is left untouched, so
// many children can branch from one parent without aliasing.
//
// Extend does not re-check legality; the expansion engine branches only over
// LegalNextEvents, and the unconditional End append at finalization relies
// on this.
func (c *Candidate) Extend(ev Event) (*Candidate, error) {
	v := c.vehicle

	if pkg, ok := ev.Package(); ok {
		var err error
		switch {
		case ev.IsPickup():
			v, err = c.vehicle.Load(pkg)
		case ev.IsDrop():
			v, err = c.vehicle.Unload(pkg)
		}
		if err != nil {
			return nil, err
		}
	}

	visited := make([]Event, 0, len(c.visited)+1)
	visited = append(visited, c.visited...)
	visited = append(visited, ev)

	return &Candidate{
		vehicle:  v,
		visited:  visited,
		universe: c.universe,
	}, nil
}

// IsComplete reports whether every universe event has been visited.
func (c *Candidate) IsComplete() bool {
	return len(c.Available()) == 0
}

// Length returns the route length: the sum of absolute coordinate
// differences between each consecutive pair of visited events. It is zero
// for a single visited event or when all visited coordinates coincide.
func (c *Candidate) Length() int {
	length := 0
	for i := 1; i < len(c.visited); i++ {
		length += c.visited[i-1].Coordinate().DistanceTo(c.visited[i].Coordinate())
	}
	return length
}

// FuelCost returns the fuel spent on the route: its length multiplied by
// the vehicle's fuel consumption rate.
func (c *Candidate) FuelCost() int {
	return c.Length() * c.vehicle.FuelConsumption()
}

// Waypoints returns the visited sequence as (coordinate, action) pairs in
// visiting order. This is the shape routes are reported in.
func (c *Candidate) Waypoints() []Waypoint {
	waypoints := make([]Waypoint, len(c.visited))
	for i, ev := range c.visited {
		waypoints[i] = ev.Waypoint()
	}
	return waypoints
}

// hasVisited reports whether an equal event is already in the visited sequence.
func (c *Candidate) hasVisited(ev Event) bool {
	for _, visited := range c.visited {
		if visited.IsEqual(ev) {
			return true
		}
	}
	return false
}
