package services

import (
	"errors"
	"sync"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/route"
	"fuelroute/internal/core/domain/model/vehicle"
	"fuelroute/internal/pkg/errs"
)

var (
	// ErrNoFeasibleVehicle is returned when no vehicle in the fleet can carry
	// the heaviest package on its own. Such a fleet can never serve the full
	// set of deliveries, so solving is rejected up front.
	ErrNoFeasibleVehicle = errors.New("no vehicle can carry the heaviest package")

	// ErrNoRoutesFound is returned when route expansion produced no complete
	// candidate for any feasible vehicle.
	ErrNoRoutesFound = errors.New("no routes found")
)

// RoutePlanner is a domain service responsible for finding the fuel-minimal
// route that picks up and delivers every package with a single vehicle.
//
// The planner enumerates routes exhaustively: every candidate route starts
// and ends at the depot, visits each pickup before its matching drop, and
// never exceeds the vehicle's capacity with the packages currently aboard.
// Among all complete routes of all feasible vehicles it selects the one with
// the lowest fuel cost.
//
// Key responsibilities:
//   - Translating packages into pickup and drop events
//   - Filtering the fleet down to vehicles that can carry every package
//   - Expanding candidate routes breadth-first under the legality rules
//   - Selecting the global fuel-cost minimum deterministically
//
// Business rules:
//   - A vehicle is feasible only if its capacity covers the heaviest package
//   - A pickup is legal only while the package fits next to the current cargo
//   - A drop is legal only while the package is aboard
//   - Ties are broken by first encounter: earlier vehicles in the fleet and
//     earlier-generated routes win
//
// Example usage:
//
//	planner := services.NewRoutePlanner()
//	best, err := planner.Solve(vehicles, packages)
//	if errors.Is(err, services.ErrNoFeasibleVehicle) {
//	    // The fleet cannot serve these packages
//	    return
//	}
//	if err != nil {
//	    // Handle solving failure
//	    return
//	}
//	// best.Waypoints() is the cheapest route, best.Vehicle() the chosen vehicle
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
//
// Returns:
//   - RoutePlanner: A new instance ready for solving
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// GenerateEvents translates packages into the event universe a route must
// cover: one pickup and one drop event per package, pickups first in input
// order, then drops in input order.
//
// Parameters:
//   - packages: The deliveries to translate (at least one required)
//
// Returns:
//   - []route.Event: 2N events for N packages
//   - error: Validation error if packages is empty or a package is invalid
func (p RoutePlanner) GenerateEvents(packages []cargo.Package) ([]route.Event, error) {
	if len(packages) == 0 {
		return nil, errs.NewValueIsRequiredError("packages")
	}

	events := make([]route.Event, 0, 2*len(packages))
	for _, pkg := range packages {
		pickup, err := route.NewPickupEvent(pkg)
		if err != nil {
			return nil, err
		}
		events = append(events, pickup)
	}
	for _, pkg := range packages {
		drop, err := route.NewDropEvent(pkg)
		if err != nil {
			return nil, err
		}
		events = append(events, drop)
	}
	return events, nil
}

// SuitableVehicles filters the fleet down to vehicles that can carry the
// heaviest package on its own. A vehicle whose capacity is below the
// heaviest package could never serve that delivery, no matter the route.
//
// Parameters:
//   - vehicles: The fleet to filter (at least one required)
//   - packages: The deliveries whose heaviest package sets the bar
//
// Returns:
//   - []*vehicle.Vehicle: Feasible vehicles in their original fleet order
//   - error: ErrNoFeasibleVehicle if the filter leaves nothing, or
//     validation errors for invalid inputs
//
// Note that this is a coarse filter: it guarantees every single package fits
// an empty feasible vehicle, which in turn guarantees a candidate route can
// always make progress by dropping everything aboard before the next pickup.
func (p RoutePlanner) SuitableVehicles(vehicles []*vehicle.Vehicle, packages []cargo.Package) ([]*vehicle.Vehicle, error) {
	if len(vehicles) == 0 {
		return nil, errs.NewValueIsRequiredError("vehicles")
	}
	if len(packages) == 0 {
		return nil, errs.NewValueIsRequiredError("packages")
	}

	heaviest := 0
	for _, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return nil, err
		}
		if pkg.Weight() > heaviest {
			heaviest = pkg.Weight()
		}
	}

	suitable := make([]*vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if v.Capacity() >= heaviest {
			suitable = append(suitable, v)
		}
	}

	if len(suitable) == 0 {
		return nil, ErrNoFeasibleVehicle
	}
	return suitable, nil
}

// ExpandRoutes enumerates every complete route the given vehicle can drive
// over the event universe.
//
// Expansion is breadth-first. The frontier is seeded with one candidate per
// pickup event: the vehicle leaves the depot and collects that package
// first. Each round every candidate branches into one successor per legal
// next event; a candidate with no legal next event is carried forward
// unchanged. After enough rounds to cover the whole universe, every
// candidate returns to the depot.
//
// Parameters:
//   - v: The vehicle driving the routes (must be valid with empty cargo)
//   - events: The event universe from GenerateEvents
//
// Returns:
//   - []*route.Candidate: All complete routes, in generation order
//   - error: Validation error if the vehicle or universe is invalid
func (p RoutePlanner) ExpandRoutes(v *vehicle.Vehicle, events []route.Event) ([]*route.Candidate, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredError("events")
	}

	base, err := route.NewCandidate(v, []route.Event{route.NewStartEvent()}, events)
	if err != nil {
		return nil, err
	}

	frontier := make([]*route.Candidate, 0, len(events)/2)
	for _, ev := range events {
		if !ev.IsPickup() {
			continue
		}
		seed, err := base.Extend(ev)
		if err != nil {
			return nil, err
		}
		frontier = append(frontier, seed)
	}

	// Every seed has one of the events behind it already.
	for round := 0; round < len(events)-1; round++ {
		next := make([]*route.Candidate, 0, len(frontier))
		for _, candidate := range frontier {
			legal := candidate.LegalNextEvents()
			if len(legal) == 0 {
				next = append(next, candidate)
				continue
			}
			for _, ev := range legal {
				extended, err := candidate.Extend(ev)
				if err != nil {
					return nil, err
				}
				next = append(next, extended)
			}
		}
		frontier = next
	}

	routes := make([]*route.Candidate, 0, len(frontier))
	for _, candidate := range frontier {
		finished, err := candidate.Extend(route.NewEndEvent())
		if err != nil {
			return nil, err
		}
		routes = append(routes, finished)
	}
	return routes, nil
}

// Solve finds the fuel-minimal complete route over the whole fleet.
//
// Feasible vehicles are expanded concurrently, one worker per vehicle, and
// their per-vehicle minima are then compared sequentially in fleet order so
// the result does not depend on goroutine scheduling.
//
// Parameters:
//   - vehicles: The fleet to choose from (at least one required)
//   - packages: The deliveries the route must serve (at least one required)
//
// Returns:
//   - *route.Candidate: The cheapest complete route; its Vehicle() is the
//     chosen vehicle and its Waypoints() the route
//   - error: ErrNoFeasibleVehicle if no vehicle can carry the heaviest
//     package, ErrNoRoutesFound if expansion produced nothing, or other
//     validation errors
//
// Selection criteria:
//   - Minimum fuel cost across all complete routes of all feasible vehicles
//   - On a tie, the earlier vehicle in the fleet wins, then the
//     earlier-generated route for that vehicle
func (p RoutePlanner) Solve(vehicles []*vehicle.Vehicle, packages []cargo.Package) (*route.Candidate, error) {
	events, err := p.GenerateEvents(packages)
	if err != nil {
		return nil, err
	}

	suitable, err := p.SuitableVehicles(vehicles, packages)
	if err != nil {
		return nil, err
	}

	bests := make([]*route.Candidate, len(suitable))
	failures := make([]error, len(suitable))

	var wg sync.WaitGroup
	for i, v := range suitable {
		wg.Add(1)
		go func(i int, v *vehicle.Vehicle) {
			defer wg.Done()
			routes, expandErr := p.ExpandRoutes(v, events)
			if expandErr != nil {
				failures[i] = expandErr
				return
			}
			bests[i] = cheapestRoute(routes)
		}(i, v)
	}
	wg.Wait()

	if err := errors.Join(failures...); err != nil {
		return nil, err
	}

	best := cheapestRoute(bests)
	if best == nil {
		return nil, ErrNoRoutesFound
	}
	return best, nil
}

// cheapestRoute returns the candidate with the strictly lowest fuel cost,
// keeping the first one on ties. Nil entries are skipped.
func cheapestRoute(routes []*route.Candidate) *route.Candidate {
	var best *route.Candidate
	for _, candidate := range routes {
		if candidate == nil {
			continue
		}
		if best == nil || candidate.FuelCost() < best.FuelCost() {
			best = candidate
		}
	}
	return best
}
