// Package vehicle provides the Vehicle entity of the route planning domain.
// A Vehicle is described by its carrying capacity and fuel consumption rate
// and holds the cargo it has picked up so far. During route expansion a
// vehicle is never mutated in place: loading and unloading return clones so
// that branching route candidates cannot alias each other's cargo state.
package vehicle
