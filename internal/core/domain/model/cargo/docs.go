// Package cargo provides the Package value object of the route planning domain.
// A Package describes one delivery item: where it is picked up, where it is
// dropped, and how much it weighs. Packages are immutable after construction
// and compare by identity only, so two packages that happen to share pickup,
// drop, and weight are still distinct deliveries.
package cargo
