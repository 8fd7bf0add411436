// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the routing system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: A domain service for finding the fuel-minimal pickup and
//     delivery route over a fleet of candidate vehicles
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
