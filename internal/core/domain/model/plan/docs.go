// Package plan provides the Plan aggregate root for route planning requests.
// A Plan captures the fleet and the packages a client wants routed, tracks
// the solving lifecycle, and stores the winning route once solving finishes.
//
// The package includes:
//   - Plan: The aggregate root holding the request, its status and its result
//   - Status: A state machine that enforces valid plan status transitions
//   - Result: The solved route with its vehicle, waypoints and fuel cost
//
// Key business rules:
//   - Plans must have a valid unique identifier, at least one vehicle and
//     at least one package
//   - Plan status follows a defined workflow: Queued -> Completed | Failed
//   - Completed plans carry a Result; failed plans carry a failure reason
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package plan
