// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return read models, bypassing the
// domain aggregates entirely.
package queries

import (
	"errors"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/pkg/guard"
)

var ErrGetPlanQueryIsNotConstructed = errors.New(
	"GetPlanQuery must be created via NewGetPlanQuery constructor",
)

// GetPlanQuery retrieves a single plan with its current status and,
// for completed plans, the winning route.
//
// Example:
//
//	query, err := NewGetPlanQuery(planID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPlanQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get plan: %w", err)
//	}
//	fmt.Printf("Plan %s is %s\n", response.ID, response.Status)
type GetPlanQuery struct {
	planID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPlanQuery creates a query to retrieve one plan by its identifier.
// Returns an error if the identifier is invalid.
func NewGetPlanQuery(planID kernel.UUID) (GetPlanQuery, error) {
	if err := planID.Validate(); err != nil {
		return GetPlanQuery{}, err
	}

	return GetPlanQuery{
		planID: planID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlanQueryIsNotConstructed if validation fails.
func (q GetPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetPlanQueryIsNotConstructed)
}

// PlanID returns the identifier of the plan to retrieve.
func (q GetPlanQuery) PlanID() kernel.UUID {
	return q.planID
}

// WaypointResponse represents one stop of a solved route.
type WaypointResponse struct {
	Coordinate int
	Action     string
}

// PlanResultResponse represents the winning route of a completed plan.
type PlanResultResponse struct {
	Capacity        int
	FuelConsumption int
	RouteLength     int
	FuelCost        int
	Waypoints       []WaypointResponse
}

// GetPlanQueryResponse represents the current state of a plan.
// Result is nil unless the plan has completed; FailureReason is empty
// unless it has failed.
type GetPlanQueryResponse struct {
	ID            kernel.UUID
	Status        string
	FailureReason string
	Result        *PlanResultResponse
}
