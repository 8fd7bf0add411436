package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
	"fuelroute/internal/pkg/errs"
)

// GetPlanQueryHandler retrieves plan state from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetPlanQueryHandler(db)
//	query, _ := NewGetPlanQuery(planID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get plan: %v", err)
//	    return err
//	}
//
//	if response.Result != nil {
//	    fmt.Printf("Fuel cost: %d\n", response.Result.FuelCost)
//	}
type GetPlanQueryHandler struct {
	db *gorm.DB
}

// NewGetPlanQueryHandler creates a handler for single-plan queries.
// Requires a GORM database connection for query execution.
func NewGetPlanQueryHandler(db *gorm.DB) GetPlanQueryHandler {
	return GetPlanQueryHandler{db: db}
}

// Handle executes the query to retrieve one plan.
// Returns the plan's status, its failure reason when failed, and the
// winning route when completed. Returns an object-not-found error when
// no plan with the requested identifier exists.
func (h GetPlanQueryHandler) Handle(
	ctx context.Context,
	query GetPlanQuery,
) (GetPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlanQueryResponse{}, err
	}

	var row struct {
		ID                    uuid.UUID
		Status                int
		FailureReason         string
		ResultCapacity        int
		ResultFuelConsumption int
		ResultRouteLength     int
		ResultFuelCost        int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			failure_reason,
			result_capacity,
			result_fuel_consumption,
			result_route_length,
			result_fuel_cost
		FROM plans
		WHERE id = ?
	`, query.PlanID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetPlanQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetPlanQueryResponse{}, errs.NewObjectNotFoundError("plan", query.PlanID().String())
	}

	planID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetPlanQueryResponse{}, err
	}

	response := GetPlanQueryResponse{
		ID:            planID,
		Status:        plan.Status(row.Status).String(),
		FailureReason: row.FailureReason,
	}

	if plan.Status(row.Status) != plan.Completed {
		return response, nil
	}

	waypoints, err := h.loadWaypoints(ctx, query.PlanID())
	if err != nil {
		return GetPlanQueryResponse{}, err
	}

	response.Result = &PlanResultResponse{
		Capacity:        row.ResultCapacity,
		FuelConsumption: row.ResultFuelConsumption,
		RouteLength:     row.ResultRouteLength,
		FuelCost:        row.ResultFuelCost,
		Waypoints:       waypoints,
	}
	return response, nil
}

// loadWaypoints reads the solved route of a completed plan in visit order.
func (h GetPlanQueryHandler) loadWaypoints(ctx context.Context, planID kernel.UUID) ([]WaypointResponse, error) {
	waypoints := make([]WaypointResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			coordinate,
			action
		FROM plan_waypoints
		WHERE plan_id = ?
		ORDER BY position
	`, planID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var waypoint WaypointResponse
		if err = rows.Scan(&waypoint.Coordinate, &waypoint.Action); err != nil {
			return nil, err
		}
		waypoints = append(waypoints, waypoint)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return waypoints, nil
}
