package http

import (
	"errors"
	"net/http"

	"fuelroute/internal/core/application/usecases/commands"
	"fuelroute/internal/core/application/usecases/queries"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/generated/servers"
	"fuelroute/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPlanHandler commands.CreatePlanCommandHandler

	// Query handlers
	getPlanHandler        queries.GetPlanQueryHandler
	getQueuedPlansHandler queries.GetQueuedPlansQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPlanHandler commands.CreatePlanCommandHandler,
	getPlanHandler queries.GetPlanQueryHandler,
	getQueuedPlansHandler queries.GetQueuedPlansQueryHandler,
) *Server {
	return &Server{
		createPlanHandler:     createPlanHandler,
		getPlanHandler:        getPlanHandler,
		getQueuedPlansHandler: getQueuedPlansHandler,
	}
}

// CreatePlan handles POST /api/v1/plans - queues a new route planning request.
func (s *Server) CreatePlan(ctx echo.Context) error {
	var newPlan servers.NewPlan
	if err := ctx.Bind(&newPlan); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vehicles := make([]commands.VehicleSpec, len(newPlan.Vehicles))
	for i, v := range newPlan.Vehicles {
		vehicles[i] = commands.VehicleSpec{
			Capacity:        v.Capacity,
			FuelConsumption: v.FuelConsumption,
		}
	}

	packages := make([]commands.PackageSpec, len(newPlan.Packages))
	for i, p := range newPlan.Packages {
		packages[i] = commands.PackageSpec{
			Pickup: p.Pickup,
			Drop:   p.Drop,
			Weight: p.Weight,
		}
	}

	planID := kernel.NewUUID()
	cmd, err := commands.NewCreatePlanCommand(planID, vehicles, packages)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan data: " + err.Error(),
		})
	}

	if handleErr := s.createPlanHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to create plan: " + handleErr.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, servers.Plan{
		Id:     planID.Bytes(),
		Status: servers.Queued,
	})
}

// GetPlan handles GET /api/v1/plans/{planId} - retrieves a plan with its outcome.
func (s *Server) GetPlan(ctx echo.Context, planId openapi_types.UUID) error {
	planID, err := kernel.UUIDFromString(planId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan ID",
		})
	}

	query, err := queries.NewGetPlanQuery(planID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan ID",
		})
	}

	plan, err := s.getPlanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Plan not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve plan",
		})
	}

	response := servers.Plan{
		Id:     plan.ID.Bytes(),
		Status: servers.PlanStatus(plan.Status),
	}
	if plan.FailureReason != "" {
		response.FailureReason = &plan.FailureReason
	}
	if plan.Result != nil {
		waypoints := make([]servers.Waypoint, len(plan.Result.Waypoints))
		for i, wp := range plan.Result.Waypoints {
			waypoints[i] = servers.Waypoint{
				Coordinate: wp.Coordinate,
				Action:     servers.WaypointAction(wp.Action),
			}
		}
		response.Result = &servers.PlanResult{
			Capacity:        plan.Result.Capacity,
			FuelConsumption: plan.Result.FuelConsumption,
			RouteLength:     plan.Result.RouteLength,
			FuelCost:        plan.Result.FuelCost,
			Waypoints:       waypoints,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetQueuedPlans handles GET /api/v1/plans/queued - lists plans awaiting solving.
func (s *Server) GetQueuedPlans(ctx echo.Context) error {
	query := queries.NewGetQueuedPlansQuery()

	plans, err := s.getQueuedPlansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve queued plans",
		})
	}

	response := make([]servers.QueuedPlan, len(plans))
	for i, plan := range plans {
		response[i] = servers.QueuedPlan{
			Id:           plan.ID.Bytes(),
			VehicleCount: plan.VehicleCount,
			PackageCount: plan.PackageCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
