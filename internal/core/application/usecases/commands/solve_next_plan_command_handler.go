package commands

import (
	"context"
	"errors"

	"fuelroute/internal/core/domain/services"
	"fuelroute/internal/pkg/errs"
)

var ErrNoQueuedPlanFound = errors.New("no queued plan found")

// SolveNextPlanCommandHandler orchestrates the solving of queued plans.
// Picks up the oldest queued plan, runs the route planner over its fleet and
// packages, and records either the winning route or the failure reason.
//
// Example:
//
//	handler := NewSolveNextPlanCommandHandler(uowFactory)
//	cmd := NewSolveNextPlanCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoQueuedPlanFound):
//	    log.Println("No pending plans")
//	case err != nil:
//	    log.Printf("Solving failed: %v", err)
//	default:
//	    log.Println("Plan solved")
//	}
type SolveNextPlanCommandHandler struct {
	uowFactory PlanUoWFactory
}

// NewSolveNextPlanCommandHandler creates a handler for plan solving operations.
// Requires a PlanUoWFactory for transactional persistence.
func NewSolveNextPlanCommandHandler(uowFactory PlanUoWFactory) SolveNextPlanCommandHandler {
	return SolveNextPlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan solving command.
// Retrieves the oldest queued plan and runs the route planner. An infeasible
// fleet moves the plan to Failed with the planner's reason; a successful
// solve moves it to Completed with the winning route. Both outcomes are
// persisted within a single transaction. Returns ErrNoQueuedPlanFound when
// the queue is empty.
func (h SolveNextPlanCommandHandler) Handle(ctx context.Context, command SolveNextPlanCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	planRepo := uow.PlanRepository()

	aggregate, err := planRepo.GetFirstInQueuedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoQueuedPlanFound
	}
	if err != nil {
		return err
	}

	planner := services.NewRoutePlanner()
	best, err := planner.Solve(aggregate.Vehicles(), aggregate.Packages())
	switch {
	case errors.Is(err, services.ErrNoFeasibleVehicle) || errors.Is(err, services.ErrNoRoutesFound):
		if err = aggregate.Fail(err.Error()); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = aggregate.Complete(best); err != nil {
			return err
		}
	}

	if err = planRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
