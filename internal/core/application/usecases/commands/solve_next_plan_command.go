package commands

import (
	"errors"

	"fuelroute/internal/pkg/guard"
)

var ErrSolveNextPlanCommandIsNotConstructed = errors.New(
	"SolveNextPlanCommand must be created via NewSolveNextPlanCommand constructor",
)

// SolveNextPlanCommand triggers solving of the oldest queued plan.
// This command represents the business operation of turning a queued request
// into a completed route (or a failed plan when the fleet cannot serve it).
//
// Example:
//
//	cmd := NewSolveNextPlanCommand()
//	handler := NewSolveNextPlanCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoQueuedPlanFound) {
//	    log.Println("Nothing to solve")
//	}
type SolveNextPlanCommand struct {
	guard guard.ConstructorGuard
}

// NewSolveNextPlanCommand creates a new command to trigger plan solving.
// This is a parameterless command that picks up the oldest queued plan.
func NewSolveNextPlanCommand() SolveNextPlanCommand {
	return SolveNextPlanCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSolveNextPlanCommandIsNotConstructed if validation fails.
func (c *SolveNextPlanCommand) Validate() error {
	return c.guard.Validate(
		ErrSolveNextPlanCommandIsNotConstructed,
	)
}
