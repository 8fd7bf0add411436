package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fuelroute/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PlanSolverJob manages the scheduled solving of queued plans.
// Runs every second to pick up the oldest queued plan and solve it.
type PlanSolverJob struct {
	handler commands.SolveNextPlanCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPlanSolverJob creates a new job for solving queued plans.
// Uses SolveNextPlanCommandHandler to process one plan per tick.
func NewPlanSolverJob(handler commands.SolveNextPlanCommandHandler, logger *slog.Logger) *PlanSolverJob {
	return &PlanSolverJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "plan_solver_job"),
	}
}

// Start begins the plan solver job to run every second.
func (j *PlanSolverJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSolveNextPlanCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNoQueuedPlanFound) {
				j.logger.ErrorContext(ctx, "Plan solver job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Plan solver job started (running every second)")
	return nil
}

// Stop stops the plan solver job.
func (j *PlanSolverJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Plan solver job stopped")
}
