// Package jobs provides scheduled background tasks for the route planning system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the planning service.
//
// # Available Jobs
//
// 1. PlanSolverJob - Runs every second to pick the oldest queued plan and solve it
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(solveNextPlanHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The solver job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the queue drain latency low while still
// solving plans one at a time.
//
// # Error Handling
//
// - The solver job ignores the expected empty-queue case (ErrNoQueuedPlanFound)
// - Any other error is logged as it indicates a system issue
// - Failed job starts will stop any already running jobs
package jobs
