// Package ports defines repository interfaces for the routing domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
)

// PlanRepository defines the persistence contract for plan aggregates.
// Provides methods for storing, retrieving, and querying plan entities
// with their complete state including fleet, packages and results.
type PlanRepository interface {
	// Add persists a new plan aggregate to storage.
	// The plan must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *plan.Plan) error

	// Update persists changes to an existing plan aggregate.
	// The plan must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *plan.Plan) error

	// Get retrieves a plan aggregate by its unique identifier.
	// Returns the complete plan with its fleet, packages, status and result.
	Get(ctx context.Context, id kernel.UUID) (*plan.Plan, error)

	// GetFirstInQueuedStatus retrieves the oldest plan still waiting to be
	// solved. Used by the solver job to pick up pending work.
	GetFirstInQueuedStatus(ctx context.Context) (*plan.Plan, error)
}
