package queries

import (
	"errors"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/pkg/guard"
)

var ErrGetQueuedPlansQueryIsNotConstructed = errors.New(
	"GetQueuedPlansQuery must be created via NewGetQueuedPlansQuery constructor",
)

// GetQueuedPlansQuery retrieves all plans still waiting to be solved.
// Returns plans in "Queued" status for monitoring the solver backlog.
//
// Example:
//
//	query := NewGetQueuedPlansQuery()
//	handler := NewGetQueuedPlansQueryHandler(db)
//
//	plans, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get queued plans: %w", err)
//	}
//
//	fmt.Printf("Found %d plans awaiting solving\n", len(plans))
type GetQueuedPlansQuery struct {
	guard guard.ConstructorGuard
}

// NewGetQueuedPlansQuery creates a query to retrieve the solver backlog.
// This is a parameterless query that fetches all queued plans.
func NewGetQueuedPlansQuery() GetQueuedPlansQuery {
	return GetQueuedPlansQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQueuedPlansQueryIsNotConstructed if validation fails.
func (q GetQueuedPlansQuery) Validate() error {
	return q.guard.Validate(ErrGetQueuedPlansQueryIsNotConstructed)
}

// GetQueuedPlansQueryResponse represents one plan of the solver backlog.
// Contains the request size for quick workload inspection.
type GetQueuedPlansQueryResponse struct {
	ID           kernel.UUID
	VehicleCount int
	PackageCount int
}
