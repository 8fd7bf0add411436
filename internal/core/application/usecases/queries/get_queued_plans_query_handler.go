package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
)

// GetQueuedPlansQueryHandler retrieves the solver backlog from the database.
// Filters out completed and failed plans to provide pending workload visibility.
//
// Example:
//
//	handler := NewGetQueuedPlansQueryHandler(db)
//	query := NewGetQueuedPlansQuery()
//
//	queuedPlans, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get queued plans: %v", err)
//	    return err
//	}
//
//	if len(queuedPlans) > 0 {
//	    fmt.Printf("%d plans awaiting solving\n", len(queuedPlans))
//	}
type GetQueuedPlansQueryHandler struct {
	db *gorm.DB
}

// NewGetQueuedPlansQueryHandler creates a handler for solver backlog queries.
// Requires a GORM database connection for query execution.
func NewGetQueuedPlansQueryHandler(db *gorm.DB) GetQueuedPlansQueryHandler {
	return GetQueuedPlansQueryHandler{db: db}
}

// Handle executes the query to retrieve all queued plans.
// Returns one row per queued plan with its fleet and package counts.
// Results are sorted by plan ID for consistent output.
func (h GetQueuedPlansQueryHandler) Handle(
	ctx context.Context,
	query GetQueuedPlansQuery,
) ([]GetQueuedPlansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	plans := make([]GetQueuedPlansQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			(SELECT COUNT(*) FROM plan_vehicles v WHERE v.plan_id = p.id),
			(SELECT COUNT(*) FROM plan_packages pkg WHERE pkg.plan_id = p.id)
		FROM plans p
		WHERE p.status = ?
		ORDER BY p.id
	`, int(plan.Queued)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var planResp GetQueuedPlansQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&planResp.VehicleCount,
			&planResp.PackageCount,
		)
		if err != nil {
			return nil, err
		}

		planID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		planResp.ID = planID
		plans = append(plans, planResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
