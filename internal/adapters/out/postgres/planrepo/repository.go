package planrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
	"fuelroute/internal/pkg/errs"
)

// GormPlanRepository implements PlanRepository using GORM.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new plan to the database.
func (r *GormPlanRepository) Add(ctx context.Context, aggregate *plan.Plan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing plan to the database.
func (r *GormPlanRepository) Update(ctx context.Context, aggregate *plan.Plan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// The fleet and the packages are immutable after Add; only the plans row
	// and the solved waypoints change.
	updates := map[string]any{
		"status":                  dto.Status,
		"failure_reason":          dto.FailureReason,
		"result_capacity":         dto.ResultCapacity,
		"result_fuel_consumption": dto.ResultFuelConsumption,
		"result_route_length":     dto.ResultRouteLength,
		"result_fuel_cost":        dto.ResultFuelCost,
	}
	result := r.db.WithContext(ctx).Model(&PlanDTO{}).Where("id = ?", dto.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Waypoints) > 0 {
		if err := r.db.WithContext(ctx).Where("plan_id = ?", dto.ID).Delete(&WaypointDTO{}).Error; err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Create(&dto.Waypoints).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a plan by ID.
func (r *GormPlanRepository) Get(ctx context.Context, id kernel.UUID) (*plan.Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Preload("Packages").
		Preload("Waypoints").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInQueuedStatus retrieves the oldest plan with Queued status.
func (r *GormPlanRepository) GetFirstInQueuedStatus(ctx context.Context) (*plan.Plan, error) {
	var dto PlanDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Preload("Packages").
		First(&dto, "status = ?", int(plan.Queued)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plan", "first in queued status")
		}
		return nil, err
	}

	return toDomain(dto)
}
