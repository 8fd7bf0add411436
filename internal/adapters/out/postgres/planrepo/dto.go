// Package planrepo provides data transfer objects and mapping functions for plan persistence.
// This package implements the repository pattern for the plan domain aggregate, handling
// the conversion between domain entities and database representations.
package planrepo

import (
	"sort"

	"github.com/google/uuid"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
	"fuelroute/internal/core/domain/model/route"
	"fuelroute/internal/core/domain/model/vehicle"
)

// PlanDTO represents the database structure for persisting plan aggregates.
// Maps plan domain entities to relational database tables with child tables
// for the fleet, the packages and the waypoints of the solved route.
//
// The result columns are only meaningful while Status is Completed; for
// queued and failed plans they stay at their zero values.
type PlanDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int
	FailureReason string `gorm:"type:text"`

	ResultCapacity        int
	ResultFuelConsumption int
	ResultRouteLength     int
	ResultFuelCost        int

	Vehicles  []VehicleDTO  `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Packages  []PackageDTO  `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Waypoints []WaypointDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for plan entities.
// Overrides GORM's default naming convention to use "plans".
func (PlanDTO) TableName() string {
	return "plans"
}

// VehicleDTO represents one vehicle of a plan's requested fleet.
// Position preserves the fleet order, which the solver uses for tie-breaks.
type VehicleDTO struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	PlanID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Position        int       `gorm:"type:int;not null"`
	Capacity        int       `gorm:"type:int;not null"`
	FuelConsumption int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for plan vehicles.
func (VehicleDTO) TableName() string {
	return "plan_vehicles"
}

// PackageDTO represents one requested delivery of a plan.
// Position doubles as the package identifier inside the plan.
type PackageDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	PlanID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"type:int;not null"`
	Pickup   int       `gorm:"type:int;not null"`
	Dropoff  int       `gorm:"type:int;not null"`
	Weight   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for plan packages.
func (PackageDTO) TableName() string {
	return "plan_packages"
}

// WaypointDTO represents one stop of a completed plan's route.
type WaypointDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	PlanID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"type:int;not null"`
	Coordinate int       `gorm:"type:int;not null"`
	Action     string    `gorm:"type:varchar(8);not null"`
}

// TableName specifies the database table name for plan waypoints.
func (WaypointDTO) TableName() string {
	return "plan_waypoints"
}

// fromDomain converts a plan domain aggregate to its database representation.
// Maps the fleet, the packages and, for completed plans, the result columns
// and the waypoint rows.
func fromDomain(aggregate *plan.Plan) PlanDTO {
	planID := aggregate.ID().Bytes()

	vehicles := make([]VehicleDTO, 0, len(aggregate.Vehicles()))
	for i, v := range aggregate.Vehicles() {
		vehicles = append(vehicles, VehicleDTO{
			PlanID:          planID,
			Position:        i,
			Capacity:        v.Capacity(),
			FuelConsumption: v.FuelConsumption(),
		})
	}

	packages := make([]PackageDTO, 0, len(aggregate.Packages()))
	for _, pkg := range aggregate.Packages() {
		packages = append(packages, PackageDTO{
			PlanID:   planID,
			Position: pkg.ID(),
			Pickup:   int(pkg.Pickup()),
			Dropoff:  int(pkg.Drop()),
			Weight:   pkg.Weight(),
		})
	}

	dto := PlanDTO{
		ID:            planID,
		Status:        int(aggregate.Status()),
		FailureReason: aggregate.FailureReason(),
		Vehicles:      vehicles,
		Packages:      packages,
	}

	if result := aggregate.Result(); result != nil {
		dto.ResultCapacity = result.Vehicle.Capacity
		dto.ResultFuelConsumption = result.Vehicle.FuelConsumption
		dto.ResultRouteLength = result.RouteLength
		dto.ResultFuelCost = result.FuelCost

		waypoints := make([]WaypointDTO, 0, len(result.Waypoints))
		for i, wp := range result.Waypoints {
			waypoints = append(waypoints, WaypointDTO{
				PlanID:     planID,
				Position:   i,
				Coordinate: int(wp.Coordinate),
				Action:     wp.Action,
			})
		}
		dto.Waypoints = waypoints
	}

	return dto
}

// toDomain converts a database DTO to a plan domain aggregate.
// Reconstructs the complete aggregate including its result using RestorePlan.
// Child rows are reordered by position since the database does not guarantee
// preload order.
func toDomain(dto PlanDTO) (*plan.Plan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Vehicles, func(i, j int) bool { return dto.Vehicles[i].Position < dto.Vehicles[j].Position })
	sort.Slice(dto.Packages, func(i, j int) bool { return dto.Packages[i].Position < dto.Packages[j].Position })
	sort.Slice(dto.Waypoints, func(i, j int) bool { return dto.Waypoints[i].Position < dto.Waypoints[j].Position })

	vehicles := make([]*vehicle.Vehicle, 0, len(dto.Vehicles))
	for _, vDto := range dto.Vehicles {
		v, vErr := vehicle.NewVehicle(vDto.Capacity, vDto.FuelConsumption)
		if vErr != nil {
			return nil, vErr
		}
		vehicles = append(vehicles, v)
	}

	packages := make([]cargo.Package, 0, len(dto.Packages))
	for _, pkgDto := range dto.Packages {
		pkg, pkgErr := cargo.NewPackage(
			pkgDto.Position,
			kernel.Coordinate(pkgDto.Pickup),
			kernel.Coordinate(pkgDto.Dropoff),
			pkgDto.Weight,
		)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	var result *plan.Result
	if plan.Status(dto.Status) == plan.Completed {
		waypoints := make([]route.Waypoint, 0, len(dto.Waypoints))
		for _, wpDto := range dto.Waypoints {
			waypoints = append(waypoints, route.Waypoint{
				Coordinate: kernel.Coordinate(wpDto.Coordinate),
				Action:     wpDto.Action,
			})
		}

		result = &plan.Result{
			Vehicle: vehicle.Info{
				Capacity:        dto.ResultCapacity,
				FuelConsumption: dto.ResultFuelConsumption,
			},
			Waypoints:   waypoints,
			RouteLength: dto.ResultRouteLength,
			FuelCost:    dto.ResultFuelCost,
		}
	}

	return plan.RestorePlan(id, vehicles, packages, plan.Status(dto.Status), dto.FailureReason, result)
}
