package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/route"
	"fuelroute/internal/core/domain/model/vehicle"
	"fuelroute/internal/core/domain/services"
)

func createVehicle(t *testing.T, capacity, fuelConsumption int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(capacity, fuelConsumption)
	require.NoError(t, err)
	return v
}

func createPackage(t *testing.T, id int, pickup, drop kernel.Coordinate, weight int) cargo.Package {
	t.Helper()
	pkg, err := cargo.NewPackage(id, pickup, drop, weight)
	require.NoError(t, err)
	return pkg
}

func TestRoutePlanner_GenerateEvents(t *testing.T) {
	planner := services.NewRoutePlanner()

	t.Run("should emit pickups then drops in input order", func(t *testing.T) {
		packages := []cargo.Package{
			createPackage(t, 0, -1, 5, 4),
			createPackage(t, 1, 6, 2, 9),
		}

		events, err := planner.GenerateEvents(packages)

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.True(t, events[0].IsPickup())
		assert.True(t, events[1].IsPickup())
		assert.True(t, events[2].IsDrop())
		assert.True(t, events[3].IsDrop())
		assert.Equal(t, kernel.Coordinate(-1), events[0].Coordinate())
		assert.Equal(t, kernel.Coordinate(6), events[1].Coordinate())
		assert.Equal(t, kernel.Coordinate(5), events[2].Coordinate())
		assert.Equal(t, kernel.Coordinate(2), events[3].Coordinate())
	})

	t.Run("should return error when packages are empty", func(t *testing.T) {
		events, err := planner.GenerateEvents(nil)

		require.Error(t, err)
		assert.Nil(t, events)
	})
}

func TestRoutePlanner_SuitableVehicles(t *testing.T) {
	planner := services.NewRoutePlanner()
	packages := []cargo.Package{
		createPackage(t, 0, -1, 5, 4),
		createPackage(t, 1, 6, 2, 9),
	}

	t.Run("should keep only vehicles that fit the heaviest package", func(t *testing.T) {
		small := createVehicle(t, 8, 3)
		exact := createVehicle(t, 9, 10)
		large := createVehicle(t, 20, 12)

		suitable, err := planner.SuitableVehicles([]*vehicle.Vehicle{small, exact, large}, packages)

		require.NoError(t, err)
		require.Len(t, suitable, 2)
		assert.Same(t, exact, suitable[0])
		assert.Same(t, large, suitable[1])
	})

	t.Run("should return error when no vehicle fits the heaviest package", func(t *testing.T) {
		suitable, err := planner.SuitableVehicles([]*vehicle.Vehicle{createVehicle(t, 8, 3)}, packages)

		require.ErrorIs(t, err, services.ErrNoFeasibleVehicle)
		assert.Nil(t, suitable)
	})

	t.Run("should return error when fleet is empty", func(t *testing.T) {
		_, err := planner.SuitableVehicles(nil, packages)
		assert.Error(t, err)
	})
}

func TestRoutePlanner_ExpandRoutes(t *testing.T) {
	planner := services.NewRoutePlanner()

	t.Run("single package yields the only possible route", func(t *testing.T) {
		v := createVehicle(t, 10, 5)
		events, err := planner.GenerateEvents([]cargo.Package{createPackage(t, 0, -1, 3, 2)})
		require.NoError(t, err)

		routes, err := planner.ExpandRoutes(v, events)

		require.NoError(t, err)
		require.Len(t, routes, 1)
		assert.True(t, routes[0].IsComplete())
		assert.Equal(t, []route.Waypoint{
			{Coordinate: 0, Action: "start"},
			{Coordinate: -1, Action: "pick"},
			{Coordinate: 3, Action: "drop"},
			{Coordinate: 0, Action: "end"},
		}, routes[0].Waypoints())
		assert.Equal(t, 8, routes[0].Length())
		assert.Equal(t, 40, routes[0].FuelCost())
	})

	t.Run("unconstrained capacity enumerates every interleaving", func(t *testing.T) {
		v := createVehicle(t, 100, 1)
		events, err := planner.GenerateEvents([]cargo.Package{
			createPackage(t, 0, 1, 2, 1),
			createPackage(t, 1, 3, 4, 1),
		})
		require.NoError(t, err)

		routes, err := planner.ExpandRoutes(v, events)

		require.NoError(t, err)
		// Two packages admit six pickup-before-drop interleavings.
		require.Len(t, routes, 6)
		for _, r := range routes {
			assert.True(t, r.IsComplete())
		}
	})

	t.Run("tight capacity forbids carrying both packages at once", func(t *testing.T) {
		v := createVehicle(t, 5, 1)
		heavy := createPackage(t, 0, 1, 2, 3)
		bulky := createPackage(t, 1, 3, 4, 4)
		events, err := planner.GenerateEvents([]cargo.Package{heavy, bulky})
		require.NoError(t, err)

		routes, err := planner.ExpandRoutes(v, events)

		require.NoError(t, err)
		// Only the two strictly sequential routes survive the fit rule.
		require.Len(t, routes, 2)
		for _, r := range routes {
			waypoints := r.Waypoints()
			require.Len(t, waypoints, 6)
			assert.Equal(t, "pick", waypoints[1].Action)
			assert.Equal(t, "drop", waypoints[2].Action)
			assert.Equal(t, "pick", waypoints[3].Action)
			assert.Equal(t, "drop", waypoints[4].Action)
		}
	})

	t.Run("should return error when universe is empty", func(t *testing.T) {
		_, err := planner.ExpandRoutes(createVehicle(t, 10, 5), nil)
		assert.Error(t, err)
	})
}

func TestRoutePlanner_Solve(t *testing.T) {
	planner := services.NewRoutePlanner()

	t.Run("picks the fuel-minimal vehicle and route", func(t *testing.T) {
		vehicles := []*vehicle.Vehicle{
			createVehicle(t, 10, 10),
			createVehicle(t, 9, 8),
		}
		packages := []cargo.Package{
			createPackage(t, 0, -1, 5, 4),
			createPackage(t, 1, 6, 2, 9),
			createPackage(t, 2, -2, 9, 3),
		}

		best, err := planner.Solve(vehicles, packages)

		require.NoError(t, err)
		assert.Equal(t, vehicle.Info{Capacity: 9, FuelConsumption: 8}, best.Vehicle().Info())
		assert.Equal(t, 22, best.Length())
		assert.Equal(t, 176, best.FuelCost())
		assert.Equal(t, []route.Waypoint{
			{Coordinate: 0, Action: "start"},
			{Coordinate: -1, Action: "pick"},
			{Coordinate: -2, Action: "pick"},
			{Coordinate: 5, Action: "drop"},
			{Coordinate: 9, Action: "drop"},
			{Coordinate: 6, Action: "pick"},
			{Coordinate: 2, Action: "drop"},
			{Coordinate: 0, Action: "end"},
		}, best.Waypoints())
	})

	t.Run("single package travels depot to pickup to drop and back", func(t *testing.T) {
		vehicles := []*vehicle.Vehicle{
			createVehicle(t, 4, 7),
			createVehicle(t, 10, 3),
		}
		packages := []cargo.Package{createPackage(t, 0, -2, 6, 4)}

		best, err := planner.Solve(vehicles, packages)

		require.NoError(t, err)
		// Length is fixed at 16 for every feasible vehicle, so the
		// cheaper consumer wins.
		assert.Equal(t, vehicle.Info{Capacity: 10, FuelConsumption: 3}, best.Vehicle().Info())
		assert.Equal(t, 16, best.Length())
		assert.Equal(t, 48, best.FuelCost())
	})

	t.Run("should return error when no vehicle can carry the heaviest package", func(t *testing.T) {
		vehicles := []*vehicle.Vehicle{createVehicle(t, 5, 1)}
		packages := []cargo.Package{createPackage(t, 0, 1, 2, 8)}

		best, err := planner.Solve(vehicles, packages)

		require.ErrorIs(t, err, services.ErrNoFeasibleVehicle)
		assert.Nil(t, best)
	})

	t.Run("should return error when packages are empty", func(t *testing.T) {
		best, err := planner.Solve([]*vehicle.Vehicle{createVehicle(t, 5, 1)}, nil)

		require.Error(t, err)
		assert.Nil(t, best)
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		vehicles := []*vehicle.Vehicle{
			createVehicle(t, 10, 10),
			createVehicle(t, 9, 8),
			createVehicle(t, 12, 9),
		}
		packages := []cargo.Package{
			createPackage(t, 0, -1, 5, 4),
			createPackage(t, 1, 6, 2, 9),
			createPackage(t, 2, -2, 9, 3),
		}

		first, err := planner.Solve(vehicles, packages)
		require.NoError(t, err)

		for range 10 {
			again, err := planner.Solve(vehicles, packages)
			require.NoError(t, err)
			assert.Equal(t, first.Waypoints(), again.Waypoints())
			assert.Equal(t, first.Vehicle().Info(), again.Vehicle().Info())
		}
	})

	t.Run("every route respects pickup before drop and capacity", func(t *testing.T) {
		vehicles := []*vehicle.Vehicle{createVehicle(t, 7, 2)}
		packages := []cargo.Package{
			createPackage(t, 0, 2, -3, 4),
			createPackage(t, 1, -1, 4, 5),
			createPackage(t, 2, 3, 1, 2),
		}

		best, err := planner.Solve(vehicles, packages)
		require.NoError(t, err)

		waypoints := best.Waypoints()
		require.Len(t, waypoints, 2*len(packages)+2)
		assert.Equal(t, route.Waypoint{Coordinate: 0, Action: "start"}, waypoints[0])
		assert.Equal(t, route.Waypoint{Coordinate: 0, Action: "end"}, waypoints[len(waypoints)-1])

		// Each package's pickup coordinate must appear before its drop.
		for _, pkg := range packages {
			pickIdx, dropIdx := -1, -1
			for i, wp := range waypoints {
				if wp.Action == "pick" && wp.Coordinate == pkg.Pickup() && pickIdx == -1 {
					pickIdx = i
				}
				if wp.Action == "drop" && wp.Coordinate == pkg.Drop() && dropIdx == -1 {
					dropIdx = i
				}
			}
			require.NotEqual(t, -1, pickIdx)
			require.NotEqual(t, -1, dropIdx)
			assert.Less(t, pickIdx, dropIdx)
		}
	})
}
