package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
	"fuelroute/internal/core/domain/model/route"
	"fuelroute/internal/core/domain/model/vehicle"
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

// solvedCandidate builds a complete start->pick->drop->end candidate
// for a single package, the smallest route a solver can produce.
func solvedCandidate(t *testing.T) *route.Candidate {
	t.Helper()

	v := createVehicle(t, 10, 5)
	pkg := createPackage(t, 0, -1, 3, 2)

	pick, err := route.NewPickupEvent(pkg)
	require.NoError(t, err)
	drop, err := route.NewDropEvent(pkg)
	require.NoError(t, err)

	candidate, err := route.NewCandidate(v, []route.Event{route.NewStartEvent()}, []route.Event{pick, drop})
	require.NoError(t, err)

	candidate, err = candidate.Extend(pick)
	require.NoError(t, err)
	candidate, err = candidate.Extend(drop)
	require.NoError(t, err)
	candidate, err = candidate.Extend(route.NewEndEvent())
	require.NoError(t, err)

	return candidate
}

func TestNewPlan(t *testing.T) {
	vehicles := []*vehicle.Vehicle{createVehicle(t, 10, 5)}
	packages := []cargo.Package{createPackage(t, 0, -1, 3, 2)}

	t.Run("creates queued plan", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)

		require.NoError(t, err)
		assert.Equal(t, plan.Queued, p.Status())
		assert.Empty(t, p.FailureReason())
		assert.Nil(t, p.Result())
		assert.Len(t, p.Vehicles(), 1)
		assert.Len(t, p.Packages(), 1)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := plan.NewPlan(kernel.UUID{}, vehicles, packages)
		assert.Error(t, err)
	})

	t.Run("rejects empty fleet", func(t *testing.T) {
		_, err := plan.NewPlan(kernel.NewUUID(), nil, packages)
		assert.Error(t, err)
	})

	t.Run("rejects empty packages", func(t *testing.T) {
		_, err := plan.NewPlan(kernel.NewUUID(), vehicles, nil)
		assert.Error(t, err)
	})

	t.Run("rejects unconstructed vehicle", func(t *testing.T) {
		_, err := plan.NewPlan(kernel.NewUUID(), []*vehicle.Vehicle{{}}, packages)
		assert.Error(t, err)
	})

	t.Run("rejects unconstructed package", func(t *testing.T) {
		_, err := plan.NewPlan(kernel.NewUUID(), vehicles, []cargo.Package{{}})
		assert.Error(t, err)
	})
}

func TestPlan_Validate(t *testing.T) {
	t.Run("constructed plan is valid", func(t *testing.T) {
		p, err := plan.NewPlan(
			kernel.NewUUID(),
			[]*vehicle.Vehicle{createVehicle(t, 10, 5)},
			[]cargo.Package{createPackage(t, 0, -1, 3, 2)},
		)
		require.NoError(t, err)
		assert.NoError(t, p.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var p plan.Plan
		assert.ErrorIs(t, p.Validate(), plan.ErrPlanIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var p *plan.Plan
		assert.ErrorIs(t, p.Validate(), plan.ErrPlanIsNotConstructed)
	})
}

func TestPlan_IsEqual(t *testing.T) {
	vehicles := []*vehicle.Vehicle{createVehicle(t, 10, 5)}
	packages := []cargo.Package{createPackage(t, 0, -1, 3, 2)}

	id := kernel.NewUUID()
	first, err := plan.NewPlan(id, vehicles, packages)
	require.NoError(t, err)
	second, err := plan.NewPlan(id, vehicles, packages)
	require.NoError(t, err)
	third, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}

func TestPlan_Complete(t *testing.T) {
	vehicles := []*vehicle.Vehicle{createVehicle(t, 10, 5)}
	packages := []cargo.Package{createPackage(t, 0, -1, 3, 2)}

	t.Run("stores result and transitions to completed", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
		require.NoError(t, err)

		best := solvedCandidate(t)
		require.NoError(t, p.Complete(best))

		assert.Equal(t, plan.Completed, p.Status())
		result := p.Result()
		require.NotNil(t, result)
		assert.Equal(t, vehicle.Info{Capacity: 10, FuelConsumption: 5}, result.Vehicle)
		assert.Equal(t, best.Length(), result.RouteLength)
		assert.Equal(t, best.FuelCost(), result.FuelCost)
		assert.Equal(t, best.Waypoints(), result.Waypoints)
	})

	t.Run("rejects nil candidate", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
		require.NoError(t, err)

		assert.Error(t, p.Complete(nil))
		assert.Equal(t, plan.Queued, p.Status())
	})

	t.Run("rejects double completion", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
		require.NoError(t, err)

		best := solvedCandidate(t)
		require.NoError(t, p.Complete(best))
		assert.Error(t, p.Complete(best))
	})
}

func TestPlan_Fail(t *testing.T) {
	vehicles := []*vehicle.Vehicle{createVehicle(t, 10, 5)}
	packages := []cargo.Package{createPackage(t, 0, -1, 3, 2)}

	t.Run("stores reason and transitions to failed", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
		require.NoError(t, err)

		require.NoError(t, p.Fail("no vehicle can carry the heaviest package"))

		assert.Equal(t, plan.Failed, p.Status())
		assert.Equal(t, "no vehicle can carry the heaviest package", p.FailureReason())
		assert.Nil(t, p.Result())
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
		require.NoError(t, err)

		assert.Error(t, p.Fail(""))
		assert.Equal(t, plan.Queued, p.Status())
	})

	t.Run("rejects failing a completed plan", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), vehicles, packages)
		require.NoError(t, err)

		require.NoError(t, p.Complete(solvedCandidate(t)))
		assert.Error(t, p.Fail("too late"))
	})
}

func TestRestorePlan(t *testing.T) {
	vehicles := []*vehicle.Vehicle{createVehicle(t, 10, 5)}
	packages := []cargo.Package{createPackage(t, 0, -1, 3, 2)}

	t.Run("restores completed plan with result", func(t *testing.T) {
		result := &plan.Result{
			Vehicle: vehicle.Info{Capacity: 10, FuelConsumption: 5},
			Waypoints: []route.Waypoint{
				{Coordinate: 0, Action: "start"},
				{Coordinate: -1, Action: "pick"},
				{Coordinate: 3, Action: "drop"},
				{Coordinate: 0, Action: "end"},
			},
			RouteLength: 8,
			FuelCost:    40,
		}

		p, err := plan.RestorePlan(kernel.NewUUID(), vehicles, packages, plan.Completed, "", result)

		require.NoError(t, err)
		assert.Equal(t, plan.Completed, p.Status())
		assert.Equal(t, result, p.Result())
	})

	t.Run("restores failed plan with reason", func(t *testing.T) {
		p, err := plan.RestorePlan(kernel.NewUUID(), vehicles, packages, plan.Failed, "no feasible vehicle", nil)

		require.NoError(t, err)
		assert.Equal(t, plan.Failed, p.Status())
		assert.Equal(t, "no feasible vehicle", p.FailureReason())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := plan.RestorePlan(kernel.NewUUID(), vehicles, packages, plan.Unknown, "", nil)
		assert.Error(t, err)
	})
}
