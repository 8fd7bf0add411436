package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuelroute/internal/core/application/usecases/commands"
	"fuelroute/internal/core/domain/model/kernel"
	"fuelroute/internal/core/domain/model/plan"
	"fuelroute/internal/core/ports"
)

type MockPlanRepository struct{ mock.Mock }

func (m *MockPlanRepository) Add(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPlanRepository) Get(_ context.Context, _ kernel.UUID) (*plan.Plan, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPlanRepository) GetFirstInQueuedStatus(ctx context.Context) (*plan.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

type MockPlanUoW struct{ mock.Mock }

func (m *MockPlanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanUoW) PlanRepository() ports.PlanRepository {
	args := m.Called()
	return args.Get(0).(ports.PlanRepository)
}

type MockPlanUoWFactory struct{ mock.Mock }

func (m *MockPlanUoWFactory) Create() commands.PlanUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanUoW)
}

func validCreatePlanCommand(t *testing.T) commands.CreatePlanCommand {
	t.Helper()
	cmd, err := commands.NewCreatePlanCommand(
		kernel.NewUUID(),
		[]commands.VehicleSpec{{Capacity: 10, FuelConsumption: 10}, {Capacity: 9, FuelConsumption: 8}},
		[]commands.PackageSpec{{Pickup: -1, Drop: 5, Weight: 4}},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreatePlanCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreatePlanCommand(t)

	repo := new(MockPlanRepository)
	uow := new(MockPlanUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlanRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*plan.Plan")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePlanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePlanCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePlanCommand{} // not constructed properly
	factory := new(MockPlanUoWFactory)
	h := commands.NewCreatePlanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreatePlanCommandHandler_Handle_InvalidVehicleSpec(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePlanCommand(
		kernel.NewUUID(),
		[]commands.VehicleSpec{{Capacity: 0, FuelConsumption: 10}},
		[]commands.PackageSpec{{Pickup: -1, Drop: 5, Weight: 4}},
	)
	require.NoError(t, err)

	factory := new(MockPlanUoWFactory)
	h := commands.NewCreatePlanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePlanCommandHandler_Handle_InvalidPackageSpec(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePlanCommand(
		kernel.NewUUID(),
		[]commands.VehicleSpec{{Capacity: 10, FuelConsumption: 10}},
		[]commands.PackageSpec{{Pickup: 3, Drop: 3, Weight: 4}}, // same pickup and drop
	)
	require.NoError(t, err)

	factory := new(MockPlanUoWFactory)
	h := commands.NewCreatePlanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePlanCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreatePlanCommand(t)

	uow := new(MockPlanUoW)
	factory := new(MockPlanUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreatePlanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreatePlanCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreatePlanCommand(t)

	repo := new(MockPlanRepository)
	uow := new(MockPlanUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlanRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*plan.Plan")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePlanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePlanCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreatePlanCommand(t)

	repo := new(MockPlanRepository)
	uow := new(MockPlanUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlanRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*plan.Plan")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePlanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
