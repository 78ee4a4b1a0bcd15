package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movebox/internal/core/application/usecases/commands"
	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/errs"
)

func testCreateJobCommand(t *testing.T, orderID kernel.UUID) commands.CreateJobCommand {
	t.Helper()
	pickup, dropoff := testAddresses(t)

	cmd, err := commands.NewCreateJobCommand(
		kernel.NewUUID(), orderID, job.TypeStorage,
		3, testPrice(t), pickup, dropoff,
		time.Now().UTC().Add(48*time.Hour),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	studentID := kernel.NewUUID()
	owningOrder := testRestoredOrder(t, studentID, order.StatusPending, nil)
	cmd := testCreateJobCommand(t, owningOrder.ID())

	jobRepo := new(MockJobRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	var created *job.Job
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*job.Job)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	emitter := new(MockEventEmitter)
	emitter.On("EmitJobCreated", ctx, mock.AnythingOfType("*job.Job"), mock.AnythingOfType("ports.EventMeta")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory, emitter)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, cmd.JobID(), created.ID())
	assert.Equal(t, owningOrder.ID(), created.OrderID())
	assert.Equal(t, studentID, created.StudentID())
	assert.Equal(t, job.StatusAvailable, created.Status())
	assert.Nil(t, created.Mover())
	emitter.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd := testCreateJobCommand(t, orderID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	emitter := new(MockEventEmitter)
	handler := commands.NewCreateJobCommandHandler(factory, emitter)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	emitter.AssertNotCalled(t, "EmitJobCreated")
}

func TestCreateJobCommandHandler_Handle_ValidationError(t *testing.T) {
	var cmd commands.CreateJobCommand

	factory := new(MockUoWFactory)
	handler := commands.NewCreateJobCommandHandler(factory, new(MockEventEmitter))
	err := handler.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateJobCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
