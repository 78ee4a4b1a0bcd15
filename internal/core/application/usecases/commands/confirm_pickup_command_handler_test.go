package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movebox/internal/core/application/usecases/commands"
	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/errs"
)

func TestConfirmPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	moverID := kernel.NewUUID()
	studentID := kernel.NewUUID()
	current := testRestoredJob(t, job.TypeStorage, job.StatusAwaitingStudentConfirmation, studentID, &moverID)
	owningOrder := testRestoredOrder(t, studentID, order.StatusAccepted, nil)

	cmd, err := commands.NewConfirmPickupCommand(current.ID(), testStudentActor(t, studentID))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	orderUow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		jobRepo.On("Update", ctx, current).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),

		orderUow.On("Begin", ctx).Return(nil).Once(),
		orderUow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, current.OrderID()).Return(owningOrder, nil).Once(),
		orderRepo.On("Update", ctx, owningOrder).Return(nil).Once(),
		orderUow.On("Commit", ctx).Return(nil).Once(),
		orderUow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationDispatcher)
	emitter := new(MockEventEmitter)
	emitter.On("EmitOrderUpdated", ctx, owningOrder, mock.AnythingOfType("ports.EventMeta")).Once()
	notifier.On("SendJobStatusNotification", ctx, moverID, current.ID(), job.StatusPickedUp).Return(nil).Once()
	emitter.On("EmitJobUpdated", ctx, current, mock.AnythingOfType("ports.EventMeta")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(orderUow).Once()

	handler := commands.NewConfirmPickupCommandHandler(factory, orderFactory, notifier, emitter)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusPickedUp, current.Status())
	assert.Equal(t, order.StatusPickedUp, owningOrder.Status())
	notifier.AssertExpectations(t)
	emitter.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_WrongStudentForbidden(t *testing.T) {
	ctx := t.Context()

	moverID := kernel.NewUUID()
	current := testRestoredJob(t, job.TypeStorage, job.StatusAwaitingStudentConfirmation, kernel.NewUUID(), &moverID)

	cmd, err := commands.NewConfirmPickupCommand(current.ID(), testStudentActor(t, kernel.NewUUID()))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmPickupCommandHandler(factory, new(MockOrderUoWFactory), new(MockNotificationDispatcher), new(MockEventEmitter))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, job.StatusAwaitingStudentConfirmation, current.Status())
}

func TestConfirmPickupCommandHandler_Handle_NotAwaitingConfirmation(t *testing.T) {
	ctx := t.Context()

	moverID := kernel.NewUUID()
	studentID := kernel.NewUUID()
	current := testRestoredJob(t, job.TypeStorage, job.StatusAccepted, studentID, &moverID)

	cmd, err := commands.NewConfirmPickupCommand(current.ID(), testStudentActor(t, studentID))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmPickupCommandHandler(factory, new(MockOrderUoWFactory), new(MockNotificationDispatcher), new(MockEventEmitter))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
