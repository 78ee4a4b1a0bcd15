package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movebox/internal/core/application/usecases/commands"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	studentID := kernel.NewUUID()
	pickup, dropoff := testAddresses(t)
	ref := "pay_42"

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), testStudentActor(t, studentID),
		4, testPrice(t), pickup, dropoff,
		time.Now().UTC().Add(72*time.Hour), &ref,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	emitter := new(MockEventEmitter)
	emitter.On("EmitOrderCreated", ctx, mock.AnythingOfType("*order.Order"), mock.AnythingOfType("ports.EventMeta")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, emitter)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, cmd.OrderID(), created.ID())
	assert.Equal(t, studentID, created.StudentID())
	assert.Equal(t, order.StatusPending, created.Status())
	require.NotNil(t, created.PaymentRef())
	assert.Equal(t, ref, *created.PaymentRef())
	emitter.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PersistenceFailure(t *testing.T) {
	ctx := t.Context()

	pickup, dropoff := testAddresses(t)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), testStudentActor(t, kernel.NewUUID()),
		4, testPrice(t), pickup, dropoff,
		time.Now().UTC().Add(72*time.Hour), nil,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	emitter := new(MockEventEmitter)
	handler := commands.NewCreateOrderCommandHandler(factory, emitter)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	emitter.AssertNotCalled(t, "EmitOrderCreated")
}
