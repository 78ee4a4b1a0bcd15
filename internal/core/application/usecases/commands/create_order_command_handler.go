package commands

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
)

// CreateOrderCommandHandler persists a freshly placed order in Pending
// status and emits the order-created event after the commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	emitter    ports.EventEmitter
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, emitter ports.EventEmitter) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

// Handle processes the order placement command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Actor().ID(),
		cmd.Volume(),
		cmd.Price(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.ScheduledAt(),
	)
	if err != nil {
		return err
	}

	if ref := cmd.PaymentRef(); ref != nil {
		if err = newOrder.AttachPaymentRef(*ref); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	h.emitter.EmitOrderCreated(ctx, newOrder, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}
