package commands

import (
	"context"
	"fmt"
	"time"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/errs"
)

// orderPropagator applies the order status implied by a committed job
// transition. It runs in its own transaction after the job write: the
// job mutation is already durable, so any failure here is surfaced as an
// internal error while the job change stands.
type orderPropagator struct {
	uowFactory OrderUoWFactory
	emitter    ports.EventEmitter
}

func newOrderPropagator(uowFactory OrderUoWFactory, emitter ports.EventEmitter) orderPropagator {
	return orderPropagator{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

// propagate loads the order, optionally records the working mover, moves
// the order to next and commits. An unresolvable order or a failed write
// means the job and order lifecycles have come apart, which the caller
// must report as an internal failure.
func (p orderPropagator) propagate(
	ctx context.Context,
	orderID kernel.UUID,
	next order.Status,
	assignMover *kernel.UUID,
	by kernel.UUID,
) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return p.fail(orderID, next, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return p.fail(orderID, next, err)
	}

	if assignMover != nil {
		if err = o.AssignMover(*assignMover); err != nil {
			return p.fail(orderID, next, err)
		}
	}

	if err = o.TransitionTo(next); err != nil {
		return p.fail(orderID, next, err)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return p.fail(orderID, next, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return p.fail(orderID, next, err)
	}

	p.emitter.EmitOrderUpdated(ctx, o, ports.EventMeta{By: &by, At: time.Now().UTC()})
	return nil
}

func (p orderPropagator) fail(orderID kernel.UUID, next order.Status, cause error) error {
	return errs.NewInternalError(
		fmt.Sprintf("failed to propagate order %s to %s", orderID, next), cause)
}
