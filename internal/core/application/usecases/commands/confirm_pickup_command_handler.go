package commands

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

// ConfirmPickupCommandHandler completes the storage confirmation side
// channel: the student confirms the pickup, the job moves to PickedUp
// and the order follows.
type ConfirmPickupCommandHandler struct {
	uowFactory UoWFactory
	propagator orderPropagator
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewConfirmPickupCommandHandler creates a handler for pickup
// confirmations.
func NewConfirmPickupCommandHandler(
	uowFactory UoWFactory,
	orderUowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		propagator: newOrderPropagator(orderUowFactory, emitter),
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the confirmation. Only the job's student may confirm;
// a wrong student is forbidden regardless of the job's state. After the
// commit the order is propagated to PickedUp and the mover is notified
// best-effort.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.confirm(ctx, cmd)
	if err != nil {
		return err
	}

	metrics.JobTransitions.WithLabelValues(current.Status().String()).Inc()

	actorID := cmd.Actor().ID()
	if err = h.propagator.propagate(ctx, current.OrderID(), order.StatusPickedUp, nil, actorID); err != nil {
		return err
	}

	if mover := current.Mover(); mover != nil {
		notifyJobStatus(ctx, h.notifier, *mover, current.ID(), job.StatusPickedUp)
	}
	h.emitter.EmitJobUpdated(ctx, current, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}

func (h ConfirmPickupCommandHandler) confirm(ctx context.Context, cmd ConfirmPickupCommand) (*job.Job, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	current, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = current.ConfirmPickup(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
