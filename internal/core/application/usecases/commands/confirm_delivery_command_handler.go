package commands

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

// ConfirmDeliveryCommandHandler completes the return confirmation side
// channel: the student confirms delivery, the job completes, the mover
// is credited and the order moves to Returned.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	propagator orderPropagator
	creditor   moverCreditor
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	orderUowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		propagator: newOrderPropagator(orderUowFactory, emitter),
		creditor:   newMoverCreditor(uowFactory),
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the confirmation. Only the job's student may confirm.
// The order propagation to Returned is fatal on failure; the mover
// credit and notification are best-effort.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.confirm(ctx, cmd)
	if err != nil {
		return err
	}

	metrics.JobTransitions.WithLabelValues(current.Status().String()).Inc()

	actorID := cmd.Actor().ID()
	if err = h.propagator.propagate(ctx, current.OrderID(), order.StatusReturned, nil, actorID); err != nil {
		return err
	}

	h.creditor.credit(ctx, current)

	if mover := current.Mover(); mover != nil {
		notifyJobStatus(ctx, h.notifier, *mover, current.ID(), job.StatusCompleted)
	}
	h.emitter.EmitJobUpdated(ctx, current, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}

func (h ConfirmDeliveryCommandHandler) confirm(ctx context.Context, cmd ConfirmDeliveryCommand) (*job.Job, error) {
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

	if err = current.ConfirmDelivery(cmd.Actor().ID()); err != nil {
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
