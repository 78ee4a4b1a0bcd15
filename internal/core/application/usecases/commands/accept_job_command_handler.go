package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/errs"
	"movebox/internal/pkg/metrics"
)

// AcceptJobCommandHandler executes the claim of an available job. The
// claim itself is a single conditional write at the storage layer, so
// concurrent movers are arbitrated there and at most one wins.
//
// After the claim commits the handler propagates the order to Accepted,
// then fires the push notification and event as best-effort effects.
type AcceptJobCommandHandler struct {
	uowFactory UoWFactory
	propagator orderPropagator
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewAcceptJobCommandHandler creates a handler for the claim operation.
func NewAcceptJobCommandHandler(
	uowFactory UoWFactory,
	orderUowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		propagator: newOrderPropagator(orderUowFactory, emitter),
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the claim. A student caller is rejected before any
// I/O. A lost race surfaces as a conflict, a missing job as not found.
// Order propagation failure is fatal and reported as an internal error,
// with the claim already committed.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.IsMover() {
		return errs.NewForbiddenError(actor.ID().String(),
			fmt.Sprintf("accept job %s", cmd.JobID()))
	}

	claimed, err := h.claim(ctx, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			metrics.ClaimConflicts.Inc()
		}
		return err
	}

	metrics.JobTransitions.WithLabelValues(claimed.Status().String()).Inc()

	actorID := actor.ID()
	if err = h.propagator.propagate(ctx, claimed.OrderID(), order.StatusAccepted, &actorID, actorID); err != nil {
		return err
	}

	notifyJobStatus(ctx, h.notifier, claimed.StudentID(), claimed.ID(), job.StatusAccepted)
	h.emitter.EmitJobUpdated(ctx, claimed, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}

func (h AcceptJobCommandHandler) claim(ctx context.Context, cmd AcceptJobCommand) (*job.Job, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.JobRepository().TryAccept(ctx, cmd.JobID(), cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
