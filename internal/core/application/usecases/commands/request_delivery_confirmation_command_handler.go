package commands

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

// RequestDeliveryConfirmationCommandHandler moves a return job into the
// confirmation side channel when the mover signals delivery. The order
// is untouched until the student confirms.
type RequestDeliveryConfirmationCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewRequestDeliveryConfirmationCommandHandler creates a handler for the
// delivery signal.
func NewRequestDeliveryConfirmationCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) RequestDeliveryConfirmationCommandHandler {
	return RequestDeliveryConfirmationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the delivery signal. Only the assigned mover may
// signal, only on a return job in PickedUp status.
func (h RequestDeliveryConfirmationCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryConfirmationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	current, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = current.RequestDeliveryConfirmation(cmd.Actor().ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.JobTransitions.WithLabelValues(current.Status().String()).Inc()

	actorID := cmd.Actor().ID()
	notifyJobStatus(ctx, h.notifier, current.StudentID(), current.ID(), job.StatusAwaitingStudentConfirmation)
	h.emitter.EmitJobUpdated(ctx, current, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}
