package commands

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

// RequestPickupConfirmationCommandHandler moves a storage job into the
// confirmation side channel when the mover signals arrival. The order is
// untouched; only the student's confirmation advances the pickup.
type RequestPickupConfirmationCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewRequestPickupConfirmationCommandHandler creates a handler for the
// arrival signal.
func NewRequestPickupConfirmationCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) RequestPickupConfirmationCommandHandler {
	return RequestPickupConfirmationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the arrival signal. Only the assigned mover may
// signal, only on a storage job in Accepted status. The student is
// notified best-effort after the commit.
func (h RequestPickupConfirmationCommandHandler) Handle(ctx context.Context, cmd RequestPickupConfirmationCommand) error {
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

	if err = current.RequestPickupConfirmation(cmd.Actor().ID(), time.Now().UTC()); err != nil {
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
