package commands

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/services"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/errs"
	"movebox/internal/pkg/metrics"
)

// UpdateJobStatusCommandHandler executes the generic status change path.
// The transition policy judges the request against the loaded job
// snapshot; the durable write then happens in one transaction, and the
// secondary effects run after the commit:
//
//   - order propagation is fatal on failure (the job write stands)
//   - mover credit is swallowed and parked in the retry queue
//   - push notification is swallowed
//   - the lifecycle event is fire and forget
type UpdateJobStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
	propagator orderPropagator
	creditor   moverCreditor
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewUpdateJobStatusCommandHandler creates a handler for generic job
// status updates.
func NewUpdateJobStatusCommandHandler(
	uowFactory UoWFactory,
	orderUowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) UpdateJobStatusCommandHandler {
	return UpdateJobStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
		propagator: newOrderPropagator(orderUowFactory, emitter),
		creditor:   newMoverCreditor(uowFactory),
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the status change.
func (h UpdateJobStatusCommandHandler) Handle(ctx context.Context, cmd UpdateJobStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updated, decision, err := h.apply(ctx, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			metrics.ClaimConflicts.Inc()
		}
		return err
	}

	metrics.JobTransitions.WithLabelValues(updated.Status().String()).Inc()

	// Re-read before firing secondary effects: if a competing request
	// already moved the job on, that request's effects cover the order,
	// and firing ours against a stale snapshot would double-apply them.
	current := h.refresh(ctx, cmd, updated)
	if current.Status() != cmd.Status() {
		zap.L().Info("job moved on before secondary effects, skipping",
			zap.String("job_id", cmd.JobID().String()),
			zap.String("requested", cmd.Status().String()),
			zap.String("current", current.Status().String()))
		return nil
	}

	actorID := cmd.Actor().ID()
	if next := decision.NextOrderStatus; next != nil {
		var mover *kernel.UUID
		if decision.RequiresClaim {
			mover = current.Mover()
		}
		if err = h.propagator.propagate(ctx, current.OrderID(), *next, mover, actorID); err != nil {
			return err
		}
	}

	if decision.CreditMover {
		h.creditor.credit(ctx, current)
	}

	notifyJobStatus(ctx, h.notifier, current.StudentID(), current.ID(), current.Status())
	h.emitter.EmitJobUpdated(ctx, current, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}

// apply judges the request and performs the durable job write.
func (h UpdateJobStatusCommandHandler) apply(
	ctx context.Context,
	cmd UpdateJobStatusCommand,
) (*job.Job, services.Decision, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, services.Decision{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	current, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, services.Decision{}, err
	}

	decision, err := h.policy.Decide(current, cmd.Status(), cmd.Actor())
	if err != nil {
		return nil, services.Decision{}, err
	}

	if decision.RequiresClaim {
		current, err = jobRepo.TryAccept(ctx, cmd.JobID(), cmd.Actor().ID())
		if err != nil {
			return nil, services.Decision{}, err
		}
	} else {
		if err = h.mutate(current, cmd); err != nil {
			return nil, services.Decision{}, err
		}
		if err = jobRepo.Update(ctx, current); err != nil {
			return nil, services.Decision{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, services.Decision{}, err
	}

	return current, decision, nil
}

func (h UpdateJobStatusCommandHandler) mutate(current *job.Job, cmd UpdateJobStatusCommand) error {
	switch cmd.Status() {
	case job.StatusPickedUp:
		return current.MarkPickedUp(cmd.Actor().ID())
	case job.StatusCompleted:
		return current.MarkCompleted(cmd.Actor().ID())
	default:
		return errs.NewInvalidStateError(current.Status().String(), cmd.Status().String())
	}
}

// refresh re-fetches the job after the commit. When the read fails the
// committed in-memory snapshot is used instead; the write already
// happened, so effects must not be dropped over a flaky read.
func (h UpdateJobStatusCommandHandler) refresh(ctx context.Context, cmd UpdateJobStatusCommand, fallback *job.Job) *job.Job {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fallback
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		zap.L().Warn("job re-fetch before secondary effects failed",
			zap.String("job_id", cmd.JobID().String()),
			zap.Error(err))
		return fallback
	}

	return current
}
