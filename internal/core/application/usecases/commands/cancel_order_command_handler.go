package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/errs"
	"movebox/internal/pkg/metrics"
)

// CancelOrderCommandHandler cancels an order and fans the cancellation
// out to its jobs. The order write is the durable anchor: once it
// commits, each job is cancelled in its own transaction, a failed job
// cancellation is logged and the loop continues, and the refund is
// attempted last as a best-effort call.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	payment    ports.PaymentGateway
	notifier   ports.NotificationDispatcher
	emitter    ports.EventEmitter
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	payment ports.PaymentGateway,
	notifier ports.NotificationDispatcher,
	emitter ports.EventEmitter,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		payment:    payment,
		notifier:   notifier,
		emitter:    emitter,
	}
}

// Handle processes the cancellation. Only the order's student may
// cancel; a terminal order is rejected as invalid state.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cancelled, jobs, err := h.cancelOrder(ctx, cmd)
	if err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	for _, j := range jobs {
		if j.Status().IsTerminal() {
			continue
		}
		if err = h.cancelJob(ctx, j.ID()); err != nil {
			zap.L().Error("failed to cancel job of cancelled order",
				zap.String("order_id", cancelled.ID().String()),
				zap.String("job_id", j.ID().String()),
				zap.Error(err))
			metrics.SecondaryEffectFailures.WithLabelValues("cancel_job").Inc()
			continue
		}
		if mover := j.Mover(); mover != nil {
			notifyJobStatus(ctx, h.notifier, *mover, j.ID(), job.StatusCancelled)
		}
	}

	h.refund(ctx, cancelled)

	h.emitter.EmitOrderUpdated(ctx, cancelled, ports.EventMeta{By: &actorID, At: time.Now().UTC()})
	return nil
}

// cancelOrder performs the durable order write and snapshots the jobs to
// fan out to.
func (h CancelOrderCommandHandler) cancelOrder(
	ctx context.Context,
	cmd CancelOrderCommand,
) (*order.Order, []*job.Job, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	if !current.StudentID().IsEqual(cmd.Actor().ID()) {
		return nil, nil, errs.NewForbiddenError(cmd.Actor().ID().String(),
			fmt.Sprintf("cancel order %s", current.ID()))
	}

	if err = current.Cancel(); err != nil {
		return nil, nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, nil, err
	}

	jobs, err := uow.JobRepository().GetByOrder(ctx, current.ID())
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return current, jobs, nil
}

// cancelJob cancels a single job in its own transaction so one stuck job
// cannot block the rest of the fan-out.
func (h CancelOrderCommandHandler) cancelJob(ctx context.Context, jobID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	current, err := jobRepo.Get(ctx, jobID)
	if err != nil {
		return err
	}

	if err = current.Cancel(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.JobTransitions.WithLabelValues(job.StatusCancelled.String()).Inc()
	return nil
}

// refund attempts the payment refund. A missing payment reference means
// there is nothing to refund; a gateway failure is logged and swallowed.
func (h CancelOrderCommandHandler) refund(ctx context.Context, cancelled *order.Order) {
	ref := cancelled.PaymentRef()
	if ref == nil {
		return
	}

	if err := h.payment.Refund(ctx, *ref, cancelled.Price()); err != nil {
		zap.L().Warn("refund for cancelled order failed",
			zap.String("order_id", cancelled.ID().String()),
			zap.Error(err))
		metrics.SecondaryEffectFailures.WithLabelValues("refund").Inc()
	}
}
