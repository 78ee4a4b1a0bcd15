package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

// moverCreditor applies the mover's earnings after a job completes. The
// credit is a secondary effect: when the balance update fails the job
// stays completed and the credit is parked in the retry queue, where the
// background retry job drains it.
type moverCreditor struct {
	uowFactory UoWFactory
}

func newMoverCreditor(uowFactory UoWFactory) moverCreditor {
	return moverCreditor{uowFactory: uowFactory}
}

// credit adds the job price to the assigned mover's balance, enqueueing
// a retry task when the update fails. Never returns an error.
func (c moverCreditor) credit(ctx context.Context, j *job.Job) {
	moverID := j.Mover()
	if moverID == nil {
		return
	}

	err := c.adjust(ctx, *moverID, j.Price())
	if err == nil {
		return
	}

	zap.L().Warn("mover credit failed, enqueueing retry",
		zap.String("job_id", j.ID().String()),
		zap.String("mover_id", moverID.String()),
		zap.Error(err))
	metrics.SecondaryEffectFailures.WithLabelValues("credit").Inc()

	if err := c.enqueue(ctx, j, *moverID); err != nil {
		zap.L().Error("failed to enqueue credit retry task",
			zap.String("job_id", j.ID().String()),
			zap.String("mover_id", moverID.String()),
			zap.Error(err))
	}
}

func (c moverCreditor) adjust(ctx context.Context, moverID kernel.UUID, amount kernel.Money) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().AdjustCredit(ctx, moverID, amount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (c moverCreditor) enqueue(ctx context.Context, j *job.Job, moverID kernel.UUID) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	task := ports.CreditTask{
		ID:          kernel.NewUUID(),
		JobID:       j.ID(),
		MoverID:     moverID,
		AmountCents: j.Price().Cents(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := uow.CreditTaskRepository().Enqueue(ctx, task); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// notifyJobStatus sends a job status push notification, logging and
// counting a failed send instead of returning it.
func notifyJobStatus(
	ctx context.Context,
	dispatcher ports.NotificationDispatcher,
	recipientID kernel.UUID,
	jobID kernel.UUID,
	status job.Status,
) {
	if err := dispatcher.SendJobStatusNotification(ctx, recipientID, jobID, status); err != nil {
		zap.L().Warn("job status notification failed",
			zap.String("job_id", jobID.String()),
			zap.String("recipient_id", recipientID.String()),
			zap.String("status", status.String()),
			zap.Error(err))
		metrics.SecondaryEffectFailures.WithLabelValues("notification").Inc()
	}
}
