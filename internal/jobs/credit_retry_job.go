package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

// creditRetryBatchSize bounds how many pending credits one tick drains.
const creditRetryBatchSize = 50

// CreditRetryJob periodically drains the credit task queue: every credit
// that could not be applied when its job completed is retried here until
// it lands. Runs every thirty seconds.
type CreditRetryJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *zap.Logger
}

// NewCreditRetryJob creates the credit retry job.
func NewCreditRetryJob(uowFactory ports.UnitOfWorkFactory, logger *zap.Logger) *CreditRetryJob {
	return &CreditRetryJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With(zap.String("component", "credit_retry_job")),
	}
}

// Start begins the credit retry job.
func (j *CreditRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.drain(ctx); err != nil {
			j.logger.Error("credit retry run failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("credit retry job started (running every 30 seconds)")
	return nil
}

// Stop stops the credit retry job.
func (j *CreditRetryJob) Stop() {
	j.cron.Stop()
	j.logger.Info("credit retry job stopped")
}

// drain fetches one batch of pending tasks and retries each credit. A
// task whose credit lands is removed; a task that fails again only has
// its attempt counter bumped and stays in the queue.
func (j *CreditRetryJob) drain(ctx context.Context) error {
	tasks, err := j.pending(ctx)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if err = j.retry(ctx, task); err != nil {
			j.logger.Warn("credit retry attempt failed",
				zap.String("task_id", task.ID.String()),
				zap.String("mover_id", task.MoverID.String()),
				zap.Int("attempts", task.Attempts+1),
				zap.Error(err))
			metrics.CreditRetries.WithLabelValues("failure").Inc()
			j.markAttempt(ctx, task.ID)
			continue
		}

		metrics.CreditRetries.WithLabelValues("success").Inc()
	}

	return nil
}

func (j *CreditRetryJob) pending(ctx context.Context) ([]ports.CreditTask, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tasks, err := uow.CreditTaskRepository().GetPending(ctx, creditRetryBatchSize)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tasks, nil
}

// retry applies one credit and removes its task in the same
// transaction, so the credit cannot land twice.
func (j *CreditRetryJob) retry(ctx context.Context, task ports.CreditTask) error {
	amount, err := kernel.NewMoney(task.AmountCents)
	if err != nil {
		return err
	}

	uow := j.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().AdjustCredit(ctx, task.MoverID, amount); err != nil {
		return err
	}

	if err = uow.CreditTaskRepository().MarkDone(ctx, task.ID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (j *CreditRetryJob) markAttempt(ctx context.Context, id kernel.UUID) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.Error("failed to record credit retry attempt", zap.Error(err))
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CreditTaskRepository().MarkAttempt(ctx, id); err != nil {
		j.logger.Error("failed to record credit retry attempt",
			zap.String("task_id", id.String()),
			zap.Error(err))
		return
	}

	if err := uow.Commit(ctx); err != nil {
		j.logger.Error("failed to record credit retry attempt",
			zap.String("task_id", id.String()),
			zap.Error(err))
	}
}
