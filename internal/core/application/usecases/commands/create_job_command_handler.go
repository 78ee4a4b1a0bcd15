package commands

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/ports"
)

// CreateJobCommandHandler opens a new job against an existing order. The
// student identity is resolved from the order so a job can never point
// at a different student than its order.
type CreateJobCommandHandler struct {
	uowFactory UoWFactory
	emitter    ports.EventEmitter
}

// NewCreateJobCommandHandler creates a handler for job creation.
func NewCreateJobCommandHandler(uowFactory UoWFactory, emitter ports.EventEmitter) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

// Handle validates the command, resolves the owning order and persists
// the new job in Available status. The job-created event is emitted only
// after the commit.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
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

	owningOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	newJob, err := job.NewJob(
		cmd.JobID(),
		owningOrder.ID(),
		owningOrder.StudentID(),
		cmd.JobType(),
		cmd.Volume(),
		cmd.Price(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.ScheduledAt(),
	)
	if err != nil {
		return err
	}

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitter.EmitJobCreated(ctx, newJob, ports.EventMeta{At: time.Now().UTC()})
	return nil
}
