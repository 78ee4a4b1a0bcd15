package commands

import (
	"errors"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrUpdateJobStatusCommandIsNotConstructed = errors.New(
	"UpdateJobStatusCommand must be created via NewUpdateJobStatusCommand constructor",
)

// UpdateJobStatusCommand represents a mover's request to move a job to a
// new status through the generic status update path. Claiming,
// cancellation and the student confirmation flow have their own
// commands; the policy rejects those statuses here.
type UpdateJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	status job.Status
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateJobStatusCommand creates a command to change a job's status.
// The requested status must be a defined job status; whether the
// transition is allowed is judged by the handler against the current
// job state.
func NewUpdateJobStatusCommand(jobID kernel.UUID, status job.Status, actor kernel.Actor) (UpdateJobStatusCommand, error) {
	cmd := UpdateJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setStatus(status),
		cmd.setActor(actor),
	); err != nil {
		return UpdateJobStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobStatusCommandIsNotConstructed)
}

// JobID returns the identifier of the job being updated.
func (c UpdateJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// Status returns the requested status.
func (c UpdateJobStatusCommand) Status() job.Status {
	return c.status
}

// Actor returns the authenticated caller.
func (c UpdateJobStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdateJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateJobStatusCommand) setStatus(status job.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateJobStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
