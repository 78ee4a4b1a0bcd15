package commands

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrRequestPickupConfirmationCommandIsNotConstructed = errors.New(
	"RequestPickupConfirmationCommand must be created via NewRequestPickupConfirmationCommand constructor",
)

// RequestPickupConfirmationCommand represents the assigned mover
// signalling physical arrival at the student's address on a storage job.
// The pickup then awaits the student's confirmation.
type RequestPickupConfirmationCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewRequestPickupConfirmationCommand creates the arrival signal command.
func NewRequestPickupConfirmationCommand(jobID kernel.UUID, actor kernel.Actor) (RequestPickupConfirmationCommand, error) {
	cmd := RequestPickupConfirmationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return RequestPickupConfirmationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPickupConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrRequestPickupConfirmationCommandIsNotConstructed)
}

// JobID returns the identifier of the job awaiting confirmation.
func (c RequestPickupConfirmationCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the authenticated caller.
func (c RequestPickupConfirmationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RequestPickupConfirmationCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RequestPickupConfirmationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
