package commands

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrRequestDeliveryConfirmationCommandIsNotConstructed = errors.New(
	"RequestDeliveryConfirmationCommand must be created via NewRequestDeliveryConfirmationCommand constructor",
)

// RequestDeliveryConfirmationCommand represents the assigned mover
// signalling delivery at the student's address on a return job. The
// completion then awaits the student's confirmation.
type RequestDeliveryConfirmationCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewRequestDeliveryConfirmationCommand creates the delivery signal command.
func NewRequestDeliveryConfirmationCommand(jobID kernel.UUID, actor kernel.Actor) (RequestDeliveryConfirmationCommand, error) {
	cmd := RequestDeliveryConfirmationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return RequestDeliveryConfirmationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryConfirmationCommandIsNotConstructed)
}

// JobID returns the identifier of the job awaiting confirmation.
func (c RequestDeliveryConfirmationCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the authenticated caller.
func (c RequestDeliveryConfirmationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RequestDeliveryConfirmationCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RequestDeliveryConfirmationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
