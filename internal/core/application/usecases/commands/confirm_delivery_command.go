package commands

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the student confirming delivery on a
// return job that awaits confirmation. It closes the return leg and the
// whole order.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates the delivery confirmation command.
func NewConfirmDeliveryCommand(jobID kernel.UUID, actor kernel.Actor) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// JobID returns the identifier of the job being confirmed.
func (c ConfirmDeliveryCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the authenticated caller.
func (c ConfirmDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ConfirmDeliveryCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ConfirmDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
