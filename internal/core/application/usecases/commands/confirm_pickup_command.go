package commands

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the student confirming that the mover
// picked the items up on a storage job that awaits confirmation.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates the pickup confirmation command.
func NewConfirmPickupCommand(jobID kernel.UUID, actor kernel.Actor) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// JobID returns the identifier of the job being confirmed.
func (c ConfirmPickupCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the authenticated caller.
func (c ConfirmPickupCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ConfirmPickupCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ConfirmPickupCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
