package commands

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a mover's attempt to claim an available
// job. Any number of movers may race for the same job; at most one wins.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command to claim a job for the actor.
func NewAcceptJobCommand(jobID kernel.UUID, actor kernel.Actor) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being claimed.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the authenticated caller.
func (c AcceptJobCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
