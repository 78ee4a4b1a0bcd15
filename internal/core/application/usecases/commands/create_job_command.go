package commands

import (
	"errors"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrVolumeIsInvalid      = errors.New("volume must be greater than 0")
	ErrScheduledAtIsMissing = errors.New("scheduledAt is required")
)

// CreateJobCommand represents a request to open a new job for an order:
// either the storage leg or the return leg. The job starts Available and
// any mover can claim it.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	orderID     kernel.UUID
	jobType     job.Type
	volume      int
	price       kernel.Money
	pickup      kernel.Address
	dropoff     kernel.Address
	scheduledAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to open a new job. All value
// objects must already be constructed; volume must be positive and the
// scheduled time set.
func NewCreateJobCommand(
	jobID kernel.UUID,
	orderID kernel.UUID,
	jobType job.Type,
	volume int,
	price kernel.Money,
	pickup kernel.Address,
	dropoff kernel.Address,
	scheduledAt time.Time,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setOrderID(orderID),
		cmd.setJobType(jobType),
		cmd.setVolume(volume),
		cmd.setPrice(price),
		cmd.setAddresses(pickup, dropoff),
		cmd.setScheduledAt(scheduledAt),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// OrderID returns the identifier of the owning order.
func (c CreateJobCommand) OrderID() kernel.UUID {
	return c.orderID
}

// JobType returns whether the job is the storage or the return leg.
func (c CreateJobCommand) JobType() job.Type {
	return c.jobType
}

// Volume returns the job volume.
func (c CreateJobCommand) Volume() int {
	return c.volume
}

// Price returns the job price.
func (c CreateJobCommand) Price() kernel.Money {
	return c.price
}

// Pickup returns the pickup address.
func (c CreateJobCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the dropoff address.
func (c CreateJobCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// ScheduledAt returns the agreed time for the physical work.
func (c CreateJobCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateJobCommand) setJobType(jobType job.Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}

	c.jobType = jobType
	return nil
}

func (c *CreateJobCommand) setVolume(volume int) error {
	if volume <= 0 {
		return ErrVolumeIsInvalid
	}

	c.volume = volume
	return nil
}

func (c *CreateJobCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateJobCommand) setAddresses(pickup, dropoff kernel.Address) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

func (c *CreateJobCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsMissing
	}

	c.scheduledAt = scheduledAt
	return nil
}
