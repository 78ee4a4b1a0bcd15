package commands

import (
	"errors"
	"time"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderVolumeIsInvalid      = errors.New("volume must be greater than 0")
	ErrOrderScheduledAtIsMissing = errors.New("scheduledAt is required")
)

// CreateOrderCommand represents a student placing a new storage order.
// The order starts Pending; its jobs are opened separately.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	volume      int
	price       kernel.Money
	pickup      kernel.Address
	dropoff     kernel.Address
	scheduledAt time.Time
	paymentRef  *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. The
// payment reference is optional and recorded for later refunds.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	volume int,
	price kernel.Money,
	pickup kernel.Address,
	dropoff kernel.Address,
	scheduledAt time.Time,
	paymentRef *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentRef: paymentRef,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setVolume(volume),
		cmd.setPrice(price),
		cmd.setAddresses(pickup, dropoff),
		cmd.setScheduledAt(scheduledAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Volume returns the order volume.
func (c CreateOrderCommand) Volume() int {
	return c.volume
}

// Price returns the total order price.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Pickup returns the pickup address.
func (c CreateOrderCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the storage facility address.
func (c CreateOrderCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// ScheduledAt returns the agreed pickup time.
func (c CreateOrderCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// PaymentRef returns the optional external payment reference.
func (c CreateOrderCommand) PaymentRef() *string {
	return c.paymentRef
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setVolume(volume int) error {
	if volume <= 0 {
		return ErrOrderVolumeIsInvalid
	}

	c.volume = volume
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickup, dropoff kernel.Address) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

func (c *CreateOrderCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrOrderScheduledAtIsMissing
	}

	c.scheduledAt = scheduledAt
	return nil
}
