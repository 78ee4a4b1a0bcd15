package order

import (
	"errors"
	"fmt"
	"time"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the student-facing aggregate: one storage engagement from
// placement through pickup, storage and eventual return. Its status is
// derived from the progress of the order's jobs and never regresses.
//
// Order maintains these invariants:
//   - Volume and price are positive
//   - Status transitions follow the monotonic state machine on Status
//   - Can only be created through its factory functions
type Order struct {
	id        kernel.UUID
	studentID kernel.UUID

	// moverID is the mover working the order, recorded when the first
	// job is accepted
	moverID *kernel.UUID

	status Status

	volume         int
	price          kernel.Money
	pickupAddress  kernel.Address
	dropoffAddress kernel.Address

	scheduledAt time.Time

	// paymentRef is the external payment reference used for refunds
	paymentRef *string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. All invariants are
// validated; volume and price must be positive and the identifiers and
// addresses must be properly constructed.
func NewOrder(
	id kernel.UUID,
	studentID kernel.UUID,
	volume int,
	price kernel.Money,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledAt time.Time,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        StatusPending,
		scheduledAt:   scheduledAt,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setVolume(volume),
		o.setPrice(price),
		o.setPickupAddress(pickupAddress),
		o.setDropoffAddress(dropoffAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, re-validating all
// invariants so a corrupted row cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	studentID kernel.UUID,
	moverID *kernel.UUID,
	status Status,
	volume int,
	price kernel.Money,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledAt time.Time,
	paymentRef *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		scheduledAt:   scheduledAt,
		paymentRef:    paymentRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setVolume(volume),
		o.setPrice(price),
		o.setPickupAddress(pickupAddress),
		o.setDropoffAddress(dropoffAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if moverID != nil {
		if err := moverID.Validate(); err != nil {
			return nil, err
		}
		o.moverID = moverID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StudentID returns the identifier of the student who placed the order.
func (o *Order) StudentID() kernel.UUID {
	return o.studentID
}

// Mover returns the working mover's ID, or nil if no job was accepted yet.
func (o *Order) Mover() *kernel.UUID {
	return o.moverID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Volume returns the order's volume.
func (o *Order) Volume() int {
	return o.volume
}

// Price returns the total price the student paid.
func (o *Order) Price() kernel.Money {
	return o.price
}

// PickupAddress returns where the items are collected from the student.
func (o *Order) PickupAddress() kernel.Address {
	return o.pickupAddress
}

// DropoffAddress returns the storage facility address.
func (o *Order) DropoffAddress() kernel.Address {
	return o.dropoffAddress
}

// ScheduledAt returns the agreed pickup time.
func (o *Order) ScheduledAt() time.Time {
	return o.scheduledAt
}

// PaymentRef returns the external payment reference, or nil if the order
// was not paid through the gateway.
func (o *Order) PaymentRef() *string {
	return o.paymentRef
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignMover records the mover working the order. Called when the first
// job of the order is accepted. Assigning a different mover to an order
// that already has one is a conflict.
func (o *Order) AssignMover(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	if o.moverID != nil && !o.moverID.IsEqual(moverID) {
		return errs.NewConflictError("order", o.id.String())
	}

	o.moverID = &moverID
	o.touch()
	return nil
}

// TransitionTo moves the order to newStatus, enforcing the monotonic
// progression. Transitioning to the current status is a no-op success so
// retried propagation stays idempotent.
func (o *Order) TransitionTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	if next == o.status {
		return nil
	}

	o.status = next
	o.touch()
	return nil
}

// Cancel transitions the order to Cancelled. Terminal orders cannot be
// cancelled.
func (o *Order) Cancel() error {
	return o.TransitionTo(StatusCancelled)
}

// AttachPaymentRef records the external payment reference.
func (o *Order) AttachPaymentRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	o.paymentRef = &ref
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}
	o.studentID = studentID
	return nil
}

func (o *Order) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%d is not greater than 0", volume))
	}
	o.volume = volume
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setPickupAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	o.pickupAddress = addr
	return nil
}

func (o *Order) setDropoffAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	o.dropoffAddress = addr
	return nil
}
