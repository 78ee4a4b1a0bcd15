package job

import (
	"errors"
	"fmt"
	"time"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob/NewAssignedJob/RestoreJob factory functions. This
// ensures all jobs are properly validated.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob, NewAssignedJob or RestoreJob")

// Job represents one unit of physical work tied to one order: either the
// drop-off leg into storage or the return leg back to the student. It is
// the aggregate root for the job lifecycle.
//
// Job maintains these invariants:
//   - Volume and price are positive
//   - The mover reference is unset while the job is Available
//   - The mover reference is set and immutable once the job is Accepted
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through its factory functions
//
// The struct uses private fields to ensure encapsulation; all mutation
// goes through validated methods that enforce actor identity and
// transition legality.
type Job struct {
	id        kernel.UUID
	orderID   kernel.UUID
	studentID kernel.UUID

	// moverID is the assigned mover (nil until the claim is won)
	moverID *kernel.UUID

	jobType Type
	status  Status

	volume         int
	price          kernel.Money
	pickupAddress  kernel.Address
	dropoffAddress kernel.Address

	scheduledAt time.Time

	// verificationRequestedAt is set when the mover signals physical
	// arrival (Storage) or delivery (Return)
	verificationRequestedAt *time.Time

	// calendarEventID is an optional reference to an external calendar entry
	calendarEventID *string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewJob creates a new Job in Available status with no mover assigned.
// All invariants are validated; volume and price must be positive and the
// identifiers and addresses must be properly constructed.
func NewJob(
	id kernel.UUID,
	orderID kernel.UUID,
	studentID kernel.UUID,
	jobType Type,
	volume int,
	price kernel.Money,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledAt time.Time,
) (*Job, error) {
	now := time.Now().UTC()
	j := &Job{
		status:        StatusAvailable,
		createdAt:     now,
		updatedAt:     now,
		scheduledAt:   scheduledAt,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setOrderID(orderID),
		j.setStudentID(studentID),
		j.setJobType(jobType),
		j.setVolume(volume),
		j.setPrice(price),
		j.setPickupAddress(pickupAddress),
		j.setDropoffAddress(dropoffAddress),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// NewAssignedJob creates a Job directly in Accepted status with the given
// mover. Used when an order-placement flow already knows the mover.
func NewAssignedJob(
	id kernel.UUID,
	orderID kernel.UUID,
	studentID kernel.UUID,
	moverID kernel.UUID,
	jobType Type,
	volume int,
	price kernel.Money,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledAt time.Time,
) (*Job, error) {
	j, err := NewJob(id, orderID, studentID, jobType, volume, price, pickupAddress, dropoffAddress, scheduledAt)
	if err != nil {
		return nil, err
	}

	if err = moverID.Validate(); err != nil {
		return nil, err
	}

	j.moverID = &moverID
	j.status = StatusAccepted
	return j, nil
}

// RestoreJob reconstructs a Job from persistence. It re-validates all
// invariants, including the status/mover consistency rule, so a corrupted
// row cannot produce a structurally invalid aggregate.
func RestoreJob(
	id kernel.UUID,
	orderID kernel.UUID,
	studentID kernel.UUID,
	moverID *kernel.UUID,
	jobType Type,
	status Status,
	volume int,
	price kernel.Money,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledAt time.Time,
	verificationRequestedAt *time.Time,
	calendarEventID *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Job, error) {
	j := &Job{
		status:                  status,
		scheduledAt:             scheduledAt,
		verificationRequestedAt: verificationRequestedAt,
		calendarEventID:         calendarEventID,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
		isConstructed:           true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setOrderID(orderID),
		j.setStudentID(studentID),
		j.setJobType(jobType),
		j.setVolume(volume),
		j.setPrice(price),
		j.setPickupAddress(pickupAddress),
		j.setDropoffAddress(dropoffAddress),
		status.Validate(),
		status.ValidateCanHaveMover(moverID != nil),
	); err != nil {
		return nil, err
	}

	if moverID != nil {
		if err := moverID.Validate(); err != nil {
			return nil, err
		}
		j.moverID = moverID
	}

	return j, nil
}

// Validate ensures the Job instance was properly constructed through a
// factory function. Called when reconstructing jobs from persistence.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// OrderID returns the identifier of the owning order.
func (j *Job) OrderID() kernel.UUID {
	return j.orderID
}

// StudentID returns the identifier of the requesting student.
func (j *Job) StudentID() kernel.UUID {
	return j.studentID
}

// Mover returns the assigned mover's ID, or nil if the job is unclaimed.
func (j *Job) Mover() *kernel.UUID {
	return j.moverID
}

// JobType returns whether this is the storage or the return leg.
func (j *Job) JobType() Type {
	return j.jobType
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// Volume returns the job's volume.
func (j *Job) Volume() int {
	return j.volume
}

// Price returns the job's price, which is also the amount credited to
// the mover when the job completes.
func (j *Job) Price() kernel.Money {
	return j.price
}

// PickupAddress returns where the mover collects the items.
func (j *Job) PickupAddress() kernel.Address {
	return j.pickupAddress
}

// DropoffAddress returns where the items end up.
func (j *Job) DropoffAddress() kernel.Address {
	return j.dropoffAddress
}

// ScheduledAt returns the agreed time for the physical work.
func (j *Job) ScheduledAt() time.Time {
	return j.scheduledAt
}

// VerificationRequestedAt returns when the mover signalled arrival or
// delivery, or nil if no confirmation was requested.
func (j *Job) VerificationRequestedAt() *time.Time {
	return j.verificationRequestedAt
}

// CalendarEventID returns the optional external calendar reference.
func (j *Job) CalendarEventID() *string {
	return j.calendarEventID
}

// CreatedAt returns when the job was created.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns when the job was last mutated.
func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

// AttachCalendarEvent records a reference to an external calendar entry.
func (j *Job) AttachCalendarEvent(eventID string) error {
	if eventID == "" {
		return errs.NewValueIsRequiredError("calendar event id")
	}
	j.calendarEventID = &eventID
	j.touch()
	return nil
}

// Accept assigns the job to the given mover and transitions it to
// Accepted.
//
// The in-memory status check is a precondition only: under concurrency the
// repository's conditional claim decides which mover wins, and a lost
// claim surfaces as a conflict there regardless of what this snapshot
// showed.
func (j *Job) Accept(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	if j.moverID != nil {
		return errs.NewConflictError("job", j.id.String())
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.moverID = &moverID
	j.touch()
	return nil
}

// MarkPickedUp transitions the job to PickedUp. Only the assigned mover
// may perform it. For Storage jobs this is the pickup from the student;
// for Return jobs it is picking the items out of storage.
func (j *Job) MarkPickedUp(actorID kernel.UUID) error {
	if err := j.assertAssignedMover(actorID, "pick up"); err != nil {
		return err
	}

	newStatus, err := j.status.PickUp()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// MarkCompleted transitions the job to Completed on the direct path
// (no student confirmation). Only the assigned mover may perform it.
func (j *Job) MarkCompleted(actorID kernel.UUID) error {
	if err := j.assertAssignedMover(actorID, "complete"); err != nil {
		return err
	}

	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// RequestPickupConfirmation moves a Storage job from Accepted into the
// confirmation side channel: the mover signals physical arrival at the
// student's address and the pickup now awaits student confirmation.
// Only the assigned mover may initiate; the job type must be Storage.
func (j *Job) RequestPickupConfirmation(moverID kernel.UUID, at time.Time) error {
	if err := j.assertAssignedMover(moverID, "request pickup confirmation"); err != nil {
		return err
	}

	if j.jobType != TypeStorage {
		return errs.NewInvalidStateError(j.status.String(), StatusAwaitingStudentConfirmation.String())
	}

	if j.status != StatusAccepted {
		return errs.NewInvalidStateError(j.status.String(), StatusAwaitingStudentConfirmation.String())
	}

	newStatus, err := j.status.RequestConfirmation()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.verificationRequestedAt = &at
	j.touch()
	return nil
}

// RequestDeliveryConfirmation moves a Return job from PickedUp into the
// confirmation side channel: the mover signals delivery at the student's
// address. Only the assigned mover may initiate; the job type must be
// Return.
func (j *Job) RequestDeliveryConfirmation(moverID kernel.UUID, at time.Time) error {
	if err := j.assertAssignedMover(moverID, "request delivery confirmation"); err != nil {
		return err
	}

	if j.jobType != TypeReturn {
		return errs.NewInvalidStateError(j.status.String(), StatusAwaitingStudentConfirmation.String())
	}

	if j.status != StatusPickedUp {
		return errs.NewInvalidStateError(j.status.String(), StatusAwaitingStudentConfirmation.String())
	}

	newStatus, err := j.status.RequestConfirmation()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.verificationRequestedAt = &at
	j.touch()
	return nil
}

// ConfirmPickup completes the Storage confirmation side channel: the
// student confirms the mover picked the items up, moving the job to
// PickedUp. Only the job's student may perform it; the identity check
// runs before any status check so a wrong student is always Forbidden.
func (j *Job) ConfirmPickup(studentID kernel.UUID) error {
	if err := j.assertStudent(studentID, "confirm pickup"); err != nil {
		return err
	}

	if j.jobType != TypeStorage || j.status != StatusAwaitingStudentConfirmation {
		return errs.NewInvalidStateError(j.status.String(), StatusPickedUp.String())
	}

	newStatus, err := j.status.PickUp()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// ConfirmDelivery completes the Return confirmation side channel: the
// student confirms delivery, moving the job to Completed. Only the job's
// student may perform it; the identity check runs before any status check.
func (j *Job) ConfirmDelivery(studentID kernel.UUID) error {
	if err := j.assertStudent(studentID, "confirm delivery"); err != nil {
		return err
	}

	if j.jobType != TypeReturn || j.status != StatusAwaitingStudentConfirmation {
		return errs.NewInvalidStateError(j.status.String(), StatusCompleted.String())
	}

	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// Cancel transitions the job to Cancelled. Invoked by order cancellation
// only; there is no direct job-level cancel.
func (j *Job) Cancel() error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// assertAssignedMover verifies that the job has an assigned mover and that
// the actor is that mover. An unclaimed job fails with an invalid-state
// error; a mismatched actor is forbidden.
func (j *Job) assertAssignedMover(actorID kernel.UUID, action string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if j.moverID == nil {
		return errs.NewInvalidStateError(j.status.String(), fmt.Sprintf("%s without an assigned mover", action))
	}

	if !j.moverID.IsEqual(actorID) {
		return errs.NewForbiddenError(actorID.String(), fmt.Sprintf("%s job %s", action, j.id))
	}

	return nil
}

// assertStudent verifies that the actor is the job's student.
func (j *Job) assertStudent(actorID kernel.UUID, action string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if !j.studentID.IsEqual(actorID) {
		return errs.NewForbiddenError(actorID.String(), fmt.Sprintf("%s of job %s", action, j.id))
	}

	return nil
}

func (j *Job) touch() {
	j.updatedAt = time.Now().UTC()
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	j.orderID = orderID
	return nil
}

func (j *Job) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}
	j.studentID = studentID
	return nil
}

func (j *Job) setJobType(jobType Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}
	j.jobType = jobType
	return nil
}

func (j *Job) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%d is not greater than 0", volume))
	}
	j.volume = volume
	return nil
}

func (j *Job) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	j.price = price
	return nil
}

func (j *Job) setPickupAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	j.pickupAddress = addr
	return nil
}

func (j *Job) setDropoffAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	j.dropoffAddress = addr
	return nil
}
