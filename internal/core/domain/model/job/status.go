package job

import (
	"fmt"

	"movebox/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct business workflow.
//
// Main path:
//
//	Available ──> Accepted ──> PickedUp ──> Completed
//
// Confirmation side channel (entered by an explicit mover action, exited
// by the other party):
//
//	Accepted ──> AwaitingStudentConfirmation ──> PickedUp   (Storage jobs)
//	PickedUp ──> AwaitingStudentConfirmation ──> Completed  (Return jobs)
//
// Cancelled is reachable from any non-terminal state via order
// cancellation. Completed and Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. Job-type gating of
// the side channel is enforced by the Job aggregate, not here.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAvailable is the initial status: the job is visible to all
	// movers and has no mover assigned.
	StatusAvailable

	// StatusAccepted indicates exactly one mover won the claim and is
	// now assigned. The mover reference is immutable from here on.
	StatusAccepted

	// StatusPickedUp indicates the assigned mover holds the items.
	StatusPickedUp

	// StatusAwaitingStudentConfirmation indicates the mover signalled
	// physical arrival or delivery and the student must confirm.
	StatusAwaitingStudentConfirmation

	// StatusCompleted indicates the job's leg finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the owning order was cancelled. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                     "Unknown",
		StatusAvailable:                   "Available",
		StatusAccepted:                    "Accepted",
		StatusPickedUp:                    "PickedUp",
		StatusAwaitingStudentConfirmation: "AwaitingStudentConfirmation",
		StatusCompleted:                   "Completed",
		StatusCancelled:                   "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:                   "Available",
		StatusAccepted:                    "Accepted",
		StatusPickedUp:                    "PickedUp",
		StatusAwaitingStudentConfirmation: "AwaitingStudentConfirmation",
		StatusCompleted:                   "Completed",
		StatusCancelled:                   "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined job statuses.
// Used to ensure values arriving from the database or API are valid
// before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value, including
// invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Available -> Accepted (mover wins the claim)
//
// The in-memory check is a precondition only; at-most-one acceptance under
// concurrency is guaranteed by the repository's conditional claim, which is
// the single source of truth for the race.
func (s Status) Accept() (Status, error) {
	if s != StatusAvailable {
		return 0, errs.NewInvalidStateError(s.String(), StatusAccepted.String())
	}

	return StatusAccepted, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Accepted -> PickedUp (mover collected the items)
//   - AwaitingStudentConfirmation -> PickedUp (student confirmed pickup)
func (s Status) PickUp() (Status, error) {
	if s != StatusAccepted && s != StatusAwaitingStudentConfirmation {
		return 0, errs.NewInvalidStateError(s.String(), StatusPickedUp.String())
	}

	return StatusPickedUp, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - PickedUp -> Completed (direct path, no student confirmation)
//   - AwaitingStudentConfirmation -> Completed (student confirmed delivery)
func (s Status) Complete() (Status, error) {
	if s != StatusPickedUp && s != StatusAwaitingStudentConfirmation {
		return 0, errs.NewInvalidStateError(s.String(), StatusCompleted.String())
	}

	return StatusCompleted, nil
}

// RequestConfirmation transitions the status to AwaitingStudentConfirmation.
//
// Valid transitions:
//   - Accepted -> AwaitingStudentConfirmation (mover arrived, Storage jobs)
//   - PickedUp -> AwaitingStudentConfirmation (mover delivered, Return jobs)
//
// Which of the two origins is legal for a given job depends on its type;
// the Job aggregate enforces that pairing.
func (s Status) RequestConfirmation() (Status, error) {
	if s != StatusAccepted && s != StatusPickedUp {
		return 0, errs.NewInvalidStateError(s.String(), StatusAwaitingStudentConfirmation.String())
	}

	return StatusAwaitingStudentConfirmation, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancellation is driven by order
// cancellation only; there is no direct job-level cancel operation.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError(s.String(), StatusCancelled.String())
	}

	return StatusCancelled, nil
}

// ValidateCanHaveMover validates the consistency between job status and
// mover assignment.
//
// Business rules:
//   - Available jobs must not have a mover assigned
//   - Every status past Available (except Cancelled before acceptance)
//     must have a mover assigned
func (s Status) ValidateCanHaveMover(mover bool) error {
	if mover && s == StatusAvailable {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a mover", s.String()))
	}

	if !mover && (s == StatusAccepted || s == StatusPickedUp ||
		s == StatusAwaitingStudentConfirmation || s == StatusCompleted) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no mover", s.String()))
	}

	return nil
}
