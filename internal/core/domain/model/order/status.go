package order

import (
	"fmt"

	"movebox/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It aggregates the
// progress of the order's jobs into the student-facing view.
//
// State progression:
//
//	Pending ──> Accepted ──> PickedUp ──> InStorage ──> Returned
//
// with Cancelled reachable from any non-terminal state. An order status
// never regresses: transitions are only allowed to a status of equal or
// higher rank, so stale or reordered propagation can never move an order
// backwards. Returned and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after order placement, before
	// any job has been accepted.
	StatusPending

	// StatusAccepted indicates a mover accepted a job of this order.
	StatusAccepted

	// StatusPickedUp indicates the storage-leg items were collected
	// from the student.
	StatusPickedUp

	// StatusInStorage indicates the storage leg completed and the items
	// sit in the facility.
	StatusInStorage

	// StatusReturned indicates the return leg completed. Terminal.
	StatusReturned

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusPickedUp:  "PickedUp",
		StatusInStorage: "InStorage",
		StatusReturned:  "Returned",
		StatusCancelled: "Cancelled",
	}
}

// rank orders the statuses along the forward progression. Cancelled is
// outside the progression and handled separately.
func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 1
	case StatusAccepted:
		return 2
	case StatusPickedUp:
		return 3
	case StatusInStorage:
		return 4
	case StatusReturned:
		return 5
	default:
		return 0
	}
}

// Validate checks if the Status value is one of the defined order statuses.
func (s Status) Validate() error {
	if s.rank() == 0 && s != StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusReturned || s == StatusCancelled
}

// TransitionTo validates the move from the current status to newStatus
// and returns the resulting status.
//
// Rules:
//   - Cancelled is reachable from any non-terminal status
//   - otherwise newStatus must have equal or higher rank than the current
//     status (equal rank makes retried propagation idempotent)
//   - terminal statuses allow no transitions
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError(s.String(), newStatus.String())
	}

	if newStatus == StatusCancelled {
		return StatusCancelled, nil
	}

	if newStatus.rank() < s.rank() {
		return 0, errs.NewInvalidStateError(s.String(), newStatus.String())
	}

	return newStatus, nil
}
