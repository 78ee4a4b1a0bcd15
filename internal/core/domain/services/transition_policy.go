package services

import (
	"fmt"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/errs"
)

// Decision describes the side effects implied by an allowed job status
// transition. The policy only decides; executing the claim, the credit
// and the order propagation is the caller's responsibility.
type Decision struct {
	// RequiresClaim is set when the transition must be executed as a
	// conditional claim at the storage layer (competing movers)
	RequiresClaim bool

	// CreditMover is set when the assigned mover earns the job price
	CreditMover bool

	// NextOrderStatus is the order status implied by the transition,
	// or nil when the order is unaffected
	NextOrderStatus *order.Status
}

// TransitionPolicy is a domain service that judges a requested job status
// change before any write happens. It is deterministic and performs no
// I/O: given the same job snapshot, requested status and actor it always
// returns the same decision.
//
// Business rules:
//   - Only Accepted, PickedUp and Completed are valid requested statuses;
//     cancellation and the student confirmation flow have dedicated
//     operations and are never reachable through a generic status change
//   - Only movers change job statuses, and past the claim only the
//     assigned mover
//   - Identity violations are judged before status legality, so a wrong
//     actor is rejected as forbidden regardless of the job's state
type TransitionPolicy struct {
	mapper OrderStatusMapper
}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{mapper: NewOrderStatusMapper()}
}

// Decide judges the requested transition for the given job snapshot and
// actor. It returns the side-effect decision when the transition is
// allowed, and a taxonomy error (forbidden, conflict or invalid state)
// when it is not.
func (p TransitionPolicy) Decide(j *job.Job, requested job.Status, actor kernel.Actor) (Decision, error) {
	if err := j.Validate(); err != nil {
		return Decision{}, err
	}

	if err := actor.Validate(); err != nil {
		return Decision{}, err
	}

	if err := requested.Validate(); err != nil {
		return Decision{}, err
	}

	switch requested {
	case job.StatusAvailable, job.StatusAwaitingStudentConfirmation, job.StatusCancelled:
		return Decision{}, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a requestable status", requested))
	}

	if !actor.IsMover() {
		return Decision{}, errs.NewForbiddenError(actor.ID().String(),
			fmt.Sprintf("set job %s to %s", j.ID(), requested))
	}

	if requested == job.StatusAccepted {
		return p.decideClaim(j)
	}

	if j.Mover() == nil {
		return Decision{}, errs.NewInvalidStateError(j.Status().String(), requested.String())
	}

	if !j.Mover().IsEqual(actor.ID()) {
		return Decision{}, errs.NewForbiddenError(actor.ID().String(),
			fmt.Sprintf("set job %s to %s", j.ID(), requested))
	}

	var err error
	switch requested {
	case job.StatusPickedUp:
		_, err = j.Status().PickUp()
	case job.StatusCompleted:
		_, err = j.Status().Complete()
	}
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		CreditMover:     requested == job.StatusCompleted,
		NextOrderStatus: p.mapper.Map(j.JobType(), requested),
	}, nil
}

// decideClaim judges the accept transition. The in-memory check rejects
// what is already visibly lost; the storage-layer conditional claim
// remains the single arbiter between concurrent movers.
func (p TransitionPolicy) decideClaim(j *job.Job) (Decision, error) {
	if j.Mover() != nil {
		return Decision{}, errs.NewConflictError("job", j.ID().String())
	}

	if _, err := j.Status().Accept(); err != nil {
		return Decision{}, err
	}

	return Decision{
		RequiresClaim:   true,
		NextOrderStatus: p.mapper.Map(j.JobType(), job.StatusAccepted),
	}, nil
}
