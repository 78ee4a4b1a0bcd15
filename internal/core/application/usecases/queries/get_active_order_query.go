package queries

import (
	"errors"
	"time"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/guard"
)

var ErrGetActiveOrderQueryIsNotConstructed = errors.New(
	"GetActiveOrderQuery must be created via NewGetActiveOrderQuery constructor",
)

// GetActiveOrderQuery retrieves a student's active order, the one that
// has not yet reached Returned or Cancelled. A student has at most one
// active order at a time.
type GetActiveOrderQuery struct {
	studentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrderQuery creates a query for a student's active order.
func NewGetActiveOrderQuery(studentID kernel.UUID) (GetActiveOrderQuery, error) {
	if err := studentID.Validate(); err != nil {
		return GetActiveOrderQuery{}, err
	}

	return GetActiveOrderQuery{
		studentID: studentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrderQueryIsNotConstructed)
}

// StudentID returns the student whose active order is requested.
func (q GetActiveOrderQuery) StudentID() kernel.UUID {
	return q.studentID
}

// GetActiveOrderQueryResponse is the active order read model.
type GetActiveOrderQueryResponse struct {
	ID          kernel.UUID
	MoverID     *kernel.UUID
	Status      order.Status
	Volume      int
	Price       kernel.Money
	Pickup      kernel.Address
	Dropoff     kernel.Address
	ScheduledAt time.Time
	PaymentRef  *string
}
