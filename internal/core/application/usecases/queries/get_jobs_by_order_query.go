package queries

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrGetJobsByOrderQueryIsNotConstructed = errors.New(
	"GetJobsByOrderQuery must be created via NewGetJobsByOrderQuery constructor",
)

// GetJobsByOrderQuery retrieves both legs of a single order, the storage
// leg and the return leg.
type GetJobsByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobsByOrderQuery creates a query for an order's jobs.
func NewGetJobsByOrderQuery(orderID kernel.UUID) (GetJobsByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetJobsByOrderQuery{}, err
	}

	return GetJobsByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetJobsByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose jobs are requested.
func (q GetJobsByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
