package queries

import (
	"errors"

	"movebox/internal/pkg/guard"
)

var ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
	"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
)

// GetAvailableJobsQuery retrieves the open job board: every job still in
// Available status, waiting for a mover to claim it.
type GetAvailableJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableJobsQuery creates a query for the open job board. This
// is a parameterless query.
func NewGetAvailableJobsQuery() GetAvailableJobsQuery {
	return GetAvailableJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}
