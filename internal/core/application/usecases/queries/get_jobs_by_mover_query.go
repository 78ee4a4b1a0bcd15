package queries

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrGetJobsByMoverQueryIsNotConstructed = errors.New(
	"GetJobsByMoverQuery must be created via NewGetJobsByMoverQuery constructor",
)

// GetJobsByMoverQuery retrieves the jobs claimed by a specific mover,
// the mover's personal worklist.
type GetJobsByMoverQuery struct {
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobsByMoverQuery creates a query for a mover's worklist.
func NewGetJobsByMoverQuery(moverID kernel.UUID) (GetJobsByMoverQuery, error) {
	if err := moverID.Validate(); err != nil {
		return GetJobsByMoverQuery{}, err
	}

	return GetJobsByMoverQuery{
		moverID: moverID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobsByMoverQuery) Validate() error {
	return q.guard.Validate(ErrGetJobsByMoverQueryIsNotConstructed)
}

// MoverID returns the mover whose worklist is requested.
func (q GetJobsByMoverQuery) MoverID() kernel.UUID {
	return q.moverID
}
