package queries

import (
	"errors"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/guard"
)

var ErrGetJobsByStudentQueryIsNotConstructed = errors.New(
	"GetJobsByStudentQuery must be created via NewGetJobsByStudentQuery constructor",
)

// GetJobsByStudentQuery retrieves the jobs belonging to a student's
// orders so the student can follow the progress of their move.
type GetJobsByStudentQuery struct {
	studentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobsByStudentQuery creates a query for a student's jobs.
func NewGetJobsByStudentQuery(studentID kernel.UUID) (GetJobsByStudentQuery, error) {
	if err := studentID.Validate(); err != nil {
		return GetJobsByStudentQuery{}, err
	}

	return GetJobsByStudentQuery{
		studentID: studentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobsByStudentQuery) Validate() error {
	return q.guard.Validate(ErrGetJobsByStudentQueryIsNotConstructed)
}

// StudentID returns the student whose jobs are requested.
func (q GetJobsByStudentQuery) StudentID() kernel.UUID {
	return q.studentID
}
