package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetJobsByStudentQueryHandler reads a student's jobs from the database.
type GetJobsByStudentQueryHandler struct {
	db *gorm.DB
}

// NewGetJobsByStudentQueryHandler creates a handler for student job
// queries.
func NewGetJobsByStudentQueryHandler(db *gorm.DB) GetJobsByStudentQueryHandler {
	return GetJobsByStudentQueryHandler{db: db}
}

// Handle executes the query. Returns every job tied to the student's
// orders, sorted by scheduled time.
func (h GetJobsByStudentQueryHandler) Handle(
	ctx context.Context,
	query GetJobsByStudentQuery,
) ([]JobReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobSelectColumns+`
		FROM jobs
		WHERE student_id = ?
		ORDER BY scheduled_at, id
	`, query.StudentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}
