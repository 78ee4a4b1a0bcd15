package queries

import (
	"context"

	"gorm.io/gorm"

	"movebox/internal/core/domain/model/job"
)

// GetAvailableJobsQueryHandler reads the open job board from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetAvailableJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableJobsQueryHandler creates a handler for the open job
// board query.
func NewGetAvailableJobsQueryHandler(db *gorm.DB) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{db: db}
}

// Handle executes the query. Returns Available jobs sorted by scheduled
// time so the soonest work surfaces first.
func (h GetAvailableJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableJobsQuery,
) ([]JobReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobSelectColumns+`
		FROM jobs
		WHERE status = ?
		ORDER BY scheduled_at, id
	`, job.StatusAvailable).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}
