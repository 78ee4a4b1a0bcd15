package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetJobsByMoverQueryHandler reads a mover's worklist from the database.
type GetJobsByMoverQueryHandler struct {
	db *gorm.DB
}

// NewGetJobsByMoverQueryHandler creates a handler for mover worklist
// queries.
func NewGetJobsByMoverQueryHandler(db *gorm.DB) GetJobsByMoverQueryHandler {
	return GetJobsByMoverQueryHandler{db: db}
}

// Handle executes the query. Returns every job the mover has claimed,
// regardless of status, sorted by scheduled time.
func (h GetJobsByMoverQueryHandler) Handle(
	ctx context.Context,
	query GetJobsByMoverQuery,
) ([]JobReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobSelectColumns+`
		FROM jobs
		WHERE mover_id = ?
		ORDER BY scheduled_at, id
	`, query.MoverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}
