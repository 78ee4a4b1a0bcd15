package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetJobsByOrderQueryHandler reads the jobs of one order from the
// database.
type GetJobsByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetJobsByOrderQueryHandler creates a handler for order job queries.
func NewGetJobsByOrderQueryHandler(db *gorm.DB) GetJobsByOrderQueryHandler {
	return GetJobsByOrderQueryHandler{db: db}
}

// Handle executes the query. The storage leg sorts before the return leg
// because it is always scheduled earlier.
func (h GetJobsByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetJobsByOrderQuery,
) ([]JobReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobSelectColumns+`
		FROM jobs
		WHERE order_id = ?
		ORDER BY scheduled_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}
