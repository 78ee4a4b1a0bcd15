package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/errs"
)

// GetActiveOrderQueryHandler reads a student's active order from the
// database.
type GetActiveOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrderQueryHandler creates a handler for active order
// queries.
func NewGetActiveOrderQueryHandler(db *gorm.DB) GetActiveOrderQueryHandler {
	return GetActiveOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ErrObjectNotFound when the student
// has no order outside Returned and Cancelled.
func (h GetActiveOrderQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrderQuery,
) (GetActiveOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			mover_id,
			status,
			volume,
			price_cents,
			pickup_street,
			pickup_city,
			pickup_zip,
			dropoff_street,
			dropoff_city,
			dropoff_zip,
			scheduled_at,
			payment_ref
		FROM orders
		WHERE student_id = ? AND status <> ALL(?)
		ORDER BY created_at DESC
		LIMIT 1
	`, query.StudentID().Bytes(), pq.Array([]int{int(order.StatusReturned), int(order.StatusCancelled)})).Rows()
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetActiveOrderQueryResponse{}, err
		}
		return GetActiveOrderQueryResponse{},
			errs.NewObjectNotFoundError("studentID", query.StudentID())
	}

	var (
		id            uuid.UUID
		moverID       uuid.NullUUID
		status        int
		volume        int
		priceCents    int64
		pickupStreet  string
		pickupCity    string
		pickupZip     string
		dropoffStreet string
		dropoffCity   string
		dropoffZip    string
		scheduledAt   time.Time
		paymentRef    sql.NullString
	)

	err = rows.Scan(
		&id,
		&moverID,
		&status,
		&volume,
		&priceCents,
		&pickupStreet,
		&pickupCity,
		&pickupZip,
		&dropoffStreet,
		&dropoffCity,
		&dropoffZip,
		&scheduledAt,
		&paymentRef,
	)
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	var mover *kernel.UUID
	if moverID.Valid {
		m, moverErr := kernel.UUIDFromBytes(moverID.UUID[:])
		if moverErr != nil {
			return GetActiveOrderQueryResponse{}, moverErr
		}
		mover = &m
	}

	price, err := kernel.NewMoney(priceCents)
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	pickup, err := kernel.NewAddress(pickupStreet, pickupCity, pickupZip)
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	dropoff, err := kernel.NewAddress(dropoffStreet, dropoffCity, dropoffZip)
	if err != nil {
		return GetActiveOrderQueryResponse{}, err
	}

	var ref *string
	if paymentRef.Valid {
		ref = &paymentRef.String
	}

	return GetActiveOrderQueryResponse{
		ID:          orderID,
		MoverID:     mover,
		Status:      order.Status(status),
		Volume:      volume,
		Price:       price,
		Pickup:      pickup,
		Dropoff:     dropoff,
		ScheduledAt: scheduledAt,
		PaymentRef:  ref,
	}, nil
}
