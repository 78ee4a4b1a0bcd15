// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized models straight from
// the database.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
)

// JobReadModel is the shared job shape returned by the job list queries.
// It carries what the listings need for display and dispatching decisions.
type JobReadModel struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	MoverID     *kernel.UUID
	JobType     job.Type
	Status      job.Status
	Volume      int
	Price       kernel.Money
	Pickup      kernel.Address
	Dropoff     kernel.Address
	ScheduledAt time.Time
}

// jobSelectColumns is the column list every job list query scans. Keeping
// it in one place keeps the queries and scanJobRows in sync.
const jobSelectColumns = `
	id,
	order_id,
	mover_id,
	job_type,
	status,
	volume,
	price_cents,
	pickup_street,
	pickup_city,
	pickup_zip,
	dropoff_street,
	dropoff_city,
	dropoff_zip,
	scheduled_at
`

// scanJobRows converts raw job rows into read models, translating
// database types into domain value objects.
func scanJobRows(rows *sql.Rows) ([]JobReadModel, error) {
	jobs := make([]JobReadModel, 0)

	for rows.Next() {
		var (
			id, orderID    uuid.UUID
			moverID        uuid.NullUUID
			jobType        int
			status         int
			volume         int
			priceCents     int64
			pickupStreet   string
			pickupCity     string
			pickupZip      string
			dropoffStreet  string
			dropoffCity    string
			dropoffZip     string
			scheduledAt    time.Time
		)

		err := rows.Scan(
			&id,
			&orderID,
			&moverID,
			&jobType,
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
		)
		if err != nil {
			return nil, err
		}

		model, err := buildJobReadModel(
			id, orderID, moverID, jobType, status, volume, priceCents,
			pickupStreet, pickupCity, pickupZip,
			dropoffStreet, dropoffCity, dropoffZip,
			scheduledAt,
		)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, model)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func buildJobReadModel(
	id uuid.UUID,
	orderID uuid.UUID,
	moverID uuid.NullUUID,
	jobType int,
	status int,
	volume int,
	priceCents int64,
	pickupStreet, pickupCity, pickupZip string,
	dropoffStreet, dropoffCity, dropoffZip string,
	scheduledAt time.Time,
) (JobReadModel, error) {
	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobReadModel{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return JobReadModel{}, err
	}

	var mover *kernel.UUID
	if moverID.Valid {
		m, moverErr := kernel.UUIDFromBytes(moverID.UUID[:])
		if moverErr != nil {
			return JobReadModel{}, moverErr
		}
		mover = &m
	}

	price, err := kernel.NewMoney(priceCents)
	if err != nil {
		return JobReadModel{}, err
	}

	pickup, err := kernel.NewAddress(pickupStreet, pickupCity, pickupZip)
	if err != nil {
		return JobReadModel{}, err
	}

	dropoff, err := kernel.NewAddress(dropoffStreet, dropoffCity, dropoffZip)
	if err != nil {
		return JobReadModel{}, err
	}

	return JobReadModel{
		ID:          jobID,
		OrderID:     ownerID,
		MoverID:     mover,
		JobType:     job.Type(jobType),
		Status:      job.Status(status),
		Volume:      volume,
		Price:       price,
		Pickup:      pickup,
		Dropoff:     dropoff,
		ScheduledAt: scheduledAt,
	}, nil
}
