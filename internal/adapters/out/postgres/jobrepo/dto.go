// Package jobrepo provides data transfer objects and mapping functions
// for job persistence. It implements the repository pattern for the job
// aggregate, including the conditional claim write that arbitrates
// between competing movers.
package jobrepo

import (
	"time"

	"github.com/google/uuid"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
)

// JobDTO represents the database structure for persisting job
// aggregates. Indexed by order, student, mover and status to keep the
// board and worklist queries cheap.
type JobDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID                 uuid.UUID  `gorm:"type:uuid;index"`
	StudentID               uuid.UUID  `gorm:"type:uuid;index"`
	MoverID                 *uuid.UUID `gorm:"type:uuid;index"`
	JobType                 int
	Status                  int        `gorm:"index"`
	Volume                  int
	PriceCents              int64
	Pickup                  AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff                 AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	ScheduledAt             time.Time
	VerificationRequestedAt *time.Time
	CalendarEventID         *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// AddressDTO represents an embedded postal address within the job table.
type AddressDTO struct {
	Street string
	City   string
	Zip    string
}

// fromDomain converts a job domain aggregate to its database
// representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var moverID *uuid.UUID
	if id := aggregate.Mover(); id != nil {
		raw := id.Bytes()
		moverID = &raw
	}

	return JobDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		StudentID: aggregate.StudentID().Bytes(),
		MoverID:   moverID,
		JobType:   int(aggregate.JobType()),
		Status:    int(aggregate.Status()),
		Volume:    aggregate.Volume(),
		PriceCents: aggregate.Price().Cents(),
		Pickup: AddressDTO{
			Street: aggregate.PickupAddress().Street(),
			City:   aggregate.PickupAddress().City(),
			Zip:    aggregate.PickupAddress().Zip(),
		},
		Dropoff: AddressDTO{
			Street: aggregate.DropoffAddress().Street(),
			City:   aggregate.DropoffAddress().City(),
			Zip:    aggregate.DropoffAddress().Zip(),
		},
		ScheduledAt:             aggregate.ScheduledAt(),
		VerificationRequestedAt: aggregate.VerificationRequestedAt(),
		CalendarEventID:         aggregate.CalendarEventID(),
		CreatedAt:               aggregate.CreatedAt(),
		UpdatedAt:               aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back into a job aggregate using
// RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	studentID, err := kernel.UUIDFromBytes(dto.StudentID[:])
	if err != nil {
		return nil, err
	}

	var moverID *kernel.UUID
	if dto.MoverID != nil {
		mID, moverErr := kernel.UUIDFromBytes((*dto.MoverID)[:])
		if moverErr != nil {
			return nil, moverErr
		}
		moverID = &mID
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewAddress(dto.Pickup.Street, dto.Pickup.City, dto.Pickup.Zip)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewAddress(dto.Dropoff.Street, dto.Dropoff.City, dto.Dropoff.Zip)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		orderID,
		studentID,
		moverID,
		job.Type(dto.JobType),
		job.Status(dto.Status),
		dto.Volume,
		price,
		pickup,
		dropoff,
		dto.ScheduledAt,
		dto.VerificationRequestedAt,
		dto.CalendarEventID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
