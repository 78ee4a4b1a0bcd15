// Package credittaskrepo persists pending mover credit retries. A task
// is enqueued when a credit could not be applied at job completion and
// removed once the background retry lands it.
package credittaskrepo

import (
	"time"

	"github.com/google/uuid"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/ports"
)

// CreditTaskDTO represents the database structure for pending credit
// retries.
type CreditTaskDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID `gorm:"type:uuid;index"`
	MoverID     uuid.UUID `gorm:"type:uuid;index"`
	AmountCents int64
	Attempts    int
	CreatedAt   time.Time
}

// TableName specifies the database table name for credit task entities.
func (CreditTaskDTO) TableName() string {
	return "credit_tasks"
}

func fromTask(task ports.CreditTask) CreditTaskDTO {
	return CreditTaskDTO{
		ID:          task.ID.Bytes(),
		JobID:       task.JobID.Bytes(),
		MoverID:     task.MoverID.Bytes(),
		AmountCents: task.AmountCents,
		Attempts:    task.Attempts,
		CreatedAt:   task.CreatedAt,
	}
}

func toTask(dto CreditTaskDTO) (ports.CreditTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CreditTask{}, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return ports.CreditTask{}, err
	}

	moverID, err := kernel.UUIDFromBytes(dto.MoverID[:])
	if err != nil {
		return ports.CreditTask{}, err
	}

	return ports.CreditTask{
		ID:          id,
		JobID:       jobID,
		MoverID:     moverID,
		AmountCents: dto.AmountCents,
		Attempts:    dto.Attempts,
		CreatedAt:   dto.CreatedAt,
	}, nil
}
