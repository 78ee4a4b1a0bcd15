package credittaskrepo

import (
	"context"

	"gorm.io/gorm"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/errs"
)

// GormCreditTaskRepository implements CreditTaskRepository using GORM.
type GormCreditTaskRepository struct {
	db *gorm.DB
}

// NewGormCreditTaskRepository creates a new GORM credit task repository.
func NewGormCreditTaskRepository(db *gorm.DB) *GormCreditTaskRepository {
	return &GormCreditTaskRepository{db: db}
}

// Enqueue records a credit that must be retried out of band.
func (r *GormCreditTaskRepository) Enqueue(ctx context.Context, task ports.CreditTask) error {
	if err := task.ID.Validate(); err != nil {
		return err
	}

	dto := fromTask(task)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit pending tasks, oldest first.
func (r *GormCreditTaskRepository) GetPending(ctx context.Context, limit int) ([]ports.CreditTask, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []CreditTaskDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]ports.CreditTask, 0, len(dtos))
	for _, dto := range dtos {
		task, taskErr := toTask(dto)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// MarkDone removes a task after its credit was applied.
func (r *GormCreditTaskRepository) MarkDone(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CreditTaskDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("creditTaskID", id.String())
	}

	return nil
}

// MarkAttempt increments the task's attempt counter after a failed
// retry.
func (r *GormCreditTaskRepository) MarkAttempt(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CreditTaskDTO{}).
		Where("id = ?", id.Bytes()).
		Update("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("creditTaskID", id.String())
	}

	return nil
}
