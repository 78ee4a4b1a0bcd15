package jobrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("jobID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all jobs.
func (r *GormJobRepository) GetAll(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.db.WithContext(ctx).Order("scheduled_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAvailable retrieves all jobs currently open for claiming.
func (r *GormJobRepository) GetAvailable(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Order("scheduled_at, id").
		Find(&dtos, "status = ?", job.StatusAvailable).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByMover retrieves all jobs assigned to the given mover.
func (r *GormJobRepository) GetByMover(ctx context.Context, moverID kernel.UUID) ([]*job.Job, error) {
	if err := moverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Order("scheduled_at, id").
		Find(&dtos, "mover_id = ?", moverID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByStudent retrieves all jobs belonging to the given student.
func (r *GormJobRepository) GetByStudent(ctx context.Context, studentID kernel.UUID) ([]*job.Job, error) {
	if err := studentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Order("scheduled_at, id").
		Find(&dtos, "student_id = ?", studentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByOrder retrieves all jobs of the given order.
func (r *GormJobRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Order("scheduled_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// TryAccept performs the atomic claim: a single conditional UPDATE that
// assigns the mover only while the job is still Available and
// unassigned. Exactly one of any number of concurrent claimers can
// match the WHERE clause; everyone else sees zero affected rows and is
// split into not-found or conflict by a follow-up read.
func (r *GormJobRepository) TryAccept(
	ctx context.Context,
	jobID kernel.UUID,
	moverID kernel.UUID,
) (*job.Job, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}
	if err := moverID.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND status = ? AND mover_id IS NULL", jobID.Bytes(), job.StatusAvailable).
		Updates(map[string]any{
			"mover_id":   moverID.Bytes(),
			"status":     int(job.StatusAccepted),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// The claim did not land: either the job never existed or
		// someone else holds it. The read after the write tells which.
		if _, err := r.Get(ctx, jobID); err != nil {
			return nil, err
		}
		return nil, errs.NewConflictError("jobID", jobID.String())
	}

	claimed, err := r.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(claimed.ID(), claimed)
	return claimed, nil
}

func toDomainSlice(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
