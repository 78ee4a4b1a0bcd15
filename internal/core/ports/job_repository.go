package ports

import (
	"context"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and querying jobs, plus the
// conditional claim that arbitrates between competing movers.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// Returns an object-not-found error when the job does not exist.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns an object-not-found error when the job does not exist.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAll retrieves all jobs.
	GetAll(ctx context.Context) ([]*job.Job, error)

	// GetAvailable retrieves all jobs currently open for claiming.
	GetAvailable(ctx context.Context) ([]*job.Job, error)

	// GetByMover retrieves all jobs assigned to the given mover.
	GetByMover(ctx context.Context, moverID kernel.UUID) ([]*job.Job, error)

	// GetByStudent retrieves all jobs belonging to the given student.
	GetByStudent(ctx context.Context, studentID kernel.UUID) ([]*job.Job, error)

	// GetByOrder retrieves all jobs of the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error)

	// TryAccept atomically claims the job for the mover: a single
	// conditional write that succeeds only while the job is still
	// Available and unassigned. At most one of any number of
	// concurrent callers wins. On success the claimed job is returned;
	// a job that exists but was already claimed yields a conflict
	// error, a missing job an object-not-found error.
	TryAccept(ctx context.Context, jobID kernel.UUID, moverID kernel.UUID) (*job.Job, error)
}
