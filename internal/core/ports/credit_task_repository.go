package ports

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/kernel"
)

// CreditTask is a persisted retry record for a mover credit that could
// not be applied when its job completed. A background job drains pending
// tasks until each credit lands exactly once.
type CreditTask struct {
	ID          kernel.UUID
	JobID       kernel.UUID
	MoverID     kernel.UUID
	AmountCents int64
	Attempts    int
	CreatedAt   time.Time
}

// CreditTaskRepository defines the persistence contract for pending
// credit retries.
type CreditTaskRepository interface {
	// Enqueue records a credit that must be retried out of band.
	Enqueue(ctx context.Context, task CreditTask) error

	// GetPending retrieves up to limit pending tasks, oldest first.
	GetPending(ctx context.Context, limit int) ([]CreditTask, error)

	// MarkDone removes a task after its credit was applied.
	MarkDone(ctx context.Context, id kernel.UUID) error

	// MarkAttempt increments the task's attempt counter after a failed
	// retry.
	MarkAttempt(ctx context.Context, id kernel.UUID) error
}
