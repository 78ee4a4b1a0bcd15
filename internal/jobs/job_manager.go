package jobs

import (
	"fmt"

	"go.uber.org/zap"

	"movebox/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	creditRetryJob *CreditRetryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *zap.Logger) *JobManager {
	return &JobManager{
		creditRetryJob: NewCreditRetryJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.creditRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start credit retry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.creditRetryJob.Stop()
}
