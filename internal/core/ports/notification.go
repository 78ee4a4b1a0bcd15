package ports

import (
	"context"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
)

// NotificationDispatcher delivers push notifications about job status
// changes. Delivery is best effort from the caller's point of view:
// handlers log a failed send and move on, and token housekeeping (such
// as dropping tokens the push service reports as unregistered) happens
// inside the implementation.
type NotificationDispatcher interface {
	// SendJobStatusNotification notifies the recipient that the job
	// reached the given status.
	SendJobStatusNotification(ctx context.Context, recipientID kernel.UUID, jobID kernel.UUID, status job.Status) error
}
