package ports

import (
	"context"
	"time"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
)

// EventMeta carries the provenance of a domain event: who caused it and
// when. A nil By means the system itself; a zero At defaults to the
// emission time.
type EventMeta struct {
	By *kernel.UUID
	At time.Time
}

// EventEmitter publishes lifecycle events for external consumers. The
// methods return no error: emission is fire and forget, and failures are
// contained and logged inside the implementation so a broken broker can
// never fail a business operation.
type EventEmitter interface {
	// EmitJobCreated publishes that a new job was opened.
	EmitJobCreated(ctx context.Context, aggregate *job.Job, meta EventMeta)

	// EmitJobUpdated publishes that a job changed status or assignment.
	EmitJobUpdated(ctx context.Context, aggregate *job.Job, meta EventMeta)

	// EmitOrderCreated publishes that a new order was placed.
	EmitOrderCreated(ctx context.Context, aggregate *order.Order, meta EventMeta)

	// EmitOrderUpdated publishes that an order changed status.
	EmitOrderUpdated(ctx context.Context, aggregate *order.Order, meta EventMeta)
}
