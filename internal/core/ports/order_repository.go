package ports

import (
	"context"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an object-not-found error when no row matches the
	// order's identifier, so a lost order surfaces instead of being
	// silently dropped.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByStudent retrieves the student's current non-terminal
	// order, or an object-not-found error when none is active.
	GetActiveByStudent(ctx context.Context, studentID kernel.UUID) (*order.Order, error)
}
