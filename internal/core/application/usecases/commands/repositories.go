// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// durable writes, then best-effort secondary effects.
package commands

import (
	"context"

	"movebox/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CreditTaskRepoFactory provides access to the credit retry queue within a transaction.
	CreditTaskRepoFactory interface {
		CreditTaskRepository() ports.CreditTaskRepository
	}

	// OrderUoW manages transactions for order-only operations. The order
	// propagation step runs in its own OrderUoW, after the job write
	// committed.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across all aggregates. Used by commands
	// that coordinate jobs, orders, user credit and the credit retry
	// queue.
	UoW interface {
		TxManager
		JobRepoFactory
		OrderRepoFactory
		UserRepoFactory
		CreditTaskRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
