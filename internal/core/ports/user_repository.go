package ports

import (
	"context"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates,
// covering both students and movers.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an object-not-found error when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// AdjustCredit atomically adds delta to the mover's credit balance
	// at the storage layer, so concurrent completions never lose an
	// increment. Returns an object-not-found error when the mover does
	// not exist.
	AdjustCredit(ctx context.Context, moverID kernel.UUID, delta kernel.Money) error

	// GetFcmToken retrieves the user's registered push token, or an
	// object-not-found error when the user has none.
	GetFcmToken(ctx context.Context, userID kernel.UUID) (string, error)

	// ClearInvalidFcmToken forgets a token the push service reported as
	// unregistered, wherever it is stored.
	ClearInvalidFcmToken(ctx context.Context, token string) error
}
