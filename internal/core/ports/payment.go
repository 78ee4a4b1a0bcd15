package ports

import (
	"context"

	"movebox/internal/core/domain/model/kernel"
)

// PaymentGateway refunds cancelled orders through the external payment
// provider. Refunds are best effort: a failure is logged and the
// cancellation stands.
type PaymentGateway interface {
	// Refund returns the amount against the given payment reference.
	Refund(ctx context.Context, paymentRef string, amount kernel.Money) error
}
