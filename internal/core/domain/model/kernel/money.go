package kernel

import (
	"fmt"

	"movebox/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created via
// the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney constructor",
)

// Money is a value object for job prices and mover credit deltas, stored as
// integer cents to avoid floating point drift in the credit ledger. Amounts
// are strictly positive; a zero-priced job is a validation error, not a
// free job.
type Money struct { //nolint:recvcheck //using for validation
	cents int64

	isConstructed bool
}

// NewMoney creates a Money value from integer cents. The amount must be
// greater than zero.
func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", cents))
	}

	return Money{cents: cents, isConstructed: true}, nil
}

// Validate ensures the Money value was created through NewMoney.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsEqual reports whether two Money values carry the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as dollars and cents, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
