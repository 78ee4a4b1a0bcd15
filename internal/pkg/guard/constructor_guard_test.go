package guard_test

import (
	"errors"
	"testing"

	"movebox/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding of
// ConstructorGuard in a value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type price struct {
		cents int
		guard guard.ConstructorGuard
	}

	var errPriceNotConstructed = errors.New("price must be created via newPrice")

	newPrice := func(cents int) (price, error) {
		if cents <= 0 {
			return price{}, errors.New("cents must be positive")
		}
		return price{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	validatePrice := func(p price) error {
		return p.guard.Validate(errPriceNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newPrice(2500)

		require.NoError(t, err)
		require.NoError(t, validatePrice(p))
		assert.Equal(t, 2500, p.cents)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var p price // zero value

		err := validatePrice(p)

		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})
}
