package kernel_test

import (
	"strings"
	"testing"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create a valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 College Ave", "Boston", "02215")

		require.NoError(t, err)
		assert.NoError(t, addr.Validate())
		assert.Equal(t, "12 College Ave", addr.Street())
		assert.Equal(t, "Boston", addr.City())
		assert.Equal(t, "02215", addr.Zip())
	})

	t.Run("zip may be empty", func(t *testing.T) {
		addr, err := kernel.NewAddress("Warehouse Dock 3", "Somerville", "")

		require.NoError(t, err)
		assert.Equal(t, "Warehouse Dock 3, Somerville", addr.String())
	})

	t.Run("street is required", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Boston", "02215")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("city is required", func(t *testing.T) {
		_, err := kernel.NewAddress("12 College Ave", "", "02215")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("overlong street is rejected", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("x", 256), "Boston", "02215")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a1, _ := kernel.NewAddress("12 College Ave", "Boston", "02215")
	a2, _ := kernel.NewAddress("12 College Ave", "Boston", "02215")
	a3, _ := kernel.NewAddress("99 Elm St", "Boston", "02215")

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(a3))
}

func TestAddress_String(t *testing.T) {
	addr, _ := kernel.NewAddress("12 College Ave", "Boston", "02215")

	assert.Equal(t, "12 College Ave, Boston 02215", addr.String())
}
