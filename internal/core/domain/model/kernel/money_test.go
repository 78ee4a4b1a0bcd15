package kernel_test

import (
	"testing"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create a valid amount", func(t *testing.T) {
		m, err := kernel.NewMoney(12500)

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.Equal(t, int64(12500), m.Cents())
		assert.Equal(t, "125.00", m.String())
	})

	t.Run("zero is rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-500)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	m1, _ := kernel.NewMoney(100)
	m2, _ := kernel.NewMoney(100)
	m3, _ := kernel.NewMoney(200)

	assert.True(t, m1.IsEqual(m2))
	assert.False(t, m1.IsEqual(m3))
}
