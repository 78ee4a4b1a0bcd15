package order_test

import (
	"testing"
	"time"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(12500)
	require.NoError(t, err)
	pickup, err := kernel.NewAddress("12 College Walk", "Cambridge", "CB2 1TN")
	require.NoError(t, err)
	dropoff, err := kernel.NewAddress("Unit 4, Depot Lane", "Cambridge", "CB4 2QT")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		3,
		price,
		pickup,
		dropoff,
		time.Now().UTC().Add(48*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Mover())
		assert.Nil(t, o.PaymentRef())
		assert.Equal(t, 3, o.Volume())
		assert.False(t, o.CreatedAt().IsZero())
		assert.False(t, o.UpdatedAt().IsZero())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		addr, _ := kernel.NewAddress("1 Street", "Town", "")

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), 1, price, addr, addr, time.Now())
		require.Error(t, err)
	})

	t.Run("should fail with non-positive volume", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		addr, _ := kernel.NewAddress("1 Street", "Town", "")

		for _, volume := range []int{0, -5} {
			_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), volume, price, addr, addr, time.Now())
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		addr, _ := kernel.NewAddress("1 Street", "Town", "")

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.Money{}, addr, addr, time.Now())
		require.Error(t, err)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, 0, kernel.Money{}, kernel.Address{}, kernel.Address{}, time.Now())
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for zero-value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	price, _ := kernel.NewMoney(9900)
	pickup, _ := kernel.NewAddress("5 High Street", "Oxford", "OX1 4AA")
	dropoff, _ := kernel.NewAddress("Storage Park 2", "Oxford", "OX2 0ES")
	now := time.Now().UTC()

	t.Run("should restore order with mover and payment ref", func(t *testing.T) {
		moverID := kernel.NewUUID()
		ref := "pay_01HZX"

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &moverID,
			order.StatusInStorage, 2, price, pickup, dropoff,
			now.Add(24*time.Hour), &ref, now.Add(-time.Hour), now,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusInStorage, o.Status())
		require.NotNil(t, o.Mover())
		assert.True(t, o.Mover().IsEqual(moverID))
		require.NotNil(t, o.PaymentRef())
		assert.Equal(t, ref, *o.PaymentRef())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			order.Status(42), 2, price, pickup, dropoff,
			now, nil, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignMover(t *testing.T) {
	t.Run("should assign mover to fresh order", func(t *testing.T) {
		o := newTestOrder(t)
		moverID := kernel.NewUUID()

		require.NoError(t, o.AssignMover(moverID))
		require.NotNil(t, o.Mover())
		assert.True(t, o.Mover().IsEqual(moverID))
	})

	t.Run("should accept re-assignment of the same mover", func(t *testing.T) {
		o := newTestOrder(t)
		moverID := kernel.NewUUID()

		require.NoError(t, o.AssignMover(moverID))
		require.NoError(t, o.AssignMover(moverID))
	})

	t.Run("should reject a different mover", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignMover(kernel.NewUUID()))
		err := o.AssignMover(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject unconstructed mover id", func(t *testing.T) {
		o := newTestOrder(t)
		assert.Error(t, o.AssignMover(kernel.UUID{}))
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should advance through the full lifecycle", func(t *testing.T) {
		o := newTestOrder(t)

		for _, next := range []order.Status{
			order.StatusAccepted,
			order.StatusPickedUp,
			order.StatusInStorage,
			order.StatusReturned,
		} {
			require.NoError(t, o.TransitionTo(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should treat same-status transition as no-op", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusAccepted))
		before := o.UpdatedAt()

		require.NoError(t, o.TransitionTo(order.StatusAccepted))
		assert.Equal(t, order.StatusAccepted, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})

	t.Run("should reject regression", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusInStorage))

		err := o.TransitionTo(order.StatusAccepted)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.StatusInStorage, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel an in-flight order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusAccepted))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should reject cancelling a returned order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusReturned))

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_AttachPaymentRef(t *testing.T) {
	t.Run("should attach payment reference", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AttachPaymentRef("pay_42"))
		require.NotNil(t, o.PaymentRef())
		assert.Equal(t, "pay_42", *o.PaymentRef())
	})

	t.Run("should reject empty reference", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AttachPaymentRef("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		a := newTestOrder(t)
		b := newTestOrder(t)

		assert.True(t, a.IsEqual(a))
		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
