package delivery_test

import (
	"testing"
	"time"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(10))
	require.NoError(t, err)
	return d
}

// moveTo drives a fresh delivery along the happy path until it reaches target.
func moveTo(t *testing.T, d *delivery.Delivery, target delivery.Status) {
	t.Helper()
	if target == delivery.Failed {
		require.NoError(t, d.MarkFailed())
		return
	}
	steps := []func() error{d.MarkAssigned, d.MarkPickedUp, d.MarkInTransit, d.MarkDelivered}
	for _, step := range steps {
		if d.Status() == target {
			return
		}
		require.NoError(t, step())
	}
}

func TestNewDelivery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID, courierID := kernel.NewUUID(), kernel.NewUUID()
		d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, courierID, decimal.NewFromInt(3))

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.True(t, orderID.IsEqual(d.OrderID()))
		assert.True(t, courierID.IsEqual(d.CourierID()))
		assert.WithinDuration(t, time.Now().UTC(), d.AssignedAt(), time.Second)
		assert.Nil(t, d.PickedUpAt())
		assert.Nil(t, d.DeliveredAt())
		assert.Nil(t, d.EstimatedDeliveryTime())
		assert.True(t, d.IsActive())
	})

	t.Run("zero distance allowed", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), decimal.Zero)
		require.NoError(t, err)
	})

	tests := []struct {
		name      string
		orderID   kernel.UUID
		courierID kernel.UUID
		distance  decimal.Decimal
		wantErr   error
	}{
		{name: "missing order", orderID: kernel.UUID{}, courierID: kernel.NewUUID(), distance: decimal.NewFromInt(1), wantErr: errs.ErrValueIsRequired},
		{name: "missing courier", orderID: kernel.NewUUID(), courierID: kernel.UUID{}, distance: decimal.NewFromInt(1), wantErr: errs.ErrValueIsRequired},
		{name: "negative distance", orderID: kernel.NewUUID(), courierID: kernel.NewUUID(), distance: decimal.NewFromInt(-1), wantErr: errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := delivery.NewDelivery(kernel.NewUUID(), tt.orderID, tt.courierID, tt.distance)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, d)
		})
	}
}

func TestDelivery_HappyPath(t *testing.T) {
	d := newDelivery(t)

	require.NoError(t, d.MarkAssigned())
	assert.Equal(t, delivery.Assigned, d.Status())

	require.NoError(t, d.MarkPickedUp())
	require.NotNil(t, d.PickedUpAt())

	require.NoError(t, d.MarkInTransit())
	assert.Nil(t, d.DeliveredAt())

	require.NoError(t, d.MarkDelivered())
	assert.Equal(t, delivery.Delivered, d.Status())
	require.NotNil(t, d.DeliveredAt())
	assert.False(t, d.DeliveredAt().Before(*d.PickedUpAt()))
	assert.False(t, d.IsActive())
}

func TestDelivery_IllegalTransitions(t *testing.T) {
	t.Run("skip pickup", func(t *testing.T) {
		d := newDelivery(t)
		moveTo(t, d, delivery.Assigned)

		require.ErrorIs(t, d.MarkInTransit(), errs.ErrInvalidState)
		require.ErrorIs(t, d.MarkDelivered(), errs.ErrInvalidState)
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("assign twice", func(t *testing.T) {
		d := newDelivery(t)
		moveTo(t, d, delivery.Assigned)

		require.ErrorIs(t, d.MarkAssigned(), errs.ErrInvalidState)
	})

	t.Run("pickup before assignment", func(t *testing.T) {
		d := newDelivery(t)

		require.ErrorIs(t, d.MarkPickedUp(), errs.ErrInvalidState)
		assert.Nil(t, d.PickedUpAt())
	})

	t.Run("delivered cannot fail", func(t *testing.T) {
		d := newDelivery(t)
		moveTo(t, d, delivery.Delivered)

		require.ErrorIs(t, d.MarkFailed(), errs.ErrInvalidState)
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("failed only fails again", func(t *testing.T) {
		d := newDelivery(t)
		moveTo(t, d, delivery.Failed)

		require.NoError(t, d.MarkFailed())
		assert.Equal(t, delivery.Failed, d.Status())
		require.ErrorIs(t, d.MarkPickedUp(), errs.ErrInvalidState)
		require.ErrorIs(t, d.MarkDelivered(), errs.ErrInvalidState)
	})
}

func TestDelivery_MarkFailed(t *testing.T) {
	for _, from := range []delivery.Status{delivery.Pending, delivery.Assigned, delivery.PickedUp, delivery.InTransit} {
		t.Run(from.String(), func(t *testing.T) {
			d := newDelivery(t)
			moveTo(t, d, from)

			require.NoError(t, d.MarkFailed())
			assert.Equal(t, delivery.Failed, d.Status())
			assert.False(t, d.IsActive())
		})
	}
}

func TestDelivery_SetEstimatedDeliveryTime(t *testing.T) {
	t.Run("set while pending", func(t *testing.T) {
		d := newDelivery(t)

		require.NoError(t, d.SetEstimatedDeliveryTime(30*time.Minute))
		require.NotNil(t, d.EstimatedDeliveryTime())
		assert.Equal(t, 30*time.Minute, *d.EstimatedDeliveryTime())
	})

	t.Run("set while assigned", func(t *testing.T) {
		d := newDelivery(t)
		moveTo(t, d, delivery.Assigned)

		require.NoError(t, d.SetEstimatedDeliveryTime(time.Minute))
	})

	t.Run("only once", func(t *testing.T) {
		d := newDelivery(t)
		require.NoError(t, d.SetEstimatedDeliveryTime(time.Minute))

		require.ErrorIs(t, d.SetEstimatedDeliveryTime(2*time.Minute), errs.ErrInvalidState)
		assert.Equal(t, time.Minute, *d.EstimatedDeliveryTime())
	})

	t.Run("not after pickup", func(t *testing.T) {
		d := newDelivery(t)
		moveTo(t, d, delivery.PickedUp)

		require.ErrorIs(t, d.SetEstimatedDeliveryTime(time.Minute), errs.ErrInvalidState)
	})

	t.Run("negative", func(t *testing.T) {
		d := newDelivery(t)

		require.ErrorIs(t, d.SetEstimatedDeliveryTime(-time.Minute), errs.ErrValueIsOutOfRange)
	})
}

func TestDelivery_ChangeStatus(t *testing.T) {
	d := newDelivery(t)

	require.NoError(t, d.ChangeStatus(delivery.Assigned))
	require.NoError(t, d.ChangeStatus(delivery.PickedUp))
	require.NotNil(t, d.PickedUpAt())
	require.ErrorIs(t, d.ChangeStatus(delivery.Pending), errs.ErrInvalidState)
}

func TestRestoreDelivery(t *testing.T) {
	picked := time.Now().UTC()
	eta := 12 * time.Minute

	d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(4), delivery.InTransit, picked.Add(-time.Hour), &picked, nil, &eta)

	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, d.Status())
	assert.Equal(t, picked, *d.PickedUpAt())
	assert.Equal(t, eta, *d.EstimatedDeliveryTime())

	_, err = delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.Zero, delivery.Unknown, picked, nil, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	s, err := delivery.ParseStatus("pickedup")
	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, s)

	_, err = delivery.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
