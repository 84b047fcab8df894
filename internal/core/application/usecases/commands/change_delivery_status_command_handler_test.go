package commands_test

import (
	"bytes"
	"log/slog"
	"testing"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedDelivery assigns a fresh bike to a fresh ready order and returns the delivery.
func (e *testEnv) seedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	cust := e.seedCustomer(t)
	o := e.seedOrder(t, cust.ID(), "1", order.ReadyForDelivery)
	bike := e.seedBike(t)
	require.NoError(t, e.assign(t, o.ID(), bike.ID(), 4))

	ds := e.deliveriesOf(t, o.ID())
	require.Len(t, ds, 1)
	return ds[0]
}

func (e *testEnv) deliveryStatusHandler(logger *slog.Logger) commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(memoryUoWFactory{e.uows}, e.notifier, e.locker, logger)
}

func (e *testEnv) changeDeliveryStatus(t *testing.T, id kernel.UUID, target delivery.Status) error {
	t.Helper()
	cmd, err := commands.NewChangeDeliveryStatusCommand(id, target)
	require.NoError(t, err)
	return e.deliveryStatusHandler(nil).Handle(t.Context(), cmd)
}

func (e *testEnv) delivery(t *testing.T, id kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := e.uows.Create().DeliveryRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return d
}

func TestNewChangeDeliveryStatusCommand(t *testing.T) {
	for _, target := range []delivery.Status{delivery.Pending, delivery.Assigned, delivery.Status(99)} {
		_, err := commands.NewChangeDeliveryStatusCommand(kernel.NewUUID(), target)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, target.String())
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(kernel.NewUUID(), delivery.Failed)
	require.NoError(t, err)
	assert.Equal(t, delivery.Failed, cmd.Target())
}

func TestChangeDeliveryStatusCommandHandler_Handle_Delivered(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.On("NotifyDeliveryAssigned", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	d := env.seedDelivery(t)

	env.notifier.On("NotifyDeliveryStatusChanged", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	require.NoError(t, env.changeDeliveryStatus(t, d.ID(), delivery.PickedUp))
	assert.NotNil(t, env.delivery(t, d.ID()).PickedUpAt())
	assert.False(t, env.courier(t, d.CourierID()).IsAvailable())

	require.NoError(t, env.changeDeliveryStatus(t, d.ID(), delivery.InTransit))

	env.notifier.On("NotifyDeliveryCompleted", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, env.changeDeliveryStatus(t, d.ID(), delivery.Delivered))

	got := env.delivery(t, d.ID())
	assert.Equal(t, delivery.Delivered, got.Status())
	assert.NotNil(t, got.DeliveredAt())
	assert.True(t, env.courier(t, d.CourierID()).IsAvailable())
	env.notifier.AssertExpectations(t)

	t.Run("failing a delivered delivery is rejected", func(t *testing.T) {
		require.ErrorIs(t, env.changeDeliveryStatus(t, d.ID(), delivery.Failed), errs.ErrInvalidState)
		assert.Equal(t, delivery.Delivered, env.delivery(t, d.ID()).Status())
	})
}

func TestChangeDeliveryStatusCommandHandler_Handle_Failed(t *testing.T) {
	env := newTestEnv(t)
	env.allowNotifications()
	d := env.seedDelivery(t)

	require.NoError(t, env.changeDeliveryStatus(t, d.ID(), delivery.Failed))

	assert.Equal(t, delivery.Failed, env.delivery(t, d.ID()).Status())
	assert.True(t, env.courier(t, d.CourierID()).IsAvailable())
	env.notifier.AssertNotCalled(t, "NotifyDeliveryCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeDeliveryStatusCommandHandler_Handle_FailedAgainKeepsReassignedCourier(t *testing.T) {
	env := newTestEnv(t)
	env.allowNotifications()
	d := env.seedDelivery(t)
	require.NoError(t, env.changeDeliveryStatus(t, d.ID(), delivery.Failed))

	next := env.seedOrder(t, env.seedCustomer(t).ID(), "1", order.ReadyForDelivery)
	require.NoError(t, env.assign(t, next.ID(), d.CourierID(), 4))
	require.False(t, env.courier(t, d.CourierID()).IsAvailable())

	require.NoError(t, env.changeDeliveryStatus(t, d.ID(), delivery.Failed))

	assert.Equal(t, delivery.Failed, env.delivery(t, d.ID()).Status())
	assert.False(t, env.courier(t, d.CourierID()).IsAvailable())
}

func TestChangeDeliveryStatusCommandHandler_Handle_SkippedStep(t *testing.T) {
	env := newTestEnv(t)
	env.allowNotifications()
	d := env.seedDelivery(t)

	require.ErrorIs(t, env.changeDeliveryStatus(t, d.ID(), delivery.Delivered), errs.ErrInvalidState)
	assert.Equal(t, delivery.Assigned, env.delivery(t, d.ID()).Status())
	assert.False(t, env.courier(t, d.CourierID()).IsAvailable())
}

func TestChangeDeliveryStatusCommandHandler_Handle_MissingCourier(t *testing.T) {
	env := newTestEnv(t)
	env.allowNotifications()
	d := env.seedDelivery(t)
	require.NoError(t, env.uows.Create().CourierRepository().Delete(t.Context(), d.CourierID()))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	cmd, err := commands.NewChangeDeliveryStatusCommand(d.ID(), delivery.Failed)
	require.NoError(t, err)

	require.NoError(t, env.deliveryStatusHandler(logger).Handle(t.Context(), cmd))

	assert.Equal(t, delivery.Failed, env.delivery(t, d.ID()).Status())
	assert.Contains(t, logs.String(), "release skipped")
	assert.Contains(t, logs.String(), d.CourierID().String())
}

func TestChangeDeliveryStatusCommandHandler_Handle_UnknownDelivery(t *testing.T) {
	env := newTestEnv(t)

	require.ErrorIs(t, env.changeDeliveryStatus(t, kernel.NewUUID(), delivery.PickedUp), errs.ErrObjectNotFound)
}
