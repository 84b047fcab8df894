package commands_test

import (
	"errors"
	"testing"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	env := newTestEnv(t)
	cust := env.seedCustomer(t)
	handler := commands.NewCreateOrderCommandHandler(memoryOrderUoWFactory{env.uows}, env.settings, env.notifier)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]commands.OrderItemParams{itemParams("Pizza", 2, "120", "0.8"), itemParams("Cola", 1, "20", "0.5")},
		order.Express, "ring twice")
	require.NoError(t, err)

	env.notifier.On("NotifyOrderCreated", mock.Anything,
		mock.MatchedBy(func(o *order.Order) bool { return o.ID().IsEqual(cmd.OrderID()) }),
		mock.Anything,
	).Return(nil).Once()

	require.NoError(t, handler.Handle(t.Context(), cmd))

	stored := env.order(t, cmd.OrderID())
	assert.Equal(t, order.Created, stored.Status())
	assert.Equal(t, order.Express, stored.Priority())
	assert.Equal(t, "ring twice", stored.DeliveryNotes())
	assert.Len(t, stored.Items(), 2)
	assert.Equal(t, "260", stored.TotalPrice().String())
	env.notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	handler := commands.NewCreateOrderCommandHandler(memoryOrderUoWFactory{env.uows}, env.settings, env.notifier)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemParams{itemParams("Pizza", 1, "1", "1")}, order.Normal, "")
	require.NoError(t, err)

	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	env.notifier.AssertNotCalled(t, "NotifyOrderCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_TooManyItems(t *testing.T) {
	env := newTestEnv(t)
	cust := env.seedCustomer(t)
	require.NoError(t, env.settings.SetMaxOrderItems(1))
	handler := commands.NewCreateOrderCommandHandler(memoryOrderUoWFactory{env.uows}, env.settings, env.notifier)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]commands.OrderItemParams{itemParams("A", 1, "1", "1"), itemParams("B", 1, "1", "1")}, order.Normal, "")
	require.NoError(t, err)

	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPolicyViolation)
}

func TestCreateOrderCommandHandler_Handle_NotificationFailureAbortsOrder(t *testing.T) {
	env := newTestEnv(t)
	cust := env.seedCustomer(t)
	handler := commands.NewCreateOrderCommandHandler(memoryOrderUoWFactory{env.uows}, env.settings, env.notifier)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]commands.OrderItemParams{itemParams("A", 1, "1", "1")}, order.Normal, "")
	require.NoError(t, err)

	sendErr := errors.New("broker down")
	env.notifier.On("NotifyOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(sendErr).Once()

	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, sendErr)
	_, err = env.uows.Create().OrderRepository().Get(t.Context(), cmd.OrderID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
