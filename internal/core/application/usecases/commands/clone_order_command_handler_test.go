package commands_test

import (
	"testing"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCloneOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCloneOrderCommand(id, id)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCloneOrderCommand(kernel.UUID{}, id)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCloneOrderCommandHandler_Handle(t *testing.T) {
	env := newTestEnv(t)
	cust := env.seedCustomer(t)
	source := env.seedOrder(t, cust.ID(), "2", order.Delivered)
	handler := commands.NewCloneOrderCommandHandler(memoryOrderUoWFactory{env.uows}, env.notifier)

	cmd, err := commands.NewCloneOrderCommand(source.ID(), kernel.NewUUID())
	require.NoError(t, err)
	env.notifier.On("NotifyOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, handler.Handle(t.Context(), cmd))

	clone := env.order(t, cmd.CloneOrderID())
	assert.Equal(t, order.Created, clone.Status())
	assert.True(t, source.CustomerID().IsEqual(clone.CustomerID()))
	assert.True(t, source.TotalWeight().Equal(clone.TotalWeight()))
	assert.Equal(t, order.Delivered, env.order(t, source.ID()).Status())
	env.notifier.AssertExpectations(t)
}

func TestCloneOrderCommandHandler_Handle_UnknownSource(t *testing.T) {
	env := newTestEnv(t)
	handler := commands.NewCloneOrderCommandHandler(memoryOrderUoWFactory{env.uows}, env.notifier)

	cmd, err := commands.NewCloneOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
}
