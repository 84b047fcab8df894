package commands_test

import (
	"context"
	"testing"

	"deliverysystem/internal/adapters/out/memory"
	"deliverysystem/internal/config"
	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/keylock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderCreated(ctx context.Context, o *order.Order, c *customer.Customer) error {
	return m.Called(ctx, o, c).Error(0)
}

func (m *MockNotifier) NotifyOrderStatusChanged(ctx context.Context, o *order.Order, c *customer.Customer) error {
	return m.Called(ctx, o, c).Error(0)
}

func (m *MockNotifier) NotifyDeliveryAssigned(
	ctx context.Context, d *delivery.Delivery, c *customer.Customer, cr *courier.Courier,
) error {
	return m.Called(ctx, d, c, cr).Error(0)
}

func (m *MockNotifier) NotifyDeliveryStatusChanged(ctx context.Context, d *delivery.Delivery, c *customer.Customer) error {
	return m.Called(ctx, d, c).Error(0)
}

func (m *MockNotifier) NotifyDeliveryCompleted(ctx context.Context, d *delivery.Delivery, c *customer.Customer) error {
	return m.Called(ctx, d, c).Error(0)
}

// Adapters from the memory factory to the narrowed factories.
type (
	memoryUoWFactory         struct{ f *memory.UnitOfWorkFactory }
	memoryOrderUoWFactory    struct{ f *memory.UnitOfWorkFactory }
	memoryCustomerUoWFactory struct{ f *memory.UnitOfWorkFactory }
)

func (m memoryUoWFactory) Create() commands.UoW                 { return m.f.Create() }
func (m memoryOrderUoWFactory) Create() commands.OrderUoW       { return m.f.Create() }
func (m memoryCustomerUoWFactory) Create() commands.CustomerUoW { return m.f.Create() }

type testEnv struct {
	uows     *memory.UnitOfWorkFactory
	notifier *MockNotifier
	settings *config.Store
	locker   *keylock.Locker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		uows:     memory.NewUnitOfWorkFactory(memory.NewStore()),
		notifier: new(MockNotifier),
		settings: config.NewDefaultStore(),
		locker:   keylock.New(),
	}
}

func (e *testEnv) allowNotifications() {
	e.notifier.On("NotifyOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	e.notifier.On("NotifyOrderStatusChanged", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	e.notifier.On("NotifyDeliveryAssigned", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	e.notifier.On("NotifyDeliveryStatusChanged", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	e.notifier.On("NotifyDeliveryCompleted", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (e *testEnv) seedCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", kernel.NewUUID().String()+"@example.com", "+37360000000", addr)
	require.NoError(t, err)
	require.NoError(t, e.uows.Create().CustomerRepository().Add(t.Context(), c))
	return c
}

func (e *testEnv) seedCourier(t *testing.T, c *courier.Courier) *courier.Courier {
	t.Helper()
	require.NoError(t, e.uows.Create().CourierRepository().Add(t.Context(), c))
	return c
}

func (e *testEnv) seedBike(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewBikeCourier(kernel.NewUUID(), "Ion", "+37369000000")
	require.NoError(t, err)
	return e.seedCourier(t, c)
}

// seedOrder stores an order of one line weighing weightKg, moved to status.
func (e *testEnv) seedOrder(t *testing.T, customerID kernel.UUID, weightKg string, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("Box", 1, decimal.NewFromInt(100), decimal.RequireFromString(weightKg))
	require.NoError(t, err)
	o, err := order.NewBuilder().WithCustomer(customerID).AddItem(item).Build()
	require.NoError(t, err)

	path := []order.Status{order.Confirmed, order.Processing, order.ReadyForDelivery, order.InDelivery, order.Delivered}
	if status == order.Cancelled {
		path = []order.Status{order.Cancelled}
	}
	for _, next := range path {
		if o.Status() == status {
			break
		}
		require.NoError(t, o.ChangeStatus(next))
	}
	require.Equal(t, status, o.Status())

	require.NoError(t, e.uows.Create().OrderRepository().Add(t.Context(), o))
	return o
}

func (e *testEnv) courier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := e.uows.Create().CourierRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return c
}

func (e *testEnv) order(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := e.uows.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return o
}

func (e *testEnv) deliveriesOf(t *testing.T, orderID kernel.UUID) []*delivery.Delivery {
	t.Helper()
	ds, err := e.uows.Create().DeliveryRepository().GetByOrder(t.Context(), orderID)
	require.NoError(t, err)
	return ds
}

func (e *testEnv) assignHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(memoryUoWFactory{e.uows}, e.settings, e.notifier, e.locker)
}

func (e *testEnv) assign(t *testing.T, orderID, courierID kernel.UUID, km int64) error {
	t.Helper()
	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, decimal.NewFromInt(km))
	require.NoError(t, err)
	return e.assignHandler().Handle(t.Context(), cmd)
}

func km(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
