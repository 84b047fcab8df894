package queries_test

import (
	"testing"

	"deliverysystem/internal/adapters/out/memory"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type memoryRepositories struct{ f *memory.UnitOfWorkFactory }

func (m memoryRepositories) Create() queries.Repositories { return m.f.Create() }

type fixture struct {
	uows  *memory.UnitOfWorkFactory
	repos queries.RepositoriesFactory
}

func newFixture() *fixture {
	uows := memory.NewUnitOfWorkFactory(memory.NewStore())
	return &fixture{uows: uows, repos: memoryRepositories{uows}}
}

func (f *fixture) addCustomer(t *testing.T, name string) *customer.Customer {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), name, kernel.NewUUID().String()+"@example.com", "+37360000000", addr)
	require.NoError(t, err)
	require.NoError(t, f.uows.Create().CustomerRepository().Add(t.Context(), c))
	return c
}

func (f *fixture) addCourier(t *testing.T, c *courier.Courier) *courier.Courier {
	t.Helper()
	require.NoError(t, f.uows.Create().CourierRepository().Add(t.Context(), c))
	return c
}

func (f *fixture) addBike(t *testing.T, name string) *courier.Courier {
	t.Helper()
	c, err := courier.NewBikeCourier(kernel.NewUUID(), name, "+37369000000")
	require.NoError(t, err)
	return f.addCourier(t, c)
}

func (f *fixture) addCar(t *testing.T, name, plate string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCarCourier(kernel.NewUUID(), name, "+37369000001", plate)
	require.NoError(t, err)
	return f.addCourier(t, c)
}

func (f *fixture) addDrone(t *testing.T, name string, rangeKm int64) *courier.Courier {
	t.Helper()
	c, err := courier.NewDroneCourier(kernel.NewUUID(), name, "+37369000002", decimal.NewFromInt(rangeKm))
	require.NoError(t, err)
	return f.addCourier(t, c)
}

func (f *fixture) addOrder(t *testing.T, customerID kernel.UUID, weightKg string, path ...order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("Box", 2, decimal.NewFromInt(50), decimal.RequireFromString(weightKg))
	require.NoError(t, err)
	o, err := order.NewBuilder().WithCustomer(customerID).AddItem(item).Build()
	require.NoError(t, err)
	for _, next := range path {
		require.NoError(t, o.ChangeStatus(next))
	}
	require.NoError(t, f.uows.Create().OrderRepository().Add(t.Context(), o))
	return o
}

func (f *fixture) addDelivery(t *testing.T, orderID, courierID kernel.UUID, path ...delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, courierID, decimal.NewFromInt(3))
	require.NoError(t, err)
	for _, next := range path {
		require.NoError(t, d.ChangeStatus(next))
	}
	require.NoError(t, f.uows.Create().DeliveryRepository().Add(t.Context(), d))
	return d
}
