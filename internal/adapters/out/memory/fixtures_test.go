package memory_test

import (
	"testing"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, email string) *customer.Customer {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", email, "+37360000000", addr)
	require.NoError(t, err)
	return c
}

func newBike(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewBikeCourier(kernel.NewUUID(), "Ion", "+37369000000")
	require.NoError(t, err)
	return c
}

func newCar(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCarCourier(kernel.NewUUID(), "Petru", "+37369000001", "C AB 123")
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, customerID kernel.UUID, weightKg string) *order.Order {
	t.Helper()
	item, err := order.NewItem("Box", 1, decimal.NewFromInt(10), decimal.RequireFromString(weightKg))
	require.NoError(t, err)
	o, err := order.NewBuilder().WithCustomer(customerID).AddItem(item).Build()
	require.NoError(t, err)
	return o
}

func newDelivery(t *testing.T, orderID, courierID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, courierID, decimal.NewFromInt(5))
	require.NoError(t, err)
	require.NoError(t, d.MarkAssigned())
	return d
}
