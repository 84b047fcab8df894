package queries_test

import (
	"testing"

	"deliverysystem/internal/config"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDQueryHandler(t *testing.T) {
	f := newFixture()
	handler := queries.NewGetByIDQueryHandler(f.repos)
	cust := f.addCustomer(t, "Ana")
	bike := f.addBike(t, "Ion")
	o := f.addOrder(t, cust.ID(), "1.5")
	d := f.addDelivery(t, o.ID(), bike.ID(), delivery.Assigned)

	t.Run("customer", func(t *testing.T) {
		q, err := queries.NewGetCustomerQuery(cust.ID())
		require.NoError(t, err)

		got, err := handler.Customer(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, cust.Email(), got.Email)
		assert.Equal(t, "1 Main St, Chisinau, MD-2001, Moldova", got.Address.FullAddress())
	})

	t.Run("courier", func(t *testing.T) {
		q, err := queries.NewGetCourierQuery(bike.ID())
		require.NoError(t, err)

		got, err := handler.Courier(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, courier.Bike, got.Kind)
		assert.True(t, got.MaxWeightKg.Equal(decimal.NewFromInt(5)))
	})

	t.Run("order with totals", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)

		got, err := handler.Order(t.Context(), q)

		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(100)))
		assert.True(t, got.TotalWeightKg.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, order.Created, got.Status)
	})

	t.Run("delivery", func(t *testing.T) {
		q, err := queries.NewGetDeliveryQuery(d.ID())
		require.NoError(t, err)

		got, err := handler.Delivery(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, got.Status)
		assert.Equal(t, o.ID(), got.OrderID)
	})

	t.Run("unknown ids", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Order(t.Context(), q)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		_, err := queries.NewGetDeliveryQuery(kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = handler.Delivery(t.Context(), queries.GetDeliveryQuery{})
		require.ErrorIs(t, err, queries.ErrGetDeliveryQueryIsNotConstructed)
	})
}

func TestGetOrdersQueryHandler(t *testing.T) {
	f := newFixture()
	handler := queries.NewGetOrdersQueryHandler(f.repos)
	ana := f.addCustomer(t, "Ana")
	ion := f.addCustomer(t, "Ion")
	f.addOrder(t, ana.ID(), "1")
	f.addOrder(t, ana.ID(), "1")
	f.addOrder(t, ion.ID(), "1")

	all, err := handler.Handle(t.Context(), queries.NewGetOrdersQuery())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	q, err := queries.NewGetCustomerOrdersQuery(ana.ID())
	require.NoError(t, err)
	mine, err := handler.Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, ana.ID(), o.CustomerID)
	}

	q, err = queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	none, err := handler.Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetAllCustomersQueryHandler(t *testing.T) {
	f := newFixture()
	f.addCustomer(t, "Zoe")
	f.addCustomer(t, "Ana")
	handler := queries.NewGetAllCustomersQueryHandler(f.repos)

	result, err := handler.Handle(t.Context(), queries.NewGetAllCustomersQuery())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Ana", result[0].Name)
	assert.Equal(t, "Zoe", result[1].Name)
}

func TestFindAvailableCourierQueryHandler(t *testing.T) {
	f := newFixture()
	handler := queries.NewFindAvailableCourierQueryHandler(f.repos)
	bike := f.addBike(t, "Ion")
	car := f.addCar(t, "Dan", "C 001")

	find := func(t *testing.T, kg int64) (queries.CourierResponse, error) {
		t.Helper()
		q, err := queries.NewFindAvailableCourierQuery(decimal.NewFromInt(kg))
		require.NoError(t, err)
		return handler.Handle(t.Context(), q)
	}

	got, err := find(t, 3)
	require.NoError(t, err)
	assert.Equal(t, bike.ID(), got.ID)

	got, err = find(t, 20)
	require.NoError(t, err)
	assert.Equal(t, car.ID(), got.ID)

	_, err = find(t, 60)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = queries.NewFindAvailableCourierQuery(decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetDeliveriesQueryHandler(t *testing.T) {
	f := newFixture()
	handler := queries.NewGetDeliveriesQueryHandler(f.repos)
	cust := f.addCustomer(t, "Ana")
	bike := f.addBike(t, "Ion")
	car := f.addCar(t, "Dan", "C 001")
	first := f.addOrder(t, cust.ID(), "1")
	second := f.addOrder(t, cust.ID(), "1")
	f.addDelivery(t, first.ID(), bike.ID(), delivery.Failed)
	f.addDelivery(t, first.ID(), car.ID(), delivery.Assigned)
	f.addDelivery(t, second.ID(), bike.ID(), delivery.Assigned)

	all, err := handler.Handle(t.Context(), queries.NewGetAllDeliveriesQuery())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := handler.Handle(t.Context(), queries.NewGetActiveDeliveriesQuery())
	require.NoError(t, err)
	assert.Len(t, active, 2)

	q, err := queries.NewGetOrderDeliveriesQuery(first.ID())
	require.NoError(t, err)
	byOrder, err := handler.Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Len(t, byOrder, 2)

	q, err = queries.NewGetCourierDeliveriesQuery(bike.ID())
	require.NoError(t, err)
	byCourier, err := handler.Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Len(t, byCourier, 2)

	_, err = handler.Handle(t.Context(), queries.GetDeliveriesQuery{})
	require.ErrorIs(t, err, queries.ErrGetDeliveriesQueryIsNotConstructed)
}

func TestGetSettingsQueryHandler(t *testing.T) {
	store := config.NewDefaultStore()
	handler := queries.NewGetSettingsQueryHandler(store)

	before := handler.Handle()
	require.NoError(t, store.SetMaxOrderItems(3))

	assert.Equal(t, config.DefaultSettings().MaxOrderItems, before.MaxOrderItems)
	assert.Equal(t, 3, handler.Handle().MaxOrderItems)
	assert.Equal(t, "MDL", handler.Handle().DefaultCurrency)
}
