package queries_test

import (
	"testing"

	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUncompletedOrdersQueryHandler_Handle(t *testing.T) {
	f := newFixture()
	handler := queries.NewGetUncompletedOrdersQueryHandler(f.repos)
	cust := f.addCustomer(t, "Ana")

	t.Run("empty storage returns empty slice", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetUncompletedOrdersQuery())

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	created := f.addOrder(t, cust.ID(), "1")
	ready := f.addOrder(t, cust.ID(), "1", order.Confirmed, order.Processing, order.ReadyForDelivery)
	delivered := f.addOrder(t, cust.ID(), "1",
		order.Confirmed, order.Processing, order.ReadyForDelivery, order.InDelivery, order.Delivered)
	cancelled := f.addOrder(t, cust.ID(), "1", order.Cancelled)

	t.Run("final orders are excluded", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetUncompletedOrdersQuery())

		require.NoError(t, err)
		ids := make(map[kernel.UUID]bool)
		for _, r := range result {
			ids[r.ID] = true
		}
		assert.Len(t, result, 2)
		assert.True(t, ids[created.ID()])
		assert.True(t, ids[ready.ID()])
		assert.False(t, ids[delivered.ID()])
		assert.False(t, ids[cancelled.ID()])
	})

	t.Run("oldest first", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetUncompletedOrdersQuery())

		require.NoError(t, err)
		for i := range len(result) - 1 {
			assert.False(t, result[i].CreatedAt.After(result[i+1].CreatedAt))
		}
	})

	t.Run("invalid query", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.GetUncompletedOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
		assert.Nil(t, result)
	})
}
