package queries_test

import (
	"testing"

	"deliverysystem/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllCouriersQueryHandler_Handle(t *testing.T) {
	f := newFixture()
	handler := queries.NewGetAllCouriersQueryHandler(f.repos)

	t.Run("empty storage returns empty slice", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetAllCouriersQuery(false))

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	charlie := f.addDrone(t, "Charlie", 8)
	alice := f.addBike(t, "Alice")
	bob := f.addCar(t, "Bob", "ABC 123")
	bob.SetUnavailable()
	require.NoError(t, f.uows.Create().CourierRepository().Update(t.Context(), bob))

	t.Run("all couriers ordered by name", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetAllCouriersQuery(false))

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, []string{result[0].Name, result[1].Name, result[2].Name})
		assert.Equal(t, alice.ID(), result[0].ID)
		assert.Equal(t, "ABC 123", result[1].LicensePlate)
		assert.False(t, result[1].IsAvailable)
		assert.True(t, result[2].MaxFlightRangeKm.Valid)
		assert.True(t, result[2].MaxFlightRangeKm.Decimal.Equal(decimal.NewFromInt(8)))
		assert.Equal(t, charlie.ID(), result[2].ID)
		assert.False(t, result[0].MaxFlightRangeKm.Valid)
	})

	t.Run("only available", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetAllCouriersQuery(true))

		require.NoError(t, err)
		require.Len(t, result, 2)
		for _, c := range result {
			assert.NotEqual(t, bob.ID(), c.ID)
		}
	})

	t.Run("invalid query", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.GetAllCouriersQuery{})

		require.ErrorIs(t, err, queries.ErrGetAllCouriersQueryIsNotConstructed)
		assert.Nil(t, result)
	})
}
