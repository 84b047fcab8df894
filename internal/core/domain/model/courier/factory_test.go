package courier_test

import (
	"testing"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateAndValidate(t *testing.T) {
	provider := courier.NewDefaultFactoryProvider()
	validRange := decimal.NewNullDecimal(decimal.NewFromInt(10))

	tests := []struct {
		name    string
		kind    courier.VehicleKind
		params  courier.CreationParams
		wantErr error
	}{
		{name: "bike", kind: courier.Bike, params: courier.CreationParams{Name: "Ion", Phone: "+373"}},
		{name: "car", kind: courier.Car, params: courier.CreationParams{Name: "Ion", Phone: "+373", LicensePlate: "C 001"}},
		{name: "drone", kind: courier.Drone, params: courier.CreationParams{Name: "D", Phone: "+373", MaxFlightRangeKm: validRange}},
		{name: "blank name", kind: courier.Bike, params: courier.CreationParams{Name: "", Phone: "+373"}, wantErr: errs.ErrValueIsRequired},
		{name: "blank phone", kind: courier.Car, params: courier.CreationParams{Name: "Ion", Phone: " ", LicensePlate: "C 001"}, wantErr: errs.ErrValueIsRequired},
		{name: "car without plate", kind: courier.Car, params: courier.CreationParams{Name: "Ion", Phone: "+373"}, wantErr: errs.ErrValueIsRequired},
		{name: "drone without range", kind: courier.Drone, params: courier.CreationParams{Name: "D", Phone: "+373"}, wantErr: errs.ErrValueIsRequired},
		{
			name:    "drone with zero range",
			kind:    courier.Drone,
			params:  courier.CreationParams{Name: "D", Phone: "+373", MaxFlightRangeKm: decimal.NewNullDecimal(decimal.Zero)},
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := provider.Factory(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, factory.Kind())

			c, err := factory.CreateAndValidate(kernel.NewUUID(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
			assert.True(t, c.IsAvailable())
		})
	}
}

func TestFactoryProvider(t *testing.T) {
	t.Run("default kinds", func(t *testing.T) {
		provider := courier.NewDefaultFactoryProvider()

		assert.Equal(t, []courier.VehicleKind{courier.Bike, courier.Car, courier.Drone}, provider.SupportedKinds())
	})

	t.Run("unregistered kind", func(t *testing.T) {
		provider := courier.NewFactoryProvider()

		_, err := provider.Factory(courier.Bike)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = provider.Create(courier.Bike, kernel.NewUUID(), courier.CreationParams{Name: "Ion", Phone: "+373"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("register replaces one kind only", func(t *testing.T) {
		provider := courier.NewDefaultFactoryProvider()
		called := false
		provider.Register(courier.Bike, courier.NewFactory(courier.Bike,
			func(id kernel.UUID, p courier.CreationParams) (*courier.Courier, error) {
				called = true
				return courier.NewBikeCourier(id, p.Name, p.Phone)
			}))

		_, err := provider.Create(courier.Bike, kernel.NewUUID(), courier.CreationParams{Name: "Ion", Phone: "+373"})
		require.NoError(t, err)
		assert.True(t, called)

		car, err := provider.Create(courier.Car, kernel.NewUUID(),
			courier.CreationParams{Name: "Ion", Phone: "+373", LicensePlate: "C 1"})
		require.NoError(t, err)
		assert.Equal(t, courier.Car, car.Kind())
	})

	t.Run("custom factory still checks contact data", func(t *testing.T) {
		provider := courier.NewFactoryProvider()
		provider.Register(courier.Bike, courier.NewFactory(courier.Bike,
			func(id kernel.UUID, p courier.CreationParams) (*courier.Courier, error) {
				t.Fatal("create must not be called for blank name")
				return nil, nil
			}))

		_, err := provider.Create(courier.Bike, kernel.NewUUID(), courier.CreationParams{Phone: "+373"})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
