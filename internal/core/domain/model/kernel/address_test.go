package kernel_test

import (
	"testing"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name       string
		street     string
		city       string
		postalCode string
		country    string
		wantErr    bool
	}{
		{name: "valid address", street: "1 Main St", city: "Chisinau", postalCode: "MD-2001", country: "Moldova"},
		{name: "blank street", street: "  ", city: "Chisinau", postalCode: "MD-2001", country: "Moldova", wantErr: true},
		{name: "empty city", street: "1 Main St", city: "", postalCode: "MD-2001", country: "Moldova", wantErr: true},
		{name: "empty postal code", street: "1 Main St", city: "Chisinau", postalCode: "", country: "Moldova", wantErr: true},
		{name: "empty country", street: "1 Main St", city: "Chisinau", postalCode: "MD-2001", country: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := kernel.NewAddress(tt.street, tt.city, tt.postalCode, tt.country)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Equal(t, kernel.Address{}, addr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, addr.Validate())
			assert.Equal(t, tt.street, addr.Street())
			assert.Equal(t, tt.city, addr.City())
			assert.Equal(t, tt.postalCode, addr.PostalCode())
			assert.Equal(t, tt.country, addr.Country())
		})
	}

	t.Run("reports every blank part", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "", "")

		require.Error(t, err)
		for _, part := range []string{"street", "city", "postalCode", "country"} {
			assert.Contains(t, err.Error(), part)
		}
	})
}

func TestAddress_FullAddress(t *testing.T) {
	addr, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)

	assert.Equal(t, "1 Main St, Chisinau, MD-2001, Moldova", addr.FullAddress())
	assert.Equal(t, addr.FullAddress(), addr.String())
}

func TestAddress_IsEqual(t *testing.T) {
	a, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)
	b, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)
	c, err := kernel.NewAddress("2 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAddress_Validate(t *testing.T) {
	var zero kernel.Address

	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}
