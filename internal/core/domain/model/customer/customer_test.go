package customer_test

import (
	"testing"

	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
	require.NoError(t, err)
	return addr
}

func TestNewCustomer(t *testing.T) {
	addr := testAddress(t)

	tests := []struct {
		name    string
		id      kernel.UUID
		cName   string
		email   string
		phone   string
		address kernel.Address
		wantErr error
	}{
		{name: "valid", id: kernel.NewUUID(), cName: "Ana", email: "ana@example.com", phone: "+373", address: addr},
		{name: "zero id", id: kernel.UUID{}, cName: "Ana", email: "ana@example.com", phone: "+373", address: addr, wantErr: errs.ErrValueIsRequired},
		{name: "blank name", id: kernel.NewUUID(), cName: " ", email: "ana@example.com", phone: "+373", address: addr, wantErr: errs.ErrValueIsRequired},
		{name: "empty email", id: kernel.NewUUID(), cName: "Ana", email: "", phone: "+373", address: addr, wantErr: errs.ErrValueIsRequired},
		{name: "email without at", id: kernel.NewUUID(), cName: "Ana", email: "ana.example.com", phone: "+373", address: addr, wantErr: errs.ErrValueIsInvalid},
		{name: "empty phone", id: kernel.NewUUID(), cName: "Ana", email: "ana@example.com", phone: "", address: addr, wantErr: errs.ErrValueIsRequired},
		{name: "zero address", id: kernel.NewUUID(), cName: "Ana", email: "ana@example.com", phone: "+373", address: kernel.Address{}, wantErr: errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := customer.NewCustomer(tt.id, tt.cName, tt.email, tt.phone, tt.address)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.True(t, tt.id.IsEqual(c.ID()))
			assert.Equal(t, tt.cName, c.Name())
			assert.Equal(t, tt.email, c.Email())
			assert.Equal(t, tt.phone, c.Phone())
			assert.True(t, tt.address.IsEqual(c.Address()))
		})
	}
}

func TestCustomer_Setters(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@example.com", "+373", testAddress(t))
	require.NoError(t, err)

	t.Run("invalid email keeps previous value", func(t *testing.T) {
		require.ErrorIs(t, c.SetEmail("broken"), errs.ErrValueIsInvalid)
		assert.Equal(t, "ana@example.com", c.Email())
	})

	t.Run("valid updates apply", func(t *testing.T) {
		newAddr, err := kernel.NewAddress("2 Side St", "Balti", "MD-3100", "Moldova")
		require.NoError(t, err)

		require.NoError(t, c.SetName("Ana Maria"))
		require.NoError(t, c.SetEmail("am@example.com"))
		require.NoError(t, c.SetPhone("+40"))
		require.NoError(t, c.SetAddress(newAddr))

		assert.Equal(t, "Ana Maria", c.Name())
		assert.Equal(t, "am@example.com", c.Email())
		assert.Equal(t, "+40", c.Phone())
		assert.Equal(t, "Balti", c.Address().City())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		require.ErrorIs(t, c.SetName(""), errs.ErrValueIsRequired)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var zero customer.Customer
	require.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)

	var nilCustomer *customer.Customer
	require.ErrorIs(t, nilCustomer.Validate(), customer.ErrCustomerIsNotConstructed)
}
