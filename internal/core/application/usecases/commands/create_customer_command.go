package commands

import (
	"errors"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer with contact data and a home address.
// Field validation beyond the id and address is left to customer.NewCustomer.
//
// Example:
//
//	addr, _ := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
//	cmd, err := NewCreateCustomerCommand(kernel.NewUUID(), "Ana", "ana@example.com", "+37360000000", addr)
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Returns the joined id and address validation errors.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name, email, phone string,
	address kernel.Address,
) (CreateCustomerCommand, error) {
	if err := errors.Join(customerID.Validate(), address.Validate()); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

func (c CreateCustomerCommand) Address() kernel.Address {
	return c.address
}
