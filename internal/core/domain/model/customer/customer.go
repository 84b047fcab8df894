package customer

import (
	"errors"
	"strings"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a person placing orders.
//
// Business rules:
//   - id must be a valid UUID and never changes
//   - name and phone are non-blank
//   - email is non-blank and contains "@"
//   - address is a constructed kernel.Address
//
// Example:
//
//	addr, _ := kernel.NewAddress("1 Main St", "Chisinau", "MD-2001", "Moldova")
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@example.com", "+37360000000", addr)
//	if err != nil {
//	    return err
//	}
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address kernel.Address
	guard   guard.ConstructorGuard
}

// NewCustomer validates all fields and returns a new Customer.
// Validation errors for several fields are joined together.
func NewCustomer(id kernel.UUID, name, email, phone string, address kernel.Address) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.SetName(name),
		c.SetEmail(email),
		c.SetPhone(phone),
		c.SetAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a Customer loaded from storage. It applies the
// same rules as NewCustomer so corrupted rows are rejected.
func RestoreCustomer(id kernel.UUID, name, email, phone string, address kernel.Address) (*Customer, error) {
	return NewCustomer(id, name, email, phone, address)
}

// Validate checks that the customer was built by a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Address() kernel.Address {
	return c.address
}

func (c *Customer) String() string {
	return "Customer: " + c.name + " (" + c.email + ")"
}

// SetName replaces the customer's name. Blank names are rejected and leave
// the current value untouched.
func (c *Customer) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// SetEmail replaces the customer's email. It must be non-blank and contain "@".
func (c *Customer) SetEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.New("must contain @"))
	}
	c.email = email
	return nil
}

// SetPhone replaces the customer's phone number.
func (c *Customer) SetPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

// SetAddress replaces the delivery address.
func (c *Customer) SetAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
