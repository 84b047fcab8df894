package kernel

import (
	"errors"
	"fmt"
	"strings"

	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress")

// Address is the postal address a customer receives deliveries at.
// All four parts are required; values are compared part by part.
//
// Example:
//
//	addr, err := kernel.NewAddress("1 Stefan cel Mare", "Chisinau", "MD-2001", "Moldova")
//	if err != nil {
//	    return err
//	}
//	addr.FullAddress() // "1 Stefan cel Mare, Chisinau, MD-2001, Moldova"
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress validates every part and returns an immutable Address.
// All blank parts are reported together.
//
// Parameters:
//   - street, city, postalCode, country: non-blank strings
//
// Returns:
//   - Address: the constructed value
//   - error: joined ValueIsRequired errors for each blank part
func NewAddress(street, city, postalCode, country string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setStreet(street),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate fails for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) PostalCode() string {
	return a.postalCode
}

func (a Address) Country() string {
	return a.country
}

// FullAddress joins the parts as "street, city, postal code, country".
func (a Address) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.street, a.city, a.postalCode, a.country)
}

func (a Address) String() string {
	return a.FullAddress()
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

func (a *Address) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if strings.TrimSpace(country) == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
