// Package customerrepo maps the customer aggregate to the customers table.
package customerrepo

import (
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of the customers table. Email is unique
// regardless of case.
type CustomerDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Email   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_email_lower,expression:lower(email)"`
	Phone   string     `gorm:"type:varchar(64);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the embedded delivery address.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(255);not null"`
}

func fromDomain(c *customer.Customer) CustomerDTO {
	addr := c.Address()
	return CustomerDTO{
		ID:    c.ID().Bytes(),
		Name:  c.Name(),
		Email: c.Email(),
		Phone: c.Phone(),
		Address: AddressDTO{
			Street:     addr.Street(),
			City:       addr.City(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
		},
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode, dto.Address.Country)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, addr)
}
