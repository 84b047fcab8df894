package memory

import (
	"context"
	"strings"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CustomerRepository implements ports.CustomerRepository.
type CustomerRepository struct {
	items collection[*customer.Customer]
}

func (r *CustomerRepository) Add(_ context.Context, c *customer.Customer) error {
	return r.items.add(c)
}

func (r *CustomerRepository) Update(_ context.Context, c *customer.Customer) error {
	return r.items.update(c)
}

func (r *CustomerRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.items.delete(id)
}

func (r *CustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.items.get(id)
}

// GetByEmail matches the email case-insensitively.
func (r *CustomerRepository) GetByEmail(_ context.Context, email string) (*customer.Customer, error) {
	found, err := r.items.list(func(c *customer.Customer) bool {
		return strings.EqualFold(c.Email(), email)
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errs.NewObjectNotFoundError("customer", email)
	}
	return found[0], nil
}

func (r *CustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	return r.items.list(nil)
}

// CourierRepository implements ports.CourierRepository.
type CourierRepository struct {
	items collection[*courier.Courier]
}

func (r *CourierRepository) Add(_ context.Context, c *courier.Courier) error {
	return r.items.add(c)
}

func (r *CourierRepository) Update(_ context.Context, c *courier.Courier) error {
	return r.items.update(c)
}

func (r *CourierRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.items.delete(id)
}

func (r *CourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	return r.items.get(id)
}

func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	return r.items.list(nil)
}

func (r *CourierRepository) GetAvailable(_ context.Context) ([]*courier.Courier, error) {
	return r.items.list((*courier.Courier).IsAvailable)
}

func (r *CourierRepository) GetAvailableForWeight(_ context.Context, weightKg decimal.Decimal) ([]*courier.Courier, error) {
	return r.items.list(func(c *courier.Courier) bool {
		return c.IsAvailable() && c.CanCarry(weightKg)
	})
}

// OrderRepository implements ports.OrderRepository.
type OrderRepository struct {
	items collection[*order.Order]
}

func (r *OrderRepository) Add(_ context.Context, o *order.Order) error {
	return r.items.add(o)
}

func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	return r.items.update(o)
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.items.delete(id)
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return r.items.get(id)
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.items.list(nil)
}

func (r *OrderRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.items.list(func(o *order.Order) bool {
		return o.CustomerID().IsEqual(customerID)
	})
}

func (r *OrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return r.items.list(func(o *order.Order) bool {
		return o.Status() == status
	})
}

// DeliveryRepository implements ports.DeliveryRepository.
type DeliveryRepository struct {
	items collection[*delivery.Delivery]
}

func (r *DeliveryRepository) Add(_ context.Context, d *delivery.Delivery) error {
	return r.items.add(d)
}

func (r *DeliveryRepository) Update(_ context.Context, d *delivery.Delivery) error {
	return r.items.update(d)
}

func (r *DeliveryRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.items.delete(id)
}

func (r *DeliveryRepository) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.items.get(id)
}

func (r *DeliveryRepository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	return r.items.list(nil)
}

func (r *DeliveryRepository) GetByOrder(_ context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	return r.items.list(func(d *delivery.Delivery) bool {
		return d.OrderID().IsEqual(orderID)
	})
}

func (r *DeliveryRepository) GetByCourier(_ context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error) {
	return r.items.list(func(d *delivery.Delivery) bool {
		return d.CourierID().IsEqual(courierID)
	})
}

func (r *DeliveryRepository) GetActive(_ context.Context) ([]*delivery.Delivery, error) {
	return r.items.list((*delivery.Delivery).IsActive)
}
