package memory

import (
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
)

// entity describes how one aggregate kind is identified and copied.
// Every value crossing the store boundary is rebuilt through the
// aggregate's Restore constructor, so callers never share state with the store.
type entity[T any] struct {
	name  string
	id    func(T) kernel.UUID
	valid func(T) error
	copy  func(T) (T, error)
}

var customers = entity[*customer.Customer]{
	name:  "customer",
	id:    (*customer.Customer).ID,
	valid: (*customer.Customer).Validate,
	copy: func(c *customer.Customer) (*customer.Customer, error) {
		return customer.RestoreCustomer(c.ID(), c.Name(), c.Email(), c.Phone(), c.Address())
	},
}

var couriers = entity[*courier.Courier]{
	name:  "courier",
	id:    (*courier.Courier).ID,
	valid: (*courier.Courier).Validate,
	copy: func(c *courier.Courier) (*courier.Courier, error) {
		return courier.RestoreCourier(c.ID(), c.Kind(), c.Name(), c.Phone(), c.IsAvailable(),
			c.LicensePlate(), c.MaxFlightRangeKm())
	},
}

var orders = entity[*order.Order]{
	name:  "order",
	id:    (*order.Order).ID,
	valid: (*order.Order).Validate,
	copy: func(o *order.Order) (*order.Order, error) {
		items := make([]*order.Item, 0, len(o.Items()))
		for _, item := range o.Items() {
			items = append(items, item.Copy())
		}
		return order.RestoreOrder(o.ID(), o.CustomerID(), items, o.Status(), o.Priority(),
			o.DeliveryNotes(), o.CreatedAt(), o.UpdatedAt())
	},
}

var deliveries = entity[*delivery.Delivery]{
	name:  "delivery",
	id:    (*delivery.Delivery).ID,
	valid: (*delivery.Delivery).Validate,
	copy: func(d *delivery.Delivery) (*delivery.Delivery, error) {
		return delivery.RestoreDelivery(d.ID(), d.OrderID(), d.CourierID(), d.DistanceKm(), d.Status(),
			d.AssignedAt(), d.PickedUpAt(), d.DeliveredAt(), d.EstimatedDeliveryTime())
	},
}
