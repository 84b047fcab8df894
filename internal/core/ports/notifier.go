package ports

import (
	"context"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
)

// Notifier informs customers about lifecycle events. How a message is
// formatted and transported is up to the implementation.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, o *order.Order, c *customer.Customer) error
	NotifyOrderStatusChanged(ctx context.Context, o *order.Order, c *customer.Customer) error
	NotifyDeliveryAssigned(ctx context.Context, d *delivery.Delivery, c *customer.Customer, cr *courier.Courier) error
	NotifyDeliveryStatusChanged(ctx context.Context, d *delivery.Delivery, c *customer.Customer) error
	NotifyDeliveryCompleted(ctx context.Context, d *delivery.Delivery, c *customer.Customer) error
}
