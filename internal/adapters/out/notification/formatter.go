// Package notification implements ports.Notifier as a Formatter that renders
// the message body and a Sender that delivers it. The composition root picks
// one of each; the core only sees the Notifier.
package notification

import (
	"time"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
)

const notAvailable = "n/a"

// Formatter renders the body of each notification.
type Formatter interface {
	// ContentType is the MIME type of the rendered bodies.
	ContentType() string

	FormatOrderCreated(o *order.Order, c *customer.Customer) string
	FormatOrderStatusChanged(o *order.Order, c *customer.Customer) string
	FormatDeliveryAssigned(d *delivery.Delivery, c *customer.Customer, cr *courier.Courier) string
	FormatDeliveryStatusChanged(d *delivery.Delivery, c *customer.Customer) string
	FormatDeliveryCompleted(d *delivery.Delivery, c *customer.Customer) string
}

func formatETA(d *delivery.Delivery) string {
	eta := d.EstimatedDeliveryTime()
	if eta == nil {
		return notAvailable
	}
	return eta.String()
}

func formatDeliveredAt(d *delivery.Delivery) string {
	at := d.DeliveredAt()
	if at == nil {
		return notAvailable
	}
	return at.Format(time.RFC3339)
}
