package notification

import (
	"context"
	"time"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier renders every event with its Formatter and hands the result to
// its Sender. The customer's email is the recipient.
type Notifier struct {
	formatter Formatter
	sender    Sender
	now       func() time.Time
}

func NewNotifier(formatter Formatter, sender Sender) *Notifier {
	return &Notifier{
		formatter: formatter,
		sender:    sender,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (n *Notifier) NotifyOrderCreated(ctx context.Context, o *order.Order, c *customer.Customer) error {
	return n.send(ctx, EventOrderCreated, c, "Order Created", n.formatter.FormatOrderCreated(o, c))
}

func (n *Notifier) NotifyOrderStatusChanged(ctx context.Context, o *order.Order, c *customer.Customer) error {
	return n.send(ctx, EventOrderStatusChanged, c, "Order Status Update", n.formatter.FormatOrderStatusChanged(o, c))
}

func (n *Notifier) NotifyDeliveryAssigned(
	ctx context.Context,
	d *delivery.Delivery,
	c *customer.Customer,
	cr *courier.Courier,
) error {
	return n.send(ctx, EventDeliveryAssigned, c, "Delivery Assigned", n.formatter.FormatDeliveryAssigned(d, c, cr))
}

func (n *Notifier) NotifyDeliveryStatusChanged(ctx context.Context, d *delivery.Delivery, c *customer.Customer) error {
	return n.send(ctx, EventDeliveryStatusChanged, c, "Delivery Update", n.formatter.FormatDeliveryStatusChanged(d, c))
}

func (n *Notifier) NotifyDeliveryCompleted(ctx context.Context, d *delivery.Delivery, c *customer.Customer) error {
	return n.send(ctx, EventDeliveryCompleted, c, "Delivery Completed", n.formatter.FormatDeliveryCompleted(d, c))
}

func (n *Notifier) send(ctx context.Context, event string, c *customer.Customer, subject, body string) error {
	return n.sender.Send(ctx, Message{
		Event:       event,
		Recipient:   c.Email(),
		Subject:     subject,
		ContentType: n.formatter.ContentType(),
		Body:        body,
		CreatedAt:   n.now(),
	})
}
