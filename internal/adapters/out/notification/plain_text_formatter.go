package notification

import (
	"fmt"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/ports"
)

// PlainTextFormatter renders short multi-line text bodies. Prices carry the
// currency from the current settings.
type PlainTextFormatter struct {
	settings ports.SettingsProvider
}

func NewPlainTextFormatter(settings ports.SettingsProvider) *PlainTextFormatter {
	return &PlainTextFormatter{settings: settings}
}

func (f *PlainTextFormatter) ContentType() string {
	return "text/plain"
}

func (f *PlainTextFormatter) FormatOrderCreated(o *order.Order, c *customer.Customer) string {
	return fmt.Sprintf("Dear %s,\nOrder #%s has been created.\nItems: %d\nTotal: %s %s\nWeight: %skg",
		c.Name(), o.ID(), len(o.Items()),
		o.TotalPrice().StringFixed(2), f.settings.Snapshot().DefaultCurrency,
		o.TotalWeight())
}

func (f *PlainTextFormatter) FormatOrderStatusChanged(o *order.Order, c *customer.Customer) string {
	return fmt.Sprintf("Dear %s,\nOrder #%s status changed to %s.", c.Name(), o.ID(), o.Status())
}

func (f *PlainTextFormatter) FormatDeliveryAssigned(d *delivery.Delivery, c *customer.Customer, cr *courier.Courier) string {
	return fmt.Sprintf("Dear %s,\nDelivery #%s assigned.\nCourier: %s (%s)\nDistance: %skm\nETA: %s",
		c.Name(), d.ID(), cr.Name(), cr.Kind(), d.DistanceKm(), formatETA(d))
}

func (f *PlainTextFormatter) FormatDeliveryStatusChanged(d *delivery.Delivery, c *customer.Customer) string {
	return fmt.Sprintf("Dear %s,\nDelivery #%s status: %s.", c.Name(), d.ID(), d.Status())
}

func (f *PlainTextFormatter) FormatDeliveryCompleted(d *delivery.Delivery, c *customer.Customer) string {
	return fmt.Sprintf("Dear %s,\nDelivery #%s completed at %s.\nThank you for using %s!",
		c.Name(), d.ID(), formatDeliveredAt(d), f.settings.Snapshot().SystemName)
}
