package notification

import (
	"fmt"
	"html"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/ports"
)

// HTMLFormatter renders an HTML fragment per notification. Every value taken
// from an entity is escaped.
type HTMLFormatter struct {
	settings ports.SettingsProvider
}

func NewHTMLFormatter(settings ports.SettingsProvider) *HTMLFormatter {
	return &HTMLFormatter{settings: settings}
}

func (f *HTMLFormatter) ContentType() string {
	return "text/html"
}

func (f *HTMLFormatter) FormatOrderCreated(o *order.Order, c *customer.Customer) string {
	return wrap("Order Created", c,
		fmt.Sprintf("<p>Your order <strong>#%s</strong> has been placed.</p>", o.ID())+
			"<ul>"+
			fmt.Sprintf("<li>Items: %d</li>", len(o.Items()))+
			fmt.Sprintf("<li>Total: %s %s</li>", o.TotalPrice().StringFixed(2), esc(f.settings.Snapshot().DefaultCurrency))+
			fmt.Sprintf("<li>Weight: %skg</li>", o.TotalWeight())+
			"</ul>")
}

func (f *HTMLFormatter) FormatOrderStatusChanged(o *order.Order, c *customer.Customer) string {
	return wrap("Order Status Update", c,
		fmt.Sprintf("<p>Order <strong>#%s</strong> is now <em>%s</em>.</p>", o.ID(), o.Status()))
}

func (f *HTMLFormatter) FormatDeliveryAssigned(d *delivery.Delivery, c *customer.Customer, cr *courier.Courier) string {
	return wrap("Delivery Assigned", c,
		fmt.Sprintf("<p>Delivery <strong>#%s</strong> has been assigned.</p>", d.ID())+
			"<ul>"+
			fmt.Sprintf("<li>Courier: %s (%s)</li>", esc(cr.Name()), cr.Kind())+
			fmt.Sprintf("<li>Distance: %skm</li>", d.DistanceKm())+
			fmt.Sprintf("<li>ETA: %s</li>", formatETA(d))+
			"</ul>")
}

func (f *HTMLFormatter) FormatDeliveryStatusChanged(d *delivery.Delivery, c *customer.Customer) string {
	return wrap("Delivery Update", c,
		fmt.Sprintf("<p>Delivery <strong>#%s</strong> is now <em>%s</em>.</p>", d.ID(), d.Status()))
}

func (f *HTMLFormatter) FormatDeliveryCompleted(d *delivery.Delivery, c *customer.Customer) string {
	return wrap("Delivery Completed!", c,
		fmt.Sprintf("<p>Delivery <strong>#%s</strong> was completed at %s.</p>", d.ID(), formatDeliveredAt(d))+
			fmt.Sprintf("<p><em>Thank you for using %s!</em></p>", esc(f.settings.Snapshot().SystemName)))
}

func wrap(title string, c *customer.Customer, content string) string {
	return "<div class='notification'>" +
		"<h2>" + title + "</h2>" +
		"<p>Dear " + esc(c.Name()) + ",</p>" +
		content +
		"</div>"
}

func esc(s string) string {
	return html.EscapeString(s)
}
