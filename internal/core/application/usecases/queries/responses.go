package queries

import (
	"time"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CustomerResponse is the customer read model.
type CustomerResponse struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Phone   string
	Address kernel.Address
}

// CourierResponse is the courier read model. LicensePlate is set for cars,
// MaxFlightRangeKm for drones.
type CourierResponse struct {
	ID               kernel.UUID
	Name             string
	Phone            string
	Kind             courier.VehicleKind
	IsAvailable      bool
	MaxWeightKg      decimal.Decimal
	LicensePlate     string
	MaxFlightRangeKm decimal.NullDecimal
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	WeightKg    decimal.Decimal
	TotalPrice  decimal.Decimal
	TotalWeight decimal.Decimal
}

// OrderResponse is the order read model with computed totals.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Status        order.Status
	Priority      order.Priority
	DeliveryNotes string
	Items         []OrderItemResponse
	TotalPrice    decimal.Decimal
	TotalWeightKg decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// DeliveryResponse is the delivery read model.
type DeliveryResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	CourierID             kernel.UUID
	Status                delivery.Status
	DistanceKm            decimal.Decimal
	AssignedAt            time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	EstimatedDeliveryTime *time.Duration
}

func newCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func newCourierResponse(c *courier.Courier) CourierResponse {
	resp := CourierResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		Kind:         c.Kind(),
		IsAvailable:  c.IsAvailable(),
		MaxWeightKg:  c.MaxWeightKg(),
		LicensePlate: c.LicensePlate(),
	}
	if c.Kind() == courier.Drone {
		resp.MaxFlightRangeKm = decimal.NewNullDecimal(c.MaxFlightRangeKm())
	}
	return resp
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			WeightKg:    item.WeightKg(),
			TotalPrice:  item.TotalPrice(),
			TotalWeight: item.TotalWeight(),
		})
	}
	return OrderResponse{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		Status:        o.Status(),
		Priority:      o.Priority(),
		DeliveryNotes: o.DeliveryNotes(),
		Items:         items,
		TotalPrice:    o.TotalPrice(),
		TotalWeightKg: o.TotalWeight(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func newDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:                    d.ID(),
		OrderID:               d.OrderID(),
		CourierID:             d.CourierID(),
		Status:                d.Status(),
		DistanceKm:            d.DistanceKm(),
		AssignedAt:            d.AssignedAt(),
		PickedUpAt:            d.PickedUpAt(),
		DeliveredAt:           d.DeliveredAt(),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime(),
	}
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
