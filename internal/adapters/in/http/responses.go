package http

import (
	"time"

	"deliverysystem/internal/config"
	"deliverysystem/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type AddressDTO struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type CustomerDTO struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Address AddressDTO `json:"address"`
}

type CourierDTO struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Phone            string           `json:"phone"`
	Vehicle          string           `json:"vehicle"`
	IsAvailable      bool             `json:"is_available"`
	MaxWeightKg      decimal.Decimal  `json:"max_weight_kg"`
	LicensePlate     string           `json:"license_plate,omitempty"`
	MaxFlightRangeKm *decimal.Decimal `json:"max_flight_range_km,omitempty"`
}

type OrderItemDTO struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	WeightKg    decimal.Decimal `json:"weight_kg"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	TotalWeight decimal.Decimal `json:"total_weight_kg"`
}

type OrderDTO struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	DeliveryNotes string          `json:"delivery_notes,omitempty"`
	Items         []OrderItemDTO  `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

type DeliveryDTO struct {
	ID                       string          `json:"id"`
	OrderID                  string          `json:"order_id"`
	CourierID                string          `json:"courier_id"`
	Status                   string          `json:"status"`
	DistanceKm               decimal.Decimal `json:"distance_km"`
	AssignedAt               time.Time       `json:"assigned_at"`
	PickedUpAt               *time.Time      `json:"picked_up_at,omitempty"`
	DeliveredAt              *time.Time      `json:"delivered_at,omitempty"`
	EstimatedDeliveryMinutes *float64        `json:"estimated_delivery_minutes,omitempty"`
}

type SettingsDTO struct {
	MaxDeliveryDistanceKm decimal.Decimal `json:"max_delivery_distance_km"`
	DefaultCurrency       string          `json:"default_currency"`
	MaxOrderItems         int             `json:"max_order_items"`
	SystemName            string          `json:"system_name"`
}

func toCustomerDTO(r queries.CustomerResponse) CustomerDTO {
	return CustomerDTO{
		ID:    r.ID.String(),
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Address: AddressDTO{
			Street:     r.Address.Street(),
			City:       r.Address.City(),
			PostalCode: r.Address.PostalCode(),
			Country:    r.Address.Country(),
		},
	}
}

func toCourierDTO(r queries.CourierResponse) CourierDTO {
	dto := CourierDTO{
		ID:           r.ID.String(),
		Name:         r.Name,
		Phone:        r.Phone,
		Vehicle:      r.Kind.String(),
		IsAvailable:  r.IsAvailable,
		MaxWeightKg:  r.MaxWeightKg,
		LicensePlate: r.LicensePlate,
	}
	if r.MaxFlightRangeKm.Valid {
		rangeKm := r.MaxFlightRangeKm.Decimal
		dto.MaxFlightRangeKm = &rangeKm
	}
	return dto
}

func toOrderDTO(r queries.OrderResponse) OrderDTO {
	items := make([]OrderItemDTO, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItemDTO{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			WeightKg:    item.WeightKg,
			TotalPrice:  item.TotalPrice,
			TotalWeight: item.TotalWeight,
		})
	}
	return OrderDTO{
		ID:            r.ID.String(),
		CustomerID:    r.CustomerID.String(),
		Status:        r.Status.String(),
		Priority:      r.Priority.String(),
		DeliveryNotes: r.DeliveryNotes,
		Items:         items,
		TotalPrice:    r.TotalPrice,
		TotalWeightKg: r.TotalWeightKg,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toDeliveryDTO(r queries.DeliveryResponse) DeliveryDTO {
	dto := DeliveryDTO{
		ID:          r.ID.String(),
		OrderID:     r.OrderID.String(),
		CourierID:   r.CourierID.String(),
		Status:      r.Status.String(),
		DistanceKm:  r.DistanceKm,
		AssignedAt:  r.AssignedAt,
		PickedUpAt:  r.PickedUpAt,
		DeliveredAt: r.DeliveredAt,
	}
	if r.EstimatedDeliveryTime != nil {
		minutes := r.EstimatedDeliveryTime.Minutes()
		dto.EstimatedDeliveryMinutes = &minutes
	}
	return dto
}

func toSettingsDTO(s config.Settings) SettingsDTO {
	return SettingsDTO{
		MaxDeliveryDistanceKm: s.MaxDeliveryDistanceKm,
		DefaultCurrency:       s.DefaultCurrency,
		MaxOrderItems:         s.MaxOrderItems,
		SystemName:            s.SystemName,
	}
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
