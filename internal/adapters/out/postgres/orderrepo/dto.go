// Package orderrepo maps the order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Items are loaded with Preload
// and kept in Position order.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status        int            `gorm:"type:smallint;not null;index"`
	Priority      int            `gorm:"type:smallint;not null"`
	DeliveryNotes string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"not null;index"`
	UpdatedAt     *time.Time     `gorm:"autoUpdateTime:false"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order.
type OrderItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"primaryKey;autoIncrement:false"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	WeightKg    decimal.Decimal `gorm:"type:numeric(10,3);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			Position:    i,
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			WeightKg:    item.WeightKg(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    o.CustomerID().Bytes(),
		Status:        int(o.Status()),
		Priority:      int(o.Priority()),
		DeliveryNotes: o.DeliveryNotes(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.WeightKg)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var updatedAt *time.Time
	if dto.UpdatedAt != nil {
		t := dto.UpdatedAt.UTC()
		updatedAt = &t
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		order.Status(dto.Status),
		order.Priority(dto.Priority),
		dto.DeliveryNotes,
		dto.CreatedAt.UTC(),
		updatedAt,
	)
}
