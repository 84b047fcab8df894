// Package deliveryrepo maps the delivery aggregate to the deliveries table.
package deliveryrepo

import (
	"time"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO is the row of the deliveries table. The estimate is stored in
// nanoseconds; NULL means not estimated.
type DeliveryDTO struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status                  int             `gorm:"type:smallint;not null;index"`
	DistanceKm              decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	AssignedAt              time.Time       `gorm:"not null"`
	PickedUpAt              *time.Time
	DeliveredAt             *time.Time
	EstimatedDeliveryTimeNs *int64
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var estimate *int64
	if eta := d.EstimatedDeliveryTime(); eta != nil {
		ns := int64(*eta)
		estimate = &ns
	}

	return DeliveryDTO{
		ID:                      d.ID().Bytes(),
		OrderID:                 d.OrderID().Bytes(),
		CourierID:               d.CourierID().Bytes(),
		Status:                  int(d.Status()),
		DistanceKm:              d.DistanceKm(),
		AssignedAt:              d.AssignedAt(),
		PickedUpAt:              d.PickedUpAt(),
		DeliveredAt:             d.DeliveredAt(),
		EstimatedDeliveryTimeNs: estimate,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromGoogle(dto.CourierID)
	if err != nil {
		return nil, err
	}

	var estimate *time.Duration
	if dto.EstimatedDeliveryTimeNs != nil {
		eta := time.Duration(*dto.EstimatedDeliveryTimeNs)
		estimate = &eta
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		dto.DistanceKm,
		delivery.Status(dto.Status),
		dto.AssignedAt.UTC(),
		utc(dto.PickedUpAt),
		utc(dto.DeliveredAt),
		estimate,
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
