// Package courierrepo maps the courier aggregate to the couriers table.
// Car and drone payloads live in nullable columns of the same row.
package courierrepo

import (
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourierDTO is the row of the couriers table.
type CourierDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Kind             int                 `gorm:"type:smallint;not null;index"`
	Name             string              `gorm:"type:varchar(255);not null"`
	Phone            string              `gorm:"type:varchar(64);not null"`
	IsAvailable      bool                `gorm:"not null;index"`
	LicensePlate     string              `gorm:"type:varchar(32)"`
	MaxFlightRangeKm decimal.NullDecimal `gorm:"type:numeric(10,3)"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:           c.ID().Bytes(),
		Kind:         int(c.Kind()),
		Name:         c.Name(),
		Phone:        c.Phone(),
		IsAvailable:  c.IsAvailable(),
		LicensePlate: c.LicensePlate(),
	}
	if c.Kind() == courier.Drone {
		dto.MaxFlightRangeKm = decimal.NewNullDecimal(c.MaxFlightRangeKm())
	}
	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		courier.VehicleKind(dto.Kind),
		dto.Name,
		dto.Phone,
		dto.IsAvailable,
		dto.LicensePlate,
		dto.MaxFlightRangeKm.Decimal,
	)
}
