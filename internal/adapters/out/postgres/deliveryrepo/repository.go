package deliveryrepo

import (
	"context"
	"errors"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("delivery", aggregate.ID().String())
		}
		return err
	}
	return nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}
	return nil
}

func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()))
}

func (r *GormDeliveryRepository) GetByCourier(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("courier_id = ?", courierID.Bytes()))
}

// GetActive retrieves deliveries that are neither Delivered nor Failed.
func (r *GormDeliveryRepository) GetActive(ctx context.Context) ([]*delivery.Delivery, error) {
	active := []int{int(delivery.Pending), int(delivery.Assigned), int(delivery.PickedUp), int(delivery.InTransit)}
	return r.find(r.db.WithContext(ctx).Where("status IN ?", active))
}

func (r *GormDeliveryRepository) find(db *gorm.DB) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := db.Order("assigned_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}
