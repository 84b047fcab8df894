package courierrepo

import (
	"context"
	"errors"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("courier", aggregate.ID().String())
		}
		return err
	}
	return nil
}

// Update overwrites every column, availability included.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}
	return nil
}

func (r *GormCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CourierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormCourierRepository) GetAvailable(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(r.db.WithContext(ctx).Where("is_available = ?", true))
}

// GetAvailableForWeight retrieves available couriers whose vehicle kind can
// carry weightKg. Capacity is a property of the kind, so the filter is a
// kind list computed from the capacity table.
//
// Example:
//
//	candidates, err := repo.GetAvailableForWeight(ctx, decimal.NewFromInt(4))
//	// bikes and cars, no drones
func (r *GormCourierRepository) GetAvailableForWeight(
	ctx context.Context,
	weightKg decimal.Decimal,
) ([]*courier.Courier, error) {
	kinds := make([]int, 0, 3)
	for _, kind := range []courier.VehicleKind{courier.Bike, courier.Car, courier.Drone} {
		if weightKg.LessThanOrEqual(kind.MaxWeightKg()) {
			kinds = append(kinds, int(kind))
		}
	}
	if len(kinds) == 0 {
		return []*courier.Courier{}, nil
	}

	return r.find(r.db.WithContext(ctx).Where("is_available = ? AND kind IN ?", true, kinds))
}

// find runs the scoped query ordered by name.
func (r *GormCourierRepository) find(db *gorm.DB) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := db.Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
