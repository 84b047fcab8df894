// Package ports defines the capabilities the application core consumes:
// repositories per aggregate, the unit of work that binds them to a
// transaction, the notification channel and the settings source.
// Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. It fails with errs.ErrObjectAlreadyExists
	// if a courier with the same id is stored.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier. It fails with
	// errs.ErrObjectNotFound if the id is unknown.
	Update(ctx context.Context, courier *courier.Courier) error

	// Delete removes a courier. It fails with errs.ErrObjectNotFound if the id is unknown.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a courier by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll returns every courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAvailable returns couriers that are not reserved by a delivery.
	GetAvailable(ctx context.Context) ([]*courier.Courier, error)

	// GetAvailableForWeight returns available couriers whose capacity is at
	// least weightKg.
	//
	// Example:
	//   candidates, err := repo.GetAvailableForWeight(ctx, order.TotalWeight())
	//   if err != nil {
	//       return fmt.Errorf("failed to get available couriers: %w", err)
	//   }
	GetAvailableForWeight(ctx context.Context, weightKg decimal.Decimal) ([]*courier.Courier, error)
}
