package ports

import (
	"context"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Several deliveries may reference one order (a failed one and its
// replacement); the assignment workflow keeps at most one of them active.
type DeliveryRepository interface {
	// Add persists a new delivery. It fails with errs.ErrObjectAlreadyExists for a known id.
	Add(ctx context.Context, delivery *delivery.Delivery) error

	// Update persists changes to an existing delivery. It fails with errs.ErrObjectNotFound if absent.
	Update(ctx context.Context, delivery *delivery.Delivery) error

	// Delete removes a delivery. It fails with errs.ErrObjectNotFound if absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a delivery by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll returns every delivery, oldest assignment first.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// GetByOrder returns the deliveries of orderID, oldest assignment first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	// GetByCourier returns the deliveries of courierID, oldest assignment first.
	GetByCourier(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error)

	// GetActive returns deliveries that are neither Delivered nor Failed.
	GetActive(ctx context.Context) ([]*delivery.Delivery, error)
}
