package ports

import (
	"context"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items.
type OrderRepository interface {
	// Add persists a new order. It fails with errs.ErrObjectAlreadyExists for a known id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its items.
	// It fails with errs.ErrObjectNotFound if the id is unknown.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and its items. It fails with errs.ErrObjectNotFound if the id is unknown.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer returns the orders placed by customerID, oldest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByStatus returns the orders currently in status, oldest first.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
