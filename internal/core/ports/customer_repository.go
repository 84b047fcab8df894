package ports

import (
	"context"

	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. It fails with errs.ErrObjectAlreadyExists for a known id.
	Add(ctx context.Context, customer *customer.Customer) error

	// Update persists changes to an existing customer. It fails with errs.ErrObjectNotFound if absent.
	Update(ctx context.Context, customer *customer.Customer) error

	// Delete removes a customer. It fails with errs.ErrObjectNotFound if absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by exact email or fails with errs.ErrObjectNotFound.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// GetAll returns every customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
