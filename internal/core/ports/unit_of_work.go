package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. It fails when no transaction
	// is active, which handlers ignore in their deferred call.
	Rollback(ctx context.Context) error

	// Repositories below use the transaction started by Begin, or write
	// directly when Begin was not called.
	CustomerRepository() CustomerRepository
	CourierRepository() CourierRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
}
